package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	generrors "github.com/sqordia/prompt-seed/internal/errors"
)

// DefaultOutputPath is the file the seed script is written to
const DefaultOutputPath = "seed-ai-prompts.sql"

// ID modes for the "Id" column
const (
	IDModeDatabase = "database" // gen_random_uuid() at load time
	IDModeStable   = "stable"   // name-based UUID computed at generation time
)

// Config holds all configuration for the generator
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Render  RenderConfig  `mapstructure:"render"`
	Log     LogConfig     `mapstructure:"log"`
}

// OutputConfig holds output configuration
type OutputConfig struct {
	Path string `mapstructure:"path"` // "-" writes to stdout
}

// CatalogConfig holds prompt catalog configuration
type CatalogConfig struct {
	Dir string `mapstructure:"dir"` // empty uses the embedded tables
}

// RenderConfig holds SQL rendering configuration
type RenderConfig struct {
	IDs             string `mapstructure:"ids"`
	TimestampFormat string `mapstructure:"timestamp_format"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.path", DefaultOutputPath)
	v.SetDefault("catalog.dir", "")
	v.SetDefault("render.ids", IDModeDatabase)
	v.SetDefault("render.timestamp_format", "2006-01-02T15:04:05.000000")
	v.SetDefault("log.debug", false)
}

func bindEnvVars(v *viper.Viper) {
	if path := os.Getenv("SEEDGEN_OUTPUT"); path != "" {
		v.Set("output.path", path)
	}
	if dir := os.Getenv("SEEDGEN_CATALOG_DIR"); dir != "" {
		v.Set("catalog.dir", dir)
	}
	if ids := os.Getenv("SEEDGEN_IDS"); ids != "" {
		v.Set("render.ids", ids)
	}
	if debug := os.Getenv("SEEDGEN_DEBUG"); debug != "" {
		v.Set("log.debug", debug == "true")
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Output.Path == "" {
		return generrors.InvalidConfig("output path cannot be empty")
	}

	if c.Render.IDs != IDModeDatabase && c.Render.IDs != IDModeStable {
		return generrors.InvalidConfig("invalid id mode: %s (must be '%s' or '%s')", c.Render.IDs, IDModeDatabase, IDModeStable)
	}

	if c.Render.TimestampFormat == "" {
		return generrors.InvalidConfig("timestamp format cannot be empty")
	}

	return nil
}
