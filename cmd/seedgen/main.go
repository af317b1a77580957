package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sqordia/prompt-seed/internal/catalog"
	"github.com/sqordia/prompt-seed/internal/config"
	"github.com/sqordia/prompt-seed/internal/generator"
	"github.com/sqordia/prompt-seed/internal/logger"
)

type options struct {
	configPath string
	outputPath string
	catalogDir string
	ids        string
	stats      bool
	progress   bool
	debug      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		stop()
		logger.Fatal("Command execution failed", zap.Error(err))
	}
}

func newRootCmd(afs afero.Fs) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "seedgen",
		Short:         "AI prompt seed script generator",
		Long:          "Generate an idempotent PostgreSQL script that seeds the AIPrompts table with system and section prompts for every plan type and language",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, afs, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", config.DefaultOutputPath, "Output SQL file (\"-\" for stdout)")
	cmd.Flags().StringVar(&opts.catalogDir, "catalog", "", "Directory with prompt tables overriding the embedded ones")
	cmd.Flags().StringVar(&opts.ids, "ids", config.IDModeDatabase, "Id column mode: database (gen_random_uuid) or stable (name-based UUID)")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print a statement summary table")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "Show a progress bar while rendering")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, afs afero.Fs, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger.Init(cfg.Log.Debug)
	defer logger.Sync()

	c, err := loadCatalog(afs, cfg.Catalog.Dir)
	if err != nil {
		return fmt.Errorf("failed to load prompt catalog: %w", err)
	}

	renderer, err := generator.NewRenderer(generator.IDMode(cfg.Render.IDs))
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	genOpts := []generator.Option{generator.WithTimestampFormat(cfg.Render.TimestampFormat)}
	if opts.progress {
		genOpts = append(genOpts, generator.WithObserver(generator.NewProgressObserver(cmd.ErrOrStderr())))
	}

	script, err := generator.New(c, renderer, genOpts...).Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to generate seed script: %w", err)
	}

	writer := generator.NewWriter(afs, cmd.OutOrStdout())
	if err := writer.Write(cfg.Output.Path, script); err != nil {
		return err
	}

	if cfg.Output.Path == generator.StdoutPath {
		if opts.stats {
			return script.WriteSummary(cmd.ErrOrStderr())
		}
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s successfully!\n", cfg.Output.Path)
	if opts.stats {
		return script.WriteSummary(cmd.OutOrStdout())
	}
	return nil
}

// applyFlags lets explicitly set flags win over config file and environment
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Path = opts.outputPath
	}
	if flags.Changed("catalog") {
		cfg.Catalog.Dir = opts.catalogDir
	}
	if flags.Changed("ids") {
		cfg.Render.IDs = opts.ids
	}
	if flags.Changed("debug") {
		cfg.Log.Debug = opts.debug
	}
}

func loadCatalog(afs afero.Fs, dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.Default()
	}
	logger.Info("Loading prompt catalog", zap.String("dir", dir))
	return catalog.LoadDir(afs, dir)
}
