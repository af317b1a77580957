package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/sqordia/prompt-seed/internal/database"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	systemFile = "system.yaml"
	plansFile  = "plans.yaml"
)

func sectionsFile(lang database.Lang) string {
	return fmt.Sprintf("sections.%s.yaml", lang)
}

type plansDoc struct {
	Plans []Plan `yaml:"plans"`
}

var (
	defaultCatalog *Catalog
	defaultErr     error
	defaultOnce    sync.Once
)

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			defaultErr = fmt.Errorf("failed to open embedded catalog: %w", err)
			return
		}
		defaultCatalog, defaultErr = Load(sub)
	})
	return defaultCatalog, defaultErr
}

// LoadDir loads a catalog from dir on the given filesystem
func LoadDir(afs afero.Fs, dir string) (*Catalog, error) {
	// BasePathFs only accepts names under an absolute, cleaned base
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog dir %s: %w", dir, err)
	}
	return Load(afero.NewIOFS(afero.NewBasePathFs(afs, abs)))
}

// Load parses the catalog files from fsys and validates the result
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{
		SystemPrompts: make(map[database.Lang]string),
		Sections:      make(map[database.Lang]map[string]string),
	}

	var system map[string]string
	if err := readYAML(fsys, systemFile, &system); err != nil {
		return nil, err
	}
	for key, text := range system {
		c.SystemPrompts[database.Lang(key)] = NormalizeText(text)
	}

	for _, lang := range database.Languages {
		var table map[string]string
		if err := readYAML(fsys, sectionsFile(lang), &table); err != nil {
			return nil, err
		}
		normalized := make(map[string]string, len(table))
		for section, text := range table {
			normalized[NormalizeKey(section)] = NormalizeText(text)
		}
		c.Sections[lang] = normalized
	}

	var plans plansDoc
	if err := readYAML(fsys, plansFile, &plans); err != nil {
		return nil, err
	}
	for _, p := range plans.Plans {
		p.Sections = NormalizeKeys(p.Sections)
		c.Plans = append(c.Plans, p)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func readYAML(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
