// Package catalog holds the prompt text tables the seed script is built from.
package catalog

import (
	"slices"

	"github.com/sqordia/prompt-seed/internal/database"
	generrors "github.com/sqordia/prompt-seed/internal/errors"
)

// Plan is a plan type with the ordered list of sections it requires
type Plan struct {
	Type     database.PlanType `yaml:"name"`
	Sections []string          `yaml:"sections"`
}

// Catalog holds the system prompts, per-language section instructions and
// plan definitions. It is read-only once loaded.
type Catalog struct {
	SystemPrompts map[database.Lang]string
	Sections      map[database.Lang]map[string]string
	Plans         []Plan
}

// Languages returns the languages the catalog is emitted for, in order
func (c *Catalog) Languages() []database.Lang {
	langs := make([]database.Lang, 0, len(database.Languages))
	for _, lang := range database.Languages {
		if _, ok := c.SystemPrompts[lang]; ok {
			langs = append(langs, lang)
		}
	}
	return langs
}

// SystemPrompt returns the system prompt for lang
func (c *Catalog) SystemPrompt(lang database.Lang) (string, bool) {
	text, ok := c.SystemPrompts[lang]
	return text, ok
}

// Prompt returns the section instruction for lang, if the table has one
func (c *Catalog) Prompt(lang database.Lang, section string) (string, bool) {
	table, ok := c.Sections[lang]
	if !ok {
		return "", false
	}
	text, ok := table[section]
	return text, ok
}

// Plan returns the plan definition for planType
func (c *Catalog) Plan(planType database.PlanType) (Plan, bool) {
	for _, p := range c.Plans {
		if p.Type == planType {
			return p, true
		}
	}
	return Plan{}, false
}

// Validate checks the structural invariants of the catalog. A section listed
// by a plan but absent from one language table is allowed; the generator
// skips it for that language.
func (c *Catalog) Validate() error {
	if len(c.Plans) == 0 {
		return generrors.InvalidCatalog("catalog defines no plans")
	}

	for _, lang := range database.Languages {
		text, ok := c.SystemPrompts[lang]
		if !ok || text == "" {
			return generrors.InvalidCatalog("missing system prompt for language %s", lang)
		}
	}
	for lang := range c.SystemPrompts {
		if !lang.IsValid() {
			return generrors.InvalidCatalog("unsupported language %q", lang)
		}
	}

	seen := make(map[database.PlanType]bool, len(c.Plans))
	for _, p := range c.Plans {
		if !p.Type.IsValid() {
			return generrors.InvalidCatalog("unknown plan type %q", p.Type)
		}
		if seen[p.Type] {
			return generrors.InvalidCatalog("plan type %s defined twice", p.Type)
		}
		seen[p.Type] = true

		if len(p.Sections) == 0 {
			return generrors.InvalidCatalog("plan %s has no sections", p.Type)
		}
		sorted := slices.Clone(p.Sections)
		slices.Sort(sorted)
		for i := 1; i < len(sorted); i++ {
			if sorted[i] == sorted[i-1] {
				return generrors.InvalidCatalog("plan %s lists section %s twice", p.Type, sorted[i])
			}
		}
	}

	return nil
}

// Missing returns the sections of plan that have no text in lang
func (c *Catalog) Missing(p Plan, lang database.Lang) []string {
	var missing []string
	for _, section := range p.Sections {
		if _, ok := c.Prompt(lang, section); !ok {
			missing = append(missing, section)
		}
	}
	return missing
}
