// Package generator renders the prompt catalog into an idempotent seed script.
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sqordia/prompt-seed/internal/catalog"
	"github.com/sqordia/prompt-seed/internal/database"
	"github.com/sqordia/prompt-seed/internal/logger"
)

// DefaultTimestampFormat matches the header timestamp of previously generated scripts
const DefaultTimestampFormat = "2006-01-02T15:04:05.000000"

const rule = "-- ============================================================================"

// Statement is one rendered INSERT together with what it seeds
type Statement struct {
	Kind     database.Category
	PlanType database.PlanType
	Language database.Lang
	Section  string
	SQL      string
}

// Observer is notified as statements are rendered
type Observer interface {
	Start(total int)
	Rendered(stmt Statement)
	Done()
}

// Option configures a Generator
type Option func(*Generator)

// WithClock sets the clock used for the header timestamp
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithTimestampFormat sets the layout of the header timestamp
func WithTimestampFormat(layout string) Option {
	return func(g *Generator) {
		if layout != "" {
			g.timestampFormat = layout
		}
	}
}

// WithObserver registers an observer for rendering progress
func WithObserver(o Observer) Option {
	return func(g *Generator) { g.observer = o }
}

// Generator expands the catalog into statements
type Generator struct {
	catalog         *catalog.Catalog
	renderer        *Renderer
	now             func() time.Time
	timestampFormat string
	observer        Observer
}

// New creates a generator over c using r to render each record
func New(c *catalog.Catalog, r *Renderer, opts ...Option) *Generator {
	g := &Generator{
		catalog:         c,
		renderer:        r,
		now:             time.Now,
		timestampFormat: DefaultTimestampFormat,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Records enumerates the rows to seed: system prompts for every plan type and
// language first, then section prompts per plan, section and language.
// A section without text in a language is skipped for that language.
func (g *Generator) Records() []Record {
	langs := g.catalog.Languages()
	var records []Record

	for _, plan := range g.catalog.Plans {
		for _, lang := range langs {
			system, _ := g.catalog.SystemPrompt(lang)
			records = append(records, NewSystemRecord(plan.Type, lang, system))
		}
	}

	for _, plan := range g.catalog.Plans {
		for _, section := range plan.Sections {
			for _, lang := range langs {
				template, ok := g.catalog.Prompt(lang, section)
				if !ok {
					logger.Debug("Skipping section without prompt text",
						zap.String("plan", string(plan.Type)),
						zap.String("section", section),
						zap.String("lang", string(lang)))
					continue
				}
				system, _ := g.catalog.SystemPrompt(lang)
				records = append(records, NewSectionRecord(plan.Type, lang, section, system, template))
			}
		}
	}

	return records
}

// Generate renders every record and assembles the transaction-wrapped script
func (g *Generator) Generate(ctx context.Context) (*Script, error) {
	generatedAt := g.now()
	records := g.Records()

	if g.observer != nil {
		g.observer.Start(len(records))
		defer g.observer.Done()
	}

	statements := make([]Statement, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sql, err := g.renderer.Render(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", rec.Label(), err)
		}

		stmt := Statement{
			Kind:     rec.Category,
			PlanType: rec.PlanType,
			Language: rec.Language,
			Section:  rec.Section(),
			SQL:      sql,
		}
		statements = append(statements, stmt)
		if g.observer != nil {
			g.observer.Rendered(stmt)
		}
	}

	script := &Script{
		GeneratedAt: generatedAt,
		Statements:  statements,
	}
	script.Text = g.assemble(script)

	logger.Info("Rendered seed script",
		zap.Int("statements", len(statements)),
		zap.Int("system_prompts", script.Count(database.CategorySystemPrompt)),
		zap.Int("section_prompts", script.Count(database.CategoryContentGeneration)))

	return script, nil
}

func (g *Generator) assemble(s *Script) string {
	var b strings.Builder

	b.WriteString(rule + "\n")
	b.WriteString("-- Sqordia AI Prompts Seed Script (PostgreSQL)\n")
	b.WriteString(rule + "\n")
	b.WriteString("-- This script seeds the database with default AI prompts for business plan\n")
	b.WriteString("-- content generation. These prompts are used by the BusinessPlanGenerationService.\n")
	b.WriteString("--\n")
	b.WriteString("-- Idempotent: Safe to run multiple times (uses WHERE NOT EXISTS)\n")
	fmt.Fprintf(&b, "-- Generated: %s\n", s.GeneratedAt.Format(g.timestampFormat))
	b.WriteString(rule + "\n\n")
	b.WriteString("BEGIN;\n\n")

	writeBanner(&b, "SYSTEM PROMPTS")
	for _, stmt := range s.Statements {
		if stmt.Kind == database.CategorySystemPrompt {
			b.WriteString(stmt.SQL)
			b.WriteString("\n\n")
		}
	}

	writeBanner(&b, "SECTION PROMPTS")
	for _, stmt := range s.Statements {
		if stmt.Kind == database.CategoryContentGeneration {
			b.WriteString(stmt.SQL)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("COMMIT;\n\n")
	b.WriteString(rule + "\n")
	b.WriteString("-- END OF AI PROMPTS SEED SCRIPT\n")
	b.WriteString(rule + "\n")

	return b.String()
}

func writeBanner(b *strings.Builder, title string) {
	b.WriteString(rule + "\n")
	b.WriteString("-- " + title + "\n")
	b.WriteString(rule + "\n\n")
}
