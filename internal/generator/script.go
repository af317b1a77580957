package generator

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/sqordia/prompt-seed/internal/database"
)

// Script is the assembled seed script
type Script struct {
	GeneratedAt time.Time
	Statements  []Statement
	Text        string
}

// Count returns the number of statements of the given kind
func (s *Script) Count(kind database.Category) int {
	n := 0
	for _, stmt := range s.Statements {
		if stmt.Kind == kind {
			n++
		}
	}
	return n
}

// Find returns the statements matching plan, language and section.
// An empty section matches system prompt statements.
func (s *Script) Find(plan database.PlanType, lang database.Lang, section string) []Statement {
	var found []Statement
	for _, stmt := range s.Statements {
		if stmt.PlanType == plan && stmt.Language == lang && stmt.Section == section {
			found = append(found, stmt)
		}
	}
	return found
}

// SummaryRow counts statements for one plan type and language
type SummaryRow struct {
	PlanType database.PlanType
	Language database.Lang
	System   int
	Sections int
}

// Total returns the number of statements in the row
func (r SummaryRow) Total() int {
	return r.System + r.Sections
}

// Summary groups statement counts by plan type and language, in emission order
func (s *Script) Summary() []SummaryRow {
	type key struct {
		plan database.PlanType
		lang database.Lang
	}
	index := make(map[key]int)
	var rows []SummaryRow

	for _, stmt := range s.Statements {
		k := key{stmt.PlanType, stmt.Language}
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, SummaryRow{PlanType: stmt.PlanType, Language: stmt.Language})
		}
		if stmt.Kind == database.CategorySystemPrompt {
			rows[i].System++
		} else {
			rows[i].Sections++
		}
	}
	return rows
}

// WriteSummary prints the summary as a table
func (s *Script) WriteSummary(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Plan type", "Language", "System", "Sections", "Total")

	total := 0
	for _, row := range s.Summary() {
		total += row.Total()
		if err := table.Append([]string{
			string(row.PlanType),
			row.Language.Code(),
			strconv.Itoa(row.System),
			strconv.Itoa(row.Sections),
			strconv.Itoa(row.Total()),
		}); err != nil {
			return fmt.Errorf("failed to append summary row: %w", err)
		}
	}
	table.Footer("", "", "", "Statements", strconv.Itoa(total))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	return nil
}
