package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sqordia/prompt-seed/internal/database"
	"github.com/sqordia/prompt-seed/internal/sqltext"
)

// IDMode selects how the "Id" column is filled
type IDMode string

const (
	IDDatabase IDMode = "database"
	IDStable   IDMode = "stable"
)

const (
	indent         = "    "
	columnsPerLine = 6
)

// stableNamespace scopes name-based row ids to this seed script
var stableNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:sqordia:ai-prompts"))

// Renderer turns records into INSERT ... SELECT ... WHERE NOT EXISTS statements
type Renderer struct {
	table   string
	columns []string
	ids     IDMode
}

// NewRenderer creates a renderer for the "AIPrompts" table
func NewRenderer(ids IDMode) (*Renderer, error) {
	if ids != IDDatabase && ids != IDStable {
		return nil, fmt.Errorf("unknown id mode %q", ids)
	}

	columns, err := database.InsertColumns()
	if err != nil {
		return nil, err
	}

	return &Renderer{
		table:   database.PromptTable(),
		columns: columns,
		ids:     ids,
	}, nil
}

// StableID returns the name-based id of a record
func StableID(r Record) uuid.UUID {
	key := strings.Join([]string{string(r.Category), string(r.PlanType), string(r.Language), r.Section()}, "/")
	return uuid.NewSHA1(stableNamespace, []byte(key))
}

// Render renders one statement for rec, including its comment line
func (r *Renderer) Render(rec Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	values := r.values(rec)

	selectList := make([]string, 0, len(r.columns))
	for _, col := range r.columns {
		expr, ok := values[col]
		if !ok {
			return "", fmt.Errorf("no value for column %s", col)
		}
		selectList = append(selectList, indent+expr)
	}

	guard := database.SectionGuard
	if rec.Category == database.CategorySystemPrompt {
		guard = database.SystemPromptGuard
	}
	conditions := make([]string, len(guard))
	for i, col := range guard {
		keyword := "AND"
		if i == 0 {
			keyword = "WHERE"
		}
		conditions[i] = fmt.Sprintf("%s%s %s = %s", indent, keyword, sqltext.Ident(col), values[col])
	}

	table := sqltext.Ident(r.table)

	var b strings.Builder
	fmt.Fprintf(&b, "-- %s\n", rec.Label())
	fmt.Fprintf(&b, "INSERT INTO %s (\n", table)
	b.WriteString(sqltext.Wrap(sqltext.IdentList(r.columns), columnsPerLine, indent))
	b.WriteString("\n)\nSELECT\n")
	b.WriteString(strings.Join(selectList, ",\n"))
	b.WriteString("\nWHERE NOT EXISTS (\n")
	fmt.Fprintf(&b, "%sSELECT 1 FROM %s\n", indent, table)
	b.WriteString(strings.Join(conditions, "\n"))
	b.WriteString("\n);")

	return b.String(), nil
}

func (r *Renderer) values(rec Record) map[string]string {
	lang := string(rec.Language)

	id := "gen_random_uuid()"
	if r.ids == IDStable {
		id = sqltext.Literal(StableID(rec).String()) + "::uuid"
	}

	userPrompt := sqltext.Literal("")
	if rec.UserPromptTemplate != "" {
		userPrompt = sqltext.DollarQuote(lang+"_UP", rec.UserPromptTemplate)
	}

	return map[string]string{
		"Id":                 id,
		"Name":               sqltext.Literal(rec.Name),
		"Description":        sqltext.Literal(rec.Description),
		"Category":           sqltext.Literal(string(rec.Category)),
		"PlanType":           sqltext.Literal(string(rec.PlanType)),
		"Language":           sqltext.Literal(lang),
		"SectionName":        sqltext.Null(rec.SectionName),
		"SystemPrompt":       sqltext.DollarQuote(lang+"_SP", rec.SystemPrompt),
		"UserPromptTemplate": userPrompt,
		"Variables":          sqltext.Literal(rec.Variables.String()),
		"IsActive":           sqltext.Bool(rec.IsActive),
		"Version":            fmt.Sprintf("%d", rec.Version),
		"UsageCount":         "0",
		"AverageRating":      "0.0",
		"RatingCount":        "0",
		"Notes":              sqltext.Literal(rec.Notes),
		"Created":            "NOW() AT TIME ZONE 'UTC'",
		"IsDeleted":          sqltext.Bool(false),
	}
}
