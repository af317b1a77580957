package sqltext

import (
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// Literal returns s as a single-quoted PostgreSQL string literal.
func Literal(s string) string {
	return pq.QuoteLiteral(s)
}

// Ident returns a quoted, dot-joined PostgreSQL identifier.
func Ident(parts ...string) string {
	return pgx.Identifier(parts).Sanitize()
}

// IdentList quotes each name.
func IdentList(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = Ident(name)
	}
	return out
}

// Null returns the SQL NULL keyword when s is nil, otherwise a literal.
func Null(s *string) string {
	if s == nil {
		return "NULL"
	}
	return Literal(*s)
}

// Bool renders a boolean keyword.
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Wrap joins items with ", ", starting a new indented line every perLine items.
func Wrap(items []string, perLine int, indent string) string {
	if perLine <= 0 {
		perLine = len(items)
	}
	var lines []string
	for start := 0; start < len(items); start += perLine {
		end := min(start+perLine, len(items))
		lines = append(lines, indent+strings.Join(items[start:end], ", "))
	}
	return strings.Join(lines, ",\n")
}
