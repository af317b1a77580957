// Package sqltext renders PostgreSQL literals and identifiers for the seed script.
package sqltext

import (
	"regexp"
	"strconv"
	"strings"
)

var tagPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Escape doubles every dollar sign in text. Backslashes and quotes are left
// alone because dollar-quoted bodies are taken literally.
func Escape(text string) string {
	return strings.ReplaceAll(text, "$", "$$")
}

// ValidTag reports whether tag can be used between dollar signs.
func ValidTag(tag string) bool {
	return tagPattern.MatchString(tag)
}

// SafeTag returns base, or base with the smallest numeric suffix, such that
// the closing delimiter first appears right after escaped.
func SafeTag(base, escaped string) string {
	tag := base
	for i := 1; collides(tag, escaped); i++ {
		tag = base + strconv.Itoa(i)
	}
	return tag
}

func collides(tag, escaped string) bool {
	delim := delimiter(tag)
	return strings.Index(escaped+delim, delim) != len(escaped)
}

func delimiter(tag string) string {
	return "$" + tag + "$"
}

// DollarQuote escapes text and wraps it in a collision-free $tag$ block
// derived from base. It panics if base is not a valid tag.
func DollarQuote(base, text string) string {
	if !ValidTag(base) {
		panic("sqltext: invalid dollar-quote tag " + strconv.Quote(base))
	}
	escaped := Escape(text)
	delim := delimiter(SafeTag(base, escaped))

	var b strings.Builder
	b.Grow(len(escaped) + 2*len(delim))
	b.WriteString(delim)
	b.WriteString(escaped)
	b.WriteString(delim)
	return b.String()
}
