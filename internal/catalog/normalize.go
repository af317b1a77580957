package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims surrounding whitespace, unifies line endings, strips
// trailing spaces from every line and converts the text to NFC so accented
// characters are emitted in composed form. Inner line breaks are kept.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return norm.NFC.String(strings.TrimSpace(strings.Join(lines, "\n")))
}

// NormalizeKey trims a section identifier
func NormalizeKey(key string) string {
	return strings.TrimSpace(key)
}

// NormalizeKeys normalizes a list of section identifiers, dropping empty ones
func NormalizeKeys(keys []string) []string {
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if k := NormalizeKey(key); k != "" {
			result = append(result, k)
		}
	}
	return result
}
