// Package testutil provides shared utilities for testing.
package testutil

import (
	"path"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// FixedTime is the clock value used by generator tests.
var FixedTime = time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)

// FixedClock returns a clock function that always reports FixedTime.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedTime }
}

// WriteFiles creates files under dir on afs. Fails the test on error.
func WriteFiles(t *testing.T, afs afero.Fs, dir string, files map[string]string) {
	t.Helper()

	require.NoError(t, afs.MkdirAll(dir, 0o755), "Failed to create %s", dir)
	for name, content := range files {
		p := path.Join(dir, name)
		require.NoError(t, afero.WriteFile(afs, p, []byte(content), 0o644), "Failed to write %s", p)
	}
}

// ReadFile reads a file from afs as a string. Fails the test on error.
func ReadFile(t *testing.T, afs afero.Fs, name string) string {
	t.Helper()

	data, err := afero.ReadFile(afs, name)
	require.NoError(t, err, "Failed to read %s", name)
	return string(data)
}

// CountInserts counts INSERT statements in a generated script.
func CountInserts(script string) int {
	return strings.Count(script, "INSERT INTO ")
}

// ExtractLiteral returns the first dollar-quoted literal in s that starts with
// the opening delimiter "$"+tag+"$", including both delimiters.
func ExtractLiteral(s, tag string) (string, bool) {
	delim := "$" + tag + "$"
	start := strings.Index(s, delim)
	if start < 0 {
		return "", false
	}
	rest := s[start+len(delim):]
	end := strings.Index(rest, delim)
	if end < 0 {
		return "", false
	}
	return s[start : start+len(delim)+end+len(delim)], true
}
