package generator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	generrors "github.com/sqordia/prompt-seed/internal/errors"
	"github.com/sqordia/prompt-seed/internal/testutil"
)

func TestWriterWritesFile(t *testing.T) {
	afs := afero.NewMemMapFs()
	script := &Script{Text: "BEGIN;\n-- Rédigez\nCOMMIT;\n"}

	w := NewWriter(afs, &bytes.Buffer{})
	require.NoError(t, w.Write("seed-ai-prompts.sql", script))

	assert.Equal(t, script.Text, testutil.ReadFile(t, afs, "seed-ai-prompts.sql"))
}

func TestWriterOverwrites(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "seed.sql", []byte(strings.Repeat("old content\n", 100)), 0o644))

	w := NewWriter(afs, &bytes.Buffer{})
	require.NoError(t, w.Write("seed.sql", &Script{Text: "new\n"}))

	assert.Equal(t, "new\n", testutil.ReadFile(t, afs, "seed.sql"))
}

func TestWriterCreatesParentDir(t *testing.T) {
	afs := afero.NewMemMapFs()

	w := NewWriter(afs, &bytes.Buffer{})
	require.NoError(t, w.Write("scripts/seed.sql", &Script{Text: "x"}))

	assert.Equal(t, "x", testutil.ReadFile(t, afs, "scripts/seed.sql"))
}

func TestWriterStdout(t *testing.T) {
	afs := afero.NewMemMapFs()
	var out bytes.Buffer

	w := NewWriter(afs, &out)
	require.NoError(t, w.Write(StdoutPath, &Script{Text: "COMMIT;\n"}))

	assert.Equal(t, "COMMIT;\n", out.String())
	exists, err := afero.Exists(afs, StdoutPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriterFailure(t *testing.T) {
	afs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	w := NewWriter(afs, &bytes.Buffer{})
	err := w.Write("seed.sql", &Script{Text: "x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, generrors.ErrWriteFailed))
	assert.Equal(t, generrors.CodeWriteFailed, generrors.CodeOf(err))
}

func TestSummary(t *testing.T) {
	_, script := defaultScript(t)

	rows := script.Summary()
	require.Len(t, rows, 4)

	total := 0
	for _, row := range rows {
		assert.Equal(t, 1, row.System)
		switch row.PlanType {
		case "BusinessPlan":
			assert.Equal(t, 15, row.Sections)
		case "StrategicPlan":
			assert.Equal(t, 19, row.Sections)
		}
		total += row.Total()
	}
	assert.Equal(t, 72, total)
}

func TestWriteSummary(t *testing.T) {
	_, script := defaultScript(t)

	var out bytes.Buffer
	require.NoError(t, script.WriteSummary(&out))

	text := out.String()
	assert.Contains(t, text, "BusinessPlan")
	assert.Contains(t, text, "StrategicPlan")
	assert.Contains(t, text, "72")
}
