package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/sqordia/prompt-seed/internal/database"
	generrors "github.com/sqordia/prompt-seed/internal/errors"
	"github.com/sqordia/prompt-seed/internal/sqltext"
	"github.com/sqordia/prompt-seed/internal/testutil"
)

func newRenderer(t *testing.T, ids IDMode) *Renderer {
	t.Helper()
	r, err := NewRenderer(ids)
	require.NoError(t, err)
	return r
}

func TestRenderSystemRecord(t *testing.T) {
	r := newRenderer(t, IDDatabase)

	got, err := r.Render(NewSystemRecord(database.PlanBusiness, database.LangEN, "Be helpful."))
	require.NoError(t, err)

	want := `-- System Prompt: BusinessPlan - English
INSERT INTO "AIPrompts" (
    "Id", "Name", "Description", "Category", "PlanType", "Language",
    "SectionName", "SystemPrompt", "UserPromptTemplate", "Variables", "IsActive", "Version",
    "UsageCount", "AverageRating", "RatingCount", "Notes", "Created", "IsDeleted"
)
SELECT
    gen_random_uuid(),
    'System Prompt - BusinessPlan - EN',
    'Default system prompt for BusinessPlan in English',
    'SystemPrompt',
    'BusinessPlan',
    'en',
    NULL,
    $en_SP$Be helpful.$en_SP$,
    '',
    '{}',
    true,
    1,
    0,
    0.0,
    0,
    'Default system prompt seeded from hardcoded prompts',
    NOW() AT TIME ZONE 'UTC',
    false
WHERE NOT EXISTS (
    SELECT 1 FROM "AIPrompts"
    WHERE "Category" = 'SystemPrompt'
    AND "PlanType" = 'BusinessPlan'
    AND "Language" = 'en'
);`
	assert.Equal(t, want, got)
}

func TestRenderSectionRecord(t *testing.T) {
	r := newRenderer(t, IDDatabase)

	rec := NewSectionRecord(database.PlanStrategic, database.LangFR, "MissionStatement", "Système.", "Rédigez l'énoncé de mission.")
	got, err := r.Render(rec)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "-- MissionStatement - StrategicPlan - FR\n"))
	assert.Contains(t, got, "'MissionStatement - StrategicPlan - FR',")
	assert.Contains(t, got, "'Prompt for generating MissionStatement section in StrategicPlan plans (fr)',")
	assert.Contains(t, got, "'ContentGeneration',")
	assert.Contains(t, got, "$fr_SP$Système.$fr_SP$,")
	assert.Contains(t, got, `'{"questionnaireContext": "The questionnaire responses context"}',`)
	assert.Contains(t, got, "'Default prompt seeded from hardcoded prompts',")

	assert.True(t, strings.HasSuffix(got, `WHERE NOT EXISTS (
    SELECT 1 FROM "AIPrompts"
    WHERE "SectionName" = 'MissionStatement'
    AND "PlanType" = 'StrategicPlan'
    AND "Language" = 'fr'
    AND "Category" = 'ContentGeneration'
);`))

	literal, ok := testutil.ExtractLiteral(got, "fr_UP")
	require.True(t, ok)
	_, template, err := sqltext.Unquote(literal)
	require.NoError(t, err)
	assert.Equal(t, UserPrompt("Rédigez l'énoncé de mission.", "MissionStatement"), template)
	assert.True(t, strings.HasPrefix(template, "Rédigez l'énoncé de mission.\n\n{questionnaireContext}\n\n"))
	assert.True(t, strings.HasSuffix(template, "write a comprehensive MissionStatement section for this business plan. Make it specific to this business, using the details provided. Aim for 400-600 words."))
}

func TestRenderDollarSign(t *testing.T) {
	r := newRenderer(t, IDDatabase)

	got, err := r.Render(NewSystemRecord(database.PlanBusiness, database.LangEN, "Budget in $ only."))
	require.NoError(t, err)
	assert.Contains(t, got, "$en_SP$Budget in $$ only.$en_SP$")

	literal, ok := testutil.ExtractLiteral(got, "en_SP")
	require.True(t, ok)
	_, text, err := sqltext.Unquote(literal)
	require.NoError(t, err)
	assert.Equal(t, "Budget in $ only.", text)
}

func TestRenderDelimiterCollision(t *testing.T) {
	r := newRenderer(t, IDDatabase)

	got, err := r.Render(NewSystemRecord(database.PlanBusiness, database.LangEN, "Never write $en_SP$ here."))
	require.NoError(t, err)

	literal, ok := testutil.ExtractLiteral(got, "en_SP1")
	require.True(t, ok)
	tag, text, err := sqltext.Unquote(literal)
	require.NoError(t, err)
	assert.Equal(t, "en_SP1", tag)
	assert.Equal(t, "Never write $en_SP$ here.", text)
}

func TestRenderStableIDs(t *testing.T) {
	r := newRenderer(t, IDStable)
	rec := NewSectionRecord(database.PlanBusiness, database.LangEN, "Solution", "sys", "tmpl")

	first, err := r.Render(rec)
	require.NoError(t, err)
	second, err := r.Render(rec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "'"+StableID(rec).String()+"'::uuid,")
	assert.NotContains(t, first, "gen_random_uuid()")

	other := NewSectionRecord(database.PlanBusiness, database.LangFR, "Solution", "sys", "tmpl")
	assert.NotEqual(t, StableID(rec), StableID(other))
}

func TestNewRendererUnknownIDMode(t *testing.T) {
	_, err := NewRenderer("random")
	assert.Error(t, err)
}

func TestRenderInvalidRecords(t *testing.T) {
	r := newRenderer(t, IDDatabase)
	section := "Solution"

	tests := []struct {
		name string
		rec  Record
	}{
		{"empty record", Record{}},
		{"unknown plan", NewSystemRecord("Pitch", database.LangEN, "sys")},
		{"unknown language", NewSystemRecord(database.PlanBusiness, "de", "sys")},
		{"empty system prompt", NewSystemRecord(database.PlanBusiness, database.LangEN, "")},
		{"section row without section", func() Record {
			rec := NewSectionRecord(database.PlanBusiness, database.LangEN, "Solution", "sys", "tmpl")
			rec.SectionName = nil
			return rec
		}()},
		{"system row with section", func() Record {
			rec := NewSystemRecord(database.PlanBusiness, database.LangEN, "sys")
			rec.SectionName = &section
			return rec
		}()},
		{"invalid variables", func() Record {
			rec := NewSystemRecord(database.PlanBusiness, database.LangEN, "sys")
			rec.Variables = datatypes.JSON(`{broken`)
			return rec
		}()},
		{"zero version", func() Record {
			rec := NewSystemRecord(database.PlanBusiness, database.LangEN, "sys")
			rec.Version = 0
			return rec
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(tt.rec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, generrors.ErrInvalidRecord))
		})
	}
}

func TestRecordLabel(t *testing.T) {
	assert.Equal(t, "System Prompt: StrategicPlan - French",
		NewSystemRecord(database.PlanStrategic, database.LangFR, "sys").Label())
	assert.Equal(t, "SwotAnalysis - BusinessPlan - EN",
		NewSectionRecord(database.PlanBusiness, database.LangEN, "SwotAnalysis", "sys", "tmpl").Label())
}

func BenchmarkRenderSectionRecord(b *testing.B) {
	r, err := NewRenderer(IDDatabase)
	if err != nil {
		b.Fatal(err)
	}
	rec := NewSectionRecord(database.PlanBusiness, database.LangFR, "Solution", "Système", "Présentez la solution.")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(rec); err != nil {
			b.Fatal(err)
		}
	}
}
