package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLangHelpers(t *testing.T) {
	assert.True(t, LangEN.IsValid())
	assert.True(t, LangFR.IsValid())
	assert.False(t, Lang("de").IsValid())

	assert.Equal(t, "EN", LangEN.Code())
	assert.Equal(t, "FR", LangFR.Code())
	assert.Equal(t, "English", LangEN.Name())
	assert.Equal(t, "French", LangFR.Name())
}

func TestPlanTypeIsValid(t *testing.T) {
	assert.True(t, PlanBusiness.IsValid())
	assert.True(t, PlanStrategic.IsValid())
	assert.False(t, PlanType("Pitch").IsValid())
}
