package database

import "strings"

// Lang represents the language of a seeded prompt row
type Lang string

const (
	// LangEN represents English prompts
	LangEN Lang = "en"
	// LangFR represents French prompts
	LangFR Lang = "fr"
)

// Languages lists every supported language in emission order
var Languages = []Lang{LangEN, LangFR}

// IsValid checks if the language is supported
func (l Lang) IsValid() bool {
	return l == LangEN || l == LangFR
}

// Code returns the upper-case language code used in row names (EN, FR)
func (l Lang) Code() string {
	return strings.ToUpper(string(l))
}

// Name returns the human-readable language name used in descriptions
func (l Lang) Name() string {
	switch l {
	case LangFR:
		return "French"
	default:
		return "English"
	}
}

// PlanType is the kind of generated document a prompt applies to
type PlanType string

const (
	PlanBusiness  PlanType = "BusinessPlan"
	PlanStrategic PlanType = "StrategicPlan"
)

// PlanTypes lists the plan types in emission order
var PlanTypes = []PlanType{PlanBusiness, PlanStrategic}

// IsValid checks if the plan type is known
func (p PlanType) IsValid() bool {
	return p == PlanBusiness || p == PlanStrategic
}

// Category classifies a prompt row
type Category string

const (
	CategorySystemPrompt      Category = "SystemPrompt"
	CategoryContentGeneration Category = "ContentGeneration"
)
