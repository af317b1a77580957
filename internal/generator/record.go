package generator

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"github.com/sqordia/prompt-seed/internal/database"
	generrors "github.com/sqordia/prompt-seed/internal/errors"
)

const (
	systemNotes  = "Default system prompt seeded from hardcoded prompts"
	sectionNotes = "Default prompt seeded from hardcoded prompts"

	// QuestionnaireVariable is substituted by the application at generation time
	QuestionnaireVariable = "{questionnaireContext}"

	userPromptFormat = "%s\n\n" + QuestionnaireVariable + "\n\nBased on the questionnaire responses above, " +
		"write a comprehensive %s section for this business plan. " +
		"Make it specific to this business, using the details provided. Aim for 400-600 words."
)

var (
	systemVariables  = datatypes.JSON(`{}`)
	sectionVariables = datatypes.JSON(`{"questionnaireContext": "The questionnaire responses context"}`)
)

var validate = validator.New()

// Record is the logical "AIPrompts" row rendered into one INSERT statement
type Record struct {
	Name               string            `validate:"required"`
	Description        string            `validate:"required"`
	Category           database.Category `validate:"required,oneof=SystemPrompt ContentGeneration"`
	PlanType           database.PlanType `validate:"required,oneof=BusinessPlan StrategicPlan"`
	Language           database.Lang     `validate:"required,oneof=en fr"`
	SectionName        *string           `validate:"required_if=Category ContentGeneration"`
	SystemPrompt       string            `validate:"required"`
	UserPromptTemplate string            `validate:"required_if=Category ContentGeneration"`
	Variables          datatypes.JSON    `validate:"required"`
	IsActive           bool
	Version            int `validate:"gte=1"`
	Notes              string
}

// NewSystemRecord builds the system prompt row for a plan type and language
func NewSystemRecord(plan database.PlanType, lang database.Lang, systemPrompt string) Record {
	return Record{
		Name:         fmt.Sprintf("System Prompt - %s - %s", plan, lang.Code()),
		Description:  fmt.Sprintf("Default system prompt for %s in %s", plan, lang.Name()),
		Category:     database.CategorySystemPrompt,
		PlanType:     plan,
		Language:     lang,
		SystemPrompt: systemPrompt,
		Variables:    systemVariables,
		IsActive:     true,
		Version:      1,
		Notes:        systemNotes,
	}
}

// NewSectionRecord builds the content generation row for one section
func NewSectionRecord(plan database.PlanType, lang database.Lang, section, systemPrompt, template string) Record {
	return Record{
		Name:               fmt.Sprintf("%s - %s - %s", section, plan, lang.Code()),
		Description:        fmt.Sprintf("Prompt for generating %s section in %s plans (%s)", section, plan, lang),
		Category:           database.CategoryContentGeneration,
		PlanType:           plan,
		Language:           lang,
		SectionName:        &section,
		SystemPrompt:       systemPrompt,
		UserPromptTemplate: UserPrompt(template, section),
		Variables:          sectionVariables,
		IsActive:           true,
		Version:            1,
		Notes:              sectionNotes,
	}
}

// UserPrompt expands a section instruction into the stored user prompt template
func UserPrompt(template, section string) string {
	return fmt.Sprintf(userPromptFormat, template, section)
}

// Section returns the section name, or "" for system prompt rows
func (r Record) Section() string {
	if r.SectionName == nil {
		return ""
	}
	return *r.SectionName
}

// Label is the comment line written above the statement
func (r Record) Label() string {
	if r.Category == database.CategorySystemPrompt {
		return fmt.Sprintf("System Prompt: %s - %s", r.PlanType, r.Language.Name())
	}
	return fmt.Sprintf("%s - %s - %s", r.Section(), r.PlanType, r.Language.Code())
}

// Validate checks the record before it is rendered
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return generrors.InvalidRecord(r.Name, err)
	}
	if r.Category == database.CategorySystemPrompt && r.SectionName != nil {
		return generrors.InvalidRecord(r.Name, fmt.Errorf("system prompt rows have no section"))
	}
	if !json.Valid(r.Variables) {
		return generrors.InvalidRecord(r.Name, fmt.Errorf("variables are not valid JSON"))
	}
	return nil
}
