package database

import (
	"fmt"
	"sync"

	"gorm.io/gorm/schema"
)

// Guard columns used by the WHERE NOT EXISTS clause of each row kind
var (
	SystemPromptGuard = []string{"Category", "PlanType", "Language"}
	SectionGuard      = []string{"SectionName", "PlanType", "Language", "Category"}
)

var (
	promptSchema     *schema.Schema
	promptSchemaErr  error
	promptSchemaOnce sync.Once
)

// PromptSchema parses the AIPrompt model without opening a connection
func PromptSchema() (*schema.Schema, error) {
	promptSchemaOnce.Do(func() {
		promptSchema, promptSchemaErr = schema.Parse(&AIPrompt{}, &sync.Map{}, schema.NamingStrategy{})
	})
	return promptSchema, promptSchemaErr
}

// InsertColumns returns the column names of the "AIPrompts" table in model order
func InsertColumns() ([]string, error) {
	s, err := PromptSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt schema: %w", err)
	}

	columns := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		if field.DBName == "" {
			continue
		}
		columns = append(columns, field.DBName)
	}
	return columns, nil
}

// PromptTable returns the table name resolved by gorm for the AIPrompt model
func PromptTable() string {
	s, err := PromptSchema()
	if err != nil || s.Table == "" {
		return AIPrompt{}.TableName()
	}
	return s.Table
}
