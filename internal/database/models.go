package database

import (
	"time"

	"gorm.io/datatypes"
)

// AIPrompt mirrors a row of the "AIPrompts" table owned by the application.
// Field order defines the column order of generated INSERT statements.
type AIPrompt struct {
	ID                 string         `gorm:"column:Id;type:uuid;primaryKey"`
	Name               string         `gorm:"column:Name;not null"`
	Description        string         `gorm:"column:Description;not null"`
	Category           Category       `gorm:"column:Category;not null"`
	PlanType           PlanType       `gorm:"column:PlanType;not null"`
	Language           Lang           `gorm:"column:Language;not null"`
	SectionName        *string        `gorm:"column:SectionName"`
	SystemPrompt       string         `gorm:"column:SystemPrompt;not null"`
	UserPromptTemplate string         `gorm:"column:UserPromptTemplate;not null"`
	Variables          datatypes.JSON `gorm:"column:Variables;type:text;not null"`
	IsActive           bool           `gorm:"column:IsActive;not null"`
	Version            int            `gorm:"column:Version;not null"`
	UsageCount         int            `gorm:"column:UsageCount;not null"`
	AverageRating      float64        `gorm:"column:AverageRating;not null"`
	RatingCount        int            `gorm:"column:RatingCount;not null"`
	Notes              *string        `gorm:"column:Notes"`
	Created            time.Time      `gorm:"column:Created;not null"`
	IsDeleted          bool           `gorm:"column:IsDeleted;not null"`
}

// TableName specifies the table name for AIPrompt
func (AIPrompt) TableName() string {
	return "AIPrompts"
}
