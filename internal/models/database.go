package models

// GORM models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FAQRecord is a stored FAQ entry. Position keeps the order the entries are shown to the model.
type FAQRecord struct {
	BaseModel
	Question string `json:"question" gorm:"uniqueIndex;not null"`
	Answer   string `json:"answer" gorm:"type:text;not null"`
	Position int    `json:"position" gorm:"not null;default:0"`
}

// FAQRepository is the read/write surface the FAQ loader and seeder need.
type FAQRepository interface {
	List() ([]FAQRecord, error)
	Upsert(record *FAQRecord) error
	Count() (int64, error)
	DeleteExcept(questions []string) (int64, error)
}

func (FAQRecord) TableName() string { return "faq_entries" }

func (f *FAQRecord) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return fmt.Errorf("faq question is required")
	}
	if strings.TrimSpace(f.Answer) == "" {
		return fmt.Errorf("faq answer is required for %q", f.Question)
	}
	if f.Position < 0 {
		return fmt.Errorf("faq position cannot be negative")
	}
	return nil
}

// GORM hooks
func (f *FAQRecord) BeforeCreate(tx *gorm.DB) error {
	return f.Validate()
}

func (f *FAQRecord) BeforeUpdate(tx *gorm.DB) error {
	return f.Validate()
}
