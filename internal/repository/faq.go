package repository

import (
	"fmt"

	"github.com/acs-faq/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FAQRepositoryImpl implements FAQRepository
type FAQRepositoryImpl struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) models.FAQRepository {
	return &FAQRepositoryImpl{db: db}
}

// List returns every stored entry in display order.
func (r *FAQRepositoryImpl) List() ([]models.FAQRecord, error) {
	var records []models.FAQRecord
	err := r.db.Order("position ASC").
		Order("id ASC").
		Find(&records).Error
	return records, err
}

// Upsert inserts the entry or, when the question already exists, refreshes its answer and position.
func (r *FAQRepositoryImpl) Upsert(record *models.FAQRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "position", "updated_at"}),
	}).Create(record).Error
}

func (r *FAQRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.FAQRecord{}).Count(&count).Error
	return count, err
}

// DeleteExcept removes every entry whose question is not in questions.
func (r *FAQRepositoryImpl) DeleteExcept(questions []string) (int64, error) {
	if len(questions) == 0 {
		return 0, fmt.Errorf("refusing to delete every faq entry")
	}
	result := r.db.Where("question NOT IN ?", questions).Delete(&models.FAQRecord{})
	return result.RowsAffected, result.Error
}
