package seeder

import (
	"fmt"

	"github.com/acs-faq/backend/internal/models"
	"github.com/acs-faq/backend/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Sync makes the faq_entries table mirror records in one transaction: every record is
// upserted and rows whose question is no longer present are deleted.
func Sync(db *gorm.DB, records []models.FAQRecord, logger *logrus.Logger) (int64, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("no faq entries to store")
	}

	var removed int64
	err := db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewFAQRepository(tx)

		questions := make([]string, 0, len(records))
		for i := range records {
			if err := repo.Upsert(&records[i]); err != nil {
				return fmt.Errorf("failed to store %q: %w", records[i].Question, err)
			}
			questions = append(questions, records[i].Question)
			logger.WithField("question", records[i].Question).Debug("FAQ entry stored")
		}

		var err error
		removed, err = repo.DeleteExcept(questions)
		if err != nil {
			return fmt.Errorf("failed to remove stale entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
