package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/acs-faq/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestFAQRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFAQRepository(db)

	rows := sqlmock.NewRows([]string{"id", "question", "answer", "position"}).
		AddRow(1, "What are ACS hours?", "Monday to Friday, 9 AM to 5 PM.", 0).
		AddRow(2, "How do I report abuse?", "Call 1-800-342-3720.", 1)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "faq_entries" ORDER BY position ASC,id ASC`)).
		WillReturnRows(rows)

	records, err := repo.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "What are ACS hours?", records[0].Question)
	assert.Equal(t, "Call 1-800-342-3720.", records[1].Answer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFAQRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFAQRepository(db)

	mock.ExpectQuery(`INSERT INTO "faq_entries" .* ON CONFLICT \("question"\) DO UPDATE SET .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	record := &models.FAQRecord{Question: "What are ACS hours?", Answer: "9 to 5.", Position: 0}
	require.NoError(t, repo.Upsert(record))
	assert.Equal(t, uint(7), record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFAQRepository_UpsertRejectsInvalid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFAQRepository(db)

	err := repo.Upsert(&models.FAQRecord{Question: "  ", Answer: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFAQRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFAQRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "faq_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFAQRepository_DeleteExcept(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFAQRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "faq_entries" WHERE question NOT IN ($1,$2)`)).
		WithArgs("What are ACS hours?", "How do I report abuse?").
		WillReturnResult(sqlmock.NewResult(0, 2))

	removed, err := repo.DeleteExcept([]string{"What are ACS hours?", "How do I report abuse?"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFAQRepository_DeleteExceptRequiresQuestions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFAQRepository(db)

	_, err := repo.DeleteExcept(nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
