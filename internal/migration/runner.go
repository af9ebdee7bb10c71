package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/acs-faq/backend/internal/database"
	"github.com/sirupsen/logrus"
)

type Runner struct {
	dbManager *database.Manager
	logger    *logrus.Logger
}

func NewRunner(dbManager *database.Manager, logger *logrus.Logger) *Runner {
	return &Runner{
		dbManager: dbManager,
		logger:    logger,
	}
}

// RunMigrations creates the FAQ table and then applies any *.sql files found in migrationsPath.
func (r *Runner) RunMigrations(migrationsPath string) error {
	r.logger.Info("Starting database migrations...")

	if err := r.dbManager.Migrate(); err != nil {
		return fmt.Errorf("GORM auto-migration failed: %w", err)
	}

	if err := r.runSQLMigrations(migrationsPath); err != nil {
		return fmt.Errorf("SQL migrations failed: %w", err)
	}

	r.logger.Info("Database migrations completed successfully")
	return nil
}

func (r *Runner) runSQLMigrations(migrationsPath string) error {
	entries, err := os.ReadDir(migrationsPath)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.WithField("path", migrationsPath).Debug("No SQL migrations directory, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(migrationsPath, name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		for i, stmt := range splitStatements(string(content)) {
			r.logger.WithFields(logrus.Fields{
				"file":      name,
				"statement": i + 1,
			}).Debug("Executing SQL statement")

			if err := r.dbManager.DB.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to execute statement %d in %s: %w", i+1, name, err)
			}
		}
		r.logger.WithField("file", name).Info("Migration executed successfully")
	}

	return nil
}

// splitStatements drops "--" comment lines and splits on semicolons.
// Migrations here are plain DDL; dollar-quoted bodies are not supported.
func splitStatements(sql string) []string {
	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		kept = append(kept, line)
	}

	var statements []string
	for _, stmt := range strings.Split(strings.Join(kept, " "), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
