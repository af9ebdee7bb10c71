package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/acs-faq/backend/internal/config"
	"github.com/acs-faq/backend/internal/database"
	"github.com/acs-faq/backend/internal/faq"
	"github.com/acs-faq/backend/internal/migration"
	"github.com/acs-faq/backend/internal/repository"
	"github.com/acs-faq/backend/internal/seeder"
	"github.com/acs-faq/backend/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	// Command line flags
	faqFile        = flag.String("file", "", "FAQ YAML file to load (defaults to faq.path)")
	migrationsPath = flag.String("migrations", "migrations", "Directory of .sql migrations")
	dryRun         = flag.Bool("dry-run", false, "Don't write to the database, just print what would be stored")
	verbose        = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.LogLevel)
	logger := utils.GetLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	path := *faqFile
	if path == "" {
		path = cfg.FAQ.Path
	}

	logger.WithField("file", path).Info("Starting FAQ seeder...")

	set, err := faq.LoadFile(path)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load FAQ file")
	}

	processor := seeder.NewEntryProcessor()
	entries, report := processor.Prepare(set.Entries())
	records := processor.ToRecords(entries)

	logger.WithFields(logrus.Fields{
		"input":      report.Input,
		"kept":       report.Kept,
		"duplicates": report.Duplicates,
		"empty":      report.Empty,
		"words":      report.Words,
	}).Info("FAQ entries prepared")

	if *dryRun {
		for _, record := range records {
			fmt.Printf("[%d] %s\n    %s\n", record.Position, record.Question, record.Answer)
		}
		return
	}

	if cfg.Database.URL == "" {
		logger.Fatal("DATABASE_URL is required unless -dry-run is set")
	}

	dbManager, err := database.NewManager(&database.Config{
		DatabaseURL: cfg.Database.URL,
		LogLevel:    cfg.LogLevel,
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database manager")
	}
	defer dbManager.Close()

	if err := migration.NewRunner(dbManager, logger).RunMigrations(*migrationsPath); err != nil {
		logger.WithError(err).Fatal("Migrations failed")
	}

	removed, err := seeder.Sync(dbManager.DB, records, logger)
	if err != nil {
		logger.WithError(err).Fatal("FAQ seeding failed")
	}
	logger.WithField("removed", removed).Info("Stale FAQ entries removed")

	repo := repository.NewFAQRepository(dbManager.DB)
	total, err := repo.Count()
	if err != nil {
		logger.WithError(err).Warn("Could not count stored FAQ entries")
	}
	logger.WithField("stored", total).Info("FAQ seeding completed successfully!")
}
