package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acs-faq/backend/internal/api"
	"github.com/acs-faq/backend/internal/api/handlers"
	"github.com/acs-faq/backend/internal/config"
	"github.com/acs-faq/backend/internal/database"
	"github.com/acs-faq/backend/internal/faq"
	"github.com/acs-faq/backend/internal/guidance"
	"github.com/acs-faq/backend/internal/health"
	"github.com/acs-faq/backend/internal/llm"
	"github.com/acs-faq/backend/internal/middleware"
	"github.com/acs-faq/backend/internal/repository"
	"github.com/acs-faq/backend/internal/services"
	"github.com/acs-faq/backend/internal/websearch"
	"github.com/acs-faq/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
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

	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("Configuration validation failed")
	}

	dbManager, err := database.NewManager(&database.Config{
		DatabaseURL: cfg.Database.URL,
		RedisURL:    cfg.Redis.URL,
		LogLevel:    cfg.LogLevel,
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database manager")
	}
	defer dbManager.Close()

	faqSet, err := loadFAQs(cfg, dbManager)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load FAQ entries")
	}
	logger.WithFields(logrus.Fields{
		"source":  cfg.FAQ.Source,
		"entries": faqSet.Len(),
	}).Info("FAQ entries loaded")

	service := buildService(cfg, faqSet, logger)

	var store middleware.CounterStore
	if dbManager.HasRedis() {
		store = middleware.NewRedisStore(dbManager.Redis)
	} else {
		memory := middleware.NewMemoryStore()
		defer memory.Close()
		store = memory
	}

	checker := health.NewHealthChecker(dbManager, faqSet.Len(), logger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go checker.PeriodicHealthCheck(ctx, time.Minute)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(api.RouterConfig{
		FAQ:         handlers.NewFAQHandler(service, cfg.Server.RequestTimeout, logger),
		System:      handlers.NewSystemHandler(checker),
		RateLimiter: middleware.NewRateLimiter(store, cfg.Server.RateLimit, logger),
		CORSOrigins: cfg.Server.CORSOrigins,
		StaticDir:   cfg.Server.StaticDir,
		Logger:      logger,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Starting ACS FAQ server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutdown signal received, draining requests...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}

	logger.Info("Server stopped")
}

func loadFAQs(cfg *config.Config, dbManager *database.Manager) (*faq.Set, error) {
	if cfg.FAQ.Source == config.FAQSourcePostgres {
		return faq.LoadFromRepository(repository.NewFAQRepository(dbManager.DB))
	}
	return faq.LoadFile(cfg.FAQ.Path)
}

func buildService(cfg *config.Config, faqSet *faq.Set, logger *logrus.Logger) *services.FAQService {
	client := llm.NewClient(llm.ClientConfig{
		Endpoint:   cfg.LLM.Endpoint,
		APIKey:     cfg.LLM.APIKey,
		APIVersion: cfg.LLM.APIVersion,
		Deployment: cfg.LLM.Deployment,
		Timeout:    cfg.LLM.Timeout,
	}, logger)

	matcher := faq.NewMatcher(faqSet, client, faq.MatcherConfig{
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	}, logger)

	instant := websearch.NewInstantClient(cfg.Search.InstantURL, cfg.Search.UserAgent, cfg.Search.InstantTimeout, logger)
	extractor := websearch.NewExtractor(cfg.Search.ExtractTimeout, logger)
	scraper := websearch.NewScraper(websearch.ScraperConfig{
		SearchURL:     cfg.Search.LiteURL,
		SiteScope:     cfg.Search.SiteScope,
		DomainPrefix:  cfg.Search.DomainPrefix,
		UserAgent:     cfg.Search.UserAgent,
		Timeout:       cfg.Search.ScrapeTimeout,
		MaxHits:       cfg.Search.MaxHits,
		MaxParagraphs: cfg.Search.MaxParagraphs,
	}, extractor, logger)

	generator := guidance.NewGenerator(logger)
	resolver := services.NewResolver([]services.Layer{instant, scraper}, generator, logger)

	return services.NewFAQService(matcher, resolver, generator, logger)
}
