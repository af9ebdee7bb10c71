package database

import (
	"context"
	"fmt"
	"time"

	"github.com/acs-faq/backend/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Manager holds the optional backing stores. Either connection may be nil when its URL is unset.
type Manager struct {
	DB     *gorm.DB
	Redis  *redis.Client
	logger *logrus.Logger
}

// Database configuration
type Config struct {
	DatabaseURL string
	RedisURL    string
	LogLevel    string
}

// NewManager connects to whichever stores are configured and pings them.
func NewManager(config *Config, logger *logrus.Logger) (*Manager, error) {
	m := &Manager{logger: logger}

	if config.DatabaseURL != "" {
		db, err := openPostgres(config, logger)
		if err != nil {
			return nil, err
		}
		m.DB = db
		logger.Info("PostgreSQL connection established")
	}

	if config.RedisURL != "" {
		client, err := openRedis(config.RedisURL)
		if err != nil {
			m.Close()
			return nil, err
		}
		m.Redis = client
		logger.Info("Redis connection established")
	}

	return m, nil
}

// NewManagerWith wraps connections opened elsewhere.
func NewManagerWith(db *gorm.DB, client *redis.Client, logger *logrus.Logger) *Manager {
	return &Manager{DB: db, Redis: client, logger: logger}
}

func openPostgres(config *Config, logger *logrus.Logger) (*gorm.DB, error) {
	var gormLogger gormlogger.Interface
	switch config.LogLevel {
	case "debug":
		gormLogger = gormlogger.New(
			logger,
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Info,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		)
	default:
		gormLogger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(config.DatabaseURL), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// The FAQ table is read once at startup and by the seeder, so the pool stays small.
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func openRedis(url string) (*redis.Client, error) {
	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	redisOpts.PoolSize = 20
	redisOpts.MinIdleConns = 2
	redisOpts.MaxConnAge = time.Hour
	redisOpts.IdleTimeout = 30 * time.Minute

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

func (m *Manager) HasDatabase() bool { return m.DB != nil }
func (m *Manager) HasRedis() bool    { return m.Redis != nil }

// Migrate creates or updates the FAQ table.
func (m *Manager) Migrate() error {
	if m.DB == nil {
		return fmt.Errorf("database is not configured")
	}
	m.logger.Info("Running database migrations...")
	return m.DB.AutoMigrate(&models.FAQRecord{})
}

// Close closes all database connections
func (m *Manager) Close() error {
	if m.Redis != nil {
		if err := m.Redis.Close(); err != nil {
			m.logger.WithError(err).Error("Failed to close Redis connection")
		}
	}

	if m.DB != nil {
		sqlDB, err := m.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

// Health check methods
func (m *Manager) PingDatabase(ctx context.Context) error {
	if m.DB == nil {
		return fmt.Errorf("database is not configured")
	}
	sqlDB, err := m.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (m *Manager) PingRedis(ctx context.Context) error {
	if m.Redis == nil {
		return fmt.Errorf("redis is not configured")
	}
	return m.Redis.Ping(ctx).Err()
}
