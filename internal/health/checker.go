package health

import (
	"context"
	"time"

	"github.com/acs-faq/backend/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDisabled  = "disabled"
)

// Pinger is implemented by database.Manager.
type Pinger interface {
	HasDatabase() bool
	HasRedis() bool
	PingDatabase(ctx context.Context) error
	PingRedis(ctx context.Context) error
}

// HealthChecker probes the optional backing stores.
type HealthChecker struct {
	stores  Pinger
	faqSize int
	logger  *logrus.Logger
	started time.Time
}

func NewHealthChecker(stores Pinger, faqSize int, logger *logrus.Logger) *HealthChecker {
	return &HealthChecker{
		stores:  stores,
		faqSize: faqSize,
		logger:  logger,
		started: time.Now(),
	}
}

// ServiceHealth represents the health status of a service
type ServiceHealth struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	ResponseTime int    `json:"response_time_ms"`
	Error        string `json:"error,omitempty"`
	LastChecked  string `json:"last_checked"`
}

// OverallHealth represents the overall system health
type OverallHealth struct {
	Status     string          `json:"status"`
	Services   []ServiceHealth `json:"services"`
	FAQEntries int             `json:"faq_entries"`
	Uptime     string          `json:"uptime"`
}

func (h *HealthChecker) CheckPostgreSQL(ctx context.Context) ServiceHealth {
	return h.check(ctx, "postgresql", h.stores.HasDatabase(), h.stores.PingDatabase)
}

func (h *HealthChecker) CheckRedis(ctx context.Context) ServiceHealth {
	return h.check(ctx, "redis", h.stores.HasRedis(), h.stores.PingRedis)
}

func (h *HealthChecker) check(ctx context.Context, name string, enabled bool, ping func(context.Context) error) ServiceHealth {
	result := ServiceHealth{
		Name:        name,
		Status:      StatusDisabled,
		LastChecked: time.Now().Format(time.RFC3339),
	}
	if !enabled {
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	result.ResponseTime = int(time.Since(start).Milliseconds())

	result.Status = StatusHealthy
	metrics.DependencyUp.WithLabelValues(name).Set(1)
	if err != nil {
		result.Status = StatusUnhealthy
		result.Error = err.Error()
		metrics.DependencyUp.WithLabelValues(name).Set(0)
		h.logger.WithError(err).WithField("service", name).Error("Health check failed")
	}

	return result
}

// CheckAll performs health checks on all services
func (h *HealthChecker) CheckAll(ctx context.Context) OverallHealth {
	services := []ServiceHealth{
		h.CheckPostgreSQL(ctx),
		h.CheckRedis(ctx),
	}

	overallStatus := StatusHealthy
	for _, service := range services {
		if service.Status == StatusUnhealthy {
			overallStatus = StatusUnhealthy
			break
		}
	}

	return OverallHealth{
		Status:     overallStatus,
		Services:   services,
		FAQEntries: h.faqSize,
		Uptime:     time.Since(h.started).Round(time.Second).String(),
	}
}

// PeriodicHealthCheck runs health checks periodically
func (h *HealthChecker) PeriodicHealthCheck(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			health := h.CheckAll(ctx)
			h.logger.WithField("status", health.Status).Debug("Periodic health check completed")
		}
	}
}
