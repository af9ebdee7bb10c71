package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/acs-faq/backend/internal/health"
	"github.com/acs-faq/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// HealthReporter is implemented by health.HealthChecker.
type HealthReporter interface {
	CheckAll(ctx context.Context) health.OverallHealth
}

type SystemHandler struct {
	checker HealthReporter
}

func NewSystemHandler(checker HealthReporter) *SystemHandler {
	return &SystemHandler{checker: checker}
}

func (h *SystemHandler) HandleTest(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "API is working!"})
}

// HandleHealth is a liveness probe; it does not touch dependencies.
func (h *SystemHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: health.StatusHealthy})
}

func (h *SystemHandler) HandleDetailedHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	report := h.checker.CheckAll(ctx)

	status := http.StatusOK
	if report.Status != health.StatusHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
