package api

import (
	"os"
	"path/filepath"

	"github.com/acs-faq/backend/internal/api/handlers"
	"github.com/acs-faq/backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	FAQ         *handlers.FAQHandler
	System      *handlers.SystemHandler
	RateLimiter *middleware.RateLimiter
	CORSOrigins []string
	StaticDir   string
	Logger      *logrus.Logger
}

// NewRouter wires every route. Rate limiting applies to the /api group only.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.CORSOrigins),
	)

	router.GET("/test", cfg.System.HandleTest)
	router.GET("/health", cfg.System.HandleHealth)
	router.GET("/health/detailed", cfg.System.HandleDetailedHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.RateLimit())
	}
	api.POST("/faq", cfg.FAQ.HandleFAQ)
	api.POST("/websearch", cfg.FAQ.HandleWebSearch)
	api.POST("/search", cfg.FAQ.HandleSearch)
	api.POST("/converse", cfg.FAQ.HandleConverse)

	mountStatic(router, cfg.StaticDir, cfg.Logger)

	return router
}

// mountStatic serves the chat UI when the directory exists.
func mountStatic(router *gin.Engine, dir string, logger *logrus.Logger) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.WithField("dir", dir).Warn("Static directory not found, chat UI disabled")
		return
	}

	router.Static("/static", dir)
	router.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(dir, "index.html"))
	})
}
