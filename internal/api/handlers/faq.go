package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/acs-faq/backend/internal/apperr"
	"github.com/acs-faq/backend/internal/models"
	"github.com/acs-faq/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FAQAnswerer is implemented by services.FAQService.
type FAQAnswerer interface {
	AnswerFAQ(ctx context.Context, question string) (models.Answer, error)
	WebSearch(ctx context.Context, question string, confirm bool) (models.Answer, error)
	RawSearch(ctx context.Context, question string) (models.Answer, error)
	Converse(ctx context.Context, question string) (models.Answer, error)
}

type FAQHandler struct {
	service FAQAnswerer
	timeout time.Duration
	logger  *logrus.Logger
}

// NewFAQHandler bounds each request by timeout, which must cover the whole fallback chain.
func NewFAQHandler(service FAQAnswerer, timeout time.Duration, logger *logrus.Logger) *FAQHandler {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &FAQHandler{
		service: service,
		timeout: timeout,
		logger:  logger,
	}
}

// HandleFAQ answers from the FAQ set, falling back to the web.
func (h *FAQHandler) HandleFAQ(c *gin.Context) {
	var req models.FAQRequest
	if !h.bind(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	answer, err := h.service.AnswerFAQ(ctx, req.Question)
	if err != nil {
		h.fail(c, "answer_faq", err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

// HandleWebSearch runs the fallback chain unless confirm is false.
func (h *FAQHandler) HandleWebSearch(c *gin.Context) {
	var req models.WebSearchRequest
	if !h.bind(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	answer, err := h.service.WebSearch(ctx, req.Question, req.Confirmed())
	if err != nil {
		h.fail(c, "web_search", err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

// HandleSearch runs the fallback chain and returns only the answer text.
func (h *FAQHandler) HandleSearch(c *gin.Context) {
	var req models.FAQRequest
	if !h.bind(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	answer, err := h.service.RawSearch(ctx, req.Question)
	if err != nil {
		h.fail(c, "raw_search", err)
		return
	}
	c.JSON(http.StatusOK, models.RawAnswer{Text: answer.Text})
}

// HandleConverse may answer with needs_confirmation set when the result is thin.
func (h *FAQHandler) HandleConverse(c *gin.Context) {
	var req models.FAQRequest
	if !h.bind(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	answer, err := h.service.Converse(ctx, req.Question)
	if err != nil {
		h.fail(c, "converse", err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

func (h *FAQHandler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.WithError(err).Warn("Invalid request body")
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	return true
}

func (h *FAQHandler) fail(c *gin.Context, operation string, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Code == apperr.CodeInvalidInput {
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message, nil)
		return
	}

	h.logger.WithError(err).WithField("operation", operation).Error("Request failed")
	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", err)
}
