package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/acs-faq/backend/internal/apperr"
	"github.com/acs-faq/backend/internal/metrics"
	"github.com/acs-faq/backend/internal/models"
	"github.com/acs-faq/backend/internal/websearch"
	"github.com/sirupsen/logrus"
)

// Acceptability thresholds. Changing them changes which layer answers.
var (
	FailureMarker       = "couldn't find"
	MinAcceptableLength = 50
)

// Layer is one network-backed stage of the fallback chain.
type Layer interface {
	Name() string
	Lookup(ctx context.Context, question string) websearch.Result
}

// Terminal always produces an answer.
type Terminal interface {
	Generate(question string) string
}

// Acceptable reports whether a layer's text is good enough to stop the chain.
func Acceptable(text string) bool {
	if text == "" || strings.Contains(text, FailureMarker) {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(text)) > MinAcceptableLength
}

// Resolver runs the layers in order and returns the first acceptable text,
// falling back to the terminal generator.
type Resolver struct {
	layers   []Layer
	terminal Terminal
	logger   *logrus.Logger
}

func NewResolver(layers []Layer, terminal Terminal, logger *logrus.Logger) *Resolver {
	return &Resolver{
		layers:   layers,
		terminal: terminal,
		logger:   logger,
	}
}

// Resolve always returns non-empty text. A panic in any layer is answered by the terminal generator.
func (r *Resolver) Resolve(ctx context.Context, question string) (answer string) {
	defer func() {
		if rec := recover(); rec != nil {
			metrics.ResolverRecoveries.Inc()
			r.logger.WithError(apperr.Unexpected(fmt.Errorf("%v", rec))).
				WithField("question", question).
				Error("Fallback chain panicked, using direct guidance")
			answer = r.terminal.Generate(question)
		}
	}()

	for _, layer := range r.layers {
		if text, ok := r.try(ctx, layer, question); ok {
			return text
		}
	}

	r.logger.WithField("question", question).Info("Providing direct answer")
	metrics.ResolverLayerOutcomes.WithLabelValues("direct", metrics.OutcomeAccepted).Inc()
	return r.terminal.Generate(question)
}

func (r *Resolver) try(ctx context.Context, layer Layer, question string) (string, bool) {
	name := layer.Name()
	start := time.Now()

	result := layer.Lookup(ctx, question)
	metrics.ResolverLayerDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	fields := logrus.Fields{
		"layer":    name,
		"duration": time.Since(start),
	}

	switch {
	case result.Err != nil:
		metrics.ResolverLayerOutcomes.WithLabelValues(name, metrics.OutcomeFailed).Inc()
		r.logger.WithFields(fields).WithError(result.Err).Warn("Layer failed, advancing")
		return "", false
	case !Acceptable(result.Text):
		metrics.ResolverLayerOutcomes.WithLabelValues(name, metrics.OutcomeRejected).Inc()
		r.logger.WithFields(fields).
			WithField("code", apperr.CodeDegradedAnswer).
			Debug("Layer result not acceptable, advancing")
		return "", false
	}

	metrics.ResolverLayerOutcomes.WithLabelValues(name, metrics.OutcomeAccepted).Inc()
	r.logger.WithFields(fields).Info("Layer returned good results")
	return result.Text, true
}

// ResolveWithConfirmation wraps Resolve for conversational clients: a thin result asks the
// user whether they want general guidance instead.
func (r *Resolver) ResolveWithConfirmation(ctx context.Context, question string) models.Answer {
	text := r.Resolve(ctx, question)
	if utf8.RuneCountInString(strings.TrimSpace(text)) > MinAcceptableLength {
		return models.Answer{Text: text}
	}

	return models.Answer{
		Text: fmt.Sprintf("I couldn't find comprehensive information about '%s' in the ACS FAQs or through web search. "+
			"Would you like me to provide general guidance or contact information instead?", question),
		NeedsConfirmation: true,
	}
}
