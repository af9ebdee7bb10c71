package faq

import (
	"context"
	"strings"
	"time"

	"github.com/acs-faq/backend/internal/llm"
	"github.com/acs-faq/backend/internal/metrics"
	"github.com/sirupsen/logrus"
)

// ErrorReply is returned to the user when the model call fails.
const ErrorReply = "Sorry, I encountered an error while processing your question. Please try again."

const (
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.1
)

// MatcherConfig zero values fall back to the defaults, so a temperature of exactly 0
// cannot be requested.
type MatcherConfig struct {
	MaxTokens   int
	Temperature float64
}

// MatchResult carries the text to show the user. Matched is false only when the model
// reported that no FAQ entry applies, which is the caller's cue to search elsewhere.
type MatchResult struct {
	Answer  string
	Matched bool
}

type Matcher struct {
	set       *Set
	completer llm.Completer
	config    MatcherConfig
	logger    *logrus.Logger
}

func NewMatcher(set *Set, completer llm.Completer, config MatcherConfig, logger *logrus.Logger) *Matcher {
	if config.MaxTokens <= 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	if config.Temperature <= 0 {
		config.Temperature = DefaultTemperature
	}
	return &Matcher{
		set:       set,
		completer: completer,
		config:    config,
		logger:    logger,
	}
}

// Match asks the model once. It never returns an error: a failed call becomes ErrorReply.
func (m *Matcher) Match(ctx context.Context, question string) MatchResult {
	start := time.Now()

	answer, err := m.completer.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: SystemPrompt,
		UserPrompt:   BuildPrompt(m.set, question),
		MaxTokens:    m.config.MaxTokens,
		Temperature:  m.config.Temperature,
	})
	if err != nil {
		metrics.FAQMatches.WithLabelValues("error").Inc()
		m.logger.WithError(err).WithField("duration", time.Since(start)).Error("FAQ match failed")
		return MatchResult{Answer: ErrorReply, Matched: true}
	}

	if strings.Contains(answer, NoMatchSentinel) || strings.TrimSpace(answer) == "" {
		metrics.FAQMatches.WithLabelValues("no_match").Inc()
		m.logger.WithField("duration", time.Since(start)).Info("No FAQ match found")
		return MatchResult{Answer: answer, Matched: false}
	}

	metrics.FAQMatches.WithLabelValues("matched").Inc()
	m.logger.WithFields(logrus.Fields{
		"duration":      time.Since(start),
		"answer_length": len(answer),
	}).Info("FAQ match found")

	return MatchResult{Answer: answer, Matched: true}
}
