package services

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/acs-faq/backend/internal/apperr"
	"github.com/acs-faq/backend/internal/faq"
	"github.com/acs-faq/backend/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	MaxQuestionLength = 2000

	FAQOnlyReply = "Okay, I'll only search the ACS FAQs for your questions."
)

// confirmationPattern matches replies like "yes" or "go ahead" as whole words.
var confirmationPattern = regexp.MustCompile(`(?i)\b(yes|go ahead|sure|ok|okay|proceed|search)\b`)

// Matcher is the FAQ lookup the service depends on.
type Matcher interface {
	Match(ctx context.Context, question string) faq.MatchResult
}

// FAQService implements the three question-answering operations exposed over HTTP.
type FAQService struct {
	matcher  Matcher
	resolver *Resolver
	guidance Terminal
	logger   *logrus.Logger
}

func NewFAQService(matcher Matcher, resolver *Resolver, guidance Terminal, logger *logrus.Logger) *FAQService {
	return &FAQService{
		matcher:  matcher,
		resolver: resolver,
		guidance: guidance,
		logger:   logger,
	}
}

// NormalizeQuestion trims the question and rejects empty or oversized input.
func NormalizeQuestion(question string) (string, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return "", apperr.ErrInvalidInput
	}
	if utf8.RuneCountInString(q) > MaxQuestionLength {
		return "", apperr.InvalidInput("Question too long (max 2000 characters).")
	}
	return q, nil
}

// IsConfirmation reports whether the question reads as a "yes, go on" reply.
func IsConfirmation(question string) bool {
	return confirmationPattern.MatchString(question)
}

// AnswerFAQ answers from the FAQ set and falls back to the web chain when nothing matches.
// Confirmation replies skip straight to general guidance since no conversation state is kept.
func (s *FAQService) AnswerFAQ(ctx context.Context, question string) (models.Answer, error) {
	q, err := NormalizeQuestion(question)
	if err != nil {
		return models.Answer{}, err
	}

	s.logger.WithField("question", q).Info("Received question")

	if IsConfirmation(q) {
		s.logger.Info("User confirmed, providing general guidance")
		return models.Answer{Text: s.guidance.Generate(q)}, nil
	}

	match := s.matcher.Match(ctx, q)
	if match.Matched {
		return models.Answer{Text: match.Answer}, nil
	}

	s.logger.WithField("question", q).Info("No FAQ match found, starting fallback sequence")
	return models.Answer{Text: s.resolver.Resolve(ctx, q)}, nil
}

// WebSearch runs the fallback chain directly unless the user declined.
func (s *FAQService) WebSearch(ctx context.Context, question string, confirm bool) (models.Answer, error) {
	q, err := NormalizeQuestion(question)
	if err != nil {
		return models.Answer{}, err
	}

	if !confirm {
		return models.Answer{Text: FAQOnlyReply}, nil
	}

	s.logger.WithField("question", q).Info("Web search with fallback sequence")
	return models.Answer{Text: s.resolver.Resolve(ctx, q)}, nil
}

// RawSearch runs the fallback chain without consulting the FAQ set.
func (s *FAQService) RawSearch(ctx context.Context, question string) (models.Answer, error) {
	q, err := NormalizeQuestion(question)
	if err != nil {
		return models.Answer{}, err
	}

	s.logger.WithField("question", q).Info("Direct web search")
	return models.Answer{Text: s.resolver.Resolve(ctx, q)}, nil
}

// Converse is the conversational variant of WebSearch that may ask for confirmation.
func (s *FAQService) Converse(ctx context.Context, question string) (models.Answer, error) {
	q, err := NormalizeQuestion(question)
	if err != nil {
		return models.Answer{}, err
	}
	return s.resolver.ResolveWithConfirmation(ctx, q), nil
}
