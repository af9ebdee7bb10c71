package websearch

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gocolly/colly/v2"
	"github.com/sirupsen/logrus"
)

const (
	NoContentMessage     = "No relevant text content found on this page."
	ExtractFailedMessage = "Couldn't extract content from the official page."

	ExtractorUserAgent   = "Mozilla/5.0"
	DefaultMaxParagraphs = 3
	minParagraphLength   = 40
)

// Extractor pulls readable paragraphs out of an official content page.
type Extractor struct {
	base   *colly.Collector
	logger *logrus.Logger
}

func NewExtractor(timeout time.Duration, logger *logrus.Logger) *Extractor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := colly.NewCollector(
		colly.UserAgent(ExtractorUserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(timeout)

	return &Extractor{
		base:   c,
		logger: logger,
	}
}

// ExtractParagraphs returns up to maxParagraphs paragraphs longer than 40 characters, in document
// order, joined by blank lines. It always returns text: one of the two sentinels when
// nothing usable was found or the page could not be fetched.
func (x *Extractor) ExtractParagraphs(ctx context.Context, pageURL string, maxParagraphs int) string {
	if maxParagraphs <= 0 {
		maxParagraphs = DefaultMaxParagraphs
	}

	var paragraphs []string
	var processingError error

	// Callbacks are per call; the clone shares only the transport.
	c := x.base.Clone()

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	c.OnHTML("p", func(e *colly.HTMLElement) {
		if len(paragraphs) >= maxParagraphs {
			return
		}
		text := strings.TrimSpace(e.Text)
		if utf8.RuneCountInString(text) > minParagraphLength {
			paragraphs = append(paragraphs, text)
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		processingError = err
	})

	if err := c.Visit(pageURL); err != nil && processingError == nil {
		processingError = err
	}
	if processingError == nil && ctx.Err() != nil {
		processingError = ctx.Err()
	}

	if processingError != nil {
		x.logger.WithError(processingError).WithField("url", pageURL).Warn("Failed to extract page content")
		return ExtractFailedMessage
	}

	if len(paragraphs) == 0 {
		return NoContentMessage
	}

	x.logger.WithFields(logrus.Fields{
		"url":        pageURL,
		"paragraphs": len(paragraphs),
	}).Debug("Content extracted")

	return strings.Join(paragraphs, "\n\n")
}
