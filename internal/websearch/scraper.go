package websearch

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/acs-faq/backend/internal/apperr"
	"github.com/gocolly/colly/v2"
	"github.com/sirupsen/logrus"
)

const (
	ScrapeLeadIn     = "Here's what I found on the official NYC ACS website:\n\n"
	NoSnippetMessage = "No description available"
	maxSnippetLength = 200
	defaultMaxHits   = 3
)

// ParagraphExtractor is the part of Extractor the scraper depends on.
type ParagraphExtractor interface {
	ExtractParagraphs(ctx context.Context, pageURL string, maxParagraphs int) string
}

type ScraperConfig struct {
	SearchURL     string
	SiteScope     string
	DomainPrefix  string
	UserAgent     string
	Timeout       time.Duration
	MaxHits       int
	MaxParagraphs int
}

// Scraper runs a site-scoped search on the lite HTML endpoint and enriches each hit
// with paragraphs from the linked page.
type Scraper struct {
	config    ScraperConfig
	base      *colly.Collector
	extractor ParagraphExtractor
	logger    *logrus.Logger
}

func NewScraper(config ScraperConfig, extractor ParagraphExtractor, logger *logrus.Logger) *Scraper {
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}
	if config.MaxHits <= 0 {
		config.MaxHits = defaultMaxHits
	}
	if config.MaxParagraphs <= 0 {
		config.MaxParagraphs = DefaultMaxParagraphs
	}

	c := colly.NewCollector(
		colly.UserAgent(config.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(config.Timeout)

	return &Scraper{
		config:    config,
		base:      c,
		extractor: extractor,
		logger:    logger,
	}
}

func (s *Scraper) Name() string { return "scrape" }

func (s *Scraper) Lookup(ctx context.Context, question string) Result {
	return s.ScrapeAndExtract(ctx, question)
}

// ScrapeAndExtract renders up to MaxHits numbered hits, each followed by extracted page text.
// No qualifying hits yields an empty Result.
func (s *Scraper) ScrapeAndExtract(ctx context.Context, question string) Result {
	hits, err := s.Search(ctx, question)
	if err != nil {
		s.logger.WithError(err).WithField("question", question).Warn("Site search failed")
		return Failed(apperr.UpstreamUnavailable("site search", err))
	}
	if len(hits) == 0 {
		s.logger.WithField("question", question).Debug("Site search returned no official results")
		return Result{}
	}

	var b strings.Builder
	b.WriteString(ScrapeLeadIn)
	for i, hit := range hits {
		fmt.Fprintf(&b, "**%d. %s**\n", i+1, hit.Title)
		fmt.Fprintf(&b, "%s\n", hit.Snippet)
		fmt.Fprintf(&b, "%s\n\n", s.extractor.ExtractParagraphs(ctx, hit.Link, s.config.MaxParagraphs))
	}

	return Found(b.String())
}

// Search fetches the result listing and returns the hits on the official domain.
func (s *Scraper) Search(ctx context.Context, question string) ([]SearchHit, error) {
	var hits []SearchHit
	var processingError error

	c := s.base.Clone()

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	c.OnHTML("tr", func(e *colly.HTMLElement) {
		if len(hits) >= s.config.MaxHits {
			return
		}
		if hit, ok := s.parseRow(e.DOM); ok {
			hits = append(hits, hit)
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		processingError = err
	})

	if err := c.Visit(s.searchURL(question)); err != nil {
		return nil, fmt.Errorf("failed to visit search page: %w", err)
	}
	if processingError != nil {
		return nil, fmt.Errorf("processing error: %w", processingError)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"question": question,
		"hits":     len(hits),
	}).Debug("Site search parsed")

	return hits, nil
}

func (s *Scraper) searchURL(question string) string {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("site:%s %s", s.config.SiteScope, question))
	return s.config.SearchURL + "?" + params.Encode()
}

// parseRow reads the first link of a result row. The snippet is the row text after that
// link; when the row has none, the lite layout's following snippet row is used.
func (s *Scraper) parseRow(row *goquery.Selection) (SearchHit, bool) {
	anchor := row.Find("a[href]").First()
	if anchor.Length() == 0 {
		return SearchHit{}, false
	}

	href, _ := anchor.Attr("href")
	link := unwrapRedirect(strings.TrimSpace(href))
	title := collapseWhitespace(anchor.Text())

	if title == "" || !strings.HasPrefix(link, s.config.DomainPrefix) {
		return SearchHit{}, false
	}

	snippet := textAfter(row.Get(0), anchor.Get(0))
	if snippet == "" {
		snippet = collapseWhitespace(row.Next().Find("td.result-snippet").Text())
	}
	if snippet == "" {
		snippet = NoSnippetMessage
	}

	return SearchHit{
		Title:   title,
		Link:    link,
		Snippet: truncateRunes(snippet, maxSnippetLength),
	}, true
}
