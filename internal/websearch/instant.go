package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/acs-faq/backend/internal/apperr"
	"github.com/sirupsen/logrus"
)

const (
	InstantLeadIn = "I couldn't find an exact match in the ACS FAQs. Here's what I found:\n\n"

	minInstantLength = 30
	maxRelatedTopics = 2
	maxInfoboxItems  = 3
)

// InstantClient queries the DuckDuckGo instant-answer API.
type InstantClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewInstantClient(baseURL, userAgent string, timeout time.Duration, logger *logrus.Logger) *InstantClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &InstantClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *InstantClient) Name() string { return "instant" }

func (c *InstantClient) Lookup(ctx context.Context, question string) Result {
	return c.QueryInstant(ctx, question)
}

// QueryInstant makes a single request and renders whichever fields are present.
// Short assemblies come back empty; transport and decode problems come back as a failed Result.
func (c *InstantClient) QueryInstant(ctx context.Context, question string) Result {
	data, err := c.fetch(ctx, question)
	if err != nil {
		c.logger.WithError(err).WithField("question", question).Warn("Instant answer lookup failed")
		return Failed(apperr.UpstreamUnavailable("instant answer API", err))
	}

	text := renderInstant(data)
	if len([]rune(strings.TrimSpace(text))) <= minInstantLength {
		c.logger.WithField("question", question).Debug("Instant answer had no substantial content")
		return Result{}
	}

	return Found(InstantLeadIn + text)
}

func (c *InstantClient) fetch(ctx context.Context, question string) (*instantResponse, error) {
	params := url.Values{}
	params.Set("q", question)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("instant answer API returned status %d", resp.StatusCode)
	}

	var data instantResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &data, nil
}

func renderInstant(data *instantResponse) string {
	var b strings.Builder

	if strings.TrimSpace(string(data.Answer)) != "" {
		fmt.Fprintf(&b, "**Direct Answer:** %s\n\n", data.Answer)
	}

	if strings.TrimSpace(string(data.Abstract)) != "" {
		fmt.Fprintf(&b, "**Summary:** %s\n\n", data.Abstract)
		if data.AbstractURL != "" {
			fmt.Fprintf(&b, "**Source:** %s\n\n", data.AbstractURL)
		}
	}

	if strings.TrimSpace(string(data.Definition)) != "" {
		fmt.Fprintf(&b, "**Definition:** %s\n\n", data.Definition)
		if data.DefinitionURL != "" {
			fmt.Fprintf(&b, "**Source:** %s\n\n", data.DefinitionURL)
		}
	}

	topics := data.RelatedTopics
	if len(topics) > maxRelatedTopics {
		topics = topics[:maxRelatedTopics]
	}
	var related strings.Builder
	for _, topic := range topics {
		if strings.TrimSpace(string(topic.Text)) == "" {
			continue
		}
		fmt.Fprintf(&related, "• %s\n", topic.Text)
		if topic.FirstURL != "" {
			fmt.Fprintf(&related, "  🔗 %s\n", topic.FirstURL)
		}
	}
	if related.Len() > 0 {
		fmt.Fprintf(&b, "**Related Information:**\n%s\n", related.String())
	}

	items := data.Infobox.Content
	if len(items) > maxInfoboxItems {
		items = items[:maxInfoboxItems]
	}
	if len(items) > 0 {
		b.WriteString("**Key Information:**\n")
		for _, item := range items {
			if item.Label != "" && item.Value != "" {
				fmt.Fprintf(&b, "• **%s**: %s\n", item.Label, item.Value)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
