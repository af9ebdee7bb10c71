package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Completer is the language-model capability: given prompts, return text or fail.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

var ErrEmptyCompletion = errors.New("completion returned no choices")

// Client talks to an Azure OpenAI chat-completions deployment.
type Client struct {
	endpoint   string
	apiKey     string
	apiVersion string
	deployment string
	httpClient *http.Client
	logger     *logrus.Logger
}

type ClientConfig struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Deployment string
	Timeout    time.Duration
}

func NewClient(cfg ClientConfig, logger *logrus.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		apiVersion: cfg.APIVersion,
		deployment: cfg.Deployment,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Complete sends one chat completion and returns the trimmed content of the first choice.
// There is no retry: callers degrade on error.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	payload := ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	var response ChatCompletionResponse
	if err := c.makeRequest(ctx, http.MethodPost, c.completionsPath(), payload, &response); err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	c.logger.WithFields(logrus.Fields{
		"model":             response.Model,
		"prompt_tokens":     response.Usage.PromptTokens,
		"completion_tokens": response.Usage.CompletionTokens,
		"finish_reason":     response.Choices[0].FinishReason,
	}).Debug("Chat completion received")

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

func (c *Client) completionsPath() string {
	query := url.Values{}
	query.Set("api-version", c.apiVersion)
	return fmt.Sprintf("/openai/deployments/%s/chat/completions?%s", url.PathEscape(c.deployment), query.Encode())
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string, payload interface{}, result interface{}) error {
	url := c.endpoint + endpoint

	var body io.Reader
	var contentLength int

	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
		contentLength = len(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.WithFields(logrus.Fields{
		"method":     method,
		"deployment": c.deployment,
		"size":       contentLength,
	}).Debug("Making chat completion request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"status_code":   resp.StatusCode,
		"response_size": len(responseBody),
	}).Debug("Chat completion response received")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, describeError(responseBody))
	}

	if result != nil && len(responseBody) > 0 {
		if err := json.Unmarshal(responseBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// describeError prefers the provider's error message over the raw body.
func describeError(body []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		if envelope.Error.Code != "" {
			return envelope.Error.Code + ": " + envelope.Error.Message
		}
		return envelope.Error.Message
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return string(body)
}
