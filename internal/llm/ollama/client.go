package ollama

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"journey_poster/internal/domain"
)

// Config holds Ollama client configuration.
type Config struct {
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// Client talks to the Ollama chat API. Retries are the caller's concern;
// rate-limit responses come back wrapped in domain.ErrRateLimited.
type Client struct {
	http        *resty.Client
	model       string
	temperature float64
	logger      *slog.Logger
}

// New creates a new Ollama client.
func New(cfg Config, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "JourneyPoster/1.0")

	return &Client{
		http:        httpClient,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      logger.With("component", "ollama", "model", cfg.Model),
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Chat sends messages and returns the generated text.
func (c *Client) Chat(ctx context.Context, messages []domain.Message) (string, error) {
	var (
		out     chatResponse
		failure errorResponse
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model:    c.model,
			Messages: messages,
			Stream:   false,
			Options:  chatOptions{Temperature: c.temperature},
		}).
		SetResult(&out).
		SetError(&failure).
		Post("/api/chat")
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}

	if resp.IsError() {
		return "", statusError(resp.StatusCode(), failure.Error, resp.String())
	}

	text := strings.TrimSpace(out.Message.Content)
	if text == "" {
		return "", fmt.Errorf("ollama returned empty text")
	}

	c.logger.Debug("chat completed",
		"messages", len(messages),
		"chars", len(text),
		"elapsed", resp.Time(),
	)

	return text, nil
}

// ListModels returns the names of locally installed models.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	var out tagsResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/tags")
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode())
	}

	names := make([]string, 0, len(out.Models))
	for _, m := range out.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// HasModel reports whether the configured model is installed. Ollama names
// carry a tag suffix, so "llama3.2" matches "llama3.2:latest".
func (c *Client) HasModel(ctx context.Context) (bool, []string, error) {
	names, err := c.ListModels(ctx)
	if err != nil {
		return false, nil, err
	}
	for _, name := range names {
		if strings.Contains(name, c.model) {
			return true, names, nil
		}
	}
	return false, names, nil
}

func statusError(status int, message, body string) error {
	if message == "" {
		message = body
	}
	if status == http.StatusTooManyRequests || strings.Contains(message, "RESOURCE_EXHAUSTED") {
		return fmt.Errorf("status %d: %s: %w", status, message, domain.ErrRateLimited)
	}
	return fmt.Errorf("unexpected status %d: %s", status, message)
}
