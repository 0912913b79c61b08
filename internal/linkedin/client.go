package linkedin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"journey_poster/internal/domain"
)

const personURNPrefix = "urn:li:person:"

type Config struct {
	BaseURL     string
	AccessToken string
	PersonID    string
	Visibility  string
	Timeout     time.Duration
}

// Client publishes text posts through the UGC posts API.
type Client struct {
	http       *resty.Client
	author     string
	visibility string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	author := cfg.PersonID
	if !strings.HasPrefix(author, personURNPrefix) {
		author = personURNPrefix + author
	}

	visibility := cfg.Visibility
	if visibility == "" {
		visibility = "PUBLIC"
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Restli-Protocol-Version", "2.0.0").
		SetHeader("LinkedIn-Version", "202401")

	return &Client{
		http:       httpClient,
		author:     author,
		visibility: visibility,
		logger:     logger.With("component", "linkedin"),
	}
}

func (c *Client) IsMock() bool {
	return false
}

// CreatePost publishes text and returns the post URN from x-restli-id.
// Failures are returned as *domain.PublishError.
func (c *Client) CreatePost(ctx context.Context, content string) (string, error) {
	payload := ugcPost{
		Author:         c.author,
		LifecycleState: "PUBLISHED",
		SpecificContent: specificContent{
			ShareContent: shareContent{
				ShareCommentary:    text{Text: content},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: visibility{MemberNetworkVisibility: c.visibility},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/ugcPosts")
	if err != nil {
		return "", &domain.PublishError{Detail: "Network error occurred", Err: err}
	}

	if resp.IsError() {
		return "", &domain.PublishError{
			StatusCode: resp.StatusCode(),
			Detail:     resp.String(),
			Err:        errors.New(resp.Status()),
		}
	}

	postID := resp.Header().Get("x-restli-id")
	c.logger.Info("post created", "post_id", postID, "chars", len(content))

	return postID, nil
}

// VerifyCredentials fetches the authenticated member's profile.
func (c *Client) VerifyCredentials(ctx context.Context) (*domain.Profile, error) {
	var me meResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&me).
		Get("/me")
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode())
	}

	return &domain.Profile{ID: me.ID, FirstName: me.FirstName, LastName: me.LastName}, nil
}
