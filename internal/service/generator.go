package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"journey_poster/internal/config"
	"journey_poster/internal/domain"
)

const (
	summaryPosts      = 3
	hashtagWindow     = 200
	hashtagInputLimit = 500
	truncateMargin    = 100
	paragraphBreak    = "\n\n"
)

// Generator produces candidate posts for a day of the journey.
type Generator struct {
	llm    LLM
	topics TopicStore
	logger *slog.Logger
	config config.JourneyConfig
	retry  config.RetryConfig
}

func NewGenerator(
	llm LLM,
	topics TopicStore,
	logger *slog.Logger,
	cfg config.JourneyConfig,
	retry config.RetryConfig,
) *Generator {
	return &Generator{
		llm:    llm,
		topics: topics,
		logger: logger.With("component", "generator"),
		config: cfg,
		retry:  retry,
	}
}

// Generate builds a fresh draft for day.
func (g *Generator) Generate(ctx context.Context, day int) (*domain.Draft, error) {
	return g.generate(ctx, day, "", false)
}

// Regenerate asks for a materially different draft for day, optionally
// steered by feedback.
func (g *Generator) Regenerate(ctx context.Context, day int, feedback string) (*domain.Draft, error) {
	return g.generate(ctx, day, feedback, true)
}

func (g *Generator) generate(ctx context.Context, day int, feedback string, regenerate bool) (*domain.Draft, error) {
	entry, err := g.topics.TopicForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("topic for day %d: %w", day, err)
	}

	posted, err := g.topics.IsDayPosted(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("check day %d: %w", day, err)
	}
	if posted {
		return nil, fmt.Errorf("day %d: %w", day, domain.ErrAlreadyPosted)
	}

	previous, err := g.topics.RecentPostsSummary(ctx, summaryPosts)
	if err != nil {
		return nil, fmt.Errorf("recent posts summary: %w", err)
	}

	prompt, err := g.storyPrompt(entry, previous, feedback)
	if err != nil {
		return nil, err
	}

	system := storySystemPrompt
	if regenerate {
		system = regenerateSystemPrompt
	}

	g.logger.Info("generating post",
		"day", day,
		"topic", entry.Topic,
		"regenerate", regenerate,
		"feedback", feedback != "",
	)

	content, err := g.chat(ctx, []domain.Message{
		{Role: domain.RoleSystem, Content: system},
		{Role: domain.RoleUser, Content: prompt},
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	if utf8.RuneCountInString(content) > g.config.MaxPostLength {
		g.logger.Debug("truncating generated post", "length", utf8.RuneCountInString(content))
		content = Truncate(content, g.config.MaxPostLength)
	}

	if !HasTrailingHashtags(content) {
		hashtags, err := g.hashtags(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("generate hashtags: %w", err)
		}
		content = content + "\n\n---\n" + hashtags
	}

	return &domain.Draft{
		Day:         day,
		Topic:       entry.Topic,
		Category:    entry.Category,
		Difficulty:  entry.Difficulty,
		Content:     content,
		CharCount:   utf8.RuneCountInString(content),
		Regenerated: regenerate,
	}, nil
}

func (g *Generator) hashtags(ctx context.Context, content string) (string, error) {
	prompt, err := g.hashtagPrompt(head(content, hashtagInputLimit))
	if err != nil {
		return "", err
	}

	text, err := g.chat(ctx, []domain.Message{{Role: domain.RoleUser, Content: prompt}})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// chat retries rate-limited calls, waiting BackoffStep*n before retry n.
func (g *Generator) chat(ctx context.Context, messages []domain.Message) (string, error) {
	for retry := 0; ; retry++ {
		text, err := g.llm.Chat(ctx, messages)
		if err == nil {
			return text, nil
		}

		if !errors.Is(err, domain.ErrRateLimited) {
			return "", err
		}

		if retry == g.retry.MaxRetries {
			return "", fmt.Errorf("after %d retries: %w", retry, domain.ErrRetriesExhausted)
		}

		backoff := g.retry.BackoffStep * time.Duration(retry+1)
		g.logger.Warn("rate limited, retrying",
			"retry", retry+1,
			"max_retries", g.retry.MaxRetries,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// Truncate shortens content to at most max characters. It cuts at max-100
// and, when the last paragraph break falls in the final 30% of that cut,
// ends there instead.
func Truncate(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}

	limit := max - truncateMargin
	if limit <= 0 {
		limit = max
	}

	cut := string(runes[:limit])
	idx := strings.LastIndex(cut, paragraphBreak)
	if idx >= 0 && float64(utf8.RuneCountInString(cut[:idx])) >= float64(limit)*0.7 {
		return cut[:idx]
	}
	return cut
}

// HasTrailingHashtags reports whether the last 200 characters contain '#'.
func HasTrailingHashtags(content string) bool {
	runes := []rune(content)
	if len(runes) > hashtagWindow {
		runes = runes[len(runes)-hashtagWindow:]
	}
	return strings.ContainsRune(string(runes), '#')
}

func head(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
