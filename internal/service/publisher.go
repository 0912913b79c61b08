package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"journey_poster/internal/domain"
)

// Publisher executes the side effect of a Decision and commits it.
type Publisher struct {
	poster   Poster
	progress ProgressWriter
	events   EventPublisher
	logger   *slog.Logger
}

// NewPublisher builds a Publisher. events may be nil.
func NewPublisher(poster Poster, progress ProgressWriter, events EventPublisher, logger *slog.Logger) *Publisher {
	return &Publisher{
		poster:   poster,
		progress: progress,
		events:   events,
		logger:   logger.With("component", "publisher", "mock", poster.IsMock()),
	}
}

func (p *Publisher) Execute(ctx context.Context, decision domain.Decision) domain.PublishOutcome {
	switch decision.Kind {
	case domain.DecisionApprove:
		return p.post(ctx, decision)
	case domain.DecisionSkip:
		return p.skip(ctx, decision)
	case domain.DecisionReject:
		return domain.PublishOutcome{
			Action:   domain.ActionRegenerate,
			Day:      decision.Day,
			Topic:    decision.Topic,
			Feedback: decision.Feedback,
		}
	case domain.DecisionQuit:
		return domain.PublishOutcome{
			Action: domain.ActionQuit,
			Day:    decision.Day,
			Topic:  decision.Topic,
		}
	default:
		message := decision.Message
		if message == "" {
			message = fmt.Sprintf("unknown decision %q", decision.Kind)
		}
		return domain.PublishOutcome{
			Action: domain.ActionFailed,
			Day:    decision.Day,
			Topic:  decision.Topic,
			Detail: message,
			Err:    errors.New(message),
		}
	}
}

// post leaves journey state untouched when the external call fails, so the
// same day can be retried.
func (p *Publisher) post(ctx context.Context, decision domain.Decision) domain.PublishOutcome {
	outcome := domain.PublishOutcome{
		Action: domain.ActionPosted,
		Day:    decision.Day,
		Topic:  decision.Topic,
		IsMock: p.poster.IsMock(),
	}

	postID, err := p.poster.CreatePost(ctx, decision.Content)
	if err != nil {
		p.logger.Error("failed to publish post", "day", decision.Day, "error", err)
		outcome.Action = domain.ActionFailed
		outcome.Err = fmt.Errorf("create post: %w", err)
		outcome.Detail = err.Error()
		var pubErr *domain.PublishError
		if errors.As(err, &pubErr) && pubErr.Detail != "" {
			outcome.Detail = pubErr.Detail
		}
		return outcome
	}
	outcome.PostID = postID

	item, err := p.progress.RecordPublished(ctx, decision.Day, decision.Topic, decision.Content, postID)
	if err != nil {
		p.logger.Error("post published but not recorded",
			"day", decision.Day,
			"post_id", postID,
			"error", err,
		)
		outcome.Action = domain.ActionFailed
		outcome.Err = fmt.Errorf("record published post %s: %w", postID, err)
		outcome.Detail = err.Error()
		return outcome
	}

	outcome.Success = true
	outcome.PostedAt = item.PostedAt

	p.logger.Info("post published",
		"day", decision.Day,
		"topic", decision.Topic,
		"post_id", postID,
		"char_count", item.CharCount,
	)

	if p.events != nil {
		if err := p.events.PublishPosted(ctx, item); err != nil {
			p.logger.Warn("failed to emit posted event", "day", decision.Day, "error", err)
		}
	}

	return outcome
}

func (p *Publisher) skip(ctx context.Context, decision domain.Decision) domain.PublishOutcome {
	outcome := domain.PublishOutcome{
		Action: domain.ActionSkipped,
		Day:    decision.Day,
		Topic:  decision.Topic,
	}

	if err := p.progress.AdvanceDayWithoutPosting(ctx); err != nil {
		p.logger.Error("failed to skip day", "day", decision.Day, "error", err)
		outcome.Action = domain.ActionFailed
		outcome.Err = fmt.Errorf("advance day: %w", err)
		outcome.Detail = err.Error()
		return outcome
	}

	outcome.Success = true
	p.logger.Info("day skipped", "day", decision.Day, "topic", decision.Topic)

	if p.events != nil {
		if err := p.events.PublishSkipped(ctx, decision.Day, decision.Topic); err != nil {
			p.logger.Warn("failed to emit skipped event", "day", decision.Day, "error", err)
		}
	}

	return outcome
}
