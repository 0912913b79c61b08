package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"journey_poster/internal/domain"
)

// LLM is the text-generation capability.
type LLM interface {
	Chat(ctx context.Context, messages []domain.Message) (string, error)
}

// Poster is the publishing capability; the mock variant shares the contract.
type Poster interface {
	CreatePost(ctx context.Context, content string) (string, error)
	VerifyCredentials(ctx context.Context) (*domain.Profile, error)
	IsMock() bool
}

// EventPublisher receives journey events after state has been committed.
type EventPublisher interface {
	PublishPosted(ctx context.Context, item *domain.PostedItem) error
	PublishSkipped(ctx context.Context, day int, topic string) error
	Close() error
}

// TopicStore is the part of the progress store the generator reads.
type TopicStore interface {
	TopicForDay(ctx context.Context, day int) (*domain.CurriculumEntry, error)
	IsDayPosted(ctx context.Context, day int) (bool, error)
	RecentPostsSummary(ctx context.Context, n int) (string, error)
}

// PendingStore holds the single in-flight approved draft.
type PendingStore interface {
	SetPendingApproval(ctx context.Context, snapshot domain.PendingApproval) error
}

// ProgressWriter commits the effect of a decision.
type ProgressWriter interface {
	RecordPublished(ctx context.Context, day int, topic, content, externalID string) (*domain.PostedItem, error)
	AdvanceDayWithoutPosting(ctx context.Context) error
}

type DayReader interface {
	CurrentDay(ctx context.Context) (int, error)
}

// Prompter is the human side of the approval gate.
type Prompter interface {
	ShowDraft(draft *domain.Draft)
	ShowEdited(content string)
	Notice(message string)
	ReadLine(ctx context.Context, prompt string) (string, error)
}
