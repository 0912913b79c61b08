package cli

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"journey_poster/internal/domain"
	"journey_poster/internal/service"
)

// Store is the read side of the progress store plus reset.
type Store interface {
	CurrentDay(ctx context.Context) (int, error)
	TopicForDay(ctx context.Context, day int) (*domain.CurriculumEntry, error)
	AllTopics(ctx context.Context) []domain.CurriculumEntry
	PostedDays(ctx context.Context) ([]int, error)
	RecentPosts(ctx context.Context, n int) ([]domain.PostedItem, error)
	PendingApproval(ctx context.Context) (*domain.PendingApproval, error)
	ProgressSnapshot(ctx context.Context) (*domain.Progress, error)
	ResetAll(ctx context.Context) error
}

type Runner interface {
	Run(ctx context.Context, opts service.RunOptions) (*domain.RunResult, error)
}

type Previewer interface {
	Generate(ctx context.Context, day int) (*domain.Draft, error)
}
