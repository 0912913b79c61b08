package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"journey_poster/internal/domain"
)

// RunOptions selects the day to run (0 means the current day) and whether
// the approval step is bypassed.
type RunOptions struct {
	Day         int
	AutoApprove bool
}

// Orchestrator drives generate, approve and publish for one day, looping
// back to generation when a draft is rejected.
type Orchestrator struct {
	days             DayReader
	generator        *Generator
	gate             *ApprovalGate
	publisher        *Publisher
	maxRegenerations int
	logger           *slog.Logger

	running atomic.Bool
}

func NewOrchestrator(
	days DayReader,
	generator *Generator,
	gate *ApprovalGate,
	publisher *Publisher,
	logger *slog.Logger,
	maxRegenerations int,
) *Orchestrator {
	return &Orchestrator{
		days:             days,
		generator:        generator,
		gate:             gate,
		publisher:        publisher,
		maxRegenerations: maxRegenerations,
		logger:           logger.With("component", "orchestrator"),
	}
}

// Run executes one workflow. Stage failures are reported in the result;
// the error return is reserved for runs that could not start.
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) (*domain.RunResult, error) {
	if !o.running.CompareAndSwap(false, true) {
		return nil, domain.ErrRunInProgress
	}
	defer o.running.Store(false)

	startTime := time.Now()

	day := opts.Day
	if day == 0 {
		current, err := o.days.CurrentDay(ctx)
		if err != nil {
			return nil, fmt.Errorf("current day: %w", err)
		}
		day = current
	}

	wc := domain.WorkflowContext{
		RunID:       uuid.NewString(),
		Day:         day,
		AutoApprove: opts.AutoApprove,
	}
	logger := o.logger.With("run_id", wc.RunID, "day", day)
	logger.Info("starting run", "auto_approve", wc.AutoApprove)

	result := &domain.RunResult{RunID: wc.RunID, Day: day}
	o.drive(ctx, wc, result, logger)
	result.Duration = time.Since(startTime)

	logger.Info("run finished",
		"stage", result.Stage,
		"posted", result.Posted(),
		"skipped", result.Skipped(),
		"quit", result.QuitRequested,
		"regenerations", result.Regenerations,
		"error", result.Err,
		"duration", result.Duration,
	)

	return result, nil
}

// Running reports whether a run is in progress.
func (o *Orchestrator) Running() bool {
	return o.running.Load()
}

func (o *Orchestrator) drive(ctx context.Context, wc domain.WorkflowContext, result *domain.RunResult, logger *slog.Logger) {
	for {
		result.Stage = domain.StageGenerating
		draft, err := o.generate(ctx, wc)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyPosted) {
				logger.Info("day already posted")
			} else {
				logger.Error("generation failed", "attempt", wc.Attempt, "error", err)
			}
			result.Err = err
			return
		}
		result.Draft = draft

		result.Stage = domain.StageApproval
		decision := o.gate.Review(ctx, draft, wc.AutoApprove)
		result.Decision = &decision

		result.Stage = domain.StagePublishing
		outcome := o.publisher.Execute(ctx, decision)
		result.Outcome = &outcome

		switch outcome.Action {
		case domain.ActionRegenerate:
			if result.Regenerations >= o.maxRegenerations {
				result.Err = fmt.Errorf("after %d regenerations: %w", result.Regenerations, domain.ErrRegenerationLimit)
				return
			}
			if err := ctx.Err(); err != nil {
				result.Err = err
				return
			}
			result.Regenerations++
			wc = wc.WithFeedback(outcome.Feedback)
			logger.Info("regenerating", "attempt", wc.Attempt, "feedback", wc.Feedback != "")
		case domain.ActionQuit:
			result.QuitRequested = true
			return
		case domain.ActionFailed:
			result.Err = outcome.Err
			return
		default:
			return
		}
	}
}

func (o *Orchestrator) generate(ctx context.Context, wc domain.WorkflowContext) (*domain.Draft, error) {
	if wc.Regenerating() {
		return o.generator.Regenerate(ctx, wc.Day, wc.Feedback)
	}
	return o.generator.Generate(ctx, wc.Day)
}
