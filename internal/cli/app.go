package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"journey_poster/internal/console"
	"journey_poster/internal/domain"
	"journey_poster/internal/scheduler"
	"journey_poster/internal/service"
)

const historySize = 10

type Options struct {
	TotalDays int
	// AutoApprove applies to scheduled runs and to the non-interactive
	// post command.
	AutoApprove bool
	PostingTime string
	Location    *time.Location
	Mock        bool
	Model       string
}

// App maps console commands onto the journey operations.
type App struct {
	store   Store
	runner  Runner
	preview Previewer
	console *console.Console
	logger  *slog.Logger
	opts    Options
	now     func() time.Time
}

func New(store Store, runner Runner, preview Previewer, con *console.Console, logger *slog.Logger, opts Options) *App {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &App{
		store:   store,
		runner:  runner,
		preview: preview,
		console: con,
		logger:  logger.With("component", "cli"),
		opts:    opts,
		now:     time.Now,
	}
}

// Execute runs a single command given on the command line.
func (a *App) Execute(ctx context.Context, command string) error {
	switch strings.ToLower(command) {
	case "schedule":
		return a.Schedule(ctx)
	case "post":
		a.Post(ctx, a.opts.AutoApprove)
		return nil
	case "status":
		a.Status(ctx)
		return nil
	default:
		return fmt.Errorf("unknown command %q (want schedule, post or status)", command)
	}
}

// Interactive reads commands until quit, end of input or ctx is done.
func (a *App) Interactive(ctx context.Context) error {
	a.console.Print(console.RenderHelp())

	for {
		line, err := a.console.ReadLine(ctx, "\n> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := a.dispatch(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			a.console.Print("Goodbye!")
			return nil
		}
	}
}

func (a *App) dispatch(ctx context.Context, line string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
	case "generate", "g":
		a.Preview(ctx)
	case "post", "p":
		a.Post(ctx, false)
	case "status", "s":
		a.Status(ctx)
	case "history", "h":
		a.History(ctx)
	case "curriculum", "c":
		a.Curriculum(ctx)
	case "schedule":
		if err := a.Schedule(ctx); err != nil {
			return false, err
		}
	case "reset":
		a.Reset(ctx)
	case "help", "?":
		a.console.Print(console.RenderHelp())
	case "quit", "q", "exit":
		return true, nil
	default:
		a.console.Error(fmt.Sprintf("Unknown command %q. Type help for the list.", strings.TrimSpace(line)))
	}
	return false, nil
}

// Preview generates today's draft without approval or publishing.
func (a *App) Preview(ctx context.Context) {
	day, err := a.store.CurrentDay(ctx)
	if err != nil {
		a.fail("read current day", err)
		return
	}
	if day > a.opts.TotalDays {
		a.console.Success("Journey complete!")
		return
	}

	a.console.Notice(fmt.Sprintf("Generating preview for day %d...", day))
	draft, err := a.preview.Generate(ctx, day)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyPosted) {
			a.console.Notice(fmt.Sprintf("Day %d has already been posted.", day))
			return
		}
		a.fail("generate preview", err)
		return
	}
	a.console.ShowDraft(draft)
}

// Post runs the full workflow for the current day.
func (a *App) Post(ctx context.Context, autoApprove bool) {
	day, err := a.store.CurrentDay(ctx)
	if err != nil {
		a.fail("read current day", err)
		return
	}
	if day > a.opts.TotalDays {
		a.console.Success("Journey complete! All days have been posted.")
		return
	}

	result, err := a.runner.Run(ctx, service.RunOptions{AutoApprove: autoApprove})
	if errors.Is(err, domain.ErrRunInProgress) {
		a.console.Error("A post is already in progress.")
		return
	}
	if err != nil {
		a.fail("run workflow", err)
		return
	}
	a.console.Print(console.RenderResult(result))
}

func (a *App) Status(ctx context.Context) {
	progress, err := a.store.ProgressSnapshot(ctx)
	if err != nil {
		a.fail("read progress", err)
		return
	}

	view := console.StatusView{
		Progress: progress,
		Mock:     a.opts.Mock,
		Model:    a.opts.Model,
	}
	if a.opts.PostingTime != "" {
		view.Schedule = fmt.Sprintf("daily at %s (%s)", a.opts.PostingTime, a.opts.Location)
	}

	if !progress.Completed() {
		topic, err := a.store.TopicForDay(ctx, progress.CurrentDay)
		if err != nil && !errors.Is(err, domain.ErrTopicNotFound) {
			a.fail("read topic", err)
			return
		}
		view.Topic = topic
	}

	pending, err := a.store.PendingApproval(ctx)
	if err != nil {
		a.fail("read pending approval", err)
		return
	}
	view.Pending = pending

	a.console.Print(console.RenderStatus(view))
}

func (a *App) History(ctx context.Context) {
	posts, err := a.store.RecentPosts(ctx, historySize)
	if err != nil {
		a.fail("read history", err)
		return
	}
	a.console.Print(console.RenderHistory(posts))
}

func (a *App) Curriculum(ctx context.Context) {
	posted, err := a.store.PostedDays(ctx)
	if err != nil {
		a.fail("read history", err)
		return
	}
	day, err := a.store.CurrentDay(ctx)
	if err != nil {
		a.fail("read current day", err)
		return
	}
	a.console.Print(console.RenderCurriculum(a.store.AllTopics(ctx), posted, day))
}

// Reset erases all progress after an explicit "yes".
func (a *App) Reset(ctx context.Context) {
	answer, err := a.console.ReadLine(ctx, "This erases all progress and history. Type 'yes' to confirm: ")
	if err != nil || strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		a.console.Notice("Reset cancelled.")
		return
	}

	if err := a.store.ResetAll(ctx); err != nil {
		a.fail("reset", err)
		return
	}
	a.logger.Warn("journey reset")
	a.console.Success("Progress reset. The journey starts again at day 1.")
}

// Schedule waits for the daily posting time and runs the workflow then.
// Triggers are handled on this goroutine, so a scheduled run never overlaps
// a command typed while waiting.
func (a *App) Schedule(ctx context.Context) error {
	triggers := make(chan struct{}, 1)
	sched, err := scheduler.NewDaily(a.opts.PostingTime, a.opts.Location, func() {
		select {
		case triggers <- struct{}{}:
		default:
		}
	}, a.logger)
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	schedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- sched.Start(schedCtx) }()
	defer func() {
		cancel()
		<-done
	}()

	a.console.Print(console.RenderScheduleHelp())
	a.console.Print(console.RenderNextRun(sched.NextRun(a.now()), a.now()))

	lines := a.console.Lines()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-triggers:
			a.Post(ctx, a.opts.AutoApprove)
			a.console.Print(console.RenderNextRun(sched.NextRun(a.now()), a.now()))
		case line, ok := <-lines:
			if !ok {
				// keep waiting for triggers without input
				lines = nil
				continue
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "":
			case "status", "s":
				a.Status(ctx)
				a.console.Print(console.RenderNextRun(sched.NextRun(a.now()), a.now()))
			case "now", "n":
				a.Post(ctx, a.opts.AutoApprove)
			case "help", "?":
				a.console.Print(console.RenderScheduleHelp())
			case "quit", "q", "exit":
				a.console.Notice("Leaving scheduled mode.")
				return nil
			default:
				a.console.Error(fmt.Sprintf("Unknown command %q. Type help for the list.", strings.TrimSpace(line)))
			}
		}
	}
}

func (a *App) fail(action string, err error) {
	a.logger.Error(action+" failed", "error", err)
	a.console.Error(fmt.Sprintf("%s: %v", action, err))
}
