package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler fires a callback once a day at a fixed wall-clock time.
type Scheduler struct {
	cron     *cron.Cron
	schedule cron.Schedule
	location *time.Location
	at       string
	logger   *slog.Logger
}

// NewDaily schedules trigger at postingTime (HH:MM) in loc. The callback
// runs on the cron goroutine and should hand work off rather than block.
func NewDaily(postingTime string, loc *time.Location, trigger func(), logger *slog.Logger) (*Scheduler, error) {
	at, err := time.Parse("15:04", postingTime)
	if err != nil {
		return nil, fmt.Errorf("parse posting time %q: %w", postingTime, err)
	}
	if loc == nil {
		loc = time.Local
	}

	expr := fmt.Sprintf("%d %d * * *", at.Minute(), at.Hour())
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}

	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		schedule: schedule,
		location: loc,
		at:       postingTime,
		logger:   logger.With("component", "scheduler"),
	}

	s.cron.Schedule(schedule, cron.FuncJob(func() {
		s.logger.Info("daily trigger fired", "posting_time", s.at, "timezone", s.location.String())
		trigger()
	}))

	return s, nil
}

// Start runs the schedule until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"posting_time", s.at,
		"timezone", s.location.String(),
		"next_run", s.NextRun(time.Now()),
	)

	s.cron.Start()
	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

// NextRun is the first trigger time strictly after now.
func (s *Scheduler) NextRun(now time.Time) time.Time {
	return s.schedule.Next(now.In(s.location))
}

func (s *Scheduler) Location() *time.Location {
	return s.location
}
