package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"journey_poster/internal/domain"
)

type Config struct {
	Dir            string
	CurriculumPath string
	HistoryPath    string
	StatePath      string
	TotalDays      int
}

// Store is the progress store: curriculum (read-only), posting history and
// journey state, each in its own JSON file. Every mutation rewrites whole
// files; the mutex keeps a scheduled run and the console from interleaving.
type Store struct {
	cfg        Config
	mu         sync.Mutex
	curriculum map[int]domain.CurriculumEntry
	ordered    []domain.CurriculumEntry
	now        func() time.Time
	logger     *slog.Logger
}

// Open ensures the data files exist and loads the curriculum.
func Open(cfg Config, logger *slog.Logger) (*Store, error) {
	s := &Store{
		cfg:    cfg,
		now:    time.Now,
		logger: logger.With("component", "store"),
	}

	if err := s.EnsureDataFiles(); err != nil {
		return nil, err
	}

	if err := s.loadCurriculum(); err != nil {
		return nil, err
	}

	if err := s.reconcile(); err != nil {
		return nil, err
	}

	return s, nil
}

// EnsureDataFiles writes empty history and initial state when the files are
// absent. Existing files are never touched, even if they are corrupt.
func (s *Store) EnsureDataFiles() error {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	created, err := writeIfMissing(s.cfg.HistoryPath, emptyHistory())
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("created history file", "path", s.cfg.HistoryPath)
	}

	created, err = writeIfMissing(s.cfg.StatePath, initialState())
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("created state file", "path", s.cfg.StatePath)
	}

	return nil
}

// ResetAll truncates history and resets the journey state. Irreversible.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.cfg.StatePath, initialState()); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	if err := writeJSON(s.cfg.HistoryPath, emptyHistory()); err != nil {
		return fmt.Errorf("reset history: %w", err)
	}

	s.logger.Warn("journey reset")
	return nil
}

// ProgressSnapshot combines state and history into one report.
func (s *Store) ProgressSnapshot(ctx context.Context) (*domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readState()
	if err != nil {
		return nil, err
	}
	history, err := s.readHistory()
	if err != nil {
		return nil, err
	}

	return &domain.Progress{
		CurrentDay:           state.CurrentDay,
		TotalPosts:           history.TotalPosts,
		TotalDays:            s.cfg.TotalDays,
		StartedAt:            state.StartedAt,
		LastPostDate:         state.LastPostDate,
		Status:               state.Status,
		CompletionPercentage: completion(history.TotalPosts, s.cfg.TotalDays),
	}, nil
}

func completion(posts, totalDays int) float64 {
	if totalDays <= 0 {
		return 0
	}
	pct := float64(posts) / float64(totalDays) * 100
	return math.Round(pct*10) / 10
}
