package jsonfile

import (
	"context"
	"fmt"

	"journey_poster/internal/domain"
)

func initialState() domain.JourneyState {
	return domain.JourneyState{
		CurrentDay: 1,
		Status:     domain.StatusNotStarted,
	}
}

func (s *Store) readState() (*domain.JourneyState, error) {
	var state domain.JourneyState
	if err := readJSON(s.cfg.StatePath, &state); err != nil {
		return nil, err
	}
	if state.CurrentDay == 0 {
		state.CurrentDay = 1
	}
	if state.Status == "" {
		state.Status = domain.StatusNotStarted
	}
	return &state, nil
}

// nextDay advances day by one, capped at TotalDays+1.
func (s *Store) nextDay(day int) int {
	if day > s.cfg.TotalDays {
		return s.cfg.TotalDays + 1
	}
	return day + 1
}

// CurrentDay returns the journey's current day, 1 for a fresh journey.
func (s *Store) CurrentDay(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readState()
	if err != nil {
		return 0, err
	}
	return state.CurrentDay, nil
}

// State returns a copy of the full journey state.
func (s *Store) State(ctx context.Context) (*domain.JourneyState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readState()
}

// SetPendingApproval stores snapshot as the single in-flight draft,
// replacing any previous one.
func (s *Store) SetPendingApproval(ctx context.Context, snapshot domain.PendingApproval) error {
	return s.updateState(func(state *domain.JourneyState) {
		pending := snapshot
		state.PendingApproval = &pending
		state.Status = domain.StatusPendingApproval
		if state.StartedAt == nil {
			started := s.now()
			state.StartedAt = &started
		}
	})
}

func (s *Store) ClearPendingApproval(ctx context.Context) error {
	return s.updateState(func(state *domain.JourneyState) {
		state.PendingApproval = nil
		state.Status = domain.StatusActive
	})
}

func (s *Store) PendingApproval(ctx context.Context) (*domain.PendingApproval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readState()
	if err != nil {
		return nil, err
	}
	return state.PendingApproval, nil
}

// AdvanceDayWithoutPosting moves to the next day for an explicit skip.
func (s *Store) AdvanceDayWithoutPosting(ctx context.Context) error {
	return s.updateState(func(state *domain.JourneyState) {
		state.CurrentDay = s.nextDay(state.CurrentDay)
		state.PendingApproval = nil
		state.Status = domain.StatusActive
		if state.StartedAt == nil {
			started := s.now()
			state.StartedAt = &started
		}
	})
}

// reconcile moves current_day past days that history already holds. History
// is written before state, so a crash between the two leaves state one day
// behind.
func (s *Store) reconcile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.readHistory()
	if err != nil {
		return err
	}
	state, err := s.readState()
	if err != nil {
		return err
	}

	posted := make(map[int]bool, len(history.PostedItems))
	for _, item := range history.PostedItems {
		posted[item.Day] = true
	}

	day := state.CurrentDay
	for day <= s.cfg.TotalDays && posted[day] {
		day = s.nextDay(day)
	}
	if day == state.CurrentDay {
		return nil
	}

	s.logger.Warn("state behind history, advancing current day",
		"from", state.CurrentDay,
		"to", day,
	)

	state.CurrentDay = day
	state.PendingApproval = nil
	state.Status = domain.StatusActive
	if history.LastUpdated != nil {
		state.LastPostDate = history.LastUpdated
		if state.StartedAt == nil {
			state.StartedAt = history.LastUpdated
		}
	}

	if err := writeJSON(s.cfg.StatePath, state); err != nil {
		return fmt.Errorf("reconcile state: %w", err)
	}
	return nil
}

func (s *Store) updateState(fn func(state *domain.JourneyState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readState()
	if err != nil {
		return err
	}

	fn(state)

	if err := writeJSON(s.cfg.StatePath, state); err != nil {
		return fmt.Errorf("update state: %w", err)
	}
	return nil
}
