package jsonfile

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"journey_poster/internal/domain"
)

func emptyHistory() domain.History {
	return domain.History{PostedItems: []domain.PostedItem{}}
}

func (s *Store) readHistory() (*domain.History, error) {
	var history domain.History
	if err := readJSON(s.cfg.HistoryPath, &history); err != nil {
		return nil, err
	}
	if history.PostedItems == nil {
		history.PostedItems = []domain.PostedItem{}
	}
	return &history, nil
}

// IsDayPosted reports whether day has a PostedItem in history.
func (s *Store) IsDayPosted(ctx context.Context, day int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.readHistory()
	if err != nil {
		return false, err
	}
	for _, item := range history.PostedItems {
		if item.Day == day {
			return true, nil
		}
	}
	return false, nil
}

// PostedDays lists the days present in history, in posting order.
func (s *Store) PostedDays(ctx context.Context) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.readHistory()
	if err != nil {
		return nil, err
	}
	days := make([]int, 0, len(history.PostedItems))
	for _, item := range history.PostedItems {
		days = append(days, item.Day)
	}
	return days, nil
}

// RecentPosts returns up to n most recent items, oldest first.
func (s *Store) RecentPosts(ctx context.Context, n int) ([]domain.PostedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.readHistory()
	if err != nil {
		return nil, err
	}
	return lastN(history.PostedItems, n), nil
}

// RecentPostsSummary gives the generator continuity context.
func (s *Store) RecentPostsSummary(ctx context.Context, n int) (string, error) {
	recent, err := s.RecentPosts(ctx, n)
	if err != nil {
		return "", err
	}
	if len(recent) == 0 {
		return fmt.Sprintf("This is the beginning of the %d-day AI journey!", s.cfg.TotalDays), nil
	}

	var sb strings.Builder
	sb.WriteString("Recent posts in this series:")
	for _, post := range recent {
		fmt.Fprintf(&sb, "\n- Day %d: %s", post.Day, post.Topic)
	}
	return sb.String(), nil
}

// RecordPublished appends the post to history, then advances the journey
// state past it. History is written first so a crash in between leaves the
// day recorded and IsDayPosted blocks a duplicate publish.
func (s *Store) RecordPublished(ctx context.Context, day int, topic, content, externalID string) (*domain.PostedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.readHistory()
	if err != nil {
		return nil, err
	}
	state, err := s.readState()
	if err != nil {
		return nil, err
	}

	for _, existing := range history.PostedItems {
		if existing.Day == day {
			return nil, fmt.Errorf("record day %d: %w", day, domain.ErrAlreadyPosted)
		}
	}

	now := s.now()
	item := domain.PostedItem{
		Day:       day,
		Topic:     topic,
		Content:   content,
		PostedAt:  now,
		CharCount: utf8.RuneCountInString(content),
	}
	if externalID != "" {
		id := externalID
		item.ExternalPostID = &id
	}

	history.PostedItems = append(history.PostedItems, item)
	history.LastUpdated = &now
	history.TotalPosts = len(history.PostedItems)

	if err := writeJSON(s.cfg.HistoryPath, history); err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}

	state.LastPostDate = &now
	if state.StartedAt == nil {
		state.StartedAt = &now
	}
	state.CurrentDay = s.nextDay(state.CurrentDay)
	state.PendingApproval = nil
	state.Status = domain.StatusActive

	if err := writeJSON(s.cfg.StatePath, state); err != nil {
		return nil, fmt.Errorf("advance state: %w", err)
	}

	s.logger.Info("recorded published post",
		"day", day,
		"external_id", externalID,
		"char_count", item.CharCount,
		"next_day", state.CurrentDay,
	)

	return &item, nil
}

func lastN(items []domain.PostedItem, n int) []domain.PostedItem {
	if n <= 0 || len(items) == 0 {
		return []domain.PostedItem{}
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]domain.PostedItem, n)
	copy(out, items[len(items)-n:])
	return out
}
