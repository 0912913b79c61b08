package jsonfile

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"journey_poster/internal/domain"
)

func (s *Store) loadCurriculum() error {
	var curriculum domain.Curriculum
	if err := readJSON(s.cfg.CurriculumPath, &curriculum); err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}

	if err := validator.New().Struct(&curriculum); err != nil {
		return fmt.Errorf("validate curriculum: %w", err)
	}

	byDay := make(map[int]domain.CurriculumEntry, len(curriculum.Entries))
	for _, entry := range curriculum.Entries {
		if entry.Day > s.cfg.TotalDays {
			return fmt.Errorf("curriculum day %d: %w (total days %d)", entry.Day, domain.ErrInvalidDay, s.cfg.TotalDays)
		}
		if _, dup := byDay[entry.Day]; dup {
			return fmt.Errorf("curriculum day %d listed more than once", entry.Day)
		}
		byDay[entry.Day] = entry
	}

	ordered := make([]domain.CurriculumEntry, 0, len(byDay))
	for _, entry := range byDay {
		ordered = append(ordered, entry)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Day < ordered[j].Day })

	s.curriculum = byDay
	s.ordered = ordered

	if len(byDay) < s.cfg.TotalDays {
		s.logger.Warn("curriculum does not cover every day",
			"entries", len(byDay),
			"total_days", s.cfg.TotalDays,
		)
	}

	return nil
}

// TopicForDay returns the curriculum entry for day or domain.ErrTopicNotFound.
func (s *Store) TopicForDay(ctx context.Context, day int) (*domain.CurriculumEntry, error) {
	entry, ok := s.curriculum[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, domain.ErrTopicNotFound)
	}
	return &entry, nil
}

// AllTopics returns the curriculum ordered by day.
func (s *Store) AllTopics(ctx context.Context) []domain.CurriculumEntry {
	out := make([]domain.CurriculumEntry, len(s.ordered))
	copy(out, s.ordered)
	return out
}
