package repository

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/storage"
)

// WeeklyChecklistLen is the fixed number of weeks tracked per course.
const WeeklyChecklistLen = 12

// KVWeeklyRepo stores each course's weekly checklist as a JSON array of
// 12 booleans under course_weekly_{courseId}.
type KVWeeklyRepo struct {
	store storage.Store
}

// NewKVWeeklyRepo creates a new KVWeeklyRepo.
func NewKVWeeklyRepo(store storage.Store) *KVWeeklyRepo {
	return &KVWeeklyRepo{store: store}
}

func (r *KVWeeklyRepo) Get(ctx context.Context, courseID string) ([]bool, error) {
	weeks := make([]bool, WeeklyChecklistLen)
	if _, err := readJSON(ctx, r.store, weeklyKey(courseID), &weeks); err != nil {
		return nil, fmt.Errorf("reading weekly checklist for course %q: %w", courseID, err)
	}
	if len(weeks) != WeeklyChecklistLen {
		normalized := make([]bool, WeeklyChecklistLen)
		copy(normalized, weeks)
		weeks = normalized
	}
	return weeks, nil
}

func (r *KVWeeklyRepo) Set(ctx context.Context, courseID string, weeks []bool) error {
	if len(weeks) != WeeklyChecklistLen {
		return fmt.Errorf("weekly checklist must have %d entries, got %d", WeeklyChecklistLen, len(weeks))
	}
	if err := writeJSON(ctx, r.store, weeklyKey(courseID), weeks); err != nil {
		return fmt.Errorf("saving weekly checklist for course %q: %w", courseID, err)
	}
	return nil
}

func (r *KVWeeklyRepo) Remove(ctx context.Context, courseID string) error {
	if err := r.store.Remove(ctx, weeklyKey(courseID)); err != nil {
		return fmt.Errorf("removing weekly checklist for course %q: %w", courseID, err)
	}
	return nil
}
