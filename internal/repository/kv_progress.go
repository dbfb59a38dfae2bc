package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/storage"
)

// KVProgressRepo persists one program's progress snapshot across three
// keys: completedCourses_{major} and currentCourses_{major} as JSON
// arrays of course codes, selectedElectives_{major} as a JSON object
// mapping slot IDs to chosen courses.
type KVProgressRepo struct {
	store storage.Store
}

// NewKVProgressRepo creates a new KVProgressRepo.
func NewKVProgressRepo(store storage.Store) *KVProgressRepo {
	return &KVProgressRepo{store: store}
}

func (r *KVProgressRepo) Load(ctx context.Context, major string) (*domain.ProgressState, error) {
	st := domain.NewProgressState()

	var completed []string
	if _, err := readJSON(ctx, r.store, completedKey(major), &completed); err != nil {
		return nil, fmt.Errorf("loading completed courses for %q: %w", major, err)
	}
	for _, code := range completed {
		st.Completed[code] = true
	}

	var current []string
	if _, err := readJSON(ctx, r.store, currentKey(major), &current); err != nil {
		return nil, fmt.Errorf("loading current courses for %q: %w", major, err)
	}
	for _, code := range current {
		// Completed wins if persisted state drifted out of sync.
		if !st.Completed[code] {
			st.Current[code] = true
		}
	}

	electives := make(map[string]domain.ElectiveChoice)
	if _, err := readJSON(ctx, r.store, electivesKey(major), &electives); err != nil {
		return nil, fmt.Errorf("loading selected electives for %q: %w", major, err)
	}
	st.SelectedElectives = electives

	return st, nil
}

func (r *KVProgressRepo) Save(ctx context.Context, major string, st *domain.ProgressState) error {
	if err := writeJSON(ctx, r.store, completedKey(major), sortedCodes(st.Completed)); err != nil {
		return fmt.Errorf("saving completed courses for %q: %w", major, err)
	}
	if err := writeJSON(ctx, r.store, currentKey(major), sortedCodes(st.Current)); err != nil {
		return fmt.Errorf("saving current courses for %q: %w", major, err)
	}
	if err := writeJSON(ctx, r.store, electivesKey(major), st.SelectedElectives); err != nil {
		return fmt.Errorf("saving selected electives for %q: %w", major, err)
	}
	return nil
}

func sortedCodes(set map[string]bool) []string {
	codes := make([]string, 0, len(set))
	for code := range set {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
