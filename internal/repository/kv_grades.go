package repository

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/storage"
)

// KVGradeRepo stores each course's ordered grade-category list as a JSON
// array under course_grades_{courseId}.
type KVGradeRepo struct {
	store storage.Store
}

// NewKVGradeRepo creates a new KVGradeRepo.
func NewKVGradeRepo(store storage.Store) *KVGradeRepo {
	return &KVGradeRepo{store: store}
}

func (r *KVGradeRepo) ListByCourse(ctx context.Context, courseID string) ([]domain.GradeCategory, error) {
	var cats []domain.GradeCategory
	if _, err := readJSON(ctx, r.store, gradesKey(courseID), &cats); err != nil {
		return nil, fmt.Errorf("listing grades for course %q: %w", courseID, err)
	}
	return cats, nil
}

func (r *KVGradeRepo) ReplaceAll(ctx context.Context, courseID string, cats []domain.GradeCategory) error {
	if cats == nil {
		cats = []domain.GradeCategory{}
	}
	if err := writeJSON(ctx, r.store, gradesKey(courseID), cats); err != nil {
		return fmt.Errorf("saving grades for course %q: %w", courseID, err)
	}
	return nil
}

func (r *KVGradeRepo) UpsertByName(ctx context.Context, courseID string, cat domain.GradeCategory) error {
	cats, err := r.ListByCourse(ctx, courseID)
	if err != nil {
		return err
	}
	replaced := false
	for i := range cats {
		if cats[i].Name == cat.Name {
			cats[i] = cat
			replaced = true
			break
		}
	}
	if !replaced {
		cats = append(cats, cat)
	}
	return r.ReplaceAll(ctx, courseID, cats)
}

func (r *KVGradeRepo) RemoveCourse(ctx context.Context, courseID string) error {
	if err := r.store.Remove(ctx, gradesKey(courseID)); err != nil {
		return fmt.Errorf("removing grades for course %q: %w", courseID, err)
	}
	return nil
}
