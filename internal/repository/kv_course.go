package repository

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/storage"
)

// KVCourseRepo keeps every course record in one JSON array under the
// userCourses key.
type KVCourseRepo struct {
	store storage.Store
}

// NewKVCourseRepo creates a new KVCourseRepo.
func NewKVCourseRepo(store storage.Store) *KVCourseRepo {
	return &KVCourseRepo{store: store}
}

func (r *KVCourseRepo) List(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if _, err := readJSON(ctx, r.store, coursesKey, &courses); err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	return courses, nil
}

func (r *KVCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	courses, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], nil
		}
	}
	return nil, fmt.Errorf("course %q not found", id)
}

func (r *KVCourseRepo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	courses, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].Code == code {
			return &courses[i], nil
		}
	}
	return nil, fmt.Errorf("course %q not found", code)
}

func (r *KVCourseRepo) Upsert(ctx context.Context, c *domain.Course) error {
	courses, err := r.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range courses {
		if courses[i].ID == c.ID {
			courses[i] = *c
			replaced = true
			break
		}
	}
	if !replaced {
		courses = append(courses, *c)
	}
	if err := writeJSON(ctx, r.store, coursesKey, courses); err != nil {
		return fmt.Errorf("saving courses: %w", err)
	}
	return nil
}

func (r *KVCourseRepo) Delete(ctx context.Context, id string) error {
	courses, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := courses[:0]
	for _, c := range courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(courses) {
		return fmt.Errorf("course %q not found", id)
	}
	if err := writeJSON(ctx, r.store, coursesKey, kept); err != nil {
		return fmt.Errorf("saving courses: %w", err)
	}
	return nil
}
