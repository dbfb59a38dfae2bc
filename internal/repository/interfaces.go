package repository

import (
	"context"

	"github.com/ajrivet/tassel/internal/domain"
)

type CourseRepo interface {
	List(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	Upsert(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id string) error
}

type GradeRepo interface {
	ListByCourse(ctx context.Context, courseID string) ([]domain.GradeCategory, error)
	ReplaceAll(ctx context.Context, courseID string, cats []domain.GradeCategory) error
	// UpsertByName replaces the category with a matching name or appends
	// a new one; categories are never removed individually.
	UpsertByName(ctx context.Context, courseID string, cat domain.GradeCategory) error
	RemoveCourse(ctx context.Context, courseID string) error
}

type WeeklyRepo interface {
	// Get returns the course's 12-week checklist, all false when absent.
	Get(ctx context.Context, courseID string) ([]bool, error)
	Set(ctx context.Context, courseID string, weeks []bool) error
	Remove(ctx context.Context, courseID string) error
}

type ReminderRepo interface {
	List(ctx context.Context) ([]domain.Reminder, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.Reminder, error)
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	Upsert(ctx context.Context, r *domain.Reminder) error
	Delete(ctx context.Context, id string) error
	DeleteByCourse(ctx context.Context, courseID string) error
}

type ProgressRepo interface {
	// Load returns the persisted snapshot for a major, empty when none.
	Load(ctx context.Context, major string) (*domain.ProgressState, error)
	// Save persists the snapshot across its three keys. The writes are
	// not atomic as a group; the snapshot is fully computed in memory
	// before the first write.
	Save(ctx context.Context, major string, st *domain.ProgressState) error
}
