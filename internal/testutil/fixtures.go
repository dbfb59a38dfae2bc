package testutil

import (
	"time"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/google/uuid"
)

// Course options
type CourseOption func(*domain.Course)

func WithCourseID(id string) CourseOption {
	return func(c *domain.Course) { c.ID = id }
}

func WithProfessor(name string) CourseOption {
	return func(c *domain.Course) { c.Professor = name }
}

func WithColor(color string) CourseOption {
	return func(c *domain.Course) { c.Color = color }
}

// NewTestCourse builds a course record with sensible defaults.
func NewTestCourse(code, name string, opts ...CourseOption) *domain.Course {
	now := time.Now().UTC()
	c := &domain.Course{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Color:     "#4A90D9",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Float returns a pointer to v, for grade category scores.
func Float(v float64) *float64 { return &v }

// NewTestCategories builds the common three-category course template
// with the given scores (nil means ungraded).
func NewTestCategories(a1, midterm, final *float64) []domain.GradeCategory {
	return []domain.GradeCategory{
		{Name: "A1", Weight: 10, Score: a1},
		{Name: "Midterm", Weight: 30, Score: midterm},
		{Name: "Final", Weight: 60, Score: final},
	}
}

// Reminder options
type ReminderOption func(*domain.Reminder)

func WithDueDate(d time.Time) ReminderOption {
	return func(r *domain.Reminder) { r.DueDate = &d }
}

func WithGradePercent(pct float64) ReminderOption {
	return func(r *domain.Reminder) { r.GradePercent = &pct }
}

// NewTestReminder builds a reminder attached to a course.
func NewTestReminder(courseID, title string, opts ...ReminderOption) *domain.Reminder {
	r := &domain.Reminder{
		ID:       uuid.New().String(),
		CourseID: courseID,
		Title:    title,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
