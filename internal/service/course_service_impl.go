package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/repository"
	"github.com/google/uuid"
)

// defaultCategories is the grade template every new course starts with,
// all ungraded.
var defaultCategories = []domain.GradeCategory{
	{Name: "Assignments", Weight: 20},
	{Name: "Midterm", Weight: 30},
	{Name: "Final", Weight: 50},
}

type courseService struct {
	courses   repository.CourseRepo
	grades    repository.GradeRepo
	weekly    repository.WeeklyRepo
	reminders repository.ReminderRepo
}

func NewCourseService(courses repository.CourseRepo, grades repository.GradeRepo, weekly repository.WeeklyRepo, reminders repository.ReminderRepo) CourseService {
	return &courseService{courses: courses, grades: grades, weekly: weekly, reminders: reminders}
}

func (s *courseService) Create(ctx context.Context, c *domain.Course) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if existing, err := s.courses.GetByCode(ctx, c.Code); err == nil && existing != nil {
		return fmt.Errorf("course %q already exists", c.Code)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.courses.Upsert(ctx, c); err != nil {
		return err
	}
	cats := make([]domain.GradeCategory, len(defaultCategories))
	copy(cats, defaultCategories)
	if err := s.grades.ReplaceAll(ctx, c.ID, cats); err != nil {
		return fmt.Errorf("seeding grade template for %q: %w", c.Code, err)
	}
	return nil
}

func (s *courseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

func (s *courseService) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	return s.courses.GetByCode(ctx, code)
}

func (s *courseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

func (s *courseService) Update(ctx context.Context, c *domain.Course) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.courses.Upsert(ctx, c)
}

// Delete removes the course record first, then its dependent keys. A
// crash mid-cascade leaves orphaned grade/weekly keys behind; they are
// unreachable once the course record is gone.
func (s *courseService) Delete(ctx context.Context, id string) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.grades.RemoveCourse(ctx, id); err != nil {
		return fmt.Errorf("cascading grade delete: %w", err)
	}
	if err := s.weekly.Remove(ctx, id); err != nil {
		return fmt.Errorf("cascading weekly delete: %w", err)
	}
	if err := s.reminders.DeleteByCourse(ctx, id); err != nil {
		return fmt.Errorf("cascading reminder delete: %w", err)
	}
	return nil
}
