package service

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/repository"
	"github.com/google/uuid"
)

// reminderCategoryWeight is the weight given to a grade category created
// by reminder sync when the course has no category matching the
// reminder's title.
const reminderCategoryWeight = 10.0

type reminderService struct {
	reminders repository.ReminderRepo
	grades    repository.GradeRepo
	courses   repository.CourseRepo
}

func NewReminderService(reminders repository.ReminderRepo, grades repository.GradeRepo, courses repository.CourseRepo) ReminderService {
	return &reminderService{reminders: reminders, grades: grades, courses: courses}
}

func (s *reminderService) List(ctx context.Context) ([]domain.Reminder, error) {
	return s.reminders.List(ctx)
}

func (s *reminderService) ListByCourse(ctx context.Context, courseID string) ([]domain.Reminder, error) {
	return s.reminders.ListByCourse(ctx, courseID)
}

func (s *reminderService) Add(ctx context.Context, r *domain.Reminder) error {
	if r.Title == "" {
		return fmt.Errorf("reminder title is required")
	}
	if _, err := s.courses.GetByID(ctx, r.CourseID); err != nil {
		return fmt.Errorf("reminder references unknown course: %w", err)
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return s.reminders.Upsert(ctx, r)
}

// Complete marks the reminder done and, when a grade percentage is
// supplied, upserts a category named after the reminder on its course.
// An existing category keeps its weight and gets the percentage applied
// to it; a new one is created at the default sync weight.
func (s *reminderService) Complete(ctx context.Context, id string, gradePercent *float64) error {
	rem, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	rem.Completed = true
	rem.GradePercent = gradePercent
	if err := s.reminders.Upsert(ctx, rem); err != nil {
		return err
	}
	if gradePercent == nil {
		return nil
	}
	if *gradePercent < 0 || *gradePercent > 100 {
		return fmt.Errorf("grade percentage %.2f must be in [0, 100]", *gradePercent)
	}

	weight := reminderCategoryWeight
	cats, err := s.grades.ListByCourse(ctx, rem.CourseID)
	if err != nil {
		return err
	}
	for _, c := range cats {
		if c.Name == rem.Title {
			weight = c.Weight
			break
		}
	}
	score := *gradePercent / 100 * weight
	cat := domain.GradeCategory{Name: rem.Title, Weight: weight, Score: &score}
	if err := s.grades.UpsertByName(ctx, rem.CourseID, cat); err != nil {
		return fmt.Errorf("syncing grade from reminder %q: %w", rem.Title, err)
	}
	return nil
}

func (s *reminderService) Delete(ctx context.Context, id string) error {
	return s.reminders.Delete(ctx, id)
}
