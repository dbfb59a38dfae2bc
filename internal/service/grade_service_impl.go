package service

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/repository"
)

type gradeService struct {
	grades  repository.GradeRepo
	courses repository.CourseRepo
}

func NewGradeService(grades repository.GradeRepo, courses repository.CourseRepo) GradeService {
	return &gradeService{grades: grades, courses: courses}
}

func (s *gradeService) ListByCourse(ctx context.Context, courseID string) ([]domain.GradeCategory, error) {
	return s.grades.ListByCourse(ctx, courseID)
}

func (s *gradeService) AddCategory(ctx context.Context, courseID string, cat domain.GradeCategory) error {
	if err := cat.Validate(); err != nil {
		return err
	}
	cats, err := s.grades.ListByCourse(ctx, courseID)
	if err != nil {
		return err
	}
	for _, existing := range cats {
		if existing.Name == cat.Name {
			return fmt.Errorf("grade category %q already exists", cat.Name)
		}
	}
	if err := s.grades.UpsertByName(ctx, courseID, cat); err != nil {
		return err
	}
	return s.refreshGradeHint(ctx, courseID)
}

func (s *gradeService) EnterScore(ctx context.Context, courseID, name string, score *float64) error {
	cats, err := s.grades.ListByCourse(ctx, courseID)
	if err != nil {
		return err
	}
	var target *domain.GradeCategory
	for i := range cats {
		if cats[i].Name == name {
			target = &cats[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("grade category %q not found", name)
	}
	updated := *target
	updated.Score = score
	if err := updated.Validate(); err != nil {
		return err
	}
	if err := s.grades.UpsertByName(ctx, courseID, updated); err != nil {
		return err
	}
	return s.refreshGradeHint(ctx, courseID)
}

func (s *gradeService) Summary(ctx context.Context, courseID string) (*CourseGradeSummary, error) {
	cats, err := s.grades.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	pct := domain.CoursePercentage(cats)
	hasGrades := false
	for _, c := range cats {
		if c.Graded() {
			hasGrades = true
			break
		}
	}
	return &CourseGradeSummary{
		CourseID:   courseID,
		Percentage: pct,
		GPA:        domain.PercentageToGPA(pct),
		Letter:     domain.PercentageToLetter(pct),
		HasGrades:  hasGrades,
	}, nil
}

// refreshGradeHint writes the recomputed percentage back onto the course
// record's currentGrade field. The field is a display hint only; readers
// must still recompute.
func (s *gradeService) refreshGradeHint(ctx context.Context, courseID string) error {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		// No course record to refresh; the grade write already landed.
		return nil
	}
	cats, err := s.grades.ListByCourse(ctx, courseID)
	if err != nil {
		return nil
	}
	course.CurrentGrade = domain.CoursePercentage(cats)
	return s.courses.Upsert(ctx, course)
}
