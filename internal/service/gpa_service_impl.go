package service

import (
	"context"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/repository"
)

type gpaService struct {
	courses repository.CourseRepo
	grades  repository.GradeRepo
}

func NewGPAService(courses repository.CourseRepo, grades repository.GradeRepo) GPAService {
	return &gpaService{courses: courses, grades: grades}
}

// OverallGPA averages per-course GPA over every course with a computed
// percentage above zero. A course with no categories, an unreadable
// grade record, or a percentage of exactly 0 is left out of both the sum
// and the count — so "nothing entered yet" never drags the average down,
// at the cost of also excluding a genuine 0% course.
func (s *gpaService) OverallGPA(ctx context.Context) (float64, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return 0, err
	}

	var sum float64
	var counted int
	for _, course := range courses {
		cats, err := s.grades.ListByCourse(ctx, course.ID)
		if err != nil {
			// Unreadable grade record degrades to "no data" rather than
			// failing the whole aggregate.
			continue
		}
		if len(cats) == 0 {
			continue
		}
		pct := domain.CoursePercentage(cats)
		if pct <= 0 {
			continue
		}
		sum += domain.PercentageToGPA(pct)
		counted++
	}
	if counted == 0 {
		return 0, nil
	}
	return domain.RoundGPA(sum / float64(counted)), nil
}
