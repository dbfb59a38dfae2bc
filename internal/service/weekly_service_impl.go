package service

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/repository"
)

type weeklyService struct {
	weekly  repository.WeeklyRepo
	courses repository.CourseRepo
}

func NewWeeklyService(weekly repository.WeeklyRepo, courses repository.CourseRepo) WeeklyService {
	return &weeklyService{weekly: weekly, courses: courses}
}

func (s *weeklyService) Get(ctx context.Context, courseID string) ([]bool, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.weekly.Get(ctx, courseID)
}

func (s *weeklyService) ToggleWeek(ctx context.Context, courseID string, week int) error {
	if week < 0 || week >= repository.WeeklyChecklistLen {
		return fmt.Errorf("week %d out of range [0, %d)", week, repository.WeeklyChecklistLen)
	}
	weeks, err := s.Get(ctx, courseID)
	if err != nil {
		return err
	}
	weeks[week] = !weeks[week]
	return s.weekly.Set(ctx, courseID, weeks)
}
