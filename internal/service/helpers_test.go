package service

import (
	"context"
	"testing"

	"github.com/ajrivet/tassel/internal/catalog"
	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/repository"
	"github.com/ajrivet/tassel/internal/testutil"
	"github.com/stretchr/testify/require"
)

// env bundles the full service stack over one in-memory store.
type env struct {
	cat       *catalog.Catalog
	courses   CourseService
	grades    GradeService
	gpa       GPAService
	reminders ReminderService
	tree      TreeService
	weekly    WeeklyService

	courseRepo   repository.CourseRepo
	gradeRepo    repository.GradeRepo
	weeklyRepo   repository.WeeklyRepo
	reminderRepo repository.ReminderRepo
	progressRepo repository.ProgressRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := testutil.NewTestStore(t)
	cat, err := catalog.Load("")
	require.NoError(t, err)

	courseRepo := repository.NewKVCourseRepo(store)
	gradeRepo := repository.NewKVGradeRepo(store)
	weeklyRepo := repository.NewKVWeeklyRepo(store)
	reminderRepo := repository.NewKVReminderRepo(store)
	progressRepo := repository.NewKVProgressRepo(store)

	return &env{
		cat:          cat,
		courses:      NewCourseService(courseRepo, gradeRepo, weeklyRepo, reminderRepo),
		grades:       NewGradeService(gradeRepo, courseRepo),
		gpa:          NewGPAService(courseRepo, gradeRepo),
		reminders:    NewReminderService(reminderRepo, gradeRepo, courseRepo),
		tree:         NewTreeService(cat, progressRepo, courseRepo),
		weekly:       NewWeeklyService(weeklyRepo, courseRepo),
		courseRepo:   courseRepo,
		gradeRepo:    gradeRepo,
		weeklyRepo:   weeklyRepo,
		reminderRepo: reminderRepo,
		progressRepo: progressRepo,
	}
}

// addCourse creates a course and replaces its template categories with
// the given ones (nil keeps the default template).
func (e *env) addCourse(t *testing.T, ctx context.Context, code, name string, cats []domain.GradeCategory) *domain.Course {
	t.Helper()
	course := testutil.NewTestCourse(code, name)
	require.NoError(t, e.courses.Create(ctx, course))
	if cats != nil {
		require.NoError(t, e.gradeRepo.ReplaceAll(ctx, course.ID, cats))
	}
	return course
}
