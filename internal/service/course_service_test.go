package service

import (
	"context"
	"testing"

	"github.com/ajrivet/tassel/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseCreate_SeedsDefaultTemplate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	course := e.addCourse(t, ctx, "CIS*1500", "Intro Programming", nil)

	cats, err := e.grades.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Assignments", cats[0].Name)
	assert.Equal(t, "Midterm", cats[1].Name)
	assert.Equal(t, "Final", cats[2].Name)
	for _, c := range cats {
		assert.Nil(t, c.Score, "template categories start ungraded")
	}
}

func TestCourseCreate_RejectsDuplicateCode(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	e.addCourse(t, ctx, "CIS*1500", "Intro Programming", nil)
	err := e.courses.Create(ctx, testutil.NewTestCourse("CIS*1500", "Again"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCourseCreate_RejectsMissingCode(t *testing.T) {
	e := newEnv(t)
	err := e.courses.Create(context.Background(), testutil.NewTestCourse("", "No Code"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code is required")
}

func TestCourseDelete_Cascades(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	course := e.addCourse(t, ctx, "CIS*1500", "Intro Programming", nil)
	keep := e.addCourse(t, ctx, "CIS*2500", "Intermediate Programming", nil)

	weeks := make([]bool, 12)
	weeks[2] = true
	require.NoError(t, e.weeklyRepo.Set(ctx, course.ID, weeks))
	require.NoError(t, e.reminders.Add(ctx, testutil.NewTestReminder(course.ID, "A1 due")))
	require.NoError(t, e.reminders.Add(ctx, testutil.NewTestReminder(keep.ID, "Lab due")))

	require.NoError(t, e.courses.Delete(ctx, course.ID))

	_, err := e.courses.GetByID(ctx, course.ID)
	assert.Error(t, err)

	cats, err := e.gradeRepo.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, cats, "grade key removed")

	fetched, err := e.weeklyRepo.Get(ctx, course.ID)
	require.NoError(t, err)
	assert.False(t, fetched[2], "weekly key removed")

	rems, err := e.reminders.List(ctx)
	require.NoError(t, err)
	require.Len(t, rems, 1, "only the deleted course's reminders go")
	assert.Equal(t, keep.ID, rems[0].CourseID)
}
