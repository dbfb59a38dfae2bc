package repository

import (
	"context"
	"testing"

	"github.com/ajrivet/tassel/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRepo_EmptyStore(t *testing.T) {
	repo := NewKVCourseRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	courses, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCourseRepo_UpsertAndGet(t *testing.T) {
	repo := NewKVCourseRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	course := testutil.NewTestCourse("CIS*1500", "Introduction to Programming", testutil.WithProfessor("D. Calvert"))
	require.NoError(t, repo.Upsert(ctx, course))

	fetched, err := repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "CIS*1500", fetched.Code)
	assert.Equal(t, "D. Calvert", fetched.Professor)

	byCode, err := repo.GetByCode(ctx, "CIS*1500")
	require.NoError(t, err)
	assert.Equal(t, course.ID, byCode.ID)
}

func TestCourseRepo_UpsertReplacesByID(t *testing.T) {
	repo := NewKVCourseRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	course := testutil.NewTestCourse("CIS*1500", "Introduction to Programming")
	require.NoError(t, repo.Upsert(ctx, course))

	course.Name = "Intro Programming"
	course.CurrentGrade = 82.9
	require.NoError(t, repo.Upsert(ctx, course))

	courses, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Intro Programming", courses[0].Name)
	assert.Equal(t, 82.9, courses[0].CurrentGrade)
}

func TestCourseRepo_GetByID_NotFound(t *testing.T) {
	repo := NewKVCourseRepo(testutil.NewTestStore(t))
	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCourseRepo_Delete(t *testing.T) {
	repo := NewKVCourseRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	a := testutil.NewTestCourse("CIS*1500", "Intro Programming")
	b := testutil.NewTestCourse("CIS*2500", "Intermediate Programming")
	require.NoError(t, repo.Upsert(ctx, a))
	require.NoError(t, repo.Upsert(ctx, b))

	require.NoError(t, repo.Delete(ctx, a.ID))
	courses, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, b.ID, courses[0].ID)

	err = repo.Delete(ctx, a.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
