package repository

import (
	"context"
	"testing"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeRepo_EmptyCourse(t *testing.T) {
	repo := NewKVGradeRepo(testutil.NewTestStore(t))
	cats, err := repo.ListByCourse(context.Background(), "course-1")
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestGradeRepo_ReplaceAllKeepsOrder(t *testing.T) {
	repo := NewKVGradeRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	cats := testutil.NewTestCategories(testutil.Float(8), nil, nil)
	require.NoError(t, repo.ReplaceAll(ctx, "course-1", cats))

	fetched, err := repo.ListByCourse(ctx, "course-1")
	require.NoError(t, err)
	require.Len(t, fetched, 3)
	assert.Equal(t, "A1", fetched[0].Name)
	assert.Equal(t, "Midterm", fetched[1].Name)
	assert.Equal(t, "Final", fetched[2].Name)
	require.NotNil(t, fetched[0].Score)
	assert.Equal(t, 8.0, *fetched[0].Score)
	assert.Nil(t, fetched[1].Score)
}

func TestGradeRepo_UpsertByName_ReplacesMatch(t *testing.T) {
	repo := NewKVGradeRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, "course-1", testutil.NewTestCategories(nil, nil, nil)))
	require.NoError(t, repo.UpsertByName(ctx, "course-1", domain.GradeCategory{Name: "Midterm", Weight: 30, Score: testutil.Float(24)}))

	cats, err := repo.ListByCourse(ctx, "course-1")
	require.NoError(t, err)
	require.Len(t, cats, 3, "upsert by existing name must not append")
	require.NotNil(t, cats[1].Score)
	assert.Equal(t, 24.0, *cats[1].Score)
}

func TestGradeRepo_UpsertByName_AppendsNew(t *testing.T) {
	repo := NewKVGradeRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.UpsertByName(ctx, "course-1", domain.GradeCategory{Name: "Lab Report", Weight: 15, Score: testutil.Float(12)}))
	cats, err := repo.ListByCourse(ctx, "course-1")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Lab Report", cats[0].Name)
}

func TestGradeRepo_RemoveCourse(t *testing.T) {
	repo := NewKVGradeRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, "course-1", testutil.NewTestCategories(nil, nil, nil)))
	require.NoError(t, repo.RemoveCourse(ctx, "course-1"))

	cats, err := repo.ListByCourse(ctx, "course-1")
	require.NoError(t, err)
	assert.Empty(t, cats)
}
