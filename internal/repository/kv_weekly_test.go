package repository

import (
	"context"
	"testing"

	"github.com/ajrivet/tassel/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyRepo_DefaultAllFalse(t *testing.T) {
	repo := NewKVWeeklyRepo(testutil.NewTestStore(t))
	weeks, err := repo.Get(context.Background(), "course-1")
	require.NoError(t, err)
	require.Len(t, weeks, WeeklyChecklistLen)
	for i, w := range weeks {
		assert.False(t, w, "week %d", i)
	}
}

func TestWeeklyRepo_SetGetRoundTrip(t *testing.T) {
	repo := NewKVWeeklyRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	weeks := make([]bool, WeeklyChecklistLen)
	weeks[0], weeks[11] = true, true
	require.NoError(t, repo.Set(ctx, "course-1", weeks))

	fetched, err := repo.Get(ctx, "course-1")
	require.NoError(t, err)
	assert.Equal(t, weeks, fetched)
}

func TestWeeklyRepo_RejectsWrongLength(t *testing.T) {
	repo := NewKVWeeklyRepo(testutil.NewTestStore(t))
	err := repo.Set(context.Background(), "course-1", []bool{true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "12 entries")
}

func TestWeeklyRepo_Remove(t *testing.T) {
	repo := NewKVWeeklyRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	weeks := make([]bool, WeeklyChecklistLen)
	weeks[3] = true
	require.NoError(t, repo.Set(ctx, "course-1", weeks))
	require.NoError(t, repo.Remove(ctx, "course-1"))

	fetched, err := repo.Get(ctx, "course-1")
	require.NoError(t, err)
	assert.False(t, fetched[3])
}
