package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestCoursePercentage_NoScoresEntered(t *testing.T) {
	cats := []GradeCategory{
		{Name: "A1", Weight: 10},
		{Name: "Midterm", Weight: 30},
		{Name: "Final", Weight: 60},
	}
	assert.Equal(t, 0.0, CoursePercentage(cats))
}

func TestCoursePercentage_EmptyList(t *testing.T) {
	assert.Equal(t, 0.0, CoursePercentage(nil))
}

func TestCoursePercentage_SingleCategory(t *testing.T) {
	cats := []GradeCategory{{Name: "Final", Weight: 40, Score: f(30)}}
	assert.InDelta(t, 30.0/40.0*100, CoursePercentage(cats), 1e-9)
}

func TestCoursePercentage_ExcludesUngradedWeight(t *testing.T) {
	// Midterm has no score: its 30 points stay out of the denominator.
	cats := []GradeCategory{
		{Name: "A1", Weight: 10, Score: f(8)},
		{Name: "Midterm", Weight: 30},
		{Name: "Final", Weight: 60, Score: f(50)},
	}
	pct := CoursePercentage(cats)
	assert.InDelta(t, (8.0+50.0)/(10.0+60.0)*100, pct, 1e-9)
	assert.Equal(t, 3.7, PercentageToGPA(pct))
	assert.Equal(t, "A-", PercentageToLetter(pct))
}

func TestCoursePercentage_ZeroScoreCountsAsGraded(t *testing.T) {
	cats := []GradeCategory{
		{Name: "Quiz", Weight: 20, Score: f(0)},
		{Name: "Final", Weight: 80},
	}
	assert.Equal(t, 0.0, CoursePercentage(cats))
}

func TestCoursePercentage_WeightsNeedNotSumTo100(t *testing.T) {
	// Authoring defect tolerated: weights sum to 120, result still well defined.
	cats := []GradeCategory{
		{Name: "A", Weight: 60, Score: f(60)},
		{Name: "B", Weight: 60, Score: f(30)},
	}
	assert.InDelta(t, 75.0, CoursePercentage(cats), 1e-9)
}

func TestPercentageToGPA_Breakpoints(t *testing.T) {
	cases := []struct {
		pct float64
		gpa float64
	}{
		{105, 4.0},
		{90, 4.0},
		{89.9, 3.9},
		{85, 3.9},
		{80, 3.7},
		{79.99, 3.3},
		{77, 3.3},
		{73, 3.0},
		{70, 2.7},
		{67, 2.3},
		{63, 2.0},
		{60, 1.7},
		{59.99, 0.0},
		{50, 0.0},
		{0, 0.0},
		{-5, 0.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.gpa, PercentageToGPA(tc.pct), "pct=%v", tc.pct)
	}
}

func TestPercentageToGPA_Monotonic(t *testing.T) {
	prev := PercentageToGPA(-10)
	for pct := -10.0; pct <= 110; pct += 0.25 {
		got := PercentageToGPA(pct)
		assert.GreaterOrEqual(t, got, prev, "pct=%v", pct)
		prev = got
	}
}

func TestPercentageToLetter_Breakpoints(t *testing.T) {
	cases := []struct {
		pct    float64
		letter string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{85, "A"},
		{80, "A-"},
		{77, "B+"},
		{73, "B"},
		{70, "B-"},
		{67, "C+"},
		{63, "C"},
		{60, "C-"},
		{57, "D+"},
		{53, "D"},
		{50, "D-"},
		{49.9, "F"},
		{0, "F"},
		{-1, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.letter, PercentageToLetter(tc.pct), "pct=%v", tc.pct)
	}
}

// The letter table has D buckets the GPA table lacks: 50-59.99 shows a D
// grade but earns 0.0 grade points (1.7 starts at 60).
func TestLetterTableFinerThanGPATable(t *testing.T) {
	assert.Equal(t, "D+", PercentageToLetter(57))
	assert.Equal(t, 0.0, PercentageToGPA(57))
	assert.Equal(t, "C-", PercentageToLetter(60))
	assert.Equal(t, 1.7, PercentageToGPA(60))
}

func TestRoundGPA(t *testing.T) {
	assert.Equal(t, 3.57, RoundGPA(3.5650001))
	assert.Equal(t, 0.0, RoundGPA(0))
	assert.Equal(t, 4.0, RoundGPA(3.999))
}
