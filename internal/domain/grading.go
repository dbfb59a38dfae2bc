package domain

import "math"

// CoursePercentage computes the running percentage for a course from its
// grade categories. Only categories with an entered score participate:
// both the earned points and the weight of ungraded categories are
// excluded, so the result reflects performance on work graded so far
// rather than a zero-filled average. Returns 0 when nothing has been
// graded yet.
func CoursePercentage(categories []GradeCategory) float64 {
	var totalScore, totalWeight float64
	for _, c := range categories {
		if !c.Graded() {
			continue
		}
		totalScore += *c.Score
		totalWeight += c.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return totalScore / totalWeight * 100
}

type gpaBreakpoint struct {
	min float64
	gpa float64
}

// Breakpoints are inclusive on the higher bucket: exactly 90 maps to 4.0.
var gpaBreakpoints = []gpaBreakpoint{
	{90, 4.0},
	{85, 3.9},
	{80, 3.7},
	{77, 3.3},
	{73, 3.0},
	{70, 2.7},
	{67, 2.3},
	{63, 2.0},
	{60, 1.7},
}

// PercentageToGPA maps a course percentage onto the 4.0 scale. Total over
// all real inputs: values below every breakpoint (including negatives)
// fall through to 0.0, values at or above 90 (including >100) map to 4.0.
func PercentageToGPA(pct float64) float64 {
	for _, b := range gpaBreakpoints {
		if pct >= b.min {
			return b.gpa
		}
	}
	return 0.0
}

type letterBreakpoint struct {
	min    float64
	letter string
}

// The letter table is finer-grained than the GPA table (D range exists
// for display even though it maps to 0.0 grade points).
var letterBreakpoints = []letterBreakpoint{
	{90, "A+"},
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
}

// PercentageToLetter maps a course percentage onto a display letter grade.
func PercentageToLetter(pct float64) string {
	for _, b := range letterBreakpoints {
		if pct >= b.min {
			return b.letter
		}
	}
	return "F"
}

// RoundGPA rounds a GPA value to two decimals for display.
func RoundGPA(gpa float64) float64 {
	return math.Round(gpa*100) / 100
}
