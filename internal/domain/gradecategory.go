package domain

import "fmt"

// GradeCategory is one weighted assessment component of a course
// (assignment, midterm, final, ...). Weight and Score share the same
// units: a Score equal to Weight is 100% on that component. A nil Score
// means the component has not been graded yet.
//
// Name is the stable identity within a course's category list; reminder
// sync upserts by matching it.
type GradeCategory struct {
	Name   string   `json:"name"`
	Weight float64  `json:"weight"`
	Score  *float64 `json:"score"`
}

// Validate checks the weight range and, when a score is present, that it
// lies in [0, weight]. Uncategorized weights need not sum to 100 across a
// course; that is a data-authoring concern, not a validation error.
func (c *GradeCategory) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("grade category name is required")
	}
	if c.Weight < 0 || c.Weight > 100 {
		return fmt.Errorf("grade category %q: weight %.2f must be in [0, 100]", c.Name, c.Weight)
	}
	if c.Score != nil && (*c.Score < 0 || *c.Score > c.Weight) {
		return fmt.Errorf("grade category %q: score %.2f must be in [0, %.2f]", c.Name, *c.Score, c.Weight)
	}
	return nil
}

// Graded reports whether a score has been entered.
func (c *GradeCategory) Graded() bool {
	return c.Score != nil
}
