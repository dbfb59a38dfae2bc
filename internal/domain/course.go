package domain

import (
	"fmt"
	"time"
)

// TaskProgress holds the task counters maintained by the checklist UI.
// The engine carries them through persistence untouched.
type TaskProgress struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	ToDo       int `json:"toDo"`
	Total      int `json:"total"`
}

// Course is a student's enrollment record. CurrentGrade is a cached
// display hint only; the authoritative percentage is always recomputed
// from the course's grade categories.
type Course struct {
	ID           string       `json:"id"`
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	Color        string       `json:"color"`
	Professor    string       `json:"professor"`
	Progress     TaskProgress `json:"progress"`
	CurrentGrade float64      `json:"currentGrade"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Validate checks the fields a course record cannot do without.
func (c *Course) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("course code is required")
	}
	if c.Name == "" {
		return fmt.Errorf("course name is required")
	}
	return nil
}

// DisplayID returns the best short identifier for display: the course
// code, or a truncated ID if the code is somehow empty.
func (c *Course) DisplayID() string {
	if c.Code != "" {
		return c.Code
	}
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
