package domain

import "time"

// Reminder is a dated task attached to a course. A reminder marked
// complete with a grade percentage feeds grade entry: a category named
// after the reminder is upserted on its course.
type Reminder struct {
	ID           string     `json:"id"`
	CourseID     string     `json:"courseId"`
	Title        string     `json:"title"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Completed    bool       `json:"completed"`
	GradePercent *float64   `json:"gradePercent,omitempty"`
}
