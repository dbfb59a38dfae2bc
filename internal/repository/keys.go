package repository

import "fmt"

// Storage key conventions. These are the engine's wire format to its
// key-value collaborator; changing them orphans existing data.
const (
	coursesKey   = "userCourses"
	remindersKey = "courseReminders"
)

func gradesKey(courseID string) string { return fmt.Sprintf("course_grades_%s", courseID) }
func weeklyKey(courseID string) string { return fmt.Sprintf("course_weekly_%s", courseID) }

func completedKey(major string) string { return fmt.Sprintf("completedCourses_%s", major) }
func currentKey(major string) string   { return fmt.Sprintf("currentCourses_%s", major) }
func electivesKey(major string) string { return fmt.Sprintf("selectedElectives_%s", major) }
