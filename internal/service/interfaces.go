package service

import (
	"context"

	"github.com/ajrivet/tassel/internal/domain"
)

type CourseService interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	// Delete removes the course and cascades: its grade categories, its
	// weekly checklist, and every reminder referencing it.
	Delete(ctx context.Context, id string) error
}

// CourseGradeSummary is the display view of one course's standing.
type CourseGradeSummary struct {
	CourseID   string
	Percentage float64
	GPA        float64
	Letter     string
	// HasGrades distinguishes "nothing entered" from a true 0%: both
	// compute to percentage 0.
	HasGrades bool
}

type GradeService interface {
	ListByCourse(ctx context.Context, courseID string) ([]domain.GradeCategory, error)
	// AddCategory appends a new weighted component; duplicate names are
	// rejected because the name is the category's identity.
	AddCategory(ctx context.Context, courseID string, cat domain.GradeCategory) error
	// EnterScore records (or clears, with nil) the score of an existing
	// category. Scores outside [0, weight] never reach storage.
	EnterScore(ctx context.Context, courseID, name string, score *float64) error
	Summary(ctx context.Context, courseID string) (*CourseGradeSummary, error)
}

type GPAService interface {
	// OverallGPA recomputes the cumulative GPA from scratch on every
	// call; the persisted currentGrade hints are never trusted.
	OverallGPA(ctx context.Context) (float64, error)
}

type ReminderService interface {
	List(ctx context.Context) ([]domain.Reminder, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.Reminder, error)
	Add(ctx context.Context, r *domain.Reminder) error
	// Complete marks a reminder done. When gradePercent is non-nil the
	// reminder's course gains (or updates) a grade category named after
	// the reminder, scored at that percentage of its weight.
	Complete(ctx context.Context, id string, gradePercent *float64) error
	Delete(ctx context.Context, id string) error
}

// SlotOverview is the display state of one curriculum slot.
type SlotOverview struct {
	SlotCode string // placeholder ID for electives, course code otherwise
	Code     string // effective course code, "" while unresolved
	Name     string
	Credits  int
	Elective bool
	Category string
	State    domain.SlotState
}

type SemesterOverview struct {
	Name  string
	Slots []SlotOverview
}

// CategoryProgress is one elective bucket's completed-vs-required credits.
type CategoryProgress struct {
	ID        string
	Title     string
	Completed int
	Required  int
}

// TreeOverview is the full academic-tree view for one program.
type TreeOverview struct {
	Major            string
	ProgramName      string
	Semesters        []SemesterOverview
	CompletedCredits int
	TotalCredits     int
	// ProgressPercent is unclamped: >100 reports a catalog undercount.
	ProgressPercent float64
	Categories      []CategoryProgress
}

type TreeService interface {
	Overview(ctx context.Context, major string) (*TreeOverview, error)
	// SelectElective binds a concrete course (from the program's pool or
	// the student's own course list) to an elective slot.
	SelectElective(ctx context.Context, major, slotID, courseCode string) error
	ClearElective(ctx context.Context, major, slotID string) error
	MarkCurrent(ctx context.Context, major, code string) error
	MarkCompleted(ctx context.Context, major, code string) error
	UnmarkCompleted(ctx context.Context, major, code string) error
	// Activate applies a classified gesture: single toggles in-progress,
	// double toggles completion.
	Activate(ctx context.Context, major, code string, act domain.Activation) error
}

type WeeklyService interface {
	Get(ctx context.Context, courseID string) ([]bool, error)
	ToggleWeek(ctx context.Context, courseID string, week int) error
}
