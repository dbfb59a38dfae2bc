package formatter

import (
	"fmt"
	"time"

	"github.com/ajrivet/tassel/internal/domain"
)

// FormatReminderList renders reminders as a table. courseCodes maps
// course IDs to display codes; unknown IDs render the raw ID.
func FormatReminderList(reminders []domain.Reminder, courseCodes map[string]string) string {
	if len(reminders) == 0 {
		return StyleDim.Render("No reminders.")
	}

	headers := []string{"", "ID", "COURSE", "TITLE", "DUE"}
	rows := make([][]string, 0, len(reminders))
	for _, r := range reminders {
		mark := StyleDim.Render("·")
		if r.Completed {
			mark = StyleGreen.Render("✔")
		}
		course := courseCodes[r.CourseID]
		if course == "" {
			course = r.CourseID
		}
		rows = append(rows, []string{
			mark,
			StyleDim.Render(TruncID(r.ID)),
			StyleBold.Render(course),
			r.Title,
			formatDue(r.DueDate),
		})
	}
	return RenderTable(headers, rows)
}

func formatDue(due *time.Time) string {
	if due == nil {
		return StyleDim.Render("--")
	}
	s := due.Format("2006-01-02")
	if due.Before(time.Now()) {
		return StyleRed.Render(s)
	}
	return s
}

// TruncID shortens a UUID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatWeekly renders the 12-week checklist for a course.
func FormatWeekly(courseCode string, weeks []bool) string {
	out := StyleHeader.Render(courseCode) + "  "
	done := 0
	for i, checked := range weeks {
		cell := StyleDim.Render(fmt.Sprintf("%d", i+1))
		if checked {
			cell = StyleGreen.Render(fmt.Sprintf("%d", i+1))
			done++
		}
		out += cell + " "
	}
	out += StyleDim.Render(fmt.Sprintf(" (%d/%d weeks)", done, len(weeks)))
	return out
}
