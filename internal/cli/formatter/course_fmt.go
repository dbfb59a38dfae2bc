package formatter

import (
	"fmt"
	"strings"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/service"
)

// FormatCourseList renders the student's courses with their cached
// grade hints. Summaries may be nil for courses whose grades could not
// be read; those rows fall back to the dimmed placeholder.
func FormatCourseList(courses []domain.Course, summaries map[string]*service.CourseGradeSummary) string {
	if len(courses) == 0 {
		return StyleDim.Render("No courses yet. Add one with: tassel course add")
	}

	headers := []string{"CODE", "NAME", "PROFESSOR", "GRADE", "LETTER"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		grade := StyleDim.Render("-%")
		letter := StyleDim.Render("--")
		if sum := summaries[c.ID]; sum != nil && sum.HasGrades {
			grade = gradeStyle(sum.Percentage).Render(FormatPercent(sum.Percentage, true))
			letter = gradeStyle(sum.Percentage).Render(sum.Letter)
		}
		prof := c.Professor
		if prof == "" {
			prof = StyleDim.Render("--")
		}
		rows = append(rows, []string{
			StyleBold.Render(c.Code),
			c.Name,
			prof,
			grade,
			letter,
		})
	}
	return RenderTable(headers, rows)
}

// FormatCourseInspect renders one course's full card: identity, grade
// summary and category breakdown.
func FormatCourseInspect(c *domain.Course, sum *service.CourseGradeSummary, cats []domain.GradeCategory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleHeader.Render(c.Code), StyleBold.Render(c.Name))
	if c.Professor != "" {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("Professor:"), c.Professor)
	}
	b.WriteString("\n")
	if sum != nil {
		b.WriteString(FormatSummary(sum))
		b.WriteString("\n\n")
	}
	b.WriteString(FormatCategories(cats))
	b.WriteString("\n")
	return b.String()
}
