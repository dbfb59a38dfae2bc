package formatter

import (
	"fmt"
	"strings"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/service"
	"github.com/charmbracelet/lipgloss"
)

// FormatPercent renders a course percentage, or "-%" when no grades
// have been entered yet.
func FormatPercent(pct float64, hasGrades bool) string {
	if !hasGrades {
		return "-%"
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatSummary renders one course's grade standing on a single line.
func FormatSummary(sum *service.CourseGradeSummary) string {
	if !sum.HasGrades {
		return StyleDim.Render("no grades entered")
	}
	return fmt.Sprintf("%s  %s  GPA %s",
		StyleBold.Render(FormatPercent(sum.Percentage, true)),
		gradeStyle(sum.Percentage).Render(sum.Letter),
		StyleBlue.Render(fmt.Sprintf("%.1f", sum.GPA)),
	)
}

// FormatCategories renders a course's grade categories as an aligned
// table, one row per weighted component.
func FormatCategories(cats []domain.GradeCategory) string {
	if len(cats) == 0 {
		return StyleDim.Render("no grade categories")
	}
	nameWidth := 0
	for _, c := range cats {
		if len(c.Name) > nameWidth {
			nameWidth = len(c.Name)
		}
	}
	var b strings.Builder
	for i, c := range cats {
		if i > 0 {
			b.WriteString("\n")
		}
		score := StyleDim.Render("—")
		if c.Graded() {
			pct := 0.0
			if c.Weight > 0 {
				pct = *c.Score / c.Weight * 100
			}
			score = fmt.Sprintf("%s %s", StyleFg.Render(fmt.Sprintf("%.1f/%.0f", *c.Score, c.Weight)),
				gradeStyle(pct).Render(fmt.Sprintf("(%.0f%%)", pct)))
		}
		fmt.Fprintf(&b, "  %-*s  %5s  %s", nameWidth, c.Name,
			StyleDim.Render(fmt.Sprintf("%.0fpt", c.Weight)), score)
	}
	return b.String()
}

func gradeStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 80:
		return StyleGreen
	case pct >= 60:
		return StyleYellow
	default:
		return StyleRed
	}
}
