package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ajrivet/tassel/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func tasselHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired rejects empty input.
func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

// validateOptionalFloat accepts empty or a non-negative number.
func validateOptionalFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// courseAddForm collects the fields of a new course.
func courseAddForm(code, name, professor *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course Code").
				Placeholder("CIS*1500").
				Value(code).
				Validate(validateRequired),
			huh.NewInput().
				Title("Course Name").
				Placeholder("Introduction to Programming").
				Value(name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Professor (optional)").
				Value(professor),
		),
	).WithTheme(tasselHuhTheme()).WithShowHelp(false)
}

// scoreForm collects a score for one weighted category. The prompt
// shows the weight so the entered value has an obvious ceiling.
func scoreForm(categoryName string, weight float64, score *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s (out of %.0f, blank to clear)", categoryName, weight)).
				Value(score).
				Validate(validateOptionalFloat),
		),
	).WithTheme(tasselHuhTheme()).WithShowHelp(false)
}

// electiveSelectForm picks one option from an elective slot's pool.
func electiveSelectForm(slotID string, options []huh.Option[string], choice *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Select course for %s", slotID)).
				Options(options...).
				Value(choice),
		),
	).WithTheme(tasselHuhTheme()).WithShowHelp(false)
}
