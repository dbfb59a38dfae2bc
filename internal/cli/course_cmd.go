package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ajrivet/tassel/internal/cli/formatter"
	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// resolveCourse finds a course by code (case-insensitive), exact ID or
// unambiguous ID prefix.
func resolveCourse(ctx context.Context, app *App, input string) (*domain.Course, error) {
	if input == "" {
		return nil, fmt.Errorf("course code or ID is required")
	}

	courses, err := app.Courses.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range courses {
		if strings.EqualFold(courses[i].Code, input) {
			return &courses[i], nil
		}
	}
	for i := range courses {
		if courses[i].ID == input {
			return &courses[i], nil
		}
	}

	var matches []*domain.Course
	for i := range courses {
		if strings.HasPrefix(courses[i].ID, input) {
			matches = append(matches, &courses[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("course not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("course ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseShowCmd(app),
		newCourseUpdateCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var code, name, professor, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new course",
		RunE: func(cmd *cobra.Command, args []string) error {
			if code == "" && app.Interactive {
				if err := courseAddForm(&code, &name, &professor).Run(); err != nil {
					return err
				}
			}
			if code == "" || name == "" {
				return fmt.Errorf("--code and --name are required")
			}

			c := &domain.Course{
				ID:        uuid.New().String(),
				Code:      strings.ToUpper(code),
				Name:      name,
				Professor: professor,
				Color:     color,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := app.Courses.Create(context.Background(), c); err != nil {
				return err
			}

			fmt.Printf("Added course %s (%s)\n", c.Code, c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Course code (e.g. CIS*1500)")
	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&professor, "professor", "", "Professor name")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses with their current grades",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			courses, err := app.Courses.List(ctx)
			if err != nil {
				return err
			}

			summaries := make(map[string]*service.CourseGradeSummary, len(courses))
			for _, c := range courses {
				// A broken grade record only blanks its own row.
				if sum, err := app.Grades.Summary(ctx, c.ID); err == nil {
					summaries[c.ID] = sum
				}
			}

			fmt.Println(formatter.FormatCourseList(courses, summaries))
			return nil
		},
	}
}

func newCourseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show COURSE",
		Short: "Show course details and grade breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			sum, err := app.Grades.Summary(ctx, c.ID)
			if err != nil {
				return err
			}
			cats, err := app.Grades.ListByCourse(ctx, c.ID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatCourseInspect(c, sum, cats))
			return nil
		},
	}
}

func newCourseUpdateCmd(app *App) *cobra.Command {
	var name, professor, color string

	cmd := &cobra.Command{
		Use:   "update COURSE",
		Short: "Update course fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			if name != "" {
				c.Name = name
			}
			if cmd.Flags().Changed("professor") {
				c.Professor = professor
			}
			if cmd.Flags().Changed("color") {
				c.Color = color
			}
			if err := app.Courses.Update(ctx, c); err != nil {
				return err
			}

			fmt.Printf("Updated course %s\n", c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New course name")
	cmd.Flags().StringVar(&professor, "professor", "", "New professor name")
	cmd.Flags().StringVar(&color, "color", "", "New display color")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm COURSE",
		Short: "Remove a course and its grades, checklist and reminders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Courses.Delete(ctx, c.ID); err != nil {
				return err
			}

			fmt.Printf("Removed course %s\n", c.Code)
			return nil
		},
	}
}
