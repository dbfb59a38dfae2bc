package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ajrivet/tassel/internal/cli/formatter"
	"github.com/ajrivet/tassel/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// resolveReminder finds a reminder by exact ID or unambiguous prefix.
func resolveReminder(ctx context.Context, app *App, input string) (*domain.Reminder, error) {
	if input == "" {
		return nil, fmt.Errorf("reminder ID is required")
	}

	reminders, err := app.Reminders.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*domain.Reminder
	for i := range reminders {
		if reminders[i].ID == input {
			return &reminders[i], nil
		}
		if strings.HasPrefix(reminders[i].ID, input) {
			matches = append(matches, &reminders[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("reminder not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("reminder ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newReminderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage course reminders",
	}

	cmd.AddCommand(
		newReminderAddCmd(app),
		newReminderListCmd(app),
		newReminderDoneCmd(app),
		newReminderRemoveCmd(app),
	)

	return cmd
}

func newReminderAddCmd(app *App) *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "add COURSE TITLE",
		Short: "Add a reminder for a course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			r := &domain.Reminder{
				ID:       uuid.New().String(),
				CourseID: c.ID,
				Title:    args[1],
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				r.DueDate = &d
			}
			if err := app.Reminders.Add(ctx, r); err != nil {
				return err
			}

			fmt.Printf("Added reminder %s for %s\n", formatter.TruncID(r.ID), c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newReminderListCmd(app *App) *cobra.Command {
	var courseArg string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var reminders []domain.Reminder
			var err error
			if courseArg != "" {
				c, rerr := resolveCourse(ctx, app, courseArg)
				if rerr != nil {
					return rerr
				}
				reminders, err = app.Reminders.ListByCourse(ctx, c.ID)
			} else {
				reminders, err = app.Reminders.List(ctx)
			}
			if err != nil {
				return err
			}

			courses, err := app.Courses.List(ctx)
			if err != nil {
				return err
			}
			codes := make(map[string]string, len(courses))
			for _, c := range courses {
				codes[c.ID] = c.Code
			}

			fmt.Println(formatter.FormatReminderList(reminders, codes))
			return nil
		},
	}

	cmd.Flags().StringVar(&courseArg, "course", "", "Only reminders for this course")

	return cmd
}

func newReminderDoneCmd(app *App) *cobra.Command {
	var gradeStr string

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Complete a reminder, optionally recording a grade",
		Long: "Complete a reminder. With --grade the reminder feeds grade entry:\n" +
			"a category named after the reminder is added to (or updated on) its\n" +
			"course, scored at the given percentage of the category's weight.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			r, err := resolveReminder(ctx, app, args[0])
			if err != nil {
				return err
			}

			var gradePct *float64
			if gradeStr != "" {
				v, err := strconv.ParseFloat(gradeStr, 64)
				if err != nil {
					return fmt.Errorf("invalid grade %q: %w", gradeStr, err)
				}
				gradePct = &v
			}
			if err := app.Reminders.Complete(ctx, r.ID, gradePct); err != nil {
				return err
			}

			if gradePct != nil {
				fmt.Printf("Completed %q at %.1f%%\n", r.Title, *gradePct)
			} else {
				fmt.Printf("Completed %q\n", r.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gradeStr, "grade", "", "Grade received, as a percentage in [0, 100]")

	return cmd
}

func newReminderRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			r, err := resolveReminder(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Reminders.Delete(ctx, r.ID); err != nil {
				return err
			}
			fmt.Printf("Removed reminder %q\n", r.Title)
			return nil
		},
	}
}
