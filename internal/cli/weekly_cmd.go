package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ajrivet/tassel/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWeeklyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Track the weekly checklist per course",
	}

	cmd.AddCommand(
		newWeeklyShowCmd(app),
		newWeeklyToggleCmd(app),
	)

	return cmd
}

func newWeeklyShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show COURSE",
		Short: "Show a course's weekly checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			weeks, err := app.Weekly.Get(ctx, c.ID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatWeekly(c.Code, weeks))
			return nil
		},
	}
}

func newWeeklyToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle COURSE WEEK",
		Short: "Toggle a week's checkmark (weeks are numbered from 1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			week, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid week %q: %w", args[1], err)
			}

			// The service indexes weeks from 0.
			if err := app.Weekly.ToggleWeek(ctx, c.ID, week-1); err != nil {
				return err
			}

			weeks, err := app.Weekly.Get(ctx, c.ID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWeekly(c.Code, weeks))
			return nil
		},
	}
}
