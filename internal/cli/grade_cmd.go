package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ajrivet/tassel/internal/cli/formatter"
	"github.com/ajrivet/tassel/internal/domain"
	"github.com/spf13/cobra"
)

func newGradeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Manage weighted grade categories",
	}

	cmd.AddCommand(
		newGradeListCmd(app),
		newGradeAddCmd(app),
		newGradeSetCmd(app),
	)

	return cmd
}

func newGradeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list COURSE",
		Short: "Show a course's grade categories and standing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			cats, err := app.Grades.ListByCourse(ctx, c.ID)
			if err != nil {
				return err
			}
			sum, err := app.Grades.Summary(ctx, c.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s  %s\n\n", formatter.StyleHeader.Render(c.Code), formatter.FormatSummary(sum))
			fmt.Println(formatter.FormatCategories(cats))
			return nil
		},
	}
}

func newGradeAddCmd(app *App) *cobra.Command {
	var weight float64

	cmd := &cobra.Command{
		Use:   "add COURSE NAME",
		Short: "Add a weighted grade category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			cat := domain.GradeCategory{Name: args[1], Weight: weight}
			if err := app.Grades.AddCategory(ctx, c.ID, cat); err != nil {
				return err
			}

			fmt.Printf("Added category %s (%.0fpt) to %s\n", cat.Name, cat.Weight, c.Code)
			return nil
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "Category weight in percentage points")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

func newGradeSetCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "set COURSE CATEGORY [SCORE]",
		Short: "Enter or clear a category score",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			name := args[1]

			var score *float64
			switch {
			case clear:
				// leave nil
			case len(args) == 3:
				v, err := strconv.ParseFloat(args[2], 64)
				if err != nil {
					return fmt.Errorf("invalid score %q: %w", args[2], err)
				}
				score = &v
			case app.Interactive:
				cats, err := app.Grades.ListByCourse(ctx, c.ID)
				if err != nil {
					return err
				}
				var weight float64
				found := false
				for _, cat := range cats {
					if cat.Name == name {
						weight = cat.Weight
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("category not found: %q", name)
				}
				var raw string
				if err := scoreForm(name, weight, &raw).Run(); err != nil {
					return err
				}
				if raw != "" {
					v, err := strconv.ParseFloat(raw, 64)
					if err != nil {
						return fmt.Errorf("invalid score %q: %w", raw, err)
					}
					score = &v
				}
			default:
				return fmt.Errorf("a score is required (or pass --clear)")
			}

			if err := app.Grades.EnterScore(ctx, c.ID, name, score); err != nil {
				return err
			}

			sum, err := app.Grades.Summary(ctx, c.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n", c.Code, formatter.FormatSummary(sum))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the category's score")

	return cmd
}
