package cli

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGPACmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "gpa",
		Short: "Show the cumulative GPA across graded courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			gpa, err := app.GPA.OverallGPA(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n",
				formatter.StyleHeader.Render("Cumulative GPA:"),
				formatter.StyleBold.Render(fmt.Sprintf("%.2f", gpa)))
			return nil
		},
	}
}
