package cli

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func majorFlag(cmd *cobra.Command, app *App, major *string) {
	cmd.Flags().StringVar(major, "major", "", "Program major (defaults to "+app.DefaultMajor+")")
}

func resolveMajor(app *App, major string) string {
	if major != "" {
		return major
	}
	return app.DefaultMajor
}

func newTreeCmd(app *App) *cobra.Command {
	var major string
	var static bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the academic tree (interactive on a TTY)",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := resolveMajor(app, major)

			if app.Interactive && !static {
				model := newTreeModel(app.Tree, m)
				p := tea.NewProgram(model, tea.WithAltScreen())
				final, err := p.Run()
				if err != nil {
					return err
				}
				if tm, ok := final.(*treeModel); ok && tm.err != nil {
					return tm.err
				}
				return nil
			}

			ov, err := app.Tree.Overview(context.Background(), m)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderOverview(ov))
			return nil
		},
	}

	majorFlag(cmd, app, &major)
	cmd.Flags().BoolVar(&static, "static", false, "Print the tree instead of opening the interactive view")

	cmd.AddCommand(
		newTreeCurrentCmd(app),
		newTreeCompleteCmd(app),
		newTreeUncompleteCmd(app),
	)

	return cmd
}

func newTreeCurrentCmd(app *App) *cobra.Command {
	var major string

	cmd := &cobra.Command{
		Use:   "current CODE",
		Short: "Mark a course as in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := resolveMajor(app, major)
			if err := app.Tree.MarkCurrent(context.Background(), m, args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked %s as in progress\n", args[0])
			return nil
		},
	}

	majorFlag(cmd, app, &major)
	return cmd
}

func newTreeCompleteCmd(app *App) *cobra.Command {
	var major string

	cmd := &cobra.Command{
		Use:   "complete CODE",
		Short: "Mark a course as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := resolveMajor(app, major)
			if err := app.Tree.MarkCompleted(context.Background(), m, args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked %s as completed\n", args[0])
			return nil
		},
	}

	majorFlag(cmd, app, &major)
	return cmd
}

func newTreeUncompleteCmd(app *App) *cobra.Command {
	var major string

	cmd := &cobra.Command{
		Use:   "uncomplete CODE",
		Short: "Clear a course's completed mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := resolveMajor(app, major)
			if err := app.Tree.UnmarkCompleted(context.Background(), m, args[0]); err != nil {
				return err
			}
			fmt.Printf("Cleared completed mark on %s\n", args[0])
			return nil
		},
	}

	majorFlag(cmd, app, &major)
	return cmd
}
