package cli

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newElectiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elective",
		Short: "Bind courses to elective slots",
	}

	cmd.AddCommand(
		newElectiveListCmd(app),
		newElectiveSelectCmd(app),
		newElectiveClearCmd(app),
	)

	return cmd
}

func newElectiveListCmd(app *App) *cobra.Command {
	var major string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List elective slots and their bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := resolveMajor(app, major)
			ov, err := app.Tree.Overview(context.Background(), m)
			if err != nil {
				return err
			}

			headers := []string{"SLOT", "CATEGORY", "CREDITS", "COURSE", "STATE"}
			var rows [][]string
			for _, sem := range ov.Semesters {
				for _, slot := range sem.Slots {
					if !slot.Elective {
						continue
					}
					course := formatter.StyleDim.Render("(unselected)")
					if slot.Code != "" {
						course = formatter.StyleBold.Render(slot.Code)
						if slot.Name != "" {
							course += "  " + slot.Name
						}
					}
					cat := slot.Category
					if cat == "" {
						cat = formatter.StyleDim.Render("--")
					}
					rows = append(rows, []string{
						slot.SlotCode,
						cat,
						fmt.Sprintf("%d", slot.Credits),
						course,
						formatter.SlotStateStyle(slot.State).Render(string(slot.State)),
					})
				}
			}
			if len(rows) == 0 {
				fmt.Println(formatter.StyleDim.Render("This program has no elective slots."))
				return nil
			}

			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	majorFlag(cmd, app, &major)
	return cmd
}

func newElectiveSelectCmd(app *App) *cobra.Command {
	var major string

	cmd := &cobra.Command{
		Use:   "select SLOT [COURSE]",
		Short: "Bind a course to an elective slot",
		Long: "Bind a course to an elective slot. The course may come from the\n" +
			"program's elective pool or from your own course list. Without a\n" +
			"COURSE argument an interactive picker over the pool is shown.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m := resolveMajor(app, major)
			slotID := args[0]

			var code string
			if len(args) == 2 {
				code = args[1]
			} else {
				if !app.Interactive {
					return fmt.Errorf("a course code is required")
				}
				prog, err := app.Programs.Program(m)
				if err != nil {
					return err
				}
				var opts []huh.Option[string]
				for _, e := range prog.Electives {
					opts = append(opts, huh.NewOption(
						fmt.Sprintf("%s  %s (%d cr)", e.Code, e.Name, e.Credits), e.Code))
				}
				if len(opts) == 0 {
					return fmt.Errorf("program %s has no elective pool", m)
				}
				if err := electiveSelectForm(slotID, opts, &code).Run(); err != nil {
					return err
				}
			}

			if err := app.Tree.SelectElective(ctx, m, slotID, code); err != nil {
				return err
			}

			fmt.Printf("Bound %s to %s\n", code, slotID)
			return nil
		},
	}

	majorFlag(cmd, app, &major)
	return cmd
}

func newElectiveClearCmd(app *App) *cobra.Command {
	var major string

	cmd := &cobra.Command{
		Use:   "clear SLOT",
		Short: "Clear an elective slot's binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := resolveMajor(app, major)
			if err := app.Tree.ClearElective(context.Background(), m, args[0]); err != nil {
				return err
			}
			fmt.Printf("Cleared elective slot %s\n", args[0])
			return nil
		},
	}

	majorFlag(cmd, app, &major)
	return cmd
}
