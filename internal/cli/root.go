package cli

import (
	"github.com/ajrivet/tassel/internal/catalog"
	"github.com/ajrivet/tassel/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Courses   service.CourseService
	Grades    service.GradeService
	GPA       service.GPAService
	Reminders service.ReminderService
	Tree      service.TreeService
	Weekly    service.WeeklyService
	Programs  *catalog.Catalog

	// DefaultMajor is used when a command's --major flag is left empty.
	DefaultMajor string
	// Interactive enables huh forms and the tree TUI (stdout is a TTY).
	Interactive bool
}

// NewRootCmd creates the top-level "tassel" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tassel",
		Short: "Course grades, GPA and degree-progress tracker",
	}

	root.AddCommand(
		newCourseCmd(app),
		newGradeCmd(app),
		newGPACmd(app),
		newTreeCmd(app),
		newElectiveCmd(app),
		newReminderCmd(app),
		newWeeklyCmd(app),
	)

	return root
}
