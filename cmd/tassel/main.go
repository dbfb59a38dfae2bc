package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajrivet/tassel/internal/catalog"
	"github.com/ajrivet/tassel/internal/cli"
	"github.com/ajrivet/tassel/internal/db"
	"github.com/ajrivet/tassel/internal/repository"
	"github.com/ajrivet/tassel/internal/service"
	"github.com/ajrivet/tassel/internal/storage"
	"github.com/mattn/go-isatty"
)

const defaultMajor = "CS"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.tassel/tassel.db
	dbPath := os.Getenv("TASSEL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tassel", "tassel.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Program catalog: TASSEL_PROGRAMS overrides the embedded catalog.
	programs, err := catalog.Load(catalog.ResolveDir(os.Getenv("TASSEL_PROGRAMS")))
	if err != nil {
		return fmt.Errorf("loading program catalog: %w", err)
	}

	major := os.Getenv("TASSEL_MAJOR")
	if major == "" {
		major = defaultMajor
	}

	store := storage.NewSQLiteStore(database)
	courseRepo := repository.NewKVCourseRepo(store)
	gradeRepo := repository.NewKVGradeRepo(store)
	weeklyRepo := repository.NewKVWeeklyRepo(store)
	reminderRepo := repository.NewKVReminderRepo(store)
	progressRepo := repository.NewKVProgressRepo(store)

	app := &cli.App{
		Courses:   service.NewCourseService(courseRepo, gradeRepo, weeklyRepo, reminderRepo),
		Grades:    service.NewGradeService(gradeRepo, courseRepo),
		GPA:       service.NewGPAService(courseRepo, gradeRepo),
		Reminders: service.NewReminderService(reminderRepo, gradeRepo, courseRepo),
		Tree:      service.NewTreeService(programs, progressRepo, courseRepo),
		Weekly:    service.NewWeeklyService(weeklyRepo, courseRepo),
		Programs:  programs,

		DefaultMajor: major,
		Interactive:  isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
