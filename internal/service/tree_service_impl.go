package service

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/catalog"
	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/repository"
)

type treeService struct {
	catalog  *catalog.Catalog
	progress repository.ProgressRepo
	courses  repository.CourseRepo
}

func NewTreeService(cat *catalog.Catalog, progress repository.ProgressRepo, courses repository.CourseRepo) TreeService {
	return &treeService{catalog: cat, progress: progress, courses: courses}
}

func (s *treeService) Overview(ctx context.Context, major string) (*TreeOverview, error) {
	program, err := s.catalog.Program(major)
	if err != nil {
		return nil, err
	}
	st, err := s.progress.Load(ctx, major)
	if err != nil {
		return nil, err
	}

	ov := &TreeOverview{
		Major:            program.Major,
		ProgramName:      program.Name,
		CompletedCredits: domain.CompletedCredits(program, st),
		TotalCredits:     program.TotalCredits,
		ProgressPercent:  domain.ProgressPercent(program, st),
	}
	for _, sem := range program.Semesters {
		so := SemesterOverview{Name: sem.Name}
		for _, slot := range sem.Slots {
			so.Slots = append(so.Slots, slotOverview(slot, st))
		}
		ov.Semesters = append(ov.Semesters, so)
	}

	byCat := domain.CompletedElectiveCreditsByCategory(program, st)
	for _, cat := range program.ElectiveCategories {
		ov.Categories = append(ov.Categories, CategoryProgress{
			ID:        cat.ID,
			Title:     cat.Title,
			Completed: byCat[cat.ID],
			Required:  cat.Credits,
		})
	}
	return ov, nil
}

func slotOverview(slot domain.Slot, st *domain.ProgressState) SlotOverview {
	ov := SlotOverview{
		SlotCode: slot.SlotCode(),
		Credits:  slot.SlotCredits(),
		State:    st.SlotState(slot),
	}
	switch sl := slot.(type) {
	case domain.RequiredSlot:
		ov.Code = sl.Code
		ov.Name = sl.Name
	case domain.ElectiveSlot:
		ov.Elective = true
		ov.Category = sl.Category
		if choice, ok := st.SelectedElectives[sl.SlotID]; ok {
			ov.Code = choice.Code
			ov.Name = choice.Name
			ov.Credits = choice.Credits
		}
	}
	return ov
}

func (s *treeService) SelectElective(ctx context.Context, major, slotID, courseCode string) error {
	program, err := s.catalog.Program(major)
	if err != nil {
		return err
	}
	slot, err := findElectiveSlot(program, slotID)
	if err != nil {
		return err
	}
	choice, err := s.resolveChoice(ctx, program, slot, courseCode)
	if err != nil {
		return err
	}
	return s.transition(ctx, major, func(st *domain.ProgressState) {
		st.SelectElective(slotID, choice)
	})
}

// resolveChoice finds the concrete course for an elective selection: the
// program's pool first, then the student's own course records (which
// inherit the slot's credit value).
func (s *treeService) resolveChoice(ctx context.Context, program *domain.Program, slot domain.ElectiveSlot, courseCode string) (domain.ElectiveChoice, error) {
	if opt, ok := program.FindElectiveOption(courseCode); ok {
		return domain.ElectiveChoice(opt), nil
	}
	course, err := s.courses.GetByCode(ctx, courseCode)
	if err != nil {
		return domain.ElectiveChoice{}, fmt.Errorf("course %q is neither in the elective pool nor in your courses", courseCode)
	}
	return domain.ElectiveChoice{
		Code:     course.Code,
		Name:     course.Name,
		Credits:  slot.Credits,
		Category: slot.Category,
	}, nil
}

func (s *treeService) ClearElective(ctx context.Context, major, slotID string) error {
	program, err := s.catalog.Program(major)
	if err != nil {
		return err
	}
	if _, err := findElectiveSlot(program, slotID); err != nil {
		return err
	}
	return s.transition(ctx, major, func(st *domain.ProgressState) {
		st.ClearElective(slotID)
	})
}

func (s *treeService) MarkCurrent(ctx context.Context, major, code string) error {
	return s.transition(ctx, major, func(st *domain.ProgressState) {
		st.MarkCurrent(code)
	})
}

func (s *treeService) MarkCompleted(ctx context.Context, major, code string) error {
	return s.transition(ctx, major, func(st *domain.ProgressState) {
		st.MarkCompleted(code)
	})
}

func (s *treeService) UnmarkCompleted(ctx context.Context, major, code string) error {
	return s.transition(ctx, major, func(st *domain.ProgressState) {
		st.UnmarkCompleted(code)
	})
}

func (s *treeService) Activate(ctx context.Context, major, code string, act domain.Activation) error {
	return s.transition(ctx, major, func(st *domain.ProgressState) {
		switch act {
		case domain.ActivationDouble:
			st.ToggleCompleted(code)
		default:
			st.ToggleCurrent(code)
		}
	})
}

// transition loads the snapshot, applies the mutation fully in memory,
// then persists. The persisted keys are written sequentially; there is
// no cross-key atomicity (accepted: single user, single device).
func (s *treeService) transition(ctx context.Context, major string, apply func(*domain.ProgressState)) error {
	st, err := s.progress.Load(ctx, major)
	if err != nil {
		return err
	}
	apply(st)
	return s.progress.Save(ctx, major, st)
}

func findElectiveSlot(program *domain.Program, slotID string) (domain.ElectiveSlot, error) {
	for _, es := range program.ElectiveSlots() {
		if es.SlotID == slotID {
			return es, nil
		}
	}
	return domain.ElectiveSlot{}, fmt.Errorf("elective slot %q not found in program %s", slotID, program.Major)
}
