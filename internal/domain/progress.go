package domain

// ElectiveChoice is the concrete course bound to an elective slot.
type ElectiveChoice struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Category string `json:"category,omitempty"`
}

// ProgressState is the in-memory snapshot of a student's progress through
// one program: completed and in-progress course codes plus elective slot
// bindings. Transitions mutate the snapshot only; persistence is the
// caller's concern, so every multi-key write is computed here first.
//
// Invariant: a code is never in both Completed and Current.
type ProgressState struct {
	Completed         map[string]bool
	Current           map[string]bool
	SelectedElectives map[string]ElectiveChoice
}

// NewProgressState returns an empty snapshot with all maps allocated.
func NewProgressState() *ProgressState {
	return &ProgressState{
		Completed:         make(map[string]bool),
		Current:           make(map[string]bool),
		SelectedElectives: make(map[string]ElectiveChoice),
	}
}

// SelectElective binds a concrete course to an elective slot, moving the
// slot from Unresolved to NotStarted. Re-selecting an already-resolved
// slot overwrites the binding; the previous selection's completion entry,
// if any, is left behind (use ClearElective first to avoid an orphaned
// completed credit).
func (s *ProgressState) SelectElective(slotID string, choice ElectiveChoice) {
	s.SelectedElectives[slotID] = choice
}

// ClearElective removes a slot's binding and strips the bound course's
// code from Completed so its credits stop counting.
func (s *ProgressState) ClearElective(slotID string) {
	choice, ok := s.SelectedElectives[slotID]
	if !ok {
		return
	}
	delete(s.SelectedElectives, slotID)
	delete(s.Completed, choice.Code)
}

// MarkCurrent moves a code into Current. No-op for a completed code: a
// completed course must be un-completed before it can be current again.
func (s *ProgressState) MarkCurrent(code string) {
	if s.Completed[code] {
		return
	}
	s.Current[code] = true
}

// UnmarkCurrent removes a code from Current.
func (s *ProgressState) UnmarkCurrent(code string) {
	delete(s.Current, code)
}

// MarkCompleted moves a code into Completed and out of Current in one
// in-memory transition.
func (s *ProgressState) MarkCompleted(code string) {
	s.Completed[code] = true
	delete(s.Current, code)
}

// UnmarkCompleted removes a code from Completed. It does not restore
// prior Current membership.
func (s *ProgressState) UnmarkCompleted(code string) {
	delete(s.Completed, code)
}

// ToggleCurrent is the single-activation entry point.
func (s *ProgressState) ToggleCurrent(code string) {
	if s.Current[code] {
		s.UnmarkCurrent(code)
		return
	}
	s.MarkCurrent(code)
}

// ToggleCompleted is the double-activation entry point.
func (s *ProgressState) ToggleCompleted(code string) {
	if s.Completed[code] {
		s.UnmarkCompleted(code)
		return
	}
	s.MarkCompleted(code)
}

// EffectiveCode resolves a slot to the course code used for tracking:
// the code itself for a required slot, the bound course's code for a
// resolved elective slot, "" for an unresolved one.
func (s *ProgressState) EffectiveCode(slot Slot) string {
	switch sl := slot.(type) {
	case RequiredSlot:
		return sl.Code
	case ElectiveSlot:
		if choice, ok := s.SelectedElectives[sl.SlotID]; ok {
			return choice.Code
		}
		return ""
	}
	return ""
}

// SlotState reports the tracking state of one curriculum slot.
func (s *ProgressState) SlotState(slot Slot) SlotState {
	code := s.EffectiveCode(slot)
	if code == "" {
		return SlotUnresolved
	}
	if s.Completed[code] {
		return SlotCompleted
	}
	if s.Current[code] {
		return SlotInProgress
	}
	return SlotNotStarted
}

// CompletedCredits sums credits over every completed concrete course the
// program knows: required slots, elective-pool courses, and bound
// elective choices from outside the pool. Each code counts once. Note a
// completed elective keeps counting even after its slot is re-bound to a
// different course; only ClearElective removes it.
func CompletedCredits(p *Program, s *ProgressState) int {
	counted := make(map[string]bool)
	total := 0
	add := func(code string, credits int) {
		if code == "" || counted[code] || !s.Completed[code] {
			return
		}
		counted[code] = true
		total += credits
	}
	for _, sem := range p.Semesters {
		for _, slot := range sem.Slots {
			if rs, ok := slot.(RequiredSlot); ok {
				add(rs.Code, rs.Credits)
			}
		}
	}
	for _, e := range p.Electives {
		add(e.Code, e.Credits)
	}
	for _, choice := range s.SelectedElectives {
		add(choice.Code, choice.Credits)
	}
	return total
}

// ProgressPercent is completed credits over the program's advertised
// total, not clamped: it exceeds 100 when TotalCredits undercounts.
func ProgressPercent(p *Program, s *ProgressState) float64 {
	if p.TotalCredits == 0 {
		return 0
	}
	return float64(CompletedCredits(p, s)) / float64(p.TotalCredits) * 100
}

// CompletedElectiveCreditsByCategory sums completed elective credits per
// requirement bucket, keyed by category ID.
func CompletedElectiveCreditsByCategory(p *Program, s *ProgressState) map[string]int {
	out := make(map[string]int)
	counted := make(map[string]bool)
	for _, e := range p.Electives {
		if s.Completed[e.Code] && !counted[e.Code] {
			counted[e.Code] = true
			out[e.Category] += e.Credits
		}
	}
	for _, choice := range s.SelectedElectives {
		if s.Completed[choice.Code] && !counted[choice.Code] {
			counted[choice.Code] = true
			out[choice.Category] += choice.Credits
		}
	}
	return out
}
