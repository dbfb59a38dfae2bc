package domain

// Slot is one position in a program's curriculum: either a required
// course or an elective placeholder awaiting selection. The variant set
// is sealed so slot handling can be exhaustive.
type Slot interface {
	// SlotCode is the stable identifier of the position within the
	// program: the course code for a required slot, the placeholder ID
	// (e.g. "ELECTIVE_CS_S5") for an elective slot.
	SlotCode() string
	SlotCredits() int
	isSlot()
}

// RequiredSlot is a concrete course the program mandates.
type RequiredSlot struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}

func (s RequiredSlot) SlotCode() string { return s.Code }
func (s RequiredSlot) SlotCredits() int { return s.Credits }
func (s RequiredSlot) isSlot()          {}

// ElectiveSlot is a placeholder that must be bound to a concrete course
// before it can be tracked as in-progress or completed.
type ElectiveSlot struct {
	SlotID   string `json:"slotId"`
	Credits  int    `json:"credits"`
	Category string `json:"category,omitempty"`
}

func (s ElectiveSlot) SlotCode() string { return s.SlotID }
func (s ElectiveSlot) SlotCredits() int { return s.Credits }
func (s ElectiveSlot) isSlot()          {}

// ElectiveOption is one concrete course from the program's elective pool.
type ElectiveOption struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Category string `json:"category,omitempty"`
}

// ElectiveCategory describes one grouped elective requirement bucket.
type ElectiveCategory struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Credits int    `json:"credits"`
}

// Semester is one ordered term of a program's curriculum.
type Semester struct {
	Name  string
	Slots []Slot
}

// Program is a read-only curriculum: required courses per semester, an
// elective pool, and the credit total the program advertises.
// TotalCredits is catalog data, not derived; a mismatch with the actual
// slot credits is a data-authoring defect the engine does not detect.
type Program struct {
	Major              string
	Name               string
	TotalCredits       int
	Semesters          []Semester
	Electives          []ElectiveOption
	ElectiveCategories []ElectiveCategory
}

// ElectiveSlots returns every elective placeholder across all semesters.
func (p *Program) ElectiveSlots() []ElectiveSlot {
	var out []ElectiveSlot
	for _, sem := range p.Semesters {
		for _, s := range sem.Slots {
			if es, ok := s.(ElectiveSlot); ok {
				out = append(out, es)
			}
		}
	}
	return out
}

// FindElectiveOption looks up a pool course by code.
func (p *Program) FindElectiveOption(code string) (ElectiveOption, bool) {
	for _, e := range p.Electives {
		if e.Code == code {
			return e, true
		}
	}
	return ElectiveOption{}, false
}
