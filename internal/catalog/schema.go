package catalog

import (
	"fmt"

	"github.com/ajrivet/tassel/internal/domain"
)

// programSchema is the top-level JSON structure of one program file.
type programSchema struct {
	Major              string           `json:"major"`
	Name               string           `json:"name"`
	TotalCredits       int              `json:"totalCredits"`
	Semesters          []semesterSchema `json:"semesters"`
	Electives          []electiveSchema `json:"electives"`
	ElectiveCategories []categorySchema `json:"electiveCategories,omitempty"`
}

type semesterSchema struct {
	Name    string       `json:"name"`
	Courses []slotSchema `json:"courses"`
}

// slotSchema carries both slot variants; isElective discriminates.
type slotSchema struct {
	Code       string `json:"code,omitempty"`
	Name       string `json:"name,omitempty"`
	Credits    int    `json:"credits"`
	IsElective bool   `json:"isElective,omitempty"`
	SlotID     string `json:"slotId,omitempty"`
	Category   string `json:"category,omitempty"`
}

type electiveSchema struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Category string `json:"category,omitempty"`
}

type categorySchema struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Credits int    `json:"credits"`
}

// toDomain converts the decoded schema into the domain sum type,
// rejecting slots that fit neither variant.
func (ps *programSchema) toDomain() (*domain.Program, error) {
	if ps.Major == "" {
		return nil, fmt.Errorf("program major is required")
	}
	p := &domain.Program{
		Major:        ps.Major,
		Name:         ps.Name,
		TotalCredits: ps.TotalCredits,
	}
	seenCodes := make(map[string]bool)
	seenSlots := make(map[string]bool)
	for _, sem := range ps.Semesters {
		s := domain.Semester{Name: sem.Name}
		for _, c := range sem.Courses {
			slot, err := c.toSlot()
			if err != nil {
				return nil, fmt.Errorf("program %s, %s: %w", ps.Major, sem.Name, err)
			}
			code := slot.SlotCode()
			if seenCodes[code] || seenSlots[code] {
				return nil, fmt.Errorf("program %s: duplicate slot %q", ps.Major, code)
			}
			if _, ok := slot.(domain.ElectiveSlot); ok {
				seenSlots[code] = true
			} else {
				seenCodes[code] = true
			}
			s.Slots = append(s.Slots, slot)
		}
		p.Semesters = append(p.Semesters, s)
	}
	for _, e := range ps.Electives {
		if e.Code == "" {
			return nil, fmt.Errorf("program %s: elective pool entry without code", ps.Major)
		}
		p.Electives = append(p.Electives, domain.ElectiveOption(e))
	}
	for _, c := range ps.ElectiveCategories {
		p.ElectiveCategories = append(p.ElectiveCategories, domain.ElectiveCategory(c))
	}
	return p, nil
}

func (c slotSchema) toSlot() (domain.Slot, error) {
	if c.IsElective {
		if c.SlotID == "" {
			return nil, fmt.Errorf("elective slot without slotId")
		}
		if c.Code != "" {
			return nil, fmt.Errorf("elective slot %q must not carry a course code", c.SlotID)
		}
		return domain.ElectiveSlot{SlotID: c.SlotID, Credits: c.Credits, Category: c.Category}, nil
	}
	if c.Code == "" {
		return nil, fmt.Errorf("required slot without course code")
	}
	return domain.RequiredSlot{Code: c.Code, Name: c.Name, Credits: c.Credits}, nil
}
