package formatter

import (
	"fmt"
	"strings"

	"github.com/ajrivet/tassel/internal/service"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
)

// RenderOverview renders the full academic tree: one block per
// semester with box-drawing connectors, then credit totals and per-
// bucket elective progress.
func RenderOverview(ov *service.TreeOverview) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(strings.ToUpper(ov.ProgramName)))
	b.WriteString("\n\n")

	for _, sem := range ov.Semesters {
		b.WriteString(StyleBold.Render(sem.Name))
		b.WriteString("\n")
		for i, slot := range sem.Slots {
			connector := treeBranch
			if i == len(sem.Slots)-1 {
				connector = treeCorner
			}
			b.WriteString(StyleDim.Render(connector))
			b.WriteString(renderSlot(slot))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s\n",
		StyleBold.Render("Credits:"),
		fmt.Sprintf("%d/%d", ov.CompletedCredits, ov.TotalCredits),
		RenderProgress(ov.ProgressPercent/100, 20))

	for _, cat := range ov.Categories {
		fmt.Fprintf(&b, "%s %d/%d credits\n",
			StyleDim.Render(cat.Title+":"), cat.Completed, cat.Required)
	}
	return b.String()
}

func renderSlot(slot service.SlotOverview) string {
	marker := SlotStateMarker(slot.State)
	style := SlotStateStyle(slot.State)

	label := slot.Code
	if slot.Name != "" {
		label += "  " + slot.Name
	}
	if slot.Elective && slot.Code == "" {
		label = fmt.Sprintf("%s  (unselected elective)", slot.SlotCode)
	}
	credits := StyleDim.Render(fmt.Sprintf("[%d cr]", slot.Credits))
	return fmt.Sprintf("%s %s %s", marker, style.Render(label), credits)
}
