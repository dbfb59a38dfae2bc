package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ajrivet/tassel/internal/cli/formatter"
	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type treeKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Tap  key.Binding
	Quit key.Binding
}

func defaultTreeKeys() treeKeyMap {
	return treeKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k")),
		Down: key.NewBinding(key.WithKeys("down", "j")),
		Tap:  key.NewBinding(key.WithKeys("enter", " ")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

type treeLoadedMsg struct {
	overview *service.TreeOverview
	err      error
}

type tapTimeoutMsg struct {
	seq int
}

type activationDoneMsg struct {
	err error
}

// treeRow is one selectable line of the flattened tree: either a
// semester header or a slot.
type treeRow struct {
	isHeader bool
	title    string
	slot     service.SlotOverview
}

// treeModel is the interactive academic-tree view. Key presses on a
// slot row go through the tap classifier, so a quick double press
// toggles completion while a lone press toggles in-progress, matching
// the double-tap gesture of the touch UI.
type treeModel struct {
	svc   service.TreeService
	major string

	overview *service.TreeOverview
	rows     []treeRow
	cursor   int
	keys     treeKeyMap
	taps     *TapClassifier
	err      error
	loading  bool
	quitting bool

	// Injected for tests: wall clock and pending-tap timer factory.
	now     func() time.Time
	tickCmd func(seq int) tea.Cmd
}

func newTreeModel(svc service.TreeService, major string) *treeModel {
	m := &treeModel{
		svc:     svc,
		major:   major,
		keys:    defaultTreeKeys(),
		taps:    NewTapClassifier(DoubleTapWindow),
		loading: true,
		now:     time.Now,
	}
	m.tickCmd = func(seq int) tea.Cmd {
		return tea.Tick(DoubleTapWindow, func(time.Time) tea.Msg {
			return tapTimeoutMsg{seq: seq}
		})
	}
	return m
}

func (m *treeModel) Init() tea.Cmd {
	return m.load()
}

func (m *treeModel) load() tea.Cmd {
	return func() tea.Msg {
		ov, err := m.svc.Overview(context.Background(), m.major)
		return treeLoadedMsg{overview: ov, err: err}
	}
}

func (m *treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case treeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.overview = msg.overview
		m.rows = flattenOverview(msg.overview)
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < len(m.rows) && m.rows[m.cursor].isHeader {
			m.moveCursor(1)
		}
		return m, nil

	case tapTimeoutMsg:
		return m, m.dispatch(m.taps.Expire(msg.seq))

	case activationDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		return m, m.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Tap):
			return m, m.tapSelected()
		}
	}
	return m, nil
}

// tapSelected feeds the selected slot into the classifier. A pending
// tap schedules its expiry tick; resolved taps dispatch immediately.
func (m *treeModel) tapSelected() tea.Cmd {
	if m.cursor >= len(m.rows) {
		return nil
	}
	row := m.rows[m.cursor]
	if row.isHeader {
		return nil
	}
	if row.slot.State == domain.SlotUnresolved {
		// Nothing to toggle until the elective is selected.
		return nil
	}

	resolved := m.taps.Tap(row.slot.Code, m.now())
	if resolved == nil {
		return m.tickCmd(m.taps.Seq())
	}
	return m.dispatch(resolved)
}

func (m *treeModel) dispatch(taps []ClassifiedTap) tea.Cmd {
	if len(taps) == 0 {
		return nil
	}
	return func() tea.Msg {
		for _, tap := range taps {
			if err := m.svc.Activate(context.Background(), m.major, tap.Code, tap.Activation); err != nil {
				return activationDoneMsg{err: err}
			}
		}
		return activationDoneMsg{}
	}
}

func (m *treeModel) moveCursor(delta int) {
	next := m.cursor + delta
	for next >= 0 && next < len(m.rows) && m.rows[next].isHeader {
		next += delta
	}
	if next >= 0 && next < len(m.rows) {
		m.cursor = next
	}
}

func (m *treeModel) View() string {
	if m.quitting || m.err != nil {
		return ""
	}
	if m.loading {
		return "loading...\n"
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(strings.ToUpper(m.overview.ProgramName)))
	b.WriteString("\n\n")
	for i, row := range m.rows {
		if row.isHeader {
			b.WriteString(formatter.StyleBold.Render(row.title))
			b.WriteString("\n")
			continue
		}
		prefix := "  "
		if i == m.cursor {
			prefix = formatter.StyleHeader.Render("> ")
		}
		b.WriteString(prefix)
		b.WriteString(formatter.SlotStateMarker(row.slot.State))
		b.WriteString(" ")
		label := row.slot.Code
		if row.slot.Name != "" {
			label += "  " + row.slot.Name
		}
		if row.slot.Code == "" {
			label = row.slot.SlotCode + "  (unselected elective)"
		}
		b.WriteString(formatter.SlotStateStyle(row.slot.State).Render(label))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Credits: %d/%d  %s\n",
		m.overview.CompletedCredits, m.overview.TotalCredits,
		formatter.RenderProgress(m.overview.ProgressPercent/100, 20))
	b.WriteString(formatter.StyleDim.Render("press once: toggle in-progress · press twice: toggle completed · q: quit"))
	b.WriteString("\n")
	return b.String()
}

func flattenOverview(ov *service.TreeOverview) []treeRow {
	var rows []treeRow
	for _, sem := range ov.Semesters {
		rows = append(rows, treeRow{isHeader: true, title: sem.Name})
		for _, slot := range sem.Slots {
			rows = append(rows, treeRow{slot: slot})
		}
	}
	return rows
}
