package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
)

// Preset is a named ledger window relative to today.
type Preset int

const (
	PresetToday Preset = iota
	PresetLast7Days
	PresetThisMonth
	PresetLastMonth
	PresetThisYear
	PresetCustom
)

func (p Preset) String() string {
	switch p {
	case PresetToday:
		return "Today"
	case PresetLast7Days:
		return "Last 7 Days"
	case PresetThisMonth:
		return "This Month"
	case PresetLastMonth:
		return "Last Month"
	case PresetThisYear:
		return "This Year"
	case PresetCustom:
		return "Custom Range"
	}

	return "Unknown"
}

// presetWindow returns the half-open window for p. The upper bound is the
// start of the day after the last included day.
func presetWindow(p Preset, now time.Time) ledger.Window {
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	switch p {
	case PresetLast7Days:
		return ledger.Window{From: today.AddDate(0, 0, -6), To: tomorrow}
	case PresetThisMonth:
		return ledger.Window{From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), To: tomorrow}
	case PresetLastMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return ledger.Window{From: first.AddDate(0, -1, 0), To: first}
	case PresetThisYear:
		return ledger.Window{From: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), To: tomorrow}
	}

	return ledger.Window{From: today, To: tomorrow}
}

// customWindow parses inclusive YYYY-MM-DD bounds.
func customWindow(from, to string, loc *time.Location) (ledger.Window, error) {
	start, err := time.ParseInLocation("2006-01-02", from, loc)
	if err != nil {
		return ledger.Window{}, fmt.Errorf("invalid start date (YYYY-MM-DD)")
	}

	end, err := time.ParseInLocation("2006-01-02", to, loc)
	if err != nil {
		return ledger.Window{}, fmt.Errorf("invalid end date (YYYY-MM-DD)")
	}

	if end.Before(start) {
		return ledger.Window{}, fmt.Errorf("end date is before start date")
	}

	return ledger.Window{From: start, To: end.AddDate(0, 0, 1)}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WindowSelectedMsg is emitted once the user has picked a ledger window.
type WindowSelectedMsg struct {
	Window ledger.Window
}

type windowState int

const (
	windowStateSelect windowState = iota
	windowStateCustom
)

// WindowPicker is a reusable component for choosing a ledger window.
type WindowPicker struct {
	state    windowState
	selected Preset
	now      func() time.Time

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	err error
}

func NewWindowPicker() WindowPicker {
	si := textinput.New()
	si.Placeholder = "YYYY-MM-DD"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "From: "

	ei := textinput.New()
	ei.Placeholder = "YYYY-MM-DD"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "To:   "

	return WindowPicker{
		state:      windowStateSelect,
		selected:   PresetThisMonth,
		now:        time.Now,
		startInput: si,
		endInput:   ei,
	}
}

func (m WindowPicker) Init() tea.Cmd {
	return nil
}

func (m WindowPicker) Update(msg tea.Msg) (WindowPicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case windowStateSelect:
			return m.updateSelect(keyMsg)
		case windowStateCustom:
			return m.updateCustom(keyMsg)
		}
	}

	if m.state == windowStateCustom {
		return m.updateInputs(msg)
	}

	return m, nil
}

func (m WindowPicker) updateSelect(msg tea.KeyMsg) (WindowPicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > PresetToday {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < PresetCustom {
			m.selected++
		}
	case tea.KeyEnter:
		if m.selected == PresetCustom {
			m.state = windowStateCustom
			m.focusIndex = 0
			m.startInput.Focus()

			return m, textinput.Blink
		}

		w := presetWindow(m.selected, m.now())

		return m, func() tea.Msg { return WindowSelectedMsg{Window: w} }
	}

	return m, nil
}

func (m WindowPicker) updateCustom(msg tea.KeyMsg) (WindowPicker, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		m.startInput.Blur()
		m.endInput.Blur()

		if m.focusIndex == 0 {
			m.startInput.Focus()
		} else {
			m.endInput.Focus()
		}

		return m, textinput.Blink

	case "enter":
		w, err := customWindow(m.startInput.Value(), m.endInput.Value(), m.now().Location())
		if err != nil {
			m.err = err
			return m, nil
		}

		m.err = nil

		return m, func() tea.Msg { return WindowSelectedMsg{Window: w} }

	case "esc":
		m.state = windowStateSelect
		m.err = nil

		return m, nil
	}

	return m.updateInputs(msg)
}

func (m WindowPicker) updateInputs(msg tea.Msg) (WindowPicker, tea.Cmd) {
	var cmds []tea.Cmd
	var c tea.Cmd

	m.startInput, c = m.startInput.Update(msg)
	cmds = append(cmds, c)
	m.endInput, c = m.endInput.Update(msg)
	cmds = append(cmds, c)

	return m, tea.Batch(cmds...)
}

func (m WindowPicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = "\n\n" + errorStyle(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == windowStateCustom {
		return fmt.Sprintf(
			"Ledger window (inclusive days):\n\n%s\n%s\n\n(Enter to confirm, Tab to switch, Esc to back)%s",
			m.startInput.View(),
			m.endInput.View(),
			errStr,
		)
	}

	s := "Ledger window:\n\n"
	for p := PresetToday; p <= PresetCustom; p++ {
		cursor := " "
		if m.selected == p {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, p)
	}

	s += "\n(Enter to select, Esc to back)"

	return s + errStr
}

// IsSelecting reports whether the picker is on the preset list.
func (m WindowPicker) IsSelecting() bool {
	return m.state == windowStateSelect
}
