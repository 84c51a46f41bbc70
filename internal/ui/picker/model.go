// Package pickerui renders the sound picker as a bubbletea program. All
// selection and playback decisions live in internal/picker; this package
// translates terminal events into controller calls and paints the state.
package pickerui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/sashworth/tonepick/internal/log"
	"github.com/sashworth/tonepick/internal/picker"
)

// previewMsg fires when a debounced preview comes due. The seq lets the
// controller drop previews that were superseded while the timer ran.
type previewMsg struct {
	seq int
}

const (
	buttonOK = iota
	buttonCancel
)

// Model holds the picker UI state.
type Model struct {
	ctrl *picker.Controller
	keys keyMap
	zm   *zone.Manager

	cursor       int
	scrollOffset int
	maxVisible   int
	width        int
	height       int

	// focusButtons moves key handling to the OK/Cancel bar.
	focusButtons bool
	button       int

	showHelp bool
	helpView string

	done bool
}

// New creates the picker UI over an opened controller.
func New(ctrl *picker.Controller) Model {
	cursor := ctrl.Checked()
	if cursor < 0 {
		cursor = 0
	}
	m := Model{
		ctrl:       ctrl,
		keys:       defaultKeyMap(),
		zm:         zone.New(),
		cursor:     cursor,
		maxVisible: 10,
	}
	m.ensureVisible()
	return m
}

// Done reports whether the session ended.
func (m Model) Done() bool { return m.done }

// Result returns the session outcome. Meaningful once Done.
func (m Model) Result() picker.Result { return m.ctrl.Result() }

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// frame, title gap, buttons, help line
		m.maxVisible = max(msg.Height-6, 1)
		m.ensureVisible()

	case previewMsg:
		m.ctrl.PreviewDue(msg.seq)

	case tea.BlurMsg:
		// Terminal lost focus; the session stays open but previews stop.
		m.ctrl.Pause(false)

	case tea.ResumeMsg:
		// The retained handle from before the suspend sits in the registry;
		// reopening rebuilds rows and the next preview stops it.
		if err := m.ctrl.Open(m.ctrl.SaveSession()); err != nil {
			log.ErrorErr(log.CatUI, "Failed to reopen after resume", err)
			m.done = true
			return m, tea.Quit
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Confirm(false)
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpView = renderHelp(m.width)
		return m, nil

	case key.Matches(msg, m.keys.Suspend):
		m.ctrl.Stop(true)
		return m, tea.Suspend

	case key.Matches(msg, m.keys.Switch):
		if m.ctrl.Config().ShowOkCancel {
			m.focusButtons = !m.focusButtons
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.focusButtons {
			return m, nil
		}
		return m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		if m.focusButtons {
			return m, nil
		}
		return m.moveCursor(1)

	case key.Matches(msg, m.keys.Left):
		if m.focusButtons {
			m.button = buttonOK
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.focusButtons {
			m.button = buttonCancel
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.focusButtons {
			m.ctrl.Confirm(m.button == buttonOK)
			m.done = true
			return m, tea.Quit
		}
		return m.clickRow(m.cursor)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return m.moveCursor(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		return m.moveCursor(1)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.ctrl.Config().ShowOkCancel {
		if m.zm.Get(zoneButtonOK).InBounds(msg) {
			m.ctrl.Confirm(true)
			m.done = true
			return m, tea.Quit
		}
		if m.zm.Get(zoneButtonCancel).InBounds(msg) {
			m.ctrl.Confirm(false)
			m.done = true
			return m, tea.Quit
		}
	}

	for pos := range m.ctrl.Rows().Len() {
		if m.zm.Get(zoneRow(pos)).InBounds(msg) {
			m.cursor = pos
			m.ensureVisible()
			return m.clickRow(pos)
		}
	}
	return m, nil
}

// moveCursor shifts the highlight and schedules a debounced preview.
func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	n := m.ctrl.Rows().Len()
	if n == 0 {
		return m, nil
	}
	m.cursor = (m.cursor + delta + n) % n
	m.ensureVisible()

	seq, delay := m.ctrl.Highlight(m.cursor)
	return m, schedulePreview(seq, delay)
}

// clickRow activates a row. Buttonless sessions end here; confirming ones
// sample the sound and keep the picker open.
func (m Model) clickRow(pos int) (tea.Model, tea.Cmd) {
	seq, delay := m.ctrl.Click(pos)
	if !m.ctrl.Config().ShowOkCancel {
		m.ctrl.Confirm(true)
		m.done = true
		return m, tea.Quit
	}
	return m, schedulePreview(seq, delay)
}

func schedulePreview(seq int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return previewMsg{seq: seq} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return previewMsg{seq: seq} })
}

// ensureVisible keeps the cursor inside the scroll window.
func (m *Model) ensureVisible() {
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+m.maxVisible {
		m.scrollOffset = m.cursor - m.maxVisible + 1
	}
}

func zoneRow(pos int) string {
	return fmt.Sprintf("row-%d", pos)
}
