package pickerui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sashworth/tonepick/internal/ui/styles"
)

const (
	zoneButtonOK     = "button-ok"
	zoneButtonCancel = "button-cancel"
)

// View renders the picker.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showHelp {
		return m.helpView
	}

	rows := m.ctrl.Rows()
	innerWidth := max(m.width-4, 10)

	end := min(m.scrollOffset+m.maxVisible, rows.Len())
	var lines []string
	for pos := m.scrollOffset; pos < end; pos++ {
		row, _ := rows.At(pos)

		cursor := "  "
		if pos == m.cursor && !m.focusButtons {
			cursor = "> "
		}
		check := "  "
		if pos == m.ctrl.Checked() {
			check = styles.CheckStyle.Render("✓ ")
		}

		name := styles.PadRight(row.Name, innerWidth-4)
		line := cursor + check + name
		if pos == m.cursor && !m.focusButtons {
			line = styles.CursorRowStyle.Render(line)
		} else {
			line = styles.RowStyle.Render(line)
		}
		lines = append(lines, m.zm.Mark(zoneRow(pos), line))
	}

	if rows.Len() > m.maxVisible {
		lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf(" %d-%d of %d sounds",
			m.scrollOffset+1, end, rows.Len())))
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")

	if m.ctrl.Config().ShowOkCancel {
		b.WriteString("\n")
		b.WriteString(m.renderButtons())
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render(" ↑/↓ preview · enter select · ? help · esc cancel"))

	frame := styles.RenderTitledFrame(b.String(), m.ctrl.Config().Title, m.width, m.height, !m.focusButtons)
	return m.zm.Scan(frame)
}

func (m Model) renderButtons() string {
	okStyle, cancelStyle := styles.ButtonStyle, styles.ButtonStyle
	if m.focusButtons {
		if m.button == buttonOK {
			okStyle = styles.ButtonFocusStyle
		} else {
			cancelStyle = styles.ButtonFocusStyle
		}
	}
	ok := m.zm.Mark(zoneButtonOK, okStyle.Render("OK"))
	cancel := m.zm.Mark(zoneButtonCancel, cancelStyle.Render("Cancel"))
	return lipgloss.JoinHorizontal(lipgloss.Top, " ", ok, "  ", cancel)
}
