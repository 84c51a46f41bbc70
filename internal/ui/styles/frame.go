package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rounded border characters.
const (
	frameTopLeft     = "╭"
	frameTopRight    = "╮"
	frameBottomLeft  = "╰"
	frameBottomRight = "╯"
	frameHorizontal  = "─"
	frameVertical    = "│"
)

// RenderTitledFrame draws content inside a rounded border with the title
// embedded in the top edge. Pass "" to omit the title. The frame is exactly
// width by height cells; content is clipped and padded to fit.
func RenderTitledFrame(content, title string, width, height int, focused bool) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = BorderFocusColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)

	innerWidth := max(width-2, 1)
	innerHeight := max(height-2, 1)

	top := renderTopEdge(title, innerWidth, border)
	bottom := border.Render(frameBottomLeft + strings.Repeat(frameHorizontal, innerWidth) + frameBottomRight)

	clipped := lipgloss.NewStyle().Width(innerWidth).Height(innerHeight).Render(content)
	lines := strings.Split(clipped, "\n")

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")
	for i := range innerHeight {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if gap := innerWidth - lipgloss.Width(line); gap > 0 {
			line += strings.Repeat(" ", gap)
		}
		b.WriteString(border.Render(frameVertical))
		b.WriteString(line)
		b.WriteString(border.Render(frameVertical))
		b.WriteString("\n")
	}
	b.WriteString(bottom)
	return b.String()
}

// renderTopEdge builds "╭─ Title ─────╮", degrading to a plain edge when
// the title does not fit.
func renderTopEdge(title string, innerWidth int, border lipgloss.Style) string {
	plain := border.Render(frameTopLeft + strings.Repeat(frameHorizontal, innerWidth) + frameTopRight)
	if title == "" || innerWidth < 5 {
		return plain
	}

	title = Truncate(title, innerWidth-4)
	rest := innerWidth - lipgloss.Width(title) - 3
	return border.Render(frameTopLeft+frameHorizontal+" ") +
		TitleStyle.Render(title) +
		border.Render(" "+strings.Repeat(frameHorizontal, rest)+frameTopRight)
}
