// Package styles contains Lip Gloss style definitions for the picker UI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// Color tokens. Adaptive pairs pick the variant for the terminal background.
var (
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#666666"}
	AccentColor      = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}
	CheckColor       = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#73F59F"}
	ErrorColor       = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#444444"}
	BorderFocusColor   = AccentColor
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextPrimaryColor)

	CursorRowStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	CheckStyle = lipgloss.NewStyle().
			Foreground(CheckColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextPrimaryColor).
			Padding(0, 2)

	ButtonFocusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1A1A"}).
				Background(AccentColor).
				Padding(0, 2).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// Truncate shortens s to fit width cells, appending an ellipsis when it had
// to cut.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// PadRight pads s with spaces to exactly width cells, truncating first if
// it is too wide.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
