package pickerui

import (
	"github.com/charmbracelet/glamour"

	"github.com/sashworth/tonepick/internal/log"
)

const helpText = `# Sound Picker

Navigate the list to preview sounds; previews while scrolling are
debounced so only the row you rest on plays.

## Keys

| Key | Action |
|-----|--------|
| ` + "`↑/k` `↓/j`" + ` | Move and preview |
| ` + "`enter`" + ` | Select the highlighted sound |
| ` + "`tab`" + ` | Jump between list and buttons |
| ` + "`ctrl+z`" + ` | Suspend (playback carries over) |
| ` + "`?`" + ` | Toggle this help |
| ` + "`esc` `q`" + ` | Cancel without changing the sound |

Mouse clicks select and preview immediately. The wheel scrolls the list.

Press any key to close.
`

// renderHelp renders the help overlay. Markdown rendering failures fall
// back to the raw text.
func renderHelp(width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(max(width-2, 20), 80)),
	)
	if err != nil {
		log.ErrorErr(log.CatUI, "Failed to create help renderer", err)
		return helpText
	}
	out, err := renderer.Render(helpText)
	if err != nil {
		log.ErrorErr(log.CatUI, "Failed to render help", err)
		return helpText
	}
	return out
}
