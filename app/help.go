package app

import (
	"github.com/charmbracelet/glamour"

	"github.com/kastheco/tickdo/log"
)

const helpMarkdown = `# tickdo

## Views

| Key | Action |
|-----|--------|
| tab / shift+tab | next / previous view |
| r | refresh from the server |

## Moving around

| Key | Action |
|-----|--------|
| j / k | down / up (stops at the ends) |
| down / up | down / up (wraps around) |
| g / G | first / last task |
| esc | clear selection |

## Acting on tasks

| Key | Action |
|-----|--------|
| n | new task |
| enter | edit in a dialog |
| l / right | edit inline |
| e | complete (asks first) |
| d | delete (asks first) |
| ctrl+p | postpone ("30min", "2 hours", "now + 1day") |
| v | visual mode: extend with j/k, then e, d or ctrl+p |
| y | copy title(s) to the clipboard |

## In an editor

Fields are modal. i, a, I, A enter Insert; esc steps back to Normal,
then out. h j k l move, 0 and $ jump within a line, x deletes under
the cursor. Tab cycles fields. Enter confirms a dialog; ctrl+s always
saves.

Press esc, q or ? to close this screen.
`

// openHelp renders the help text once and switches to the help screen.
func (m *home) openHelp() {
	if m.helpView == "" {
		out, err := glamour.Render(helpMarkdown, "dark")
		if err != nil {
			log.WarningLog.Printf("help rendering failed: %v", err)
			out = helpMarkdown
		}
		m.helpView = out
	}
	m.mode = modeHelp
}
