// Package overlay implements the focused dialogs that capture all input
// until confirmed or cancelled, plus the compositor that layers them over
// the main view.
package overlay

import (
	"bytes"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// Overlay is the capability surface shared by every dialog variant. The
// bool result of HandleKeyPress reports whether the key was consumed
// internally; unconsumed keys fall through to application-level handling.
type Overlay interface {
	Title() string
	HandleKeyPress(msg tea.KeyMsg) bool
	Render() string
	Values() []string
	SetValues(vals []string)
	Validate() bool
	HasValidationErrors() bool
}

// PlaceOverlay places fg on top of bg. When center is true the x and y
// offsets are ignored and the overlay is centered in both directions.
func PlaceOverlay(x, y int, fg, bg string, centerX, centerY bool) string {
	fgLines, fgWidth := lines(fg)
	bgLines, bgWidth := lines(bg)
	bgHeight := len(bgLines)
	fgHeight := len(fgLines)

	if fgWidth >= bgWidth && fgHeight >= bgHeight {
		return fg
	}

	if centerX {
		x = (bgWidth - fgWidth) / 2
	}
	if centerY {
		y = (bgHeight - fgHeight) / 2
	}
	x = clamp(x, 0, bgWidth-fgWidth)
	y = clamp(y, 0, bgHeight-fgHeight)

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.StringWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(strings.Repeat(" ", x-pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.StringWidth(fgLine)

		right := cutLeft(bgLine, pos)
		bgWidthThisLine := ansi.StringWidth(bgLine)
		rightWidth := ansi.StringWidth(right)
		if rightWidth <= bgWidthThisLine-pos {
			b.WriteString(strings.Repeat(" ", bgWidthThisLine-rightWidth-pos))
		}
		b.WriteString(right)
	}
	return b.String()
}

// cutLeft drops the first cutWidth cells of s, preserving ANSI sequences.
func cutLeft(s string, cutWidth int) string {
	var (
		pos     int
		isAnsi  bool
		ab      bytes.Buffer
		out     bytes.Buffer
		escaped = byte(0x1b)
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == escaped {
			isAnsi = true
			ab.WriteByte(c)
			continue
		}
		if isAnsi {
			ab.WriteByte(c)
			if (c >= 0x40 && c <= 0x5a) || (c >= 0x61 && c <= 0x7a) {
				isAnsi = false
				if c == 'm' {
					// Keep color state so the remainder renders correctly.
					out.Write(ab.Bytes())
				}
				ab.Reset()
			}
			continue
		}
		if pos >= cutWidth {
			out.WriteByte(c)
		} else {
			pos += runewidth.StringWidth(string(c))
		}
	}
	return out.String()
}

func lines(s string) ([]string, int) {
	ls := strings.Split(s, "\n")
	widest := 0
	for _, l := range ls {
		if w := ansi.StringWidth(l); w > widest {
			widest = w
		}
	}
	return ls, widest
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Shared dialog styling, Rosé Pine Moon palette.
var (
	colorBase    = lipgloss.Color("#232136")
	colorOverlay = lipgloss.Color("#393552")
	colorMuted   = lipgloss.Color("#6e6a86")
	colorSubtle  = lipgloss.Color("#908caa")
	colorText    = lipgloss.Color("#e0def4")
	colorLove    = lipgloss.Color("#eb6f92")
	colorGold    = lipgloss.Color("#f6c177")
	colorFoam    = lipgloss.Color("#9ccfd8")
	colorIris    = lipgloss.Color("#c4a7e7")
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorIris).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorIris).
			Bold(true).
			MarginBottom(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLove)
)
