package ui

import "github.com/charmbracelet/lipgloss"

// Rosé Pine Moon palette.
// https://rosepinetheme.com/palette/
var (
	ColorBase    = lipgloss.Color("#232136")
	ColorOverlay = lipgloss.Color("#393552")
	ColorMuted   = lipgloss.Color("#6e6a86")
	ColorSubtle  = lipgloss.Color("#908caa")
	ColorText    = lipgloss.Color("#e0def4")

	ColorLove = lipgloss.Color("#eb6f92") // error, overdue, high priority
	ColorGold = lipgloss.Color("#f6c177") // warning, medium priority
	ColorFoam = lipgloss.Color("#9ccfd8") // info, timestamps
	ColorIris = lipgloss.Color("#c4a7e7") // highlight, selection
)

var (
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorBase).
			Background(ColorIris).
			Bold(true).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Padding(0, 2)

	rowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorOverlay).
				Bold(true)

	rowVisualStyle = lipgloss.NewStyle().
			Foreground(ColorBase).
			Background(ColorIris)

	dueStyle        = lipgloss.NewStyle().Foreground(ColorFoam)
	overdueStyle    = lipgloss.NewStyle().Foreground(ColorLove)
	emptyStyle      = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	paneLabelStyle  = lipgloss.NewStyle().Foreground(ColorIris).Bold(true)
	paneDirtyStyle  = lipgloss.NewStyle().Foreground(ColorGold)
	contentStyle    = lipgloss.NewStyle().Foreground(ColorSubtle)
	TitleStyle      = lipgloss.NewStyle().Foreground(ColorIris).Bold(true).Padding(0, 1)
	BannerStyle     = lipgloss.NewStyle().Foreground(ColorBase).Background(ColorLove).Bold(true).Padding(0, 1)
	SpinnerStyle    = lipgloss.NewStyle().Foreground(ColorFoam)
	StatusKeyStyle  = lipgloss.NewStyle().Foreground(ColorIris)
	StatusDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
