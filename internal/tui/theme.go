package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the score sheet uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent = colorPink
	colorFocus  = colorLavender
	colorTotal  = colorBlue
)

// seriesColors cycles across player bars in the totals chart.
var seriesColors = []lipgloss.Color{colorBlue, colorGreen, colorPeach, colorMauve, colorTeal, colorYellow, colorSky, colorPink}

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	statusStyle      = lipgloss.NewStyle().Foreground(colorSubtext0)
	footerStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0)
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	helpDescStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	buttonStyle      = lipgloss.NewStyle().Padding(0, 2).Foreground(colorText).Background(colorSurface1)
	buttonFocusStyle = buttonStyle.Background(colorFocus).Foreground(colorBase)

	gridBorderStyle = lipgloss.NewStyle().Foreground(colorSurface1)
	gridHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).Align(lipgloss.Center)
	gridLabelStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	gridCellStyle   = lipgloss.NewStyle().Foreground(colorText).Align(lipgloss.Right)
	gridCursorStyle = gridCellStyle.Background(colorFocus).Foreground(colorBase)
	gridTotalStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorTotal).Align(lipgloss.Right)
)
