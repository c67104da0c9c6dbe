package tui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/wingscore/internal/sheet"
)

// renderTotalsChart draws one bar per player, heights scaled to the leader.
func renderTotalsChart(players []sheet.Player, width, height int) string {
	if len(players) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	data := make([]barchart.BarData, 0, len(players))
	for i, p := range players {
		style := lipgloss.NewStyle().Foreground(seriesColors[i%len(seriesColors)])
		data = append(data, barchart.BarData{
			Label: truncate(p.Name, 6),
			Values: []barchart.BarValue{
				{Name: p.Name, Value: float64(p.TotalScore()), Style: style},
			},
		})
	}
	bc := barchart.New(width, height)
	bc.PushAll(data)
	bc.Draw()
	return bc.View()
}
