package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jask/wingscore/internal/sheet"
)

const totalLabel = "Total"

// renderGrid lays out one row per category plus a total row, one column per
// player.
func (a *App) renderGrid(players []sheet.Player) string {
	labelWidth := a.cfg.UI.LabelWidth
	colWidth := a.cfg.UI.ColumnWidth

	headers := make([]string, 0, len(players)+1)
	headers = append(headers, "")
	for _, p := range players {
		headers = append(headers, truncate(p.Name, colWidth))
	}

	rows := make([][]string, 0, sheet.CategoryCount+1)
	for _, c := range sheet.Categories() {
		row := make([]string, 0, len(players)+1)
		row = append(row, truncate(c.Name(), labelWidth))
		for i, p := range players {
			cell := strconv.Itoa(int(p.Score(c).Value()))
			if a.editing && i == a.col && int(c) == a.row {
				cell = a.cellInput.View()
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	totals := make([]string, 0, len(players)+1)
	totals = append(totals, totalLabel)
	for _, p := range players {
		totals = append(totals, strconv.Itoa(int(p.TotalScore())))
	}
	rows = append(rows, totals)

	cursorActive := a.focus == focusGrid
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(gridBorderStyle).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				s = gridHeaderStyle
			case row == sheet.CategoryCount:
				s = gridTotalStyle
			case col == 0:
				s = gridLabelStyle
			case cursorActive && row == a.row && col-1 == a.col:
				s = gridCursorStyle
			default:
				s = gridCellStyle
			}
			if col == 0 {
				return s.Width(labelWidth).Align(lipgloss.Left)
			}
			return s.Width(colWidth)
		})
	return t.String()
}
