package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/types"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
	averageStyle = lipgloss.NewStyle().Bold(true).Italic(true).Padding(0, 1)
	emptyStyle   = lipgloss.NewStyle().Faint(true)
)

var headers = []string{"Name", "Skating", "Shooting", "Checking"}

// Terminal renders a squad view as a bordered terminal table with a title.
func Terminal(view types.SquadView) string {
	title := titleStyle.Render(fmt.Sprintf("Squad %d (%d players)", view.Number, view.Size))
	if view.Size == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, emptyStyle.Render(fmt.Sprintf(emptySquadFormat, view.Number)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, rowsTable(view.Rows))
}

// TerminalWaitingList renders the waiting list as a terminal table.
func TerminalWaitingList(players []model.Player) string {
	title := titleStyle.Render(fmt.Sprintf("Waiting List (%d players)", len(players)))
	if len(players) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, emptyStyle.Render(EmptyWaitingList))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, rowsTable(types.PlayerRows(players)))
}

// TerminalResult renders every squad of a result followed by its leftovers.
func TerminalResult(res types.Result, leftover []model.Player) string {
	parts := make([]string, 0, len(res.Squads)+1)
	for _, v := range res.Squads {
		parts = append(parts, Terminal(v))
	}
	parts = append(parts, TerminalWaitingList(leftover))
	return strings.Join(parts, "\n")
}

func rowsTable(rows []types.Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row].IsAverage():
				return averageStyle
			case col > 0:
				return numberStyle
			default:
				return cellStyle
			}
		})
	for _, r := range rows {
		t.Row(r.Name, strconv.Itoa(r.Skating), strconv.Itoa(r.Shooting), strconv.Itoa(r.Checking))
	}
	return t.Render()
}
