package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/menagerie/internal/menagerie"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	tableBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// newResultsTable lays out the rounds of a session, one row per round.
func newResultsTable(results []menagerie.Result) table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Ended by", Width: 12},
		{Title: "Cycles", Width: 8},
		{Title: "Kills", Width: 6},
		{Title: "Shots", Width: 6},
	}

	rows := make([]table.Row, 0, len(results)+1)
	var kills, shots, cycles int
	for i, r := range results {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			string(r.Reason),
			strconv.Itoa(r.Cycles),
			strconv.Itoa(r.Kills),
			strconv.Itoa(r.Shots),
		})
		kills += r.Kills
		shots += r.Shots
		cycles += r.Cycles
	}
	rows = append(rows, table.Row{
		"Total", "", strconv.Itoa(cycles), strconv.Itoa(kills), strconv.Itoa(shots),
	})

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

// ResultsView renders the session summary table.
func ResultsView(results []menagerie.Result) string {
	title := titleStyle.Render(fmt.Sprintf("Session over: %d rounds", len(results)))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		tableBorder.Render(newResultsTable(results).View()),
	)
}
