package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/guessmaster/internal/model"
	"github.com/verte-zerg/guessmaster/internal/stats"
)

var boardStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder(), true).
	BorderForeground(lipgloss.Color("#4A4A4A"))

var (
	boardColumnWidths  = []int{7, 6, 4, 6, 9, 4}
	recentColumnWidths = []int{3, 6, 6, 5, 6, 5, 16}
)

func buildBoardTable(aggs []model.TierAggregate) table.Model {
	return buildTable(stats.TierHeaders, boardColumnWidths, stats.TierRows(aggs))
}

func buildRecentTable(rounds []model.RoundAggregate) table.Model {
	return buildTable(stats.RecentHeaders, recentColumnWidths, stats.RecentRows(rounds))
}

func buildTable(headers []string, widths []int, cells [][]string) table.Model {
	columns := make([]table.Column, len(headers))
	for i, title := range headers {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}
	rows := make([]table.Row, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, table.Row(c))
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(boardStyles())
	return t
}

func boardStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Cell
	return styles
}

func (m *Model) renderBoard() string {
	if m.store == nil {
		return boardStyle.Render("Scoreboard disabled.")
	}
	if m.boardErr != "" {
		return boardStyle.Render(boardErrStyle.Render("Failed to load scoreboard: " + m.boardErr))
	}
	if len(m.report.Rounds) == 0 {
		return boardStyle.Render("No rounds played yet.")
	}
	s := m.report.Summary
	lines := []string{
		fmt.Sprintf("Rounds %d  Won %d  Lost %d  Best streak %d", s.Rounds, s.Wins, s.Losses, s.BestStreak),
		"Tries  " + stats.Sparkline(stats.AttemptSeries(m.report.Rounds)),
		"",
		m.board.View(),
	}
	if len(m.report.Recent) > 0 {
		lines = append(lines, "", "Recent", m.recent.View())
	}
	return boardStyle.Render(strings.Join(lines, "\n"))
}
