package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/bjtrainer/internal/stats"
)

const weakSpots = 3

func buildStatsTable(t *stats.Tracker, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: 13},
		{Title: "Score", Width: 7},
		{Title: "Accuracy", Width: 9},
		{Title: "Avg Time", Width: 9},
	}
	raw := stats.Rows(t)
	rows := make([]table.Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, table.Row(r))
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(3, height)),
		table.WithFocused(true),
	)
	if width > 0 {
		tbl.SetWidth(min(width, tableWidth(columns)))
	}
	tbl.SetStyles(statsTableStyles())
	return tbl
}

func tableWidth(columns []table.Column) int {
	total := 0
	for _, c := range columns {
		total += c.Width + 2
	}
	return total
}

func statsTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#3A3A3A")).
		Bold(false)
	return styles
}

func (m *Model) renderStats() string {
	lines := []string{titleStyle.Render("SESSION STATISTICS"), ""}
	overall := m.run.Overall()
	if overall.Total == 0 {
		lines = append(lines, "No practice attempts yet this session.")
		return strings.Join(lines, "\n")
	}
	lines = append(lines, "Overall: "+stats.SummaryLine(overall), "")
	lines = append(lines, m.statTable.View())
	if spark := stats.RollingSparkline(m.run, m.contentWidth()-len("Trend: ")); spark != "" {
		lines = append(lines, "", "Trend: "+spark)
	}
	if weak := stats.WeakestCategories(m.run, weakSpots); len(weak) > 0 {
		lines = append(lines, "", truncateLine("Focus next on: "+strings.Join(weak, ", "), m.contentWidth()))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
