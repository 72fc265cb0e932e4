package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/storage"
)

// maxSummaryRounds is how many rounds the end-of-session summary lists.
const maxSummaryRounds = 10

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				MarginBottom(1)
	summaryTableStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))
	summaryEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// summaryTable builds a static table of rounds, best first.
func summaryTable(rounds []storage.ScoreEntry) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Lines", Width: 7},
		{Title: "Time", Width: 10},
	}

	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Lines),
			r.CreatedAt.Format("15:04:05"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	// Nothing is selectable in a printed summary
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

// SessionSummary renders the session leaderboard for gameID, printed after
// the program leaves the alternate screen.
func SessionSummary(store *storage.Store, gameID string) (string, error) {
	rounds, err := store.TopScores(gameID, maxSummaryRounds)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("SESSION SCORES"))
	b.WriteString("\n")

	if len(rounds) == 0 {
		b.WriteString(summaryEmptyStyle.Render("No finished rounds this session."))
		return b.String(), nil
	}

	b.WriteString(summaryTableStyle.Render(summaryTable(rounds).View()))
	return b.String(), nil
}
