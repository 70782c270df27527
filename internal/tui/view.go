package tui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bjtrainer/internal/model"
	"github.com/verte-zerg/bjtrainer/internal/stats"
)

const appTitle = "Blackjack Basic Strategy Trainer"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	correctStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#52C41A"))
	wrongStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4D4F"))
	absoluteStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1F1F1F")).Background(lipgloss.Color("#C89A3A")).Padding(0, 1)
	cardStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4A4A4A")).Padding(1, 2)
)

// View implements tea.Model.
func (m *Model) View() string {
	var body, footer string
	switch m.screen {
	case screenMenu:
		body, footer = m.renderMenu(), "1-6 choose · q quit"
	case screenDealerPick:
		body, footer = renderDealerPicker(), "1-3 choose · 0 cancel"
	case screenHandPick:
		body, footer = renderHandPicker(), "1-3 choose · 0 cancel"
	case screenQuestion:
		body, footer = m.renderQuestion(), "h hit · s stand · d double · p split · q quit"
	case screenFeedback:
		body, footer = m.renderFeedback(), "enter continue · q quit"
	case screenSummary:
		body, footer = m.renderSummary(), "enter continue"
	case screenStats:
		body, footer = m.renderStats(), "↑/↓ scroll · enter back"
	}
	if m.status != "" {
		body += "\n\n" + wrongStyle.Render(m.status)
	}
	footer = footerStyle.Render(footer)
	if m.width == 0 || m.height < 3 {
		return body + "\n\n" + footer
	}
	content := boxStyle.Render(body)
	bodyHeight := m.height - 1
	return lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content) + "\n" +
		lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
}

func (m *Model) renderMenu() string {
	lines := []string{titleStyle.Render(appTitle), ""}
	for i, t := range model.SessionTypes {
		lines = append(lines, fmt.Sprintf("%d. %s", i+choiceRandom, t.Title()))
	}
	lines = append(lines,
		fmt.Sprintf("%d. View Statistics", choiceStats),
		fmt.Sprintf("%d. Quit", choiceQuit),
		"",
		dimStyle.Render(m.opts.Difficulty.Description()),
	)
	if total := m.run.Overall().Total; total > 0 {
		lines = append(lines, dimStyle.Render("This run: "+stats.SummaryLine(m.run.Overall())))
	}
	return strings.Join(lines, "\n")
}

func renderDealerPicker() string {
	return strings.Join([]string{
		titleStyle.Render("Choose dealer strength group to practice:"),
		"",
		"1. Weak cards (4, 5, 6) - 'Bust cards'",
		"2. Medium cards (2, 3, 7, 8)",
		"3. Strong cards (9, 10, A)",
		"0. Cancel",
	}, "\n")
}

func renderHandPicker() string {
	return strings.Join([]string{
		titleStyle.Render("Choose hand type to practice:"),
		"",
		"1. Hard totals (no ace or ace = 1)",
		"2. Soft totals (ace = 11)",
		"3. Pairs",
		"0. Cancel",
	}, "\n")
}

func (m *Model) renderHeader() string {
	s := m.session
	done := s.QuestionsAnswered()
	if m.screen == screenQuestion {
		done++
	}
	percent := float64(s.QuestionsAnswered()) / float64(s.MaxQuestions())
	return strings.Join([]string{
		titleStyle.Render("Training Mode: " + s.Name()),
		dimStyle.Render(s.Config().Difficulty.Description()),
		fmt.Sprintf("Question %d/%d  %s", done, s.MaxQuestions(), m.bar.ViewAs(percent)),
	}, "\n")
}

func (m *Model) renderQuestion() string {
	sc := m.session.Scenario()
	return strings.Join([]string{
		m.renderHeader(),
		"",
		"Dealer shows: " + cardStyle.Render(sc.DealerCard.String()),
		"Your hand: " + cardStyle.Render(sc.HandString()) + fmt.Sprintf(" (%s %d)", sc.HandType.Title(), sc.PlayerTotal),
		"",
		"What's your move?",
		"(H)it, (S)tand, (D)ouble, s(P)lit",
	}, "\n")
}

func (m *Model) renderFeedback() string {
	fb := m.feedback
	lines := []string{m.renderHeader(), "", dimStyle.Render(m.session.Scenario().Describe() + " vs " + m.session.Scenario().DealerCard.String()), ""}
	if fb.Correct {
		lines = append(lines, correctStyle.Render("✓ Correct!"))
	} else {
		lines = append(lines,
			wrongStyle.Render("✗ Incorrect!"),
			"",
			"Correct answer: "+fb.CorrectAction.String(),
			"Your answer: "+fb.UserAction.String(),
		)
	}
	if fb.Absolute {
		lines = append(lines, "", absoluteStyle.Render("ABSOLUTE RULE"))
	}
	if !fb.Correct || m.session.Config().Difficulty == model.DifficultyEasy {
		lines = append(lines, "", wrapText("Pattern: "+fb.Explanation, m.contentWidth()))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSummary() string {
	s := m.session
	lines := []string{titleStyle.Render(s.Name()), ""}
	if s.QuestionsAnswered() > 0 {
		lines = append(lines, s.Summary(), dimStyle.Render(fmt.Sprintf("Time: %s", s.Duration().Round(time.Second))), "")
	}
	var buf bytes.Buffer
	if err := stats.RenderSummary(&buf, s.Stats(), m.contentWidth()); err != nil {
		lines = append(lines, fmt.Sprintf("Failed to render summary: %v", err))
	} else {
		lines = append(lines, strings.TrimRight(buf.String(), "\n"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 72
	}
	return max(20, int(float64(m.width)*0.70))
}
