package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/bjtrainer/internal/generator"
	"github.com/verte-zerg/bjtrainer/internal/model"
	"github.com/verte-zerg/bjtrainer/internal/strategy"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func newTestModel(t *testing.T, direct *model.SessionType) *Model {
	t.Helper()
	return NewModel(Options{
		Chart:     strategy.NewChart(),
		Generator: generator.New(21),
		Clock:     quartz.NewMock(t),
		Direct:    direct,
	})
}

func send(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func correctKey(m *Model) tea.KeyMsg {
	sc := m.session.Scenario()
	action := m.opts.Chart.CorrectAction(sc.HandType, sc.PlayerTotal, sc.DealerCard)
	return keys(string(action.Code()))
}

func TestMenuStartsRandomSession(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, screenMenu, m.screen)
	assert.Contains(t, m.View(), "1. Quick Practice (random)")
	assert.Contains(t, m.View(), "6. Quit")

	send(t, m, keys("1"))
	require.Equal(t, screenQuestion, m.screen)
	assert.Equal(t, model.SessionRandom, m.session.Config().Type)
	assert.Contains(t, m.View(), "Dealer shows:")
	assert.Contains(t, m.View(), "Question 1/50")

	send(t, m, correctKey(m))
	require.Equal(t, screenFeedback, m.screen)
	assert.True(t, m.feedback.Correct)
	assert.Contains(t, m.View(), "Correct!")

	send(t, m, enter)
	assert.Equal(t, screenQuestion, m.screen)
	assert.Contains(t, m.View(), "Question 2/50")

	send(t, m, keys("q"))
	require.Equal(t, screenSummary, m.screen)
	assert.Contains(t, m.View(), "Session complete! Final score: 1/1 (100.0%)")

	send(t, m, enter)
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, 1, m.RunStats().Overall().Total)
	assert.Nil(t, m.session)
}

func TestQuestionRejectsInvalidInput(t *testing.T) {
	m := newTestModel(t, nil)
	send(t, m, keys("1"))
	before := m.session.Scenario()

	send(t, m, keys("x"))
	assert.Equal(t, screenQuestion, m.screen)
	assert.Equal(t, before, m.session.Scenario())
	assert.Equal(t, 0, m.session.Stats().Overall().Total)
	assert.Contains(t, m.View(), "Please enter H, S, D, or P.")
}

func TestWrongAnswerShowsCorrection(t *testing.T) {
	m := newTestModel(t, nil)
	send(t, m, keys("1"))
	sc := m.session.Scenario()
	correct := m.opts.Chart.CorrectAction(sc.HandType, sc.PlayerTotal, sc.DealerCard)
	wrong := strategy.Hit
	if correct == strategy.Hit {
		wrong = strategy.Stand
	}
	send(t, m, keys(string(wrong.Code())))
	require.Equal(t, screenFeedback, m.screen)
	view := m.View()
	assert.Contains(t, view, "Incorrect!")
	assert.Contains(t, view, "Correct answer: "+correct.String())
	assert.Contains(t, view, "Pattern: ")
}

func TestSplitAliases(t *testing.T) {
	m := newTestModel(t, nil)
	send(t, m, keys("4"))
	require.Equal(t, screenQuestion, m.screen)
	send(t, m, keys("Y"))
	require.Equal(t, screenFeedback, m.screen)
	assert.Equal(t, strategy.Split, m.feedback.UserAction)
}

func TestDealerPickerCancelAndChoose(t *testing.T) {
	m := newTestModel(t, nil)
	send(t, m, keys("2"))
	require.Equal(t, screenDealerPick, m.screen)
	assert.Contains(t, m.View(), "Weak cards (4, 5, 6)")

	send(t, m, keys("7"))
	assert.Equal(t, screenDealerPick, m.screen)
	assert.NotEmpty(t, m.status)

	send(t, m, keys("0"))
	assert.Equal(t, screenMenu, m.screen)

	send(t, m, keys("2"))
	send(t, m, keys("1"))
	require.Equal(t, screenQuestion, m.screen)
	assert.Equal(t, strategy.Weak, m.session.Scenario().Strength())
	assert.Equal(t, "Learn by Dealer Strength (weak)", m.session.Name())
}

func TestHandPickerChoosesHandType(t *testing.T) {
	m := newTestModel(t, nil)
	send(t, m, keys("3"))
	require.Equal(t, screenHandPick, m.screen)
	send(t, m, keys("3"))
	require.Equal(t, screenQuestion, m.screen)
	assert.Equal(t, strategy.Pair, m.session.Scenario().HandType)
}

func TestStatsScreen(t *testing.T) {
	m := newTestModel(t, nil)
	send(t, m, keys("5"))
	require.Equal(t, screenStats, m.screen)
	assert.Contains(t, m.View(), "No practice attempts yet this session.")
	send(t, m, enter)
	assert.Equal(t, screenMenu, m.screen)

	send(t, m, keys("1"))
	send(t, m, correctKey(m))
	send(t, m, keys("q"))
	send(t, m, enter)
	send(t, m, keys("5"))
	require.Equal(t, screenStats, m.screen)
	assert.Contains(t, m.View(), "Overall: 1/1 (100.0%)")
}

func TestMenuQuitAndInvalidChoice(t *testing.T) {
	m := newTestModel(t, nil)
	cmd := send(t, m, keys("9"))
	assert.False(t, isQuit(cmd))
	assert.Contains(t, m.View(), "Invalid choice")

	cmd = send(t, m, keys("6"))
	assert.True(t, isQuit(cmd))
}

func TestCtrlCEndsSessionAndQuits(t *testing.T) {
	m := newTestModel(t, nil)
	send(t, m, keys("1"))
	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.True(t, m.session.Done())
}

func TestDirectAbsoluteSessionRunsToCompletion(t *testing.T) {
	st := model.SessionAbsolute
	m := newTestModel(t, &st)
	require.Equal(t, screenQuestion, m.screen)
	for i := 0; i < model.AbsoluteMaxQuestions; i++ {
		require.Equal(t, screenQuestion, m.screen, "question %d", i+1)
		send(t, m, correctKey(m))
		require.True(t, m.feedback.Absolute)
		send(t, m, enter)
	}
	require.Equal(t, screenSummary, m.screen)
	assert.Contains(t, m.View(), "Session complete! Final score: 20/20 (100.0%)")
	assert.True(t, isQuit(send(t, m, enter)))
}

func TestDirectPickerCancelQuits(t *testing.T) {
	st := model.SessionDealerGroup
	m := newTestModel(t, &st)
	require.Equal(t, screenDealerPick, m.screen)
	assert.True(t, isQuit(send(t, m, keys("0"))))
	assert.NoError(t, m.Err())
}
