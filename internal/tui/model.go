// Package tui provides the Bubble Tea training interface.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/verte-zerg/bjtrainer/internal/model"
	"github.com/verte-zerg/bjtrainer/internal/stats"
	"github.com/verte-zerg/bjtrainer/internal/strategy"
	"github.com/verte-zerg/bjtrainer/internal/trainer"
)

type screen int

const (
	screenMenu screen = iota
	screenDealerPick
	screenHandPick
	screenQuestion
	screenFeedback
	screenSummary
	screenStats
)

// Menu choices, numbered as shown to the user.
const (
	choiceRandom = iota + 1
	choiceDealer
	choiceHand
	choiceAbsolute
	choiceStats
	choiceQuit
)

// Options wires the model to its collaborators. A non-nil Direct runs a
// single session of that type and quits when it ends.
type Options struct {
	Chart      *strategy.Chart
	Generator  trainer.Generator
	Clock      quartz.Clock
	Logger     *log.Logger
	Difficulty model.Difficulty
	Direct     *model.SessionType
}

// Model implements the Bubble Tea training UI.
type Model struct {
	opts   Options
	logger *log.Logger

	screen  screen
	pending model.SessionType
	session *trainer.Session
	run     *stats.Tracker

	feedback trainer.Feedback
	status   string
	err      error

	bar       progress.Model
	statTable table.Model

	width  int
	height int
}

// NewModel constructs a training TUI model.
func NewModel(opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Chart == nil {
		opts.Chart = strategy.NewChart()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	m := &Model{
		opts:   opts,
		logger: logger.WithPrefix("tui"),
		screen: screenMenu,
		run:    stats.NewTracker(),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.statTable = buildStatsTable(m.run, 0, 0)
	if opts.Direct != nil {
		m.choose(*opts.Direct)
	}
	return m
}

// Err returns the error that stopped the UI, if any.
func (m *Model) Err() error {
	return m.err
}

// RunStats returns the statistics accumulated across every session of this run.
func (m *Model) RunStats() *stats.Tracker {
	return m.run
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, min(60, m.width-4))
		m.resizeStatsTable()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.endSession()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.screen {
	case screenMenu:
		return m.updateMenu(key)
	case screenDealerPick, screenHandPick:
		return m.updatePicker(key)
	case screenQuestion:
		return m.updateQuestion(key)
	case screenFeedback:
		return m.updateFeedback(key)
	case screenSummary:
		return m.leaveSummary(key)
	case screenStats:
		switch key {
		case "q", "esc", "enter":
			m.screen = screenMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.statTable, cmd = m.statTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateMenu(key string) (tea.Model, tea.Cmd) {
	m.status = ""
	switch key {
	case "1", "2", "3", "4":
		m.choose(model.SessionTypes[int(key[0]-'1')])
		if m.err != nil {
			return m, tea.Quit
		}
	case "5":
		m.statTable = buildStatsTable(m.run, m.width, m.tableHeight())
		m.screen = screenStats
	case "6", "q", "esc":
		return m, tea.Quit
	default:
		m.status = fmt.Sprintf("Invalid choice %q. Please enter a number %d-%d.", key, choiceRandom, choiceQuit)
	}
	return m, nil
}

func (m *Model) choose(t model.SessionType) {
	m.pending = t
	switch t {
	case model.SessionDealerGroup:
		m.screen = screenDealerPick
	case model.SessionHandType:
		m.screen = screenHandPick
	default:
		m.start(model.NewSessionConfig(t))
	}
}

func (m *Model) updatePicker(key string) (tea.Model, tea.Cmd) {
	m.status = ""
	switch key {
	case "0", "esc", "q":
		if m.opts.Direct != nil {
			return m, tea.Quit
		}
		m.screen = screenMenu
		return m, nil
	case "1", "2", "3":
		idx := int(key[0] - '1')
		cfg := model.NewSessionConfig(m.pending)
		if m.screen == screenDealerPick {
			cfg = cfg.WithDealerStrength(strategy.DealerStrengths[idx])
		} else {
			cfg = cfg.WithHandType(strategy.HandTypes[idx])
		}
		m.start(cfg)
		if m.err != nil {
			return m, tea.Quit
		}
		return m, nil
	default:
		m.status = "Please choose 1-3, or 0 to cancel."
		return m, nil
	}
}

func (m *Model) start(cfg model.SessionConfig) {
	cfg.Difficulty = m.opts.Difficulty
	m.session = trainer.New(cfg, m.opts.Chart, m.opts.Generator, m.opts.Clock, m.logger)
	if err := m.session.Start(); err != nil {
		m.err = err
		m.session = nil
		return
	}
	m.screen = screenQuestion
}

func (m *Model) updateQuestion(key string) (tea.Model, tea.Cmd) {
	if key == "q" || key == "Q" || key == "esc" {
		m.endSession()
		return m, nil
	}
	runes := []rune(key)
	action, ok := strategy.Action(0), false
	if len(runes) == 1 {
		action, ok = strategy.ParseAction(runes[0])
	}
	if !ok {
		m.status = "Please enter H, S, D, or P."
		return m, nil
	}
	fb, err := m.session.SubmitAnswer(action)
	if err != nil {
		m.logger.Error("failed to submit answer", "err", err)
		return m, nil
	}
	m.status = ""
	m.feedback = fb
	m.screen = screenFeedback
	return m, nil
}

func (m *Model) updateFeedback(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "Q", "esc":
		m.endSession()
	case "enter", " ":
		if err := m.session.Continue(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.session.Done() {
			m.finish()
			return m, nil
		}
		m.screen = screenQuestion
	}
	return m, nil
}

func (m *Model) leaveSummary(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "q", "esc", " ":
	default:
		return m, nil
	}
	if m.opts.Direct != nil {
		return m, tea.Quit
	}
	m.session = nil
	m.screen = screenMenu
	return m, nil
}

// endSession ends an in-progress session early and shows its summary.
func (m *Model) endSession() {
	if m.session == nil || m.session.Done() {
		return
	}
	m.session.EndSessionEarly()
	m.finish()
}

func (m *Model) finish() {
	m.run.Merge(m.session.Stats())
	m.status = ""
	m.screen = screenSummary
}

func (m *Model) tableHeight() int {
	return max(3, m.height-8)
}

func (m *Model) resizeStatsTable() {
	m.statTable.SetWidth(m.width)
	m.statTable.SetHeight(m.tableHeight())
}
