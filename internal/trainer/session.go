// Package trainer runs a single practice session: it presents scenarios,
// grades answers against the strategy chart, and records statistics.
package trainer

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/verte-zerg/bjtrainer/internal/model"
	"github.com/verte-zerg/bjtrainer/internal/stats"
	"github.com/verte-zerg/bjtrainer/internal/strategy"
)

// ErrInvalidState is returned when an operation does not fit the session's current state.
var ErrInvalidState = errors.New("invalid session state")

// State is the lifecycle position of a session.
type State int

// Session states.
const (
	StateReady State = iota
	StateActive
	StateFeedback
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateActive:
		return "active"
	case StateFeedback:
		return "feedback"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Generator produces scenarios for a session config.
type Generator interface {
	Generate(cfg model.SessionConfig) (model.Scenario, error)
}

// Feedback describes the grading of one answer.
type Feedback struct {
	Correct       bool
	UserAction    strategy.Action
	CorrectAction strategy.Action
	Explanation   string
	Absolute      bool
	Elapsed       time.Duration
}

// Session owns one practice run and its statistics.
type Session struct {
	cfg     model.SessionConfig
	chart   *strategy.Chart
	gen     Generator
	clock   quartz.Clock
	logger  *log.Logger
	tracker *stats.Tracker

	state    State
	scenario model.Scenario
	answered int
	err      error
	started  time.Time
	asked    time.Time
	finished time.Time
	last     Feedback
}

// New creates a session in the ready state. A nil logger discards output.
func New(cfg model.SessionConfig, chart *strategy.Chart, gen Generator, clock quartz.Clock, logger *log.Logger) *Session {
	if cfg.MaxQuestions <= 0 {
		cfg.MaxQuestions = cfg.Type.MaxQuestions()
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Session{
		cfg:     cfg,
		chart:   chart,
		gen:     gen,
		clock:   clock,
		logger:  logger.WithPrefix("session").With("session", cfg.Name()),
		tracker: stats.NewTracker(),
		state:   StateReady,
	}
}

// Start moves a ready session to its first question.
func (s *Session) Start() error {
	if s.state != StateReady {
		return fmt.Errorf("%w: cannot start from %s", ErrInvalidState, s.state)
	}
	s.started = s.clock.Now()
	s.logger.Info("session started", "difficulty", s.cfg.Difficulty, "max_questions", s.cfg.MaxQuestions)
	return s.next()
}

func (s *Session) next() error {
	scenario, err := s.gen.Generate(s.cfg)
	if err != nil {
		s.state = StateFailed
		s.err = err
		s.finished = s.clock.Now()
		s.logger.Error("failed to generate scenario", "err", err)
		return fmt.Errorf("failed to generate scenario: %w", err)
	}
	s.scenario = scenario
	s.state = StateActive
	s.asked = s.clock.Now()
	s.logger.Debug("scenario", "question", s.answered+1, "hand", scenario.Describe(), "dealer", scenario.DealerCard)
	return nil
}

// Scenario returns the current question. It is only meaningful while active or showing feedback.
func (s *Session) Scenario() model.Scenario {
	return s.scenario
}

// SubmitAnswer grades action against the chart and records the result.
func (s *Session) SubmitAnswer(action strategy.Action) (Feedback, error) {
	if s.state != StateActive {
		return Feedback{}, fmt.Errorf("%w: cannot answer from %s", ErrInvalidState, s.state)
	}
	sc := s.scenario
	correct, ok := s.chart.Lookup(sc.HandType, sc.PlayerTotal, sc.DealerCard)
	if !ok {
		correct = strategy.Hit
		s.logger.Warn("chart lookup miss, defaulting to hit", "hand", sc.Describe(), "dealer", sc.DealerCard)
	}
	fb := Feedback{
		Correct:       action == correct,
		UserAction:    action,
		CorrectAction: correct,
		Explanation:   s.chart.Explanation(sc.HandType, sc.PlayerTotal, sc.DealerCard),
		Absolute:      s.chart.IsAbsoluteRule(sc.HandType, sc.PlayerTotal, sc.DealerCard),
		Elapsed:       s.clock.Since(s.asked),
	}
	strength := sc.Strength()
	s.tracker.RecordAttempt(sc.HandType, strength, fb.Correct)
	s.tracker.RecordResponse(sc.HandType, strength, fb.Elapsed)
	s.answered++
	s.last = fb
	s.state = StateFeedback
	s.logger.Debug("answer", "question", s.answered, "user", action, "correct", correct, "ok", fb.Correct, "elapsed", fb.Elapsed)
	return fb, nil
}

// LastFeedback returns the grading of the most recent answer.
func (s *Session) LastFeedback() Feedback {
	return s.last
}

// Continue advances past feedback to the next question, or completes the
// session once the quota is reached.
func (s *Session) Continue() error {
	if s.state != StateFeedback {
		return fmt.Errorf("%w: cannot continue from %s", ErrInvalidState, s.state)
	}
	if s.answered >= s.cfg.MaxQuestions {
		s.complete()
		s.logger.Info("session complete", "score", stats.SummaryLine(s.tracker.Overall()), "duration", s.Duration())
		return nil
	}
	return s.next()
}

// EndSessionEarly completes the session with whatever has been answered.
// It is a no-op once the session has completed or failed.
func (s *Session) EndSessionEarly() {
	if s.Done() {
		return
	}
	if s.started.IsZero() {
		s.started = s.clock.Now()
	}
	s.complete()
	s.logger.Info("session ended early", "answered", s.answered, "score", stats.SummaryLine(s.tracker.Overall()))
}

func (s *Session) complete() {
	s.state = StateCompleted
	s.finished = s.clock.Now()
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Done reports whether the session has completed or failed.
func (s *Session) Done() bool {
	return s.state == StateCompleted || s.state == StateFailed
}

// Stats returns the session's tracker.
func (s *Session) Stats() *stats.Tracker { return s.tracker }

// QuestionsAnswered returns the number of graded answers.
func (s *Session) QuestionsAnswered() int { return s.answered }

// MaxQuestions returns the question quota.
func (s *Session) MaxQuestions() int { return s.cfg.MaxQuestions }

// Config returns the session config.
func (s *Session) Config() model.SessionConfig { return s.cfg }

// Name returns the session display name.
func (s *Session) Name() string { return s.cfg.Name() }

// Err returns the generation error that failed the session, if any.
func (s *Session) Err() error { return s.err }

// Duration returns the time since start, frozen once the session is done.
func (s *Session) Duration() time.Duration {
	if s.started.IsZero() {
		return 0
	}
	if s.Done() {
		return s.finished.Sub(s.started)
	}
	return s.clock.Since(s.started)
}

// Summary formats the closing line, e.g. "Session complete! Final score: 2/3 (66.7%)".
func (s *Session) Summary() string {
	return fmt.Sprintf("Session complete! Final score: %s", stats.SummaryLine(s.tracker.Overall()))
}
