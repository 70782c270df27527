// Package console runs training sessions over plain line-oriented I/O.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/verte-zerg/bjtrainer/internal/model"
	"github.com/verte-zerg/bjtrainer/internal/stats"
	"github.com/verte-zerg/bjtrainer/internal/strategy"
	"github.com/verte-zerg/bjtrainer/internal/trainer"
)

const (
	appTitle  = "Blackjack Basic Strategy Trainer"
	rule      = "========================================"
	farewell  = "Thanks for practicing! Good luck at the tables!"
	actionAsk = "(H)it, (S)tand, (D)ouble, s(P)lit: "
)

// Options wires the runner to its collaborators. A non-nil Direct runs a
// single session of that type and returns when it ends. Width is the report
// width; zero uses the terminal width.
type Options struct {
	Chart      *strategy.Chart
	Generator  trainer.Generator
	Clock      quartz.Clock
	Logger     *log.Logger
	Difficulty model.Difficulty
	Direct     *model.SessionType
	Width      int
}

// Runner drives the menu and sessions from a reader and writer.
type Runner struct {
	in     *bufio.Scanner
	out    io.Writer
	opts   Options
	logger *log.Logger
	run    *stats.Tracker

	okStyle  lipgloss.Style
	badStyle lipgloss.Style
	tagStyle lipgloss.Style
}

// New builds a runner reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer, opts Options) *Runner {
	if opts.Chart == nil {
		opts.Chart = strategy.NewChart()
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	renderer := lipgloss.NewRenderer(out)
	return &Runner{
		in:       bufio.NewScanner(in),
		out:      out,
		opts:     opts,
		logger:   logger.WithPrefix("console"),
		run:      stats.NewTracker(),
		okStyle:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#52C41A")),
		badStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4D4F")),
		tagStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A")),
	}
}

// RunStats returns the statistics accumulated across every session of this run.
func (r *Runner) RunStats() *stats.Tracker {
	return r.run
}

// Run shows the menu until the user quits, or runs the direct session.
// End of input is treated as quitting.
func (r *Runner) Run(ctx context.Context) error {
	if r.opts.Direct != nil {
		_, err := r.runType(ctx, *r.opts.Direct)
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.printMenu()
		line, ok := r.readLine()
		if !ok {
			return nil
		}
		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > 6 {
			r.println("Invalid choice. Please enter a number 1-6.")
			continue
		}
		switch {
		case choice <= len(model.SessionTypes):
			quit, err := r.runType(ctx, model.SessionTypes[choice-1])
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case choice == 5:
			r.printStats()
		default:
			r.println(farewell)
			return nil
		}
	}
}

func (r *Runner) printMenu() {
	r.println("\n" + appTitle)
	for i, t := range model.SessionTypes {
		r.printf("%d. %s\n", i+1, t.Title())
	}
	r.println("5. View Statistics")
	r.println("6. Quit")
	r.printf("\nChoice (1-6): ")
}

func (r *Runner) printStats() {
	r.println("\n" + rule)
	r.println("SESSION STATISTICS")
	r.println(rule)
	if err := stats.RenderSummary(r.out, r.run, r.opts.Width); err != nil {
		r.logger.Error("failed to render statistics", "err", err)
	}
}

// runType picks a subtype when needed and runs one session. It reports
// whether input ended.
func (r *Runner) runType(ctx context.Context, t model.SessionType) (bool, error) {
	cfg := model.NewSessionConfig(t)
	switch t {
	case model.SessionDealerGroup:
		idx, ok := r.pick("Choose dealer strength group to practice:", []string{
			"Weak cards (4, 5, 6) - 'Bust cards'",
			"Medium cards (2, 3, 7, 8)",
			"Strong cards (9, 10, A)",
		})
		if idx < 0 {
			return !ok, nil
		}
		cfg = cfg.WithDealerStrength(strategy.DealerStrengths[idx])
	case model.SessionHandType:
		idx, ok := r.pick("Choose hand type to practice:", []string{
			"Hard totals (no ace or ace = 1)",
			"Soft totals (ace = 11)",
			"Pairs",
		})
		if idx < 0 {
			return !ok, nil
		}
		cfg = cfg.WithHandType(strategy.HandTypes[idx])
	}
	cfg.Difficulty = r.opts.Difficulty
	return r.runSession(ctx, cfg)
}

// pick returns the zero-based choice, or -1 when cancelled. ok is false at end of input.
func (r *Runner) pick(title string, options []string) (int, bool) {
	for {
		r.println("\n" + title)
		for i, o := range options {
			r.printf("%d. %s\n", i+1, o)
		}
		r.println("0. Cancel")
		r.printf("\nChoice (0-%d): ", len(options))
		line, ok := r.readLine()
		if !ok {
			return -1, false
		}
		n, err := strconv.Atoi(line)
		switch {
		case err == nil && n == 0:
			return -1, true
		case err == nil && n >= 1 && n <= len(options):
			return n - 1, true
		}
		r.printf("Please choose 0-%d.\n", len(options))
	}
}

func (r *Runner) runSession(ctx context.Context, cfg model.SessionConfig) (bool, error) {
	s := trainer.New(cfg, r.opts.Chart, r.opts.Generator, r.opts.Clock, r.logger)
	if err := s.Start(); err != nil {
		return false, err
	}
	r.println("\n" + rule)
	r.printf("Training Mode: %s\n", s.Name())
	r.println(rule)
	r.println(cfg.Difficulty.Description())
	r.println("(Press 'q' + Enter to quit at any time)")

	eof := false
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			s.EndSessionEarly()
			break
		}
		sc := s.Scenario()
		r.printf("\nQuestion %d/%d\n", s.QuestionsAnswered()+1, s.MaxQuestions())
		r.printf("Dealer shows: %s\n", sc.DealerCard)
		r.printf("Your hand: %s (%s %d)\n", sc.HandString(), sc.HandType.Title(), sc.PlayerTotal)

		action, quit, ok := r.readAction()
		if !ok || quit {
			eof = !ok
			s.EndSessionEarly()
			break
		}
		fb, err := s.SubmitAnswer(action)
		if err != nil {
			return false, err
		}
		r.printFeedback(fb, cfg.Difficulty)

		r.printf("\nPress Enter to continue (or 'q' + Enter to quit): ")
		line, ok := r.readLine()
		if !ok || isQuit(line) {
			eof = !ok
			s.EndSessionEarly()
			break
		}
		if err := s.Continue(); err != nil {
			return false, err
		}
	}

	if s.QuestionsAnswered() > 0 {
		r.println("\n" + s.Summary())
	}
	r.run.Merge(s.Stats())
	return eof, nil
}

// readAction prompts until a valid action or quit is entered.
func (r *Runner) readAction() (strategy.Action, bool, bool) {
	for {
		r.println("\nWhat's your move?")
		r.printf(actionAsk)
		line, ok := r.readLine()
		if !ok {
			return 0, false, false
		}
		if isQuit(line) {
			return 0, true, true
		}
		runes := []rune(line)
		if len(runes) == 1 {
			if action, ok := strategy.ParseAction(runes[0]); ok {
				return action, false, true
			}
		}
		r.println("Please enter H, S, D, or P.")
	}
}

func (r *Runner) printFeedback(fb trainer.Feedback, d model.Difficulty) {
	if fb.Correct {
		r.println("\n" + r.okStyle.Render("✓ Correct!"))
	} else {
		r.println("\n" + r.badStyle.Render("❌ Incorrect!"))
		r.printf("\nCorrect answer: %s\n", fb.CorrectAction)
		r.printf("Your answer: %s\n", fb.UserAction)
	}
	if fb.Absolute {
		r.println(r.tagStyle.Render("ABSOLUTE RULE"))
	}
	if !fb.Correct || d == model.DifficultyEasy {
		r.printf("\nPattern: %s\n", fb.Explanation)
	}
}

func isQuit(line string) bool {
	line = strings.ToLower(line)
	return line == "q" || line == "quit"
}

func (r *Runner) readLine() (string, bool) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			r.logger.Warn("failed to read input", "err", err)
		}
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *Runner) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		r.logger.Debug("failed to write output", "err", err)
	}
}

func (r *Runner) println(s string) {
	if _, err := fmt.Fprintln(r.out, s); err != nil {
		r.logger.Debug("failed to write output", "err", err)
	}
}
