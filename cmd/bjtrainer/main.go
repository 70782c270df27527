// Package main provides the CLI entrypoint for bjtrainer.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/bjtrainer/internal/config"
	"github.com/verte-zerg/bjtrainer/internal/console"
	"github.com/verte-zerg/bjtrainer/internal/generator"
	"github.com/verte-zerg/bjtrainer/internal/model"
	"github.com/verte-zerg/bjtrainer/internal/strategy"
	"github.com/verte-zerg/bjtrainer/internal/tui"
)

const (
	defaultDifficulty = "normal"
	defaultLogLevel   = "warn"
)

var (
	practiceSession    string
	practiceDifficulty string
	practiceSeed       int64
	practicePlain      bool

	logFile  string
	logLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bjtrainer",
		Short: "Blackjack basic strategy trainer",
		Long: `Practice blackjack basic strategy one hand at a time.

Without --session an interactive menu is shown. Session types:
  random     Mixed practice with all hand types and dealer cards
  dealer     Practice by dealer strength groups (weak/medium/strong)
  hand       Focus on specific hand types (hard/soft/pairs)
  absolute   Practice absolute rules (always/never scenarios)`,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVarP(&practiceSession, "session", "s", "", "session type: random, dealer, hand, absolute")
	rootCmd.Flags().StringVarP(&practiceDifficulty, "difficulty", "d", defaultDifficulty, "difficulty: easy, normal, hard")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "random seed (0 = time based)")
	rootCmd.Flags().BoolVar(&practicePlain, "plain", false, "use line-oriented prompts instead of the TUI")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newChartCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "session", &practiceSession, fileCfg.Practice.Session)
	applyStringConfig(cmd, "difficulty", &practiceDifficulty, fileCfg.Practice.Difficulty)
	applyInt64Config(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)
	applyBoolConfig(cmd, "plain", &practicePlain, fileCfg.Practice.Plain)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	var direct *model.SessionType
	if practiceSession != "" {
		st, err := model.ParseSessionType(practiceSession)
		if err != nil {
			return err
		}
		direct = &st
	}
	difficulty, err := model.ParseDifficulty(practiceDifficulty)
	if err != nil {
		return err
	}

	plain := practicePlain || !isTerminal(os.Stdin) || !isTerminal(os.Stdout)
	logger, closeLog, err := newLogger(logFile, logLevel, plain)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("starting", "session", practiceSession, "difficulty", difficulty, "seed", practiceSeed, "plain", plain)

	chart := strategy.NewChart()
	gen := generator.New(practiceSeed)
	clock := quartz.NewReal()

	if plain {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		runner := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
			Chart:      chart,
			Generator:  gen,
			Clock:      clock,
			Logger:     logger,
			Difficulty: difficulty,
			Direct:     direct,
		})
		if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("failed to run session: %w", err)
		}
		return nil
	}

	m := tui.NewModel(tui.Options{
		Chart:      chart,
		Generator:  gen,
		Clock:      clock,
		Logger:     logger,
		Difficulty: difficulty,
		Direct:     direct,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := m.Err(); err != nil {
		return fmt.Errorf("failed to run session: %w", err)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// newLogger writes to path when set, otherwise to stderr in plain mode and
// nowhere while the TUI owns the terminal.
func newLogger(path, level string, plain bool) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level value: %w", err)
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case path != "":
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close log file: %v\n", cerr)
			}
		}
	case plain:
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "bjtrainer",
	})
	return logger, closeFn, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newChartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Print the basic strategy chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := renderChart(cmd.OutOrStdout(), strategy.NewChart()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# bjtrainer configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# session = "random"      # Start this session directly: random, dealer, hand, absolute
# difficulty = %q     # easy, normal, hard
# seed = 0                # Random seed (0 = time based)
# plain = false           # Line-oriented prompts instead of the TUI

[log]
# level = %q            # debug, info, warn, error
# file = ""               # Log file path (TUI mode discards logs otherwise)
`,
		defaultDifficulty,
		defaultLogLevel,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
