// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/bjtrainer/internal/strategy"
)

// Question quotas per session.
const (
	DefaultMaxQuestions  = 50
	AbsoluteMaxQuestions = 20
)

var (
	// ErrUnknownSessionType is returned for session names outside random/dealer/hand/absolute.
	ErrUnknownSessionType = errors.New("unknown session type")
	// ErrUnknownDifficulty is returned for difficulty names outside easy/normal/hard.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// SessionType selects how scenarios are generated.
type SessionType int

// Session types.
const (
	SessionRandom SessionType = iota
	SessionDealerGroup
	SessionHandType
	SessionAbsolute
)

// SessionTypes lists session types in menu order.
var SessionTypes = []SessionType{SessionRandom, SessionDealerGroup, SessionHandType, SessionAbsolute}

// String returns the CLI name of the session type.
func (t SessionType) String() string {
	switch t {
	case SessionRandom:
		return "random"
	case SessionDealerGroup:
		return "dealer"
	case SessionHandType:
		return "hand"
	case SessionAbsolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// Title returns the menu label of the session type.
func (t SessionType) Title() string {
	switch t {
	case SessionRandom:
		return "Quick Practice (random)"
	case SessionDealerGroup:
		return "Learn by Dealer Strength"
	case SessionHandType:
		return "Focus on Hand Types"
	case SessionAbsolute:
		return "Absolutes Drill"
	default:
		return "Unknown"
	}
}

// Description explains the session type in one line.
func (t SessionType) Description() string {
	switch t {
	case SessionRandom:
		return "Mixed practice with all hand types and dealer cards"
	case SessionDealerGroup:
		return "Practice by dealer strength groups (weak/medium/strong)"
	case SessionHandType:
		return "Focus on specific hand types (hard/soft/pairs)"
	case SessionAbsolute:
		return "Practice absolute rules (always/never scenarios)"
	default:
		return ""
	}
}

// MaxQuestions returns the question quota for the session type.
func (t SessionType) MaxQuestions() int {
	if t == SessionAbsolute {
		return AbsoluteMaxQuestions
	}
	return DefaultMaxQuestions
}

// NeedsSubtype reports whether the session type requires a filter before starting.
func (t SessionType) NeedsSubtype() bool {
	return t == SessionDealerGroup || t == SessionHandType
}

// ParseSessionType parses a CLI session name.
func ParseSessionType(s string) (SessionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return SessionRandom, nil
	case "dealer":
		return SessionDealerGroup, nil
	case "hand":
		return SessionHandType, nil
	case "absolute":
		return SessionAbsolute, nil
	default:
		return 0, fmt.Errorf("%w %q (valid: random, dealer, hand, absolute)", ErrUnknownSessionType, s)
	}
}

// Difficulty only changes description text; grading is identical at every level.
type Difficulty int

// Difficulty levels.
const (
	DifficultyNormal Difficulty = iota
	DifficultyEasy
	DifficultyHard
)

// String returns the CLI name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Description returns the text shown in the session header.
func (d Difficulty) Description() string {
	switch d {
	case DifficultyEasy:
		return "Easy: take your time, every answer comes with its pattern"
	case DifficultyHard:
		return "Hard: answer from memory, no second looks"
	default:
		return "Normal: standard practice"
	}
}

// ParseDifficulty parses a CLI difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "normal", "":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("%w %q (valid: easy, normal, hard)", ErrUnknownDifficulty, s)
	}
}

// SessionConfig defines a training session. DealerStrength is required for
// SessionDealerGroup and HandType for SessionHandType.
type SessionConfig struct {
	Type           SessionType
	DealerStrength *strategy.DealerStrength
	HandType       *strategy.HandType
	MaxQuestions   int
	Difficulty     Difficulty
}

// NewSessionConfig returns a config with the quota of the session type.
func NewSessionConfig(t SessionType) SessionConfig {
	return SessionConfig{Type: t, MaxQuestions: t.MaxQuestions()}
}

// WithDealerStrength returns a copy filtered to a dealer strength group.
func (c SessionConfig) WithDealerStrength(s strategy.DealerStrength) SessionConfig {
	c.DealerStrength = &s
	return c
}

// WithHandType returns a copy filtered to a hand type.
func (c SessionConfig) WithHandType(h strategy.HandType) SessionConfig {
	c.HandType = &h
	return c
}

// Name returns the session title with its filter, e.g. "Learn by Dealer Strength (weak)".
func (c SessionConfig) Name() string {
	switch {
	case c.Type == SessionDealerGroup && c.DealerStrength != nil:
		return fmt.Sprintf("%s (%s)", c.Type.Title(), c.DealerStrength)
	case c.Type == SessionHandType && c.HandType != nil:
		return fmt.Sprintf("%s (%s)", c.Type.Title(), c.HandType)
	default:
		return c.Type.Title()
	}
}

// Scenario is one practice question.
type Scenario struct {
	HandType    strategy.HandType
	PlayerCards []strategy.Card
	PlayerTotal int
	DealerCard  strategy.Card
}

// Strength returns the dealer strength group of the scenario.
func (s Scenario) Strength() strategy.DealerStrength {
	return strategy.StrengthOf(s.DealerCard)
}

// HandString renders the player cards, e.g. "A, 7".
func (s Scenario) HandString() string {
	parts := make([]string, len(s.PlayerCards))
	for i, c := range s.PlayerCards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Describe renders the hand with its category, e.g. "A, 7 (Soft 18)".
func (s Scenario) Describe() string {
	return fmt.Sprintf("%s (%s %d)", s.HandString(), s.HandType.Title(), s.PlayerTotal)
}
