// Package strategy holds the blackjack basic strategy chart and its vocabulary.
package strategy

import (
	"fmt"
	"strconv"
	"strings"
)

// Card is a card value from 2 to 11, where 11 is an Ace.
type Card int

// Card bounds.
const (
	MinCard Card = 2
	Ace     Card = 11
)

// String returns "A" for an Ace and the numeric value otherwise.
func (c Card) String() string {
	if c == Ace {
		return "A"
	}
	return strconv.Itoa(int(c))
}

// Valid reports whether the card value is in the 2..11 range.
func (c Card) Valid() bool {
	return c >= MinCard && c <= Ace
}

// HandType selects the sub-table consulted for a hand.
type HandType int

// Hand types.
const (
	Hard HandType = iota
	Soft
	Pair
)

// HandTypes lists all hand types in display order.
var HandTypes = []HandType{Hard, Soft, Pair}

// String returns the lowercase name used in category keys.
func (h HandType) String() string {
	switch h {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	case Pair:
		return "pair"
	default:
		return "unknown"
	}
}

// Title returns the capitalized name for display.
func (h HandType) Title() string {
	switch h {
	case Hard:
		return "Hard"
	case Soft:
		return "Soft"
	case Pair:
		return "Pair"
	default:
		return "Unknown"
	}
}

// ParseHandType parses "hard", "soft" or "pair" (also "pairs").
func ParseHandType(s string) (HandType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard":
		return Hard, nil
	case "soft":
		return Soft, nil
	case "pair", "pairs":
		return Pair, nil
	default:
		return 0, fmt.Errorf("unknown hand type %q", s)
	}
}

// Action is a player decision.
type Action int

// Actions.
const (
	Hit Action = iota
	Stand
	Double
	Split
)

// Actions lists all actions in prompt order.
var Actions = []Action{Hit, Stand, Double, Split}

// String returns the action as an uppercase word.
func (a Action) String() string {
	switch a {
	case Hit:
		return "HIT"
	case Stand:
		return "STAND"
	case Double:
		return "DOUBLE"
	case Split:
		return "SPLIT"
	default:
		return "UNKNOWN"
	}
}

// Code returns the single-letter input code.
func (a Action) Code() rune {
	switch a {
	case Hit:
		return 'H'
	case Stand:
		return 'S'
	case Double:
		return 'D'
	case Split:
		return 'P'
	default:
		return '?'
	}
}

// ParseAction maps an input code to an action. Codes are case-insensitive;
// both P and Y mean Split.
func ParseAction(r rune) (Action, bool) {
	switch r {
	case 'h', 'H':
		return Hit, true
	case 's', 'S':
		return Stand, true
	case 'd', 'D':
		return Double, true
	case 'p', 'P', 'y', 'Y':
		return Split, true
	default:
		return 0, false
	}
}

// HandKey indexes a sub-table.
type HandKey struct {
	PlayerTotal int
	DealerCard  Card
}

// DealerStrength groups dealer up-cards.
type DealerStrength int

// Dealer strengths.
const (
	Weak DealerStrength = iota
	Medium
	Strong
)

// DealerStrengths lists all strengths in display order.
var DealerStrengths = []DealerStrength{Weak, Medium, Strong}

// StrengthOf classifies a dealer up-card.
func StrengthOf(dealer Card) DealerStrength {
	switch dealer {
	case 4, 5, 6:
		return Weak
	case 2, 3, 7, 8:
		return Medium
	default:
		return Strong
	}
}

// Cards returns the up-cards belonging to the group.
func (d DealerStrength) Cards() []Card {
	switch d {
	case Weak:
		return []Card{4, 5, 6}
	case Medium:
		return []Card{2, 3, 7, 8}
	default:
		return []Card{9, 10, Ace}
	}
}

// String returns the lowercase name used in category keys.
func (d DealerStrength) String() string {
	switch d {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// Title returns the capitalized name for display.
func (d DealerStrength) Title() string {
	switch d {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// ParseDealerStrength parses "weak", "medium" or "strong".
func ParseDealerStrength(s string) (DealerStrength, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weak":
		return Weak, nil
	case "medium":
		return Medium, nil
	case "strong":
		return Strong, nil
	default:
		return 0, fmt.Errorf("unknown dealer strength %q", s)
	}
}
