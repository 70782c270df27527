// Package generator builds practice scenarios.
package generator

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/verte-zerg/bjtrainer/internal/model"
	"github.com/verte-zerg/bjtrainer/internal/randutil"
	"github.com/verte-zerg/bjtrainer/internal/strategy"
)

// ErrMissingSubtype is returned when a dealer-group or hand-type session has no filter.
var ErrMissingSubtype = errors.New("session type requires a subtype")

const (
	minHardTotal = 5
	maxHardTotal = 20
	minHardCard  = 2
	maxHardCard  = 10
	minSoftKick  = 2
	maxSoftKick  = 9
)

type absoluteCase struct {
	handType strategy.HandType
	cards    []strategy.Card
	total    int
}

// absolutePool holds the drill cases; hard hands get cards synthesized per draw.
var absolutePool = []absoluteCase{
	{strategy.Pair, []strategy.Card{strategy.Ace, strategy.Ace}, 11},
	{strategy.Pair, []strategy.Card{8, 8}, 8},
	{strategy.Pair, []strategy.Card{10, 10}, 10},
	{strategy.Pair, []strategy.Card{5, 5}, 5},
	{strategy.Hard, nil, 17},
	{strategy.Hard, nil, 18},
	{strategy.Hard, nil, 19},
	{strategy.Hard, nil, 20},
	{strategy.Soft, []strategy.Card{strategy.Ace, 8}, 19},
	{strategy.Soft, []strategy.Card{strategy.Ace, 9}, 20},
}

type generateFunc func(g *Generator, cfg model.SessionConfig) (model.Scenario, error)

var modes = map[model.SessionType]generateFunc{
	model.SessionRandom:      (*Generator).random,
	model.SessionDealerGroup: (*Generator).dealerGroup,
	model.SessionHandType:    (*Generator).handType,
	model.SessionAbsolute:    (*Generator).absolute,
}

// Generator produces randomized scenarios. It is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with seed; zero seeds from the current time.
func New(seed int64) *Generator {
	return &Generator{rnd: randutil.New(seed)}
}

// Generate produces a scenario consistent with the session config.
func (g *Generator) Generate(cfg model.SessionConfig) (model.Scenario, error) {
	fn, ok := modes[cfg.Type]
	if !ok {
		return model.Scenario{}, fmt.Errorf("%w: %d", model.ErrUnknownSessionType, int(cfg.Type))
	}
	return fn(g, cfg)
}

func (g *Generator) random(_ model.SessionConfig) (model.Scenario, error) {
	dealer := g.DealerCard()
	return g.Hand(g.HandType(), dealer), nil
}

func (g *Generator) dealerGroup(cfg model.SessionConfig) (model.Scenario, error) {
	if cfg.DealerStrength == nil {
		return model.Scenario{}, fmt.Errorf("%w: dealer strength", ErrMissingSubtype)
	}
	dealer := g.DealerCardFrom(*cfg.DealerStrength)
	return g.Hand(g.HandType(), dealer), nil
}

func (g *Generator) handType(cfg model.SessionConfig) (model.Scenario, error) {
	if cfg.HandType == nil {
		return model.Scenario{}, fmt.Errorf("%w: hand type", ErrMissingSubtype)
	}
	dealer := g.DealerCard()
	return g.Hand(*cfg.HandType, dealer), nil
}

func (g *Generator) absolute(_ model.SessionConfig) (model.Scenario, error) {
	dealer := g.DealerCard()
	c := absolutePool[g.rnd.IntN(len(absolutePool))]
	cards := c.cards
	if cards == nil {
		cards = g.HardCards(c.total)
	} else {
		cards = append([]strategy.Card(nil), cards...)
	}
	return model.Scenario{
		HandType:    c.handType,
		PlayerCards: cards,
		PlayerTotal: c.total,
		DealerCard:  dealer,
	}, nil
}

// DealerCard draws an up-card uniformly from 2..A.
func (g *Generator) DealerCard() strategy.Card {
	return strategy.MinCard + strategy.Card(g.rnd.IntN(int(strategy.Ace-strategy.MinCard)+1))
}

// DealerCardFrom draws an up-card uniformly from a strength group.
func (g *Generator) DealerCardFrom(s strategy.DealerStrength) strategy.Card {
	cards := s.Cards()
	return cards[g.rnd.IntN(len(cards))]
}

// HandType draws a hand type uniformly.
func (g *Generator) HandType() strategy.HandType {
	return strategy.HandTypes[g.rnd.IntN(len(strategy.HandTypes))]
}

// Hand synthesizes a player hand of the given type against dealer.
func (g *Generator) Hand(handType strategy.HandType, dealer strategy.Card) model.Scenario {
	s := model.Scenario{HandType: handType, DealerCard: dealer}
	switch handType {
	case strategy.Pair:
		v := strategy.MinCard + strategy.Card(g.rnd.IntN(int(strategy.Ace-strategy.MinCard)+1))
		s.PlayerCards = []strategy.Card{v, v}
		// The pair row is keyed by the single-card rank.
		s.PlayerTotal = int(v)
	case strategy.Soft:
		kicker := strategy.Card(minSoftKick + g.rnd.IntN(maxSoftKick-minSoftKick+1))
		s.PlayerCards = []strategy.Card{strategy.Ace, kicker}
		s.PlayerTotal = int(strategy.Ace) + int(kicker)
	default:
		s.HandType = strategy.Hard
		s.PlayerTotal = minHardTotal + g.rnd.IntN(maxHardTotal-minHardTotal+1)
		s.PlayerCards = g.HardCards(s.PlayerTotal)
	}
	return s
}

// HardCards returns cards summing to total. Totals up to 11 are a single card;
// larger totals use cards in 2..10, adding a third card or more only when two
// cards cannot stay within that range.
func (g *Generator) HardCards(total int) []strategy.Card {
	if total <= int(strategy.Ace) {
		return []strategy.Card{strategy.Card(total)}
	}
	var cards []strategy.Card
	remaining := total
	for remaining > maxHardCard {
		lo := max(minHardCard, remaining-maxHardCard)
		hi := min(maxHardCard, remaining-minHardCard)
		if lo > hi {
			lo = minHardCard
		}
		c := lo + g.rnd.IntN(hi-lo+1)
		cards = append(cards, strategy.Card(c))
		remaining -= c
	}
	return append(cards, strategy.Card(remaining))
}
