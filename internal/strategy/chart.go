package strategy

// Mnemonic names an explanation phrase.
type Mnemonic int

// Mnemonics.
const (
	MnemonicAlwaysSplit Mnemonic = iota
	MnemonicNeverSplit
	MnemonicDealerWeak
	MnemonicTeensVsStrong
	MnemonicSoft18
	MnemonicHard12
)

// FallbackExplanation is returned when no mnemonic applies.
const FallbackExplanation = "Follow basic strategy patterns"

var mnemonics = map[Mnemonic]string{
	MnemonicAlwaysSplit:   "Aces and eights, don't hesitate",
	MnemonicNeverSplit:    "Tens and fives, keep them alive",
	MnemonicDealerWeak:    "Dealer bust cards (4,5,6) = player gets greedy",
	MnemonicTeensVsStrong: "Teens stay vs weak, flee from strong",
	MnemonicSoft18:        "A,7 is the tricky soft hand",
	MnemonicHard12:        "12 is the exception - only stand vs 4,5,6",
}

// Phrase returns the text of the mnemonic.
func (m Mnemonic) Phrase() string {
	return mnemonics[m]
}

// Chart is the basic strategy chart for 4-8 decks, dealer stands on soft 17,
// double after split allowed, no surrender. It is read-only after NewChart
// and safe for concurrent use.
type Chart struct {
	hard  map[HandKey]Action
	soft  map[HandKey]Action
	pairs map[HandKey]Action
}

// NewChart builds the three sub-tables.
func NewChart() *Chart {
	c := &Chart{
		hard:  map[HandKey]Action{},
		soft:  map[HandKey]Action{},
		pairs: map[HandKey]Action{},
	}
	c.buildHard()
	c.buildSoft()
	c.buildPairs()
	return c
}

// Lookup returns the action stored for the key and whether it exists.
func (c *Chart) Lookup(handType HandType, playerTotal int, dealer Card) (Action, bool) {
	table := c.table(handType)
	if table == nil {
		return Hit, false
	}
	action, ok := table[HandKey{PlayerTotal: playerTotal, DealerCard: dealer}]
	if !ok {
		return Hit, false
	}
	return action, true
}

// CorrectAction returns the chart action, or Hit for keys outside the chart.
func (c *Chart) CorrectAction(handType HandType, playerTotal int, dealer Card) Action {
	action, _ := c.Lookup(handType, playerTotal, dealer)
	return action
}

// Explanation returns the mnemonic that best explains the decision.
func (c *Chart) Explanation(handType HandType, playerTotal int, dealer Card) string {
	switch handType {
	case Pair:
		switch playerTotal {
		case 11, 8:
			return MnemonicAlwaysSplit.Phrase()
		case 10, 5:
			return MnemonicNeverSplit.Phrase()
		}
	case Soft:
		if playerTotal == 18 {
			return MnemonicSoft18.Phrase()
		}
	case Hard:
		if playerTotal == 12 {
			return MnemonicHard12.Phrase()
		}
	}

	strength := StrengthOf(dealer)
	if strength == Weak {
		return MnemonicDealerWeak.Phrase()
	}
	if handType == Hard && playerTotal >= 13 && playerTotal <= 16 && strength == Strong && dealer.Valid() {
		return MnemonicTeensVsStrong.Phrase()
	}
	return FallbackExplanation
}

// IsAbsoluteRule reports whether the decision never depends on the dealer card:
// A,A / 8,8 / 10,10 / 5,5, hard 17+ and soft 19+.
func (c *Chart) IsAbsoluteRule(handType HandType, playerTotal int, _ Card) bool {
	switch handType {
	case Pair:
		return playerTotal == 11 || playerTotal == 8 || playerTotal == 10 || playerTotal == 5
	case Hard:
		return playerTotal >= 17
	case Soft:
		return playerTotal >= 19
	}
	return false
}

// DealerGroups returns the up-cards for each strength group.
func (c *Chart) DealerGroups() map[DealerStrength][]Card {
	groups := make(map[DealerStrength][]Card, len(DealerStrengths))
	for _, s := range DealerStrengths {
		groups[s] = s.Cards()
	}
	return groups
}

// Totals returns the player totals covered by a sub-table, ascending.
func (c *Chart) Totals(handType HandType) []int {
	var lo, hi int
	switch handType {
	case Hard:
		lo, hi = 5, 21
	case Soft:
		lo, hi = 13, 21
	case Pair:
		lo, hi = 2, 11
	default:
		return nil
	}
	totals := make([]int, 0, hi-lo+1)
	for t := lo; t <= hi; t++ {
		totals = append(totals, t)
	}
	return totals
}

func (c *Chart) table(handType HandType) map[HandKey]Action {
	switch handType {
	case Hard:
		return c.hard
	case Soft:
		return c.soft
	case Pair:
		return c.pairs
	default:
		return nil
	}
}

// between reports lo <= d <= hi.
func between(d Card, lo, hi Card) bool {
	return d >= lo && d <= hi
}

// fill sets one row of a sub-table using rule for each dealer card 2..A.
func fill(table map[HandKey]Action, total int, rule func(dealer Card) Action) {
	for d := MinCard; d <= Ace; d++ {
		table[HandKey{PlayerTotal: total, DealerCard: d}] = rule(d)
	}
}

func always(a Action) func(Card) Action {
	return func(Card) Action { return a }
}

// bandElse returns in when the dealer card is within [lo, hi], otherwise out.
func bandElse(lo, hi Card, in, out Action) func(Card) Action {
	return func(d Card) Action {
		if between(d, lo, hi) {
			return in
		}
		return out
	}
}

func (c *Chart) buildHard() {
	for total := 5; total <= 8; total++ {
		fill(c.hard, total, always(Hit))
	}
	fill(c.hard, 9, bandElse(3, 6, Double, Hit))
	fill(c.hard, 10, bandElse(2, 9, Double, Hit))
	fill(c.hard, 11, bandElse(2, 10, Double, Hit))
	fill(c.hard, 12, bandElse(4, 6, Stand, Hit))
	for total := 13; total <= 16; total++ {
		fill(c.hard, total, bandElse(2, 6, Stand, Hit))
	}
	for total := 17; total <= 21; total++ {
		fill(c.hard, total, always(Stand))
	}
}

func (c *Chart) buildSoft() {
	fill(c.soft, 13, bandElse(5, 6, Double, Hit))
	fill(c.soft, 14, bandElse(5, 6, Double, Hit))
	fill(c.soft, 15, bandElse(4, 6, Double, Hit))
	fill(c.soft, 16, bandElse(4, 6, Double, Hit))
	fill(c.soft, 17, bandElse(3, 6, Double, Hit))
	fill(c.soft, 18, func(d Card) Action {
		switch {
		case d == 2 || d == 7 || d == 8:
			return Stand
		case between(d, 3, 6):
			return Double
		default:
			return Hit
		}
	})
	for total := 19; total <= 21; total++ {
		fill(c.soft, total, always(Stand))
	}
}

func (c *Chart) buildPairs() {
	fill(c.pairs, 11, always(Split))
	fill(c.pairs, 2, bandElse(2, 7, Split, Hit))
	fill(c.pairs, 3, bandElse(2, 7, Split, Hit))
	fill(c.pairs, 4, bandElse(5, 6, Split, Hit))
	fill(c.pairs, 5, bandElse(2, 9, Double, Hit))
	fill(c.pairs, 6, bandElse(2, 6, Split, Hit))
	fill(c.pairs, 7, bandElse(2, 7, Split, Hit))
	fill(c.pairs, 8, always(Split))
	fill(c.pairs, 9, func(d Card) Action {
		if d == 7 || d == 10 || d == Ace {
			return Stand
		}
		return Split
	})
	fill(c.pairs, 10, always(Stand))
}
