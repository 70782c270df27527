package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allDealerCards() []Card {
	cards := make([]Card, 0, 10)
	for d := MinCard; d <= Ace; d++ {
		cards = append(cards, d)
	}
	return cards
}

func TestChartCoversEveryKey(t *testing.T) {
	chart := NewChart()
	cases := []struct {
		handType HandType
		lo, hi   int
		allowed  []Action
	}{
		{Hard, 5, 21, []Action{Hit, Stand, Double}},
		{Soft, 13, 21, []Action{Hit, Stand, Double}},
		{Pair, 2, 11, []Action{Hit, Stand, Double, Split}},
	}
	for _, tc := range cases {
		t.Run(tc.handType.String(), func(t *testing.T) {
			for total := tc.lo; total <= tc.hi; total++ {
				for _, d := range allDealerCards() {
					action, ok := chart.Lookup(tc.handType, total, d)
					require.True(t, ok, "missing %s %d vs %s", tc.handType, total, d)
					assert.Contains(t, tc.allowed, action, "%s %d vs %s", tc.handType, total, d)
				}
			}
		})
	}
}

func TestChartTotalsMatchTables(t *testing.T) {
	chart := NewChart()
	for _, ht := range HandTypes {
		totals := chart.Totals(ht)
		require.NotEmpty(t, totals)
		assert.Len(t, chart.table(ht), len(totals)*10)
	}
}

func TestHardBands(t *testing.T) {
	chart := NewChart()
	cases := []struct {
		total  int
		dealer Card
		want   Action
	}{
		{5, 6, Hit},
		{8, 5, Hit},
		{9, 2, Hit},
		{9, 3, Double},
		{9, 6, Double},
		{9, 7, Hit},
		{10, 9, Double},
		{10, 10, Hit},
		{11, 10, Double},
		{11, Ace, Hit},
		{12, 3, Hit},
		{12, 4, Stand},
		{12, 5, Stand},
		{12, 6, Stand},
		{12, 7, Hit},
		{13, 2, Stand},
		{16, 6, Stand},
		{16, 7, Hit},
		{16, 10, Hit},
		{17, Ace, Stand},
		{21, 2, Stand},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, chart.CorrectAction(Hard, tc.total, tc.dealer), "hard %d vs %s", tc.total, tc.dealer)
	}
}

func TestSoftBands(t *testing.T) {
	chart := NewChart()
	cases := []struct {
		total  int
		dealer Card
		want   Action
	}{
		{13, 4, Hit},
		{13, 5, Double},
		{14, 6, Double},
		{14, 7, Hit},
		{15, 4, Double},
		{16, 3, Hit},
		{17, 3, Double},
		{17, 2, Hit},
		{18, 2, Stand},
		{18, 3, Double},
		{18, 5, Double},
		{18, 7, Stand},
		{18, 8, Stand},
		{18, 9, Hit},
		{18, 10, Hit},
		{18, Ace, Hit},
		{19, 6, Stand},
		{20, Ace, Stand},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, chart.CorrectAction(Soft, tc.total, tc.dealer), "soft %d vs %s", tc.total, tc.dealer)
	}
}

func TestPairBands(t *testing.T) {
	chart := NewChart()
	cases := []struct {
		pair   int
		dealer Card
		want   Action
	}{
		{11, 2, Split},
		{11, Ace, Split},
		{2, 7, Split},
		{2, 8, Hit},
		{3, 2, Split},
		{4, 4, Hit},
		{4, 5, Split},
		{4, 7, Hit},
		{5, 9, Double},
		{5, 10, Hit},
		{6, 6, Split},
		{6, 7, Hit},
		{7, 7, Split},
		{7, 8, Hit},
		{8, 10, Split},
		{9, 6, Split},
		{9, 7, Stand},
		{9, 8, Split},
		{9, 9, Split},
		{9, 10, Stand},
		{9, Ace, Stand},
		{10, 6, Stand},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, chart.CorrectAction(Pair, tc.pair, tc.dealer), "pair %d vs %s", tc.pair, tc.dealer)
	}
}

func TestPairsNeverSplitFivesOrTens(t *testing.T) {
	chart := NewChart()
	for _, d := range allDealerCards() {
		assert.NotEqual(t, Split, chart.CorrectAction(Pair, 5, d))
		assert.NotEqual(t, Split, chart.CorrectAction(Pair, 10, d))
	}
}

func TestCorrectActionDefaultsToHit(t *testing.T) {
	chart := NewChart()
	_, ok := chart.Lookup(Hard, 3, 5)
	assert.False(t, ok)
	assert.Equal(t, Hit, chart.CorrectAction(Hard, 3, 5))
	assert.Equal(t, Hit, chart.CorrectAction(Soft, 12, 5))
	assert.Equal(t, Hit, chart.CorrectAction(Pair, 12, 5))
	assert.Equal(t, Hit, chart.CorrectAction(HandType(9), 16, 10))
	assert.Equal(t, Hit, chart.CorrectAction(Hard, 16, 1))
}

func TestCorrectActionIsDeterministic(t *testing.T) {
	chart := NewChart()
	for _, ht := range HandTypes {
		for _, total := range chart.Totals(ht) {
			for _, d := range allDealerCards() {
				assert.Equal(t, chart.CorrectAction(ht, total, d), chart.CorrectAction(ht, total, d))
			}
		}
	}
}

func TestIsAbsoluteRule(t *testing.T) {
	chart := NewChart()
	for _, d := range allDealerCards() {
		for pair := 2; pair <= 11; pair++ {
			want := pair == 11 || pair == 8 || pair == 10 || pair == 5
			assert.Equal(t, want, chart.IsAbsoluteRule(Pair, pair, d), "pair %d vs %s", pair, d)
		}
		for total := 5; total <= 21; total++ {
			assert.Equal(t, total >= 17, chart.IsAbsoluteRule(Hard, total, d), "hard %d vs %s", total, d)
		}
		for total := 13; total <= 21; total++ {
			assert.Equal(t, total >= 19, chart.IsAbsoluteRule(Soft, total, d), "soft %d vs %s", total, d)
		}
	}
}

func TestExplanationPriority(t *testing.T) {
	chart := NewChart()
	cases := []struct {
		name     string
		handType HandType
		total    int
		dealer   Card
		want     string
	}{
		{"aces beat dealer weak", Pair, 11, 5, MnemonicAlwaysSplit.Phrase()},
		{"eights", Pair, 8, 10, MnemonicAlwaysSplit.Phrase()},
		{"tens", Pair, 10, 6, MnemonicNeverSplit.Phrase()},
		{"fives", Pair, 5, 2, MnemonicNeverSplit.Phrase()},
		{"soft 18", Soft, 18, 5, MnemonicSoft18.Phrase()},
		{"hard 12", Hard, 12, 10, MnemonicHard12.Phrase()},
		{"dealer weak", Hard, 9, 4, MnemonicDealerWeak.Phrase()},
		{"teens vs strong", Hard, 16, 10, MnemonicTeensVsStrong.Phrase()},
		{"soft teens vs strong", Soft, 16, 10, FallbackExplanation},
		{"teens vs medium", Hard, 15, 7, FallbackExplanation},
		{"fallback", Pair, 9, 9, FallbackExplanation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, chart.Explanation(tc.handType, tc.total, tc.dealer))
		})
	}
}

func TestDealerGroups(t *testing.T) {
	groups := NewChart().DealerGroups()
	assert.Equal(t, []Card{4, 5, 6}, groups[Weak])
	assert.Equal(t, []Card{2, 3, 7, 8}, groups[Medium])
	assert.Equal(t, []Card{9, 10, Ace}, groups[Strong])
	for s, cards := range groups {
		for _, c := range cards {
			assert.Equal(t, s, StrengthOf(c))
		}
	}
}

func TestEndToEndScenarios(t *testing.T) {
	chart := NewChart()

	assert.Equal(t, Hit, chart.CorrectAction(Hard, 16, 10))
	assert.Equal(t, Double, chart.CorrectAction(Soft, 18, 5))

	assert.Equal(t, Split, chart.CorrectAction(Pair, 11, 7))
	assert.True(t, chart.IsAbsoluteRule(Pair, 11, 7))

	assert.Equal(t, Stand, chart.CorrectAction(Pair, 10, 6))
	assert.True(t, chart.IsAbsoluteRule(Pair, 10, 6))

	assert.Equal(t, Stand, chart.CorrectAction(Hard, 12, 5))
}
