// Package stats tracks answer accuracy for a training session.
package stats

import (
	"strings"
	"time"

	"github.com/verte-zerg/bjtrainer/internal/strategy"
)

// CategoryStats counts answers for one category. Correct never exceeds Total.
type CategoryStats struct {
	Correct       int
	Total         int
	ResponseSum   time.Duration
	ResponseCount int
}

// Accuracy returns Correct/Total, or 0 when nothing was recorded.
func (c CategoryStats) Accuracy() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total)
}

// MeanResponse returns the average time taken to answer.
func (c CategoryStats) MeanResponse() time.Duration {
	if c.ResponseCount == 0 {
		return 0
	}
	return c.ResponseSum / time.Duration(c.ResponseCount)
}

func (c *CategoryStats) add(o CategoryStats) {
	c.Correct += o.Correct
	c.Total += o.Total
	c.ResponseSum += o.ResponseSum
	c.ResponseCount += o.ResponseCount
}

// CategoryKey builds the fine-grained key, e.g. "hard-weak".
func CategoryKey(handType strategy.HandType, strength strategy.DealerStrength) string {
	return handType.String() + "-" + strength.String()
}

// SessionStatistics is a point-in-time copy of a tracker.
type SessionStatistics struct {
	Categories map[string]CategoryStats
	Overall    CategoryStats
}

// Tracker accumulates per-category counters in memory. Statistics are never
// persisted; a new session gets a new tracker.
type Tracker struct {
	overall    CategoryStats
	byKey      map[string]*CategoryStats
	byHandType map[strategy.HandType]*CategoryStats
	byStrength map[strategy.DealerStrength]*CategoryStats
	history    []bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byKey:      map[string]*CategoryStats{},
		byHandType: map[strategy.HandType]*CategoryStats{},
		byStrength: map[strategy.DealerStrength]*CategoryStats{},
	}
}

// RecordAttempt counts one answer in its category, hand type, dealer strength and overall.
func (t *Tracker) RecordAttempt(handType strategy.HandType, strength strategy.DealerStrength, correct bool) {
	for _, entry := range t.entries(handType, strength) {
		entry.Total++
		if correct {
			entry.Correct++
		}
	}
	t.history = append(t.history, correct)
}

// RecordResponse adds an answer time to the same buckets as RecordAttempt.
func (t *Tracker) RecordResponse(handType strategy.HandType, strength strategy.DealerStrength, elapsed time.Duration) {
	if elapsed < 0 {
		return
	}
	for _, entry := range t.entries(handType, strength) {
		entry.ResponseSum += elapsed
		entry.ResponseCount++
	}
}

func (t *Tracker) entries(handType strategy.HandType, strength strategy.DealerStrength) []*CategoryStats {
	key := CategoryKey(handType, strength)
	return []*CategoryStats{
		&t.overall,
		entry(t.byKey, key),
		entry(t.byHandType, handType),
		entry(t.byStrength, strength),
	}
}

func entry[K comparable](m map[K]*CategoryStats, k K) *CategoryStats {
	e, ok := m[k]
	if !ok {
		e = &CategoryStats{}
		m[k] = e
	}
	return e
}

// Accuracy returns the accuracy for a category key, a hand type ("hard"), a
// dealer strength ("weak"), or overall when key is empty.
func (t *Tracker) Accuracy(key string) float64 {
	c, _ := t.Category(key)
	return c.Accuracy()
}

// Category returns the counters for a key as accepted by Accuracy.
func (t *Tracker) Category(key string) (CategoryStats, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return t.overall, true
	}
	if e, ok := t.byKey[key]; ok {
		return *e, true
	}
	if ht, err := strategy.ParseHandType(key); err == nil {
		if e, ok := t.byHandType[ht]; ok {
			return *e, true
		}
		return CategoryStats{}, false
	}
	if ds, err := strategy.ParseDealerStrength(key); err == nil {
		if e, ok := t.byStrength[ds]; ok {
			return *e, true
		}
	}
	return CategoryStats{}, false
}

// Overall returns the session-wide counters.
func (t *Tracker) Overall() CategoryStats {
	return t.overall
}

// ByHandType returns the counters for a hand type.
func (t *Tracker) ByHandType(h strategy.HandType) CategoryStats {
	if e, ok := t.byHandType[h]; ok {
		return *e
	}
	return CategoryStats{}
}

// ByStrength returns the counters for a dealer strength group.
func (t *Tracker) ByStrength(s strategy.DealerStrength) CategoryStats {
	if e, ok := t.byStrength[s]; ok {
		return *e
	}
	return CategoryStats{}
}

// Keys returns the attempted fine-grained keys in hand type, then strength order.
func (t *Tracker) Keys() []string {
	keys := make([]string, 0, len(t.byKey))
	for _, h := range strategy.HandTypes {
		for _, s := range strategy.DealerStrengths {
			key := CategoryKey(h, s)
			if _, ok := t.byKey[key]; ok {
				keys = append(keys, key)
			}
		}
	}
	return keys
}

// History returns the answer outcomes in order.
func (t *Tracker) History() []bool {
	return append([]bool(nil), t.history...)
}

// Snapshot copies the fine-grained categories and overall counters.
func (t *Tracker) Snapshot() SessionStatistics {
	cats := make(map[string]CategoryStats, len(t.byKey))
	for k, v := range t.byKey {
		cats[k] = *v
	}
	return SessionStatistics{Categories: cats, Overall: t.overall}
}

// Merge adds every counter of other into t.
func (t *Tracker) Merge(other *Tracker) {
	if other == nil {
		return
	}
	t.overall.add(other.overall)
	for k, v := range other.byKey {
		entry(t.byKey, k).add(*v)
	}
	for k, v := range other.byHandType {
		entry(t.byHandType, k).add(*v)
	}
	for k, v := range other.byStrength {
		entry(t.byStrength, k).add(*v)
	}
	t.history = append(t.history, other.history...)
}
