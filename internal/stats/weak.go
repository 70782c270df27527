package stats

import "sort"

// WeakestCategories selects up to top attempted categories with the lowest
// accuracy that still have mistakes. Ties go to the category seen more often.
func WeakestCategories(t *Tracker, top int) []string {
	candidates := make([]string, 0, len(t.byKey))
	for _, key := range t.Keys() {
		c := t.byKey[key]
		if c.Correct < c.Total {
			candidates = append(candidates, key)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := t.byKey[candidates[i]], t.byKey[candidates[j]]
		ai, aj := ci.Accuracy(), cj.Accuracy()
		if ai == aj {
			return ci.Total > cj.Total
		}
		return ai < aj
	})
	if top > 0 && top < len(candidates) {
		candidates = candidates[:top]
	}
	return candidates
}
