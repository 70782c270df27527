package stats

import "sort"

// MostPracticed returns up to n attempted category keys ordered by answer count.
// n <= 0 returns all of them.
func MostPracticed(t *Tracker, n int) []string {
	keys := t.Keys()
	if len(keys) == 0 {
		return nil
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return t.byKey[keys[i]].Total > t.byKey[keys[j]].Total
	})
	if n <= 0 || n > len(keys) {
		n = len(keys)
	}
	return keys[:n]
}
