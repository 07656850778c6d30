package configurator

import "sort"

// tagCounter counts tag occurrences while remembering first-seen order so
// ties sort deterministically.
type tagCounter struct {
	counts map[string]int
	order  []string
}

func newTagCounter() *tagCounter {
	return &tagCounter{counts: make(map[string]int)}
}

func (tc *tagCounter) add(tag string) {
	if _, seen := tc.counts[tag]; !seen {
		tc.order = append(tc.order, tag)
	}
	tc.counts[tag]++
}

// top returns up to n tags sorted by count descending, first-seen order on
// ties.
func (tc *tagCounter) top(n int) []string {
	out := append([]string{}, tc.order...)
	sort.SliceStable(out, func(i, j int) bool {
		return tc.counts[out[i]] > tc.counts[out[j]]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
