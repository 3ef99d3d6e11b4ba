package names

import "maps"

// TallyCounts exposes script frequencies of a tally to tests.
func TallyCounts(t Tally) map[string]int {
	return maps.Clone(t.counts)
}
