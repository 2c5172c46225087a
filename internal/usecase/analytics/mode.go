package analytics

// mode returns the most frequent value in values. Ties break in favor of the
// value encountered first in the slice, so callers get a stable answer
// independent of map iteration order. ok is false for an empty slice.
func mode[K comparable](values []K) (best K, ok bool) {
	counts := make(map[K]int, len(values))
	var order []K
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best, bestCount > 0
}
