package domain

// Buffer caps, one per signal.
const (
	MaxHRVSamples         = 512
	MaxHeartRateSamples   = 4096
	MaxRespiratorySamples = 512
	MaxSleepSegments      = 256
	MaxStepBuckets        = 4096
)

// appendBounded appends v and drops the oldest-inserted elements until the
// slice holds at most limit items. Eviction ignores timestamps.
func appendBounded[T any](items []T, v T, limit int) []T {
	items = append(items, v)
	if overflow := len(items) - limit; overflow > 0 {
		// copy down so the backing array does not grow without bound
		n := copy(items, items[overflow:])
		clear(items[n:])
		items = items[:n]
	}
	return items
}

// removeWhere filters items in place, keeping order.
func removeWhere[T any](items []T, match func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
