package domain

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration of the interval, zero when inverted.
func (i Interval) Duration() time.Duration {
	if d := i.End.Sub(i.Start); d > 0 {
		return d
	}
	return 0
}

// IsZero reports whether both bounds are unset.
func (i Interval) IsZero() bool {
	return i.Start.IsZero() && i.End.IsZero()
}

// Contains reports whether t lies in [Start, End).
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Intersects reports whether the two intervals share any instant.
func (i Interval) Intersects(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// ContainsAny reports whether t lies inside at least one of the intervals.
func ContainsAny(intervals []Interval, t time.Time) bool {
	for _, iv := range intervals {
		if iv.Contains(t) {
			return true
		}
	}
	return false
}

// IntersectsAny reports whether candidate overlaps at least one of the intervals.
func IntersectsAny(intervals []Interval, candidate Interval) bool {
	for _, iv := range intervals {
		if iv.Intersects(candidate) {
			return true
		}
	}
	return false
}
