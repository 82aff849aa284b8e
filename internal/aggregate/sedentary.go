package aggregate

import (
	"sort"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/domain"
)

// MaxBucketGap is the largest hole between consecutive step buckets that a
// sedentary window may span.
const MaxBucketGap = 300 * time.Second

// minRateHours floors the window length used as the steps/hour divisor.
const minRateHours = 0.001

type sedentarySweep struct {
	threshold   float64
	minDuration time.Duration
	excluding   []domain.Interval

	open       bool
	start, end time.Time
	totalSteps float64
	out        []domain.Interval
}

// SedentaryIntervals finds low-activity windows in buckets. A window spans
// consecutive buckets (sorted by start) whose gaps stay within MaxBucketGap,
// lasts at least minDuration, averages no more than thresholdStepsPerHour,
// and overlaps none of the excluding intervals. The input is not reordered.
func SedentaryIntervals(buckets []domain.StepBucket, thresholdStepsPerHour float64, minDuration time.Duration, excluding []domain.Interval) []domain.Interval {
	if len(buckets) == 0 {
		return nil
	}

	sorted := make([]domain.StepBucket, len(buckets))
	copy(sorted, buckets)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	sw := &sedentarySweep{threshold: thresholdStepsPerHour, minDuration: minDuration, excluding: excluding}

	var prevEnd time.Time
	for i, b := range sorted {
		// the gap is measured from the previous bucket, not the window's furthest end
		if sw.open && i > 0 && b.Start.Sub(prevEnd) > MaxBucketGap {
			sw.finalize()
		}
		if !sw.open {
			sw.open = true
			sw.start = b.Start
			sw.end = b.End
		}
		if b.End.After(sw.end) {
			sw.end = b.End
		}
		sw.totalSteps += b.Steps
		prevEnd = b.End
	}
	sw.finalize()

	return sw.out
}

func (sw *sedentarySweep) finalize() {
	if !sw.open {
		return
	}
	candidate := domain.Interval{Start: sw.start, End: sw.end}
	sw.open = false
	steps := sw.totalSteps
	sw.totalSteps = 0

	duration := sw.end.Sub(sw.start)
	if duration < sw.minDuration {
		return
	}
	stepsPerHour := steps / max(duration.Hours(), minRateHours)
	if stepsPerHour > sw.threshold {
		return
	}
	if domain.IntersectsAny(sw.excluding, candidate) {
		return
	}
	sw.out = append(sw.out, candidate)
}
