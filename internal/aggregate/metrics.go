package aggregate

import (
	"github.com/blaisecz/vitals-tracker/internal/domain"
)

// NocturnalPercentile selects the nocturnal heart rate from overnight samples.
const NocturnalPercentile = 0.10

// Each composite query below tries its sources in order and returns the first
// hit. Only a carry-forward from the previous day sets Metric.Imputed.

// HRV resolves heart-rate variability: median over primary intervals, then
// median over fallback intervals, then the previous value.
func HRV(f *domain.DailyFlags, primary, fallback []domain.Interval, previous *float64) (domain.Metric, bool) {
	if v, ok := Median(f.HRVSamples, primary); ok {
		return domain.Metric{Value: v}, true
	}
	if v, ok := Median(f.HRVSamples, fallback); ok {
		return domain.Metric{Value: v}, true
	}
	return carryForward(previous)
}

// NocturnalHR resolves the overnight heart rate: cached aggregate, 10th
// percentile over primary then fallback intervals, then the previous value.
func NocturnalHR(f *domain.DailyFlags, primary, fallback []domain.Interval, previous *float64) (domain.Metric, bool) {
	if f.AggregatedNocturnalAverage != nil {
		return domain.Metric{Value: *f.AggregatedNocturnalAverage}, true
	}
	if v, ok := Percentile(f.HeartRateSamples, primary, NocturnalPercentile); ok {
		return domain.Metric{Value: v}, true
	}
	if v, ok := Percentile(f.HeartRateSamples, fallback, NocturnalPercentile); ok {
		return domain.Metric{Value: v}, true
	}
	return carryForward(previous)
}

// RestingHR resolves resting heart rate: the most recent resting-tagged
// sample, then the average over fallback intervals, then the previous value.
func RestingHR(f *domain.DailyFlags, fallback []domain.Interval, previous *float64) (domain.Metric, bool) {
	if s, ok := latestResting(f.HeartRateSamples); ok {
		return domain.Metric{Value: s.Value}, true
	}
	if v, ok := Average(f.HeartRateSamples, fallback); ok {
		return domain.Metric{Value: v}, true
	}
	return carryForward(previous)
}

func latestResting(samples []domain.HeartRateSample) (domain.HeartRateSample, bool) {
	var latest domain.HeartRateSample
	found := false
	for _, s := range samples {
		if s.Context != domain.HeartRateResting {
			continue
		}
		// ties keep the later-inserted sample
		if !found || !s.Time.Before(latest.Time) {
			latest = s
			found = true
		}
	}
	return latest, found
}

// RespiratoryRate averages respiratory samples inside intervals, or all of
// them when no intervals are given. Never imputed.
func RespiratoryRate(f *domain.DailyFlags, intervals []domain.Interval) (float64, bool) {
	if len(intervals) == 0 {
		return AverageAll(f.RespiratorySamples)
	}
	return Average(f.RespiratorySamples, intervals)
}

// SleepDurationSeconds prefers the cached aggregate, otherwise sums asleep
// segment durations.
func SleepDurationSeconds(f *domain.DailyFlags) (float64, bool) {
	if f.AggregatedSleepDurationSeconds != nil {
		return *f.AggregatedSleepDurationSeconds, true
	}
	total, found := 0.0, false
	for _, seg := range f.SleepSegments {
		if seg.IsAsleep() {
			total += seg.Duration().Seconds()
			found = true
		}
	}
	return total, found
}

// StepTotal prefers the cached aggregate, otherwise sums every bucket.
func StepTotal(f *domain.DailyFlags) (float64, bool) {
	if f.AggregatedStepTotal != nil {
		return *f.AggregatedStepTotal, true
	}
	if len(f.StepBuckets) == 0 {
		return 0, false
	}
	total := 0.0
	for _, b := range f.StepBuckets {
		total += b.Steps
	}
	return total, true
}

func carryForward(previous *float64) (domain.Metric, bool) {
	if previous == nil {
		return domain.Metric{}, false
	}
	return domain.Metric{Value: *previous, Imputed: true}, true
}
