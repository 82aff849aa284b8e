// Package aggregate reduces a day's buffered readings into daily metrics.
// Every function here is pure: inputs are materialised by the caller and no
// state outside the arguments is read or written.
package aggregate

import (
	"math"
	"sort"

	"github.com/blaisecz/vitals-tracker/internal/domain"
)

// valuesWithin collects the values of samples whose time lies in any interval.
func valuesWithin[S domain.TimedSample](samples []S, intervals []domain.Interval) []float64 {
	var values []float64
	for _, s := range samples {
		if domain.ContainsAny(intervals, s.SampledAt()) {
			values = append(values, s.SampleValue())
		}
	}
	return values
}

func allValues[S domain.TimedSample](samples []S) []float64 {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		values = append(values, s.SampleValue())
	}
	return values
}

// Median of the samples inside intervals. False when none qualify.
func Median[S domain.TimedSample](samples []S, intervals []domain.Interval) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	values := valuesWithin(samples, intervals)
	if len(values) == 0 {
		return 0, false
	}
	sort.Float64s(values)

	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2, true
	}
	return values[n/2], true
}

// Percentile uses nearest-rank selection with lower rounding:
// index floor((n-1)*p), clamped to the slice. No interpolation.
func Percentile[S domain.TimedSample](samples []S, intervals []domain.Interval, p float64) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	values := valuesWithin(samples, intervals)
	if len(values) == 0 {
		return 0, false
	}
	sort.Float64s(values)

	idx := int(math.Floor(float64(len(values)-1) * p))
	idx = max(0, min(idx, len(values)-1))
	return values[idx], true
}

// Average of the samples inside intervals. False when none qualify.
func Average[S domain.TimedSample](samples []S, intervals []domain.Interval) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	values := valuesWithin(samples, intervals)
	if len(values) == 0 {
		return 0, false
	}
	return mean(values), true
}

// AverageAll averages every sample regardless of time.
func AverageAll[S domain.TimedSample](samples []S) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	return mean(allValues(samples)), true
}

// mean of an empty slice is 0; exported reducers never surface that case.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
