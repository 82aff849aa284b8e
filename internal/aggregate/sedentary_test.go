package aggregate

import (
	"fmt"
	"testing"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bucket(fromMin, toMin int, steps float64) domain.StepBucket {
	return domain.StepBucket{
		ID:    fmt.Sprintf("steps-%d-%d", fromMin, toMin),
		Start: at(fromMin),
		End:   at(toMin),
		Steps: steps,
	}
}

func TestSedentaryIntervals(t *testing.T) {
	tests := []struct {
		name        string
		buckets     []domain.StepBucket
		threshold   float64
		minDuration time.Duration
		excluding   []domain.Interval
		want        []domain.Interval
	}{
		{
			name:        "empty input",
			threshold:   120,
			minDuration: 30 * time.Minute,
		},
		{
			name:        "single qualifying bucket",
			buckets:     []domain.StepBucket{bucket(0, 60, 50)},
			threshold:   120,
			minDuration: 30 * time.Minute,
			want:        []domain.Interval{window(0, 60)},
		},
		{
			name:        "contiguous buckets merge",
			buckets:     []domain.StepBucket{bucket(0, 15, 10), bucket(15, 30, 0), bucket(33, 45, 20)},
			threshold:   120,
			minDuration: 30 * time.Minute,
			want:        []domain.Interval{window(0, 45)},
		},
		{
			name:        "gap over five minutes breaks the window",
			buckets:     []domain.StepBucket{bucket(0, 20, 0), bucket(20, 40, 0), bucket(46, 66, 0), bucket(66, 86, 0)},
			threshold:   120,
			minDuration: 30 * time.Minute,
			want:        []domain.Interval{window(0, 40), window(46, 86)},
		},
		{
			name:        "gap of exactly five minutes still merges",
			buckets:     []domain.StepBucket{bucket(0, 20, 0), bucket(25, 45, 0)},
			threshold:   120,
			minDuration: 30 * time.Minute,
			want:        []domain.Interval{window(0, 45)},
		},
		{
			name:        "too active",
			buckets:     []domain.StepBucket{bucket(0, 30, 100), bucket(30, 60, 100)},
			threshold:   120,
			minDuration: 30 * time.Minute,
		},
		{
			name:        "rate exactly at threshold is kept",
			buckets:     []domain.StepBucket{bucket(0, 60, 120)},
			threshold:   120,
			minDuration: 30 * time.Minute,
			want:        []domain.Interval{window(0, 60)},
		},
		{
			name:        "too short",
			buckets:     []domain.StepBucket{bucket(0, 20, 0)},
			threshold:   120,
			minDuration: 30 * time.Minute,
		},
		{
			name:        "overlapping sleep is excluded",
			buckets:     []domain.StepBucket{bucket(0, 60, 0), bucket(120, 180, 0)},
			threshold:   120,
			minDuration: 30 * time.Minute,
			excluding:   []domain.Interval{window(50, 100)},
			want:        []domain.Interval{window(120, 180)},
		},
		{
			name:        "unsorted input is swept in start order",
			buckets:     []domain.StepBucket{bucket(40, 60, 0), bucket(0, 20, 0), bucket(20, 40, 0)},
			threshold:   120,
			minDuration: 30 * time.Minute,
			want:        []domain.Interval{window(0, 60)},
		},
		{
			// the gap is taken from the short bucket B, not the window end set by A
			name:        "gap measured from preceding bucket",
			buckets:     []domain.StepBucket{bucket(0, 60, 0), bucket(10, 20, 0), bucket(26, 50, 0)},
			threshold:   120,
			minDuration: 20 * time.Minute,
			want:        []domain.Interval{window(0, 60), window(26, 50)},
		},
		{
			name:        "zero-length window uses the rate floor",
			buckets:     []domain.StepBucket{bucket(10, 10, 1)},
			threshold:   120,
			minDuration: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SedentaryIntervals(tt.buckets, tt.threshold, tt.minDuration, tt.excluding)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSedentaryIntervals_DoesNotReorderInput(t *testing.T) {
	buckets := []domain.StepBucket{bucket(40, 60, 0), bucket(0, 20, 0)}
	SedentaryIntervals(buckets, 120, time.Minute, nil)
	assert.Equal(t, "steps-40-60", buckets[0].ID)
}

func TestSedentaryIntervals_Properties(t *testing.T) {
	// an irregular day: five-minute buckets with holes and bursts
	var buckets []domain.StepBucket
	minute := 0
	for i := 0; i < 200; i++ {
		steps := float64((i * 37) % 11)
		if i%23 == 0 {
			steps = 900
		}
		buckets = append(buckets, bucket(minute, minute+5, steps))
		minute += 5
		if i%17 == 0 {
			minute += 7
		}
	}
	sleep := []domain.Interval{window(0, 120), window(600, 660)}

	got := SedentaryIntervals(buckets, 120, 30*time.Minute, sleep)
	require.NotEmpty(t, got)

	for _, iv := range got {
		assert.False(t, domain.IntersectsAny(sleep, iv), "interval %v overlaps sleep", iv)
		assert.GreaterOrEqual(t, iv.Duration(), 30*time.Minute)

		for i := 1; i < len(buckets); i++ {
			prev, next := buckets[i-1], buckets[i]
			if next.Start.Sub(prev.End) <= MaxBucketGap {
				continue
			}
			spansGap := iv.Contains(prev.Start) && iv.Contains(next.Start)
			assert.False(t, spansGap, "interval %v spans gap between %s and %s", iv, prev.ID, next.ID)
		}
	}
}
