package domain

// DailyFlags is the bounded in-memory record of one user's day. It owns its
// buffers and cached aggregates; a single aggregation pass mutates it at a time.
type DailyFlags struct {
	HRVSamples         []HRVSample         `json:"hrv_samples"`
	HeartRateSamples   []HeartRateSample   `json:"heart_rate_samples"`
	RespiratorySamples []RespiratorySample `json:"respiratory_samples"`
	SleepSegments      []SleepSegment      `json:"sleep_segments"`
	StepBuckets        []StepBucket        `json:"step_buckets"`

	// Cached aggregates supplied by the source; when set they win over recomputation.
	AggregatedStepTotal            *float64 `json:"aggregated_step_total,omitempty"`
	AggregatedNocturnalAverage     *float64 `json:"aggregated_nocturnal_average,omitempty"`
	AggregatedNocturnalMin         *float64 `json:"aggregated_nocturnal_min,omitempty"`
	AggregatedSleepDurationSeconds *float64 `json:"aggregated_sleep_duration_seconds,omitempty"`
}

// Append routes a quantity reading into the buffer for kind. Unknown kinds
// are ignored and reported as false.
func (f *DailyFlags) Append(s QuantitySample, kind SignalKind) bool {
	switch kind {
	case SignalHRV:
		f.HRVSamples = appendBounded(f.HRVSamples, HRVSample{ID: s.ID, Time: s.Start, Value: s.Value}, MaxHRVSamples)
	case SignalHeartRate, SignalRestingHeartRate:
		ctx := HeartRateNormal
		if kind == SignalRestingHeartRate {
			ctx = HeartRateResting
		}
		f.HeartRateSamples = appendBounded(f.HeartRateSamples, HeartRateSample{
			ID:      s.ID,
			Time:    s.Start,
			Value:   s.Value,
			Context: ctx,
		}, MaxHeartRateSamples)
	case SignalRespiratoryRate:
		f.RespiratorySamples = appendBounded(f.RespiratorySamples, RespiratorySample{ID: s.ID, Time: s.Start, Value: s.Value}, MaxRespiratorySamples)
	case SignalStepCount:
		f.StepBuckets = appendBounded(f.StepBuckets, StepBucket{ID: s.ID, Start: s.Start, End: s.End, Steps: s.Value}, MaxStepBuckets)
	default:
		return false
	}
	return true
}

// AppendSleep inserts a sleep segment unless one with the same ID is already
// buffered. Asleep segments add their duration to the cached sleep total.
func (f *DailyFlags) AppendSleep(seg SleepSegment) bool {
	for _, existing := range f.SleepSegments {
		if existing.ID == seg.ID {
			return false
		}
	}

	f.SleepSegments = appendBounded(f.SleepSegments, seg, MaxSleepSegments)

	if seg.IsAsleep() {
		added := seg.Duration().Seconds()
		if f.AggregatedSleepDurationSeconds == nil {
			f.AggregatedSleepDurationSeconds = &added
		} else {
			total := *f.AggregatedSleepDurationSeconds + added
			f.AggregatedSleepDurationSeconds = &total
		}
	}
	return true
}

// RemoveSample drops every element carrying id, whichever buffer holds it.
func (f *DailyFlags) RemoveSample(id string) {
	f.removeIDs(func(candidate string) bool { return candidate == id })
}

// PruneDeletedSamples removes all elements whose ID is in deleted and reports
// whether anything was removed.
func (f *DailyFlags) PruneDeletedSamples(deleted map[string]struct{}) bool {
	if len(deleted) == 0 {
		return false
	}
	before := f.Len()
	f.removeIDs(func(candidate string) bool {
		_, ok := deleted[candidate]
		return ok
	})
	return f.Len() != before
}

func (f *DailyFlags) removeIDs(match func(string) bool) {
	f.HRVSamples = removeWhere(f.HRVSamples, func(s HRVSample) bool { return match(s.ID) })
	f.HeartRateSamples = removeWhere(f.HeartRateSamples, func(s HeartRateSample) bool { return match(s.ID) })
	f.RespiratorySamples = removeWhere(f.RespiratorySamples, func(s RespiratorySample) bool { return match(s.ID) })
	f.SleepSegments = removeWhere(f.SleepSegments, func(s SleepSegment) bool { return match(s.ID) })
	f.StepBuckets = removeWhere(f.StepBuckets, func(s StepBucket) bool { return match(s.ID) })
}

// SampleIDs returns the set of IDs currently buffered across all five buffers.
func (f *DailyFlags) SampleIDs() map[string]struct{} {
	ids := make(map[string]struct{}, f.Len())
	for _, s := range f.HRVSamples {
		ids[s.ID] = struct{}{}
	}
	for _, s := range f.HeartRateSamples {
		ids[s.ID] = struct{}{}
	}
	for _, s := range f.RespiratorySamples {
		ids[s.ID] = struct{}{}
	}
	for _, s := range f.SleepSegments {
		ids[s.ID] = struct{}{}
	}
	for _, s := range f.StepBuckets {
		ids[s.ID] = struct{}{}
	}
	return ids
}

// Len is the combined element count across all five buffers.
func (f *DailyFlags) Len() int {
	return len(f.HRVSamples) + len(f.HeartRateSamples) + len(f.RespiratorySamples) +
		len(f.SleepSegments) + len(f.StepBuckets)
}

// CachedAggregates carries precomputed scalars reported by the source.
// Nil fields leave the current value untouched.
type CachedAggregates struct {
	StepTotal            *float64 `json:"step_total,omitempty" validate:"omitempty,min=0"`
	NocturnalAverage     *float64 `json:"nocturnal_average,omitempty" validate:"omitempty,gt=0"`
	NocturnalMin         *float64 `json:"nocturnal_min,omitempty" validate:"omitempty,gt=0"`
	SleepDurationSeconds *float64 `json:"sleep_duration_seconds,omitempty" validate:"omitempty,min=0"`
}

// SetAggregates overwrites cached scalars with the non-nil values of agg.
func (f *DailyFlags) SetAggregates(agg CachedAggregates) {
	if agg.StepTotal != nil {
		f.AggregatedStepTotal = float64Ptr(*agg.StepTotal)
	}
	if agg.NocturnalAverage != nil {
		f.AggregatedNocturnalAverage = float64Ptr(*agg.NocturnalAverage)
	}
	if agg.NocturnalMin != nil {
		f.AggregatedNocturnalMin = float64Ptr(*agg.NocturnalMin)
	}
	if agg.SleepDurationSeconds != nil {
		f.AggregatedSleepDurationSeconds = float64Ptr(*agg.SleepDurationSeconds)
	}
}

// SleepIntervals returns the asleep segments as intervals in buffer order.
func (f *DailyFlags) SleepIntervals() []Interval {
	var out []Interval
	for _, seg := range f.SleepSegments {
		if seg.IsAsleep() {
			out = append(out, seg.Interval())
		}
	}
	return out
}

// Clone returns a deep copy so a summary can own its flags.
func (f *DailyFlags) Clone() DailyFlags {
	c := DailyFlags{
		HRVSamples:         append([]HRVSample(nil), f.HRVSamples...),
		HeartRateSamples:   append([]HeartRateSample(nil), f.HeartRateSamples...),
		RespiratorySamples: append([]RespiratorySample(nil), f.RespiratorySamples...),
		SleepSegments:      append([]SleepSegment(nil), f.SleepSegments...),
		StepBuckets:        append([]StepBucket(nil), f.StepBuckets...),
	}
	if f.AggregatedStepTotal != nil {
		c.AggregatedStepTotal = float64Ptr(*f.AggregatedStepTotal)
	}
	if f.AggregatedNocturnalAverage != nil {
		c.AggregatedNocturnalAverage = float64Ptr(*f.AggregatedNocturnalAverage)
	}
	if f.AggregatedNocturnalMin != nil {
		c.AggregatedNocturnalMin = float64Ptr(*f.AggregatedNocturnalMin)
	}
	if f.AggregatedSleepDurationSeconds != nil {
		c.AggregatedSleepDurationSeconds = float64Ptr(*f.AggregatedSleepDurationSeconds)
	}
	return c
}

func float64Ptr(v float64) *float64 {
	return &v
}
