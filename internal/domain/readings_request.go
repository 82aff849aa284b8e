package domain

import "time"

// QuantityReadingInput is one point or bucketed reading in an ingest batch.
// @Description Quantity reading delivered by the acquisition layer.
type QuantityReadingInput struct {
	// Source identifier, stable across re-deliveries
	ID string `json:"id" validate:"required,max=128" example:"9F2B6C1E-0D8A-4F7B-9E55-3C2A1B0D9E11"`
	// Signal kind
	Kind SignalKind `json:"kind" validate:"required,signal_kind" example:"heart_rate" enums:"hrv,heart_rate,resting_heart_rate,respiratory_rate,step_count"`
	// Sample time, or bucket start for step counts
	Start time.Time `json:"start" validate:"required" example:"2024-01-15T02:10:00Z"`
	// Bucket end; defaults to start for point readings
	End *time.Time `json:"end,omitempty" example:"2024-01-15T02:15:00Z"`
	// Reading value in the signal's unit
	Value float64 `json:"value" validate:"gte=0" example:"54"`
}

// ToSample converts the input into the core's generic reading.
func (in QuantityReadingInput) ToSample() QuantitySample {
	end := in.Start
	if in.End != nil {
		end = *in.End
	}
	return QuantitySample{ID: in.ID, Start: in.Start, End: end, Value: in.Value}
}

// SleepSegmentInput is one staged sleep interval in an ingest batch.
// @Description Staged sleep segment.
type SleepSegmentInput struct {
	ID    string     `json:"id" validate:"required,max=128" example:"C4D1E2F3-1111-2222-3333-444455556666"`
	Stage SleepStage `json:"stage" validate:"required,sleep_stage" example:"asleep_core" enums:"in_bed,asleep_core,asleep_deep,asleep_rem,asleep_unspecified,awake"`
	Start time.Time  `json:"start" validate:"required" example:"2024-01-14T23:10:00Z"`
	End   time.Time  `json:"end" validate:"required,gtfield=Start" example:"2024-01-15T00:40:00Z"`
}

func (in SleepSegmentInput) ToSegment() SleepSegment {
	return SleepSegment{ID: in.ID, Start: in.Start, End: in.End, Stage: in.Stage}
}

// IngestReadingsRequest is the request body for a batch of readings.
// @Description Batch of readings for one calendar day.
type IngestReadingsRequest struct {
	Quantities []QuantityReadingInput `json:"quantities" validate:"omitempty,max=10000,dive"`
	Sleep      []SleepSegmentInput    `json:"sleep" validate:"omitempty,max=1000,dive"`
	Aggregates *CachedAggregates      `json:"aggregates,omitempty"`
}

// IngestResult reports how a batch was absorbed.
// @Description Counts of readings accepted, skipped as duplicates, or ignored.
type IngestResult struct {
	Accepted   int `json:"accepted" example:"120"`
	Duplicates int `json:"duplicates" example:"2"`
	Ignored    int `json:"ignored" example:"0"`
	// Combined element count across all buffers after ingest
	Buffered int `json:"buffered" example:"845"`
}

// DeletionsRequest lists source identifiers deleted upstream.
// @Description Identifiers removed at the source.
type DeletionsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=10000,dive,required"`
}

// DeletionsResponse reports whether pruning changed the day's record.
type DeletionsResponse struct {
	Changed bool `json:"changed" example:"true"`
}

// SleepKind labels sleep segments in per-kind ingest counts.
const SleepKind SignalKind = "sleep"

// Absorb buffers a batch into f. Readings whose ID is already buffered count
// as duplicates. Unknown kinds and readings starting outside window are
// ignored; a zero window accepts any start. accepted is keyed by signal kind,
// with sleep segments under SleepKind. changed reports whether f was
// modified, and cached aggregates always count as a change.
func (f *DailyFlags) Absorb(req *IngestReadingsRequest, window Interval) (result IngestResult, accepted map[SignalKind]int, changed bool) {
	accepted = map[SignalKind]int{}
	seen := f.SampleIDs()
	inWindow := func(t time.Time) bool {
		return window.IsZero() || window.Contains(t)
	}

	for _, in := range req.Quantities {
		if !inWindow(in.Start) {
			result.Ignored++
			continue
		}
		if _, dup := seen[in.ID]; dup {
			result.Duplicates++
			continue
		}
		if !f.Append(in.ToSample(), in.Kind) {
			result.Ignored++
			continue
		}
		seen[in.ID] = struct{}{}
		accepted[in.Kind]++
		result.Accepted++
	}

	for _, in := range req.Sleep {
		if !inWindow(in.Start) {
			result.Ignored++
			continue
		}
		if _, dup := seen[in.ID]; dup || !f.AppendSleep(in.ToSegment()) {
			result.Duplicates++
			continue
		}
		seen[in.ID] = struct{}{}
		accepted[SleepKind]++
		result.Accepted++
	}

	changed = result.Accepted > 0
	if req.Aggregates != nil {
		f.SetAggregates(*req.Aggregates)
		changed = true
	}
	result.Buffered = f.Len()
	return result, accepted, changed
}
