package sampling

import (
	"fmt"
	"sort"

	"VitalSampler/internal/domain/models"
)

// Option configures a Resampler.
type Option func(*Resampler)

// WithInPlaceSort makes Resample sort the caller's slice directly instead
// of a private copy. Callers that still need input order must not use it.
func WithInPlaceSort(enabled bool) Option {
	return func(r *Resampler) {
		r.inPlace = enabled
	}
}

// Resampler keeps the latest reading per (sensor type, interval).
// It holds only immutable configuration and is safe for concurrent use.
type Resampler struct {
	intervalMin int
	inPlace     bool
}

// NewResampler creates a Resampler with the given bucket width in minutes.
func NewResampler(intervalMin int, opts ...Option) (*Resampler, error) {
	if err := ValidateInterval(intervalMin); err != nil {
		return nil, err
	}
	r := &Resampler{intervalMin: intervalMin}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// IntervalMinutes returns the configured bucket width.
func (r *Resampler) IntervalMinutes() int { return r.intervalMin }

// Resample buckets readings with the default 5 minute width.
func Resample(readings []models.Reading) (models.Resampled, error) {
	r := &Resampler{intervalMin: DefaultIntervalMinutes}
	return r.Resample(readings)
}

// Resample sorts readings by their original timestamp (stable, so input
// order breaks ties), snaps each to its interval and keeps the last one
// seen per (type, interval).
func (r *Resampler) Resample(readings []models.Reading) (models.Resampled, error) {
	sampled := make(models.Resampled)
	if len(readings) == 0 {
		return sampled, nil
	}

	sorted := readings
	if !r.inPlace {
		sorted = make([]models.Reading, len(readings))
		copy(sorted, readings)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	for _, reading := range sorted {
		start, err := SnapToInterval(reading.Timestamp, r.intervalMin)
		if err != nil {
			return nil, fmt.Errorf("snap %s reading: %w", reading.Type, err)
		}
		snapped := reading.WithTimestamp(start)

		series, ok := sampled[reading.Type]
		if !ok {
			sampled[reading.Type] = []models.Reading{snapped}
			continue
		}

		last := len(series) - 1
		if series[last].Timestamp.Equal(start) {
			series[last] = snapped
			continue
		}

		sampled[reading.Type] = append(series, snapped)
	}

	return sampled, nil
}
