package service

import "VitalSampler/internal/domain/models"

// Sampler buckets readings into fixed-width intervals, keeping the latest
// reading per (sensor type, interval).
type Sampler interface {
	Resample(readings []models.Reading) (models.Resampled, error)
	IntervalMinutes() int
}
