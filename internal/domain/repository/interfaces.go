package repository

import "VitalSampler/internal/domain/models"

// ReadingSource yields a finite batch of raw readings.
type ReadingSource interface {
	Load() ([]models.Reading, error)
	Name() string
}

type Metrics interface {
	RecordReadings(sensor string, n int)
	RecordBuckets(sensor string, n int)
	RecordOverwrites(sensor string, n int)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
