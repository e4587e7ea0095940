package usecase

import (
	"errors"
	"fmt"
	"math"
	"time"

	"VitalSampler/internal/domain/models"
	drepo "VitalSampler/internal/domain/repository"
	dservice "VitalSampler/internal/domain/service"
	"VitalSampler/pkg/logger"
)

// ErrInvalidReading is returned for readings the resampler cannot bucket.
var ErrInvalidReading = errors.New("invalid reading")

// SampleUseCase validates a batch of readings, resamples it and records
// per-sensor statistics.
type SampleUseCase struct {
	sampler dservice.Sampler
	metrics drepo.Metrics
	log     *logger.Logger
}

func NewSampleUseCase(sampler dservice.Sampler, metrics drepo.Metrics, log *logger.Logger) *SampleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SampleUseCase{sampler: sampler, metrics: metrics, log: log}
}

type SensorStats struct {
	Readings   int `yaml:"readings"`
	Buckets    int `yaml:"buckets"`
	Overwrites int `yaml:"overwrites"`
}

type SampleResult struct {
	Source          string                            `yaml:"source"`
	IntervalMinutes int                               `yaml:"interval_minutes"`
	Count           int                               `yaml:"count"`
	Stats           map[models.SensorType]SensorStats `yaml:"stats"`
	Series          models.Resampled                  `yaml:"series"`
}

// SampleSource loads a batch from src and samples it.
func (uc *SampleUseCase) SampleSource(src drepo.ReadingSource) (*SampleResult, error) {
	readings, err := src.Load()
	if err != nil {
		uc.metrics.RecordError("load")
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}

	res, err := uc.Sample(readings)
	if err != nil {
		return nil, err
	}
	res.Source = src.Name()
	return res, nil
}

// Sample resamples one batch. The caller's slice is left untouched unless
// the sampler was built to sort in place.
func (uc *SampleUseCase) Sample(readings []models.Reading) (*SampleResult, error) {
	for i, r := range readings {
		if err := checkReading(r); err != nil {
			uc.metrics.RecordError("invalid_reading")
			return nil, fmt.Errorf("reading %d: %w", i, err)
		}
	}

	start := time.Now()
	series, err := uc.sampler.Resample(readings)
	if err != nil {
		uc.metrics.RecordError("resample")
		uc.log.Error("resample failed",
			logger.Int("interval_minutes", uc.sampler.IntervalMinutes()),
			logger.Error(err),
		)
		return nil, fmt.Errorf("resample: %w", err)
	}
	uc.metrics.RecordLatency("resample", time.Since(start).Seconds())

	stats := make(map[models.SensorType]SensorStats, len(series))
	for _, r := range readings {
		s := stats[r.Type]
		s.Readings++
		stats[r.Type] = s
	}
	for _, typ := range series.Types() {
		s := stats[typ]
		s.Buckets = len(series[typ])
		s.Overwrites = s.Readings - s.Buckets
		stats[typ] = s

		uc.metrics.RecordReadings(typ.String(), s.Readings)
		uc.metrics.RecordBuckets(typ.String(), s.Buckets)
		uc.metrics.RecordOverwrites(typ.String(), s.Overwrites)
	}

	fields := []logger.Field{
		logger.Int("readings", len(readings)),
		logger.Int("buckets", series.Len()),
		logger.Any("stats", stats),
		logger.Duration("elapsed_ms", time.Since(start)),
	}
	if first, last, ok := timeSpan(readings); ok {
		fields = append(fields, logger.Time("first_reading", first), logger.Time("last_reading", last))
	}
	uc.log.Debug("batch resampled", fields...)

	return &SampleResult{
		IntervalMinutes: uc.sampler.IntervalMinutes(),
		Count:           series.Len(),
		Stats:           stats,
		Series:          series,
	}, nil
}

func checkReading(r models.Reading) error {
	if !r.Type.IsValid() {
		return fmt.Errorf("%w: unknown sensor type %d", ErrInvalidReading, int(r.Type))
	}
	if r.Timestamp.IsZero() {
		return fmt.Errorf("%w: %s reading has no timestamp", ErrInvalidReading, r.Type)
	}
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return fmt.Errorf("%w: %s value %v is not finite", ErrInvalidReading, r.Type, r.Value)
	}
	return nil
}

// timeSpan returns the earliest and latest original timestamps in readings.
func timeSpan(readings []models.Reading) (first, last time.Time, ok bool) {
	for i, r := range readings {
		if i == 0 || r.Timestamp.Before(first) {
			first = r.Timestamp
		}
		if i == 0 || r.Timestamp.After(last) {
			last = r.Timestamp
		}
	}
	return first, last, len(readings) > 0
}
