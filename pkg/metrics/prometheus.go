package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric when no namespace is configured.
const DefaultNamespace = "vitalsampler"

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	readingsTotal   *prometheus.CounterVec
	bucketsTotal    *prometheus.CounterVec
	overwritesTotal *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	latency         *prometheus.HistogramVec
}

// New creates a Prometheus metrics recorder registered on reg.
func New(reg prometheus.Registerer, namespace string) *Recorder {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)
	return &Recorder{
		readingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "readings_total",
				Help:      "Total number of raw readings accepted for resampling",
			},
			[]string{"sensor"},
		),
		bucketsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "buckets_total",
				Help:      "Total number of interval buckets produced",
			},
			[]string{"sensor"},
		),
		overwritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "overwrites_total",
				Help:      "Readings replaced by a later reading in the same interval",
			},
			[]string{"sensor"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of operations in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordReadings counts raw readings for a sensor.
func (r *Recorder) RecordReadings(sensor string, n int) {
	r.readingsTotal.WithLabelValues(sensor).Add(float64(n))
}

// RecordBuckets counts produced interval buckets for a sensor.
func (r *Recorder) RecordBuckets(sensor string, n int) {
	r.bucketsTotal.WithLabelValues(sensor).Add(float64(n))
}

// RecordOverwrites counts readings dropped by last-write-wins.
func (r *Recorder) RecordOverwrites(sensor string, n int) {
	r.overwritesTotal.WithLabelValues(sensor).Add(float64(n))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
