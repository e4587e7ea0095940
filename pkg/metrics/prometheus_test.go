package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg, "")

	r.RecordReadings("TEMP", 3)
	r.RecordReadings("TEMP", 2)
	r.RecordBuckets("TEMP", 2)
	r.RecordOverwrites("TEMP", 3)
	r.RecordError("interval")
	r.RecordLatency("resample", 0.002)

	if got := testutil.ToFloat64(r.readingsTotal.WithLabelValues("TEMP")); got != 5 {
		t.Fatalf("readings: expected 5, got %v", got)
	}
	if got := testutil.ToFloat64(r.bucketsTotal.WithLabelValues("TEMP")); got != 2 {
		t.Fatalf("buckets: expected 2, got %v", got)
	}
	if got := testutil.ToFloat64(r.overwritesTotal.WithLabelValues("TEMP")); got != 3 {
		t.Fatalf("overwrites: expected 3, got %v", got)
	}
	if got := testutil.ToFloat64(r.errorsTotal.WithLabelValues("interval")); got != 1 {
		t.Fatalf("errors: expected 1, got %v", got)
	}
	if n := testutil.CollectAndCount(r.latency); n != 1 {
		t.Fatalf("latency: expected 1 series, got %d", n)
	}
}

func TestRecorderNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg, "ward7")
	r.RecordReadings("HR", 1)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "ward7_readings_total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("namespaced metric not registered")
	}
}
