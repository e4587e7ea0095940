package app_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"VitalSampler/internal/di"
	"VitalSampler/internal/domain/models"
	"VitalSampler/internal/repository"
	"VitalSampler/internal/services/sampling"
	"VitalSampler/pkg/config"
)

type failingSource struct{}

func (failingSource) Load() ([]models.Reading, error) { return nil, errors.New("unreadable") }
func (failingSource) Name() string                    { return "failing" }

func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Logger.Level = "error"
	return cfg
}

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	a, err := di.InitializeApp(quietConfig(), &out)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := a.Run(repository.NewDemoSource()); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 report lines, got %d:\n%s", len(lines), out.String())
	}
	if strings.Contains(out.String(), "vitalsampler_") {
		t.Fatalf("metrics printed while disabled")
	}
}

func TestRunWithMetrics(t *testing.T) {
	cfg := quietConfig()
	cfg.Metrics.Enabled = true

	var out bytes.Buffer
	a, err := di.InitializeApp(cfg, &out)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := a.Run(repository.NewDemoSource()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), `vitalsampler_buckets_total{sensor="TEMP"} 2`) {
		t.Fatalf("expected metrics in output:\n%s", out.String())
	}
}

func TestRunSourceError(t *testing.T) {
	var out bytes.Buffer
	a, err := di.InitializeApp(quietConfig(), &out)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := a.Run(failingSource{}); err == nil {
		t.Fatalf("expected error")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no report, got %q", out.String())
	}
}

func TestInitializeAppRejectsBadInterval(t *testing.T) {
	cfg := quietConfig()
	cfg.SetIntervalMinutes(60)
	if _, err := di.InitializeApp(cfg, &bytes.Buffer{}); !errors.Is(err, sampling.ErrUnsupportedInterval) {
		t.Fatalf("expected ErrUnsupportedInterval, got %v", err)
	}
}
