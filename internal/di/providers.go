package di

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"VitalSampler/internal/domain/repository"
	"VitalSampler/internal/domain/service"
	"VitalSampler/internal/handler/report"
	"VitalSampler/internal/services/sampling"
	"VitalSampler/internal/usecase"
	"VitalSampler/pkg/app"
	"VitalSampler/pkg/config"
	"VitalSampler/pkg/logger"
	"VitalSampler/pkg/metrics"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(logger.String("env", cfg.Environment)), nil
}

// ProvideRegistry creates a private Prometheus registry for one run.
func ProvideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry, cfg *config.Config) repository.Metrics {
	return metrics.New(reg, cfg.Metrics.Namespace)
}

// ProvideSampler creates the interval resampler.
func ProvideSampler(cfg *config.Config) (service.Sampler, error) {
	r, err := sampling.NewResampler(
		cfg.IntervalMinutes(),
		sampling.WithInPlaceSort(cfg.Sampling.InPlaceSort),
	)
	if err != nil {
		return nil, fmt.Errorf("resampler: %w", err)
	}
	return r, nil
}

// ProvideSampleUseCase creates the sampling use case.
func ProvideSampleUseCase(s service.Sampler, m repository.Metrics, l *logger.Logger) *usecase.SampleUseCase {
	return usecase.NewSampleUseCase(s, m, l)
}

// ProvidePrinter creates the report printer writing to out.
func ProvidePrinter(cfg *config.Config, out io.Writer) *report.Printer {
	return report.NewPrinter(out, cfg.Report.Format)
}

// ProvideApp creates the application runner.
func ProvideApp(
	cfg *config.Config,
	l *logger.Logger,
	uc *usecase.SampleUseCase,
	printer *report.Printer,
	reg *prometheus.Registry,
) *app.App {
	return app.New(l, uc, printer, reg, cfg.Metrics.Enabled)
}
