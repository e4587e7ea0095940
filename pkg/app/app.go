package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"VitalSampler/internal/domain/repository"
	"VitalSampler/internal/handler/report"
	"VitalSampler/internal/usecase"
	applogger "VitalSampler/pkg/logger"
)

// App runs one resampling batch from a source to the printer.
type App struct {
	log         *applogger.Logger
	uc          *usecase.SampleUseCase
	printer     *report.Printer
	gatherer    prometheus.Gatherer
	dumpMetrics bool
}

// New creates a new App instance with all dependencies.
func New(
	l *applogger.Logger,
	uc *usecase.SampleUseCase,
	printer *report.Printer,
	gatherer prometheus.Gatherer,
	dumpMetrics bool,
) *App {
	return &App{
		log:         l,
		uc:          uc,
		printer:     printer,
		gatherer:    gatherer,
		dumpMetrics: dumpMetrics,
	}
}

// Run samples everything src yields and prints the grouped result.
func (a *App) Run(src repository.ReadingSource) error {
	a.log.Info("sampling started", applogger.String("source", src.Name()))

	res, err := a.uc.SampleSource(src)
	if err != nil {
		a.log.Error("sampling failed", applogger.String("source", src.Name()), applogger.Error(err))
		return fmt.Errorf("sample: %w", err)
	}

	if err := a.printer.Print(res); err != nil {
		return fmt.Errorf("print report: %w", err)
	}

	if a.dumpMetrics {
		if err := a.printer.PrintMetrics(a.gatherer); err != nil {
			a.log.Warn("metrics dump failed", applogger.Error(err))
		}
	}

	sensors := make([]string, 0, len(res.Series))
	for _, typ := range res.Series.Types() {
		sensors = append(sensors, typ.String())
	}
	a.log.Info("sampling complete",
		applogger.String("source", res.Source),
		applogger.Int("interval_minutes", res.IntervalMinutes),
		applogger.Int("buckets", res.Count),
		applogger.Strings("sensors", sensors),
		applogger.Bool("metrics_dumped", a.dumpMetrics),
	)
	return nil
}
