//go:build wireinject
// +build wireinject

package di

import (
	"io"

	"VitalSampler/pkg/app"
	"VitalSampler/pkg/config"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config, out io.Writer) (*app.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,

		// Sampling
		ProvideSampler,
		ProvideSampleUseCase,

		// Output
		ProvidePrinter,

		ProvideApp,
	)
	return &app.App{}, nil
}
