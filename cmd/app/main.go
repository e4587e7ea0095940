package main

import (
	"flag"
	"log"
	"os"

	"VitalSampler/internal/di"
	"VitalSampler/internal/domain/repository"
	irepo "VitalSampler/internal/repository"
	"VitalSampler/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path (empty for defaults)")
	inputPath := flag.String("input", "", "YAML/JSON readings file (defaults to the built-in demo batch)")
	format := flag.String("format", "", "report format override: text or yaml")
	withMetrics := flag.Bool("metrics", false, "print Prometheus metrics after the report")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *format != "" {
		cfg.Report.Format = *format
	}
	if *withMetrics {
		cfg.Metrics.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	var src repository.ReadingSource = irepo.NewDemoSource()
	if *inputPath != "" {
		src = irepo.NewFileSource(*inputPath)
	}

	if err := app.Run(src); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
