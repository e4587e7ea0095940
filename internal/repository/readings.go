package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"VitalSampler/internal/domain/models"
	"VitalSampler/pkg/util"
	"VitalSampler/pkg/validate"
)

func init() {
	validate.RegisterValidation("sensortype", func(v string) bool {
		_, err := models.ParseSensorType(v)
		return err == nil
	})
	validate.RegisterValidation("readingtime", func(v string) bool {
		_, ok := util.ParseTime(v)
		return ok
	})
}

type readingRecord struct {
	Timestamp string   `yaml:"timestamp" validate:"required,readingtime"`
	Type      string   `yaml:"type" validate:"required,sensortype"`
	Value     *float64 `yaml:"value" validate:"required"`
}

type readingFile struct {
	Readings []readingRecord `yaml:"readings" validate:"dive"`
}

// FileSource reads readings from a YAML or JSON document of the form
// {"readings": [{"timestamp": ..., "type": ..., "value": ...}]}.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return filepath.Base(s.path) }

func (s *FileSource) Load() ([]models.Reading, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read readings: %w", err)
	}
	return DecodeReadings(b)
}

// DecodeReadings parses and validates a readings document.
func DecodeReadings(b []byte) ([]models.Reading, error) {
	var doc readingFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse readings: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("validate readings: %w", err)
	}

	out := make([]models.Reading, 0, len(doc.Readings))
	for _, rec := range doc.Readings {
		ts, _ := util.ParseTime(rec.Timestamp)
		typ, _ := models.ParseSensorType(rec.Type)
		out = append(out, models.Reading{Timestamp: ts, Type: typ, Value: *rec.Value})
	}
	return out, nil
}

// DemoSource serves the fixed health-monitor batch used by the CLI when no
// input file is given.
type DemoSource struct{}

func NewDemoSource() *DemoSource { return &DemoSource{} }

func (DemoSource) Name() string { return "demo" }

func (DemoSource) Load() ([]models.Reading, error) {
	at := func(h, m, s int) time.Time {
		return time.Date(2017, 1, 13, h, m, s, 0, time.UTC)
	}
	return []models.Reading{
		{Timestamp: at(10, 4, 45), Type: models.SensorTemp, Value: 35.79},
		{Timestamp: at(10, 1, 18), Type: models.SensorSpO2, Value: 98.78},
		{Timestamp: at(10, 9, 7), Type: models.SensorTemp, Value: 35.01},
		{Timestamp: at(10, 3, 34), Type: models.SensorSpO2, Value: 96.49},
		{Timestamp: at(10, 2, 1), Type: models.SensorTemp, Value: 35.82},
		{Timestamp: at(10, 5, 0), Type: models.SensorSpO2, Value: 97.17},
		{Timestamp: at(10, 5, 1), Type: models.SensorSpO2, Value: 95.08},
	}, nil
}
