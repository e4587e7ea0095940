package repository

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"VitalSampler/internal/domain/models"
	"VitalSampler/pkg/validate"
)

func TestDecodeReadingsYAML(t *testing.T) {
	got, err := DecodeReadings([]byte(`
readings:
  - timestamp: "2017-01-13 10:04:45"
    type: TEMP
    value: 35.79
  - timestamp: 2017-01-13T10:01:18Z
    type: spo2
    value: 98.78
  - timestamp: "1484301748"
    type: HR
    value: 0
`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 readings, got %d", len(got))
	}
	want := models.Reading{Timestamp: time.Date(2017, 1, 13, 10, 4, 45, 0, time.UTC), Type: models.SensorTemp, Value: 35.79}
	if !got[0].Timestamp.Equal(want.Timestamp) || got[0].Type != want.Type || got[0].Value != want.Value {
		t.Fatalf("got %v want %v", got[0], want)
	}
	if got[1].Type != models.SensorSpO2 {
		t.Fatalf("expected SPO2, got %s", got[1].Type)
	}
	if got[2].Type != models.SensorHR || got[2].Value != 0 || got[2].Timestamp.Unix() != 1484301748 {
		t.Fatalf("unexpected third reading %v", got[2])
	}
}

func TestDecodeReadingsJSON(t *testing.T) {
	got, err := DecodeReadings([]byte(`{"readings":[{"timestamp":"2017-01-13T10:09:07Z","type":"TEMP","value":35.01}]}`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 1 || got[0].Value != 35.01 {
		t.Fatalf("unexpected readings %v", got)
	}
}

func TestDecodeReadingsValidation(t *testing.T) {
	_, err := DecodeReadings([]byte(`
readings:
  - timestamp: "not a time"
    type: TEMP
    value: 1
  - timestamp: "2017-01-13 10:04:45"
    type: BP
    value: 1
  - timestamp: "2017-01-13 10:04:45"
    type: HR
`))
	var verrs validate.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(verrs), verrs)
	}
	codes := []string{verrs[0].Code, verrs[1].Code, verrs[2].Code}
	if strings.Join(codes, ",") != "ERR_READINGTIME,ERR_SENSORTYPE,ERR_REQUIRED" {
		t.Fatalf("unexpected codes %v", codes)
	}
}

func TestDecodeReadingsEmpty(t *testing.T) {
	got, err := DecodeReadings([]byte("readings: []\n"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no readings, got %v", got)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	body := "readings:\n  - {timestamp: \"2017-01-13 10:04:45\", type: TEMP, value: 35.79}\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	src := NewFileSource(path)
	if src.Name() != "batch.yaml" {
		t.Fatalf("unexpected name %q", src.Name())
	}
	got, err := src.Load()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 1 || got[0].Type != models.SensorTemp {
		t.Fatalf("unexpected readings %v", got)
	}

	if _, err := NewFileSource(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDemoSource(t *testing.T) {
	got, err := NewDemoSource().Load()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("expected 7 demo readings, got %d", len(got))
	}
}
