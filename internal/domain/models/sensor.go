package models

import (
	"fmt"
	"strings"
)

// SensorType is the closed set of vital-sign channels a monitor reports.
type SensorType int

const (
	SensorUnknown SensorType = iota
	SensorSpO2
	SensorHR
	SensorTemp
)

// SensorTypes lists every valid sensor type in output order.
var SensorTypes = []SensorType{SensorSpO2, SensorHR, SensorTemp}

func (s SensorType) String() string {
	switch s {
	case SensorSpO2:
		return "SPO2"
	case SensorHR:
		return "HR"
	case SensorTemp:
		return "TEMP"
	default:
		return fmt.Sprintf("SensorType(%d)", int(s))
	}
}

// IsValid reports whether s is one of SensorTypes.
func (s SensorType) IsValid() bool {
	return s >= SensorSpO2 && s <= SensorTemp
}

// ParseSensorType accepts the canonical names case-insensitively.
func ParseSensorType(raw string) (SensorType, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SPO2":
		return SensorSpO2, nil
	case "HR":
		return SensorHR, nil
	case "TEMP":
		return SensorTemp, nil
	default:
		return SensorUnknown, fmt.Errorf("unknown sensor type %q", raw)
	}
}

func (s SensorType) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid sensor type %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *SensorType) UnmarshalText(b []byte) error {
	v, err := ParseSensorType(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
