package models

import (
	"fmt"
	"sort"
	"time"
)

// Reading is a single vital-sign sample. Values are copied, never shared.
type Reading struct {
	Timestamp time.Time  `json:"timestamp" yaml:"timestamp"`
	Type      SensorType `json:"type" yaml:"type"`
	Value     float64    `json:"value" yaml:"value"`
}

func (r Reading) String() string {
	return fmt.Sprintf("Reading(timestamp=%s, type=%s, value=%g)",
		r.Timestamp.Format("2006-01-02 15:04:05"), r.Type, r.Value)
}

// WithTimestamp returns a copy of r stamped with t.
func (r Reading) WithTimestamp(t time.Time) Reading {
	r.Timestamp = t
	return r
}

// Resampled maps each sensor type to one reading per interval, ascending.
type Resampled map[SensorType][]Reading

// Types returns the sensor types present in r in SensorTypes order,
// followed by any unrecognised types in numeric order.
func (r Resampled) Types() []SensorType {
	out := make([]SensorType, 0, len(r))
	for _, t := range SensorTypes {
		if _, ok := r[t]; ok {
			out = append(out, t)
		}
	}
	var extra []SensorType
	for t := range r {
		if !t.IsValid() {
			extra = append(extra, t)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Len is the total number of buckets across all sensor types.
func (r Resampled) Len() int {
	n := 0
	for _, series := range r {
		n += len(series)
	}
	return n
}
