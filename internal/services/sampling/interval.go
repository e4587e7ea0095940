package sampling

import "time"

const (
	// DefaultIntervalMinutes is the bucket width used by Resample.
	DefaultIntervalMinutes = 5
	// MaxIntervalMinutes is the widest supported bucket. Snapping only
	// looks at minute-of-hour, so widths of an hour or more are rejected.
	// Widths that divide 60 give plain floor-plus-one-interval results.
	MaxIntervalMinutes = 59
)

// SnapToInterval returns the first interval boundary at or after t.
// A t that already sits on a boundary (zero seconds, minute divisible by
// intervalMin) is returned unchanged; anything else is floored to its
// interval start and moved forward by one interval. Boundaries restart at
// every hour, so for widths that do not divide 60 the last interval of the
// hour is cut short at the top of the next hour. For any width dividing 60,
// including the default 5, no interval is ever cut short.
//
// The arithmetic is done on instants rather than wall-clock fields, so a
// reading in a repeated DST hour still snaps forward from its own offset.
func SnapToInterval(t time.Time, intervalMin int) (time.Time, error) {
	if err := ValidateInterval(intervalMin); err != nil {
		return time.Time{}, err
	}

	if onBoundary(t, intervalMin) {
		return t, nil
	}

	hour := t.Add(-(time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())))
	minute := (t.Minute() / intervalMin) * intervalMin
	from := hour.Add(time.Duration(minute) * time.Minute)

	next := from.Add(time.Duration(intervalMin) * time.Minute)
	if nextHour := hour.Add(time.Hour); next.After(nextHour) {
		next = nextHour
	}
	return next.In(t.Location()), nil
}

func onBoundary(t time.Time, intervalMin int) bool {
	return t.Second() == 0 && t.Nanosecond() == 0 && t.Minute()%intervalMin == 0
}
