package domain

import "time"

// TimeInterval is a half-open time range [Start, End).
// The half-open semantics let back-to-back bookings share a boundary
// instant without counting as overlapping.
type TimeInterval struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// NewTimeInterval builds an interval, rejecting zero-length and inverted
// ranges.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching intervals (one ends exactly when the other starts) do not overlap.
func (i TimeInterval) Overlaps(o TimeInterval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Hours returns the interval length in hours, fractional hours allowed.
func (i TimeInterval) Hours() float64 {
	return i.End.Sub(i.Start).Hours()
}
