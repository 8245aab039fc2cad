package types

import (
	"fmt"
	"time"
)

// Interval represents the half-open span of time [Start, End).
type Interval struct {
	Start ZonedDateTime
	End   ZonedDateTime
}

// NewInterval returns the Interval from start to end. Returns an error if
// end is before start.
func NewInterval(start, end *ZonedDateTime) (*Interval, error) {
	if end.Before(start.Time) {
		return nil, fmt.Errorf(
			"%w: interval end %v is before start %v",
			ErrType, end, start,
		)
	}
	return &Interval{Start: *start, End: *end}, nil
}

// Duration returns the exact elapsed time between the start and end of iv.
func (iv *Interval) Duration() Duration {
	return Duration(iv.End.Sub(iv.Start.Time))
}

// Contains returns true if t falls within iv. The start is inclusive and the
// end exclusive.
func (iv *Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start.Time) && t.Before(iv.End.Time)
}

// Overlaps returns true if iv and other share any instant.
func (iv *Interval) Overlaps(other *Interval) bool {
	return iv.Start.Before(other.End.Time) && other.Start.Before(iv.End.Time)
}

// Abuts returns true if iv ends where other starts or other ends where iv
// starts.
func (iv *Interval) Abuts(other *Interval) bool {
	return iv.End.Equal(other.Start.Time) || other.End.Equal(iv.Start.Time)
}

// In returns the number of whole u units in iv. Unlike [Period] and
// [Duration], an Interval is anchored, so every unit is supported: days,
// weeks, months, and years are counted on the calendar in the location of
// the start, and smaller units are exact.
func (iv *Interval) In(u Unit) (int64, error) {
	switch u {
	case Year:
		return int64(iv.months() / 12), nil
	case Month:
		return int64(iv.months()), nil
	case Week:
		return int64(iv.days() / 7), nil
	case Day:
		return int64(iv.days()), nil
	case Nanosecond, Microsecond, Millisecond, Second, Minute, Hour:
		return int64(iv.End.Sub(iv.Start.Time) / u.standard()), nil
	}
	return 0, fmt.Errorf("%w: unknown unit %v", ErrUnsupported, u)
}

// months returns the number of whole calendar months in iv.
func (iv *Interval) months() int {
	start := iv.Start.Time
	end := iv.End.In(start.Location())
	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
	if months > 0 && AddMonths(start, months).After(end) {
		months--
	}
	return months
}

// days returns the number of whole calendar days in iv.
func (iv *Interval) days() int {
	start := iv.Start.Time
	end := iv.End.In(start.Location())
	const day = 24 * time.Hour
	days := int(NewLocalDate(end).Sub(NewLocalDate(start).Time) / day)
	if days > 0 && clockNanos(end) < clockNanos(start) {
		days--
	}
	return days
}

// String returns the ISO 8601 representation of iv, such as
// "2024-01-01T00:00:00Z/2024-02-01T00:00:00Z".
func (iv *Interval) String() string {
	return iv.Start.String() + "/" + iv.End.String()
}
