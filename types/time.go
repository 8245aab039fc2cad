package types

import (
	"fmt"
	"time"
)

// LocalTime represents a time of day without a date or time zone. The
// underlying time.Time is on January 1 of year 0 in UTC.
type LocalTime struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewLocalTime coerces src into a LocalTime with the wall-clock time of src.
func NewLocalTime(src time.Time) *LocalTime {
	return &LocalTime{time.Date(
		0, 1, 1,
		src.Hour(), src.Minute(), src.Second(), src.Nanosecond(),
		time.UTC,
	)}
}

// LocalTimeOf constructs the LocalTime for hour and the optional minute,
// second, and nanosecond values in rest. Returns an error if a value is out
// of range.
func LocalTimeOf(hour int, rest ...int) (*LocalTime, error) {
	const maxFields = 3
	if len(rest) > maxFields {
		return nil, fmt.Errorf(
			"%w: expected at most %d fields but got %d",
			ErrType, maxFields+1, len(rest)+1,
		)
	}
	f, err := fieldsFrom(0, append([]int{1, 1, hour}, rest...))
	if err != nil {
		return nil, err
	}
	return &LocalTime{f.in(time.UTC)}, nil
}

// GoTime returns the underlying time.Time object.
func (lt *LocalTime) GoTime() time.Time { return lt.Time }

// timeFormat represents the canonical string format for LocalTime values.
const timeFormat = "15:04:05.999999999"

// String returns the string representation of lt using the format
// "15:04:05.999999999".
func (lt *LocalTime) String() string {
	return lt.Time.Format(timeFormat)
}

// OnDate combines lt with d into a LocalDateTime.
func (lt *LocalTime) OnDate(d *LocalDate) *LocalDateTime {
	return &LocalDateTime{d.Time.Add(time.Duration(clockNanos(lt.Time)))}
}

// Compare compares lt with u. If lt is before u, it returns -1; if lt is
// after u, it returns +1; if they're the same, it returns 0.
func (lt *LocalTime) Compare(u time.Time) int {
	return lt.Time.Compare(u)
}

// MarshalJSON implements the json.Marshaler interface. The time is a quoted
// string using the "15:04:05.999999999" format.
func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return quote(lt.Time, timeFormat), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time must be a
// quoted string in the "15:04:05.999999999" format.
func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	tim, err := unquote(data, timeFormat)
	if err != nil {
		return err
	}
	*lt = *NewLocalTime(tim)
	return nil
}
