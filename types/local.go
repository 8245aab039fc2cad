package types

import (
	"context"
	"time"
)

// LocalDateTime represents a date and time of day without a time zone. The
// underlying time.Time is always in UTC and only its fields are meaningful.
type LocalDateTime struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewLocalDateTime coerces src into a LocalDateTime with the wall-clock fields
// of src.
func NewLocalDateTime(src time.Time) *LocalDateTime {
	// Drop the zone but keep the fields (use UTC)
	if src.Location() != time.UTC {
		src = time.Date(
			src.Year(), src.Month(), src.Day(),
			src.Hour(), src.Minute(), src.Second(), src.Nanosecond(),
			time.UTC,
		)
	}
	return &LocalDateTime{src}
}

// LocalDateTimeOf constructs a LocalDateTime from year and the optional
// month, day, hour, minute, second, and nanosecond values in rest. Returns an
// error if a value is out of range.
func LocalDateTimeOf(year int, rest ...int) (*LocalDateTime, error) {
	f, err := fieldsFrom(year, rest)
	if err != nil {
		return nil, err
	}
	return &LocalDateTime{f.in(time.UTC)}, nil
}

// GoTime returns the underlying time.Time object.
func (ldt *LocalDateTime) GoTime() time.Time { return ldt.Time }

// localDateTimeFormat represents the canonical string format for
// LocalDateTime values.
const localDateTimeFormat = "2006-01-02T15:04:05.999999999"

// String returns the string representation of ldt using the format
// "2006-01-02T15:04:05.999999999".
func (ldt *LocalDateTime) String() string {
	return ldt.Time.Format(localDateTimeFormat)
}

// Compare compares ldt with u. If ldt is before u, it returns -1; if ldt is
// after u, it returns +1; if they're the same, it returns 0.
func (ldt *LocalDateTime) Compare(u time.Time) int {
	return ldt.Time.Compare(u)
}

// ToZoned returns the ZonedDateTime with the fields of ldt in loc.
func (ldt *LocalDateTime) ToZoned(loc *time.Location) *ZonedDateTime {
	return (&ZonedDateTime{ldt.Time}).WithFieldsIn(loc)
}

// ToZonedTZ returns the ZonedDateTime with the fields of ldt in the time zone
// in ctx.
func (ldt *LocalDateTime) ToZonedTZ(ctx context.Context) *ZonedDateTime {
	return ldt.ToZoned(TZFromContext(ctx))
}

// ToLocalDate converts ldt to its LocalDate.
func (ldt *LocalDateTime) ToLocalDate() *LocalDate {
	return NewLocalDate(ldt.Time)
}

// ToLocalTime converts ldt to its LocalTime.
func (ldt *LocalDateTime) ToLocalTime() *LocalTime {
	return NewLocalTime(ldt.Time)
}

// MarshalJSON implements the json.Marshaler interface. The time is a quoted
// string using the "2006-01-02T15:04:05.999999999" format.
func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	return quote(ldt.Time, localDateTimeFormat), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time must be a
// quoted string in the "2006-01-02T15:04:05.999999999" format.
func (ldt *LocalDateTime) UnmarshalJSON(data []byte) error {
	tim, err := unquote(data, localDateTimeFormat)
	if err != nil {
		return err
	}
	*ldt = LocalDateTime{Time: tim}
	return nil
}
