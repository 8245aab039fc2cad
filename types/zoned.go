package types

import (
	"context"
	"time"
)

// ZonedDateTime represents an absolute instant displayed in a time zone. It
// is the canonical value through which all coercions pass.
type ZonedDateTime struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewZonedDateTime wraps src in a ZonedDateTime, preserving its location.
func NewZonedDateTime(src time.Time) *ZonedDateTime {
	return &ZonedDateTime{src}
}

// DateTime constructs a ZonedDateTime in UTC from year and the optional
// month, day, hour, minute, second, and nanosecond values in rest. Returns an
// error if a value is out of range.
func DateTime(year int, rest ...int) (*ZonedDateTime, error) {
	return DateTimeIn(time.UTC, year, rest...)
}

// DateTimeIn is like DateTime, but constructs the value in loc.
func DateTimeIn(loc *time.Location, year int, rest ...int) (*ZonedDateTime, error) {
	f, err := fieldsFrom(year, rest)
	if err != nil {
		return nil, err
	}
	return &ZonedDateTime{f.in(loc)}, nil
}

// FromUnixMilli returns the ZonedDateTime in UTC for ms milliseconds since
// the Unix epoch.
func FromUnixMilli(ms int64) *ZonedDateTime {
	return &ZonedDateTime{time.UnixMilli(ms).UTC()}
}

// GoTime returns the underlying time.Time object.
func (z *ZonedDateTime) GoTime() time.Time { return z.Time }

// zonedFormat represents the canonical string format for ZonedDateTime
// values.
const zonedFormat = time.RFC3339Nano

// String returns the string representation of z using the format
// "2006-01-02T15:04:05.999999999Z07:00".
func (z *ZonedDateTime) String() string {
	return z.Time.Format(zonedFormat)
}

// Compare compares the instant z with u. If z is before u, it returns -1; if
// z is after u, it returns +1; if they're the same, it returns 0. Locations
// do not contribute to the comparison.
func (z *ZonedDateTime) Compare(u time.Time) int {
	return z.Time.Compare(u)
}

// WithZone returns the same instant displayed in loc.
func (z *ZonedDateTime) WithZone(loc *time.Location) *ZonedDateTime {
	return &ZonedDateTime{z.Time.In(loc)}
}

// WithFieldsIn returns a ZonedDateTime with the same wall-clock fields as z
// in loc. The result is generally a different instant.
func (z *ZonedDateTime) WithFieldsIn(loc *time.Location) *ZonedDateTime {
	t := z.Time
	return &ZonedDateTime{time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		loc,
	)}
}

// ToLocalDateTime converts z to a LocalDateTime with the same wall-clock
// fields.
func (z *ZonedDateTime) ToLocalDateTime() *LocalDateTime {
	return NewLocalDateTime(z.Time)
}

// ToLocalDate converts z to the LocalDate on its wall clock.
func (z *ZonedDateTime) ToLocalDate() *LocalDate {
	return NewLocalDate(z.Time)
}

// ToLocalTime converts z to the LocalTime on its wall clock.
func (z *ZonedDateTime) ToLocalTime() *LocalTime {
	return NewLocalTime(z.Time)
}

// ToYearMonth converts z to the YearMonth on its wall clock.
func (z *ZonedDateTime) ToYearMonth() *YearMonth {
	return NewYearMonth(z.Time)
}

// ToTZ converts z to the time zone in ctx.
func (z *ZonedDateTime) ToTZ(ctx context.Context) *ZonedDateTime {
	return z.WithZone(TZFromContext(ctx))
}

// MarshalJSON implements the json.Marshaler interface. The time is a quoted
// string using the "2006-01-02T15:04:05.999999999Z07:00" format.
func (z ZonedDateTime) MarshalJSON() ([]byte, error) {
	return quote(z.Time, zonedFormat), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time must be a
// quoted string in the "2006-01-02T15:04:05.999999999Z07:00" format.
func (z *ZonedDateTime) UnmarshalJSON(data []byte) error {
	tim, err := unquote(data, zonedFormat)
	if err != nil {
		return err
	}
	*z = ZonedDateTime{Time: tim}
	return nil
}
