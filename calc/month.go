package calc

import (
	"fmt"
	"time"

	"github.com/theory/tempo/types"
)

// FirstDayOfMonth returns v moved to the first day of its month, keeping the
// time of day. Supported for ZonedDateTime, LocalDateTime, and LocalDate.
func FirstDayOfMonth[T types.Temporal](v T) (T, error) {
	return withDay("first_day_of_month", v, func(time.Time) int { return 1 })
}

// LastDayOfMonth returns v moved to the last day of its month, keeping the
// time of day. Supported for ZonedDateTime, LocalDateTime, and LocalDate.
func LastDayOfMonth[T types.Temporal](v T) (T, error) {
	return withDay("last_day_of_month", v, func(t time.Time) int {
		return types.DaysIn(t.Year(), t.Month())
	})
}

// withDay returns v with its day of month replaced by the result of day.
func withDay[T types.Temporal](op string, v T, day func(time.Time) int) (T, error) {
	var zero T
	k, err := variantOf(op, v)
	if err != nil {
		return zero, err
	}
	if !k.hasDay() {
		return zero, unsupported(op, v)
	}
	t := v.GoTime()
	t = time.Date(
		t.Year(), t.Month(), day(t),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		t.Location(),
	)
	return rewrap(k, v, t).(T), nil //nolint:forcetypeassert // same variant
}

// DaysInMonth returns the number of days in the month of v.
func DaysInMonth(v types.Temporal) (int, error) {
	return field("days_in_month", v, variant.hasDate, func(t time.Time) int {
		return types.DaysIn(t.Year(), t.Month())
	})
}

// Floor truncates v to unit u, zeroing every smaller field: the year floor is
// January 1 at midnight, the month floor the first of the month, the day
// floor midnight, and so on. Truncation is applied to the wall-clock fields
// in the location of v. Weeks are not supported, nor are units v does not
// carry, such as the hour of a LocalDate.
func Floor[T types.Temporal](v T, u types.Unit) (T, error) {
	var zero T
	k, err := variantOf("floor", v)
	if err != nil {
		return zero, err
	}

	switch {
	case u == types.Week, u < types.Nanosecond, u > types.Year,
		u < types.Day && !k.hasClock(),
		u == types.Day && !k.hasDay(),
		u > types.Day && !k.hasDate():
		return zero, fmt.Errorf(
			"%w: floor() to %v not supported for %T",
			types.ErrUnsupported, u, v,
		)
	}

	t := v.GoTime()
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	nsec := t.Nanosecond()
	switch u {
	case types.Year:
		month = time.January
		fallthrough
	case types.Month:
		day = 1
		fallthrough
	case types.Day:
		hour = 0
		fallthrough
	case types.Hour:
		minute = 0
		fallthrough
	case types.Minute:
		sec = 0
		fallthrough
	case types.Second:
		nsec = 0
	case types.Millisecond:
		nsec -= nsec % int(time.Millisecond)
	case types.Microsecond:
		nsec -= nsec % int(time.Microsecond)
	case types.Nanosecond, types.Week:
	}

	t = time.Date(year, month, day, hour, minute, sec, nsec, t.Location())
	return rewrap(k, v, t).(T), nil //nolint:forcetypeassert // same variant
}

// StartOfDay returns the first instant of the day of z in its time zone.
func StartOfDay(z *types.ZonedDateTime) *types.ZonedDateTime {
	year, month, day := z.Date()
	return types.NewZonedDateTime(time.Date(year, month, day, 0, 0, 0, 0, z.Location()))
}

// rewrap wraps t in a new value of variant k. v is returned for unknown
// variants.
func rewrap(k variant, v types.Temporal, t time.Time) types.Temporal {
	switch k {
	case zoned:
		return types.NewZonedDateTime(t)
	case localDateTime:
		return &types.LocalDateTime{Time: t}
	case localDate:
		return &types.LocalDate{Time: t}
	case localTime:
		return &types.LocalTime{Time: t}
	case yearMonth:
		return &types.YearMonth{Time: t}
	}
	return v
}
