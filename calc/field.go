package calc

import (
	"time"

	"github.com/theory/tempo/types"
)

// field returns the result of get on the time.Time of v if check returns
// true for the variant of v.
func field[F any](op string, v types.Temporal, check func(variant) bool, get func(time.Time) F) (F, error) {
	var zero F
	k, err := variantOf(op, v)
	if err != nil {
		return zero, err
	}
	if !check(k) {
		return zero, unsupported(op, v)
	}
	return get(v.GoTime()), nil
}

// Year returns the year of v.
func Year(v types.Temporal) (int, error) {
	return field("year", v, variant.hasDate, time.Time.Year)
}

// Month returns the month of v.
func Month(v types.Temporal) (time.Month, error) {
	return field("month", v, variant.hasDate, time.Time.Month)
}

// Day returns the day of month of v.
func Day(v types.Temporal) (int, error) {
	return field("day", v, variant.hasDay, time.Time.Day)
}

// DayOfWeek returns the day of the week of v.
func DayOfWeek(v types.Temporal) (time.Weekday, error) {
	return field("day_of_week", v, variant.hasDay, time.Time.Weekday)
}

// DayOfYear returns the day of the year of v, in the range [1, 366].
func DayOfYear(v types.Temporal) (int, error) {
	return field("day_of_year", v, variant.hasDay, time.Time.YearDay)
}

// Hour returns the hour of the day of v.
func Hour(v types.Temporal) (int, error) {
	return field("hour", v, variant.hasClock, time.Time.Hour)
}

// Minute returns the minute of the hour of v.
func Minute(v types.Temporal) (int, error) {
	return field("minute", v, variant.hasClock, time.Time.Minute)
}

// Second returns the second of the minute of v.
func Second(v types.Temporal) (int, error) {
	return field("second", v, variant.hasClock, time.Time.Second)
}

// Milli returns the millisecond of the second of v.
func Milli(v types.Temporal) (int, error) {
	return field("milli", v, variant.hasClock, func(t time.Time) int {
		return t.Nanosecond() / int(time.Millisecond)
	})
}

// Nano returns the nanosecond of the second of v.
func Nano(v types.Temporal) (int, error) {
	return field("nano", v, variant.hasClock, time.Time.Nanosecond)
}
