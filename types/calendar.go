package types

import (
	"fmt"
	"time"
)

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	// Day zero of the following month is the last day of month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths adds n months to t, keeping the time of day and location. When
// the day of month of t does not exist in the resulting month, it is clamped
// to the last day of that month, so that January 31 plus one month is the
// last day of February rather than a day in March.
func AddMonths(t time.Time, n int) time.Time {
	if n == 0 {
		return t
	}
	year, month, day := t.Date()
	months := int(month) - 1 + n
	year += months / 12
	months %= 12
	if months < 0 {
		months += 12
		year--
	}
	month = time.Month(months + 1)
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return time.Date(
		year, month, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		t.Location(),
	)
}

// fields holds calendar fields in the order year, month, day, hour, minute,
// second, nanosecond.
type fields [7]int

// field names used in error messages.
//
//nolint:gochecknoglobals
var fieldNames = [...]string{"year", "month", "day", "hour", "minute", "second", "nanosecond"}

// fieldsFrom returns the fields for year followed by the optional month, day,
// hour, minute, second, and nanosecond values in rest. Month and day default
// to 1, the time fields to 0. Returns an error if any value is out of range
// or if there are too many values.
func fieldsFrom(year int, rest []int) (fields, error) {
	f := fields{year, 1, 1}
	if len(rest) > len(f)-1 {
		return f, fmt.Errorf(
			"%w: expected at most %d fields but got %d",
			ErrType, len(f), len(rest)+1,
		)
	}
	copy(f[1:], rest)
	return f, f.validate()
}

// validate returns an error if any field is out of range for the calendar.
func (f fields) validate() error {
	limits := [...][2]int{
		{f[0], f[0]}, // any year
		{1, 12},
		{1, 31},
		{0, 23},
		{0, 59},
		{0, 59},
		{0, int(time.Second) - 1},
	}
	if f[1] >= 1 && f[1] <= 12 {
		limits[2][1] = DaysIn(f[0], time.Month(f[1]))
	}
	for i, v := range f {
		if v < limits[i][0] || v > limits[i][1] {
			return fmt.Errorf(
				"%w: %v %d out of range [%d, %d]",
				ErrType, fieldNames[i], v, limits[i][0], limits[i][1],
			)
		}
	}
	return nil
}

// in returns the time.Time for f in loc.
func (f fields) in(loc *time.Location) time.Time {
	return time.Date(f[0], time.Month(f[1]), f[2], f[3], f[4], f[5], f[6], loc)
}

// clockNanos returns the nanoseconds elapsed since midnight on the wall
// clock of t.
func clockNanos(t time.Time) int64 {
	hour, minute, sec := t.Clock()
	return int64(hour)*int64(time.Hour) +
		int64(minute)*int64(time.Minute) +
		int64(sec)*int64(time.Second) +
		int64(t.Nanosecond())
}
