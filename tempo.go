// Package tempo provides convenient construction, arithmetic, comparison,
// formatting, and coercion of dates and times on top of the standard
// library [time] package.
//
// The types live in the [types] package; [calc] operates on them, [format]
// prints and parses them, [coerce] converts them to and from other
// representations, and [dbtime] moves them in and out of databases. This
// package re-exports the most common entry points.
//
// Time zones and the current instant are carried by a [context.Context]:
// use [WithTZ] to set the zone for zone-less values and [At] to fix the
// clock, for example in tests.
package tempo

import (
	"context"
	"time"

	"github.com/theory/tempo/calc"
	"github.com/theory/tempo/coerce"
	"github.com/theory/tempo/format"
	"github.com/theory/tempo/types"
)

type (
	// ZonedDateTime is an instant displayed in a time zone.
	ZonedDateTime = types.ZonedDateTime

	// LocalDateTime is a date and time without a time zone.
	LocalDateTime = types.LocalDateTime

	// LocalDate is a calendar date without a time zone.
	LocalDate = types.LocalDate

	// LocalTime is a time of day without a date or time zone.
	LocalTime = types.LocalTime

	// YearMonth is a month of a year.
	YearMonth = types.YearMonth

	// Period is a calendar amount of years, months, weeks, and days.
	Period = types.Period

	// Duration is a fixed amount of elapsed time.
	Duration = types.Duration
)

// DateTime constructs a ZonedDateTime in UTC from year and the optional
// month, day, hour, minute, second, and nanosecond values in rest.
func DateTime(year int, rest ...int) (*ZonedDateTime, error) {
	return types.DateTime(year, rest...)
}

// WithTZ returns a copy of ctx that reads zone-less values in loc.
func WithTZ(ctx context.Context, loc *time.Location) context.Context {
	return types.ContextWithTZ(ctx, loc)
}

// At returns a copy of ctx in which the current instant is always t.
func At(ctx context.Context, t time.Time) context.Context {
	return types.ContextAt(ctx, t)
}

// Now returns the current instant in the time zone in ctx.
func Now(ctx context.Context) *ZonedDateTime {
	return calc.Now(ctx)
}

// Today returns the current date in the time zone in ctx.
func Today(ctx context.Context) *LocalDate {
	return calc.Today(ctx)
}

// FromLong returns the ZonedDateTime in UTC for ms milliseconds since the
// Unix epoch.
func FromLong(ms int64) *ZonedDateTime {
	return coerce.FromLong(ms)
}

// ToLong coerces v into milliseconds since the Unix epoch. Returns nil if v
// is absent.
func ToLong(ctx context.Context, v any) (*int64, error) {
	return coerce.ToLong(ctx, v)
}

// Parse parses s with the default formatters, or with the default
// formatters named by names, in order.
func Parse(ctx context.Context, s string, names ...string) (*ZonedDateTime, error) {
	if len(names) == 0 {
		return format.Parse(ctx, s)
	}
	return format.ParseWith(ctx, format.Default(), s, names...)
}

// Format prints v with the canonical date_time formatter, as in
// "2024-06-24T10:17:32.000Z". Returns the empty string for absent values.
func Format(v types.Temporal) string {
	return format.Format(v)
}
