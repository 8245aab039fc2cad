package calc

import (
	"context"

	"github.com/theory/tempo/types"
)

// Now returns the current instant in the time zone in ctx, reading the clock
// in ctx. Use [types.ContextAt] to fix the current instant.
func Now(ctx context.Context) *types.ZonedDateTime {
	return types.Now(ctx)
}

// Today returns the current date in the time zone in ctx.
func Today(ctx context.Context) *types.LocalDate {
	return types.Now(ctx).ToLocalDate()
}

// TodayAtMidnight returns the start of the current day in the time zone in
// ctx.
func TodayAtMidnight(ctx context.Context) *types.ZonedDateTime {
	return StartOfDay(types.Now(ctx))
}

// Ago returns the current instant minus amounts.
func Ago(ctx context.Context, amounts ...types.Amount) (*types.ZonedDateTime, error) {
	return Minus(types.Now(ctx), amounts...)
}

// FromNow returns the current instant plus amounts.
func FromNow(ctx context.Context, amounts ...types.Amount) (*types.ZonedDateTime, error) {
	return Plus(types.Now(ctx), amounts...)
}

// Within returns true if z falls within iv.
func Within(iv *types.Interval, z *types.ZonedDateTime) bool {
	return iv.Contains(z.Time)
}

// IntervalFor returns the Interval from start plus amounts. Returns an error
// if the amounts move the end before start.
func IntervalFor(start *types.ZonedDateTime, amounts ...types.Amount) (*types.Interval, error) {
	end, err := Plus(start, amounts...)
	if err != nil {
		return nil, err
	}
	return types.NewInterval(start, end)
}
