package types

import (
	"context"
	"time"
)

// key is an unexported type for keys defined in this package. This prevents
// collisions with keys defined in other packages.
type key int

const (
	// tzKey is the key for time.Location values in Contexts. It is
	// unexported; clients use ContextWithTZ and TZFromContext instead of
	// using this key directly.
	tzKey key = iota

	// clockKey is the key for Clock values in Contexts. Clients use
	// ContextWithClock and ClockFromContext.
	clockKey
)

// ContextWithTZ returns a new Context that carries value tz. Zone-less values
// converted to a [ZonedDateTime] are interpreted in this zone.
func ContextWithTZ(ctx context.Context, tz *time.Location) context.Context {
	if tz == nil {
		return ctx
	}
	return context.WithValue(ctx, tzKey, tz)
}

// TZFromContext returns the time.Location value stored in ctx or time.UTC.
func TZFromContext(ctx context.Context) *time.Location {
	tz, ok := ctx.Value(tzKey).(*time.Location)
	if ok {
		return tz
	}
	return time.UTC
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the Clock backed by [time.Now].
func SystemClock() Clock { return systemClock{} }

// FixedClock is a Clock that always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// ContextWithClock returns a new Context that carries clock. Every "now"
// computation made with the returned Context reads clock instead of the wall
// clock. The override is scoped to the Context, so unrelated callers in the
// same process are unaffected.
func ContextWithClock(ctx context.Context, clock Clock) context.Context {
	if clock == nil {
		return ctx
	}
	return context.WithValue(ctx, clockKey, clock)
}

// ContextAt returns a new Context in which the current instant is fixed at t.
func ContextAt(ctx context.Context, t time.Time) context.Context {
	return ContextWithClock(ctx, FixedClock(t))
}

// ClockFromContext returns the Clock stored in ctx or the system clock.
func ClockFromContext(ctx context.Context) Clock {
	if clock, ok := ctx.Value(clockKey).(Clock); ok {
		return clock
	}
	return systemClock{}
}

// Now returns the current instant according to the clock in ctx, displayed in
// the time zone in ctx.
func Now(ctx context.Context) *ZonedDateTime {
	return &ZonedDateTime{ClockFromContext(ctx).Now().In(TZFromContext(ctx))}
}
