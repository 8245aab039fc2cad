package calc

import (
	"context"
	"fmt"
	"time"

	"github.com/theory/tempo/types"
)

// ToTimeZone returns the instant z displayed in loc. Returns nil if z is
// nil.
func ToTimeZone(z *types.ZonedDateTime, loc *time.Location) *types.ZonedDateTime {
	if z == nil {
		return nil
	}
	return z.WithZone(loc)
}

// FromTimeZone returns the ZonedDateTime with the wall-clock fields of z in
// loc. Unlike [ToTimeZone], the result is generally a different instant.
// Returns nil if z is nil.
func FromTimeZone(z *types.ZonedDateTime, loc *time.Location) *types.ZonedDateTime {
	if z == nil {
		return nil
	}
	return z.WithFieldsIn(loc)
}

// DefaultTimeZone returns the time zone in ctx, or UTC.
func DefaultTimeZone(ctx context.Context) *time.Location {
	return types.TZFromContext(ctx)
}

// ToDefaultTimeZone returns the instant z displayed in the time zone in ctx.
// Returns nil if z is nil.
func ToDefaultTimeZone(ctx context.Context, z *types.ZonedDateTime) *types.ZonedDateTime {
	if z == nil {
		return nil
	}
	return z.ToTZ(ctx)
}

// ZoneForID returns the time zone for an IANA identifier such as
// "America/New_York". "UTC" and "" return UTC; "Local" the system zone.
func ZoneForID(id string) (*time.Location, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown time zone %q", ErrInvalid, id)
	}
	return loc, nil
}

// ZoneForOffset returns a fixed-offset time zone hours and minutes from UTC.
// Hours must be in [-23, 23] and minutes in [0, 59]; minutes follow the sign
// of hours. When hours is zero, minutes may be negative, in [-59, 59].
func ZoneForOffset(hours, minutes int) (*time.Location, error) {
	const maxHours, maxMinutes = 23, 59
	if hours < -maxHours || hours > maxHours {
		return nil, fmt.Errorf(
			"%w: offset hours %d out of range [%d, %d]",
			ErrInvalid, hours, -maxHours, maxHours,
		)
	}
	minMinutes := 0
	if hours == 0 {
		minMinutes = -maxMinutes
	}
	if minutes < minMinutes || minutes > maxMinutes {
		return nil, fmt.Errorf(
			"%w: offset minutes %d out of range [%d, %d]",
			ErrInvalid, minutes, minMinutes, maxMinutes,
		)
	}
	if hours < 0 {
		minutes = -minutes
	}
	return time.FixedZone("", hours*secondsPerHour+minutes*secondsPerMinute), nil
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
)

// ToOffsetZone returns z if its time zone is offset-only or the same instant
// in an offset-only zone with the current offset of z's zone. Returns nil if
// z is nil.
func ToOffsetZone(z *types.ZonedDateTime) *types.ZonedDateTime {
	if z == nil {
		return nil
	}
	if name, off := z.Zone(); name != "" {
		return z.WithZone(time.FixedZone("", off))
	}
	return z
}
