// Package coerce converts between ZonedDateTime values and the many other
// representations of dates and times: time.Time, database/sql and pgx SQL
// types, epoch milliseconds, the zone-less types variants, and strings.
//
// Every conversion passes through [ToZoned]. Absent inputs, such as nil, nil
// pointers, SQL NULLs, and empty strings, coerce to nil without error, and
// every reverse conversion returns its absent value in turn.
package coerce

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/theory/tempo/format"
	"github.com/theory/tempo/types"
)

// ErrCoerce wraps errors for values that cannot be coerced.
var ErrCoerce = errors.New("coerce")

// ToZoned coerces v into a ZonedDateTime. Supported types:
//
//   - nil
//   - time.Time and *time.Time, keeping their locations
//   - sql.NullTime
//   - pgtype.Timestamptz, displayed in the zone in ctx
//   - pgtype.Timestamp and pgtype.Date, read in the zone in ctx
//   - pgtype.Time, on January 1, 1970 in the zone in ctx
//   - all types variants, with zone-less values read in the zone in ctx
//   - int, int32, int64, and json.Number, as milliseconds since the epoch
//   - string and []byte, parsed with the default formatters
//
// Returns nil and no error for absent values. Returns an error wrapping
// [ErrCoerce] for other types, infinite SQL values, and invalid numbers,
// and an error wrapping [format.ErrFormat] for unparseable strings.
func ToZoned(ctx context.Context, v any) (*types.ZonedDateTime, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return types.NewZonedDateTime(v), nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return types.NewZonedDateTime(*v), nil
	case sql.NullTime:
		if !v.Valid {
			return nil, nil
		}
		return types.NewZonedDateTime(v.Time), nil
	case pgtype.Timestamptz:
		if !v.Valid {
			return nil, nil
		}
		if v.InfinityModifier != pgtype.Finite {
			return nil, infinite(v.InfinityModifier, v)
		}
		return types.NewZonedDateTime(v.Time).ToTZ(ctx), nil
	case pgtype.Timestamp:
		if !v.Valid {
			return nil, nil
		}
		if v.InfinityModifier != pgtype.Finite {
			return nil, infinite(v.InfinityModifier, v)
		}
		return types.NewLocalDateTime(v.Time).ToZonedTZ(ctx), nil
	case pgtype.Date:
		if !v.Valid {
			return nil, nil
		}
		if v.InfinityModifier != pgtype.Finite {
			return nil, infinite(v.InfinityModifier, v)
		}
		return types.NewLocalDate(v.Time).ToZonedTZ(ctx), nil
	case pgtype.Time:
		if !v.Valid {
			return nil, nil
		}
		return onEpochDate(ctx, time.Duration(v.Microseconds)*time.Microsecond), nil
	case *types.ZonedDateTime:
		return v, nil
	case types.ZonedDateTime:
		return &v, nil
	case types.LocalDateTime:
		return v.ToZonedTZ(ctx), nil
	case types.LocalDate:
		return v.ToZonedTZ(ctx), nil
	case types.YearMonth:
		return v.FirstDay().ToZonedTZ(ctx), nil
	case types.LocalTime:
		return onEpochDate(ctx, time.Duration(clockNanos(v.Time))), nil
	case *types.LocalDateTime:
		if v == nil {
			return nil, nil
		}
		return v.ToZonedTZ(ctx), nil
	case *types.LocalDate:
		if v == nil {
			return nil, nil
		}
		return v.ToZonedTZ(ctx), nil
	case *types.YearMonth:
		if v == nil {
			return nil, nil
		}
		return v.FirstDay().ToZonedTZ(ctx), nil
	case *types.LocalTime:
		if v == nil {
			return nil, nil
		}
		return onEpochDate(ctx, time.Duration(clockNanos(v.Time))), nil
	case int:
		return FromLong(int64(v)), nil
	case int32:
		return FromLong(int64(v)), nil
	case int64:
		return FromLong(v), nil
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: invalid epoch milliseconds %q", ErrCoerce, v.String())
		}
		return FromLong(ms), nil
	case string:
		return parse(ctx, v)
	case []byte:
		return parse(ctx, string(v))
	default:
		return nil, fmt.Errorf("%w: cannot coerce %T to a date/time", ErrCoerce, v)
	}
}

// FromLong returns the ZonedDateTime in UTC for ms milliseconds since the
// Unix epoch.
func FromLong(ms int64) *types.ZonedDateTime {
	return types.FromUnixMilli(ms)
}

// parse parses s with the default formatters. Empty strings are absent.
func parse(ctx context.Context, s string) (*types.ZonedDateTime, error) {
	if s == "" {
		return nil, nil
	}
	return format.Parse(ctx, s)
}

// onEpochDate returns the ZonedDateTime d after midnight on January 1, 1970
// in the zone in ctx.
func onEpochDate(ctx context.Context, d time.Duration) *types.ZonedDateTime {
	midnight := time.Date(1970, time.January, 1, 0, 0, 0, 0, types.TZFromContext(ctx))
	return types.NewZonedDateTime(midnight.Add(d))
}

// clockNanos returns the nanoseconds since midnight of the wall clock of t.
func clockNanos(t time.Time) int64 {
	hour, minute, sec := t.Clock()
	return (int64(hour)*60*60+int64(minute)*60+int64(sec))*int64(time.Second) + int64(t.Nanosecond())
}

// infinite returns the error for an infinite SQL value.
func infinite(mod pgtype.InfinityModifier, v any) error {
	return fmt.Errorf("%w: cannot coerce %v %T", ErrCoerce, mod, v)
}
