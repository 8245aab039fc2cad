package coerce

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/theory/tempo/format"
	"github.com/theory/tempo/types"
)

// ToTime coerces v into a time.Time. Returns nil if v is absent.
func ToTime(ctx context.Context, v any) (*time.Time, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return nil, err
	}
	t := z.Time
	return &t, nil
}

// ToLong coerces v into milliseconds since the Unix epoch. Returns nil if v
// is absent.
func ToLong(ctx context.Context, v any) (*int64, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return nil, err
	}
	ms := z.UnixMilli()
	return &ms, nil
}

// ToEpoch coerces v into whole seconds since the Unix epoch, truncating
// milliseconds toward zero. Returns nil if v is absent.
func ToEpoch(ctx context.Context, v any) (*int64, error) {
	ms, err := ToLong(ctx, v)
	if ms == nil {
		return nil, err
	}
	sec := *ms / 1000
	return &sec, nil
}

// ToLocalDate coerces v into the LocalDate of its wall clock. Returns nil if
// v is absent.
func ToLocalDate(ctx context.Context, v any) (*types.LocalDate, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return nil, err
	}
	return z.ToLocalDate(), nil
}

// ToLocalDateTime coerces v into a LocalDateTime with its wall-clock fields.
// Returns nil if v is absent.
func ToLocalDateTime(ctx context.Context, v any) (*types.LocalDateTime, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return nil, err
	}
	return z.ToLocalDateTime(), nil
}

// ToYearMonth coerces v into the YearMonth of its wall clock. Returns nil if
// v is absent.
func ToYearMonth(ctx context.Context, v any) (*types.YearMonth, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return nil, err
	}
	return z.ToYearMonth(), nil
}

// ToNullTime coerces v into a sql.NullTime, invalid if v is absent.
func ToNullTime(ctx context.Context, v any) (sql.NullTime, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return sql.NullTime{}, err
	}
	return sql.NullTime{Time: z.Time, Valid: true}, nil
}

// ToSQLDate coerces v into a SQL date of its wall clock, invalid if v is
// absent.
func ToSQLDate(ctx context.Context, v any) (pgtype.Date, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: z.ToLocalDate().Time, Valid: true}, nil
}

// ToSQLTimestamp coerces v into a SQL timestamp without time zone holding
// its wall-clock fields, invalid if v is absent.
func ToSQLTimestamp(ctx context.Context, v any) (pgtype.Timestamp, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return pgtype.Timestamp{}, err
	}
	return pgtype.Timestamp{Time: z.ToLocalDateTime().Time, Valid: true}, nil
}

// ToSQLTimestamptz coerces v into a SQL timestamp with time zone, invalid if
// v is absent.
func ToSQLTimestamptz(ctx context.Context, v any) (pgtype.Timestamptz, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return pgtype.Timestamptz{}, err
	}
	return pgtype.Timestamptz{Time: z.Time, Valid: true}, nil
}

// ToSQLTime coerces v into a SQL time of day of its wall clock, at
// microsecond precision. Invalid if v is absent.
func ToSQLTime(ctx context.Context, v any) (pgtype.Time, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return pgtype.Time{}, err
	}
	return pgtype.Time{
		Microseconds: clockNanos(z.Time) / int64(time.Microsecond),
		Valid:        true,
	}, nil
}

// ToString coerces v into a string printed by f or, if f is nil, the
// canonical date_time formatter. Returns the empty string if v is absent.
func ToString(ctx context.Context, v any, f *format.Formatter) (string, error) {
	z, err := ToZoned(ctx, v)
	if z == nil {
		return "", err
	}
	if f == nil {
		return format.Format(z), nil
	}
	return format.Unparse(f, z), nil
}
