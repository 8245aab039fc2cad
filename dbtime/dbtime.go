// Package dbtime reads and writes ZonedDateTime values through database/sql
// and pgx.
//
// [Time] implements [sql.Scanner] and [driver.Valuer], plus the pgx v5
// pgtype scanner and valuer interfaces for timestamptz, timestamp, and date
// columns. Column values pass through [coerce.ToZoned], so any driver that
// returns time.Time, strings, or epoch milliseconds works.
package dbtime

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/theory/tempo/coerce"
	"github.com/theory/tempo/types"
)

// ErrScan wraps errors for column values that cannot be scanned.
var ErrScan = errors.New("dbtime scan")

// Time is a nullable ZonedDateTime for database columns. Zone-less column
// values, such as timestamp and date, are read in Loc, or UTC if Loc is
// nil.
type Time struct {
	Zoned *types.ZonedDateTime
	Loc   *time.Location
}

// Interfaces Time implements.
var (
	_ sql.Scanner               = (*Time)(nil)
	_ driver.Valuer             = Time{}
	_ pgtype.TimestamptzScanner = (*Time)(nil)
	_ pgtype.TimestamptzValuer  = Time{}
	_ pgtype.TimestampScanner   = (*Time)(nil)
	_ pgtype.DateScanner        = (*Time)(nil)
	_ fmt.Stringer              = Time{}
)

// New returns a Time for z.
func New(z *types.ZonedDateTime) Time {
	return Time{Zoned: z}
}

// In returns a Time that reads zone-less column values in loc.
func In(loc *time.Location) *Time {
	return &Time{Loc: loc}
}

// Valid returns true if t is not NULL.
func (t Time) Valid() bool { return t.Zoned != nil }

// String returns the string representation of t, or "NULL".
func (t Time) String() string {
	if t.Zoned == nil {
		return "NULL"
	}
	return t.Zoned.String()
}

// context returns a context carrying the zone of t.
func (t *Time) context() context.Context {
	return types.ContextWithTZ(context.Background(), t.Loc)
}

// Scan implements sql.Scanner. NULL scans to a nil Zoned.
func (t *Time) Scan(src any) error {
	z, err := coerce.ToZoned(t.context(), src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScan, err)
	}
	t.Zoned = z
	return nil
}

// Value implements driver.Valuer, returning a time.Time in UTC or nil.
func (t Time) Value() (driver.Value, error) {
	if t.Zoned == nil {
		return nil, nil
	}
	return t.Zoned.UTC(), nil
}

// ScanTimestamptz implements pgtype.TimestamptzScanner.
func (t *Time) ScanTimestamptz(v pgtype.Timestamptz) error {
	return t.Scan(v)
}

// ScanTimestamp implements pgtype.TimestampScanner.
func (t *Time) ScanTimestamp(v pgtype.Timestamp) error {
	return t.Scan(v)
}

// ScanDate implements pgtype.DateScanner.
func (t *Time) ScanDate(v pgtype.Date) error {
	return t.Scan(v)
}

// TimestamptzValue implements pgtype.TimestamptzValuer.
func (t Time) TimestamptzValue() (pgtype.Timestamptz, error) {
	return coerce.ToSQLTimestamptz(context.Background(), t.Zoned)
}

// Param converts v into a database parameter: a time.Time in UTC, or nil
// if v is absent. v may be any value [coerce.ToZoned] accepts; zone-less
// values are read in the zone in ctx.
func Param(ctx context.Context, v any) (driver.Value, error) {
	z, err := coerce.ToZoned(ctx, v)
	if err != nil {
		return nil, err
	}
	return Time{Zoned: z}.Value()
}
