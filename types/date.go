package types

import (
	"context"
	"time"
)

// LocalDate represents a calendar date without a time zone.
type LocalDate struct {
	time.Time
}

// NewLocalDate coerces src into a LocalDate.
func NewLocalDate(src time.Time) *LocalDate {
	// Convert result type to a date
	return &LocalDate{
		time.Date(src.Year(), src.Month(), src.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// LocalDateOf constructs the LocalDate for year, month, and day. Returns an
// error if the date does not exist.
func LocalDateOf(year int, month time.Month, day int) (*LocalDate, error) {
	f, err := fieldsFrom(year, []int{int(month), day})
	if err != nil {
		return nil, err
	}
	return &LocalDate{f.in(time.UTC)}, nil
}

// GoTime returns the underlying time.Time object.
func (d *LocalDate) GoTime() time.Time { return d.Time }

// dateFormat represents the canonical string format for LocalDate values.
const dateFormat = "2006-01-02"

// String returns the string representation of d.
func (d *LocalDate) String() string {
	return d.Format(dateFormat)
}

// ToLocalDateTime converts d to a LocalDateTime at midnight.
func (d *LocalDate) ToLocalDateTime() *LocalDateTime {
	return NewLocalDateTime(d.Time)
}

// ToZoned returns the start of day d in loc.
func (d *LocalDate) ToZoned(loc *time.Location) *ZonedDateTime {
	t := d.Time
	return &ZonedDateTime{
		time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc),
	}
}

// ToZonedTZ returns the start of day d in the time zone in ctx.
func (d *LocalDate) ToZonedTZ(ctx context.Context) *ZonedDateTime {
	return d.ToZoned(TZFromContext(ctx))
}

// ToYearMonth converts d to its YearMonth.
func (d *LocalDate) ToYearMonth() *YearMonth {
	return NewYearMonth(d.Time)
}

// Compare compares d with u. If d is before u, it returns -1; if d is after
// u, it returns +1; if they're the same, it returns 0.
func (d *LocalDate) Compare(u time.Time) int {
	return d.Time.Compare(u)
}

// MarshalJSON implements the json.Marshaler interface. The date is a quoted
// string in the "2006-01-02" format.
func (d LocalDate) MarshalJSON() ([]byte, error) {
	return quote(d.Time, dateFormat), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date must be a
// quoted string in the "2006-01-02" format.
func (d *LocalDate) UnmarshalJSON(data []byte) error {
	tim, err := unquote(data, dateFormat)
	if err != nil {
		return err
	}
	*d = *NewLocalDate(tim)
	return nil
}

// YearMonth represents a month of a year without a time zone. The underlying
// time.Time is midnight UTC on the first day of the month.
type YearMonth struct {
	time.Time
}

// NewYearMonth coerces src into a YearMonth.
func NewYearMonth(src time.Time) *YearMonth {
	return &YearMonth{
		time.Date(src.Year(), src.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
}

// YearMonthOf constructs the YearMonth for year and month. Returns an error
// if month is out of range.
func YearMonthOf(year int, month time.Month) (*YearMonth, error) {
	f, err := fieldsFrom(year, []int{int(month)})
	if err != nil {
		return nil, err
	}
	return &YearMonth{f.in(time.UTC)}, nil
}

// GoTime returns the underlying time.Time object.
func (ym *YearMonth) GoTime() time.Time { return ym.Time }

// yearMonthFormat represents the canonical string format for YearMonth
// values.
const yearMonthFormat = "2006-01"

// String returns the string representation of ym.
func (ym *YearMonth) String() string {
	return ym.Format(yearMonthFormat)
}

// FirstDay returns the first LocalDate of ym.
func (ym *YearMonth) FirstDay() *LocalDate {
	return &LocalDate{ym.Time}
}

// LastDay returns the last LocalDate of ym.
func (ym *YearMonth) LastDay() *LocalDate {
	return &LocalDate{ym.Time.AddDate(0, 0, ym.Days()-1)}
}

// Days returns the number of days in ym.
func (ym *YearMonth) Days() int {
	return DaysIn(ym.Year(), ym.Month())
}

// Compare compares ym with u. If ym is before u, it returns -1; if ym is
// after u, it returns +1; if they're the same, it returns 0.
func (ym *YearMonth) Compare(u time.Time) int {
	return ym.Time.Compare(u)
}

// MarshalJSON implements the json.Marshaler interface. The value is a quoted
// string in the "2006-01" format.
func (ym YearMonth) MarshalJSON() ([]byte, error) {
	return quote(ym.Time, yearMonthFormat), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The value must be
// a quoted string in the "2006-01" format.
func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	tim, err := unquote(data, yearMonthFormat)
	if err != nil {
		return err
	}
	*ym = YearMonth{Time: tim}
	return nil
}
