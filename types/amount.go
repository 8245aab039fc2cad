package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unit identifies a unit of time used to view an amount.
type Unit int

// Units of time, from smallest to largest.
const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

//nolint:gochecknoglobals
var unitNames = [...]string{
	"nanos", "micros", "millis", "seconds", "minutes", "hours",
	"days", "weeks", "months", "years",
}

// String returns the name of the unit.
func (u Unit) String() string {
	if u < Nanosecond || u > Year {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// ParseUnit returns the Unit named by name, which may be singular or plural.
func ParseUnit(name string) (Unit, error) {
	name = strings.ToLower(name)
	for i, n := range unitNames {
		if name == n || name+"s" == n {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrType, name)
}

// standard returns the fixed length of u. Days are treated as 24 hours.
func (u Unit) standard() time.Duration {
	switch u {
	case Nanosecond:
		return time.Nanosecond
	case Microsecond:
		return time.Microsecond
	case Millisecond:
		return time.Millisecond
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	case Day:
		return 24 * time.Hour
	case Week, Month, Year:
		return 0
	}
	return 0
}

// Amount is a quantity of time that can be added to or subtracted from a
// date or time value. It is implemented only by [Period] and [Duration].
type Amount interface {
	fmt.Stringer
	amount()
}

// Period is a calendar-relative amount. Adding a Period moves the calendar
// fields of a value, so its effect depends on month lengths and time zone
// transitions at the anchor.
type Period struct {
	Years  int
	Months int
	Weeks  int
	Days   int
}

func (Period) amount() {}

// Years returns a Period of n years.
func Years(n int) Period { return Period{Years: n} }

// Months returns a Period of n months.
func Months(n int) Period { return Period{Months: n} }

// Weeks returns a Period of n weeks.
func Weeks(n int) Period { return Period{Weeks: n} }

// Days returns a Period of n days.
func Days(n int) Period { return Period{Days: n} }

// Plus returns the sum of p and q.
func (p Period) Plus(q Period) Period {
	return Period{
		Years:  p.Years + q.Years,
		Months: p.Months + q.Months,
		Weeks:  p.Weeks + q.Weeks,
		Days:   p.Days + q.Days,
	}
}

// Negate returns p with every field negated.
func (p Period) Negate() Period {
	return Period{-p.Years, -p.Months, -p.Weeks, -p.Days}
}

// IsZero returns true if every field of p is zero.
func (p Period) IsZero() bool {
	return p == Period{}
}

// AddTo adds p to t. Years and months are added first, clamping the day of
// month with [AddMonths]; weeks and days are then added to the calendar date
// in the location of t.
func (p Period) AddTo(t time.Time) time.Time {
	t = AddMonths(t, p.Years*12+p.Months)
	if days := p.Weeks*7 + p.Days; days != 0 {
		t = t.AddDate(0, 0, days)
	}
	return t
}

// In returns the number of whole u units in p. Periods that contain years or
// months have no fixed length and return an error for every unit. Requests
// for weeks, months or years also return an error: a calendar period is
// never approximated by a fixed number of days.
func (p Period) In(u Unit) (int64, error) {
	if p.Years != 0 || p.Months != 0 {
		return 0, fmt.Errorf(
			"%w: cannot convert %v to %v because months and years vary in length",
			ErrUnsupported, p, u,
		)
	}
	switch u {
	case Week, Month, Year:
		return 0, fmt.Errorf("%w: cannot convert period %v to %v", ErrUnsupported, p, u)
	case Nanosecond, Microsecond, Millisecond, Second, Minute, Hour, Day:
		days := int64(p.Weeks)*7 + int64(p.Days)
		return days * int64(Day.standard()/u.standard()), nil
	}
	return 0, fmt.Errorf("%w: unknown unit %v", ErrUnsupported, u)
}

// String returns the ISO 8601 representation of p, such as "P1Y2M3W4D".
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	for _, f := range []struct {
		n int
		d byte
	}{{p.Years, 'Y'}, {p.Months, 'M'}, {p.Weeks, 'W'}, {p.Days, 'D'}} {
		if f.n != 0 {
			b.WriteString(strconv.Itoa(f.n))
			b.WriteByte(f.d)
		}
	}
	return b.String()
}

// Duration is a fixed amount of elapsed time, independent of calendar
// context.
type Duration time.Duration

func (Duration) amount() {}

// Hours returns a Duration of n hours.
func Hours(n int64) Duration { return Duration(time.Duration(n) * time.Hour) }

// Minutes returns a Duration of n minutes.
func Minutes(n int64) Duration { return Duration(time.Duration(n) * time.Minute) }

// Seconds returns a Duration of n seconds.
func Seconds(n int64) Duration { return Duration(time.Duration(n) * time.Second) }

// Millis returns a Duration of n milliseconds.
func Millis(n int64) Duration { return Duration(time.Duration(n) * time.Millisecond) }

// Nanos returns a Duration of n nanoseconds.
func Nanos(n int64) Duration { return Duration(n) }

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Negate returns -d.
func (d Duration) Negate() Duration { return -d }

// AddTo adds d to the instant t.
func (d Duration) AddTo(t time.Time) time.Time { return t.Add(time.Duration(d)) }

// In returns the number of whole u units in d, truncated toward zero. Days
// are 24 hours. Weeks, months, and years are not fixed lengths of time, so
// requests for them return an error.
func (d Duration) In(u Unit) (int64, error) {
	switch u {
	case Week, Month, Year:
		return 0, fmt.Errorf("%w: cannot convert duration %v to %v", ErrUnsupported, d, u)
	case Nanosecond, Microsecond, Millisecond, Second, Minute, Hour, Day:
		return int64(time.Duration(d) / u.standard()), nil
	}
	return 0, fmt.Errorf("%w: unknown unit %v", ErrUnsupported, u)
}

// String returns the string representation of d, such as "1h2m3s".
func (d Duration) String() string { return time.Duration(d).String() }
