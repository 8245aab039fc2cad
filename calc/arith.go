package calc

import (
	"fmt"

	"github.com/theory/tempo/types"
)

// Plus returns v with each of amounts added in order. A [types.Period] moves
// the calendar fields of v, clamping the day of month when the target month
// is shorter, so that January 31 plus one month is the last day of February.
// A [types.Duration] adds elapsed time.
//
// Not every amount applies to every variant: a LocalDate accepts only
// periods, a YearMonth only periods of years and months, and a LocalTime only
// durations, wrapping around midnight. Returns an error wrapping
// [types.ErrUnsupported] for other combinations.
func Plus[T types.Temporal](v T, amounts ...types.Amount) (T, error) {
	return apply("plus", v, amounts, false)
}

// Minus returns v with each of amounts subtracted in order. It follows the
// same rules as [Plus].
func Minus[T types.Temporal](v T, amounts ...types.Amount) (T, error) {
	return apply("minus", v, amounts, true)
}

// apply adds or, when negate is true, subtracts amounts from v.
func apply[T types.Temporal](op string, v T, amounts []types.Amount, negate bool) (T, error) {
	var res types.Temporal = v
	for _, amt := range amounts {
		if negate {
			amt = negated(amt)
		}
		var err error
		res, err = add(op, res, amt)
		if err != nil {
			var zero T
			return zero, err
		}
	}
	return res.(T), nil //nolint:forcetypeassert // add preserves the variant
}

// negated returns the negation of amt.
func negated(amt types.Amount) types.Amount {
	switch amt := amt.(type) {
	case types.Period:
		return amt.Negate()
	case types.Duration:
		return amt.Negate()
	}
	return amt
}

// add adds a single amount to v, returning a value of the same variant.
func add(op string, v types.Temporal, amt types.Amount) (types.Temporal, error) {
	k, err := variantOf(op, v)
	if err != nil {
		return nil, err
	}

	switch amt := amt.(type) {
	case types.Period:
		return addPeriod(op, k, v, amt)
	case types.Duration:
		return addDuration(op, k, v, amt)
	default:
		return nil, fmt.Errorf("%w: unrecognized amount type %T", ErrInvalid, amt)
	}
}

// addPeriod adds p to v of variant k.
func addPeriod(op string, k variant, v types.Temporal, p types.Period) (types.Temporal, error) {
	t := v.GoTime()
	switch k {
	case zoned:
		return types.NewZonedDateTime(p.AddTo(t)), nil
	case localDateTime:
		return &types.LocalDateTime{Time: p.AddTo(t)}, nil
	case localDate:
		return &types.LocalDate{Time: p.AddTo(t)}, nil
	case yearMonth:
		if p.Weeks != 0 || p.Days != 0 {
			return nil, fmt.Errorf(
				"%w: cannot %v %v to %T",
				types.ErrUnsupported, op, p, v,
			)
		}
		return &types.YearMonth{Time: p.AddTo(t)}, nil
	case localTime:
		if !p.IsZero() {
			return nil, fmt.Errorf(
				"%w: cannot %v %v to %T",
				types.ErrUnsupported, op, p, v,
			)
		}
		return v, nil
	}
	return nil, unsupported(op, v)
}

// addDuration adds d to v of variant k.
func addDuration(op string, k variant, v types.Temporal, d types.Duration) (types.Temporal, error) {
	t := v.GoTime()
	switch k {
	case zoned:
		return types.NewZonedDateTime(d.AddTo(t)), nil
	case localDateTime:
		return &types.LocalDateTime{Time: d.AddTo(t)}, nil
	case localTime:
		return types.NewLocalTime(d.AddTo(t)), nil
	case localDate, yearMonth:
		if d == 0 {
			return v, nil
		}
		return nil, fmt.Errorf(
			"%w: cannot %v duration %v to %T",
			types.ErrUnsupported, op, d, v,
		)
	}
	return nil, unsupported(op, v)
}

// Span returns the exact elapsed time from a to b, which must be of the same
// variant and carry a time of day. The result is negative when b is before a.
func Span(a, b types.Temporal) (types.Duration, error) {
	if _, err := Compare(a, b); err != nil {
		return 0, err
	}
	k, _ := variantOf("span", a)
	if !k.hasClock() {
		return 0, unsupported("span", a)
	}
	return types.Duration(b.GoTime().Sub(a.GoTime())), nil
}

// Between returns the calendar Period of whole years, months, and days from a
// to b. Both must be the same variant and carry a date; the result is
// negative when b is before a.
func Between(a, b types.Temporal) (types.Period, error) {
	if _, err := Compare(a, b); err != nil {
		return types.Period{}, err
	}
	k, _ := variantOf("between", a)
	if !k.hasDate() {
		return types.Period{}, unsupported("between", a)
	}

	start, end := a.GoTime(), b.GoTime()
	if end.Before(start) {
		p, err := Between(b, a)
		return p.Negate(), err
	}
	// Count fields on the wall clock of a.
	end = end.In(start.Location())

	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
	if months > 0 && types.AddMonths(start, months).After(end) {
		months--
	}
	anchor := types.AddMonths(start, months)
	days := 0
	for next := anchor.AddDate(0, 0, 1); !next.After(end); next = next.AddDate(0, 0, 1) {
		days++
	}
	return types.Period{Years: months / 12, Months: months % 12, Days: days}, nil
}
