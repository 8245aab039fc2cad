// Package calc provides field access, comparison, and arithmetic over the
// date and time values in the types package.
//
// Every function dispatches on the concrete variant of its argument:
// [types.ZonedDateTime], [types.LocalDateTime], [types.LocalDate],
// [types.LocalTime], or [types.YearMonth]. Operations that make no sense for
// a variant, such as the hour of a date, return an error wrapping
// [types.ErrUnsupported].
package calc

import (
	"errors"
	"fmt"

	"github.com/theory/tempo/types"
)

var (
	// ErrInvalid wraps errors for values that are not a known date or time
	// variant, or that are absent.
	ErrInvalid = errors.New("invalid")

	// ErrIncomparable wraps errors for comparisons between variants that
	// cannot be compared.
	ErrIncomparable = errors.New("incomparable")
)

// variant identifies the concrete type of a types.Temporal.
type variant int

const (
	zoned variant = iota
	localDateTime
	localDate
	localTime
	yearMonth
)

// variantOf returns the variant of v. Returns an error if v is a nil pointer
// or an unknown type. op names the operation for the error message.
func variantOf(op string, v types.Temporal) (variant, error) {
	switch v := v.(type) {
	case *types.ZonedDateTime:
		if v != nil {
			return zoned, nil
		}
	case *types.LocalDateTime:
		if v != nil {
			return localDateTime, nil
		}
	case *types.LocalDate:
		if v != nil {
			return localDate, nil
		}
	case *types.LocalTime:
		if v != nil {
			return localTime, nil
		}
	case *types.YearMonth:
		if v != nil {
			return yearMonth, nil
		}
	default:
		return 0, fmt.Errorf("%w: unrecognized date/time type %T", ErrInvalid, v)
	}
	return 0, fmt.Errorf("%w: %v() of absent %T", ErrInvalid, op, v)
}

// hasDate returns true if variant carries a calendar date.
func (k variant) hasDate() bool {
	return k != localTime
}

// hasDay returns true if variant carries a day of month.
func (k variant) hasDay() bool {
	return k != localTime && k != yearMonth
}

// hasClock returns true if variant carries a time of day.
func (k variant) hasClock() bool {
	return k == zoned || k == localDateTime || k == localTime
}

// unsupported returns an error reporting that op cannot be applied to v.
func unsupported(op string, v any) error {
	return fmt.Errorf("%w: %v() not supported for %T", types.ErrUnsupported, op, v)
}
