package calc

import (
	"fmt"

	"github.com/theory/tempo/types"
)

// Compare compares a and b. If a is before b, it returns -1; if a is after
// b, it returns +1; if they're the same, it returns 0.
//
// Values of the same variant are always comparable. A LocalDate also compares
// to a LocalDateTime at midnight of the date. ZonedDateTime values compare as
// instants, regardless of their time zones. All other pairs return an error
// wrapping [ErrIncomparable]; in particular, zoned values never compare to
// zone-less values without an explicit conversion.
func Compare(a, b types.Temporal) (int, error) {
	k1, err := variantOf("compare", a)
	if err != nil {
		return 0, err
	}
	k2, err := variantOf("compare", b)
	if err != nil {
		return 0, err
	}

	switch {
	case k1 == k2:
	case k1 == localDate && k2 == localDateTime, k1 == localDateTime && k2 == localDate:
	default:
		return 0, fmt.Errorf("%w: cannot compare %T to %T", ErrIncomparable, a, b)
	}
	return a.GoTime().Compare(b.GoTime()), nil
}

// Equal returns true if a and b represent the same value.
func Equal(a, b types.Temporal) (bool, error) {
	cmp, err := Compare(a, b)
	return err == nil && cmp == 0, err
}

// After returns true if a is after b.
func After(a, b types.Temporal) (bool, error) {
	cmp, err := Compare(a, b)
	return err == nil && cmp > 0, err
}

// Before returns true if a is before b.
func Before(a, b types.Temporal) (bool, error) {
	cmp, err := Compare(a, b)
	return err == nil && cmp < 0, err
}

// Latest returns the latest of vs. Returns an error if vs is empty or any
// pair is incomparable.
func Latest[T types.Temporal](vs ...T) (T, error) {
	return pick("latest", 1, vs)
}

// Earliest returns the earliest of vs. Returns an error if vs is empty or any
// pair is incomparable.
func Earliest[T types.Temporal](vs ...T) (T, error) {
	return pick("earliest", -1, vs)
}

// pick returns the value in vs that compares as want to every other value.
func pick[T types.Temporal](op string, want int, vs []T) (T, error) {
	var res T
	if len(vs) == 0 {
		return res, fmt.Errorf("%w: %v() requires at least one value", ErrInvalid, op)
	}
	res = vs[0]
	if _, err := variantOf(op, res); err != nil {
		return res, err
	}
	for _, v := range vs[1:] {
		cmp, err := Compare(v, res)
		if err != nil {
			return res, err
		}
		if cmp == want {
			res = v
		}
	}
	return res, nil
}
