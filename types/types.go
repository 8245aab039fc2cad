// Package types provides the immutable date and time values used throughout
// tempo: a zoned instant, a local date-time, a local date, a local time and a
// year-month, plus the calendar and fixed amounts that can be added to them.
//
// Every value embeds a [time.Time] and delegates calendar computation to the
// time package. A nil pointer to any of the value types is the absent value.
package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrType wraps errors returned by the types package.
	ErrType = errors.New("type")

	// ErrUnsupported wraps errors for operations or unit conversions a value
	// cannot perform, such as a week view of a fixed duration.
	ErrUnsupported = errors.New("unsupported")
)

// secondsPerHour contains the number of seconds in an hour (excluding leap
// seconds).
const secondsPerHour = 60 * 60

// Temporal defines the interface for all date and time value types.
type Temporal interface {
	// GoTime returns the underlying time.Time object.
	GoTime() time.Time

	// String returns the canonical string representation of the value.
	String() string
}

// quote wraps t formatted with layout in double quotes for JSON output.
func quote(t time.Time, layout string) []byte {
	b := make([]byte, 0, len(layout)+len(`""`))
	b = append(b, '"')
	b = t.AppendFormat(b, layout)
	b = append(b, '"')
	return b
}

// unquote parses JSON string data with layout.
func unquote(data []byte, layout string) (time.Time, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return time.Time{}, fmt.Errorf("%w: Cannot parse %s as %q", ErrType, data, layout)
	}
	tim, err := time.Parse(layout, string(data[1:len(data)-1]))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: Cannot parse %s as %q", ErrType, data, layout)
	}
	return tim, nil
}
