package format

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/theory/tempo/types"
)

// Parse parses s with each of formatters in order and returns the first
// successful result. With no formatters it uses the [Default] set.
// Strings without a time zone are read in the formatter's zone or, if it has
// none, the zone in ctx (UTC by default). Each failed attempt is logged at
// trace level to the [zerolog] logger in ctx. Returns an error wrapping
// [ErrFormat] only if every formatter fails.
func Parse(ctx context.Context, s string, formatters ...*Formatter) (*types.ZonedDateTime, error) {
	if len(formatters) == 0 {
		formatters = defaults.order
	}
	log := zerolog.Ctx(ctx)
	def := types.TZFromContext(ctx)

	for _, f := range formatters {
		t, err := f.parse(s, def)
		if err == nil {
			log.Debug().Str("input", s).Str("formatter", f.name).Msg("parsed")
			return types.NewZonedDateTime(t), nil
		}
		log.Trace().Err(err).Str("input", s).Str("formatter", f.name).Msg("no match")
	}

	names := make([]string, len(formatters))
	for i, f := range formatters {
		names[i] = f.name
		if names[i] == "" {
			names[i] = f.pattern
		}
	}
	return nil, fmt.Errorf(
		"%w: cannot parse %q with %v",
		ErrFormat, s, strings.Join(names, ", "),
	)
}

// ParseWith parses s with the formatters in r named by names, in order.
// Returns an error wrapping [ErrFormat] if a name is not in r.
func ParseWith(ctx context.Context, r *Registry, s string, names ...string) (*types.ZonedDateTime, error) {
	formatters, err := r.lookup(names)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, s, formatters...)
}

// ParseLocal is like Parse but returns the wall-clock fields of the result
// as a LocalDateTime.
func ParseLocal(ctx context.Context, s string, formatters ...*Formatter) (*types.LocalDateTime, error) {
	z, err := Parse(ctx, s, formatters...)
	if err != nil {
		return nil, err
	}
	return z.ToLocalDateTime(), nil
}

// Unparse prints v with f. Zone-less values print their wall-clock fields;
// ZonedDateTime values print in the zone of f if it has one. A nil f uses
// the canonical formatter. Returns the empty string for absent values.
func Unparse(f *Formatter, v types.Temporal) string {
	if v == nil || isNil(v) {
		return ""
	}
	if f == nil {
		f = canonical
	}
	_, instant := v.(*types.ZonedDateTime)
	return f.format(v.GoTime(), instant)
}

// Format prints v with the canonical date_time formatter, as in
// "2024-06-24T10:17:32.000Z". Returns the empty string for absent values.
func Format(v types.Temporal) string {
	return Unparse(canonical, v)
}

var (
	// canonical is the shared canonical formatter.
	canonical = CanonicalFormatter()

	// defaults is the shared default set, never modified.
	defaults = Default()
)

// isNil returns true if v is a nil pointer to a known variant.
func isNil(v types.Temporal) bool {
	switch v := v.(type) {
	case *types.ZonedDateTime:
		return v == nil
	case *types.LocalDateTime:
		return v == nil
	case *types.LocalDate:
		return v == nil
	case *types.LocalTime:
		return v == nil
	case *types.YearMonth:
		return v == nil
	}
	return false
}

// lookup returns the formatters in r named by names.
func (r *Registry) lookup(names []string) ([]*Formatter, error) {
	formatters := make([]*Formatter, len(names))
	for i, name := range names {
		f, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown formatter %q", ErrFormat, name)
		}
		formatters[i] = f
	}
	return formatters, nil
}
