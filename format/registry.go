package format

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Registry is an ordered set of named formatters. The zero Registry is
// empty and ready to use. A Registry is not safe for concurrent
// modification; build it before sharing it.
type Registry struct {
	order  []*Formatter
	byName map[string]*Formatter
}

// NewRegistry returns a Registry containing formatters, in order. Returns
// an error if any formatter is unnamed or a name repeats.
func NewRegistry(formatters ...*Formatter) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Formatter, len(formatters))}
	for _, f := range formatters {
		if err := r.Add(f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends f to r. Returns an error wrapping [ErrPattern] if f has no
// name or r already contains a formatter with the same name.
func (r *Registry) Add(f *Formatter) error {
	if f.name == "" {
		return fmt.Errorf("%w: registered formatters require a name", ErrPattern)
	}
	if _, ok := r.byName[f.name]; ok {
		return fmt.Errorf("%w: duplicate formatter name %q", ErrPattern, f.name)
	}
	if r.byName == nil {
		r.byName = map[string]*Formatter{}
	}
	r.order = append(r.order, f)
	r.byName[f.name] = f
	return nil
}

// Get returns the formatter named name, or false if r has none.
func (r *Registry) Get(name string) (*Formatter, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// Formatters returns the formatters in r in declared order.
func (r *Registry) Formatters() []*Formatter {
	return slices.Clone(r.order)
}

// Names returns the names of the formatters in r, sorted.
func (r *Registry) Names() []string {
	names := maps.Keys(r.byName)
	slices.Sort(names)
	return names
}

// Len returns the number of formatters in r.
func (r *Registry) Len() int { return len(r.order) }

// Canonical is the name of the formatter used to print values when no
// other formatter is specified.
const Canonical = "date_time"

// builtins lists the names and patterns of the default formatters in
// declared order. The order determines parse precedence.
var builtins = []struct{ name, pattern string }{
	{Canonical, "yyyy-MM-dd'T'HH:mm:ss.SSSXXX"},
	{"date_time_no_ms", "yyyy-MM-dd'T'HH:mm:ssXXX"},
	{"basic_date_time", "yyyyMMdd'T'HHmmss.SSSXX"},
	{"basic_date_time_no_ms", "yyyyMMdd'T'HHmmssXX"},
	{"date_hour_minute_second_ms", "yyyy-MM-dd'T'HH:mm:ss.SSS"},
	{"date_hour_minute_second", "yyyy-MM-dd'T'HH:mm:ss"},
	{"date_hour_minute", "yyyy-MM-dd'T'HH:mm"},
	{"mysql", "yyyy-MM-dd HH:mm:ss"},
	{"rfc822", "EEE, dd MMM yyyy HH:mm:ss Z"},
	{"date", "yyyy-MM-dd"},
	{"basic_date", "yyyyMMdd"},
	{"year_month", "yyyy-MM"},
	{"year", "yyyy"},
	{"time", "HH:mm:ss.SSSXXX"},
	{"time_no_ms", "HH:mm:ssXXX"},
	{"hour_minute_second", "HH:mm:ss"},
	{"hour_minute", "HH:mm"},
}

// Default returns a new Registry with the built-in ISO 8601 formatters:
// date_time, date_time_no_ms, basic_date_time, basic_date_time_no_ms,
// date_hour_minute_second_ms, date_hour_minute_second, date_hour_minute,
// mysql, rfc822, date, basic_date, year_month, year, time, time_no_ms,
// hour_minute_second, and hour_minute.
func Default() *Registry {
	r := &Registry{byName: make(map[string]*Formatter, len(builtins))}
	for _, b := range builtins {
		if err := r.Add(MustNew(b.name, b.pattern)); err != nil {
			panic(err)
		}
	}
	return r
}

// CanonicalFormatter returns the formatter used to print values when no
// other formatter is specified: "2006-01-02T15:04:05.000Z07:00".
func CanonicalFormatter() *Formatter {
	return MustNew(Canonical, builtins[0].pattern)
}
