// Package format prints and parses date and time values with named
// formatters.
//
// A [Formatter] pairs a pattern, such as "yyyy-MM-dd'T'HH:mm:ss", with an
// optional time zone and locale. Patterns use java.time-style letters and
// compile to Go [time] layouts; raw Go layouts are accepted by [FromLayout].
// A [Registry] holds an ordered set of named formatters, and [Default]
// returns the built-in ISO 8601 set. [Parse] tries a list of formatters in
// order and returns the first success.
package format

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/smasher164/xid"
	"golang.org/x/text/language"
)

var (
	// ErrFormat wraps errors for strings that no formatter can parse.
	ErrFormat = errors.New("format")

	// ErrPattern wraps errors for invalid patterns and formatter names.
	ErrPattern = errors.New("pattern")

	// ErrLocale wraps errors for unknown or unsupported locales.
	ErrLocale = errors.New("locale")
)

// Formatter prints and parses date and time values with a single layout.
// Formatters are immutable; WithZone and WithLocale return copies.
type Formatter struct {
	name    string
	pattern string
	lay     *layout
	loc     *time.Location
	tag     language.Tag
	locale  monday.Locale
}

// New compiles pattern and returns a Formatter named name. The name must
// be empty or an identifier. Returns an error wrapping [ErrPattern] if
// either is invalid.
func New(name, pattern string) (*Formatter, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	lay, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Formatter{name: name, pattern: pattern, lay: lay}, nil
}

// MustNew is like New but panics on error.
func MustNew(name, pattern string) *Formatter {
	f, err := New(name, pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// FromLayout returns a Formatter named name that uses the Go layout
// directly, as in "2006-01-02 15:04:05".
func FromLayout(name, goLayout string) (*Formatter, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if goLayout == "" {
		return nil, fmt.Errorf("%w: empty layout", ErrPattern)
	}
	return &Formatter{name: name, pattern: goLayout, lay: inspect(goLayout)}, nil
}

// validName returns an error if name is neither empty nor an identifier.
func validName(name string) error {
	for i, r := range name {
		if r == '_' || (i == 0 && xid.Start(r)) || (i > 0 && xid.Continue(r)) {
			continue
		}
		return fmt.Errorf("%w: invalid formatter name %q", ErrPattern, name)
	}
	return nil
}

// Name returns the name of f.
func (f *Formatter) Name() string { return f.name }

// Pattern returns the pattern f was created from.
func (f *Formatter) Pattern() string { return f.pattern }

// Layout returns the Go layout f uses.
func (f *Formatter) Layout() string { return f.lay.text }

// Zone returns the time zone of f, or nil if it has none.
func (f *Formatter) Zone() *time.Location { return f.loc }

// Locale returns the locale tag of f and true, or false if it has none.
func (f *Formatter) Locale() (language.Tag, bool) {
	return f.tag, f.locale != ""
}

// String returns the name of f followed by its pattern.
func (f *Formatter) String() string {
	if f.name == "" {
		return f.pattern
	}
	return f.name + ": " + f.pattern
}

// WithZone returns a copy of f that prints values in loc and parses
// zone-less strings in loc.
func (f *Formatter) WithZone(loc *time.Location) *Formatter {
	dup := *f
	dup.loc = loc
	return &dup
}

// WithLocale returns a copy of f that prints and parses month and day names
// in the locale identified by the BCP 47 tag, such as "fr" or "pt-BR".
// Returns an error wrapping [ErrLocale] if the tag is invalid or has no
// supported translation.
func (f *Formatter) WithLocale(tag string) (*Formatter, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocale, err)
	}
	locale, err := localeFor(t)
	if err != nil {
		return nil, err
	}
	dup := *f
	dup.tag = t
	dup.locale = locale
	return &dup, nil
}

// localeFor returns the monday locale for t, resolving an absent region to
// the most likely one for the language.
func localeFor(t language.Tag) (monday.Locale, error) {
	base, _ := t.Base()
	region, _ := t.Region()
	want := monday.Locale(base.String() + "_" + region.String())
	for _, l := range monday.ListLocales() {
		if l == want {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported locale %q", ErrLocale, t)
}

// format prints t with f. Instants print in the zone of f if it has one;
// wall-clock times print unchanged.
func (f *Formatter) format(t time.Time, instant bool) string {
	if instant && f.loc != nil {
		t = t.In(f.loc)
	}
	if f.locale != "" {
		return monday.Format(t, f.lay.text, f.locale)
	}
	return t.Format(f.lay.text)
}

// parse parses s with f. Strings without a zone are read in the zone of f,
// or else in def. Strings without a date fall on January 1, 1970. A zone
// abbreviation must be UTC, GMT, or one used by that zone.
func (f *Formatter) parse(s string, def *time.Location) (time.Time, error) {
	loc := def
	if f.loc != nil {
		loc = f.loc
	}

	var t time.Time
	var err error
	if f.locale != "" {
		t, err = monday.ParseInLocation(f.lay.text, s, loc, f.locale)
	} else {
		t, err = time.ParseInLocation(f.lay.text, s, loc)
	}
	if err != nil {
		return t, err
	}
	if f.lay.hasAbbrev && !hasOffset(f.lay.text) && unknownAbbrev(t, loc) {
		name, _ := t.Zone()
		return time.Time{}, fmt.Errorf("%w: unknown zone abbreviation %q in %q", ErrFormat, name, s)
	}

	if !f.lay.hasDate {
		t = time.Date(
			1970, time.January, 1,
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
			t.Location(),
		)
	}
	if f.loc != nil && f.lay.hasZone {
		t = t.In(f.loc)
	}
	return t, nil
}

// hasOffset returns true if layout has a numeric offset element, which
// takes precedence over any zone abbreviation.
func hasOffset(layout string) bool {
	return strings.Contains(layout, "-07") || strings.Contains(layout, "Z07")
}

// unknownAbbrev returns true if t carries the zero-offset zone Go invents
// for an abbreviation loc does not use.
func unknownAbbrev(t time.Time, loc *time.Location) bool {
	name, offset := t.Zone()
	if offset != 0 || t.Location() == loc || t.Location() == time.UTC {
		return false
	}
	return !strings.HasPrefix(name, "GMT")
}
