package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		pattern string
		layout  string
		date    bool
		zone    bool
		abbrev  bool
		err     string
	}{
		{
			name:    "iso",
			pattern: "yyyy-MM-dd'T'HH:mm:ss.SSSXXX",
			layout:  "2006-01-02T15:04:05.000Z07:00",
			date:    true,
			zone:    true,
		},
		{
			name:    "rfc822",
			pattern: "EEE, dd MMM yyyy HH:mm:ss Z",
			layout:  "Mon, 02 Jan 2006 15:04:05 -0700",
			date:    true,
			zone:    true,
		},
		{
			name:    "long_names",
			pattern: "EEEE, MMMM d, yyyy h:mm a",
			layout:  "Monday, January 2, 2006 3:04 PM",
			date:    true,
		},
		{
			name:    "short_fields",
			pattern: "yy/M/d",
			layout:  "06/1/2",
			date:    true,
		},
		{
			name:    "day_of_year",
			pattern: "yyyy-DDD",
			layout:  "2006-002",
			date:    true,
		},
		{
			name:    "comma_micros",
			pattern: "HH:mm:ss,SSSSSS",
			layout:  "15:04:05,000000",
		},
		{
			name:    "quoted_quote",
			pattern: "hh 'o''clock' a",
			layout:  "03 o'clock PM",
		},
		{
			name:    "bare_quotes",
			pattern: "''yyyy''",
			layout:  "'2006'",
			date:    true,
		},
		{
			name:    "offsets",
			pattern: "X XX ZZ zzz",
			layout:  "Z07 Z0700 -07:00 MST",
			zone:    true,
			abbrev:  true,
		},
		{
			name:    "packed_date",
			pattern: "yyyyMMdd",
			layout:  "20060102",
			date:    true,
		},
		{
			name:    "packed_time",
			pattern: "HHmmss.SSS",
			layout:  "150405.000",
		},
		{
			name:    "packed_clock",
			pattern: "hmm a",
			layout:  "304 PM",
		},
		{
			name:    "non_ascii_literal",
			pattern: "d°M",
			layout:  "2°1",
			date:    true,
		},
		{
			name:    "unknown_letter",
			pattern: "yyyy-qq",
			err:     `pattern: unknown pattern letter 'q' in "yyyy-qq"`,
		},
		{
			name:    "bare_fraction",
			pattern: "ss SSS",
			err:     `pattern: fraction of second in "ss SSS" must follow '.' or ','`,
		},
		{
			name:    "too_many_offset_letters",
			pattern: "ZZZ",
			err:     `pattern: too many pattern letters "ZZZ" in "ZZZ"`,
		},
		{
			name:    "unterminated",
			pattern: "yyyy'",
			err:     `pattern: unterminated quote in "yyyy'"`,
		},
		{
			name:    "layout_word",
			pattern: "'Jan' yyyy",
			err:     `pattern: literal "Jan" in "'Jan' yyyy" is ambiguous`,
		},
		{
			name:    "month_then_second",
			pattern: "Ms",
			err:     `pattern: adjacent fields in "Ms" are ambiguous`,
		},
		{
			name:    "underscore_then_day",
			pattern: "yyyy_d",
			err:     `pattern: adjacent fields in "yyyy_d" are ambiguous`,
		},
		{
			name:    "digit",
			pattern: "yyyy 1",
			err:     `pattern: literal " 1" in "yyyy 1" is ambiguous`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			lay, err := compile(tc.pattern)
			if tc.err != "" {
				r.EqualError(err, tc.err)
				r.ErrorIs(err, ErrPattern)
				a.Nil(lay)
				return
			}
			r.NoError(err)
			a.Equal(&layout{
				text:      tc.layout,
				hasDate:   tc.date,
				hasZone:   tc.zone,
				hasAbbrev: tc.abbrev,
			}, lay)
		})
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		layout string
		date   bool
		zone   bool
		abbrev bool
	}{
		{time.RFC3339, true, true, false},
		{time.DateTime, true, false, false},
		{time.Kitchen, false, false, false},
		{"15:04 MST", false, true, true},
		{time.RFC1123, true, true, true},
		{"Monday", true, false, false},
		{"Jan _2", true, false, false},
	} {
		t.Run(tc.layout, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, &layout{
				text:      tc.layout,
				hasDate:   tc.date,
				hasZone:   tc.zone,
				hasAbbrev: tc.abbrev,
			}, inspect(tc.layout))
		})
	}
}
