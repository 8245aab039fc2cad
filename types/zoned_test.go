package types

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZonedDateTime(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		time time.Time
		str  string
	}{
		{
			name: "utc",
			time: time.Date(1998, 4, 25, 0, 0, 0, 0, time.UTC),
			str:  "1998-04-25T00:00:00Z",
		},
		{
			name: "nanos",
			time: time.Date(2024, 6, 24, 10, 17, 32, 123456789, time.UTC),
			str:  "2024-06-24T10:17:32.123456789Z",
		},
		{
			name: "offset",
			time: time.Date(2024, 6, 24, 10, 17, 32, 0, time.FixedZone("", 5*secondsPerHour)),
			str:  "2024-06-24T10:17:32+05:00",
		},
		{
			name: "new_york",
			time: time.Date(2024, 1, 24, 10, 17, 32, 500000000, loadTZ("America/New_York")),
			str:  "2024-01-24T10:17:32.5-05:00",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			z := NewZonedDateTime(tc.time)
			a.Equal(&ZonedDateTime{Time: tc.time}, z)
			a.Equal(tc.time, z.GoTime())
			a.Equal(tc.str, z.String())

			// Check JSON
			json, err := z.MarshalJSON()
			r.NoError(err)
			a.Equal(fmt.Sprintf("%q", tc.str), string(json))
			z2 := new(ZonedDateTime)
			r.NoError(z2.UnmarshalJSON(json))
			a.True(z.Equal(z2.Time))
			_, off1 := z.Zone()
			_, off2 := z2.Zone()
			a.Equal(off1, off2)
		})
	}
}

func TestDateTimeFields(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		fields []int
	}{
		{"epoch", []int{1970, 1, 1, 0, 0, 0, 0}},
		{"leap_day", []int{2024, 2, 29, 23, 59, 59, 999999999}},
		{"pre_epoch", []int{1900, 12, 31, 12, 30, 15, 500}},
		{"far_future", []int{9999, 12, 31, 23, 59, 59, 0}},
		{"year_one", []int{1, 1, 1, 0, 0, 0, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			z, err := DateTime(tc.fields[0], tc.fields[1:]...)
			r.NoError(err)
			a.Equal(tc.fields, []int{
				z.Year(), int(z.Month()), z.Day(),
				z.Hour(), z.Minute(), z.Second(), z.Nanosecond(),
			})
			a.Equal(time.UTC, z.Location())
		})
	}

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		z, err := DateTime(2024)
		require.NoError(t, err)
		assert.Equal(t, &ZonedDateTime{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, z)
	})

	t.Run("in_zone", func(t *testing.T) {
		t.Parallel()
		tokyo := loadTZ("Asia/Tokyo")
		z, err := DateTimeIn(tokyo, 2024, 6, 1, 9)
		require.NoError(t, err)
		assert.True(t, z.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, tokyo, z.Location())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		z, err := DateTime(2024, 4, 31)
		require.EqualError(t, err, "type: day 31 out of range [1, 30]")
		require.ErrorIs(t, err, ErrType)
		assert.Nil(t, z)
	})
}

func TestFromUnixMilli(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	z := FromUnixMilli(893462400000)
	a.Equal(&ZonedDateTime{time.Date(1998, 4, 25, 0, 0, 0, 0, time.UTC)}, z)
	a.Equal(int64(893462400000), z.UnixMilli())

	z = FromUnixMilli(-2208988800000)
	a.Equal(&ZonedDateTime{time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)}, z)
}

func TestZonedDateTimeConversions(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	ny := loadTZ("America/New_York")
	z := &ZonedDateTime{time.Date(2024, 3, 9, 22, 30, 15, 42, ny)}

	a.Equal(&LocalDateTime{time.Date(2024, 3, 9, 22, 30, 15, 42, time.UTC)}, z.ToLocalDateTime())
	a.Equal(&LocalDate{time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)}, z.ToLocalDate())
	a.Equal(&LocalTime{time.Date(0, 1, 1, 22, 30, 15, 42, time.UTC)}, z.ToLocalTime())
	a.Equal(&YearMonth{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}, z.ToYearMonth())

	// Same instant, different zone.
	utc := z.WithZone(time.UTC)
	a.True(utc.Equal(z.Time))
	a.Equal(3, utc.Hour())
	a.Equal(10, utc.Day())
	ctx := ContextWithTZ(context.Background(), time.UTC)
	a.Equal(utc, z.ToTZ(ctx))

	// Same fields, different zone.
	fields := z.WithFieldsIn(time.UTC)
	a.Equal(&ZonedDateTime{time.Date(2024, 3, 9, 22, 30, 15, 42, time.UTC)}, fields)
	a.Equal(5*time.Hour, fields.Sub(z.Time).Abs())
}

func TestZonedDateTimeInvalidJSON(t *testing.T) {
	t.Parallel()
	z := new(ZonedDateTime)
	err := z.UnmarshalJSON([]byte(`"i am not a timestamp"`))
	require.EqualError(t, err, fmt.Sprintf(
		"type: Cannot parse %q as %q",
		"i am not a timestamp", zonedFormat,
	))
	require.ErrorIs(t, err, ErrType)
}

func TestZonedDateTimeCompare(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	now := time.Now()
	z := &ZonedDateTime{Time: now}
	a.Equal(-1, z.Compare(now.Add(1*time.Hour)))
	a.Equal(1, z.Compare(now.Add(-2*time.Hour)))
	a.Equal(0, z.Compare(now))
	a.Equal(0, z.Compare(now.In(loadTZ("Asia/Tokyo"))))
}
