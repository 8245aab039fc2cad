package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/tempo/types"
)

func TestFields(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		val  types.Temporal
		date []int
		week time.Weekday
		yday int
		time []int
	}{
		{
			name: "zoned",
			val:  zdt(2024, 6, 24, 10, 17, 32, 123456789, loadTZ("America/New_York")),
			date: []int{2024, 6, 24},
			week: time.Monday,
			yday: 176,
			time: []int{10, 17, 32, 123, 123456789},
		},
		{
			name: "local_date_time",
			val:  ldt(2023, 12, 31, 23, 59, 59, 999000000),
			date: []int{2023, 12, 31},
			week: time.Sunday,
			yday: 365,
			time: []int{23, 59, 59, 999, 999000000},
		},
		{
			name: "local_date",
			val:  date(2024, 2, 29),
			date: []int{2024, 2, 29},
			week: time.Thursday,
			yday: 60,
		},
		{
			name: "local_time",
			val:  clock(7, 5, 3, 1000000),
			time: []int{7, 5, 3, 1, 1000000},
		},
		{
			name: "year_month",
			val:  ym(1998, 4),
			date: []int{1998, 4},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			year, yearErr := Year(tc.val)
			month, monthErr := Month(tc.val)
			day, dayErr := Day(tc.val)
			wday, wdayErr := DayOfWeek(tc.val)
			yday, ydayErr := DayOfYear(tc.val)

			switch len(tc.date) {
			case 0:
				r.ErrorIs(yearErr, types.ErrUnsupported)
				r.ErrorIs(monthErr, types.ErrUnsupported)
				r.ErrorIs(dayErr, types.ErrUnsupported)
			case 2:
				r.NoError(yearErr)
				r.NoError(monthErr)
				a.Equal(tc.date, []int{year, int(month)})
				r.ErrorIs(dayErr, types.ErrUnsupported)
				r.ErrorIs(wdayErr, types.ErrUnsupported)
				r.ErrorIs(ydayErr, types.ErrUnsupported)
			default:
				r.NoError(yearErr)
				r.NoError(monthErr)
				r.NoError(dayErr)
				r.NoError(wdayErr)
				r.NoError(ydayErr)
				a.Equal(tc.date, []int{year, int(month), day})
				a.Equal(tc.week, wday)
				a.Equal(tc.yday, yday)
			}

			hour, hourErr := Hour(tc.val)
			minute, minuteErr := Minute(tc.val)
			sec, secErr := Second(tc.val)
			milli, milliErr := Milli(tc.val)
			nano, nanoErr := Nano(tc.val)
			if tc.time == nil {
				for _, err := range []error{hourErr, minuteErr, secErr, milliErr, nanoErr} {
					r.ErrorIs(err, types.ErrUnsupported)
				}
				return
			}
			for _, err := range []error{hourErr, minuteErr, secErr, milliErr, nanoErr} {
				r.NoError(err)
			}
			a.Equal(tc.time, []int{hour, minute, sec, milli, nano})
		})
	}

	t.Run("messages", func(t *testing.T) {
		t.Parallel()
		_, err := Hour(date(2024, 6, 24))
		require.EqualError(t, err, "unsupported: hour() not supported for *types.LocalDate")
		_, err = Day(ym(2024, 6))
		require.EqualError(t, err, "unsupported: day() not supported for *types.YearMonth")
		_, err = Year((*types.ZonedDateTime)(nil))
		require.EqualError(t, err, "invalid: year() of absent *types.ZonedDateTime")
		require.ErrorIs(t, err, ErrInvalid)
	})
}
