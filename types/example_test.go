package types_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/theory/tempo/types"
)

func ExampleDateTime() {
	dt, err := types.DateTime(1998, 4, 25)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(dt)
	fmt.Println(dt.UnixMilli())
	// Output: 1998-04-25T00:00:00Z
	// 893462400000
}

func ExampleLocalDate_ToZonedTZ() {
	date, err := types.LocalDateOf(2023, time.August, 15)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(date)

	tz, err := time.LoadLocation("America/New_York")
	if err != nil {
		log.Fatal(err)
	}
	ctx := types.ContextWithTZ(context.Background(), tz)

	fmt.Println(date.ToLocalDateTime())
	fmt.Println(date.ToZonedTZ(ctx))
	// Output: 2023-08-15
	// 2023-08-15T00:00:00
	// 2023-08-15T00:00:00-04:00
}

func ExamplePeriod_AddTo() {
	jan31 := time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)
	fmt.Println(types.Months(1).AddTo(jan31).Format(time.DateTime))
	fmt.Println(types.Period{Months: 1, Days: 1}.AddTo(jan31).Format(time.DateTime))
	// Output: 2024-02-29 09:00:00
	// 2024-03-01 09:00:00
}

func ExampleDuration_In() {
	_, err := types.Hours(24 * 7).In(types.Week)
	fmt.Println(err)

	days, err := types.Hours(24 * 7).In(types.Day)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(days)
	// Output: unsupported: cannot convert duration 168h0m0s to weeks
	// 7
}

func ExampleContextAt() {
	ctx := types.ContextAt(
		context.Background(),
		time.Date(2013, 8, 1, 12, 0, 0, 0, time.UTC),
	)
	fmt.Println(types.Now(ctx))
	// Output: 2013-08-01T12:00:00Z
}
