package format_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/theory/tempo/format"
	"github.com/theory/tempo/types"
)

func ExampleParse() {
	ctx := context.Background()
	for _, str := range []string{
		"2013-08-01",
		"2024-06-24T10:17:32.5-07:00",
		"20240624T101732Z",
		"Mon, 24 Jun 2024 10:17:32 +0000",
	} {
		z, err := format.Parse(ctx, str)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(format.Format(z), z.UnixMilli())
	}
	// Output: 2013-08-01T00:00:00.000Z 1375315200000
	// 2024-06-24T10:17:32.500-07:00 1719249452500
	// 2024-06-24T10:17:32.000Z 1719224252000
	// 2024-06-24T10:17:32.000Z 1719224252000
}

func ExampleNew() {
	f, err := format.New("us_date", "MM/dd/yyyy hh:mm a")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(f.Layout())

	z := types.NewZonedDateTime(time.Date(1998, 4, 25, 14, 30, 0, 0, time.UTC))
	fmt.Println(format.Unparse(f, z))
	// Output: 01/02/2006 03:04 PM
	// 04/25/1998 02:30 PM
}

func ExampleFormatter_WithLocale() {
	f, err := format.MustNew("long_date", "EEEE d MMMM yyyy").WithLocale("fr")
	if err != nil {
		log.Fatal(err)
	}
	z := types.NewZonedDateTime(time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC))
	fmt.Println(format.Unparse(f, z))
	// Output: lundi 24 juin 2024
}
