package tempo_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/theory/tempo"
	"github.com/theory/tempo/calc"
	"github.com/theory/tempo/types"
)

func Example() {
	ctx := tempo.At(context.Background(), time.Date(2024, 1, 31, 9, 30, 0, 0, time.UTC))

	// Add a calendar month to today: January 31 clamps to February 29.
	next, err := calc.Plus(tempo.Today(ctx), types.Months(1))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(next)

	// Three hours ago, printed canonically.
	ago, err := calc.Ago(ctx, types.Hours(3))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tempo.Format(ago))

	ms, err := tempo.ToLong(ctx, "2013-08-01")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(*ms)
	// Output: 2024-02-29
	// 2024-01-31T06:30:00.000Z
	// 1375315200000
}
