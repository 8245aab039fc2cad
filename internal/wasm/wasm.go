// Package main parses and formats a date in order to test WASM compilation.
package main

import (
	"context"
	"fmt"

	"github.com/theory/tempo"
	"github.com/theory/tempo/calc"
	"github.com/theory/tempo/types"
)

func main() {
	// Parse a date.
	z, _ := tempo.Parse(context.Background(), "2024-01-31")

	// Add a month.
	z, _ = calc.Plus(z, types.Months(1))

	// Show the result.
	//nolint:forbidigo
	fmt.Println(tempo.Format(z))
}
