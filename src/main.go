//go:build js && wasm

// package main provides the Wasm playground app.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"syscall/js"
	"time"

	"github.com/theory/tempo/calc"
	"github.com/theory/tempo/coerce"
	"github.com/theory/tempo/format"
	"github.com/theory/tempo/types"
)

const (
	optLocalTZ int = 1 << iota
	optDetails
	optIndent
)

func convert(_ js.Value, args []js.Value) any {
	value := args[0].String()
	formatter := args[1].String()
	locale := args[2].String()
	opts := args[3].Int()

	return execute(value, formatter, locale, opts)
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("convert", js.FuncOf(convert))
	names := []any{}
	for _, n := range format.Default().Names() {
		names = append(names, n)
	}
	js.Global().Set("formatters", js.ValueOf(names))
	js.Global().Set("optLocalTZ", js.ValueOf(optLocalTZ))
	js.Global().Set("optDetails", js.ValueOf(optDetails))
	js.Global().Set("optIndent", js.ValueOf(optIndent))

	<-stream
}

// details describes a parsed value in the playground.
type details struct {
	Formatted  string `json:"formatted"`
	Canonical  string `json:"canonical"`
	EpochMilli int64  `json:"epoch_milli"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	DayOfWeek  string `json:"day_of_week"`
	DayOfYear  int    `json:"day_of_year"`
	DaysInMon  int    `json:"days_in_month"`
	Zone       string `json:"zone"`
}

func execute(value, name, locale string, opts int) string {
	ctx := context.Background()
	if opts&optLocalTZ == optLocalTZ {
		//nolint:gosmopolitan // We want the browser time.
		ctx = types.ContextWithTZ(ctx, time.Local)
	}

	// Parse the value.
	z, err := coerce.ToZoned(ctx, value)
	if err != nil {
		return fmt.Sprintf("Error parsing %v", err)
	}
	if z == nil {
		return "null"
	}

	// Assemble the formatter.
	f, msg := assembleFormatter(ctx, name, locale)
	if msg != "" {
		return msg
	}

	if opts&optDetails != optDetails {
		return html.EscapeString(format.Unparse(f, z))
	}

	dow, _ := calc.DayOfWeek(z)
	doy, _ := calc.DayOfYear(z)
	dim, _ := calc.DaysInMonth(z)
	res := details{
		Formatted:  format.Unparse(f, z),
		Canonical:  format.Format(z),
		EpochMilli: z.UnixMilli(),
		Date:       z.ToLocalDate().String(),
		Time:       z.ToLocalTime().String(),
		DayOfWeek:  dow.String(),
		DayOfYear:  doy,
		DaysInMon:  dim,
		Zone:       z.Location().String(),
	}

	// Serialize the result
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts&optIndent == optIndent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Sprintf("Error encoding results: %v", err)
	}

	return html.EscapeString(buf.String())
}

func assembleFormatter(ctx context.Context, name, locale string) (*format.Formatter, string) {
	f := format.CanonicalFormatter()
	if name != "" {
		var ok bool
		if f, ok = format.Default().Get(name); !ok {
			return nil, fmt.Sprintf("Error: unknown formatter %q", name)
		}
	}
	f = f.WithZone(types.TZFromContext(ctx))

	if locale != "" {
		var err error
		if f, err = f.WithLocale(locale); err != nil {
			return nil, fmt.Sprintf("Error %v", err)
		}
	}

	return f, ""
}
