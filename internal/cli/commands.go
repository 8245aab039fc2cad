package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theory/tempo/calc"
	"github.com/theory/tempo/format"
	"github.com/theory/tempo/types"
)

func parseCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "parse VALUE...",
		Short: "Parse values and print them with the output formatter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, arg := range args {
				z, err := rt.parse(arg)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				rt.print(cmd, z)
			}
			return errors.Join(errs...)
		},
	}
}

func convertCmd(rt *runtime) *cobra.Command {
	var to zoneValue

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Print the instant of a value in another time zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := rt.parse(args[0])
			if err != nil {
				return err
			}
			out := calc.ToTimeZone(z, to.loc)
			fmt.Fprintln(cmd.OutOrStdout(), format.Unparse(rt.output.WithZone(to.loc), out))
			return nil
		},
	}

	cmd.Flags().Var(&to, "to", "target time zone, such as Asia/Tokyo or +05:30")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func addCmd(rt *runtime) *cobra.Command {
	var (
		period   types.Period
		hours    int64
		minutes  int64
		seconds  int64
		millis   int64
		subtract bool
	)

	cmd := &cobra.Command{
		Use:   "add VALUE",
		Short: "Add calendar and clock amounts to a value",
		Example: `  tempo add 2024-01-31 --months 1
  tempo add "2024-06-24 10:17:32" --hours -3 --minutes 30
  tempo add now --days 7 --subtract`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := rt.value(args[0])
			if err != nil {
				return err
			}
			amounts := []types.Amount{
				period,
				types.Hours(hours) + types.Minutes(minutes) +
					types.Seconds(seconds) + types.Millis(millis),
			}
			if subtract {
				z, err = calc.Minus(z, amounts...)
			} else {
				z, err = calc.Plus(z, amounts...)
			}
			if err != nil {
				return err
			}
			rt.print(cmd, z)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&period.Years, "years", "Y", 0, "years to add")
	flags.IntVarP(&period.Months, "months", "M", 0, "months to add")
	flags.IntVarP(&period.Weeks, "weeks", "W", 0, "weeks to add")
	flags.IntVarP(&period.Days, "days", "D", 0, "days to add")
	flags.Int64VarP(&hours, "hours", "H", 0, "hours to add")
	flags.Int64VarP(&minutes, "minutes", "m", 0, "minutes to add")
	flags.Int64VarP(&seconds, "seconds", "s", 0, "seconds to add")
	flags.Int64Var(&millis, "millis", 0, "milliseconds to add")
	flags.BoolVar(&subtract, "subtract", false, "subtract the amounts instead")
	return cmd
}

func betweenCmd(rt *runtime) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "between START END",
		Short: "Print the whole number of units between two values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := types.ParseUnit(unit)
			if err != nil {
				return err
			}
			start, err := rt.value(args[0])
			if err != nil {
				return err
			}
			end, err := rt.value(args[1])
			if err != nil {
				return err
			}
			iv, err := types.NewInterval(start, end)
			if err != nil {
				return err
			}
			n, err := iv.In(u)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "days", "unit to count, such as days, months, or hours")
	return cmd
}

func nowCmd(rt *runtime) *cobra.Command {
	var (
		at    string
		today bool
	)

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current instant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if at != "" {
				z, err := rt.parse(at)
				if err != nil {
					return err
				}
				rt.ctx = types.ContextAt(rt.ctx, z.Time)
				rt.log().Debug().Time("at", z.Time).Msg("clock fixed")
			}
			if today {
				rt.print(cmd, calc.TodayAtMidnight(rt.ctx))
				return nil
			}
			rt.print(cmd, calc.Now(rt.ctx))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "pretend the current instant is this value")
	cmd.Flags().BoolVar(&today, "today", false, "print midnight today instead")
	return cmd
}

func formatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List formatter names and patterns in parse order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, f := range rt.registry.Formatters() {
				fmt.Fprintf(out, "%-28s %s\n", f.Name(), f.Pattern())
			}
			return nil
		},
	}
}

// value parses s, or returns the current instant if s is "now".
func (rt *runtime) value(s string) (*types.ZonedDateTime, error) {
	if s == "now" {
		return calc.Now(rt.ctx), nil
	}
	return rt.parse(s)
}
