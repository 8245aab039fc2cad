// Package cli implements the tempo command.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/theory/tempo/format"
	"github.com/theory/tempo/internal/config"
	"github.com/theory/tempo/internal/logger"
	"github.com/theory/tempo/types"
)

// Execute runs the tempo command with the process arguments and
// environment.
func Execute() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// settings holds the persistent flag values.
type settings struct {
	config   string
	zone     zoneValue
	locale   string
	format   string
	logLevel string
}

// runtime is the state shared by subcommands once the root command has
// loaded the configuration.
type runtime struct {
	ctx      context.Context
	loc      *time.Location
	registry *format.Registry
	output   *format.Formatter
	parsers  []string
}

// parse parses s with the configured input formatters.
func (rt *runtime) parse(s string) (*types.ZonedDateTime, error) {
	if len(rt.parsers) == 0 {
		return format.Parse(rt.ctx, s, rt.registry.Formatters()...)
	}
	return format.ParseWith(rt.ctx, rt.registry, s, rt.parsers...)
}

// print writes v with the output formatter.
func (rt *runtime) print(cmd *cobra.Command, v types.Temporal) {
	fmt.Fprintln(cmd.OutOrStdout(), format.Unparse(rt.output, v))
}

// newRootCmd returns the tempo command. environ replaces the process
// environment when not nil.
func newRootCmd(environ map[string]string) *cobra.Command {
	var (
		set settings
		rt  runtime
	)

	cmd := &cobra.Command{
		Use:          "tempo",
		Short:        "Parse, convert, and calculate dates and times",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.load(cmd, &set, environ)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&set.config, "config", "c", "", "YAML config file (default $"+config.ConfigEnv+")")
	flags.VarP(&set.zone, "tz", "z", "time zone for zone-less input and output (default $TEMPO_TZ or UTC)")
	flags.StringVarP(&set.locale, "locale", "l", "", "locale for month and day names (default $TEMPO_LOCALE)")
	flags.StringVarP(&set.format, "format", "f", "", "output formatter name (default $TEMPO_FORMAT or "+format.Canonical+")")
	flags.StringVar(&set.logLevel, "log-level", "", "log level: trace, debug, info, warn, or error")

	cmd.AddCommand(
		parseCmd(&rt),
		convertCmd(&rt),
		addCmd(&rt),
		betweenCmd(&rt),
		nowCmd(&rt),
		formatsCmd(&rt),
	)
	return cmd
}

// load merges the config file, environment, and flags into rt.
func (rt *runtime) load(cmd *cobra.Command, set *settings, environ map[string]string) error {
	cfg, err := config.Load(set.config, environ)
	if err != nil {
		return err
	}
	if set.locale != "" {
		cfg.Locale = set.locale
	}
	if set.format != "" {
		cfg.Format = set.format
	}
	if set.logLevel != "" {
		cfg.LogLevel = set.logLevel
	}

	log, err := logger.New(cmd.ErrOrStderr(), logger.Options{
		Level:  cfg.LogLevel,
		Colors: cfg.LogColors,
	})
	if err != nil {
		return err
	}

	rt.loc = set.zone.loc
	if rt.loc == nil {
		if rt.loc, err = cfg.Location(); err != nil {
			return err
		}
	}
	if rt.registry, err = cfg.Registry(); err != nil {
		return err
	}
	if rt.output, err = cfg.Output(rt.registry, rt.loc); err != nil {
		return err
	}
	rt.parsers = cfg.Parse

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rt.ctx = types.ContextWithTZ(log.WithContext(ctx), rt.loc)

	log.Debug().
		Str("configPath", cfg.Path).
		Str("tz", rt.loc.String()).
		Str("output", rt.output.String()).
		Msg("config loaded")
	return nil
}

// log returns the logger in the context of rt.
func (rt *runtime) log() *zerolog.Logger {
	return zerolog.Ctx(rt.ctx)
}
