// Package config loads tempo command settings from an optional YAML file and
// TEMPO_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/theory/tempo/calc"
	"github.com/theory/tempo/format"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes the names of environment variables, as in
	// TEMPO_TZ=Europe/Paris.
	EnvPrefix = "TEMPO_"
	// ConfigEnv names the environment variable for the config file path.
	ConfigEnv = EnvPrefix + "CONFIG"
)

// Formatter declares a custom formatter. Exactly one of Pattern and Layout
// must be set.
type Formatter struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern,omitempty"`
	Layout  string `yaml:"layout,omitempty"`
}

// Config holds the settings for the tempo command. Environment variables
// override values from the file.
type Config struct {
	// Path is the config file path, if any.
	Path string `env:"CONFIG" yaml:"-"`
	// TZ is the zone for zone-less values and output: an IANA identifier
	// or an offset such as "+05:30".
	TZ string `env:"TZ" yaml:"tz"`
	// Locale is a BCP 47 tag for month and day names in output.
	Locale string `env:"LOCALE" yaml:"locale"`
	// Format names the output formatter.
	Format string `env:"FORMAT" yaml:"format"`
	// Parse names the formatters used to parse input, in order. Empty
	// means all of them.
	Parse []string `env:"PARSE" envSeparator:"," yaml:"parse"`

	LogLevel  string `env:"LOG_LEVEL" yaml:"logLevel"`
	LogColors bool   `env:"LOG_COLORS" yaml:"logColors"`

	Formatters []Formatter `env:"-" yaml:"formatters"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		TZ:       "UTC",
		Format:   format.Canonical,
		LogLevel: "warn",
	}
}

// Load returns the configuration read from path, or from the file named by
// TEMPO_CONFIG if path is empty, with environment variables applied on top.
// environ replaces the process environment when not nil. With neither a
// path nor TEMPO_CONFIG, Load reads no file; a named file that does not
// exist is an error wrapping [os.ErrNotExist].
func Load(path string, environ map[string]string) (*Config, error) {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	cfg := Defaults()
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, err
	}
	if path != "" {
		cfg.Path = path
	}

	if cfg.Path != "" {
		data, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("could not parse config %v: %w", cfg.Path, err)
		}
		// Environment wins over the file.
		if err := env.ParseWithOptions(&cfg, opts); err != nil {
			return nil, err
		}
		if path != "" {
			cfg.Path = path
		}
	}

	return &cfg, nil
}

// Location returns the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	return ParseZone(c.TZ)
}

// Registry returns the default formatters plus the custom formatters in c.
func (c *Config) Registry() (*format.Registry, error) {
	r := format.Default()
	var errs []error
	for _, def := range c.Formatters {
		f, err := def.build()
		if err == nil {
			err = r.Add(f)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

func (def Formatter) build() (*format.Formatter, error) {
	switch {
	case def.Pattern != "" && def.Layout != "":
		return nil, fmt.Errorf(
			"%w: formatter %q has both a pattern and a layout",
			format.ErrPattern, def.Name,
		)
	case def.Layout != "":
		return format.FromLayout(def.Name, def.Layout)
	default:
		return format.New(def.Name, def.Pattern)
	}
}

// Output returns the configured output formatter from r, set to print in
// loc and the configured locale.
func (c *Config) Output(r *format.Registry, loc *time.Location) (*format.Formatter, error) {
	name := c.Format
	if name == "" {
		name = format.Canonical
	}
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown formatter %q", format.ErrFormat, name)
	}
	f = f.WithZone(loc)
	if c.Locale == "" {
		return f, nil
	}
	return f.WithLocale(c.Locale)
}

// ParseZone returns the time zone for an IANA identifier, such as
// "Asia/Tokyo", or a UTC offset, such as "+05:30", "-03", or "Z".
func ParseZone(s string) (*time.Location, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "Z" || s == "z":
		return time.UTC, nil
	case strings.HasPrefix(s, "+"), strings.HasPrefix(s, "-"):
		return parseOffset(s)
	default:
		return calc.ZoneForID(s)
	}
}

func parseOffset(s string) (*time.Location, error) {
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	hh, mm, found := strings.Cut(s[1:], ":")
	if !found && len(hh) == 4 {
		hh, mm = hh[:2], hh[2:]
	}
	hours, err := strconv.ParseUint(hh, 10, 8)
	minutes := uint64(0)
	if err == nil && mm != "" {
		minutes, err = strconv.ParseUint(mm, 10, 8)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: invalid offset %q", calc.ErrInvalid, s)
	}
	if hours == 0 {
		// Sign moves to the minutes, as in -00:30.
		return calc.ZoneForOffset(0, sign*int(minutes))
	}
	return calc.ZoneForOffset(sign*int(hours), int(minutes))
}
