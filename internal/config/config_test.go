package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/tempo/calc"
	"github.com/theory/tempo/format"
	"github.com/theory/tempo/types"
)

const configYAML = `tz: Europe/Paris
locale: fr
format: long_date
parse: [date, mysql]
logLevel: debug
formatters:
  - name: long_date
    pattern: EEEE d MMMM yyyy
  - name: kitchen
    layout: "3:04PM"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tempo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load("", map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, Defaults(), *cfg)
	})

	t.Run("env", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load("", map[string]string{
			"TEMPO_TZ":        "Asia/Tokyo",
			"TEMPO_LOCALE":    "de",
			"TEMPO_FORMAT":    "date",
			"TEMPO_PARSE":     "mysql,date",
			"TEMPO_LOG_LEVEL": "trace",
			"TZ":              "America/New_York",
		})
		require.NoError(t, err)
		assert.Equal(t, Config{
			TZ:       "Asia/Tokyo",
			Locale:   "de",
			Format:   "date",
			Parse:    []string{"mysql", "date"},
			LogLevel: "trace",
		}, *cfg)
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, configYAML)
		cfg, err := Load(path, map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, Config{
			Path:     path,
			TZ:       "Europe/Paris",
			Locale:   "fr",
			Format:   "long_date",
			Parse:    []string{"date", "mysql"},
			LogLevel: "debug",
			Formatters: []Formatter{
				{Name: "long_date", Pattern: "EEEE d MMMM yyyy"},
				{Name: "kitchen", Layout: "3:04PM"},
			},
		}, *cfg)
	})

	t.Run("file_from_env", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, configYAML)
		cfg, err := Load("", map[string]string{
			ConfigEnv:   path,
			"TEMPO_TZ": "UTC",
		})
		require.NoError(t, err)
		assert.Equal(t, path, cfg.Path)
		assert.Equal(t, "UTC", cfg.TZ)
		assert.Equal(t, "fr", cfg.Locale)
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), map[string]string{})
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing_file_from_env", func(t *testing.T) {
		t.Parallel()
		environ := map[string]string{"TEMPO_CONFIG": filepath.Join(t.TempDir(), "nope.yaml")}
		_, err := Load("", environ)
		require.ErrorIs(t, err, os.ErrNotExist)
		require.ErrorContains(t, err, "could not read config")
	})

	t.Run("bad_yaml", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "formatters: {name: [")
		_, err := Load(path, map[string]string{})
		require.ErrorContains(t, err, "could not parse config")
	})

	t.Run("bad_env", func(t *testing.T) {
		t.Parallel()
		_, err := Load("", map[string]string{"TEMPO_LOG_COLORS": "maybe"})
		require.Error(t, err)
	})
}

func TestRegistryAndOutput(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	cfg, err := Load(writeConfig(t, configYAML), map[string]string{})
	r.NoError(err)
	reg, err := cfg.Registry()
	r.NoError(err)
	a.Equal(format.Default().Len()+2, reg.Len())

	loc, err := cfg.Location()
	r.NoError(err)
	a.Equal("Europe/Paris", loc.String())

	out, err := cfg.Output(reg, loc)
	r.NoError(err)
	a.Equal("long_date", out.Name())
	z := types.NewZonedDateTime(time.Date(2024, 6, 24, 10, 17, 32, 0, time.UTC))
	a.Equal("lundi 24 juin 2024", format.Unparse(out, z))

	kitchen, ok := reg.Get("kitchen")
	r.True(ok)
	a.Equal("10:17AM", format.Unparse(kitchen, z))

	cfg.Format = "nonesuch"
	_, err = cfg.Output(reg, loc)
	r.ErrorIs(err, format.ErrFormat)

	cfg.Format = ""
	cfg.Locale = ""
	out, err = cfg.Output(reg, time.UTC)
	r.NoError(err)
	a.Equal("2024-06-24T10:17:32.000Z", format.Unparse(out, z))
}

func TestRegistryErrors(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.Formatters = []Formatter{
		{Name: "both", Pattern: "yyyy", Layout: "2006"},
		{Name: "date", Pattern: "yyyy-MM-dd"},
		{Name: "bad", Pattern: "qqq"},
	}
	_, err := cfg.Registry()
	require.ErrorIs(t, err, format.ErrPattern)
	require.ErrorContains(t, err, `formatter "both" has both a pattern and a layout`)
	require.ErrorContains(t, err, `duplicate formatter name "date"`)
	require.ErrorContains(t, err, "unknown pattern letter 'q'")
}

func TestParseZone(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		in     string
		zone   string
		offset int
		err    string
	}{
		{name: "utc", in: "UTC", zone: "UTC"},
		{name: "z", in: "Z", zone: "UTC"},
		{name: "iana", in: "Asia/Tokyo", zone: "Asia/Tokyo", offset: 9 * 3600},
		{name: "plus_colon", in: "+05:30", offset: 5*3600 + 30*60},
		{name: "plus_compact", in: "+0530", offset: 5*3600 + 30*60},
		{name: "minus_hours", in: "-03", offset: -3 * 3600},
		{name: "minus_half", in: "-00:30", offset: -30 * 60},
		{name: "spaces", in: " +01:00 ", offset: 3600},
		{name: "unknown", in: "Mars/Olympus", err: `invalid: unknown time zone "Mars/Olympus"`},
		{name: "junk_offset", in: "+ab", err: `invalid: invalid offset "+ab"`},
		{name: "big_offset", in: "+24:00", err: "invalid: offset hours 24 out of range [-23, 23]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			loc, err := ParseZone(tc.in)
			if tc.err != "" {
				require.ErrorIs(t, err, calc.ErrInvalid)
				require.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			if tc.zone != "" {
				assert.Equal(t, tc.zone, loc.String())
			}
			_, offset := time.Date(2024, 1, 15, 0, 0, 0, 0, loc).Zone()
			assert.Equal(t, tc.offset, offset)
		})
	}
}
