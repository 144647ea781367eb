package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/fuzzydatetime"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestMissingFileDefaults(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	opts, err := cfg.FormatOptions()
	require.NoError(t, err)
	require.Equal(t, fuzzydatetime.DefaultFormatOptions(), opts)
}

func TestPartialConfigMerge(t *testing.T) {
	path := writeConfig(t, `
date_separator = "-"
minimum_precision = "Day"
force_timezone = true
default_timezone = "JST"
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.True(t, cfg.ZeroPad)
	require.Equal(t, ":", cfg.TimeSeparator)

	opts, err := cfg.FormatOptions()
	require.NoError(t, err)
	out, err := fuzzydatetime.NormalizeDateTime("2024/5", opts)
	require.NoError(t, err)
	require.Equal(t, "2024-05-01 00 JST", out)
}

func TestParseOptions(t *testing.T) {
	path := writeConfig(t, `
required_precision = "minute"
same_separators = true
strict_offsets = true
timezone_formats = ["abbr", "+hh:mm"]
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	opts, err := cfg.ParseOptions()
	require.NoError(t, err)
	require.Equal(t, fuzzydatetime.ParseOptions{
		RequiredPrecision:     fuzzydatetime.PrecisionMinute,
		RequireSameSeparators: true,
		TimezoneFormats:       fuzzydatetime.TZFormatAbbr | fuzzydatetime.TZFormatOffsetColon,
		StrictOffsets:         true,
	}, opts)

	_, err = fuzzydatetime.ParseDateTime("2024/05/01 09:30 -0500", opts)
	require.ErrorIs(t, err, fuzzydatetime.ErrTimezone)
	_, err = fuzzydatetime.ParseDateTime("2024/05/01 09:30", opts)
	require.ErrorIs(t, err, fuzzydatetime.ErrTimezone)
	_, err = fuzzydatetime.ParseDateTime("2024/05/01 09:30 -05:00", opts)
	require.NoError(t, err)
}

func TestInvalidTOMLSyntax(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, `not valid toml [[[`))
	require.Error(t, err)
}

func TestUnknownKeyWarning(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, `unknown_setting = "value"`))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestInvalidValues(t *testing.T) {
	for _, tc := range []struct {
		contents string
		err      string
	}{
		{`date_separator = ":"`, `invalid date_separator ":": must be one of "/-."`},
		{`time_separator = "::"`, `invalid time_separator "::": must be one of ":-."`},
		{`minimum_precision = "week"`, `minimum_precision: unknown precision: "week"`},
		{`required_precision = "fortnight"`, `required_precision: unknown precision: "fortnight"`},
		{`timezone_formats = ["abbr", "iana"]`, `timezone_formats: unknown timezone format: "iana"`},
		{`default_timezone = "XYZ"`, `default_timezone: error parsing "XYZ": unknown timezone "XYZ"`},
		{`log_level = "trace"`, `invalid log_level "trace": must be debug, info, warn or error`},
		{`log_format = "xml"`, `invalid log_format "xml": must be text or json`},
	} {
		t.Run(tc.contents, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tc.contents))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	require.Equal(t, "/tmp/xdg/fuzzydate/config.toml", ConfigPath())
}
