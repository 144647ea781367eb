// Package config loads the fuzzydate command's default parse and format
// options from a TOML file.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fuzzydatetime"
)

type Config struct {
	ZeroPad           bool     `toml:"zero_pad"`
	DateSeparator     string   `toml:"date_separator"`
	TimeSeparator     string   `toml:"time_separator"`
	MinimumPrecision  string   `toml:"minimum_precision"`
	ForceTimezone     bool     `toml:"force_timezone"`
	DefaultTimezone   string   `toml:"default_timezone"`
	RequiredPrecision string   `toml:"required_precision"`
	SameSeparators    bool     `toml:"same_separators"`
	StrictOffsets     bool     `toml:"strict_offsets"`
	TimezoneFormats   []string `toml:"timezone_formats"`
	LogLevel          string   `toml:"log_level"`
	LogFormat         string   `toml:"log_format"`
}

func DefaultConfig() *Config {
	return &Config{
		ZeroPad:           true,
		DateSeparator:     "/",
		TimeSeparator:     ":",
		MinimumPrecision:  "year",
		DefaultTimezone:   "UTC",
		RequiredPrecision: "year",
		LogLevel:          "warn",
		LogFormat:         "text",
	}
}

func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads path over the defaults. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config at %s", path)
	}

	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "key", key.String(), "path", path)
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrapf(err, "invalid config at %s", path)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if _, err := cfg.FormatOptions(); err != nil {
		return err
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.LogLevel] {
		return errors.Newf("invalid log_level %q: must be debug, info, warn or error", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return errors.Newf("invalid log_format %q: must be text or json", cfg.LogFormat)
	}
	return nil
}

// ParseOptions converts the parse related keys.
func (cfg *Config) ParseOptions() (fuzzydatetime.ParseOptions, error) {
	required, err := fuzzydatetime.ParsePrecision(cfg.RequiredPrecision)
	if err != nil {
		return fuzzydatetime.ParseOptions{}, errors.Wrap(err, "required_precision")
	}
	formats, err := fuzzydatetime.ParseTZFormats(cfg.TimezoneFormats...)
	if err != nil {
		return fuzzydatetime.ParseOptions{}, errors.Wrap(err, "timezone_formats")
	}
	return fuzzydatetime.ParseOptions{
		RequiredPrecision:     required,
		RequireSameSeparators: cfg.SameSeparators,
		TimezoneFormats:       formats,
		StrictOffsets:         cfg.StrictOffsets,
	}, nil
}

// FormatOptions converts every key but the logging ones.
func (cfg *Config) FormatOptions() (fuzzydatetime.FormatOptions, error) {
	parseOpts, err := cfg.ParseOptions()
	if err != nil {
		return fuzzydatetime.FormatOptions{}, err
	}
	minimum, err := fuzzydatetime.ParsePrecision(cfg.MinimumPrecision)
	if err != nil {
		return fuzzydatetime.FormatOptions{}, errors.Wrap(err, "minimum_precision")
	}
	opts := fuzzydatetime.FormatOptions{
		ParseOptions:     parseOpts,
		ZeroPad:          cfg.ZeroPad,
		MinimumPrecision: minimum,
		DateSeparator:    cfg.DateSeparator,
		TimeSeparator:    cfg.TimeSeparator,
		ForceTimezone:    cfg.ForceTimezone,
		DefaultTimezone:  fuzzydatetime.UTC,
	}
	if cfg.DefaultTimezone != "" {
		tz, err := fuzzydatetime.ParseTimezone(cfg.DefaultTimezone)
		if err != nil {
			return fuzzydatetime.FormatOptions{}, errors.Wrap(err, "default_timezone")
		}
		opts.DefaultTimezone = tz
	}
	if err := checkSeparator("date_separator", cfg.DateSeparator, "/-."); err != nil {
		return fuzzydatetime.FormatOptions{}, err
	}
	if err := checkSeparator("time_separator", cfg.TimeSeparator, ":-."); err != nil {
		return fuzzydatetime.FormatOptions{}, err
	}
	return opts, nil
}

func checkSeparator(key, sep, valid string) error {
	if sep == "" {
		return nil
	}
	if len(sep) != 1 || strings.IndexByte(valid, sep[0]) < 0 {
		return errors.Newf("invalid %s %q: must be one of %q", key, sep, valid)
	}
	return nil
}

func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fuzzydate")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fuzzydate")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}
