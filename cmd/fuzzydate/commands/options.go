package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fuzzydatetime"
	"github.com/spf13/pflag"
)

// parseFlags override the parse options from the config file. Only flags set
// on the command line take effect.
type parseFlags struct {
	date      bool
	required  string
	sameSep   bool
	strict    bool
	tzFormats []string
}

func (f *parseFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.date, "date", false, "Parse dates only, without a time of day or timezone")
	fs.StringVar(&f.required, "required", "", "Required precision: year, month, day, hour, minute or second")
	fs.BoolVar(&f.sameSep, "same-sep", false, "Reject mixed date or time separators")
	fs.BoolVar(&f.strict, "strict", false, "Reject offsets with hours over 23 or minutes over 59")
	fs.StringSliceVar(&f.tzFormats, "tz-formats", nil, "Allowed timezone formats: none, abbr, z, +hh:mm, +hhmm, utc+hh:mm, utc+hhmm")
}

func (f *parseFlags) apply(fs *pflag.FlagSet, opts fuzzydatetime.ParseOptions) (fuzzydatetime.ParseOptions, error) {
	if fs.Changed("required") {
		p, err := fuzzydatetime.ParsePrecision(f.required)
		if err != nil {
			return opts, errors.Wrap(err, "--required")
		}
		opts.RequiredPrecision = p
	}
	if fs.Changed("same-sep") {
		opts.RequireSameSeparators = f.sameSep
	}
	if fs.Changed("strict") {
		opts.StrictOffsets = f.strict
	}
	if fs.Changed("tz-formats") {
		formats, err := fuzzydatetime.ParseTZFormats(f.tzFormats...)
		if err != nil {
			return opts, errors.Wrap(err, "--tz-formats")
		}
		opts.TimezoneFormats = formats
	}
	return opts, nil
}

func (f *parseFlags) parse(s string, opts fuzzydatetime.ParseOptions) (fuzzydatetime.DateTime, error) {
	if f.date {
		return fuzzydatetime.ParseDate(s, opts)
	}
	return fuzzydatetime.ParseDateTime(s, opts)
}

// formatFlags override the format options from the config file.
type formatFlags struct {
	parseFlags

	pad       bool
	min       string
	dateSep   string
	timeSep   string
	forceTZ   bool
	defaultTZ string
}

func (f *formatFlags) register(fs *pflag.FlagSet) {
	f.parseFlags.register(fs)
	fs.BoolVar(&f.pad, "pad", true, "Zero pad every field but the year to two digits")
	fs.StringVar(&f.min, "min", "", "Minimum output precision")
	fs.StringVar(&f.dateSep, "date-sep", "", "Date separator: /, - or .")
	fs.StringVar(&f.timeSep, "time-sep", "", "Time separator: :, - or .")
	fs.BoolVar(&f.forceTZ, "force-tz", false, "Render the default timezone when none is given")
	fs.StringVar(&f.defaultTZ, "default-tz", "", "Timezone rendered by --force-tz, e.g. UTC, JST or +09:00")
}

func (f *formatFlags) apply(fs *pflag.FlagSet, opts fuzzydatetime.FormatOptions) (fuzzydatetime.FormatOptions, error) {
	parseOpts, err := f.parseFlags.apply(fs, opts.ParseOptions)
	if err != nil {
		return opts, err
	}
	opts.ParseOptions = parseOpts
	if fs.Changed("pad") {
		opts.ZeroPad = f.pad
	}
	if fs.Changed("min") {
		p, err := fuzzydatetime.ParsePrecision(f.min)
		if err != nil {
			return opts, errors.Wrap(err, "--min")
		}
		opts.MinimumPrecision = p
	}
	if fs.Changed("date-sep") {
		opts.DateSeparator = f.dateSep
	}
	if fs.Changed("time-sep") {
		opts.TimeSeparator = f.timeSep
	}
	if fs.Changed("force-tz") {
		opts.ForceTimezone = f.forceTZ
	}
	if fs.Changed("default-tz") {
		tz, err := fuzzydatetime.ParseTimezone(f.defaultTZ)
		if err != nil {
			return opts, errors.Wrap(err, "--default-tz")
		}
		opts.DefaultTimezone = tz
	}
	return opts, nil
}

func (f *formatFlags) normalize(s string, opts fuzzydatetime.FormatOptions) (string, error) {
	if f.date {
		return fuzzydatetime.NormalizeDate(s, opts)
	}
	return fuzzydatetime.NormalizeDateTime(s, opts)
}
