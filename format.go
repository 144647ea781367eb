package fuzzydatetime

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// NormalizeDateTime parses s with ParseDateTime and renders it with Format.
// The separators in opts must be ones the grammar accepts so that the output
// normalizes to itself. Output carrying a timezone, given or forced, is
// rendered to at least PrecisionHour, so "2024/05/01" with ForceTimezone
// becomes "2024/05/01 00 UTC".
func NormalizeDateTime(s string, opts FormatOptions) (string, error) {
	opts, err := checkFormatOptions(opts)
	if err != nil {
		return "", err
	}
	dt, err := ParseDateTime(s, opts.ParseOptions)
	if err != nil {
		return "", err
	}
	return Format(dt, opts), nil
}

// NormalizeDate parses s with ParseDate and renders it with Format. The time
// separator and timezone options are ignored.
func NormalizeDate(s string, opts FormatOptions) (string, error) {
	opts, err := checkFormatOptions(opts)
	if err != nil {
		return "", err
	}
	if !opts.MinimumPrecision.IsDate() {
		return "", newDatePrecisionError(s, opts.MinimumPrecision)
	}
	dt, err := ParseDate(s, opts.ParseOptions)
	if err != nil {
		return "", err
	}
	opts.ForceTimezone = false
	return Format(dt, opts), nil
}

func checkFormatOptions(opts FormatOptions) (FormatOptions, error) {
	if opts.DateSeparator == "" {
		opts.DateSeparator = "/"
	}
	if opts.TimeSeparator == "" {
		opts.TimeSeparator = ":"
	}
	if len(opts.DateSeparator) != 1 || !strings.Contains(dateSeparators, opts.DateSeparator) {
		return opts, errors.Newf("invalid date separator %q: must be one of %q", opts.DateSeparator, dateSeparators)
	}
	if len(opts.TimeSeparator) != 1 || !strings.Contains(timeSeparators, opts.TimeSeparator) {
		return opts, errors.Newf("invalid time separator %q: must be one of %q", opts.TimeSeparator, timeSeparators)
	}
	if !opts.MinimumPrecision.valid() {
		return opts, errors.Newf("invalid minimum precision %d", opts.MinimumPrecision)
	}
	return opts, checkParseOptions(opts.ParseOptions)
}

// WriteToBuffer writes the given value into the given buffer.
//
// The rendered precision is the larger of the value's precision and
// opts.MinimumPrecision, and at least PrecisionHour if a timezone is rendered
// so that the output parses again.
func WriteToBuffer(buf *bytes.Buffer, dt DateTime, opts FormatOptions) {
	tz := dt.TZ
	if tz.IsZero() && opts.ForceTimezone {
		tz = opts.DefaultTimezone
		if tz.IsZero() {
			tz = UTC
		}
	}

	p := maxPrecision(dt.Precision, opts.MinimumPrecision)
	if !tz.IsZero() {
		p = maxPrecision(p, PrecisionHour)
	}

	dateSep, timeSep := opts.DateSeparator, opts.TimeSeparator
	if dateSep == "" {
		dateSep = "/"
	}
	if timeSep == "" {
		timeSep = ":"
	}

	vals := dt.components()
	buf.WriteString(fmt.Sprintf("%04d", vals[PrecisionYear]))
	for q := PrecisionMonth; q <= p && q <= PrecisionMax; q++ {
		switch q {
		case PrecisionMonth, PrecisionDay:
			buf.WriteString(dateSep)
		case PrecisionHour:
			buf.WriteByte(' ')
		default:
			buf.WriteString(timeSep)
		}
		if opts.ZeroPad {
			buf.WriteString(fmt.Sprintf("%02d", vals[q]))
		} else {
			buf.WriteString(strconv.Itoa(vals[q]))
		}
	}

	if !tz.IsZero() {
		buf.WriteByte(' ')
		buf.WriteString(tz.Label())
	}
}

// Format formats the given value with the given options.
func Format(dt DateTime, opts FormatOptions) string {
	var b bytes.Buffer
	WriteToBuffer(&b, dt, opts)
	return b.String()
}
