package fuzzydatetime

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ParseDateTime parses a date with an optional time of day and timezone:
//
//	YYYY[s]M[s]D[( |T)h[t]m[t]s][ ][TZ]
//
// where s is one of '/', '-' or '.', t is one of ':', '-' or '.', and TZ is
// an abbreviation, Z, or a signed offset optionally prefixed by UTC.
func ParseDateTime(s string, opts ParseOptions) (DateTime, error) {
	if err := checkParseOptions(opts); err != nil {
		return DateTime{}, err
	}
	m, err := matchDateTime(s, false /* dateOnly */)
	if err != nil {
		return DateTime{}, err
	}
	return decodeMatch(m, opts)
}

// ParseDate parses a date without a time of day or timezone. The required
// precision may not be deeper than PrecisionDay.
func ParseDate(s string, opts ParseOptions) (DateTime, error) {
	if err := checkParseOptions(opts); err != nil {
		return DateTime{}, err
	}
	if !opts.RequiredPrecision.IsDate() {
		return DateTime{}, newDatePrecisionError(s, opts.RequiredPrecision)
	}
	m, err := matchDateTime(s, true /* dateOnly */)
	if err != nil {
		return DateTime{}, err
	}
	// A date never carries a timezone, whatever formats were asked for.
	opts.TimezoneFormats = TZFormatAll
	return decodeMatch(m, opts)
}

// ValidateDateTimeString returns whether ParseDateTime succeeds.
func ValidateDateTimeString(s string, opts ParseOptions) bool {
	_, err := ParseDateTime(s, opts)
	return err == nil
}

// ValidateDateString returns whether ParseDate succeeds.
func ValidateDateString(s string, opts ParseOptions) bool {
	_, err := ParseDate(s, opts)
	return err == nil
}

func checkParseOptions(opts ParseOptions) error {
	if !opts.RequiredPrecision.valid() {
		return errors.Newf("invalid required precision %d", opts.RequiredPrecision)
	}
	return nil
}

func newDatePrecisionError(input string, p Precision) *Error {
	return &Error{
		Kind:     KindPrecision,
		Input:    input,
		Field:    p.Component(),
		Required: p,
		msg:      redact.Sprintf("precision %s is not valid for a date", p),
	}
}

// decodeMatch validates a grammar match: precision, separator consistency,
// value ranges and finally the timezone.
func decodeMatch(m match, opts ParseOptions) (DateTime, error) {
	s := m.input
	p := m.precision()
	if p < opts.RequiredPrecision {
		return DateTime{}, newPrecisionError(s, p, opts.RequiredPrecision)
	}

	if opts.RequireSameSeparators {
		if m.hasSeen(ComponentDay) && m.fields[PrecisionMonth].sep != m.fields[PrecisionDay].sep {
			return DateTime{}, newFormatError(
				s, "mixed date separators %q and %q",
				rune(m.fields[PrecisionMonth].sep), rune(m.fields[PrecisionDay].sep),
			)
		}
		if m.hasSeen(ComponentSecond) && m.fields[PrecisionMinute].sep != m.fields[PrecisionSecond].sep {
			return DateTime{}, newFormatError(
				s, "mixed time separators %q and %q",
				rune(m.fields[PrecisionMinute].sep), rune(m.fields[PrecisionSecond].sep),
			)
		}
	}

	var vals [PrecisionMax + 1]int
	for q := PrecisionYear; q <= PrecisionMax; q++ {
		if q > p {
			vals[q] = defaultValue(q)
			continue
		}
		v, err := strconv.Atoi(m.fields[q].val)
		if err != nil {
			return DateTime{}, newFormatError(s, "malformed %s %q", q.Component(), m.fields[q].val)
		}
		vals[q] = v
	}

	// Only components given by the input are range checked; defaults are
	// always in range.
	for q := PrecisionYear; q <= p; q++ {
		lo, hi := componentRange(q, vals[PrecisionYear], vals[PrecisionMonth])
		if v := vals[q]; v < lo || v > hi {
			return DateTime{}, newValueError(s, q.Component(), v, lo, hi)
		}
	}

	tz, err := resolveTimezone(s, m.tz, opts)
	if err != nil {
		return DateTime{}, err
	}

	dt := DateTime{Precision: p, TZ: tz}
	dt.setComponents(vals)
	return dt, nil
}

// componentRange returns the inclusive bounds of the component at q. The day
// bound depends on the year and month.
func componentRange(q Precision, year, month int) (lo, hi int) {
	switch q {
	case PrecisionYear:
		return 1, 9999
	case PrecisionMonth:
		return 1, 12
	case PrecisionDay:
		return 1, daysInMonth(year, month)
	case PrecisionHour:
		return 0, 23
	default:
		return 0, 59
	}
}

// isLeapYear determines if the year is a leap year in the proleptic
// Gregorian calendar.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth returns the number of days in a given month for a specific year.
func daysInMonth(year, month int) int {
	switch month {
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}
