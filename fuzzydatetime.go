// Package fuzzydatetime parses partially specified, human entered date and
// time strings such as "2024", "2024/5/1" or "2024-05-01T09:30 JST" into
// validated components and renders them back in a canonical form.
//
// Parsing is all or nothing: every failure is an *Error of one of four
// kinds (format, value, precision or timezone). All functions are safe for
// concurrent use.
package fuzzydatetime

import (
	"math"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// DateTime is a validated set of calendar components. Every component at or
// below Precision was given by the input; every component above it holds its
// default (month and day 1, hour, minute and second 0).
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	Precision Precision
	// TZ is the zero Timezone if no timezone was given.
	TZ Timezone
}

// ParseOptions controls what input is accepted.
type ParseOptions struct {
	// RequiredPrecision is the shallowest precision accepted.
	RequiredPrecision Precision
	// RequireSameSeparators rejects inputs mixing separators within the date
	// or within the time, e.g. "2024/02-29".
	RequireSameSeparators bool
	// TimezoneFormats restricts the accepted timezone shapes. Zero accepts
	// every shape as well as no timezone.
	TimezoneFormats TZFormat
	// StrictOffsets rejects explicit offsets whose hours exceed 23 or whose
	// minutes exceed 59.
	StrictOffsets bool
}

func (o ParseOptions) tzFormats() TZFormat {
	if o.TimezoneFormats == 0 {
		return TZFormatAll
	}
	return o.TimezoneFormats
}

// FormatOptions controls how a DateTime is rendered. The embedded
// ParseOptions apply when normalizing a string.
type FormatOptions struct {
	ParseOptions

	// ZeroPad renders every component but the year with two digits.
	ZeroPad bool
	// MinimumPrecision raises the rendered precision, filling defaults.
	MinimumPrecision Precision
	// DateSeparator is one of "/", "-" or "."; empty means "/".
	DateSeparator string
	// TimeSeparator is one of ":", "-" or "."; empty means ":".
	TimeSeparator string
	// ForceTimezone renders DefaultTimezone when no timezone was given.
	ForceTimezone bool
	// DefaultTimezone is UTC if zero.
	DefaultTimezone Timezone
}

// DefaultFormatOptions returns zero padded options with '/' and ':'
// separators.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		ZeroPad:         true,
		DateSeparator:   "/",
		TimeSeparator:   ":",
		DefaultTimezone: UTC,
	}
}

// HasTimezone returns whether the value carries a timezone.
func (dt DateTime) HasTimezone() bool {
	return !dt.TZ.IsZero()
}

// Equal returns whether both values have the same precision, components and
// timezone.
func (dt DateTime) Equal(o DateTime) bool {
	return dt.Year == o.Year && dt.Month == o.Month && dt.Day == o.Day &&
		dt.Hour == o.Hour && dt.Minute == o.Minute && dt.Second == o.Second &&
		dt.Precision == o.Precision && dt.TZ.Equal(o.TZ)
}

// Time converts to a time.Time in the value's fixed zone, or UTC if it has
// no timezone.
func (dt DateTime) Time() time.Time {
	return time.Date(
		dt.Year,
		time.Month(dt.Month),
		dt.Day,
		dt.Hour,
		dt.Minute,
		dt.Second,
		0,
		dt.TZ.Location(),
	)
}

// FromTime returns a second precision DateTime for t. Zones whose name and
// offset match a table entry stay named; others become explicit offsets.
// Sub-minute zone offsets, such as historical LMT zones, are rounded to the
// nearest minute while the wall clock is kept, so Time may differ from t by
// less than a minute.
func FromTime(t time.Time) DateTime {
	name, offset := t.Zone()
	tz, ok := LookupTimezone(name)
	if !ok || tz.Offset()*60 != offset {
		tz = FixedOffset(int(math.Round(float64(offset) / 60)))
	}
	dt := DateTime{Precision: PrecisionSecond, TZ: tz}
	dt.setComponents(wallClock(t))
	return dt
}

// Rounding selects how WithPrecision drops components.
type Rounding uint8

const (
	// RoundTrunc drops the finer components.
	RoundTrunc Rounding = iota
	// RoundCeil moves up one unit if any finer component is set.
	RoundCeil
	// RoundHalfUp moves up one unit if the next finer component is at least
	// half its range: hour 12, minute 30 or second 30.
	RoundHalfUp
)

func (r Rounding) String() string {
	switch r {
	case RoundTrunc:
		return "trunc"
	case RoundCeil:
		return "ceil"
	case RoundHalfUp:
		return "round"
	}
	return "Rounding(" + strconv.Itoa(int(r)) + ")"
}

// SafeValue implements redact.SafeValue.
func (r Rounding) SafeValue() {}

// WithPrecision truncates or extends dt to p. Dropped components are reset
// to their defaults after rounding, and the timezone is dropped below
// PrecisionHour. RoundCeil and RoundHalfUp are only defined at PrecisionDay
// or deeper; a carry may move into the next day, month or year.
func (dt DateTime) WithPrecision(p Precision, r Rounding) (DateTime, error) {
	if !p.valid() {
		return DateTime{}, errors.Newf("invalid precision %d", p)
	}
	switch r {
	case RoundTrunc:
	case RoundCeil, RoundHalfUp:
		if p < PrecisionDay {
			return DateTime{}, errors.Newf("rounding %s is not defined for precision %s", r, p)
		}
	default:
		return DateTime{}, errors.Newf("unknown rounding %d", r)
	}
	if p >= dt.Precision {
		dt.Precision = p
		return dt, nil
	}

	vals := dt.components()
	up := false
	switch r {
	case RoundCeil:
		for q := p + 1; q <= PrecisionMax; q++ {
			up = up || vals[q] != defaultValue(q)
		}
	case RoundHalfUp:
		half := 30
		if p+1 == PrecisionHour {
			half = 12
		}
		up = vals[p+1] >= half
	}
	for q := p + 1; q <= PrecisionMax; q++ {
		vals[q] = defaultValue(q)
	}
	if up {
		t := time.Date(vals[PrecisionYear], time.Month(vals[PrecisionMonth]), vals[PrecisionDay],
			vals[PrecisionHour], vals[PrecisionMinute], vals[PrecisionSecond], 0, time.UTC)
		switch p {
		case PrecisionDay:
			t = t.AddDate(0, 0, 1)
		case PrecisionHour:
			t = t.Add(time.Hour)
		case PrecisionMinute:
			t = t.Add(time.Minute)
		}
		vals = wallClock(t)
		if y := vals[PrecisionYear]; y > 9999 {
			return DateTime{}, newValueError(dt.String(), ComponentYear, y, 1, 9999)
		}
	}

	dt.setComponents(vals)
	dt.Precision = p
	if p < PrecisionHour {
		dt.TZ = Timezone{}
	}
	return dt, nil
}

// WithDefaults extends dt to p like WithPrecision, but takes the components
// dt does not carry from def. If dt has no timezone and p is at least
// PrecisionHour, def's timezone is used. A p at or below dt's precision
// truncates.
func (dt DateTime) WithDefaults(p Precision, def DateTime) (DateTime, error) {
	if p <= dt.Precision {
		return dt.WithPrecision(p, RoundTrunc)
	}
	if !p.valid() {
		return DateTime{}, errors.Newf("invalid precision %d", p)
	}
	vals, defVals := dt.components(), def.components()
	for q := dt.Precision + 1; q <= p; q++ {
		vals[q] = defVals[q]
	}
	for q := dt.Precision + 1; q <= p; q++ {
		lo, hi := componentRange(q, vals[PrecisionYear], vals[PrecisionMonth])
		if v := vals[q]; v < lo || v > hi {
			return DateTime{}, newValueError(def.String(), q.Component(), v, lo, hi)
		}
	}
	dt.setComponents(vals)
	dt.Precision = p
	if dt.TZ.IsZero() && p >= PrecisionHour {
		dt.TZ = def.TZ
	}
	return dt, nil
}

// Add shifts dt by d, which may be negative, keeping its precision and
// timezone. Components finer than the precision are reset after the shift,
// so adding less than one unit of the precision may leave dt unchanged.
func (dt DateTime) Add(d time.Duration) (DateTime, error) {
	vals := wallClock(dt.Time().Add(d))
	for q := dt.Precision + 1; q <= PrecisionMax; q++ {
		vals[q] = defaultValue(q)
	}
	if y := vals[PrecisionYear]; y < 1 || y > 9999 {
		return DateTime{}, newValueError(dt.String(), ComponentYear, y, 1, 9999)
	}
	dt.setComponents(vals)
	return dt, nil
}

// EnsureTimezone returns dt with tz attached if it has no timezone.
func (dt DateTime) EnsureTimezone(tz Timezone) DateTime {
	if dt.TZ.IsZero() {
		dt.TZ = tz
	}
	return dt
}

// String renders dt with DefaultFormatOptions.
func (dt DateTime) String() string {
	return Format(dt, DefaultFormatOptions())
}

func (dt DateTime) components() [PrecisionMax + 1]int {
	return [...]int{dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second}
}

func (dt *DateTime) setComponents(vals [PrecisionMax + 1]int) {
	dt.Year, dt.Month, dt.Day = vals[PrecisionYear], vals[PrecisionMonth], vals[PrecisionDay]
	dt.Hour, dt.Minute, dt.Second = vals[PrecisionHour], vals[PrecisionMinute], vals[PrecisionSecond]
}

// wallClock returns the calendar components of t in its own location.
func wallClock(t time.Time) [PrecisionMax + 1]int {
	return [...]int{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()}
}

func defaultValue(p Precision) int {
	if p == PrecisionMonth || p == PrecisionDay {
		return 1
	}
	return 0
}
