package fuzzydatetime

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func formatResult(dt DateTime) string {
	tz := "none"
	if dt.HasTimezone() {
		tz = fmt.Sprintf("%s(%s,%d)", dt.TZ.Label(), dt.TZ.Kind(), dt.TZ.Offset())
	}
	return fmt.Sprintf(
		"%04d-%02d-%02d %02d:%02d:%02d prec=%s tz=%s",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Precision, tz,
	)
}

func formatError(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return fmt.Sprintf("%s failure: %s", e.Kind, e)
	}
	return fmt.Sprintf("error: %s", err)
}

func parseOptionsFromArgs(t *testing.T, d *datadriven.TestData) ParseOptions {
	var opts ParseOptions
	for _, arg := range d.CmdArgs {
		switch arg.Key {
		case "required":
			p, err := ParsePrecision(arg.Vals[0])
			require.NoError(t, err)
			opts.RequiredPrecision = p
		case "same-sep":
			opts.RequireSameSeparators = true
		case "tz-formats":
			f, err := ParseTZFormats(arg.Vals...)
			require.NoError(t, err)
			opts.TimezoneFormats = f
		case "strict":
			opts.StrictOffsets = true
		}
	}
	return opts
}

func TestParse(t *testing.T) {
	datadriven.RunTest(t, "testdata/parse", func(t *testing.T, d *datadriven.TestData) string {
		var parse func(string, ParseOptions) (DateTime, error)
		switch d.Cmd {
		case "parse-datetime":
			parse = ParseDateTime
		case "parse-date":
			parse = ParseDate
		default:
			t.Fatalf("command unknown: %s", d.Cmd)
		}
		opts := parseOptionsFromArgs(t, d)

		ret := []string{}
		for _, line := range strings.Split(d.Input, "\n") {
			dt, err := parse(line, opts)
			if err != nil {
				ret = append(ret, fmt.Sprintf("%s -> %s", line, formatError(err)))
				continue
			}
			ret = append(ret, fmt.Sprintf("%s -> %s", line, formatResult(dt)))
		}
		return strings.Join(ret, "\n")
	})
}

func TestParseErrorKinds(t *testing.T) {
	for _, tc := range []struct {
		s     string
		opts  ParseOptions
		kind  ErrorKind
		field Component
		value string
		is    error
	}{
		{"2023/02/29", ParseOptions{}, KindValue, ComponentDay, "29", ErrValue},
		{"2024/00", ParseOptions{}, KindValue, ComponentMonth, "0", ErrValue},
		{"2024/05", ParseOptions{RequiredPrecision: PrecisionDay}, KindPrecision, ComponentDay, "", ErrPrecision},
		{"2024/05/10 09:00 XYZ", ParseOptions{}, KindTimezone, ComponentTZ, "XYZ", ErrTimezone},
		{"2024/05/10 09:00 America/New_York", ParseOptions{}, KindTimezone, ComponentTZ, "America/New_York", ErrTimezone},
		{"2024/05/10 trailing", ParseOptions{}, KindFormat, 0, "", ErrFormat},
		{"", ParseOptions{}, KindFormat, 0, "", ErrFormat},
		{" 2024", ParseOptions{}, KindFormat, 0, "", ErrFormat},
		{"2024 ", ParseOptions{}, KindFormat, 0, "", ErrFormat},
	} {
		t.Run(tc.s, func(t *testing.T) {
			_, err := ParseDateTime(tc.s, tc.opts)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.is), "expected %v, got %v", tc.is, err)

			var e *Error
			require.True(t, errors.As(err, &e))
			require.Equal(t, tc.kind, e.Kind)
			require.Equal(t, tc.s, e.Input)
			require.Equal(t, tc.field, e.Field)
			require.Equal(t, tc.value, e.Value)

			kind, ok := KindOf(err)
			require.True(t, ok)
			require.Equal(t, tc.kind, kind)
			for _, other := range []error{ErrFormat, ErrValue, ErrPrecision, ErrTimezone} {
				if other != tc.is {
					require.False(t, errors.Is(err, other))
				}
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	require.True(t, ValidateDateTimeString("2024/05/10 09:00 JST", ParseOptions{}))
	require.False(t, ValidateDateTimeString("2024/05/10 09:00 XYZ", ParseOptions{}))
	require.False(t, ValidateDateTimeString("2024/05", ParseOptions{RequiredPrecision: PrecisionDay}))
	require.True(t, ValidateDateString("2024/02/29", ParseOptions{}))
	require.False(t, ValidateDateString("2023/02/29", ParseOptions{}))
	require.False(t, ValidateDateString("2024/02/29 10:00", ParseOptions{}))
	require.False(t, ValidateDateString("2024/02-29", ParseOptions{RequireSameSeparators: true}))
}

func TestParseDefaultsUnspecifiedComponents(t *testing.T) {
	dt, err := ParseDateTime("2024/05/10", ParseOptions{RequiredPrecision: PrecisionDay})
	require.NoError(t, err)
	require.Equal(t, DateTime{Year: 2024, Month: 5, Day: 10, Precision: PrecisionDay}, dt)

	// A month only input never checks a defaulted day against the month.
	dt, err = ParseDate("2023/02", ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, DateTime{Year: 2023, Month: 2, Day: 1, Precision: PrecisionMonth}, dt)
}

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{1600, true},
		{1700, false},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
	} {
		t.Run(fmt.Sprint(tc.year), func(t *testing.T) {
			require.Equal(t, tc.leap, isLeapYear(tc.year))
			_, err := ParseDate(fmt.Sprintf("%04d/02/29", tc.year), ParseOptions{})
			if tc.leap {
				require.NoError(t, err)
			} else {
				require.True(t, errors.Is(err, ErrValue))
			}
		})
	}
}

func TestDayOfMonthRange(t *testing.T) {
	for year := 1582; year <= 2400; year++ {
		for month := 1; month <= 12; month++ {
			last := daysInMonth(year, month)
			_, err := ParseDate(fmt.Sprintf("%04d/%d/%d", year, month, last), ParseOptions{})
			require.NoError(t, err)

			s := fmt.Sprintf("%04d/%d/%d", year, month, last+1)
			_, err = ParseDate(s, ParseOptions{})
			var e *Error
			require.True(t, errors.As(err, &e), "%s: %v", s, err)
			require.Equal(t, KindValue, e.Kind, s)
			require.Equal(t, ComponentDay, e.Field, s)
		}
	}
}
