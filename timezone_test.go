package fuzzydatetime

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseTimezone(t *testing.T) {
	datadriven.RunTest(t, "testdata/timezone", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "resolve":
			ret := []string{}
			for _, line := range strings.Split(d.Input, "\n") {
				tz, err := ParseTimezone(line)
				if err != nil {
					ret = append(ret, fmt.Sprintf("%s -> %s", line, formatError(err)))
					continue
				}
				ret = append(ret, fmt.Sprintf("%s -> %s %s %d", line, tz.Label(), tz.Kind(), tz.Offset()))
			}
			return strings.Join(ret, "\n")
		case "format":
			// Each line is a timezone followed by the formats to try.
			ret := []string{}
			for _, line := range strings.Split(d.Input, "\n") {
				parts := strings.Fields(line)
				tz, err := ParseTimezone(parts[0])
				require.NoError(t, err)
				var formats []TZFormat
				for _, name := range parts[1:] {
					f, err := ParseTZFormats(name)
					require.NoError(t, err)
					formats = append(formats, f)
				}
				ret = append(ret, fmt.Sprintf("%s -> %q", line, tz.Format(formats...)))
			}
			return strings.Join(ret, "\n")
		default:
			t.Fatalf("command unknown: %s", d.Cmd)
		}
		return ""
	})
}

func TestTimezoneTable(t *testing.T) {
	tzs := Timezones()
	require.GreaterOrEqual(t, len(tzs), 40)
	require.Len(t, tzs, len(timezoneTable))

	seen := map[string]bool{}
	for i, tz := range tzs {
		require.Equal(t, TimezoneNamed, tz.Kind())
		require.Equal(t, strings.ToUpper(tz.Label()), tz.Label())
		require.False(t, seen[tz.Label()], "duplicate %s", tz.Label())
		seen[tz.Label()] = true
		if i > 0 {
			prev := tzs[i-1]
			require.True(
				t,
				prev.Offset() < tz.Offset() || (prev.Offset() == tz.Offset() && prev.Label() < tz.Label()),
				"%s sorted after %s", tz.Label(), prev.Label(),
			)
		}

		got, ok := LookupTimezone(strings.ToLower(tz.Label()))
		require.True(t, ok)
		require.True(t, got.Equal(tz))
	}
	require.False(t, seen["Z"], "Z is resolved outside the table")

	_, ok := LookupTimezone("XYZ")
	require.False(t, ok)
}

func TestTimezoneRegionOffsets(t *testing.T) {
	// Every representative region must observe the table offset at some
	// point of the year, either as standard or as daylight saving time.
	for _, tz := range Timezones() {
		loc, err := time.LoadLocation(tz.Region())
		if err != nil {
			t.Skipf("no zoneinfo available: %v", err)
		}
		found := false
		for month := time.January; month <= time.December; month++ {
			_, off := time.Date(2024, month, 15, 12, 0, 0, 0, time.UTC).In(loc).Zone()
			if off == tz.Offset()*60 {
				found = true
				break
			}
		}
		require.True(t, found, "%s is never %s in %s", tz.Label(), tz.OffsetString(false, ":"), tz.Region())
	}
}

func TestTimezoneLocation(t *testing.T) {
	tz, err := ParseTimezone("+0530")
	require.NoError(t, err)
	ts := time.Date(2024, 5, 10, 9, 0, 0, 0, tz.Location())
	_, off := ts.Zone()
	require.Equal(t, 330*60, off)

	require.Equal(t, time.UTC, Timezone{}.Location())
}

func TestFixedOffset(t *testing.T) {
	for _, tc := range []struct {
		minutes int
		want    string
	}{
		{0, "+00:00"},
		{540, "+09:00"},
		{-330, "-05:30"},
		{-90, "-01:30"},
	} {
		tz := FixedOffset(tc.minutes)
		require.Equal(t, tc.want, tz.Label())
		require.Equal(t, TimezoneExplicit, tz.Kind())

		got, err := ParseTimezone(tz.Label())
		require.NoError(t, err)
		if diff := cmp.Diff(tz, got); diff != "" {
			t.Errorf("ParseTimezone(%q) mismatch (-want +got):\n%s", tz.Label(), diff)
		}
	}
}

func TestParseTZFormats(t *testing.T) {
	f, err := ParseTZFormats("none", "ABBR", "+hh:mm")
	require.NoError(t, err)
	require.Equal(t, TZFormatNone|TZFormatAbbr|TZFormatOffsetColon, f)
	require.Equal(t, "none,abbr,+hh:mm", f.String())

	_, err = ParseTZFormats("name")
	require.Error(t, err)
	_, ok := KindOf(err)
	require.False(t, ok)
}

func TestParseTimezoneErrorKind(t *testing.T) {
	for _, s := range []string{"XYZ", "Asia/Tokyo", "+12345", "", "+"} {
		_, err := ParseTimezone(s)
		require.True(t, errors.Is(err, ErrTimezone), "%q: %v", s, err)
	}
}
