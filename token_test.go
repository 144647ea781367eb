package fuzzydatetime

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestMatchDateTime(t *testing.T) {
	datadriven.RunTest(t, "testdata/tokenize", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "match":
			dateOnly := false
			for _, arg := range d.CmdArgs {
				switch arg.Key {
				case "date":
					dateOnly = true
				default:
					t.Fatalf("arg unknown for cmd %s: %s", d.Cmd, arg.Key)
				}
			}
			m, err := matchDateTime(d.Input, dateOnly)
			if err != nil {
				return fmt.Sprintf("error: %s", err)
			}

			ret := []string{}
			for p := PrecisionYear; p <= PrecisionMax; p++ {
				if !m.hasSeen(p.Component()) {
					continue
				}
				f := m.fields[p]
				line := fmt.Sprintf("%s: %s", p.Component(), f.val)
				if f.sep != 0 {
					line += fmt.Sprintf(" sep=%c", f.sep)
				}
				ret = append(ret, fmt.Sprintf("%s @%d", line, f.idx))
			}
			if m.tz != nil {
				ret = append(ret, fmt.Sprintf("tz: %s %s @%d", m.tz.tokenType, m.tz.val, m.tz.idx))
			}
			ret = append(ret, fmt.Sprintf("precision: %s", m.precision()))
			return strings.Join(ret, "\n")
		default:
			t.Fatalf("command unknown: %s", d.Cmd)
		}
		return ""
	})
}

func TestMatchDateTimeError(t *testing.T) {
	for _, tc := range []struct {
		s   string
		err error
	}{
		{"2024/05/10 ", newFormatError("2024/05/10 ", "expected 1 or 2 digits for hour at index %d", redact.Safe(11))},
		{"2024/05/10 09:00 ", newFormatError("2024/05/10 09:00 ", "expected timezone after space")},
		{"202405", newFormatError("202405", "expected a 4-digit year")},
		{"2024/123", newFormatError("2024/123", "expected 1 or 2 digits for %s at index %d", ComponentMonth, redact.Safe(5))},
	} {
		t.Run(tc.s, func(t *testing.T) {
			_, err := matchDateTime(tc.s, false /* dateOnly */)
			require.Error(t, err)
			require.Equal(t, tc.err, err)
		})
	}
}

func TestMatchPrecisionStopsAtFirstGap(t *testing.T) {
	m := match{}
	m.markSeen(PrecisionYear, field{val: "2024"})
	m.markSeen(PrecisionMonth, field{val: "5"})
	m.markSeen(PrecisionHour, field{val: "9"})
	require.Equal(t, PrecisionMonth, m.precision())
}
