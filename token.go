package fuzzydatetime

import (
	"strings"

	"github.com/cockroachdb/redact"
)

const (
	dateSeparators = "/-."
	timeSeparators = ":-."
)

type tzTokenType int

//go:generate stringer -type=tzTokenType -trimprefix=tzTokenType

const (
	// tzTokenTypeAbbr is a bare letter sequence, e.g. JST or Z.
	tzTokenTypeAbbr tzTokenType = iota
	// tzTokenTypeOffset is a signed offset, e.g. +0900 or -05:00.
	tzTokenTypeOffset
	// tzTokenTypeUTCOffset is a signed offset prefixed by UTC, e.g. UTC+9.
	tzTokenTypeUTCOffset
	// tzTokenTypeRegion is an IANA style name, e.g. Asia/Tokyo.
	tzTokenTypeRegion
)

// tzToken is the timezone suffix of a datetime.
type tzToken struct {
	tokenType tzTokenType
	val       string
	idx       int

	// Only set for offsets.
	sign    byte
	hours   string
	minutes string
	colon   bool
}

// field is a single matched calendar component.
type field struct {
	val string
	// sep is the separator preceding the field; zero for the year.
	sep byte
	idx int
}

// match is the result of matching an input against the datetime grammar.
// Fields are only ever captured in order, so the set of seen components is
// always a prefix of year, month, day, hour, minute, second.
type match struct {
	input  string
	seen   Component
	fields [PrecisionMax + 1]field
	tz     *tzToken
}

func (m *match) hasSeen(c Component) bool {
	return (m.seen & c) == c
}

func (m *match) markSeen(p Precision, f field) {
	m.seen |= p.Component()
	m.fields[p] = f
}

// precision returns the deepest component captured, stopping at the first gap.
func (m *match) precision() Precision {
	for p := PrecisionMonth; p <= PrecisionMax; p++ {
		if !m.hasSeen(p.Component()) {
			return p - 1
		}
	}
	return PrecisionMax
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// matchDateTime matches s against
//
//	YEAR (SEP MONTH (SEP DAY ([ T] HOUR (SEP MINUTE (SEP SECOND)?)? [' '] TZ?)?)?)?
//
// or, if dateOnly is set, against the prefix through DAY (with an optional
// trailing 'T'). The whole string must match.
func matchDateTime(s string, dateOnly bool) (match, error) {
	m := match{input: s}
	i := 0
	advanceWhen := func(f func(b byte) bool) {
		for i < len(s) && f(s[i]) {
			i++
		}
	}
	// digitsAt returns the length of the digit run starting at j.
	digitsAt := func(j int) int {
		n := 0
		for j+n < len(s) && isDigit(s[j+n]) {
			n++
		}
		return n
	}
	unexpected := func() error {
		if i >= len(s) {
			return newFormatError(s, "unexpected end of input")
		}
		return newFormatError(s, "unexpected character %q at index %d", rune(s[i]), redact.Safe(i))
	}

	// Year.
	start := i
	advanceWhen(isDigit)
	if i-start != 4 {
		return match{}, newFormatError(s, "expected a 4-digit year")
	}
	m.markSeen(PrecisionYear, field{val: s[start:i], idx: start})

	// Month and day.
	for _, p := range []Precision{PrecisionMonth, PrecisionDay} {
		if i == len(s) {
			return m, nil
		}
		if strings.IndexByte(dateSeparators, s[i]) < 0 {
			return match{}, unexpected()
		}
		sep := s[i]
		i++
		start := i
		advanceWhen(isDigit)
		if n := i - start; n < 1 || n > 2 {
			return match{}, newFormatError(s, "expected 1 or 2 digits for %s at index %d", p.Component(), redact.Safe(start))
		}
		m.markSeen(p, field{val: s[start:i], sep: sep, idx: start})
	}

	if i == len(s) {
		return m, nil
	}
	if dateOnly {
		if s[i] == 'T' && i+1 == len(s) {
			return m, nil
		}
		return match{}, unexpected()
	}

	// Hour.
	if s[i] != ' ' && s[i] != 'T' {
		return match{}, unexpected()
	}
	i++
	start = i
	advanceWhen(isDigit)
	if n := i - start; n < 1 || n > 2 {
		return match{}, newFormatError(s, "expected 1 or 2 digits for hour at index %d", redact.Safe(start))
	}
	m.markSeen(PrecisionHour, field{val: s[start:i], idx: start})

	// Minute and second. A separator and digits only start a component if
	// whatever follows them can still complete the grammar; otherwise they
	// are left for the timezone.
	for _, p := range []Precision{PrecisionMinute, PrecisionSecond} {
		if i == len(s) || strings.IndexByte(timeSeparators, s[i]) < 0 {
			break
		}
		n := digitsAt(i + 1)
		if n < 1 || n > 2 {
			break
		}
		if next := i + 1 + n; next < len(s) {
			c := s[next]
			ok := c == ' ' || c == '+' || c == '-' || isLetter(c)
			if p == PrecisionMinute {
				ok = ok || strings.IndexByte(timeSeparators, c) >= 0
			}
			if !ok {
				break
			}
		}
		sep := s[i]
		i++
		m.markSeen(p, field{val: s[i : i+n], sep: sep, idx: i})
		i += n
	}

	if i == len(s) {
		return m, nil
	}

	// Timezone.
	if s[i] == ' ' {
		i++
	}
	tz, err := matchTZToken(s, i)
	if err != nil {
		return match{}, err
	}
	m.tz = &tz
	m.seen |= ComponentTZ
	return m, nil
}

// matchTZToken matches the remainder of s from start as a timezone token.
func matchTZToken(s string, start int) (tzToken, error) {
	i := start
	tok := tzToken{idx: start, val: s[start:]}
	if i == len(s) {
		return tzToken{}, newFormatError(s, "expected timezone after space")
	}

	switch {
	case s[i] == '+' || s[i] == '-':
		tok.tokenType = tzTokenTypeOffset
	case isLetter(s[i]):
		for i < len(s) && (isLetter(s[i]) || s[i] == '_') {
			i++
		}
		switch {
		case i == len(s):
			tok.tokenType = tzTokenTypeAbbr
			return tok, nil
		case s[i] == '/':
			for i < len(s) && (isLetter(s[i]) || isDigit(s[i]) || strings.IndexByte("_/+-", s[i]) >= 0) {
				i++
			}
			if i != len(s) || s[len(s)-1] == '/' {
				return tzToken{}, newFormatError(s, "malformed timezone name at index %d", redact.Safe(start))
			}
			tok.tokenType = tzTokenTypeRegion
			return tok, nil
		case (s[i] == '+' || s[i] == '-') && strings.EqualFold(s[start:i], "utc"):
			tok.tokenType = tzTokenTypeUTCOffset
		default:
			return tzToken{}, newFormatError(s, "unexpected character %q in timezone at index %d", rune(s[i]), redact.Safe(i))
		}
	default:
		return tzToken{}, newFormatError(s, "unexpected character %q at index %d", rune(s[i]), redact.Safe(i))
	}

	// Signed offset: [+-](h|hh|hmm|hhmm|h:m|hh:mm ...).
	tok.sign = s[i]
	i++
	digitStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	n := i - digitStart
	if i < len(s) && s[i] == ':' {
		if n < 1 || n > 2 {
			return tzToken{}, newFormatError(s, "expected 1 or 2 offset hour digits at index %d", redact.Safe(digitStart))
		}
		tok.hours = s[digitStart:i]
		tok.colon = true
		i++
		minuteStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if m := i - minuteStart; m < 1 || m > 2 {
			return tzToken{}, newFormatError(s, "expected 1 or 2 offset minute digits at index %d", redact.Safe(minuteStart))
		}
		tok.minutes = s[minuteStart:i]
	} else {
		switch n {
		case 1, 2:
			tok.hours, tok.minutes = s[digitStart:i], "0"
		case 3:
			tok.hours, tok.minutes = s[digitStart:digitStart+1], s[digitStart+1:i]
		case 4:
			tok.hours, tok.minutes = s[digitStart:digitStart+2], s[digitStart+2:i]
		default:
			return tzToken{}, newFormatError(s, "expected 1 to 4 offset digits at index %d", redact.Safe(digitStart))
		}
	}
	if i != len(s) {
		return tzToken{}, newFormatError(s, "unexpected character %q in timezone at index %d", rune(s[i]), redact.Safe(i))
	}
	return tok, nil
}
