package fuzzydatetime

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// TimezoneKind tells a table timezone from an explicit numeric offset.
type TimezoneKind uint8

const (
	// TimezoneNamed is a timezone resolved from an abbreviation or Z.
	TimezoneNamed TimezoneKind = iota + 1
	// TimezoneExplicit is a timezone given as a signed numeric offset.
	TimezoneExplicit
)

func (k TimezoneKind) String() string {
	switch k {
	case TimezoneNamed:
		return "Named"
	case TimezoneExplicit:
		return "Explicit"
	}
	return "TimezoneKind(" + strconv.Itoa(int(k)) + ")"
}

// Timezone is a fixed UTC offset with the label it renders as.
// The zero value means no timezone.
type Timezone struct {
	kind   TimezoneKind
	offset int
	label  string
	region string
}

// IsZero returns whether tz is the absence of a timezone.
func (tz Timezone) IsZero() bool { return tz.kind == 0 }

// Kind returns whether the timezone is named or explicit.
func (tz Timezone) Kind() TimezoneKind { return tz.kind }

// Offset returns the offset from UTC in minutes.
func (tz Timezone) Offset() int { return tz.offset }

// Label returns the canonical rendering: the abbreviation for named
// timezones and ±HH:MM for explicit offsets.
func (tz Timezone) Label() string { return tz.label }

// Region returns a representative IANA name for a named timezone, if known.
func (tz Timezone) Region() string { return tz.region }

func (tz Timezone) String() string { return tz.label }

// Equal returns whether both timezones have the same kind, offset and label.
func (tz Timezone) Equal(o Timezone) bool {
	return tz.kind == o.kind && tz.offset == o.offset && tz.label == o.label
}

// Location returns a fixed zone with the timezone's offset.
func (tz Timezone) Location() *time.Location {
	if tz.IsZero() {
		return time.UTC
	}
	return time.FixedZone(tz.label, tz.offset*60)
}

// OffsetString formats the offset as ±HH:MM, with sep between hours and
// minutes and an optional UTC prefix.
func (tz Timezone) OffsetString(utcPrefix bool, sep string) string {
	sign := byte('+')
	off := tz.offset
	if off < 0 || (off == 0 && strings.HasPrefix(tz.label, "-")) {
		sign = '-'
		off = -off
	}
	var b strings.Builder
	if utcPrefix {
		b.WriteString("UTC")
	}
	b.WriteByte(sign)
	fmt.Fprintf(&b, "%02d%s%02d", off/60, sep, off%60)
	return b.String()
}

// Format renders the timezone in the first of formats that applies, or its
// Label if formats is empty. It returns "" if no format applies.
func (tz Timezone) Format(formats ...TZFormat) string {
	if tz.IsZero() {
		return ""
	}
	if len(formats) == 0 {
		return tz.label
	}
	for _, f := range formats {
		switch f {
		case TZFormatAbbr:
			if tz.kind == TimezoneNamed {
				return tz.label
			}
		case TZFormatZ:
			if tz.offset == 0 {
				return "Z"
			}
		case TZFormatOffsetColon:
			return tz.OffsetString(false, ":")
		case TZFormatOffset:
			return tz.OffsetString(false, "")
		case TZFormatUTCOffsetColon:
			return tz.OffsetString(true, ":")
		case TZFormatUTCOffset:
			return tz.OffsetString(true, "")
		}
	}
	return ""
}

// FixedOffset returns an explicit timezone for the given offset in minutes.
func FixedOffset(minutes int) Timezone {
	tz := Timezone{kind: TimezoneExplicit, offset: minutes}
	tz.label = tz.OffsetString(false, ":")
	return tz
}

// TZFormat is a set of timezone token shapes.
type TZFormat uint8

const (
	// TZFormatNone allows the timezone to be absent.
	TZFormatNone TZFormat = 1 << iota
	// TZFormatAbbr allows table abbreviations, e.g. JST.
	TZFormatAbbr
	// TZFormatZ allows Z.
	TZFormatZ
	// TZFormatOffsetColon allows +hh:mm.
	TZFormatOffsetColon
	// TZFormatOffset allows +h, +hh, +hmm and +hhmm.
	TZFormatOffset
	// TZFormatUTCOffsetColon allows UTC+hh:mm.
	TZFormatUTCOffsetColon
	// TZFormatUTCOffset allows UTC+h, UTC+hh, UTC+hmm and UTC+hhmm.
	TZFormatUTCOffset

	TZFormatAll = TZFormatNone | TZFormatAbbr | TZFormatZ | TZFormatOffsetColon |
		TZFormatOffset | TZFormatUTCOffsetColon | TZFormatUTCOffset
)

var tzFormatNames = []struct {
	f    TZFormat
	name string
}{
	{TZFormatNone, "none"},
	{TZFormatAbbr, "abbr"},
	{TZFormatZ, "z"},
	{TZFormatOffsetColon, "+hh:mm"},
	{TZFormatOffset, "+hhmm"},
	{TZFormatUTCOffsetColon, "utc+hh:mm"},
	{TZFormatUTCOffset, "utc+hhmm"},
}

func (f TZFormat) String() string {
	var names []string
	for _, n := range tzFormatNames {
		if f&n.f != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// SafeValue implements redact.SafeValue.
func (f TZFormat) SafeValue() {}

// ParseTZFormats parses a list of format names such as "abbr" or "+hh:mm"
// into a set.
func ParseTZFormats(names ...string) (TZFormat, error) {
	var ret TZFormat
	for _, name := range names {
		found := false
		for _, n := range tzFormatNames {
			if strings.EqualFold(name, n.name) {
				ret |= n.f
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Newf("unknown timezone format: %q", name)
		}
	}
	return ret, nil
}

// timezoneTable holds the supported abbreviations. Abbreviations that are
// used for several offsets around the world keep a single canonical mapping:
// IST is India, CST is US Central and GST is Gulf.
var timezoneTable = []struct {
	abbr   string
	offset int
	region string
}{
	{"UTC", 0, "Etc/UTC"},
	{"GMT", 0, "Europe/London"},
	{"WET", 0, "Europe/Lisbon"},
	{"WEST", 60, "Europe/Lisbon"},
	{"BST", 60, "Europe/London"},
	{"CET", 60, "Europe/Paris"},
	{"CEST", 120, "Europe/Paris"},
	{"WAT", 60, "Africa/Lagos"},
	{"EET", 120, "Europe/Athens"},
	{"EEST", 180, "Europe/Athens"},
	{"CAT", 120, "Africa/Maputo"},
	{"SAST", 120, "Africa/Johannesburg"},
	{"MSK", 180, "Europe/Moscow"},
	{"EAT", 180, "Africa/Nairobi"},
	{"TRT", 180, "Europe/Istanbul"},
	{"GST", 240, "Asia/Dubai"},
	{"PKT", 300, "Asia/Karachi"},
	{"IST", 330, "Asia/Kolkata"},
	{"NPT", 345, "Asia/Kathmandu"},
	{"ICT", 420, "Asia/Bangkok"},
	{"WIB", 420, "Asia/Jakarta"},
	{"HKT", 480, "Asia/Hong_Kong"},
	{"SGT", 480, "Asia/Singapore"},
	{"PHT", 480, "Asia/Manila"},
	{"AWST", 480, "Australia/Perth"},
	{"KST", 540, "Asia/Seoul"},
	{"JST", 540, "Asia/Tokyo"},
	{"ACST", 570, "Australia/Adelaide"},
	{"AEST", 600, "Australia/Sydney"},
	{"ACDT", 630, "Australia/Adelaide"},
	{"AEDT", 660, "Australia/Sydney"},
	{"NZST", 720, "Pacific/Auckland"},
	{"NZDT", 780, "Pacific/Auckland"},
	{"HST", -600, "Pacific/Honolulu"},
	{"AKST", -540, "America/Anchorage"},
	{"AKDT", -480, "America/Anchorage"},
	{"PST", -480, "America/Los_Angeles"},
	{"PDT", -420, "America/Los_Angeles"},
	{"MST", -420, "America/Denver"},
	{"MDT", -360, "America/Denver"},
	{"CST", -360, "America/Chicago"},
	{"CDT", -300, "America/Chicago"},
	{"EST", -300, "America/New_York"},
	{"EDT", -240, "America/New_York"},
	{"AST", -240, "America/Halifax"},
	{"CLT", -240, "America/Santiago"},
	{"ADT", -180, "America/Halifax"},
	{"BRT", -180, "America/Sao_Paulo"},
	{"ART", -180, "America/Argentina/Buenos_Aires"},
	{"NST", -210, "America/St_Johns"},
	{"NDT", -150, "America/St_Johns"},
}

// timezonesByAbbr is keyed by lower case abbreviation. It is never written
// after initialization.
var timezonesByAbbr = func() map[string]Timezone {
	ret := make(map[string]Timezone, len(timezoneTable))
	for _, e := range timezoneTable {
		key := strings.ToLower(e.abbr)
		if _, ok := ret[key]; ok {
			panic(fmt.Sprintf("duplicate timezone abbreviation %s", e.abbr))
		}
		ret[key] = Timezone{kind: TimezoneNamed, offset: e.offset, label: e.abbr, region: e.region}
	}
	return ret
}()

// UTC is the timezone Z resolves to.
var UTC = timezonesByAbbr["utc"]

// LookupTimezone looks up an abbreviation in the timezone table,
// ignoring case.
func LookupTimezone(abbr string) (Timezone, bool) {
	tz, ok := timezonesByAbbr[strings.ToLower(abbr)]
	return tz, ok
}

// Timezones returns every table timezone, ordered by offset then abbreviation.
func Timezones() []Timezone {
	ret := make([]Timezone, 0, len(timezonesByAbbr))
	for _, tz := range timezonesByAbbr {
		ret = append(ret, tz)
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].offset != ret[j].offset {
			return ret[i].offset < ret[j].offset
		}
		return ret[i].label < ret[j].label
	})
	return ret
}

// ParseTimezone resolves a standalone timezone token such as "JST", "Z",
// "+0930" or "UTC-5". Every failure is a KindTimezone *Error.
func ParseTimezone(s string) (Timezone, error) {
	tok, err := matchTZToken(s, 0)
	if err != nil {
		return Timezone{}, newTimezoneError(s, s, "malformed timezone %q", s)
	}
	return resolveTimezone(s, &tok, ParseOptions{})
}

// resolveTimezone turns a matched token into a Timezone. A nil token is
// the absence of a timezone.
func resolveTimezone(input string, tok *tzToken, opts ParseOptions) (Timezone, error) {
	formats := opts.tzFormats()
	if tok == nil {
		if formats&TZFormatNone == 0 {
			return Timezone{}, newTimezoneError(input, "", "missing timezone")
		}
		return Timezone{}, nil
	}

	switch tok.tokenType {
	case tzTokenTypeAbbr:
		if strings.EqualFold(tok.val, "z") {
			if formats&TZFormatZ == 0 {
				return Timezone{}, newTimezoneError(input, tok.val, "timezone Z is not allowed")
			}
			return UTC, nil
		}
		tz, ok := LookupTimezone(tok.val)
		if !ok {
			return Timezone{}, newTimezoneError(input, tok.val, "unknown timezone %q", tok.val)
		}
		if formats&TZFormatAbbr == 0 {
			return Timezone{}, newTimezoneError(input, tok.val, "timezone abbreviations are not allowed")
		}
		return tz, nil

	case tzTokenTypeOffset, tzTokenTypeUTCOffset:
		var want TZFormat
		switch {
		case tok.tokenType == tzTokenTypeOffset && tok.colon:
			want = TZFormatOffsetColon
		case tok.tokenType == tzTokenTypeOffset:
			want = TZFormatOffset
		case tok.colon:
			want = TZFormatUTCOffsetColon
		default:
			want = TZFormatUTCOffset
		}
		if formats&want == 0 {
			return Timezone{}, newTimezoneError(input, tok.val, "timezone format %s is not allowed", want)
		}
		hours, err := strconv.Atoi(tok.hours)
		if err != nil {
			return Timezone{}, newTimezoneError(input, tok.val, "malformed offset hours %q", tok.hours)
		}
		minutes, err := strconv.Atoi(tok.minutes)
		if err != nil {
			return Timezone{}, newTimezoneError(input, tok.val, "malformed offset minutes %q", tok.minutes)
		}
		if opts.StrictOffsets && (hours > 23 || minutes > 59) {
			return Timezone{}, newTimezoneError(input, tok.val, "offset %q is out of range", tok.val)
		}
		offset := hours*60 + minutes
		if tok.sign == '-' {
			offset = -offset
		}
		return Timezone{
			kind:   TimezoneExplicit,
			offset: offset,
			label:  fmt.Sprintf("%c%02d:%02d", tok.sign, hours, minutes),
		}, nil

	case tzTokenTypeRegion:
		return Timezone{}, newTimezoneError(input, tok.val, "unsupported timezone name %q", tok.val)
	}
	return Timezone{}, newTimezoneError(input, tok.val, "unknown timezone %q", tok.val)
}
