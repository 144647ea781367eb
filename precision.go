package fuzzydatetime

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Precision is the deepest calendar field a value carries.
// Precisions are totally ordered; a larger Precision is more precise.
type Precision int8

//go:generate stringer -type=Precision -trimprefix=Precision

const (
	PrecisionYear Precision = iota
	PrecisionMonth
	PrecisionDay
	PrecisionHour
	PrecisionMinute
	PrecisionSecond

	// PrecisionMax is the deepest precision of a date-time.
	PrecisionMax = PrecisionSecond
	// PrecisionDateMax is the deepest precision of a date.
	PrecisionDateMax = PrecisionDay
)

// AtLeast returns whether p is at least as precise as o.
func (p Precision) AtLeast(o Precision) bool {
	return p >= o
}

// IsDate returns whether p is valid in a date-only context.
func (p Precision) IsDate() bool {
	return p >= PrecisionYear && p <= PrecisionDateMax
}

func (p Precision) valid() bool {
	return p >= PrecisionYear && p <= PrecisionMax
}

// Component returns the component the precision ends at, or 0 if p is not
// a valid precision.
func (p Precision) Component() Component {
	if !p.valid() {
		return 0
	}
	return componentOrder[p]
}

// SafeValue implements redact.SafeValue.
func (p Precision) SafeValue() {}

func maxPrecision(a, b Precision) Precision {
	if a > b {
		return a
	}
	return b
}

// ParsePrecision parses a case-insensitive precision name such as "day".
// The empty string is PrecisionYear.
func ParsePrecision(s string) (Precision, error) {
	if s == "" {
		return PrecisionYear, nil
	}
	for p := PrecisionYear; p <= PrecisionMax; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, errors.Newf("unknown precision: %q", s)
}
