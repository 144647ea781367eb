package fuzzydatetime

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrorKind classifies why an input could not be interpreted.
type ErrorKind uint8

//go:generate stringer -type=ErrorKind -trimprefix=Kind

const (
	// KindFormat means the input does not match the grammar, or breaks a
	// separator consistency rule the caller opted into.
	KindFormat ErrorKind = iota
	// KindValue means a numeric field is out of its valid range.
	KindValue
	// KindPrecision means the input is valid but shallower than required.
	KindPrecision
	// KindTimezone means a timezone token could not be resolved.
	KindTimezone
)

// SafeValue implements redact.SafeValue.
func (k ErrorKind) SafeValue() {}

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrFormat    = errors.New("format failure")
	ErrValue     = errors.New("value failure")
	ErrPrecision = errors.New("precision failure")
	ErrTimezone  = errors.New("timezone failure")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindFormat:
		return ErrFormat
	case KindValue:
		return ErrValue
	case KindPrecision:
		return ErrPrecision
	case KindTimezone:
		return ErrTimezone
	}
	return nil
}

// Error is returned for every input that cannot be interpreted.
// The raw input and values are user data and are redacted when the error is
// formatted with redact.
type Error struct {
	Kind ErrorKind
	// Input is the string that was being parsed.
	Input string
	// Field is the offending component, if any.
	Field Component
	// Value is the offending raw text, e.g. the day digits or timezone token.
	Value string
	// Required is the precision the caller asked for on a KindPrecision error.
	Required Precision

	msg redact.RedactableString
}

var _ error = (*Error)(nil)
var _ redact.SafeFormatter = (*Error)(nil)

func newFormatError(input string, format string, args ...interface{}) *Error {
	return &Error{Kind: KindFormat, Input: input, msg: redact.Sprintf(format, args...)}
}

func newValueError(input string, field Component, value int, lo, hi int) *Error {
	return &Error{
		Kind:  KindValue,
		Input: input,
		Field: field,
		Value: strconv.Itoa(value),
		msg:   redact.Sprintf("%s %d is out of range [%d, %d]", field, value, redact.Safe(lo), redact.Safe(hi)),
	}
}

func newPrecisionError(input string, got, required Precision) *Error {
	return &Error{
		Kind:     KindPrecision,
		Input:    input,
		Field:    required.Component(),
		Required: required,
		msg:      redact.Sprintf("precision %s does not meet required precision %s", got, required),
	}
}

func newTimezoneError(input string, token string, format string, args ...interface{}) *Error {
	return &Error{
		Kind:  KindTimezone,
		Input: input,
		Field: ComponentTZ,
		Value: token,
		msg:   redact.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return redact.Sprint(e).StripMarkers()
}

// Description returns the reason for the failure without the input.
func (e *Error) Description() string {
	return e.msg.StripMarkers()
}

// SafeFormat implements redact.SafeFormatter.
func (e *Error) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("error parsing %q: %s", e.Input, e.msg)
}

// Is makes errors.Is report true for the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
