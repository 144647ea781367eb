package fuzzydatetime

import "strings"

// Component is a component of date or time.
type Component uint8

const (
	ComponentYear Component = 1 << iota
	ComponentMonth
	ComponentDay
	ComponentHour
	ComponentMinute
	ComponentSecond
	ComponentTZ

	ComponentDateMask = (ComponentYear | ComponentMonth | ComponentDay)
	ComponentTimeMask = (ComponentHour | ComponentMinute | ComponentSecond)
)

// componentOrder lists the calendar components from least to most precise,
// indexed by Precision.
var componentOrder = [...]Component{
	ComponentYear,
	ComponentMonth,
	ComponentDay,
	ComponentHour,
	ComponentMinute,
	ComponentSecond,
}

var componentNames = map[Component]string{
	ComponentYear:   "year",
	ComponentMonth:  "month",
	ComponentDay:    "day",
	ComponentHour:   "hour",
	ComponentMinute: "minute",
	ComponentSecond: "second",
	ComponentTZ:     "timezone",
}

// String returns the lower case name of the component, joining multiple
// components with '|'.
func (c Component) String() string {
	if c == 0 {
		return ""
	}
	if name, ok := componentNames[c]; ok {
		return name
	}
	var names []string
	for bit := ComponentYear; bit <= ComponentTZ; bit <<= 1 {
		if c&bit != 0 {
			names = append(names, componentNames[bit])
		}
	}
	return strings.Join(names, "|")
}

// SafeValue implements redact.SafeValue.
func (c Component) SafeValue() {}
