// Package convert implements the resource-value conversion helpers layered
// on top of a raw lookup result: parsing a value as a signed integer or as
// a loose boolean (grounded on the original library's
// xcb_xrm_resource_value_int).
package convert

import (
	"strconv"
	"strings"
)

// Result distinguishes why a conversion helper did not return a usable
// value from a query that found nothing at all.
type Result int

const (
	// OK means the value was present and convertible.
	OK Result = iota
	// Absent means no resource matched the query.
	Absent
	// Invalid means a resource matched but its value could not be
	// converted to the requested type.
	Invalid
)

// GetLong parses value as a base-10 signed integer. found must be the
// second return of the caller's string lookup: when found is false, GetLong
// reports Absent without inspecting value.
func GetLong(value string, found bool) (int, Result) {
	if !found {
		return 0, Absent
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, Invalid
	}
	return n, OK
}

// GetBool treats value as an integer first (non-zero is true, zero is
// false); failing that, it matches case-insensitively against
// true|on|yes (true) and false|off|no (false). Anything else is Invalid.
func GetBool(value string, found bool) (bool, Result) {
	if !found {
		return false, Absent
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n != 0, OK
	}
	switch strings.ToLower(value) {
	case "true", "on", "yes":
		return true, OK
	case "false", "off", "no":
		return false, OK
	}
	return false, Invalid
}
