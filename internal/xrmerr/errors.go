// Package xrmerr defines the error taxonomy for the resource database:
// parse failures (from the entry parser), not-found and invalid-conversion
// sentinels (from queries and the convenience converters), and the adapter
// errors used by file and include resolution.
package xrmerr

import (
	"errors"
	"fmt"
	"strings"
)

// ParseErrorKind categorizes why an entry specification failed to parse.
type ParseErrorKind string

const (
	KindEmptyPath        ParseErrorKind = "empty_path"
	KindTrailingWildcard ParseErrorKind = "trailing_wildcard"
	KindIllegalChar      ParseErrorKind = "illegal_char"
	KindMissingValue     ParseErrorKind = "missing_value"
	KindColonInQuery     ParseErrorKind = "colon_in_query"
	KindColonBeforePath  ParseErrorKind = "colon_before_path"
)

// ParseError reports a malformed entry line, with enough position context
// to render a single-line, caret-pointing message similar to a compiler
// diagnostic.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
	Line    string
	Col     int // 1-based byte offset into Line
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at column %d", e.Message, e.Col)
	if e.Line != "" {
		b.WriteString("\n  ")
		b.WriteString(e.Line)
		b.WriteString("\n  ")
		if e.Col > 1 {
			b.WriteString(strings.Repeat(" ", e.Col-1))
		}
		b.WriteString("^")
	}
	return b.String()
}

// Kind reports the category of a *ParseError, or "" if err is not one.
func Kind(err error) ParseErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// Sentinel errors for the non-parse parts of the taxonomy.
var (
	// ErrNotFound is returned when no database entry matches a query.
	ErrNotFound = errors.New("xrm: resource not found")

	// ErrInvalidConversion is returned when a resource value is present but
	// cannot be converted to the requested scalar type.
	ErrInvalidConversion = errors.New("xrm: value not convertible")

	// ErrIncludeCycle is returned by the file adapter when #include
	// directives form a cycle.
	ErrIncludeCycle = errors.New("xrm: include cycle detected")
)
