// Package xrm is the public facade over the resource-database core: a
// textual, X11-resource-style config store with name/class lookup and
// wildcard precedence matching.
package xrm

import (
	"context"

	"github.com/cwbudde/go-xrm/adapters"
	"github.com/cwbudde/go-xrm/internal/convert"
	"github.com/cwbudde/go-xrm/internal/database"
	"github.com/cwbudde/go-xrm/internal/entry"
	"github.com/cwbudde/go-xrm/internal/matcher"
	"github.com/cwbudde/go-xrm/internal/xrmerr"
)

// Re-exported sentinels and error types so callers never need to import
// the internal packages directly.
var (
	ErrNotFound          = xrmerr.ErrNotFound
	ErrInvalidConversion = xrmerr.ErrInvalidConversion
	ErrIncludeCycle      = xrmerr.ErrIncludeCycle
)

// ParseError is returned by any operation that parses a resource line or
// a query path and finds it malformed.
type ParseError = xrmerr.ParseError

// PropertyFetcher obtains the resource-manager text from a host's
// windowing layer; see adapters.PropertyFetcher.
type PropertyFetcher = adapters.PropertyFetcher

// SearchConfig overrides DatabaseFromDefault's source priority order; see
// adapters.SearchConfig.
type SearchConfig = adapters.SearchConfig

// StaticProperty wraps a pre-fetched resource-manager string as a
// PropertyFetcher, see adapters.StaticProperty.
func StaticProperty(s string) PropertyFetcher { return adapters.StaticProperty(s) }

// LoadSearchConfig reads a YAML search-order file; see
// adapters.LoadSearchConfig.
func LoadSearchConfig(path string) (*SearchConfig, error) {
	return adapters.LoadSearchConfig(path)
}

// Database is an ordered collection of resource entries, insert-or-replace
// by specifier, queryable by (name, class) pair.
type Database struct {
	inner *database.Database
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{inner: database.New()}
}

// DatabaseFromString parses multi-line resource text.
// Empty input yields an empty database, not an error.
func DatabaseFromString(text string) *Database {
	return &Database{inner: database.FromString(text)}
}

// DatabaseFromFile reads path, resolves its #include directives, and
// parses the expanded text.
func DatabaseFromFile(path string) (*Database, error) {
	db, err := adapters.FromFile(path)
	if err != nil {
		return nil, err
	}
	return &Database{inner: db}, nil
}

// DatabaseFromResourceProperty fetches text via f and parses it.
func DatabaseFromResourceProperty(ctx context.Context, f PropertyFetcher) (*Database, error) {
	db, err := adapters.FromResourceProperty(ctx, f)
	if err != nil {
		return nil, err
	}
	return &Database{inner: db}, nil
}

// DatabaseFromDefault composes a database from the conventional sources:
// the resource-manager property (if prop is non-nil), $XENVIRONMENT, then
// ~/.Xresources, then ~/.Xdefaults, each one that is present overriding the
// previous (both home files are loaded when both exist). home overrides $HOME for tests; pass "" to use the real $HOME.
// cfg overrides the search order; pass nil for the conventional one.
func DatabaseFromDefault(ctx context.Context, prop PropertyFetcher, home string, cfg *SearchConfig) (*Database, error) {
	db, err := adapters.FromDefault(ctx, prop, home, cfg)
	if err != nil {
		return nil, err
	}
	return &Database{inner: db}, nil
}

// Len returns the number of entries in the database.
func (db *Database) Len() int {
	return db.inner.Len()
}

// PutResource inserts (specifier, value) with override semantics,
// escaping value the way the canonical renderer expects. Returns false
// if specifier is malformed.
func (db *Database) PutResource(specifier, value string) bool {
	return db.inner.PutResource(specifier, value)
}

// PutResourceLine parses and inserts one "specifier: value" line,
// discarding it silently if malformed.
func (db *Database) PutResourceLine(line string) {
	db.inner.PutResourceLine(line)
}

// ToString renders the database to its canonical textual form.
func (db *Database) ToString() string {
	return db.inner.String()
}

// Combine drains source into target in order, using override for each
// insertion, and leaves source empty.
func Combine(source, target *Database, override bool) {
	database.Combine(source.inner, target.inner, override)
}

// GetString returns the value of the best-matching entry for (name,
// class). class may be empty, meaning the query carries no class.
// Returns a *ParseError if name or class is malformed. Returns
// ErrNotFound if no entry matches, including when class has a
// different component count than name.
func GetString(db *Database, name, class string) (string, error) {
	qn, qc, err := parseQuery(name, class)
	if err != nil {
		return "", err
	}
	val, ok := matcher.Match(db.inner, qn, qc)
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

// GetLong parses the best-matching value as a base-10 signed integer.
func GetLong(db *Database, name, class string) (int, error) {
	val, err := GetString(db, name, class)
	n, res := convert.GetLong(val, err == nil)
	return convertResult(n, res, err)
}

// GetBool treats the best-matching value as an integer (non-zero is
// true) or, failing that, matches case-insensitively against
// true|on|yes / false|off|no.
func GetBool(db *Database, name, class string) (bool, error) {
	val, err := GetString(db, name, class)
	b, res := convert.GetBool(val, err == nil)
	return convertResult(b, res, err)
}

func convertResult[T any](v T, res convert.Result, lookupErr error) (T, error) {
	switch res {
	case convert.OK:
		return v, nil
	case convert.Absent:
		var zero T
		return zero, lookupErr
	default:
		var zero T
		return zero, ErrInvalidConversion
	}
}

func parseQuery(name, class string) (*entry.Entry, *entry.Entry, error) {
	qn, err := entry.Parse(name, entry.QueryOnly)
	if err != nil {
		return nil, nil, err
	}
	if class == "" {
		return qn, nil, nil
	}
	qc, err := entry.Parse(class, entry.QueryOnly)
	if err != nil {
		return nil, nil, err
	}
	return qn, qc, nil
}

