// Package adapters implements the I/O-bound collaborators
// leaves outside the synchronous, allocation-only core: fetching a
// resource-manager property, reading and #include-resolving a file, and
// composing the conventional default search order.
package adapters

import (
	"context"

	"github.com/cwbudde/go-xrm/internal/database"
)

// PropertyFetcher obtains the raw RESOURCE_MANAGER-style text from
// wherever a host keeps it. The core ships no X11-backed implementation —
// that binding lives entirely in the caller's windowing layer.
type PropertyFetcher interface {
	FetchResourceManager(ctx context.Context) (string, error)
}

// staticProperty is a PropertyFetcher that always returns a fixed string,
// useful for tests and for hosts that already hold the property value.
type staticProperty string

func (s staticProperty) FetchResourceManager(context.Context) (string, error) {
	return string(s), nil
}

// StaticProperty wraps a pre-fetched resource-manager string as a
// PropertyFetcher.
func StaticProperty(s string) PropertyFetcher {
	return staticProperty(s)
}

// FromResourceProperty fetches text via f and parses it into a database.
func FromResourceProperty(ctx context.Context, f PropertyFetcher) (*database.Database, error) {
	text, err := f.FetchResourceManager(ctx)
	if err != nil {
		return nil, err
	}
	return database.FromString(text), nil
}
