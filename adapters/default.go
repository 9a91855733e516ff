package adapters

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/go-xrm/internal/database"
)

// FromDefault composes a database from the conventional sources, in
// priority order, combining each found source over the previous with
// override=true so later (more specific) sources win. prop may be nil to
// skip the resource-manager property step. home overrides $HOME so tests
// don't need to mutate the process environment; pass "" to use $HOME.
//
// cfg overrides the search order; pass nil to use the conventional order
// (property, $XENVIRONMENT, ~/.Xresources, ~/.Xdefaults). Every source that
// is present is loaded: when both home files exist, ~/.Xdefaults overrides
// ~/.Xresources rather than being skipped.
func FromDefault(ctx context.Context, prop PropertyFetcher, home string, cfg *SearchConfig) (*database.Database, error) {
	if cfg == nil {
		cfg = defaultSearchConfig()
	}
	if home == "" {
		home = os.Getenv("HOME")
	}

	result := database.New()
	for _, src := range cfg.Sources {
		db, ok, err := loadSource(ctx, src, prop, home)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		database.Combine(db, result, true)
	}
	return result, nil
}

func loadSource(ctx context.Context, src Source, prop PropertyFetcher, home string) (*database.Database, bool, error) {
	switch src.Kind {
	case SourceProperty:
		if prop == nil {
			return nil, false, nil
		}
		db, err := FromResourceProperty(ctx, prop)
		if err != nil {
			return nil, false, nil // property unavailable is not fatal to the search
		}
		return db, true, nil

	case SourceEnv:
		path := os.Getenv(src.Variable)
		if path == "" {
			return nil, false, nil
		}
		return fromFileIfExists(path)

	case SourceFile:
		path := expandHome(src.Path, home)
		return fromFileIfExists(path)
	}
	return nil, false, nil
}

func fromFileIfExists(path string) (*database.Database, bool, error) {
	db, err := FromFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return db, true, nil
}

func expandHome(path, home string) string {
	if home == "" || !strings.HasPrefix(path, "~/") {
		return path
	}
	return filepath.Join(home, path[2:])
}
