package adapters

import (
	"os"

	"github.com/goccy/go-yaml"
)

// SourceKind selects where one entry of a SearchConfig's source list reads
// from.
type SourceKind string

const (
	SourceProperty SourceKind = "property"
	SourceEnv      SourceKind = "env"
	SourceFile     SourceKind = "file"
)

// Source is one step of the search order FromDefault walks, later steps
// overriding earlier ones.
type Source struct {
	Kind     SourceKind `yaml:"kind"`
	Variable string     `yaml:"variable,omitempty"` // for SourceEnv: the env var naming a file path
	Path     string     `yaml:"path,omitempty"`     // for SourceFile: a literal path, "~" expanded
}

// SearchConfig overrides FromDefault's conventional search order, letting a
// host add fixed-path sources ahead of or behind the defaults.
type SearchConfig struct {
	Sources []Source `yaml:"sources"`
}

// LoadSearchConfig reads and parses a YAML search-order file: a top-level
// "sources" list whose items carry the Source fields by their yaml tags.
func LoadSearchConfig(path string) (*SearchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg SearchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// defaultSearchConfig is the conventional order FromDefault uses when no
// SearchConfig is supplied: property, then $XENVIRONMENT, then
// ~/.Xresources, then ~/.Xdefaults. Each file is loaded if it exists, so when
// both home files exist ~/.Xdefaults overrides ~/.Xresources; the second is
// not used only as a fallback for a missing first.
func defaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		Sources: []Source{
			{Kind: SourceProperty},
			{Kind: SourceEnv, Variable: "XENVIRONMENT"},
			{Kind: SourceFile, Path: "~/.Xresources"},
			{Kind: SourceFile, Path: "~/.Xdefaults"},
		},
	}
}
