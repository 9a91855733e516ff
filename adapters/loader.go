package adapters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/go-xrm/internal/database"
	"github.com/cwbudde/go-xrm/internal/xrmerr"
)

// FileLoader reads resource files and resolves #include directives,
// logging each resolution step at debug level.
type FileLoader struct {
	logger logrus.FieldLogger
}

// NewFileLoader returns a FileLoader that logs through logger. Pass a
// logger with output discarded (e.g. a logrus.Logger with Out set to
// io.Discard) to silence it in tests.
func NewFileLoader(logger logrus.FieldLogger) *FileLoader {
	return &FileLoader{logger: logger}
}

// Load reads path and every file it transitively #includes, returning the
// concatenated text ready for database.FromString.
func (l *FileLoader) Load(path string) (string, error) {
	visited := make(map[string]bool)
	var b strings.Builder
	if err := l.load(path, visited, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l *FileLoader) load(path string, visited map[string]bool, out *strings.Builder) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("xrm: reading %s: %w", path, err)
	}
	if visited[abs] {
		return fmt.Errorf("%w: %s", xrmerr.ErrIncludeCycle, abs)
	}
	visited[abs] = true

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("xrm: reading %s: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if include, ok := parseIncludeDirective(line); ok {
			resolved := filepath.Join(dir, include)
			l.logger.WithFields(logrus.Fields{
				"from": path,
				"include": include,
				"resolved": resolved,
			}).Debug("resolving #include directive")
			if err := l.load(resolved, visited, out); err != nil {
				return err
			}
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("xrm: reading %s: %w", path, err)
	}
	return nil
}

// parseIncludeDirective recognizes a line of the form
// `#include "relative/path"`, returning the quoted path and true.
func parseIncludeDirective(line string) (string, bool) {
	const prefix = "#include"
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}

// FromFile reads path, resolves its #include directives, and parses the
// expanded text into a database. It uses a logger that discards output;
// callers who want include-resolution diagnostics should use NewFileLoader
// directly.
func FromFile(path string) (*database.Database, error) {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	text, err := NewFileLoader(discard).Load(path)
	if err != nil {
		return nil, err
	}
	return database.FromString(text), nil
}
