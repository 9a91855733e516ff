// Package database implements the ordered resource-entry container: parsing
// multi-line input, insert-or-replace by specifier identity, combination of
// two databases, and canonical round-trip rendering.
package database

import (
	"strings"

	"github.com/cwbudde/go-xrm/internal/entry"
)

// Options configures a Database at construction time. Grounded on the
// teacher's functional-options ParserBuilder/ParserConfig pair.
type Options struct {
	// CapacityHint pre-sizes the backing entry slice.
	CapacityHint int
	// OverrideDefault is the override flag Merge uses when none is given
	// explicitly, so callers loading a priority-ordered chain of sources
	// don't have to repeat it at every call site.
	OverrideDefault bool
}

// Option mutates an Options value.
type Option func(*Options)

// WithCapacityHint pre-sizes the database's backing storage, useful when the
// caller already knows roughly how many entries it will insert.
func WithCapacityHint(n int) Option {
	return func(o *Options) { o.CapacityHint = n }
}

// WithOverrideDefault sets the override flag Merge falls back to.
func WithOverrideDefault(override bool) Option {
	return func(o *Options) { o.OverrideDefault = override }
}

// Database is an ordered, append-biased collection of entries. Order is
// insertion order; an overriding replacement removes the old entry and
// appends the new one at the tail (see Put).
type Database struct {
	entries         []*entry.Entry
	index           map[string]int // specifier -> slot in entries, best-effort accelerator
	overrideDefault bool
}

// New returns an empty Database.
func New(opts ...Option) *Database {
	o := Options{OverrideDefault: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Database{
		entries:         make([]*entry.Entry, 0, o.CapacityHint),
		index:           make(map[string]int, o.CapacityHint),
		overrideDefault: o.OverrideDefault,
	}
}

// Merge drains source into db using db's configured OverrideDefault flag,
// a convenience over Combine for callers loading several sources in
// priority order who don't want to repeat the override flag at every call
// site.
func (db *Database) Merge(source *Database) {
	Combine(source, db, db.overrideDefault)
}

// Len returns the number of entries currently stored.
func (db *Database) Len() int {
	return len(db.entries)
}

// Entries returns the database's entries in insertion order. The returned
// slice must not be mutated.
func (db *Database) Entries() []*entry.Entry {
	return db.entries
}

// Put inserts e into the database. If an existing entry is specifier-equal
// to e: when override is false, e is discarded and the existing entry is
// kept; when override is true, the existing entry is removed (there may be
// more than one duplicate left over from a history of non-overriding puts
// against different databases that were later combined, so the scan
// continues) and e is appended at the tail once scanning finishes.
func (db *Database) Put(e *entry.Entry, override bool) {
	if e == nil {
		return
	}

	kept := db.entries[:0:0] // force a fresh backing array below if we mutate
	mutated := false
	for _, existing := range db.entries {
		if existing.Equal(e) {
			if !override {
				return
			}
			mutated = true
			continue // drop this duplicate
		}
		kept = append(kept, existing)
	}
	if mutated {
		db.entries = kept
	}

	db.entries = append(db.entries, e)
	db.reindex()
}

// reindex rebuilds the specifier accelerator. Puts are the only mutating
// operation and are not expected at a scale where an O(n) rebuild per put
// matters; if profiling ever disagrees, Put can be changed to patch
// db.index incrementally instead.
func (db *Database) reindex() {
	if db.index == nil {
		db.index = make(map[string]int, len(db.entries))
	}
	for k := range db.index {
		delete(db.index, k)
	}
	for i, e := range db.entries {
		db.index[e.Specifier()] = i
	}
}

// Lookup returns the entry whose specifier renders identically to e's, if
// any. This is an O(1) accelerator used by hosts that put the same
// specifier repeatedly (e.g. re-reading a config file); it is not used by
// the matcher, which must consider every entry's binding structure, not
// just an exact specifier match.
func (db *Database) Lookup(e *entry.Entry) (*entry.Entry, bool) {
	i, ok := db.index[e.Specifier()]
	if !ok {
		return nil, false
	}
	return db.entries[i], true
}

// FromString parses multi-line resource text into a new Database.
// Empty input yields an empty database, not an error. Backslash
// immediately followed by a newline is collapsed (line continuation) before
// splitting on raw newlines; comment/directive lines ('!' or '#' in column
// 0) are discarded; malformed lines are silently dropped.
func FromString(text string) *Database {
	db := New()
	resolved := resolveContinuations(text)
	for _, line := range strings.Split(resolved, "\n") {
		db.putLine(line, true)
	}
	return db
}

// resolveContinuations collapses every "\\\n" occurrence to nothing, joining
// a continued line with the one that follows it. This must happen before
// line splitting, not during per-line parsing, to avoid carrying state
// across lines.
func resolveContinuations(text string) string {
	if !strings.Contains(text, "\\\n") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) && text[i+1] == '\n' {
			i++
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

// putLine parses one already-continuation-resolved line and, on success,
// inserts it with the given override flag. Comment/directive lines and
// parse failures are silently skipped.
func (db *Database) putLine(line string, override bool) {
	if len(line) > 0 && (line[0] == '!' || line[0] == '#') {
		return
	}
	e, err := entry.Parse(line, entry.FullEntry)
	if err != nil {
		return
	}
	db.Put(e, override)
}

// PutResourceLine parses line directly (same comment/directive handling as
// FromString) and inserts it with override=true.
func (db *Database) PutResourceLine(line string) {
	db.putLine(line, true)
}

// PutResource composes a canonical "specifier: escaped-value" line from
// value and parses it back, so the stored entry has gone through exactly
// the escaping a human typing the line by hand would have needed. Returns
// false if the composed line failed to parse (e.g. specifier is malformed).
func (db *Database) PutResource(specifier, value string) bool {
	line := specifier + ": " + escapeForPut(value)
	e, err := entry.Parse(line, entry.FullEntry)
	if err != nil {
		return false
	}
	db.Put(e, true)
	return true
}

// escapeForPut applies the same escaping Entry.String uses for a value, so
// PutResource's round trip through the textual grammar preserves value
// exactly. It is intentionally identical to entry's internal escapeValue;
// duplicated here because that helper is unexported and rendering a
// throwaway Entry just to reuse it would cost more than repeating ~10 lines.
func escapeForPut(value string) string {
	var b strings.Builder
	if len(value) > 0 && (value[0] == ' ' || value[0] == '\t') {
		b.WriteByte('\\')
	}
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\n':
			b.WriteString(`\n`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(value[i])
		}
	}
	return b.String()
}

// Combine drains every entry of source into target, in order, using override
// for each insertion, and leaves source empty.
func Combine(source, target *Database, override bool) {
	for _, e := range source.entries {
		target.Put(e, override)
	}
	source.entries = source.entries[:0]
	source.reindex()
}

// String renders the database to its canonical textual form: each entry's
// canonical rendering, one per line, each newline-terminated. Parsing this
// output with FromString reproduces a specifier- and value-equal database
// (parse . String() . parse is a no-op on the resulting text).
func (db *Database) String() string {
	var b strings.Builder
	for _, e := range db.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
