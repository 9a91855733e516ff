package entry

import "strings"

// Entry is a parsed resource specification: an ordered, non-empty sequence
// of Parts plus an optional value. A value is present iff the entry was
// parsed in FullEntry mode; query entries (QueryOnly mode) never carry one.
type Entry struct {
	parts    []Part
	value    string
	hasValue bool
}

// Parts returns the entry's components in order. The returned slice must
// not be mutated by the caller.
func (e *Entry) Parts() []Part {
	return e.parts
}

// Len returns the number of components in the entry.
func (e *Entry) Len() int {
	return len(e.parts)
}

// At returns the Part at position i.
func (e *Entry) At(i int) Part {
	return e.parts[i]
}

// Value returns the entry's value and whether one is present.
func (e *Entry) Value() (string, bool) {
	return e.value, e.hasValue
}

// Equal reports whether e and other are specifier-equal: same number of
// components, with identical per-position component kind, binding, and (for
// Normal components) name. Values never participate in this comparison.
func (e *Entry) Equal(other *Entry) bool {
	if other == nil || len(e.parts) != len(other.parts) {
		return false
	}
	for i, p := range e.parts {
		q := other.parts[i]
		if p.Binding != q.Binding {
			return false
		}
		switch pc := p.Component.(type) {
		case Normal:
			qc, ok := q.Component.(Normal)
			if !ok || pc.Name != qc.Name {
				return false
			}
		case Wildcard:
			if _, ok := q.Component.(Wildcard); !ok {
				return false
			}
		}
	}
	return true
}

// String renders the entry to its canonical textual form: the inverse of
// Parse for any entry Parse itself produced. See escapeValue for the value
// escaping rule.
func (e *Entry) String() string {
	var b strings.Builder
	e.writeSpecifier(&b)
	if e.hasValue {
		b.WriteString(": ")
		b.WriteString(escapeValue(e.value))
	}
	return b.String()
}

// Specifier renders just the component path (no trailing ": value"), which
// is exactly the identity a database uses for insert-or-replace.
func (e *Entry) Specifier() string {
	var b strings.Builder
	e.writeSpecifier(&b)
	return b.String()
}

func (e *Entry) writeSpecifier(b *strings.Builder) {
	for i, p := range e.parts {
		if i == 0 && p.Binding == Tight {
			// leading separator omitted
		} else if p.Binding == Loose {
			b.WriteByte('*')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(p.Component.String())
	}
}

// escapeValue is the canonical inverse of the Value-chunk escape rules in
// Parse: a leading space or tab is escaped so PreValueWhitespace-skipping
// doesn't eat it back on re-parse, embedded backslashes are doubled, and
// embedded newlines become the two-byte "\n" sequence.
func escapeValue(value string) string {
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
