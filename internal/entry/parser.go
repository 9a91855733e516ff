package entry

import "github.com/cwbudde/go-xrm/internal/xrmerr"

// Mode selects how Parse interprets a line: FullEntry expects a trailing
// ": value" and produces a value-bearing Entry; QueryOnly expects a bare
// dotted path (no wildcards, no value) and is used to parse the name/class
// strings passed to a query.
type Mode int

const (
	FullEntry Mode = iota
	QueryOnly
)

// chunk mirrors the four monotonically-advancing states of the original
// xcb-util-xrm parser: Initial (nothing seen yet), Components (inside the
// path), PreValueWhitespace (whitespace after ':' being skipped), and Value
// (everything from here on is value material).
type chunk int

const (
	chunkInitial chunk = iota
	chunkComponents
	chunkPreValueWhitespace
	chunkValue
)

// Parse converts one logical line (newlines already resolved by the
// caller — see the database package for line-continuation handling) into a
// structured Entry, or returns a *xrmerr.ParseError describing why it could
// not.
func Parse(line string, mode Mode) (*Entry, error) {
	p := &parseState{line: line, mode: mode, binding: Tight}
	return p.run()
}

type parseState struct {
	line    string
	mode    Mode
	chunk   chunk
	binding Binding

	parts []Part

	nameBuf     []byte
	haveName    bool
	looseDangling bool

	valueBuf []byte
}

func (p *parseState) fail(kind xrmerr.ParseErrorKind, col int, msg string) (*Entry, error) {
	return nil, &xrmerr.ParseError{Kind: kind, Message: msg, Line: p.line, Col: col}
}

// finalizeComponent flushes a non-empty pending component-name buffer into
// parts as a Normal component carrying the current binding, then resets the
// binding to Tight for whatever comes next. It is a no-op if no characters
// have been buffered (so consecutive "." or "*" separators are harmless).
func (p *parseState) finalizeComponent() {
	if p.haveName {
		p.parts = append(p.parts, Part{Component: Normal{Name: string(p.nameBuf)}, Binding: p.binding})
		p.nameBuf = p.nameBuf[:0]
		p.haveName = false
		p.binding = Tight
		p.looseDangling = false
	}
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func (p *parseState) run() (*Entry, error) {
	n := len(p.line)
	i := 0

	for i < n {
		c := p.line[i]

		if p.chunk == chunkValue {
			consumed := p.consumeValueByte(i)
			i += consumed
			continue
		}

		if p.chunk == chunkPreValueWhitespace {
			if c == ' ' || c == '\t' {
				i++
				continue
			}
			p.chunk = chunkValue
			continue // reprocess this byte as the first value byte
		}

		// chunk is chunkInitial or chunkComponents here.
		switch c {
		case '.':
			p.chunk = chunkComponents
			p.finalizeComponent()
			p.binding = Tight
			i++

		case '*':
			if p.mode == QueryOnly {
				return p.fail(xrmerr.KindIllegalChar, i+1, "'*' is not allowed in a query path")
			}
			p.chunk = chunkComponents
			p.finalizeComponent()
			p.binding = Loose
			p.looseDangling = true
			i++

		case '?':
			if p.mode == QueryOnly {
				return p.fail(xrmerr.KindIllegalChar, i+1, "'?' is not allowed in a query path")
			}
			p.chunk = chunkComponents
			p.finalizeComponent()
			p.parts = append(p.parts, Part{Component: Wildcard{}, Binding: p.binding})
			p.binding = Tight
			p.looseDangling = false
			i++

		case ' ', '\t':
			// Whitespace before the value is simply skipped.
			i++

		case ':':
			if p.mode == QueryOnly {
				return p.fail(xrmerr.KindColonInQuery, i+1, "query path must not contain ':'")
			}
			if p.chunk == chunkInitial {
				return p.fail(xrmerr.KindColonBeforePath, i+1, "':' encountered before any path component")
			}
			if p.looseDangling {
				return p.fail(xrmerr.KindTrailingWildcard, i+1, "trailing '*' with no following component")
			}
			p.finalizeComponent()
			p.chunk = chunkPreValueWhitespace
			i++

		default:
			p.chunk = chunkComponents
			if !isNameByte(c) {
				return p.fail(xrmerr.KindIllegalChar, i+1, "illegal character in component name")
			}
			p.nameBuf = append(p.nameBuf, c)
			p.haveName = true
			p.looseDangling = false
			i++
		}
	}

	if p.mode == QueryOnly {
		// '*' is rejected outright in QueryOnly mode, so looseDangling can
		// never be true here.
		p.finalizeComponent()
	} else if p.chunk < chunkPreValueWhitespace {
		// The line never reached its ':' separator at all. Reaching
		// PreValueWhitespace (the line ended right at or just after the
		// colon) is enough to produce an empty value — an empty value
		// is allowed, the line just requires the separator to exist.
		return p.fail(xrmerr.KindMissingValue, n+1, "entry has no ':' value separator")
	}

	if len(p.parts) == 0 {
		return p.fail(xrmerr.KindEmptyPath, 1, "entry has no path components")
	}
	if p.parts[len(p.parts)-1].IsWildcard() {
		return p.fail(xrmerr.KindTrailingWildcard, n+1, "entry path must not end in '?'")
	}

	e := &Entry{parts: p.parts}
	if p.mode == FullEntry {
		e.value = string(p.valueBuf)
		e.hasValue = true
	}
	return e, nil
}

// consumeValueByte handles one position of Value-chunk input, including the
// backslash escape grammar, and returns how many input bytes it consumed.
func (p *parseState) consumeValueByte(i int) int {
	line := p.line
	n := len(line)
	c := line[i]

	if c != '\\' || i+1 >= n {
		p.valueBuf = append(p.valueBuf, c)
		return 1
	}

	next := line[i+1]
	switch {
	case next == ' ':
		p.valueBuf = append(p.valueBuf, ' ')
		return 2
	case next == '\t':
		p.valueBuf = append(p.valueBuf, '\t')
		return 2
	case next == '\\':
		p.valueBuf = append(p.valueBuf, '\\')
		return 2
	case next == 'n':
		p.valueBuf = append(p.valueBuf, '\n')
		return 2
	case isOctalDigit(next) && i+3 < n && isOctalDigit(line[i+2]) && isOctalDigit(line[i+3]):
		val := (next-'0')*64 + (line[i+2]-'0')*8 + (line[i+3] - '0')
		p.valueBuf = append(p.valueBuf, val)
		return 4
	default:
		p.valueBuf = append(p.valueBuf, '\\', next)
		return 2
	}
}
