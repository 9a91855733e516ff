package entry

import (
	"testing"

	"github.com/cwbudde/go-xrm/internal/xrmerr"
)

func TestParseFullEntryBasic(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantPath string // rendered components, excluding value
		wantVal  string
	}{
		{"single component", "First: 1", "First", "1"},
		{"tight chain", "First.second.third: 1", "First.second.third", "1"},
		{"loose lead", "*incorporate.Foreground: blue", "*incorporate.Foreground", "blue"},
		{"loose mid", "First*second: 2", "First*second", "2"},
		{"wildcard single", "xmh.toc*?.Foreground: white", "xmh.toc*?.Foreground", "white"},
		{"empty value", "First.second:", "First.second", ""},
		{"value with leading space collapsed", "First:    hi", "First", "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.line, FullEntry)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.line, err)
			}
			val, ok := e.Value()
			if !ok {
				t.Fatalf("Parse(%q): expected a value to be present", tt.line)
			}
			if val != tt.wantVal {
				t.Errorf("Parse(%q) value = %q, want %q", tt.line, val, tt.wantVal)
			}

			// Re-render without the value part for a simple path check.
			e.hasValue = false
			if got := e.String(); got != tt.wantPath {
				t.Errorf("Parse(%q) path = %q, want %q", tt.line, got, tt.wantPath)
			}
		})
	}
}

func TestParseValueEscapes(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"escaped space", `First: \ x`, " x"},
		{"escaped tab", "First: \\\tx", "\tx"},
		{"escaped backslash", `First: a\\b`, `a\b`},
		{"escaped newline", `First: a\nb`, "a\nb"},
		{"octal escape", `First: \101\102`, "AB"},
		{"unknown escape kept verbatim", `First: a\zb`, `a\zb`},
		{"continuation already resolved upstream", `First: xy`, "xy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.line, FullEntry)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.line, err)
			}
			val, _ := e.Value()
			if val != tt.want {
				t.Errorf("Parse(%q) value = %q, want %q", tt.line, val, tt.want)
			}
		})
	}
}

func TestParseFullEntryFailures(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind xrmerr.ParseErrorKind
	}{
		{"no colon at all", "First.second", xrmerr.KindMissingValue},
		{"trailing wildcard component", "First.?: 1", xrmerr.KindTrailingWildcard},
		{"trailing loose binding", "First*: 1", xrmerr.KindTrailingWildcard},
		{"illegal character", "First$: 1", xrmerr.KindIllegalChar},
		{"colon before any path", ":1", xrmerr.KindColonBeforePath},
		{"empty path", "", xrmerr.KindMissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line, FullEntry)
			if err == nil {
				t.Fatalf("Parse(%q): expected an error", tt.line)
			}
			if got := xrmerr.Kind(err); got != tt.kind {
				t.Errorf("Parse(%q) kind = %q, want %q", tt.line, got, tt.kind)
			}
		})
	}
}

func TestParseQueryOnly(t *testing.T) {
	e, err := Parse("xmh.toc.messagefunctions.incorporate.activeForeground", QueryOnly)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if e.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", e.Len())
	}
	if _, ok := e.Value(); ok {
		t.Fatalf("query-only entry must not carry a value")
	}

	rejectedInputs := []string{
		"First*second",
		"First.?",
		"First:second",
	}
	for _, in := range rejectedInputs {
		if _, err := Parse(in, QueryOnly); err == nil {
			t.Errorf("Parse(%q, QueryOnly): expected error, got none", in)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	lines := []string{
		"First.second: 1",
		"First*second: 2",
		"xmh*Paned*activeForeground: red",
		"xmh.toc*?.Foreground: white",
		`Third: \  a\\ b\nc d` + "\t" + `e `,
	}
	for _, line := range lines {
		e, err := Parse(line, FullEntry)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", line, err)
		}
		rendered := e.String()
		e2, err := Parse(rendered, FullEntry)
		if err != nil {
			t.Fatalf("re-parsing rendered form %q failed: %v", rendered, err)
		}
		if !e.Equal(e2) {
			t.Errorf("round trip not specifier-equal: %q -> %q", line, rendered)
		}
		v1, _ := e.Value()
		v2, _ := e2.Value()
		if v1 != v2 {
			t.Errorf("round trip value mismatch: %q != %q", v1, v2)
		}
		if rendered2 := e2.String(); rendered2 != rendered {
			t.Errorf("rendering not idempotent: %q != %q", rendered2, rendered)
		}
	}
}
