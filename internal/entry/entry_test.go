package entry

import "testing"

func mustParse(t *testing.T, line string, mode Mode) *Entry {
	t.Helper()
	e, err := Parse(line, mode)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", line, err)
	}
	return e
}

func TestEntryEqualIgnoresValue(t *testing.T) {
	a := mustParse(t, "First.second: 1", FullEntry)
	b := mustParse(t, "First.second: totally different", FullEntry)
	if !a.Equal(b) {
		t.Fatalf("expected specifier-equal entries despite differing values")
	}
}

func TestEntryEqualDistinguishesBinding(t *testing.T) {
	a := mustParse(t, "First.second: 1", FullEntry)
	b := mustParse(t, "First*second: 1", FullEntry)
	if a.Equal(b) {
		t.Fatalf("tight and loose bindings must not compare equal")
	}
}

func TestEntryEqualDistinguishesWildcard(t *testing.T) {
	a := mustParse(t, "First.?.third: 1", FullEntry)
	b := mustParse(t, "First.second.third: 1", FullEntry)
	if a.Equal(b) {
		t.Fatalf("wildcard and named components must not compare equal")
	}
}

func TestEntryStringEmptyValue(t *testing.T) {
	e := mustParse(t, "First.second:", FullEntry)
	val, ok := e.Value()
	if !ok || val != "" {
		t.Fatalf("expected present empty value, got (%q, %v)", val, ok)
	}
	if got, want := e.String(), "First.second: "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEntryStringLeadingLooseBinding(t *testing.T) {
	e := mustParse(t, "*incorporate.Foreground: blue", FullEntry)
	if got, want := e.String(), "*incorporate.Foreground: blue"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
