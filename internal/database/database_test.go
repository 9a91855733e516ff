package database

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-xrm/internal/entry"
)

func TestFromStringBasic(t *testing.T) {
	text := "First.second: 1\nFirst*third: 2\n"
	db := FromString(text)
	if db.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", db.Len())
	}
}

func TestFromStringSkipsCommentsAndDirectives(t *testing.T) {
	text := "! a comment\n# a directive\nFirst: 1\n"
	db := FromString(text)
	if db.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", db.Len())
	}
}

func TestFromStringSkipsMalformedLines(t *testing.T) {
	text := "First: 1\nmalformed-no-colon\nSecond: 2\n"
	db := FromString(text)
	if db.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", db.Len())
	}
}

func TestFromStringLineContinuation(t *testing.T) {
	text := "First: one \\\ntwo\n"
	db := FromString(text)
	if db.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", db.Len())
	}
	val, ok := db.Entries()[0].Value()
	if !ok || val != "one two" {
		t.Errorf("value = %q, ok=%v, want \"one two\"", val, ok)
	}
}

func TestPutOverridePreservesOrderAndReplaces(t *testing.T) {
	db := New()
	db.PutResourceLine("First: 1")
	db.PutResourceLine("Second: 2")
	db.PutResourceLine("First: 3")

	if db.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", db.Len())
	}
	val, _ := db.Entries()[1].Value()
	if val != "3" {
		t.Errorf("expected override to replace First's value at the tail, got %q", val)
	}
}

func TestPutNoOverrideKeepsExisting(t *testing.T) {
	db := New()
	first, err := entry.Parse("First: 1", entry.FullEntry)
	if err != nil {
		t.Fatal(err)
	}
	second, err := entry.Parse("First: 2", entry.FullEntry)
	if err != nil {
		t.Fatal(err)
	}
	db.Put(first, false)
	db.Put(second, false)

	if db.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", db.Len())
	}
	val, _ := db.Entries()[0].Value()
	if val != "1" {
		t.Errorf("expected first Put to win, got %q", val)
	}
}

func TestLookup(t *testing.T) {
	db := New()
	db.PutResourceLine("First.second: 1")

	query, err := entry.Parse("First.second: anything", entry.FullEntry)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := db.Lookup(query)
	if !ok {
		t.Fatalf("expected Lookup to find entry")
	}
	val, _ := got.Value()
	if val != "1" {
		t.Errorf("value = %q, want 1", val)
	}
}

func TestCombineOverride(t *testing.T) {
	target := New()
	target.PutResourceLine("First: 1")
	target.PutResourceLine("Second: 2")

	source := New()
	source.PutResourceLine("First: 99")
	source.PutResourceLine("Third: 3")

	Combine(source, target, true)

	if source.Len() != 0 {
		t.Errorf("source should be drained, Len() = %d", source.Len())
	}
	if target.Len() != 3 {
		t.Fatalf("target Len() = %d, want 3", target.Len())
	}
	val, _ := target.Entries()[1].Value()
	if val != "99" {
		t.Errorf("expected override to replace First at the tail, got %q", val)
	}
}

func TestMergeUsesConfiguredOverride(t *testing.T) {
	target := New(WithOverrideDefault(false))
	target.PutResourceLine("First: 1")

	source := New()
	source.PutResourceLine("First: 99")

	target.Merge(source)

	val, _ := target.Entries()[0].Value()
	if val != "1" {
		t.Errorf("expected Merge to honor OverrideDefault=false, got %q", val)
	}
}

func TestCombineNoOverrideKeepsTarget(t *testing.T) {
	target := New()
	target.PutResourceLine("First: 1")

	source := New()
	source.PutResourceLine("First: 99")

	Combine(source, target, false)

	val, _ := target.Entries()[0].Value()
	if val != "1" {
		t.Errorf("expected target's value to survive, got %q", val)
	}
}

func TestPutResourceEscapesValue(t *testing.T) {
	db := New()
	ok := db.PutResource("First", " leading\nwith\\backslash")
	if !ok {
		t.Fatalf("PutResource reported failure")
	}
	val, _ := db.Entries()[0].Value()
	if val != " leading\nwith\\backslash" {
		t.Errorf("value round trip mismatch, got %q", val)
	}
}

func TestPutResourceRejectsMalformedSpecifier(t *testing.T) {
	db := New()
	if db.PutResource("", "value") {
		t.Fatalf("expected malformed specifier to fail")
	}
}

func TestStringRoundTrip(t *testing.T) {
	text := "First.second: 1\nFirst*third: 2\nxmh.toc*?.Foreground: white\n"
	db := FromString(text)
	rendered := db.String()

	db2 := FromString(rendered)
	if db2.Len() != db.Len() {
		t.Fatalf("round trip Len mismatch: %d vs %d", db2.Len(), db.Len())
	}
	for i, e := range db.Entries() {
		if !e.Equal(db2.Entries()[i]) {
			t.Errorf("entry %d not specifier-equal after round trip", i)
		}
	}
	if !strings.Contains(rendered, "First.second: 1") {
		t.Errorf("rendered output missing expected line, got %q", rendered)
	}
}
