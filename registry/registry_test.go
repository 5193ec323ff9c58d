package registry

import (
	"testing"

	"fpgrowth/fptree"
)

func TestPutGetRemove(t *testing.T) {
	tr, err := fptree.New([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}

	r := New()
	r.Put("session-1", tr)

	got, ok := r.Get("session-1")
	if !ok || got != tr {
		t.Fatal("expected to get back the tree just put")
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}

	r.Remove("session-1")
	if _, ok := r.Get("session-1"); ok {
		t.Fatal("expected tree to be gone after Remove")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
}

func TestGetMissingIsFalse(t *testing.T) {
	r := New()
	if _, ok := r.Get("nope"); ok {
		t.Fatal("expected Get on an empty registry to report false")
	}
}

func TestNamesReflectsContents(t *testing.T) {
	trA, _ := fptree.New([]string{"a"})
	trB, _ := fptree.New([]string{"b"})

	r := New()
	r.Put("a", trA)
	r.Put("b", trB)

	names := r.Names()
	if len(names) != 2 {
		t.Fatalf("Names() = %v, want 2 entries", names)
	}
}
