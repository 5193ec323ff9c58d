package filter

import (
	"testing"

	"fpgrowth/fptree"
)

func mustRule(t *testing.T, left, right []string, support, confidence float64) *fptree.Rule {
	r, err := fptree.NewRule(left, right, support, confidence)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestExpressionKeepsAboveThreshold(t *testing.T) {
	expr, err := NewExpression("confidence >= 0.7")
	if err != nil {
		t.Fatal(err)
	}
	high := mustRule(t, []string{"a"}, []string{"b"}, 0.6, 0.75)
	low := mustRule(t, []string{"a"}, []string{"c"}, 0.2, 0.3)

	if !expr.Keep(high) {
		t.Fatal("expected high-confidence rule to be kept")
	}
	if expr.Keep(low) {
		t.Fatal("expected low-confidence rule to be dropped")
	}
}

func TestApplyFiltersSlice(t *testing.T) {
	expr, err := NewExpression("leftSize == 1 && rightSize == 1")
	if err != nil {
		t.Fatal(err)
	}
	single := mustRule(t, []string{"a"}, []string{"b"}, 0.5, 0.5)
	multi := mustRule(t, []string{"a"}, []string{"b", "c"}, 0.5, 0.5)

	kept := expr.Apply([]*fptree.Rule{single, multi})
	if len(kept) != 1 || kept[0] != single {
		t.Fatalf("Apply kept %v, want just the single-item rule", kept)
	}
}

func TestNewExpressionRejectsGarbage(t *testing.T) {
	if _, err := NewExpression("confidence >="); err == nil {
		t.Fatal("expected a compile error for a malformed expression")
	}
}
