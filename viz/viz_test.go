package viz

import (
	"strings"
	"testing"

	"fpgrowth/fptree"
)

func TestDOTContainsEveryItem(t *testing.T) {
	tr, err := fptree.New([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if ok := tr.Insert([]string{"a", "b"}); !ok {
		t.Fatal(tr.LastError())
	}

	dot, err := DOT(tr)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dot, "digraph") {
		t.Fatalf("DOT output missing digraph header: %s", dot)
	}
	if !strings.Contains(dot, "a") || !strings.Contains(dot, "b") {
		t.Fatalf("DOT output missing item labels: %s", dot)
	}
}
