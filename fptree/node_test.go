package fptree

import "testing"

func TestNodeIncrementReadWithinBounds(t *testing.T) {
	n := newNode("a", nil)
	n.count = 5
	if err := n.incrementRead(3); err != nil {
		t.Fatalf("incrementRead(3): %v", err)
	}
	if got := n.adjustedCount(); got != 2 {
		t.Fatalf("adjustedCount = %d, want 2", got)
	}
}

func TestNodeIncrementReadExceedsTraversal(t *testing.T) {
	n := newNode("a", nil)
	n.count = 2
	if err := n.incrementRead(3); err == nil {
		t.Fatal("expected an accounting violation, got nil")
	}
}

func TestNodeResetReadClearsChain(t *testing.T) {
	a := newNode("x", nil)
	a.count = 4
	b := newNode("x", nil)
	b.count = 4
	a.next = b

	if err := a.incrementRead(4); err != nil {
		t.Fatal(err)
	}
	if err := b.incrementRead(2); err != nil {
		t.Fatal(err)
	}

	a.resetRead()

	if a.read != 0 || b.read != 0 {
		t.Fatalf("resetRead left read counts %d, %d; want 0, 0", a.read, b.read)
	}
}

func TestNodePrefixPath(t *testing.T) {
	root := newNode("", nil)
	a, err := root.addChild("a")
	if err != nil {
		t.Fatal(err)
	}
	a.count = 3
	b, err := a.addChild("b")
	if err != nil {
		t.Fatal(err)
	}
	b.count = 3

	path, err := b.prefixPath(root)
	if err != nil {
		t.Fatalf("prefixPath: %v", err)
	}
	if len(path) != 1 || path[0] != "a" {
		t.Fatalf("prefixPath = %v, want [a]", path)
	}
	if a.read != 3 {
		t.Fatalf("ancestor read = %d, want 3 (consumed by the walk)", a.read)
	}
	if b.read != 3 {
		t.Fatalf("self read = %d, want 3", b.read)
	}
}

func TestNodePrefixPathOnRootFails(t *testing.T) {
	root := newNode("", nil)
	if _, err := root.prefixPath(root); err == nil {
		t.Fatal("expected an error calling prefixPath on root")
	}
}

func TestNodeAddChildDuplicateFails(t *testing.T) {
	root := newNode("", nil)
	if _, err := root.addChild("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := root.addChild("a"); err == nil {
		t.Fatal("expected an error adding a duplicate child")
	}
}
