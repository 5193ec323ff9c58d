package fptree

import (
	"fmt"
	"sort"

	"github.com/yourbasic/bit"
	"golang.org/x/exp/maps"

	"fpgrowth/internal/logging"
)

// Tree is an FP-Tree: a prefix-tree encoding of a transaction database
// sorted by a caller-supplied item-frequency ranking, together with its
// header index and the patterns discovered by the most recent mining run.
// A Tree is not safe for concurrent use by multiple goroutines; distinct
// Tree instances share no state and may be used concurrently (see
// package registry for a concurrency-safe way to hold many of them).
type Tree struct {
	root   *node
	header map[string]*headerEntry

	support    float64
	confidence float64

	totalTx int64

	patterns      map[string]*storedPattern
	maxPatternLen int

	lastErr error
}

// New builds an empty tree over the given ranked item list: items[0] gets
// rank 1 (most frequent), items[1] rank 2, and so on. It fails if items
// is empty or contains a duplicate label.
func New(items []string) (*Tree, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	header := make(map[string]*headerEntry, len(items))
	for i, item := range items {
		if _, dup := header[item]; dup {
			return nil, fmt.Errorf("%w: duplicate item %q in ranking", ErrInvalidConfiguration, item)
		}
		header[item] = &headerEntry{item: item, rank: i + 1}
	}
	t := &Tree{
		root:       newNode("", nil),
		header:     header,
		support:    0.1,
		confidence: 0.1,
		patterns:   make(map[string]*storedPattern),
	}
	t.root.count = 0
	logging.Infof("fptree: constructed tree with %d items", len(items))
	return t, nil
}

func (t *Tree) fail(err error) bool {
	t.lastErr = err
	logging.Errorf("fptree: %v", err)
	return false
}

// LastError returns the last human-readable failure, or "" if none.
func (t *Tree) LastError() string {
	if t.lastErr == nil {
		return ""
	}
	return t.lastErr.Error()
}

// Support returns the current minimum-support fraction.
func (t *Tree) Support() float64 { return t.support }

// SetSupport sets the minimum-support fraction; it must lie in (0,1].
func (t *Tree) SetSupport(f float64) bool {
	if f <= 0 || f > 1 {
		return t.fail(fmt.Errorf("%w: support %v out of (0,1]", ErrInvalidConfiguration, f))
	}
	t.support = f
	return true
}

// Confidence returns the current minimum-confidence fraction. It is an
// attribute of emitted rules only in this version; it does not influence
// mining (see package filter for a post-mining confidence filter).
func (t *Tree) Confidence() float64 { return t.confidence }

// SetConfidence sets the minimum-confidence fraction; it must lie in
// (0,1].
func (t *Tree) SetConfidence(f float64) bool {
	if f <= 0 || f > 1 {
		return t.fail(fmt.Errorf("%w: confidence %v out of (0,1]", ErrInvalidConfiguration, f))
	}
	t.confidence = f
	return true
}

// TotalTransactions returns the number of transactions successfully
// inserted so far.
func (t *Tree) TotalTransactions() int64 { return t.totalTx }

// Insert canonicalizes items (discarding duplicates), rejects the call if
// any item is absent from the header, sorts the remainder by ascending
// rank, and walks the sorted sequence from the root, creating or reusing
// children and extending header chains as it goes.
func (t *Tree) Insert(items []string) bool {
	if len(items) == 0 {
		return t.fail(fmt.Errorf("%w: insert called with no items", ErrEmptyInput))
	}

	seen := bit.New()
	canonical := make([]string, 0, len(items))
	for _, item := range items {
		entry, ok := t.header[item]
		if !ok {
			return t.fail(fmt.Errorf("%w: %q", ErrUnknownItem, item))
		}
		if seen.Contains(entry.rank) {
			continue
		}
		seen.Add(entry.rank)
		canonical = append(canonical, item)
	}

	sort.Slice(canonical, func(i, j int) bool {
		return t.header[canonical[i]].rank < t.header[canonical[j]].rank
	})

	cur := t.root
	for _, item := range canonical {
		entry := t.header[item]
		child, ok := cur.child(item)
		if ok {
			child.incrementTraversal()
		} else {
			var err error
			child, err = cur.addChild(item)
			if err != nil {
				return t.fail(err)
			}
			entry.append(child)
		}
		entry.count++
		cur = child
	}

	t.totalTx++
	return true
}

// Reset clears the mined pattern store only; tree structure, header
// counts, and inserted transactions are untouched, so the tree may be
// re-mined at a different support threshold without re-inserting.
func (t *Tree) Reset() {
	maps.Clear(t.patterns)
	t.maxPatternLen = 0
}

// AssociationRules triggers mining (fp-growth pattern extraction followed
// by rule derivation) as a side effect and returns the resulting rules
// sorted by descending confidence. It returns ok=false, with a message
// available from LastError, if mining finds no pattern meeting the
// current support threshold.
func (t *Tree) AssociationRules() ([]*Rule, bool) {
	if err := t.mine(); err != nil {
		return nil, t.fail(err)
	}
	rules, err := t.deriveRules()
	if err != nil {
		return nil, t.fail(err)
	}
	logging.Infof("fptree: mined %d rules from %d patterns (max length %d)", len(rules), len(t.patterns), t.maxPatternLen)
	return rules, true
}

// items returns every declared item label, in no particular order.
func (t *Tree) items() []string {
	return maps.Keys(t.header)
}
