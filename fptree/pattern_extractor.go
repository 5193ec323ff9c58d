package fptree

import (
	"math"
	"sort"
)

// storedPattern is one entry in the pattern store: a frequent pattern's
// transaction count and its items in ranked order.
type storedPattern struct {
	count int64
	items []string
}

const patternKeyDelimiter = "\x1f"

// canonicalize sorts a copy of items by ascending rank and renders the
// ranked-order delimiter-joined key used throughout the pattern store.
func (t *Tree) canonicalize(items []string) (string, []string) {
	ranked := make([]string, len(items))
	copy(ranked, items)
	sort.Slice(ranked, func(i, j int) bool {
		return t.header[ranked[i]].rank < t.header[ranked[j]].rank
	})
	key := ranked[0]
	for _, it := range ranked[1:] {
		key += patternKeyDelimiter + it
	}
	return key, ranked
}

// storeCombinations enumerates every subset of items that begins with
// items[0] and folds count into store, creating a new entry or adding to
// an existing one.
func (t *Tree) storeCombinations(store map[string]*storedPattern, count int64, items []string) {
	for _, subset := range combinations(items) {
		if subset[0] != items[0] {
			continue
		}
		key, ranked := t.canonicalize(subset)
		if existing, ok := store[key]; ok {
			existing.count += count
		} else {
			store[key] = &storedPattern{count: count, items: ranked}
		}
	}
}

// getPatterns walks item's header chain and returns the conditional
// pattern base built from every node on that chain: for each node, item
// followed by its prefix-path forms a combination whose subsets beginning
// with item are folded into the returned store via storeCombinations,
// weighted by that node's adjusted-count at the time of its prefix walk.
func (t *Tree) getPatterns(item string) (map[string]*storedPattern, error) {
	entry, ok := t.header[item]
	if !ok {
		return nil, ErrUnknownItem
	}
	local := make(map[string]*storedPattern)
	for n := entry.head; n != nil; n = n.next {
		c := n.adjustedCount()
		if c == 0 {
			continue
		}
		path, err := n.prefixPath(t.root)
		if err != nil {
			return nil, err
		}
		combo := append([]string{item}, path...)
		t.storeCombinations(local, c, combo)
	}
	return local, nil
}

// mine is the fp-growth driver. It resets every header chain's
// read-counts (required on every invocation, since a stale read-count
// left over from a prior mining pass would under-count this one), seeds
// the pattern store with single-item patterns taken directly from header
// aggregate counts, then walks qualifying items in descending rank
// order, folding each item's multi-item conditional patterns into the
// pattern store.
//
// Single-item patterns are seeded once, from the authoritative header
// aggregate count, and never touched again. A same-item candidate that
// getPatterns also produces (the trivial singleton subset every
// conditional pattern base contains) is intentionally not re-merged,
// since the partial, already-consumed adjusted count it carries would
// corrupt the seeded total. Only candidates of length 2 or more (genuine
// conditional patterns) are folded into the store.
func (t *Tree) mine() error {
	supportCount := int64(math.Ceil(float64(t.totalTx) * t.support))

	for _, entry := range t.header {
		entry.resetChain()
	}

	t.patterns = make(map[string]*storedPattern)
	t.maxPatternLen = 0

	type ranked struct {
		item string
		rank int
	}
	var qualifying []ranked
	for label, entry := range t.header {
		if entry.count > 0 && entry.count >= supportCount {
			qualifying = append(qualifying, ranked{label, entry.rank})
		}
	}
	sort.Slice(qualifying, func(i, j int) bool { return qualifying[i].rank < qualifying[j].rank })

	for _, q := range qualifying {
		key, items := t.canonicalize([]string{q.item})
		t.patterns[key] = &storedPattern{count: t.header[q.item].count, items: items}
		t.updateMaxPatternLen(1)
	}

	for i := len(qualifying) - 1; i >= 0; i-- {
		candidates, err := t.getPatterns(qualifying[i].item)
		if err != nil {
			return err
		}
		for _, cand := range candidates {
			if len(cand.items) < 2 || cand.count < supportCount {
				continue
			}
			key, items := t.canonicalize(cand.items)
			if existing, ok := t.patterns[key]; ok {
				existing.count += cand.count
			} else {
				t.patterns[key] = &storedPattern{count: cand.count, items: items}
			}
			t.updateMaxPatternLen(len(items))
		}
	}

	if len(t.patterns) == 0 {
		return ErrNoPatterns
	}
	return nil
}

func (t *Tree) updateMaxPatternLen(n int) {
	if n > t.maxPatternLen {
		t.maxPatternLen = n
	}
}
