package fptree

import (
	"sort"
	"strings"

	"fpgrowth/internal/logging"
)

// deriveRules collects every stored pattern whose length equals
// maxPatternLen (the maximal-length frequent patterns) and, for each,
// emits a rule per non-empty proper split into (left, right). A split
// whose left side's count is missing from the pattern store (it should
// always be present for a genuinely frequent pattern, but canonical-key
// construction bugs or a corrupted store could violate that) is an
// IncompleteData case: the rule is skipped rather than dividing by zero.
func (t *Tree) deriveRules() ([]*Rule, error) {
	if t.maxPatternLen == 0 {
		return nil, ErrNoPatterns
	}

	var mlfps []*storedPattern
	for _, p := range t.patterns {
		if len(p.items) == t.maxPatternLen {
			mlfps = append(mlfps, p)
		}
	}

	var rules []*Rule
	for _, p := range mlfps {
		for _, left := range combinations(p.items) {
			if len(left) >= len(p.items) {
				continue // left == p, right would be empty
			}
			inLeft := make(map[string]bool, len(left))
			for _, it := range left {
				inLeft[it] = true
			}
			right := make([]string, 0, len(p.items)-len(left))
			for _, it := range p.items {
				if !inLeft[it] {
					right = append(right, it)
				}
			}
			if len(right) == 0 {
				continue
			}
			leftKey, leftItems := t.canonicalize(left)
			leftPattern, ok := t.patterns[leftKey]
			if !ok {
				logging.Warnf("fptree: %v: left side %v of pattern %v missing from pattern store, skipping rule", ErrIncompleteData, left, p.items)
				continue
			}
			_, rightItems := t.canonicalize(right)
			support := float64(p.count) / float64(t.totalTx)
			confidence := float64(p.count) / float64(leftPattern.count)
			rule, err := NewRule(leftItems, rightItems, support, confidence)
			if err != nil {
				continue
			}
			rules = append(rules, rule)
		}
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].confidence != rules[j].confidence {
			return rules[i].confidence > rules[j].confidence
		}
		return ruleSortKey(rules[i]) < ruleSortKey(rules[j])
	})
	return rules, nil
}

// ruleSortKey gives confidence ties a deterministic, arbitrary-but-fixed
// order.
func ruleSortKey(r *Rule) string {
	return strings.Join(r.left, patternKeyDelimiter) + "=>" + strings.Join(r.right, patternKeyDelimiter)
}
