package fptree

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
)

// Rule is an immutable association rule: left -> right, where left and
// right partition a maximal-length frequent pattern. Items on each side
// are held in the ranked order used internally by the tree that produced
// the rule.
type Rule struct {
	left       []string
	right      []string
	support    float64
	confidence float64
}

// NewRule validates and constructs a Rule. Both sides must be non-empty,
// disjoint, and support/confidence must lie in (0,1].
func NewRule(left, right []string, support, confidence float64) (*Rule, error) {
	if len(left) == 0 || len(right) == 0 {
		return nil, fmt.Errorf("%w: rule sides must be non-empty", ErrInvalidConfiguration)
	}
	if support <= 0 || support > 1 {
		return nil, fmt.Errorf("%w: support %v out of (0,1]", ErrInvalidConfiguration, support)
	}
	if confidence <= 0 || confidence > 1 {
		return nil, fmt.Errorf("%w: confidence %v out of (0,1]", ErrInvalidConfiguration, confidence)
	}
	ls := mapset.NewSet()
	for _, item := range left {
		ls.Add(item)
	}
	rs := mapset.NewSet()
	for _, item := range right {
		rs.Add(item)
	}
	if ls.Intersect(rs).Cardinality() != 0 {
		return nil, fmt.Errorf("%w: left and right sides of a rule must be disjoint", ErrInvalidConfiguration)
	}
	return &Rule{
		left:       append([]string(nil), left...),
		right:      append([]string(nil), right...),
		support:    support,
		confidence: confidence,
	}, nil
}

func (r *Rule) Left() []string  { return append([]string(nil), r.left...) }
func (r *Rule) Right() []string { return append([]string(nil), r.right...) }
func (r *Rule) Support() float64    { return r.support }
func (r *Rule) Confidence() float64 { return r.confidence }

func (r *Rule) String() string {
	return fmt.Sprintf("%v -> %v (support=%.4f, confidence=%.4f)", r.left, r.right, r.support, r.confidence)
}
