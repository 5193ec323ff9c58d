// Package filter post-processes the rules a tree mines, selecting the
// ones that satisfy a caller-supplied boolean expression. It runs after
// fptree.Tree.AssociationRules and never influences mining itself.
package filter

import (
	"fmt"

	"github.com/Knetic/govaluate"

	"fpgrowth/fptree"
	"fpgrowth/internal/logging"
)

// Variables available to an expression: support, confidence, and the
// left/right side sizes of the rule being tested.
const (
	varSupport    = "support"
	varConfidence = "confidence"
	varLeftSize   = "leftSize"
	varRightSize  = "rightSize"
)

// Expression compiles a boolean govaluate expression once, for repeated
// use across many rules via Keep.
type Expression struct {
	raw  string
	expr *govaluate.EvaluableExpression
}

// NewExpression compiles expr, e.g. "confidence >= 0.6 && leftSize <= 2".
func NewExpression(expr string) (*Expression, error) {
	compiled, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	return &Expression{raw: expr, expr: compiled}, nil
}

// Keep evaluates the expression against r's attributes and reports
// whether r should be kept. A non-boolean result, or an evaluation
// error, is treated as a rejection and logged rather than propagated,
// since a single malformed rule should not abort a filtering pass.
func (e *Expression) Keep(r *fptree.Rule) bool {
	vars := map[string]interface{}{
		varSupport:    r.Support(),
		varConfidence: r.Confidence(),
		varLeftSize:   float64(len(r.Left())),
		varRightSize:  float64(len(r.Right())),
	}
	result, err := e.expr.Evaluate(vars)
	if err != nil {
		logging.Errorf("filter: evaluating %q: %v", e.raw, err)
		return false
	}
	keep, ok := result.(bool)
	if !ok {
		logging.Errorf("filter: expression %q did not evaluate to a boolean", e.raw)
		return false
	}
	return keep
}

// Apply returns the subset of rules that e.Keep accepts, preserving
// order.
func (e *Expression) Apply(rules []*fptree.Rule) []*fptree.Rule {
	out := make([]*fptree.Rule, 0, len(rules))
	for _, r := range rules {
		if e.Keep(r) {
			out = append(out, r)
		}
	}
	return out
}
