package fptree

import "errors"

// Error taxonomy. New, NewWithConfig and NewRule return these as
// errors.Is-compatible sentinels so callers that want to branch on
// failure kind can do so; the bool-returning Tree methods record the
// failure instead, and Tree.LastError surfaces the most recent one as text.
var (
	// ErrInvalidConfiguration covers support/confidence outside (0,1], a
	// duplicate label in the construction-time ranking, and invalid rule
	// values passed to NewRule.
	ErrInvalidConfiguration = errors.New("fptree: invalid configuration")

	// ErrUnknownItem is returned when Insert references a label absent
	// from the header index.
	ErrUnknownItem = errors.New("fptree: unknown item")

	// ErrEmptyInput is returned when Insert or New is called with no
	// items.
	ErrEmptyInput = errors.New("fptree: empty input")

	// ErrAccountingViolation means a read-count would exceed a node's
	// traversal-count: a cyclic parent chain or a double-counted header
	// chain traversal. Non-recoverable for the tree instance it occurs
	// on; further mining results on that tree are undefined.
	ErrAccountingViolation = errors.New("fptree: accounting violation")

	// ErrNoPatterns means mining found no pattern meeting minimum
	// support.
	ErrNoPatterns = errors.New("fptree: no patterns meet support")

	// ErrIncompleteData means a rule's antecedent count was not found in
	// the pattern store when deriving confidence.
	ErrIncompleteData = errors.New("fptree: incomplete pattern data")
)
