// Package hypergraph: sentinel error set.
//
// Every error below is a package-level sentinel. Callers MUST branch on
// these via errors.Is, never by string comparison. Context is attached at
// call sites with fmt.Errorf("...: %w", ErrX).
package hypergraph

import "errors"

var (
	// ErrNoHyperedges indicates a Node was constructed with an empty
	// incoming-hyperedge list; every Node must have at least one way to be
	// derived.
	ErrNoHyperedges = errors.New("hypergraph: node has no incoming hyperedges")

	// ErrArityMismatch indicates a Hyperedge's antecedent count does not
	// match the nonterminal count implied by its Rule's target side.
	ErrArityMismatch = errors.New("hypergraph: hyperedge arity does not match rule nonterminal count")

	// ErrBadNonterminalIndex indicates a Rule's target-nonterminal index
	// mapping is not a valid permutation of its antecedent positions.
	ErrBadNonterminalIndex = errors.New("hypergraph: rule nonterminal index out of range")

	// ErrNoGoal indicates Goal() was called on a Hypergraph on which SetGoal
	// was never called, or the referenced goal node was never added.
	ErrNoGoal = errors.New("hypergraph: no goal node set")

	// ErrDuplicateNode indicates AddNode was called twice with the same
	// Node identity.
	ErrDuplicateNode = errors.New("hypergraph: duplicate node")
)
