package vnode

import "errors"

var (
	// ErrHypergraphCorrupt indicates a fatal structural defect found while
	// seeding a node's candidate frontier — specifically, two hyperedges
	// produced the same (edge, rank-vector) signature, which the input
	// invariants say must never happen.
	ErrHypergraphCorrupt = errors.New("vnode: hypergraph corrupt: duplicate derivation signature at seeding")

	// ErrOverflowDerivationState indicates an internal invariant
	// violation: while computing a successor's cost, an antecedent's
	// derivation at a rank already used by the current state could not be
	// retrieved again. This should be unreachable and indicates a bug in
	// this package.
	ErrOverflowDerivationState = errors.New("vnode: overflow: previously ranked antecedent derivation is missing")
)
