// Package derivation defines the immutable Derivation State: the identity
// of one candidate derivation at a hypergraph node, expressed as
// (hyperedge, rank vector) plus its accumulated cost.
//
// A State never owns or copies its descendants' states; it holds
// read-only references to a hypergraph.Node and hypergraph.Hyperedge and
// a small rank vector selecting, for each antecedent, which of that
// antecedent's own ranked sub-derivations to use. Ordering is by Cost
// ascending; Signature is deterministic and does not depend on pointer
// identity, so it remains stable across runs given the same hypergraph.
package derivation
