// Package hypergraph defines the read-only input data model consumed by
// the lazy k-best derivation extractor: Node, Hyperedge, Rule, and the
// Hypergraph that owns them.
//
// A Hypergraph represents a packed parse forest produced upstream by a
// decoder: each Node is a recognized span, and each incoming Hyperedge of
// a Node is one grammar-rule application that can produce that span from
// its (possibly empty) ordered list of antecedent Nodes.
//
// This package is deliberately inert: it holds data and validates
// construction-time invariants (§3 of the design), but performs no search,
// no scoring beyond what is handed to it, and no mutation once built.
// Extraction packages (vnode, extractor, serializer, costcheck) treat a
// Hypergraph as read-only for the duration of an extraction.
//
// Invariants enforced at construction:
//
//   - Every Node's hyperedge list is non-empty (a Node with zero incoming
//     hyperedges cannot participate in any derivation and is rejected).
//   - A Hyperedge's antecedent count matches the arity implied by its Rule
//     (when a Rule is present): the rule's target-side nonterminal
//     placeholders are a permutation of [0, len(antecedents)). Builder.AddNode
//     checks this; Hypergraph.AddNode does not.
//   - One Node is designated as the goal via SetGoal. A goal hyperedge's
//     Rule is optional; a rule-bearing goal edge is accepted.
package hypergraph
