// Package feature defines the feature-function collaborator contract
// (§6): a weighted scoring component that, given a single hyperedge, can
// report its own (local, non-recursive) transition-cost contribution —
// the piece of information the cost reconstructor (costcheck) needs to
// re-derive a derivation's per-feature cost breakdown, since a hyperedge's
// BestCost is an aggregated best-derivation cost (§9 Design Notes); the
// separate Hyperedge.TransitionCost field holds the edge's local cost.
//
// Feature-function implementations proper are out of scope (§1); this
// package's RuleCost and WordPenalty exist only to exercise the cost
// reconstructor end to end in tests and examples, mirroring the role the
// teacher's builder/weight_fn.go WeightFn plays for graph constructors: a
// small function-typed collaborator, not a fat interface hierarchy.
package feature
