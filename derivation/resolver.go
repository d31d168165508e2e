package derivation

import "github.com/lazykbest/kbest/hypergraph"

// Resolver is the lookup a Virtual Node (or the yield walker) uses to
// reach descendant nodes' ranked derivations, by hypergraph-node identity
// — never by owning a pointer to the descendant's own bookkeeping. The
// extractor package is the sole implementer: it owns the node→virtual-node
// table and cascades KthBest calls into descendant virtual nodes as
// needed.
type Resolver interface {
	// KthBest returns the k-th (1-based) ranked derivation at node n,
	// computing and memoizing it (and cascading into descendants) if it
	// does not exist yet. ok is false if node n has fewer than k distinct
	// derivations.
	KthBest(n *hypergraph.Node, k int) (state State, ok bool, err error)
}
