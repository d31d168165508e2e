package derivation

import (
	"strconv"
	"strings"

	"github.com/lazykbest/kbest/hypergraph"
)

// State is an immutable derivation state: one hyperedge of Parent, plus a
// rank vector selecting which sub-derivation of each antecedent this
// derivation uses. Ranks are 1-based per antecedent; Ranks is empty for an
// axiom (a hyperedge with no antecedents).
//
// Cost is the accumulated cost of this derivation: for the best
// (all-ones) rank vector, Cost == Edge.BestCost; for any other rank
// vector, Cost reflects the incremental deltas from substituting
// non-first-ranked sub-derivations (see vnode.lazyNext).
type State struct {
	Parent *hypergraph.Node
	Edge   *hypergraph.Hyperedge
	Ranks  []int
	Cost   float64
}

// New constructs a State. ranks is copied defensively so callers may reuse
// their backing array (e.g. when incrementing one index to form a
// successor).
func New(parent *hypergraph.Node, edge *hypergraph.Hyperedge, ranks []int, cost float64) State {
	var r []int
	if len(ranks) > 0 {
		r = make([]int, len(ranks))
		copy(r, ranks)
	}

	return State{Parent: parent, Edge: edge, Ranks: r, Cost: cost}
}

// Best constructs the rank-1 (all-ones, or empty for an axiom) State for
// edge, with Cost equal to edge.BestCost.
func Best(parent *hypergraph.Node, edge *hypergraph.Hyperedge) State {
	var ranks []int
	if n := len(edge.Antecedents); n > 0 {
		ranks = make([]int, n)
		for i := range ranks {
			ranks[i] = 1
		}
	}

	return State{Parent: parent, Edge: edge, Ranks: ranks, Cost: edge.BestCost}
}

// WithIncrementedRank returns a copy of s with Ranks[i] incremented by one
// and Cost set to newCost. s itself is never mutated.
func (s State) WithIncrementedRank(i int, newCost float64) State {
	r := make([]int, len(s.Ranks))
	copy(r, s.Ranks)
	r[i]++

	return State{Parent: s.Parent, Edge: s.Edge, Ranks: r, Cost: newCost}
}

// Signature returns "edge_pos r1 r2 … rm", unique within the scope of a
// single parent node. It is computed purely from EdgePos and Ranks —
// never from pointer identity — so it is deterministic and reproducible.
func (s State) Signature() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(s.Edge.EdgePos))
	for _, r := range s.Ranks {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(r))
	}

	return sb.String()
}

// Less reports whether s sorts before other by cost ascending. Ties are
// broken by Signature for a total, reproducible order (the spec permits
// any consistent total order; a string compare keeps sort stable without
// depending on insertion order or pointer identity).
func (s State) Less(other State) bool {
	if s.Cost != other.Cost {
		return s.Cost < other.Cost
	}

	return s.Signature() < other.Signature()
}

// IsAxiom reports whether s derives from a hyperedge with no antecedents.
func (s State) IsAxiom() bool { return len(s.Ranks) == 0 }
