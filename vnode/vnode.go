package vnode

import (
	"container/heap"
	"fmt"

	"github.com/lazykbest/kbest/derivation"
	"github.com/lazykbest/kbest/hypergraph"
)

// VirtualNode is the per-hypergraph-node lazy k-best bookkeeping described
// in the package doc. Zero value is not usable; construct with New.
type VirtualNode struct {
	node *hypergraph.Node

	nbests []derivation.State
	cand   stateHeap
	seeded bool

	derivationTbl map[string]struct{}
	nbestStrTbl   map[string]struct{} // nil unless uniqueNbest

	uniqueNbest bool
	monolingual bool
}

// New returns a Virtual Node for hypergraph node n. uniqueNbest enables
// yield-string dedup (§4.2 step 3); monolingual selects the rule's source
// side rather than target side when computing yields for that dedup.
func New(n *hypergraph.Node, uniqueNbest, monolingual bool) *VirtualNode {
	v := &VirtualNode{
		node:          n,
		derivationTbl: make(map[string]struct{}),
		uniqueNbest:   uniqueNbest,
		monolingual:   monolingual,
	}
	if uniqueNbest {
		v.nbestStrTbl = make(map[string]struct{})
	}

	return v
}

// Node returns the hypergraph node this Virtual Node tracks.
func (v *VirtualNode) Node() *hypergraph.Node { return v.node }

// NBestLen returns how many derivations have been finalized so far.
func (v *VirtualNode) NBestLen() int { return len(v.nbests) }

// KthBest returns the k-th (1-based) ranked derivation at this node,
// expanding the frontier as needed. ok is false if fewer than k distinct
// derivations exist (RankUnreachable, per §7 — a local, non-fatal
// condition).
func (v *VirtualNode) KthBest(k int, resolver derivation.Resolver) (derivation.State, bool, error) {
	if k <= 0 {
		return derivation.State{}, false, nil
	}

	// 1) Already memoized.
	if len(v.nbests) >= k {
		return v.nbests[k-1], true, nil
	}

	// 2) Seed the frontier on first access.
	if !v.seeded {
		if err := v.seed(resolver); err != nil {
			return derivation.State{}, false, err
		}
		v.seeded = true
	}

	// 3) Pop-and-expand until nbests reaches k or the frontier empties.
	for len(v.nbests) < k && v.cand.Len() > 0 {
		res := heap.Pop(&v.cand).(derivation.State)

		accept := true
		if v.uniqueNbest {
			yield, err := derivation.NumericYield(res, resolver, v.monolingual)
			if err != nil {
				return derivation.State{}, false, err
			}
			key := yieldKey(yield)
			if _, seen := v.nbestStrTbl[key]; seen {
				accept = false
			} else {
				v.nbestStrTbl[key] = struct{}{}
			}
		}
		if accept {
			v.nbests = append(v.nbests, res)
		}

		// Successors are enqueued regardless of acceptance: a discarded
		// duplicate-yield state still has successors that may carry a
		// distinct yield (§4.2 step 3).
		if err := v.lazyNext(res, resolver); err != nil {
			return derivation.State{}, false, err
		}
	}

	// 4)/5) Terminate: k reached, or exhausted.
	if len(v.nbests) >= k {
		return v.nbests[k-1], true, nil
	}

	return derivation.State{}, false, nil
}

// seed constructs the best (rank-1) derivation state for every incoming
// hyperedge of this node and pushes it into the candidate frontier.
func (v *VirtualNode) seed(resolver derivation.Resolver) error {
	for _, edge := range v.node.Edges {
		for _, child := range edge.Antecedents {
			if _, ok, err := resolver.KthBest(child, 1); err != nil {
				return err
			} else if !ok {
				return fmt.Errorf("vnode: node %s: antecedent %s has no derivation at all", v.node.ID, child.ID)
			}
		}

		best := derivation.Best(v.node, edge)
		sig := best.Signature()
		if _, dup := v.derivationTbl[sig]; dup {
			return fmt.Errorf("%w: node %s signature %q", ErrHypergraphCorrupt, v.node.ID, sig)
		}
		v.derivationTbl[sig] = struct{}{}
		heap.Push(&v.cand, best)
	}

	return nil
}

// lazyNext enqueues every successor of last: for each antecedent position,
// increment that position's rank by one and, if the resulting rank vector
// hasn't already been seen, compute its cost and push it.
func (v *VirtualNode) lazyNext(last derivation.State, resolver derivation.Resolver) error {
	for i := range last.Ranks {
		nextRank := last.Ranks[i] + 1

		candidate := last.WithIncrementedRank(i, 0) // cost patched in below once known
		sig := candidate.Signature()
		if _, dup := v.derivationTbl[sig]; dup {
			continue
		}

		child := last.Edge.Antecedents[i]
		childNext, ok, err := resolver.KthBest(child, nextRank)
		if err != nil {
			return err
		}
		if !ok {
			// Fewer than nextRank derivations at this antecedent: this
			// successor is unreachable, not an error.
			continue
		}

		childPrev, ok, err := resolver.KthBest(child, last.Ranks[i])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: node %s antecedent %s rank %d vanished", ErrOverflowDerivationState, v.node.ID, child.ID, last.Ranks[i])
		}

		candidate.Cost = last.Cost - childPrev.Cost + childNext.Cost

		v.derivationTbl[sig] = struct{}{}
		heap.Push(&v.cand, candidate)
	}

	return nil
}

// yieldKey turns a numeric yield into a map key. int64 slices aren't
// comparable/hashable directly; a length-prefixed byte encoding avoids
// string-building ambiguity between e.g. [12, 3] and [1, 23].
func yieldKey(yield []int64) string {
	buf := make([]byte, 0, len(yield)*9)
	for _, id := range yield {
		buf = appendVarint(buf, id)
	}

	return string(buf)
}

func appendVarint(buf []byte, v int64) []byte {
	u := uint64(v)
	for u >= 0x80 {
		buf = append(buf, byte(u)|0x80)
		u >>= 7
	}

	return append(buf, byte(u))
}
