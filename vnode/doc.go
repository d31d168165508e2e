// Package vnode implements the per-hypergraph-node lazy k-th derivation
// enumeration: the heap-driven "Algorithm 3" frontier of Huang & Chiang.
//
// A Virtual Node is created lazily, one per hypergraph.Node visited during
// extraction. It owns three pieces of bookkeeping:
//
//   - nbests: the derivations already ranked, sorted ascending by cost;
//     index i holds the (i+1)-th best. Grows monotonically and is never
//     re-sorted — entries are appended in final rank order.
//   - cand (a stateHeap): a container/heap min-heap of not-yet-ranked candidate
//     states, the frontier. Modeled directly on the teacher's
//     dijkstra.nodePQ / prim_kruskal.edgePQ: a lazy priority queue that
//     accepts duplicate-looking pushes and lets pop order do the work,
//     except here duplicates are prevented up front by signature, not
//     discovered lazily at pop time (the hypergraph shape is static,
//     unlike Dijkstra's monotonically-relaxing distances).
//   - derivationTbl / nbestStrTbl: signature and (optionally) yield-string
//     dedup sets.
//
// A Virtual Node never owns a descendant Virtual Node; it reaches
// descendants exclusively through a derivation.Resolver supplied by the
// caller (the extractor), which is the sole owner of the node→virtual-node
// table. This keeps the extraction graph free of ownership cycles even
// though hypergraph nodes can share descendants.
package vnode
