package vnode

import "github.com/lazykbest/kbest/derivation"

// stateHeap is a min-heap of derivation.State ordered by State.Less,
// modeled on the teacher's dijkstra.nodePQ: a slice-backed
// container/heap.Interface holding value-ish items, compared purely by a
// method on the item type.
type stateHeap []derivation.State

func (h stateHeap) Len() int            { return len(h) }
func (h stateHeap) Less(i, j int) bool  { return h[i].Less(h[j]) }
func (h stateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *stateHeap) Push(x interface{}) { *h = append(*h, x.(derivation.State)) }
func (h *stateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
