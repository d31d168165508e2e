// Package extractor implements the top-level N-best Extractor (C3): it
// owns the per-hypergraph node->vnode.VirtualNode table, implements
// derivation.Resolver so virtual nodes can reach their descendants
// without any direct ownership cycle, drives extraction for the whole
// hypergraph (§4.1 "extract") or a single on-demand rank query (§4.1
// "kth_hypothesis"), and guarantees the consumer's Finish is invoked
// exactly once per Extract call regardless of how it returns.
//
// The top-level function shape — validate inputs, build a struct holding
// all mutable run state, drive a loop, return — mirrors the teacher's
// dijkstra.Dijkstra. Configuration is supplied through the teacher's
// functional-options idiom (builder.BuilderOption): option constructors
// validate and panic only on a nil/malformed argument, never on a
// semantically empty one.
package extractor
