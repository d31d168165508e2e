// Package kbest is the root of a lazy k-best derivation extractor over
// weighted hypergraphs, implementing the Huang & Chiang cube-pruning
// ("Algorithm 3") style lazy enumeration.
//
// The module is organized as one package per component:
//
//	hypergraph/ — read-only input data model (Node, Hyperedge, Rule)
//	derivation/ — immutable derivation-state value type and signatures
//	vnode/      — per-node lazy k-th enumeration (the algorithmic core)
//	extractor/  — top-level driver owning the node->virtual-node map
//	serializer/ — derivation -> numeric yield -> flat/tree output line
//	costcheck/  — per-feature cost reconstruction and sanity checking
//	symtab/     — reference symbol-table collaborator
//	feature/    — feature-function collaborator interface + references
//	sink/       — consumer interface + reference implementations
//	config/     — YAML run configuration
//	cmd/kbest/  — a cobra CLI wiring all of the above together
//
// See the repository's SPEC_FULL.md for the full requirements this module
// implements and DESIGN.md for how each package is grounded.
package kbest
