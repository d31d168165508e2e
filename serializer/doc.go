// Package serializer implements the Hypothesis Serializer (C4): it walks
// a derivation.State recursively to produce a numeric token string (§4.4
// "Recursion"), then resolves every token through a symtab.Table to
// produce the final flat or tree-formatted yield, and finally assembles
// the full output line (§4.4 "Final line format", §6 output grammar).
//
// The recursion mirrors the teacher's recursive graph-traversal shape
// (dfs.DFS's recursive visit) but walks a Rule's symbol sequence instead
// of a graph's adjacency list, substituting nonterminal placeholders with
// the recursively serialized antecedent chosen by the derivation's rank
// vector.
package serializer
