// Package symtab is a minimal, in-memory reference implementation of the
// symbol-table collaborator described in §6: word_of, is_nonterminal,
// target_nonterminal_index, add_nonterminal. Vocabulary construction
// proper is out of scope (§1); this package exists so the serializer and
// its tests have a concrete, stable collaborator to resolve against,
// without depending on any particular decoder's vocabulary format.
//
// ID allocation mirrors the teacher's collision-free counter style
// (core.Graph's "e1", "e2", … edge IDs): terminal words get ascending
// non-negative IDs from AddWord; nonterminal names get descending
// negative IDs from AddNonterminal, starting at -1. NewTable reserves -1
// for "ROOT" so the serializer can always resolve the goal-level tree
// label without a special case.
package symtab
