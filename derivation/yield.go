package derivation

import "fmt"

// NumericYield walks s recursively and returns its leaf-symbol sequence as
// raw terminal identifiers (hypergraph.Symbol.TerminalID values), with no
// symbol-table resolution and no tree brackets. It is the shared first
// stage used both by vnode (to dedup derivations by surface string under
// unique_nbest) and by the serializer (to produce a flat yield before
// mapping through a symbol table).
//
// Recursion follows §4.4: a goal edge (nil Rule) concatenates its
// antecedents' yields in order; a normal edge walks its Rule's target
// side (or source side when monolingual is true), substituting each
// nonterminal with the recursively computed yield of the antecedent it
// names, and emitting every terminal symbol's ID literally.
//
// In monolingual mode, nonterminal antecedents are matched to source-side
// occurrences by a running counter, not by the symbol's encoded index —
// per the specification, each antecedent is assumed to appear exactly
// once, in source order.
func NumericYield(s State, resolver Resolver, monolingual bool) ([]int64, error) {
	if s.Edge.Rule == nil {
		out := make([]int64, 0, len(s.Edge.Antecedents))
		for i := range s.Edge.Antecedents {
			childYield, err := yieldOfAntecedent(s, i, resolver, monolingual)
			if err != nil {
				return nil, err
			}
			out = append(out, childYield...)
		}

		return out, nil
	}

	seq := s.Edge.Rule.Target
	if monolingual {
		seq = s.Edge.Rule.Source
	}

	out := make([]int64, 0, len(seq))
	ntCounter := 0
	for _, sym := range seq {
		if !sym.IsNonterminal() {
			out = append(out, int64(sym.TerminalID()))

			continue
		}

		antIdx := sym.AntecedentIndex()
		if monolingual {
			antIdx = ntCounter
			ntCounter++
		}
		if antIdx < 0 || antIdx >= len(s.Edge.Antecedents) {
			return nil, fmt.Errorf("derivation: nonterminal antecedent index %d out of range [0,%d)", antIdx, len(s.Edge.Antecedents))
		}

		childYield, err := yieldOfAntecedent(s, antIdx, resolver, monolingual)
		if err != nil {
			return nil, err
		}
		out = append(out, childYield...)
	}

	return out, nil
}

func yieldOfAntecedent(s State, antIdx int, resolver Resolver, monolingual bool) ([]int64, error) {
	rank := s.Ranks[antIdx]
	childState, ok, err := resolver.KthBest(s.Edge.Antecedents[antIdx], rank)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("derivation: antecedent %d has no rank-%d derivation", antIdx, rank)
	}

	return NumericYield(childState, resolver, monolingual)
}
