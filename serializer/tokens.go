package serializer

import (
	"fmt"
	"strconv"

	"github.com/lazykbest/kbest/derivation"
	"github.com/lazykbest/kbest/symtab"
)

// numericTokens produces s's numeric token stream per §4.4 "Recursion":
// one token per leaf, plus — in tree mode — a single opening/closing
// bracket pair wrapping s's own rule application. A closing ")" is never
// its own token; it is appended directly to the last token already
// emitted, so the stream can be resolved one token at a time without
// backtracking.
func numericTokens(s derivation.State, resolver derivation.Resolver, opts Options) ([]string, error) {
	var tokens []string

	if opts.Tree {
		tokens = append(tokens, openToken(s)+alignmentSuffix(s, opts))
	}

	if s.Edge.Rule == nil {
		for i := range s.Edge.Antecedents {
			leaves, err := flatAntecedent(s, i, resolver, opts.Monolingual)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, leaves...)
		}
	} else {
		seq := s.Edge.Rule.Target
		if opts.Monolingual {
			seq = s.Edge.Rule.Source
		}

		ntCounter := 0
		for _, sym := range seq {
			if !sym.IsNonterminal() {
				tokens = append(tokens, strconv.Itoa(sym.TerminalID()))

				continue
			}

			antIdx := sym.AntecedentIndex()
			if opts.Monolingual {
				antIdx = ntCounter
				ntCounter++
			}

			leaves, err := flatAntecedent(s, antIdx, resolver, opts.Monolingual)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, leaves...)
		}
	}

	if opts.Tree {
		if len(tokens) == 0 {
			return nil, fmt.Errorf("serializer: tree edge at %s produced no tokens to close", s.Parent.ID)
		}
		tokens[len(tokens)-1] += ")"
	}

	return tokens, nil
}

// openToken builds the opening bracket token for s's own rule application:
// "(<LHS_ID>", or "(<symtab.RootID>" for a goal-level (rule-less) edge.
func openToken(s derivation.State) string {
	lhs := symtab.RootID
	if s.Edge.Rule != nil {
		lhs = s.Edge.Rule.LHS
	}

	return "(" + strconv.Itoa(lhs)
}

// alignmentSuffix returns "{i-j}" for s's own span, when requested.
func alignmentSuffix(s derivation.State, opts Options) string {
	if !opts.Tree || !opts.IncludeAlignment {
		return ""
	}

	return fmt.Sprintf("{%d-%d}", s.Parent.I, s.Parent.J)
}

func flatAntecedent(s derivation.State, antIdx int, resolver derivation.Resolver, monolingual bool) ([]string, error) {
	if antIdx < 0 || antIdx >= len(s.Edge.Antecedents) {
		return nil, fmt.Errorf("serializer: nonterminal antecedent index %d out of range [0,%d)", antIdx, len(s.Edge.Antecedents))
	}

	rank := s.Ranks[antIdx]
	childState, ok, err := resolver.KthBest(s.Edge.Antecedents[antIdx], rank)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("serializer: antecedent %d has no rank-%d derivation", antIdx, rank)
	}

	yield, err := derivation.NumericYield(childState, resolver, monolingual)
	if err != nil {
		return nil, err
	}

	leaves := make([]string, len(yield))
	for i, id := range yield {
		leaves[i] = strconv.FormatInt(id, 10)
	}

	return leaves, nil
}
