package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lazykbest/kbest/hypergraph"
	"github.com/lazykbest/kbest/symtab"
)

// wireSymbol is the JSON shape of one hypergraph.Symbol: exactly one of
// Word or Antecedent must be set.
type wireSymbol struct {
	Word       *string `json:"word,omitempty"`
	Antecedent *int    `json:"antecedent,omitempty"`
}

type wireRule struct {
	LHS    string       `json:"lhs"`
	Source []wireSymbol `json:"source"`
	Target []wireSymbol `json:"target"`
}

type wireEdge struct {
	Antecedents    []string `json:"antecedents,omitempty"`
	Rule           *wireRule `json:"rule,omitempty"`
	SourcePath     string   `json:"source_path,omitempty"`
	BestCost       float64  `json:"best_cost"`
	TransitionCost float64  `json:"transition_cost,omitempty"`
}

type wireNode struct {
	ID    string     `json:"id"`
	I     int        `json:"i"`
	J     int        `json:"j"`
	Edges []wireEdge `json:"edges"`
}

type wireHypergraph struct {
	Nodes []wireNode `json:"nodes"`
	Goal  string     `json:"goal"`
}

// loadHypergraph reads a JSON-encoded hypergraph from path and builds a
// *hypergraph.Hypergraph plus the symtab.Table populated along the way.
// Word and nonterminal-LHS names are resolved to symtab ids as they are
// encountered, so the same surface word always maps to the same id.
func loadHypergraph(path string) (*hypergraph.Hypergraph, *symtab.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("kbest: reading %s: %w", path, err)
	}

	var wire wireHypergraph
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, nil, fmt.Errorf("kbest: parsing %s: %w", path, err)
	}

	tab := symtab.NewTable()
	nodes := make(map[string]*hypergraph.Node, len(wire.Nodes))
	for _, wn := range wire.Nodes {
		nodes[wn.ID] = &hypergraph.Node{ID: wn.ID, I: wn.I, J: wn.J}
	}

	for _, wn := range wire.Nodes {
		n := nodes[wn.ID]
		for pos, we := range wn.Edges {
			edge := &hypergraph.Hyperedge{
				Parent: n, EdgePos: pos,
				BestCost: we.BestCost, TransitionCost: we.TransitionCost,
				SourcePath: we.SourcePath,
			}
			for _, antID := range we.Antecedents {
				ant, ok := nodes[antID]
				if !ok {
					return nil, nil, fmt.Errorf("kbest: node %s edge %d: unknown antecedent %q", wn.ID, pos, antID)
				}
				edge.Antecedents = append(edge.Antecedents, ant)
			}
			if we.Rule != nil {
				rule, err := resolveRule(we.Rule, tab)
				if err != nil {
					return nil, nil, fmt.Errorf("kbest: node %s edge %d: %w", wn.ID, pos, err)
				}
				edge.Rule = rule
			}
			n.Edges = append(n.Edges, edge)
		}
	}

	hg := hypergraph.New()
	for _, wn := range wire.Nodes {
		if wn.ID == wire.Goal {
			continue
		}
		if err := hg.AddNode(nodes[wn.ID]); err != nil {
			return nil, nil, fmt.Errorf("kbest: adding node %s: %w", wn.ID, err)
		}
	}

	goal, ok := nodes[wire.Goal]
	if !ok {
		return nil, nil, fmt.Errorf("kbest: goal node %q not found among nodes", wire.Goal)
	}
	if err := hg.SetGoal(goal); err != nil {
		return nil, nil, fmt.Errorf("kbest: setting goal: %w", err)
	}

	return hg, tab, nil
}

func resolveRule(wr *wireRule, tab *symtab.Table) (*hypergraph.Rule, error) {
	source, err := resolveSeq(wr.Source, tab)
	if err != nil {
		return nil, err
	}
	target, err := resolveSeq(wr.Target, tab)
	if err != nil {
		return nil, err
	}

	return &hypergraph.Rule{LHS: tab.AddNonterminal(wr.LHS), Source: source, Target: target}, nil
}

func resolveSeq(seq []wireSymbol, tab *symtab.Table) ([]hypergraph.Symbol, error) {
	out := make([]hypergraph.Symbol, len(seq))
	for i, ws := range seq {
		switch {
		case ws.Word != nil:
			out[i] = hypergraph.TerminalSymbol(tab.AddWord(*ws.Word))
		case ws.Antecedent != nil:
			out[i] = hypergraph.NonterminalSymbol(*ws.Antecedent)
		default:
			return nil, fmt.Errorf("kbest: symbol %d has neither word nor antecedent", i)
		}
	}

	return out, nil
}
