package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazykbest/kbest/extractor"
	"github.com/lazykbest/kbest/feature"
	"github.com/lazykbest/kbest/hypergraph"
	"github.com/lazykbest/kbest/sink"
	"github.com/lazykbest/kbest/symtab"
)

func sym(id int) hypergraph.Symbol { return hypergraph.TerminalSymbol(id) }

// TestExtract_ComposedDerivation mirrors spec round-trip scenario 3 end
// to end: a real Hypergraph, symtab, Extractor, and SliceSink.
func TestExtract_ComposedDerivation(t *testing.T) {
	tab := symtab.NewTable()
	wa := tab.AddWord("a")
	wx := tab.AddWord("x")
	wb := tab.AddWord("b")
	wy := tab.AddWord("y")

	a := &hypergraph.Node{ID: "A"}
	a.Edges = []*hypergraph.Hyperedge{
		{Parent: a, EdgePos: 0, BestCost: 1.0, Rule: &hypergraph.Rule{Target: []hypergraph.Symbol{sym(wa)}}},
		{Parent: a, EdgePos: 1, BestCost: 3.0, Rule: &hypergraph.Rule{Target: []hypergraph.Symbol{sym(wx)}}},
	}
	b := &hypergraph.Node{ID: "B"}
	b.Edges = []*hypergraph.Hyperedge{
		{Parent: b, EdgePos: 0, BestCost: 2.0, Rule: &hypergraph.Rule{Target: []hypergraph.Symbol{sym(wb)}}},
		{Parent: b, EdgePos: 1, BestCost: 5.0, Rule: &hypergraph.Rule{Target: []hypergraph.Symbol{sym(wy)}}},
	}
	goal := &hypergraph.Node{ID: "GOAL"}
	goal.Edges = []*hypergraph.Hyperedge{
		{Parent: goal, EdgePos: 0, Antecedents: []*hypergraph.Node{a, b}, BestCost: 3.0},
	}

	hg := hypergraph.New()
	require.NoError(t, hg.AddNode(a))
	require.NoError(t, hg.AddNode(b))
	require.NoError(t, hg.SetGoal(goal))

	ex := extractor.New(extractor.WithCombinedScore())
	cons := sink.NewSliceSink()
	err := ex.Extract(hg, tab, nil, 10, -1, cons)
	require.NoError(t, err)
	require.True(t, cons.Finished)

	want := []string{
		"a b ||| -3.000",
		"x b ||| -5.000",
		"a y ||| -6.000",
		"x y ||| -8.000",
	}
	assert.Equal(t, want, cons.Lines)
}

// TestExtract_RankUnreachableStopsEarly mirrors §4.1's "extract" loop
// terminating once fewer than N derivations exist.
func TestExtract_RankUnreachableStopsEarly(t *testing.T) {
	tab := symtab.NewTable()
	w := tab.AddWord("a")

	goal := &hypergraph.Node{ID: "GOAL"}
	goal.Edges = []*hypergraph.Hyperedge{
		{Parent: goal, EdgePos: 0, BestCost: 0.0, Rule: &hypergraph.Rule{Target: []hypergraph.Symbol{sym(w)}}},
	}
	hg := hypergraph.New()
	require.NoError(t, hg.SetGoal(goal))

	ex := extractor.New()
	cons := sink.NewSliceSink()
	require.NoError(t, ex.Extract(hg, tab, nil, 5, 0, cons))
	assert.Equal(t, []string{"0 ||| a"}, cons.Lines)
	assert.True(t, cons.Finished)
}

// TestExtract_SanityCheckFailurePropagates verifies Finish is still
// called when a sanity check aborts the run.
func TestExtract_SanityCheckFailurePropagates(t *testing.T) {
	tab := symtab.NewTable()
	w := tab.AddWord("a")

	goal := &hypergraph.Node{ID: "GOAL"}
	goal.Edges = []*hypergraph.Hyperedge{
		// BestCost disagrees with the feature weight*cost product below.
		{Parent: goal, EdgePos: 0, BestCost: 9.0, TransitionCost: 1.0, Rule: &hypergraph.Rule{Target: []hypergraph.Symbol{sym(w)}}},
	}
	hg := hypergraph.New()
	require.NoError(t, hg.SetGoal(goal))

	ex := extractor.New(extractor.WithSanityCheck())
	cons := sink.NewSliceSink()
	features := []feature.Function{feature.RuleCost{W: 1.0}}
	err := ex.Extract(hg, tab, features, 1, 0, cons)
	require.Error(t, err)
	assert.Empty(t, cons.Lines)
	assert.True(t, cons.Finished)
}

func TestExtract_InvalidN(t *testing.T) {
	ex := extractor.New()
	cons := sink.NewSliceSink()
	err := ex.Extract(hypergraph.New(), symtab.NewTable(), nil, 0, 0, cons)
	require.Error(t, err)
	assert.True(t, cons.Finished)
}

func TestKthHypothesis_TreeWithAlignment(t *testing.T) {
	tab := symtab.NewTable()
	wa := tab.AddWord("a")
	wb := tab.AddWord("b")
	lhsS := tab.AddNonterminal("S")

	a := &hypergraph.Node{ID: "A"}
	a.Edges = []*hypergraph.Hyperedge{
		{Parent: a, EdgePos: 0, BestCost: 1.0, Rule: &hypergraph.Rule{Target: []hypergraph.Symbol{sym(wa)}}},
	}
	b := &hypergraph.Node{ID: "B"}
	b.Edges = []*hypergraph.Hyperedge{
		{Parent: b, EdgePos: 0, BestCost: 2.0, Rule: &hypergraph.Rule{Target: []hypergraph.Symbol{sym(wb)}}},
	}
	goal := &hypergraph.Node{ID: "GOAL", I: 0, J: 2}
	goal.Edges = []*hypergraph.Hyperedge{
		{
			Parent: goal, EdgePos: 0, Antecedents: []*hypergraph.Node{a, b}, BestCost: 3.0,
			Rule: &hypergraph.Rule{LHS: lhsS, Target: []hypergraph.Symbol{hypergraph.NonterminalSymbol(0), hypergraph.NonterminalSymbol(1)}},
		},
	}
	hg := hypergraph.New()
	require.NoError(t, hg.SetGoal(goal))

	// SetGoal accepted a rule-bearing goal edge (§8 scenario 4 roots the
	// tree at the grammar's own LHS, "S", not the synthetic "ROOT" label) —
	// retrieve the goal through the production hg.Goal() accessor, the same
	// path Extract and the CLI use, rather than the local `goal` variable.
	root, err := hg.Goal()
	require.NoError(t, err)

	ex := extractor.New(extractor.WithTree(), extractor.WithAlignment(), extractor.WithCombinedScore())
	line, err := ex.KthHypothesis(root, 1, tab, nil, -1)
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, "(S{0-2} a b) ||| -3.000", *line)

	_, err = ex.KthHypothesis(root, 2, tab, nil, -1)
	require.NoError(t, err)

	// Same derivation, now through the top-level Extract loop (§4.1).
	ex2 := extractor.New(extractor.WithTree(), extractor.WithAlignment(), extractor.WithCombinedScore())
	cons := sink.NewSliceSink()
	require.NoError(t, ex2.Extract(hg, tab, nil, 1, -1, cons))
	assert.Equal(t, []string{"(S{0-2} a b) ||| -3.000"}, cons.Lines)
	assert.True(t, cons.Finished)
}
