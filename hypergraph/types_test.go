package hypergraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazykbest/kbest/hypergraph"
)

func TestBuilder_SimpleAxiomGoal(t *testing.T) {
	b := hypergraph.NewBuilder()
	b.AddAxiom("A", 0, 1, &hypergraph.Rule{
		LHS:    1,
		Source: []hypergraph.Symbol{hypergraph.TerminalSymbol(10)},
		Target: []hypergraph.Symbol{hypergraph.TerminalSymbol(10)},
	}, "r1", 0.0)
	b.AddNode("GOAL", 0, 1, hypergraph.Hyperedge{
		Antecedents: b.AntecedentsOf("A"),
		BestCost:    0.0,
	})
	b.SetGoal("GOAL")

	hg, err := b.Build()
	require.NoError(t, err)

	goal, err := hg.Goal()
	require.NoError(t, err)
	assert.Equal(t, "GOAL", goal.ID)
	assert.True(t, goal.IsGoal)
	assert.Len(t, goal.Edges, 1)
	assert.True(t, goal.Edges[0].Rule == nil)
}

func TestBuilder_GoalEdgeWithRule_Allowed(t *testing.T) {
	b := hypergraph.NewBuilder()
	b.AddAxiom("A", 0, 1, nil, "", 0.0)
	b.AddNode("GOAL", 0, 1, hypergraph.Hyperedge{
		Antecedents: b.AntecedentsOf("A"),
		Rule:        &hypergraph.Rule{LHS: 1, Target: []hypergraph.Symbol{hypergraph.NonterminalSymbol(0)}},
		BestCost:    0.0,
	})
	b.SetGoal("GOAL")

	hg, err := b.Build()
	require.NoError(t, err)

	goal, err := hg.Goal()
	require.NoError(t, err)
	assert.True(t, goal.IsGoal)
	require.NotNil(t, goal.Edges[0].Rule)
	assert.Equal(t, 1, goal.Edges[0].Rule.LHS)
}

func TestBuilder_ArityMismatch(t *testing.T) {
	b := hypergraph.NewBuilder()
	b.AddAxiom("A", 0, 1, nil, "", 0.0)
	b.AddAxiom("B", 1, 2, nil, "", 0.0)
	b.AddNode("S", 0, 2, hypergraph.Hyperedge{
		Antecedents: b.AntecedentsOf("A", "B"),
		Rule: &hypergraph.Rule{
			LHS:    1,
			Target: []hypergraph.Symbol{hypergraph.NonterminalSymbol(0)}, // missing antecedent 1
		},
		BestCost: 0.0,
	})

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, hypergraph.ErrArityMismatch))
}

func TestHypergraph_NoGoal(t *testing.T) {
	hg := hypergraph.New()
	_, err := hg.Goal()
	require.Error(t, err)
	assert.True(t, errors.Is(err, hypergraph.ErrNoGoal))
}

func TestHypergraph_DuplicateNode(t *testing.T) {
	n := &hypergraph.Node{ID: "A", Edges: []*hypergraph.Hyperedge{{BestCost: 0}}}
	hg := hypergraph.New()
	require.NoError(t, hg.AddNode(n))
	err := hg.AddNode(n)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hypergraph.ErrDuplicateNode))
}
