package costcheck_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazykbest/kbest/costcheck"
	"github.com/lazykbest/kbest/derivation"
	"github.com/lazykbest/kbest/feature"
	"github.com/lazykbest/kbest/hypergraph"
	"github.com/lazykbest/kbest/vnode"
)

type resolver struct {
	nodes map[*hypergraph.Node]*vnode.VirtualNode
}

func newResolver() *resolver {
	return &resolver{nodes: make(map[*hypergraph.Node]*vnode.VirtualNode)}
}

func (r *resolver) KthBest(n *hypergraph.Node, k int) (derivation.State, bool, error) {
	v, ok := r.nodes[n]
	if !ok {
		v = vnode.New(n, false, false)
		r.nodes[n] = v
	}

	return v.KthBest(k, r)
}

// TestReconstruct_TwoWayAmbiguity mirrors spec round-trip scenario 2: a
// single feature with weight 1.0 reproducing the full cost exactly.
func TestReconstruct_TwoWayAmbiguity(t *testing.T) {
	goal := &hypergraph.Node{ID: "GOAL"}
	goal.Edges = []*hypergraph.Hyperedge{
		{Parent: goal, EdgePos: 0, BestCost: 1.0, TransitionCost: 1.0},
		{Parent: goal, EdgePos: 1, BestCost: 2.0, TransitionCost: 2.0},
	}
	r := newResolver()
	features := []feature.Function{feature.RuleCost{W: 1.0}}

	s1, ok, err := r.KthBest(goal, 1)
	require.NoError(t, err)
	require.True(t, ok)
	costs1, err := costcheck.Reconstruct(s1, r, features, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0}, costs1)
	require.NoError(t, costcheck.SanityCheck(s1.Cost, features, costs1, costcheck.DefaultTolerance))

	s2, ok, err := r.KthBest(goal, 2)
	require.NoError(t, err)
	require.True(t, ok)
	costs2, err := costcheck.Reconstruct(s2, r, features, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.0}, costs2)
	require.NoError(t, costcheck.SanityCheck(s2.Cost, features, costs2, costcheck.DefaultTolerance))
}

func TestSanityCheck_Mismatch(t *testing.T) {
	features := []feature.Function{feature.RuleCost{W: 1.0}}
	err := costcheck.SanityCheck(5.0, features, []float64{1.0}, costcheck.DefaultTolerance)
	require.Error(t, err)
	assert.True(t, errors.Is(err, costcheck.ErrCostMismatch))

	var mismatch *costcheck.CostMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 5.0, mismatch.Expected)
	assert.Equal(t, 1.0, mismatch.Actual)
}
