package costcheck

import (
	"fmt"
	"math"

	"github.com/lazykbest/kbest/derivation"
	"github.com/lazykbest/kbest/feature"
)

// DefaultTolerance is the fixed absolute tolerance used by SanityCheck,
// per §4.5 and §9 (the spec leaves open whether it should scale with
// feature count; this implementation keeps it fixed, the simpler literal
// reading).
const DefaultTolerance = 1e-2

// Reconstruct walks s's full derivation tree and sums, for every
// hyperedge used, each feature's local TransitionCost. The returned slice
// has one entry per element of features, in the same order.
func Reconstruct(s derivation.State, resolver derivation.Resolver, features []feature.Function, sentID int) ([]float64, error) {
	acc := make([]float64, len(features))
	if err := accumulate(s, resolver, features, sentID, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

func accumulate(s derivation.State, resolver derivation.Resolver, features []feature.Function, sentID int, acc []float64) error {
	for i, f := range features {
		acc[i] += f.TransitionCost(s.Edge, sentID)
	}

	for i, child := range s.Edge.Antecedents {
		rank := s.Ranks[i]
		childState, ok, err := resolver.KthBest(child, rank)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("costcheck: antecedent %s has no rank-%d derivation", child.ID, rank)
		}
		if err := accumulate(childState, resolver, features, sentID, acc); err != nil {
			return err
		}
	}

	return nil
}

// SanityCheck verifies |cost - Σ featureCosts[i]*weights[i]| <= tol. Both
// slices must be the same length, ordered correspondingly. Returns a
// *CostMismatchError (wrapping ErrCostMismatch) on failure.
func SanityCheck(cost float64, features []feature.Function, featureCosts []float64, tol float64) error {
	var sum float64
	pairs := make([]WeightCostPair, len(features))
	for i, f := range features {
		w := f.Weight()
		sum += featureCosts[i] * w
		pairs[i] = WeightCostPair{Name: f.Name(), Weight: w, Cost: featureCosts[i]}
	}

	if math.Abs(cost-sum) > tol {
		return &CostMismatchError{Expected: cost, Actual: sum, Pairs: pairs}
	}

	return nil
}
