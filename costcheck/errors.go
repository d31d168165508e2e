package costcheck

import (
	"errors"
	"fmt"
)

// ErrCostMismatch is the sentinel wrapped by a CostMismatch diagnostic
// (see CostMismatchError). Fatal for the current extraction per §7.
var ErrCostMismatch = errors.New("costcheck: reconstructed cost does not match stored cost")

// WeightCostPair records one feature's weight and reconstructed
// transition-cost sum, for CostMismatch diagnostics.
type WeightCostPair struct {
	Name   string
	Weight float64
	Cost   float64
}

// CostMismatchError carries the full diagnostic payload required by §4.5:
// the expected (stored) cost, the actual reconstructed weighted sum, and
// every (weight, cost) pair that went into it.
type CostMismatchError struct {
	Expected float64
	Actual   float64
	Pairs    []WeightCostPair
}

func (e *CostMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %.6f, got %.6f, pairs=%v", ErrCostMismatch, e.Expected, e.Actual, e.Pairs)
}

func (e *CostMismatchError) Unwrap() error { return ErrCostMismatch }
