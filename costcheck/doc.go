// Package costcheck implements the Cost Reconstructor (C5): it
// re-accumulates each feature function's local transition-cost
// contribution across every hyperedge used by a derivation, and
// optionally validates the reconstructed weighted sum against the
// derivation's stored cost.
//
// This is a parallel pass alongside the serializer's yield walk (§4.5
// permits either); keeping it separate means the serializer stays a pure
// text-formatting concern and costcheck stays a pure numeric one, mirrored
// on the teacher's matrix package keeping numeric-tolerance checks
// (impl_linear_algebra.go epsilon comparisons) separate from formatting.
package costcheck
