package config

import "errors"

// ErrInvalidN is returned by Validate when N <= 0.
var ErrInvalidN = errors.New("config: n must be positive")

// ErrUnknownFeatureKind is returned by Validate when a feature entry
// names a Kind that is not a recognized reference feature.
var ErrUnknownFeatureKind = errors.New("config: unknown feature kind")
