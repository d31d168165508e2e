package extractor

import "errors"

// ErrInvalidN is returned when N <= 0 is passed to Extract.
var ErrInvalidN = errors.New("extractor: N must be positive")
