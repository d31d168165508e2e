package extractor

import "go.uber.org/zap"

// config holds every Extractor knob, assembled by applying Option values
// over defaultConfig(). Mirrors the teacher's builderConfig.
type config struct {
	uniqueNbest      bool
	monolingual      bool
	tree             bool
	includeAlignment bool
	addCombinedScore bool
	sanityCheck      bool
	log              *zap.Logger
}

func defaultConfig() config {
	return config{log: zap.NewNop()}
}

// Option customizes an Extractor by mutating its config before any
// extraction runs. Constructors validate and panic only on a
// programmer-error argument (a nil logger); every boolean toggle is
// always meaningful and never panics.
type Option func(*config)

// WithUniqueNbest enables yield-string deduplication (§4.2 step 3): two
// derivations with the same surface string count as one ranked entry.
func WithUniqueNbest() Option {
	return func(c *config) { c.uniqueNbest = true }
}

// WithMonolingual selects each rule's source side (rather than target
// side) for yield computation and serialization.
func WithMonolingual() Option {
	return func(c *config) { c.monolingual = true }
}

// WithTree renders each hypothesis as a single bracketed rule application
// (§6 tree grammar) instead of a flat surface string.
func WithTree() Option {
	return func(c *config) { c.tree = true }
}

// WithAlignment appends the queried node's span as "{i-j}" to the tree's
// opening bracket. Has no effect unless WithTree is also set.
func WithAlignment() Option {
	return func(c *config) { c.includeAlignment = true }
}

// WithCombinedScore appends the derivation's total score to each line.
func WithCombinedScore() Option {
	return func(c *config) { c.addCombinedScore = true }
}

// WithSanityCheck reconstructs each hypothesis's cost from its feature
// weights (§4.5) before delivering it, aborting the run on mismatch.
func WithSanityCheck() Option {
	return func(c *config) { c.sanityCheck = true }
}

// WithLogger attaches a structured logger. Panics on a nil logger; pass
// zap.NewNop() explicitly to discard output.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("extractor: WithLogger(nil)")
	}

	return func(c *config) { c.log = log }
}
