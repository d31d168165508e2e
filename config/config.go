package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lazykbest/kbest/feature"
)

// FeatureWeight names one feature function and its combination weight.
// Kind selects the reference implementation: "rule_cost" or
// "word_penalty".
type FeatureWeight struct {
	Kind    string  `yaml:"kind"`
	Weight  float64 `yaml:"weight"`
	PerWord float64 `yaml:"per_word,omitempty"`
}

// Config holds everything one extraction run needs beyond the
// hypergraph and symbol table themselves.
type Config struct {
	// N is the requested beam size (§4.1).
	N int `yaml:"n"`

	// UniqueNbest enables yield-string deduplication (§4.2 step 3).
	UniqueNbest bool `yaml:"unique_nbest"`
	// Monolingual selects each rule's source side rather than target side.
	Monolingual bool `yaml:"monolingual"`
	// Tree renders hypotheses as bracketed trees instead of flat strings.
	Tree bool `yaml:"tree"`
	// IncludeAlignment appends "{i-j}" spans; effective only with Tree.
	IncludeAlignment bool `yaml:"include_alignment"`
	// AddCombinedScore appends the derivation's total score to each line.
	AddCombinedScore bool `yaml:"add_combined_score"`
	// SanityCheck reconstructs and verifies each hypothesis's cost (§4.5).
	SanityCheck bool `yaml:"sanity_check"`

	// Features lists the feature functions to combine, in weight order.
	Features []FeatureWeight `yaml:"features"`
}

// Default returns a Config with N=1 and no features, the minimal
// meaningful run.
func Default() Config {
	return Config{N: 1}
}

// Load reads and parses a YAML run configuration from path, starting
// from Default() so unset fields keep Default()'s values (N=1).
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks structural invariants Load alone cannot: N must be
// positive, and every feature's Kind must be recognized.
func (c Config) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidN, c.N)
	}
	for i, fw := range c.Features {
		switch fw.Kind {
		case "rule_cost", "word_penalty":
		default:
			return fmt.Errorf("%w: feature %d kind %q", ErrUnknownFeatureKind, i, fw.Kind)
		}
	}

	return nil
}

// Functions builds the feature.Function slice described by c.Features.
func (c Config) Functions() []feature.Function {
	fns := make([]feature.Function, 0, len(c.Features))
	for _, fw := range c.Features {
		switch fw.Kind {
		case "rule_cost":
			fns = append(fns, feature.RuleCost{W: fw.Weight})
		case "word_penalty":
			fns = append(fns, feature.WordPenalty{W: fw.Weight, PerWord: fw.PerWord})
		}
	}

	return fns
}
