package serializer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lazykbest/kbest/costcheck"
	"github.com/lazykbest/kbest/derivation"
	"github.com/lazykbest/kbest/feature"
	"github.com/lazykbest/kbest/symtab"
)

// Format renders s into one output line per §6's grammar:
//
//	[sid " ||| "] yield [" |||" (" " score){len(features)}] [" ||| " score]
//
// sentID < 0 omits the leading "sid |||" segment. An empty features slice
// omits the per-feature score block. Scores are sign-inverted costs,
// formatted "%.3f".
func Format(s derivation.State, resolver derivation.Resolver, tab *symtab.Table, opts Options, sentID int, features []feature.Function) (string, error) {
	tokens, err := numericTokens(s, resolver, opts)
	if err != nil {
		return "", err
	}

	resolved := make([]string, len(tokens))
	for i, tok := range tokens {
		resolved[i], err = resolveToken(tok, tab)
		if err != nil {
			return "", err
		}
	}

	var line strings.Builder
	if sentID >= 0 {
		line.WriteString(strconv.Itoa(sentID))
		line.WriteString(" ||| ")
	}
	line.WriteString(strings.Join(resolved, " "))

	if len(features) > 0 {
		costs, err := costcheck.Reconstruct(s, resolver, features, sentID)
		if err != nil {
			return "", fmt.Errorf("serializer: reconstructing feature costs: %w", err)
		}

		line.WriteString(" |||")
		for i := range features {
			line.WriteString(fmt.Sprintf(" %.3f", -costs[i]))
		}
	}

	if opts.AddCombinedScore {
		line.WriteString(fmt.Sprintf(" ||| %.3f", -s.Cost))
	}

	return line.String(), nil
}
