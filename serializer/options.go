package serializer

// Options controls how Format renders a derivation.State into an output
// line, per §4.4 and §6.
type Options struct {
	// Tree wraps the queried derivation's own rule application in a single
	// "(<label>{i-j} ...)" bracket pair (§6 tree grammar). Antecedents are
	// always inlined via their flat surface yield — the literal round-trip
	// examples in §8 show no nested bracketing below the queried node, so
	// this implementation brackets exactly one level (see DESIGN.md).
	Tree bool

	// IncludeAlignment appends the queried node's span as "{i-j}" to the
	// tree's opening bracket. Ignored unless Tree is set.
	IncludeAlignment bool

	// Monolingual walks each rule's source side instead of its target side,
	// matching antecedents to nonterminal occurrences by source order
	// rather than by the rule's encoded target index.
	Monolingual bool

	// AddCombinedScore appends " ||| <score>" (the derivation's total cost,
	// sign-inverted) after the per-feature score block.
	AddCombinedScore bool
}
