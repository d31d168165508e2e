package serializer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lazykbest/kbest/symtab"
)

// resolveToken maps one numeric token through tab, per §4.4's "top-level
// formatter": a token opening a bracket ("(<id>{i-j}") resolves the id and
// keeps the bracket and any alignment suffix verbatim; a token closing one
// or more brackets ("<id>)...)") resolves the leading id and keeps the
// trailing parens verbatim; any other token is a plain leaf id.
func resolveToken(tok string, tab *symtab.Table) (string, error) {
	switch {
	case strings.HasPrefix(tok, "("):
		rest := tok[1:]
		numPart, suffix := rest, ""
		if idx := strings.IndexByte(rest, '{'); idx >= 0 {
			numPart, suffix = rest[:idx], rest[idx:]
		}

		word, err := lookup(numPart, tab)
		if err != nil {
			return "", err
		}

		return "(" + word + suffix, nil

	case strings.HasSuffix(tok, ")"):
		idx := strings.IndexByte(tok, ')')
		word, err := lookup(tok[:idx], tab)
		if err != nil {
			return "", err
		}

		return word + tok[idx:], nil

	default:
		return lookup(tok, tab)
	}
}

func lookup(numPart string, tab *symtab.Table) (string, error) {
	id, err := strconv.Atoi(numPart)
	if err != nil {
		return "", fmt.Errorf("serializer: malformed numeric token %q: %w", numPart, err)
	}

	word, ok := tab.WordOf(id)
	if !ok {
		return "", fmt.Errorf("%w: id %d", ErrUnresolvedSymbol, id)
	}

	return word, nil
}
