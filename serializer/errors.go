package serializer

import "errors"

// ErrUnresolvedSymbol indicates a numeric token could not be mapped
// through the symbol table (the id was never registered).
var ErrUnresolvedSymbol = errors.New("serializer: unresolved symbol")
