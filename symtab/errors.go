package symtab

import "errors"

// ErrUnknownSymbol names the condition of an id that was never registered
// via AddWord or AddNonterminal. WordOf itself does not return it; it
// reports that condition with ok == false.
var ErrUnknownSymbol = errors.New("symtab: unknown symbol id")
