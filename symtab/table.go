package symtab

// RootID is the reserved identifier for the synthetic goal-level tree
// label "ROOT". NewTable always registers it first, so RootID is stable
// across every Table instance.
const RootID = -1

// Table is a simple, non-concurrent-safe (single extraction, per §5)
// bidirectional mapping between symbol identifiers and surface words /
// grammar-symbol names.
type Table struct {
	wordOf map[int]string
	idOf   map[string]int

	nextTerminalID    int
	nextNonterminalID int
}

// NewTable returns a Table with "ROOT" pre-registered at RootID.
func NewTable() *Table {
	t := &Table{
		wordOf:            make(map[int]string),
		idOf:              make(map[string]int),
		nextTerminalID:    0,
		nextNonterminalID: -1,
	}
	t.AddNonterminal("ROOT")

	return t
}

// AddWord registers a terminal surface word, returning its (possibly
// pre-existing) id. Idempotent: calling twice with the same word returns
// the same id.
func (t *Table) AddWord(word string) int {
	if id, ok := t.idOf[word]; ok {
		return id
	}
	id := t.nextTerminalID
	t.nextTerminalID++
	t.wordOf[id] = word
	t.idOf[word] = id

	return id
}

// AddNonterminal registers a grammar-symbol (nonterminal LHS) name,
// returning its (possibly pre-existing) id. Idempotent.
func (t *Table) AddNonterminal(name string) int {
	if id, ok := t.idOf[name]; ok {
		return id
	}
	id := t.nextNonterminalID
	t.nextNonterminalID--
	t.wordOf[id] = name
	t.idOf[name] = id

	return id
}

// WordOf resolves id to its registered surface string. ok is false if id
// was never registered.
func (t *Table) WordOf(id int) (word string, ok bool) {
	word, ok = t.wordOf[id]

	return word, ok
}

// IsNonterminal reports whether id was allocated by AddNonterminal.
func (t *Table) IsNonterminal(id int) bool { return id < 0 }

// TargetNonterminalIndex maps a nonterminal symtab id back to the
// antecedent position AddNonterminal-style ids encode, mirroring the
// convention hypergraph.NonterminalSymbol uses for rule placeholders.
// Meaningful only when IsNonterminal(id) is true.
func (t *Table) TargetNonterminalIndex(id int) int { return -id - 1 }
