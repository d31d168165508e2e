package hypergraph

import "fmt"

// Symbol is a numeric token inside a Rule's source or target sequence.
// Non-negative values are terminal symbol identifiers resolved later via
// a symtab.Table. Negative values mark nonterminal placeholders: symbol
// -(k+1) refers to the k-th antecedent (0-based) of the owning Hyperedge.
type Symbol int64

// TerminalSymbol wraps a terminal symbol identifier. id must be >= 0.
func TerminalSymbol(id int) Symbol {
	if id < 0 {
		panic("hypergraph: TerminalSymbol id must be >= 0")
	}

	return Symbol(id)
}

// NonterminalSymbol marks a placeholder referring to the antecedentIdx-th
// antecedent of the owning Hyperedge. antecedentIdx must be >= 0.
func NonterminalSymbol(antecedentIdx int) Symbol {
	if antecedentIdx < 0 {
		panic("hypergraph: NonterminalSymbol antecedentIdx must be >= 0")
	}

	return Symbol(-(int64(antecedentIdx) + 1))
}

// IsNonterminal reports whether s is a nonterminal placeholder.
func (s Symbol) IsNonterminal() bool { return s < 0 }

// AntecedentIndex returns the antecedent position s refers to.
// Only meaningful when s.IsNonterminal() is true.
func (s Symbol) AntecedentIndex() int { return int(-s - 1) }

// TerminalID returns the terminal symbol identifier.
// Only meaningful when s.IsNonterminal() is false.
func (s Symbol) TerminalID() int { return int(s) }

// Rule carries a left-hand-side nonterminal identifier and the ordered
// source/target symbol sequences of a grammar-rule application. Some
// entries in each sequence are nonterminal placeholders (see Symbol).
type Rule struct {
	LHS    int
	Source []Symbol
	Target []Symbol
}

// nonterminalIndices returns the antecedent index of every nonterminal
// symbol in seq, in order of occurrence. The permutation check is done by
// validateAgainstArity.
func nonterminalIndices(seq []Symbol) []int {
	idxs := make([]int, 0, len(seq))
	for _, s := range seq {
		if s.IsNonterminal() {
			idxs = append(idxs, s.AntecedentIndex())
		}
	}

	return idxs
}

// validateAgainstArity checks that r's target side references exactly the
// antecedent indices [0, arity) — each exactly once — per §3's invariant
// that antecedent positions are a permutation consistent with the
// hyperedge's antecedent list.
func (r *Rule) validateAgainstArity(arity int) error {
	seen := make([]bool, arity)
	for _, idx := range nonterminalIndices(r.Target) {
		if idx < 0 || idx >= arity {
			return fmt.Errorf("%w: target index %d, arity %d", ErrBadNonterminalIndex, idx, arity)
		}
		if seen[idx] {
			return fmt.Errorf("%w: target index %d referenced twice", ErrBadNonterminalIndex, idx)
		}
		seen[idx] = true
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: antecedent %d never referenced by target", ErrArityMismatch, i)
		}
	}

	return nil
}

// Node represents a recognized span [I, J) and carries its ordered list
// of incoming Hyperedges. One Node per Hypergraph is distinguished as the
// goal via Hypergraph.SetGoal.
type Node struct {
	ID     string
	I, J   int
	Edges  []*Hyperedge
	IsGoal bool
}

// Hyperedge carries an ordered list of antecedent Nodes (empty for an
// axiom), an optional Rule (absent only for goal-level edges), a
// source-path reference, and the minimum cost achievable by any
// derivation rooted at this edge.
type Hyperedge struct {
	Parent      *Node
	Antecedents []*Node
	Rule        *Rule
	SourcePath  string
	BestCost    float64

	// TransitionCost is this edge's own local cost contribution — the
	// rule's transition cost alone, excluding any antecedent's cost. It is
	// carried separately from BestCost so feature functions (package
	// feature) can recompute per-feature breakdowns without having to
	// subtract antecedent costs back out of an aggregate (§9 Design
	// Notes: the hypergraph stores best-derivation cost, not transition
	// cost, to make 1-best trivial).
	TransitionCost float64

	// EdgePos is the 0-based index of this edge within Parent.Edges,
	// assigned automatically when the edge is appended.
	EdgePos int
}

// IsAxiom reports whether e has no antecedents.
func (e *Hyperedge) IsAxiom() bool { return len(e.Antecedents) == 0 }

// Hypergraph owns a set of Nodes and designates one as the goal. It is
// read-only once constructed; extraction packages never mutate it.
type Hypergraph struct {
	nodes   []*Node
	byID    map[string]*Node
	goal    *Node
	hasGoal bool
}

// New returns an empty Hypergraph.
func New() *Hypergraph {
	return &Hypergraph{byID: make(map[string]*Node)}
}

// AddNode registers n. Returns ErrDuplicateNode if n.ID was already added,
// ErrNoHyperedges if n has no incoming edges yet (nodes must be fully
// wired — edges attached — before being added).
func (hg *Hypergraph) AddNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrNoHyperedges)
	}
	if _, exists := hg.byID[n.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
	}
	if len(n.Edges) == 0 {
		return fmt.Errorf("%w: %s", ErrNoHyperedges, n.ID)
	}

	hg.nodes = append(hg.nodes, n)
	hg.byID[n.ID] = n

	return nil
}

// SetGoal designates n as the goal node. n need not already be registered
// via AddNode; SetGoal registers it if missing.
//
// A goal hyperedge's Rule is optional: most goal edges are rule-less
// (§4.4's "Goal edge (no rule)" case, labeled "ROOT" in tree mode), but a
// goal edge MAY carry a Rule whose LHS labels the tree root instead (§8
// round-trip scenarios 3-4, e.g. "(S{0-2} a b)") — the same derivation
// state, whether rooted at the designated goal or at an interior node
// queried directly, is formatted identically by the serializer.
func (hg *Hypergraph) SetGoal(n *Node) error {
	if n == nil {
		return ErrNoGoal
	}
	if _, exists := hg.byID[n.ID]; !exists {
		if err := hg.AddNode(n); err != nil {
			return err
		}
	}
	n.IsGoal = true
	hg.goal = n
	hg.hasGoal = true

	return nil
}

// Goal returns the designated goal node, or ErrNoGoal if none was set.
func (hg *Hypergraph) Goal() (*Node, error) {
	if !hg.hasGoal {
		return nil, ErrNoGoal
	}

	return hg.goal, nil
}

// HasGoal reports whether a goal node has been set.
func (hg *Hypergraph) HasGoal() bool { return hg.hasGoal }

// Nodes returns every registered node, in insertion order.
func (hg *Hypergraph) Nodes() []*Node { return hg.nodes }

// NodeByID looks up a node by its ID, or returns nil, false if absent.
func (hg *Hypergraph) NodeByID(id string) (*Node, bool) {
	n, ok := hg.byID[id]

	return n, ok
}
