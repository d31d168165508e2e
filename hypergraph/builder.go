// builder.go — a small fluent assembler for Hypergraphs, used by this
// package's tests. Mirrors the teacher's builder package: the one place that
// assembles graph structures, separate from the algorithms that consume
// them.
package hypergraph

import "fmt"

// Builder assembles a Hypergraph node-by-node. Nodes must be added in an
// order such that every antecedent referenced by a later AddHyperedge call
// has already been added (a topological order, leaves first) — this
// mirrors how a decoder naturally produces spans bottom-up.
type Builder struct {
	hg  *Hypergraph
	err error // first error encountered; subsequent calls are no-ops
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{hg: New()}
}

// AddAxiom adds a node whose single (or only) derivation is a hyperedge
// with no antecedents. cost is that hyperedge's best-derivation cost.
func (b *Builder) AddAxiom(id string, i, j int, rule *Rule, sourcePath string, cost float64) *Builder {
	return b.AddNode(id, i, j, Hyperedge{Rule: rule, SourcePath: sourcePath, BestCost: cost})
}

// AddNode adds a node with the given incoming hyperedge templates. Each
// template's Antecedents must reference nodes already added to this
// Builder. EdgePos and Parent are assigned automatically.
func (b *Builder) AddNode(id string, i, j int, edges ...Hyperedge) *Builder {
	if b.err != nil {
		return b
	}

	n := &Node{ID: id, I: i, J: j}
	for pos, tmpl := range edges {
		e := tmpl
		e.Parent = n
		e.EdgePos = pos
		if e.Rule != nil {
			if verr := e.Rule.validateAgainstArity(len(e.Antecedents)); verr != nil {
				b.err = fmt.Errorf("node %s edge %d: %w", id, pos, verr)

				return b
			}
		}
		n.Edges = append(n.Edges, &e)
	}

	if err := b.hg.AddNode(n); err != nil {
		b.err = err

		return b
	}

	return b
}

// AntecedentsOf resolves a list of previously added node IDs into *Node
// pointers, for use as a Hyperedge's Antecedents field. Panics (programmer
// error, not data error) if an ID was never added — use only with IDs
// known to have been added earlier in the same Builder chain.
func (b *Builder) AntecedentsOf(ids ...string) []*Node {
	out := make([]*Node, len(ids))
	for k, id := range ids {
		n, ok := b.hg.NodeByID(id)
		if !ok {
			panic(fmt.Sprintf("hypergraph: AntecedentsOf: unknown node %q", id))
		}
		out[k] = n
	}

	return out
}

// SetGoal designates the node with the given ID as goal.
func (b *Builder) SetGoal(id string) *Builder {
	if b.err != nil {
		return b
	}
	n, ok := b.hg.NodeByID(id)
	if !ok {
		b.err = fmt.Errorf("%w: %s", ErrNoGoal, id)

		return b
	}
	if err := b.hg.SetGoal(n); err != nil {
		b.err = err
	}

	return b
}

// Build returns the assembled Hypergraph, or the first error encountered
// during assembly.
func (b *Builder) Build() (*Hypergraph, error) {
	if b.err != nil {
		return nil, b.err
	}

	return b.hg, nil
}
