package extractor

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lazykbest/kbest/costcheck"
	"github.com/lazykbest/kbest/derivation"
	"github.com/lazykbest/kbest/feature"
	"github.com/lazykbest/kbest/hypergraph"
	"github.com/lazykbest/kbest/serializer"
	"github.com/lazykbest/kbest/sink"
	"github.com/lazykbest/kbest/symtab"
	"github.com/lazykbest/kbest/vnode"
)

// Extractor is the top-level N-best driver (C3). It owns the
// node->VirtualNode table for one hypergraph at a time and implements
// derivation.Resolver, so every vnode.VirtualNode it creates reaches its
// descendants through the Extractor rather than a direct pointer,
// keeping the extraction graph free of ownership cycles (§9).
//
// An Extractor is not safe for concurrent use; a single extraction run
// owns it exclusively, matching §5's single-extraction-instance model.
type Extractor struct {
	cfg   config
	nodes map[*hypergraph.Node]*vnode.VirtualNode
}

// New returns an Extractor configured by opts.
func New(opts ...Option) *Extractor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Extractor{
		cfg:   cfg,
		nodes: make(map[*hypergraph.Node]*vnode.VirtualNode),
	}
}

// Reset discards all memoized VirtualNode state, so the Extractor can be
// reused for a new hypergraph (a new sentence) without reallocating.
func (e *Extractor) Reset() {
	e.cfg.log.Debug("extractor: reset")
	e.nodes = make(map[*hypergraph.Node]*vnode.VirtualNode)
}

// KthBest implements derivation.Resolver by delegating to n's lazily
// created VirtualNode.
func (e *Extractor) KthBest(n *hypergraph.Node, k int) (derivation.State, bool, error) {
	return e.vnodeFor(n).KthBest(k, e)
}

func (e *Extractor) vnodeFor(n *hypergraph.Node) *vnode.VirtualNode {
	v, ok := e.nodes[n]
	if !ok {
		v = vnode.New(n, e.cfg.uniqueNbest, e.cfg.monolingual)
		e.nodes[n] = v
	}

	return v
}

// Extract drives full N-best extraction from hg's goal node (§4.1
// "extract"): for rank 1..n, fetch the rank's derivation, optionally
// sanity-check its cost, serialize it, and deliver it to consumer in
// rank order. consumer.Finish is called exactly once, on every exit path
// — success, a RankUnreachable short-circuit, or an error from any step.
func (e *Extractor) Extract(hg *hypergraph.Hypergraph, tab *symtab.Table, features []feature.Function, n int, sentID int, consumer sink.Sink) (err error) {
	defer consumer.Finish()

	if n <= 0 {
		return ErrInvalidN
	}

	goal, err := hg.Goal()
	if err != nil {
		return err
	}

	e.cfg.log.Info("extractor: starting extraction", zap.Int("n", n), zap.Int("sentence_id", sentID))

	for k := 1; k <= n; k++ {
		line, ok, lerr := e.kthLine(goal, k, tab, features, sentID)
		if lerr != nil {
			e.cfg.log.Error("extractor: extraction failed", zap.Int("rank", k), zap.Error(lerr))

			return lerr
		}
		if !ok {
			e.cfg.log.Debug("extractor: rank unreachable, stopping", zap.Int("rank", k))

			break
		}
		if derr := consumer.Deliver(*line); derr != nil {
			e.cfg.log.Error("extractor: consumer rejected delivery", zap.Int("rank", k), zap.Error(derr))

			return derr
		}
	}

	e.cfg.log.Info("extractor: extraction finished", zap.Int("sentence_id", sentID))

	return nil
}

// KthHypothesis returns the k-th (1-based) best hypothesis at node as a
// formatted output line, or nil if fewer than k distinct derivations
// exist at node (RankUnreachable, §7 — not an error).
func (e *Extractor) KthHypothesis(node *hypergraph.Node, k int, tab *symtab.Table, features []feature.Function, sentID int) (*string, error) {
	line, ok, err := e.kthLine(node, k, tab, features, sentID)
	if err != nil || !ok {
		return nil, err
	}

	return line, nil
}

func (e *Extractor) kthLine(node *hypergraph.Node, k int, tab *symtab.Table, features []feature.Function, sentID int) (*string, bool, error) {
	s, ok, err := e.KthBest(node, k)
	if err != nil || !ok {
		return nil, ok, err
	}

	if e.cfg.sanityCheck && len(features) > 0 {
		costs, rerr := costcheck.Reconstruct(s, e, features, sentID)
		if rerr != nil {
			return nil, false, fmt.Errorf("extractor: reconstructing costs for rank %d: %w", k, rerr)
		}
		if serr := costcheck.SanityCheck(s.Cost, features, costs, costcheck.DefaultTolerance); serr != nil {
			e.cfg.log.Error("extractor: sanity check failed", zap.Int("rank", k), zap.Error(serr))

			return nil, false, serr
		}
	}

	opts := serializer.Options{
		Tree:             e.cfg.tree,
		IncludeAlignment: e.cfg.includeAlignment,
		Monolingual:      e.cfg.monolingual,
		AddCombinedScore: e.cfg.addCombinedScore,
	}
	line, err := serializer.Format(s, e, tab, opts, sentID, features)
	if err != nil {
		return nil, false, fmt.Errorf("extractor: formatting rank %d: %w", k, err)
	}

	return &line, true, nil
}
