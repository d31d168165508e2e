// Command kbest is a cobra-driven CLI wiring the hypergraph, config,
// extractor, serializer, and sink packages together: it loads a JSON
// hypergraph and a YAML run configuration, then either streams the full
// N-best list or fetches a single ranked hypothesis.
//
// Command-tree shape, RunE handlers, and the zap.Logger built in
// PersistentPreRunE and threaded through the command are grounded on
// theRebelliousNerd-codenerd/cmd/nerd/main.go.
package main
