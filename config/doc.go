// Package config loads a YAML run configuration for a k-best extraction
// run: the beam size N, the boolean extraction flags (§4.1's Options),
// and the named feature weights used to build the feature.Function set.
//
// Structure and loading style are grounded on the teacher's own
// indirect gopkg.in/yaml.v3 dependency, promoted here to a directly
// exercised one, following theRebelliousNerd-codenerd/internal/config's
// Config-struct-plus-Load(path) shape: defaults first, then a YAML file
// unmarshaled on top.
package config
