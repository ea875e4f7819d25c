// Package builder constructs core.Graph topologies from functional options.
// It is arbitrary.Graph's sole topology generator: BuildGraph resolves a
// builderConfig from BuilderOptions and runs a Constructor — here,
// RandomSparse, an Erdős–Rényi-like sampler — against a fresh graph.
package builder
