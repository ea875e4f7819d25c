// Package core defines Graph, Vertex, and Edge: the minimal in-memory graph
// data structure that arbitrary.Graph and arbitrary.Path draw and traverse.
//
// A Graph is directed or undirected and weighted or unweighted, fixed at
// construction via GraphOption. It is a simple graph: self-loops and
// parallel edges are always rejected, since nothing in this engine's
// generators needs them. Two sync.RWMutex guard vertex and edge/adjacency
// state independently, so a *Graph can be shared across goroutines running
// independent property checks.
package core
