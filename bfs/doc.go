// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order. It is
// arbitrary.Path's reachability and path-reconstruction source.
package bfs
