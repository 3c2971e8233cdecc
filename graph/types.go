// Package graph implements the undirected weighted multigraph that backs
// every MST computation in this server: a fixed-size, int-indexed adjacency
// list with the mirror invariant (every stored edge appears once in each
// endpoint's list) and silent no-ops on out-of-range input.
package graph

import "sync"

// Edge is one endpoint of an undirected connection: the neighbor vertex and
// the edge weight. A Graph stores two Edge values per undirected edge, one
// in each endpoint's adjacency list.
type Edge struct {
	To     int
	Weight int32
}

// Triple names one undirected edge by both endpoints (U <= V) and its
// weight, as returned by Edges.
type Triple struct {
	U, V int
	W    int32
}

// Graph is a fixed-vertex-count undirected weighted multigraph. Self-loops
// and parallel edges are permitted syntactically; no MST algorithm ever
// selects a self-loop. All mutation is guarded by mu so a Graph can be
// handed between pool workers safely, though in practice each session owns
// exactly one Graph at a time.
type Graph struct {
	mu   sync.Mutex
	adj  [][]Edge
}

// New builds an empty graph with n vertices labeled 0..n-1. n == 0 is legal:
// the graph simply has no vertices, and subsequent AddEdge calls on it are
// no-ops (every index is out of range) rather than errors.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{adj: make([][]Edge, n)}
}

// NumVertices returns n.
func (g *Graph) NumVertices() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.adj)
}

func (g *Graph) validVertex(v int) bool {
	return v >= 0 && v < len(g.adj)
}
