// Package mst computes minimum spanning trees over a graph.Graph using five
// interchangeable algorithms that agree on every input with unique edge
// weights: Prim, Kruskal, Borůvka, Tarjan (a heap-backed Borůvka variant),
// and Integer_MST (a bucket-backed Borůvka variant). A disconnected input
// produces the canonical empty-graph sentinel rather than an error, since
// "no spanning tree exists" is a valid analysis outcome, not a failure.
package mst
