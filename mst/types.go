package mst

import (
	"errors"
	"fmt"

	"github.com/arborist-net/mstnet/graph"
)

// ErrUnknownAlgorithm is returned by Solve when Algorithm names a value this
// package does not implement.
var ErrUnknownAlgorithm = errors.New("mst: unknown algorithm")

// Algorithm selects one of the five solver implementations.
type Algorithm string

const (
	Prim       Algorithm = "PRIM"
	Kruskal    Algorithm = "KRUSKAL"
	Boruvka    Algorithm = "BORUVKA"
	Tarjan     Algorithm = "TARJAN"
	IntegerMST Algorithm = "INTEGER_MST"
)

// Empty builds the canonical "no spanning tree exists" result: a 0-vertex
// graph. Every solver returns this, rather than an error, when its input is
// disconnected.
func Empty() *graph.Graph {
	return graph.New(0)
}

// Solve dispatches to the algorithm named by algo and returns its MST. A
// disconnected input yields Empty(), never an error; Solve itself only
// errors when algo is not one of the five known tags.
func Solve(g *graph.Graph, algo Algorithm) (*graph.Graph, error) {
	switch algo {
	case Prim:
		return solvePrim(g), nil
	case Kruskal:
		return solveKruskal(g), nil
	case Boruvka:
		return solveBoruvka(g), nil
	case Tarjan:
		return solveTarjan(g), nil
	case IntegerMST:
		return solveIntegerMST(g), nil
	default:
		return nil, fmt.Errorf("mst: solve %q: %w", algo, ErrUnknownAlgorithm)
	}
}

// buildTree assembles a new Graph over n vertices from the given edges and
// doubles each edge's weight contribution via AddEdge's mirror invariant.
// Callers pass exactly the edges selected by the solver, so the result's
// edge count already tells Solve's caller whether the tree is spanning.
func buildTree(n int, edges []graph.Triple) *graph.Graph {
	out := graph.New(n)
	for _, e := range edges {
		out.AddEdge(e.U, e.V, e.W)
	}
	return out
}
