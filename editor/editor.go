package editor

import (
	"github.com/arborist-net/mstnet/graph"
	"github.com/arborist-net/mstnet/mst"
)

// Editor applies incremental add/remove edits to an existing MST.
type Editor struct {
	// Algorithm re-solves the virtual graph built by Add/Remove. The
	// original source always reruns Kruskal; this repo makes it
	// configurable but defaults to mst.Kruskal to match that contract.
	Algorithm mst.Algorithm

	// StrictImprovement selects the replacement gate. true (the default,
	// and the documented contract) requires the candidate MST to differ
	// from the current one, be non-empty, and have strictly smaller total
	// weight. false relaxes the third condition to "accept any
	// non-empty, different candidate" — see DESIGN.md's resolution of
	// the §9 open question.
	StrictImprovement bool
}

// New builds an Editor with the documented default behavior: Kruskal
// resolution, strict-improvement gating.
func New() *Editor {
	return &Editor{Algorithm: mst.Kruskal, StrictImprovement: true}
}

// Add builds a virtual graph from t's edges plus (u,v,w), resolves a
// candidate MST over it, and replaces t with the candidate if the gate
// admits it. It returns the resulting tree (t itself if no replacement
// happened) and whether the replacement occurred. Out-of-range endpoints
// are a no-op returning (t, false).
func (e *Editor) Add(t *graph.Graph, u, v int, w int32) (*graph.Graph, bool) {
	n := t.NumVertices()
	if u < 0 || u >= n || v < 0 || v >= n {
		return t, false
	}

	virtual := cloneAsUndirected(t)
	virtual.AddEdge(u, v, w)

	candidate, err := mst.Solve(virtual, e.Algorithm)
	if err != nil {
		return t, false
	}
	return e.admit(t, candidate)
}

// Remove builds a virtual graph from t's edges minus one (u,v) pair,
// resolves a candidate MST over it, and replaces t if the gate admits it.
// If (u,v) is not currently an edge of t, Remove is a no-op returning
// (t, false).
func (e *Editor) Remove(t *graph.Graph, u, v int) (*graph.Graph, bool) {
	if !hasEdge(t, u, v) {
		return t, false
	}

	virtual := cloneAsUndirected(t)
	virtual.RemoveEdge(u, v)

	candidate, err := mst.Solve(virtual, e.Algorithm)
	if err != nil {
		return t, false
	}
	return e.admit(t, candidate)
}

// admit applies the replacement gate described on StrictImprovement.
func (e *Editor) admit(current, candidate *graph.Graph) (*graph.Graph, bool) {
	if candidate.NumVertices() == 0 {
		return current, false
	}
	if current.Equal(candidate) {
		return current, false
	}
	if e.StrictImprovement && candidate.TotalWeight() >= current.TotalWeight() {
		return current, false
	}
	return candidate, true
}

// cloneAsUndirected rebuilds a fresh graph over t's vertices containing
// each of t's edges once, mirroring the original source's tempGraph
// construction (which only walks i < edge.first to avoid double-adding the
// mirrored pair before handing the result to a fresh solver).
func cloneAsUndirected(t *graph.Graph) *graph.Graph {
	out := graph.New(t.NumVertices())
	for _, e := range t.Edges() {
		out.AddEdge(e.U, e.V, e.W)
	}
	return out
}

func hasEdge(t *graph.Graph, u, v int) bool {
	n := t.NumVertices()
	if u < 0 || u >= n || v < 0 || v >= n {
		return false
	}
	for _, e := range t.Neighbors(u) {
		if e.To == v {
			return true
		}
	}
	return false
}
