package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AddEdge appends an undirected edge {u,v,w} to the graph. Both endpoints
// must satisfy 0 <= u,v < NumVertices(); an out-of-range index makes this a
// silent no-op, matching the untrusted-socket input this graph is built
// from. Parallel edges and self-loops are both accepted without complaint.
func (g *Graph) AddEdge(u, v int, w int32) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validVertex(u) || !g.validVertex(v) {
		return
	}
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Edge{To: u, Weight: w})
}

// RemoveEdge deletes one matching pair: the first (v,_) entry in adj[u] and
// the first (u,_) entry in adj[v]. Each side is searched and removed
// independently, so a self-loop (u == v) removes two entries from the same
// list rather than one. If no matching entry exists on a side, that side is
// left untouched.
func (g *Graph) RemoveEdge(u, v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validVertex(u) || !g.validVertex(v) {
		return
	}
	g.adj[u] = removeFirst(g.adj[u], v)
	g.adj[v] = removeFirst(g.adj[v], u)
}

func removeFirst(nbrs []Edge, target int) []Edge {
	for i, e := range nbrs {
		if e.To == target {
			return append(nbrs[:i], nbrs[i+1:]...)
		}
	}
	return nbrs
}

// ChangeWeight sets the weight of every (u,v) and (v,u) entry to w. If there
// are parallel edges between u and v, all of them are updated. Out-of-range
// endpoints are a silent no-op.
func (g *Graph) ChangeWeight(u, v int, w int32) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validVertex(u) || !g.validVertex(v) {
		return
	}
	for i := range g.adj[u] {
		if g.adj[u][i].To == v {
			g.adj[u][i].Weight = w
		}
	}
	for i := range g.adj[v] {
		if g.adj[v][i].To == u {
			g.adj[v][i].Weight = w
		}
	}
}

// Neighbors returns a copy of u's adjacency list in insertion order. Callers
// must not rely on ordering across calls; Equal is explicitly insensitive to
// it.
func (g *Graph) Neighbors(u int) []Edge {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validVertex(u) {
		return nil
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])
	return out
}

// TotalWeight sums every stored edge weight and divides by two, since the
// mirror invariant stores each undirected edge twice.
func (g *Graph) TotalWeight() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.totalWeightLocked()
}

func (g *Graph) totalWeightLocked() int64 {
	var sum int64
	for _, nbrs := range g.adj {
		for _, e := range nbrs {
			sum += int64(e.Weight)
		}
	}
	return sum / 2
}

// Clone returns a deep, independent copy of g.
func (g *Graph) Clone() *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := New(len(g.adj))
	for i, nbrs := range g.adj {
		out.adj[i] = append([]Edge(nil), nbrs...)
	}
	return out
}

// Edges returns every distinct undirected edge once, with U <= V, in no
// particular order. A self-loop (stored as two identical entries in the
// same list) is emitted once per pair of entries.
func (g *Graph) Edges() []Triple {
	g.mu.Lock()
	defer g.mu.Unlock()

	var out []Triple
	selfLoopSeen := make(map[int]int)
	for u, nbrs := range g.adj {
		for _, e := range nbrs {
			switch {
			case u < e.To:
				out = append(out, Triple{U: u, V: e.To, W: e.Weight})
			case u == e.To:
				if selfLoopSeen[u]%2 == 0 {
					out = append(out, Triple{U: u, V: u, W: e.Weight})
				}
				selfLoopSeen[u]++
			}
		}
	}
	return out
}

// Equal reports whether g and other have the same vertex count, the same
// total weight, and, for every vertex, the same multiset of (neighbor,
// weight) pairs. It is insensitive to adjacency-list insertion order.
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	// Snapshot each side under its own lock rather than holding both at
	// once, so Equal(a,b) run concurrently with Equal(b,a) cannot deadlock.
	gAdj, gTotal := g.snapshot()
	oAdj, oTotal := other.snapshot()

	if len(gAdj) != len(oAdj) || gTotal != oTotal {
		return false
	}
	for i := range gAdj {
		a := sortedCopy(gAdj[i])
		b := sortedCopy(oAdj[i])
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

func (g *Graph) snapshot() ([][]Edge, int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([][]Edge, len(g.adj))
	for i, nbrs := range g.adj {
		out[i] = append([]Edge(nil), nbrs...)
	}
	return out, g.totalWeightLocked()
}

// Display renders g as the banner-bracketed textual form sent to clients:
// a header, the vertex list, then one "Vertex u <----(w)----> Vertex v"
// line per distinct edge with u <= v, and a closing rule.
func (g *Graph) Display() string {
	n := g.NumVertices()
	var b strings.Builder
	b.WriteString("============ Graph Representation ============\n")
	b.WriteString("Vertices in the graph: ")
	for i := 0; i < n; i++ {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(' ')
	}
	b.WriteString("\nConnections between vertices (undirected edges):\n")
	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	for _, e := range edges {
		fmt.Fprintf(&b, "Vertex %d <----(%d)----> Vertex %d\n", e.U, e.W, e.V)
	}
	b.WriteString("=============================================\n")
	return b.String()
}

func sortedCopy(nbrs []Edge) []Edge {
	out := append([]Edge(nil), nbrs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return out[i].Weight < out[j].Weight
	})
	return out
}
