package mst

import "github.com/arborist-net/mstnet/graph"

// boruvkaCandidate tracks the best known outgoing edge for one component:
// weight first, then the far endpoint as the tie-break the spec names.
type boruvkaCandidate struct {
	has    bool
	edge   graph.Triple
	weight int32
	other  int
}

func (c *boruvkaCandidate) consider(e graph.Triple, other int) {
	if !c.has || e.W < c.weight || (e.W == c.weight && other < c.other) {
		c.has = true
		c.edge = e
		c.weight = e.W
		c.other = other
	}
}

// solveBoruvka runs the round-based Borůvka algorithm shared by the
// Borůvka, Tarjan, and Integer_MST solvers: each round every component
// finds its minimum outgoing edge, all such edges are admitted, and the
// process repeats until one component remains or a round adds nothing.
func solveBoruvka(g *graph.Graph) *graph.Graph {
	return runBoruvkaFamily(g, selectRoundCandidatesLinear)
}

// selectRoundCandidatesLinear scans every edge once per round in adjacency
// order — the plain Borůvka frontier selection, O(E) per round.
func selectRoundCandidatesLinear(edges []graph.Triple, d *dsu) map[int]boruvkaCandidate {
	best := make(map[int]boruvkaCandidate)
	for _, e := range edges {
		ru, rv := d.find(e.U), d.find(e.V)
		if ru == rv {
			continue
		}
		cu := best[ru]
		cu.consider(e, e.V)
		best[ru] = cu

		cv := best[rv]
		cv.consider(e, e.U)
		best[rv] = cv
	}
	return best
}

// runBoruvkaFamily is the shared round loop: select — which differs between
// the plain, heap-backed (Tarjan), and bucket-backed (Integer_MST)
// variants — union, repeat.
func runBoruvkaFamily(g *graph.Graph, selectRound func([]graph.Triple, *dsu) map[int]boruvkaCandidate) *graph.Graph {
	n := g.NumVertices()
	if n == 0 {
		return Empty()
	}
	if n == 1 {
		return buildTree(1, nil)
	}

	edges := g.Edges()
	d := newDSU(n)
	var mst []graph.Triple
	components := n

	for components > 1 {
		best := selectRound(edges, d)
		if len(best) == 0 {
			break
		}

		seen := make(map[[2]int]bool)
		added := 0
		for _, cand := range best {
			if !cand.has {
				continue
			}
			e := cand.edge
			key := [2]int{e.U, e.V}
			if seen[key] {
				continue
			}
			seen[key] = true
			if d.union(e.U, e.V) {
				mst = append(mst, e)
				added++
				components--
			}
		}
		if added == 0 {
			break
		}
	}

	if components > 1 {
		return Empty()
	}
	return buildTree(n, mst)
}
