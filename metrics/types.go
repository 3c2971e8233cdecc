package metrics

import "github.com/arborist-net/mstnet/graph"

// TotalWeight sums every edge weight in t. It is a thin wrapper over
// graph.Graph.TotalWeight, kept here so callers only ever import metrics
// for every C3 query.
func TotalWeight(t *graph.Graph) int64 {
	return t.TotalWeight()
}
