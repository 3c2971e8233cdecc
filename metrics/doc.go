// Package metrics computes derived queries over a solved MST: total weight,
// the unweighted and weighted tree diameters, the heaviest and lightest
// edges, the mean all-pairs distance, and the unique path between two
// vertices. Every function takes a *graph.Graph that is assumed to already
// be a tree (the output of mst.Solve) or the empty sentinel; none of them
// mutate their input.
package metrics
