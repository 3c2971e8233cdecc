// Package editor implements the two incremental MST edit operations, Add
// and Remove: both rebuild a virtual graph from the current MST plus or
// minus one edge, resolve a fresh MST over it, and replace the current MST
// only when the replacement is an actual improvement. The default
// replacement gate (StrictImprovement) requires the new MST to differ from
// the old one, be non-empty, and have strictly smaller total weight — the
// documented contract under which Remove on a tree edge almost never
// succeeds, since removing a tree edge can only raise weight or disconnect
// the graph.
package editor
