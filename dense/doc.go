// Package dense offers fixed-capacity graph containers backed by square
// adjacency matrices.
//
// The dense package provides:
//
//   - Graph, a boolean adjacency matrix with O(1) edge insertion, removal
//     and lookup over n² cells allocated once at construction.
//   - WeightedGraph, the same shape with an optional float64 weight per
//     cell (a weight of 0 is a real edge, distinct from "no edge").
//   - Exporters (ToGonum, ToGonumWeighted) for handing a snapshot to
//     gonum/graph algorithms.
//
// The capacity n is fixed for the life of an instance: vertices are the
// integer indices 0..n-1, always present, never added or removed. Dense
// storage is best for small or dense graphs where O(n²) memory is
// acceptable; there is no sparse fallback.
//
// Directed is the native orientation: cell (i,j) holds the edge i→j.
// The *Undirected methods are sugar writing both (i,j) and (j,i); the
// containers do not track or enforce symmetry if a caller mixes styles.
//
// Nothing here locks, blocks or allocates after construction (except the
// column materialized by InverseEdges). Share an instance across
// goroutines only under a caller-owned mutex.
package dense
