// Package fixedgraph provides fixed-capacity, matrix-backed graph
// containers with a deliberately tiny API surface.
//
// 🚀 What is fixedgraph?
//
//	A small, allocation-light library for graphs whose vertex count is
//	known up front and never changes:
//		• dense.Graph         — boolean adjacency matrix (edge present / absent)
//		• dense.WeightedGraph — optional-weight adjacency matrix
//		• Exporters to gonum/graph/simple for algorithm consumers
//
// ✨ Why choose fixedgraph?
//
//   - Predictable memory – one flat O(n²) slice per graph, allocated once
//   - O(1) edge operations – add, remove and query are direct cell writes
//   - No hidden machinery – no locks, no goroutines, no I/O, no resizing
//   - Strict errors – sentinel errors, matched with errors.Is, never panics
//
// Everything lives in one implementation subpackage:
//
//	dense/ — Graph, WeightedGraph, sentinel errors, gonum exporters
//
// Traversals (BFS, DFS, shortest paths) are intentionally not bundled:
// they are consumers of the query primitives (Edges, InverseEdges,
// HasEdge, GetEdge) and belong to the caller. See the examples in dense
// for a BFS written entirely against the public API.
//
//	go get github.com/katalvlaran/fixedgraph/dense
package fixedgraph
