// Package dense: Graph is the unweighted variant — a row-major boolean
// adjacency matrix with a fixed side length, stored in a flat slice for
// cache friendliness.

package dense

import (
	"fmt"
	"strings"
)

// graphErrorf wraps an underlying error with Graph method context.
func graphErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Graph.%s(%d,%d): %w", method, i, j, err)
}

// Graph is a fixed-capacity directed graph over vertices 0..n-1.
// n is the side length and data holds n*n presence flags in row-major
// order: data[i*n+j] answers "is there an edge i→j".
type Graph struct {
	n    int    // number of vertices, immutable after construction
	data []bool // flat backing storage, length == n*n
}

// New creates a Graph with capacity n and no edges.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice, zeroed (all false).
// Stage 3 (Finalize): return new Graph or ErrBadCapacity.
// Complexity: O(n²) time and memory.
func New(n int) (*Graph, error) {
	// Validate capacity
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadCapacity)
	}

	// Allocate flat slice; zero value false means "no edge"
	return &Graph{n: n, data: make([]bool, n*n)}, nil
}

// VertexCount returns the fixed capacity n.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.n
}

// indexOf computes the flat index for (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Graph) indexOf(method string, i, j int) (int, error) {
	// Validate source index
	if i < 0 || i >= g.n {
		return 0, graphErrorf(method, i, j, ErrOutOfRange)
	}
	// Validate target index
	if j < 0 || j >= g.n {
		return 0, graphErrorf(method, i, j, ErrOutOfRange)
	}

	// Compute flat offset
	return i*g.n + j, nil
}

// AddEdge records the directed edge i→j. Adding an edge that already
// exists is a no-op, so the call is idempotent.
// Complexity: O(1).
func (g *Graph) AddEdge(i, j int) error {
	idx, err := g.indexOf("AddEdge", i, j)
	if err != nil {
		return err
	}
	g.data[idx] = true

	return nil
}

// AddEdgeUndirected records the edge between i and j in both directions.
// Equivalent to AddEdge(i,j) followed by AddEdge(j,i).
// Complexity: O(1).
func (g *Graph) AddEdgeUndirected(i, j int) error {
	// One bounds check covers both writes; (j,i) is in range iff (i,j) is.
	idx, err := g.indexOf("AddEdgeUndirected", i, j)
	if err != nil {
		return err
	}
	g.data[idx] = true
	g.data[j*g.n+i] = true

	return nil
}

// RemoveEdge deletes the directed edge i→j. Removing an absent edge is a
// no-op.
// Complexity: O(1).
func (g *Graph) RemoveEdge(i, j int) error {
	idx, err := g.indexOf("RemoveEdge", i, j)
	if err != nil {
		return err
	}
	g.data[idx] = false

	return nil
}

// RemoveEdgeUndirected deletes the edge between i and j in both
// directions.
// Complexity: O(1).
func (g *Graph) RemoveEdgeUndirected(i, j int) error {
	idx, err := g.indexOf("RemoveEdgeUndirected", i, j)
	if err != nil {
		return err
	}
	g.data[idx] = false
	g.data[j*g.n+i] = false

	return nil
}

// HasEdge reports whether the directed edge i→j is present.
// Complexity: O(1).
func (g *Graph) HasEdge(i, j int) (bool, error) {
	idx, err := g.indexOf("HasEdge", i, j)
	if err != nil {
		return false, err
	}

	return g.data[idx], nil
}

// Edges returns the adjacency row of vertex: element i answers "is there
// an edge vertex→i".
//
// The returned slice is a live, zero-copy view into the graph's storage:
// it stays valid for the life of the graph and observes later mutations.
// Callers must treat it as read-only and must not let it outlive the
// graph. The capacity is clipped so append cannot touch neighboring rows.
// Complexity: O(1).
func (g *Graph) Edges(vertex int) ([]bool, error) {
	if vertex < 0 || vertex >= g.n {
		return nil, fmt.Errorf("Graph.Edges(%d): %w", vertex, ErrOutOfRange)
	}
	base := vertex * g.n

	return g.data[base : base+g.n : base+g.n], nil
}

// InverseEdges returns the adjacency column of vertex: element i answers
// "is there an edge i→vertex". Useful when an algorithm needs to know
// which vertices point *at* the current one rather than away from it.
//
// The column is not contiguous in row-major storage, so this always
// materializes a fresh slice owned by the caller.
// Complexity: O(n) time and memory.
func (g *Graph) InverseEdges(vertex int) ([]bool, error) {
	if vertex < 0 || vertex >= g.n {
		return nil, fmt.Errorf("Graph.InverseEdges(%d): %w", vertex, ErrOutOfRange)
	}

	// Gather the column with a strided scan
	edges := make([]bool, g.n)
	for i := 0; i < g.n; i++ {
		edges[i] = g.data[i*g.n+vertex]
	}

	return edges, nil
}

// EdgeCount returns the number of edges currently stored, self-loops
// included. Deterministic flat scan.
// Complexity: O(n²).
func (g *Graph) EdgeCount() int {
	count := 0
	for _, set := range g.data {
		if set {
			count++
		}
	}

	return count
}

// MaxEdges returns n·(n−1), the number of ordered pairs (i,j) with i≠j —
// the theoretical maximum directed edge count. Self-loops are excluded
// from this figure even though they are storable.
// Complexity: O(1).
func (g *Graph) MaxEdges() int {
	return g.n * (g.n - 1)
}

// Density returns the ratio between the stored edge count and MaxEdges.
//
// Quirk, kept on purpose: the numerator counts every cell including the
// diagonal, while the denominator excludes the n self-loop slots. A graph
// holding self-loops therefore reports a density above the loop-free
// scale (up to n²/(n·(n−1)) > 1). Do not "fix" this without changing the
// documented contract. For n = 1 (MaxEdges 0) the density is 0.
// Complexity: O(n²).
func (g *Graph) Density() float64 {
	maxEdges := g.MaxEdges()
	if maxEdges == 0 {
		return 0
	}

	return float64(g.EdgeCount()) / float64(maxEdges)
}

// Clear removes every edge; the capacity is unchanged.
// Complexity: O(n²).
func (g *Graph) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Clone returns a deep copy of the graph. Views handed out by Edges keep
// observing the original, never the clone.
// Complexity: O(n²) time and memory.
func (g *Graph) Clone() *Graph {
	cp := make([]bool, len(g.data))
	copy(cp, g.data)

	return &Graph{n: g.n, data: cp}
}

// String implements fmt.Stringer for easy debugging: one row per line,
// cells rendered as 0/1.
// Complexity: O(n²).
func (g *Graph) String() string {
	var b strings.Builder
	for i := 0; i < g.n; i++ {
		b.WriteByte('[')
		for j := 0; j < g.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			if g.data[i*g.n+j] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
