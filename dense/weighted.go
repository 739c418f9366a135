// Package dense: WeightedGraph generalizes Graph from a presence flag to
// an optional float64 weight per cell. Absence is encoded as NaN inside
// the flat storage; the public API is comma-ok, so callers never compare
// against the marker. A stored weight of 0 is a real edge.

package dense

import (
	"fmt"
	"math"
	"strings"
)

// weightedErrorf wraps an underlying error with WeightedGraph method context.
func weightedErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("WeightedGraph.%s(%d,%d): %w", method, i, j, err)
}

// WeightedGraph is a fixed-capacity directed graph over vertices 0..n-1
// with one optional weight per ordered pair. data holds n*n cells in
// row-major order; NaN marks "no edge". ±Inf remain legal weights, only
// NaN is reserved.
type WeightedGraph struct {
	n    int       // number of vertices, immutable after construction
	data []float64 // flat backing storage, length == n*n, NaN == absent
}

// NewWeighted creates a WeightedGraph with capacity n and no edges.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat slice and fill with the NaN marker.
// Stage 3 (Finalize): return new WeightedGraph or ErrBadCapacity.
// Complexity: O(n²) time and memory.
func NewWeighted(n int) (*WeightedGraph, error) {
	// Validate capacity
	if n <= 0 {
		return nil, fmt.Errorf("NewWeighted(%d): %w", n, ErrBadCapacity)
	}

	// Allocate and fill with the absence marker
	data := make([]float64, n*n)
	nan := math.NaN()
	for i := range data {
		data[i] = nan
	}

	return &WeightedGraph{n: n, data: data}, nil
}

// VertexCount returns the fixed capacity n.
// Complexity: O(1).
func (g *WeightedGraph) VertexCount() int {
	return g.n
}

// indexOf computes the flat index for (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *WeightedGraph) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= g.n {
		return 0, weightedErrorf(method, i, j, ErrOutOfRange)
	}
	if j < 0 || j >= g.n {
		return 0, weightedErrorf(method, i, j, ErrOutOfRange)
	}

	return i*g.n + j, nil
}

// AddEdge records the directed edge i→j with weight w, overwriting any
// prior weight. NaN is rejected with ErrBadWeight because it is the
// internal absence marker; use RemoveEdge to delete an edge.
// Complexity: O(1).
func (g *WeightedGraph) AddEdge(i, j int, w float64) error {
	idx, err := g.indexOf("AddEdge", i, j)
	if err != nil {
		return err
	}
	// Reject the reserved marker before touching storage
	if math.IsNaN(w) {
		return weightedErrorf("AddEdge", i, j, ErrBadWeight)
	}
	g.data[idx] = w

	return nil
}

// AddEdgeUndirected records the edge between i and j in both directions
// with the same weight.
// Complexity: O(1).
func (g *WeightedGraph) AddEdgeUndirected(i, j int, w float64) error {
	idx, err := g.indexOf("AddEdgeUndirected", i, j)
	if err != nil {
		return err
	}
	if math.IsNaN(w) {
		return weightedErrorf("AddEdgeUndirected", i, j, ErrBadWeight)
	}
	g.data[idx] = w
	g.data[j*g.n+i] = w

	return nil
}

// RemoveEdge deletes the directed edge i→j. Removing an absent edge is a
// no-op.
// Complexity: O(1).
func (g *WeightedGraph) RemoveEdge(i, j int) error {
	idx, err := g.indexOf("RemoveEdge", i, j)
	if err != nil {
		return err
	}
	g.data[idx] = math.NaN()

	return nil
}

// RemoveEdgeUndirected deletes the edge between i and j in both
// directions.
// Complexity: O(1).
func (g *WeightedGraph) RemoveEdgeUndirected(i, j int) error {
	idx, err := g.indexOf("RemoveEdgeUndirected", i, j)
	if err != nil {
		return err
	}
	g.data[idx] = math.NaN()
	g.data[j*g.n+i] = math.NaN()

	return nil
}

// GetEdge returns the weight of the directed edge i→j and whether it is
// present. This is the only way to read a weight; (0, false) means "no
// edge", while (0, true) is a real edge whose weight happens to be zero.
// Complexity: O(1).
func (g *WeightedGraph) GetEdge(i, j int) (float64, bool, error) {
	idx, err := g.indexOf("GetEdge", i, j)
	if err != nil {
		return 0, false, err
	}
	w := g.data[idx]
	if math.IsNaN(w) {
		return 0, false, nil
	}

	return w, true, nil
}

// HasEdge reports whether the directed edge i→j is present. The weight
// value is irrelevant; a zero weight still counts as present.
// Complexity: O(1).
func (g *WeightedGraph) HasEdge(i, j int) (bool, error) {
	idx, err := g.indexOf("HasEdge", i, j)
	if err != nil {
		return false, err
	}

	return !math.IsNaN(g.data[idx]), nil
}

// Edges returns the adjacency row of vertex: element i holds the weight
// of the edge vertex→i, or NaN where no edge exists.
//
// The returned slice is a live, zero-copy view into the graph's storage;
// treat it as read-only, use math.IsNaN to test for absence, and do not
// let it outlive the graph. The capacity is clipped so append cannot
// touch neighboring rows.
// Complexity: O(1).
func (g *WeightedGraph) Edges(vertex int) ([]float64, error) {
	if vertex < 0 || vertex >= g.n {
		return nil, fmt.Errorf("WeightedGraph.Edges(%d): %w", vertex, ErrOutOfRange)
	}
	base := vertex * g.n

	return g.data[base : base+g.n : base+g.n], nil
}

// InverseEdges returns the adjacency column of vertex: element i holds
// the weight of the edge i→vertex, or NaN where no edge exists. Always a
// fresh slice owned by the caller; the column is not contiguous in
// row-major storage.
// Complexity: O(n) time and memory.
func (g *WeightedGraph) InverseEdges(vertex int) ([]float64, error) {
	if vertex < 0 || vertex >= g.n {
		return nil, fmt.Errorf("WeightedGraph.InverseEdges(%d): %w", vertex, ErrOutOfRange)
	}

	edges := make([]float64, g.n)
	for i := 0; i < g.n; i++ {
		edges[i] = g.data[i*g.n+vertex]
	}

	return edges, nil
}

// EdgeCount returns the number of present edges, self-loops included.
// Complexity: O(n²).
func (g *WeightedGraph) EdgeCount() int {
	count := 0
	for _, w := range g.data {
		if !math.IsNaN(w) {
			count++
		}
	}

	return count
}

// MaxEdges returns n·(n−1), the theoretical maximum directed edge count
// with self-loops excluded.
// Complexity: O(1).
func (g *WeightedGraph) MaxEdges() int {
	return g.n * (g.n - 1)
}

// Density returns the ratio between the present edge count and MaxEdges.
// The same self-loop quirk as Graph.Density applies: loops inflate the
// numerator while the denominator stays n·(n−1). For n = 1 the density
// is 0.
// Complexity: O(n²).
func (g *WeightedGraph) Density() float64 {
	maxEdges := g.MaxEdges()
	if maxEdges == 0 {
		return 0
	}

	return float64(g.EdgeCount()) / float64(maxEdges)
}

// Clear removes every edge; the capacity is unchanged.
// Complexity: O(n²).
func (g *WeightedGraph) Clear() {
	nan := math.NaN()
	for i := range g.data {
		g.data[i] = nan
	}
}

// Clone returns a deep copy of the graph.
// Complexity: O(n²) time and memory.
func (g *WeightedGraph) Clone() *WeightedGraph {
	cp := make([]float64, len(g.data))
	copy(cp, g.data)

	return &WeightedGraph{n: g.n, data: cp}
}

// String implements fmt.Stringer for easy debugging: one row per line,
// absent cells rendered as "·", weights with %g.
// Complexity: O(n²).
func (g *WeightedGraph) String() string {
	var b strings.Builder
	for i := 0; i < g.n; i++ {
		b.WriteByte('[')
		for j := 0; j < g.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			w := g.data[i*g.n+j]
			if math.IsNaN(w) {
				b.WriteString("·")
			} else {
				fmt.Fprintf(&b, "%g", w)
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
