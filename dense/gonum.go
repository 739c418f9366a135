// SPDX-License-Identifier: MIT
// Package dense - exporters to gonum/graph/simple.
//
// The containers in this package deliberately ship no traversal or
// shortest-path code; gonum does. These converters build a gonum simple
// graph snapshot from a container so callers can run gonum algorithms
// (topo, path, traverse, ...) against it. The export is a copy: later
// mutations of the source do not reach the gonum graph.

package dense

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum exports g as a gonum directed graph.
// Implementation:
//   - Stage 1: add nodes 0..n-1 so isolated vertices survive the export.
//   - Stage 2: deterministic i→j scan; one gonum edge per true cell.
//
// Simple gonum graphs reject self edges, so a stored self-loop fails the
// export with ErrLoopExport rather than panicking or being dropped.
// Complexity: O(n²) time, O(n + e) memory for the result.
func ToGonum(g *Graph) (*simple.DirectedGraph, error) {
	n := g.VertexCount()
	dst := simple.NewDirectedGraph()

	// Nodes first: gonum only materializes endpoints of edges otherwise.
	for i := 0; i < n; i++ {
		dst.AddNode(simple.Node(i))
	}

	// Fixed i→j traversal, single write site.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !g.data[i*n+j] {
				continue
			}
			if i == j {
				return nil, fmt.Errorf("ToGonum: loop at vertex %d: %w", i, ErrLoopExport)
			}
			dst.SetEdge(dst.NewEdge(simple.Node(i), simple.Node(j)))
		}
	}

	return dst, nil
}

// ToGonumWeighted exports g as a gonum weighted directed graph. Absent
// pairs carry gonum's absent weight +Inf and self weight 0, the usual
// shortest-path convention.
//
// Same loop policy as ToGonum: a stored self-loop fails the export with
// ErrLoopExport.
// Complexity: O(n²) time, O(n + e) memory for the result.
func ToGonumWeighted(g *WeightedGraph) (*simple.WeightedDirectedGraph, error) {
	n := g.VertexCount()
	dst := simple.NewWeightedDirectedGraph(0, math.Inf(1))

	for i := 0; i < n; i++ {
		dst.AddNode(simple.Node(i))
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := g.data[i*n+j]
			if math.IsNaN(w) {
				continue
			}
			if i == j {
				return nil, fmt.Errorf("ToGonumWeighted: loop at vertex %d: %w", i, ErrLoopExport)
			}
			dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(i), simple.Node(j), w))
		}
	}

	return dst, nil
}
