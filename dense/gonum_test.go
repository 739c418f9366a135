// Package dense_test contains unit tests for the gonum exporters.
package dense_test

import (
	"testing"

	"github.com/katalvlaran/fixedgraph/dense"
	"github.com/stretchr/testify/require"
)

// TestToGonumEdges verifies edges and isolated vertices survive the export.
func TestToGonumEdges(t *testing.T) {
	g := mustGraph(t, 4) // vertex 3 stays isolated
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdgeUndirected(1, 2))

	dst, err := dense.ToGonum(g)
	require.NoError(t, err)

	require.Equal(t, 4, dst.Nodes().Len())
	require.True(t, dst.HasEdgeFromTo(0, 1))
	require.False(t, dst.HasEdgeFromTo(1, 0)) // directed export
	require.True(t, dst.HasEdgeFromTo(1, 2))
	require.True(t, dst.HasEdgeFromTo(2, 1))
	require.False(t, dst.HasEdgeFromTo(0, 3))
}

// TestToGonumIsSnapshot ensures later source mutations do not reach the export.
func TestToGonumIsSnapshot(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(0, 1))

	dst, err := dense.ToGonum(g)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(1, 2))
	require.False(t, dst.HasEdgeFromTo(1, 2))
}

// TestToGonumRejectsLoops pins the simple-graph boundary: stored loops
// make the export fail with ErrLoopExport.
func TestToGonumRejectsLoops(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(1, 1))

	_, err := dense.ToGonum(g)
	require.ErrorIs(t, err, dense.ErrLoopExport)
}

// TestToGonumWeighted verifies weights, including zero, cross the boundary intact.
func TestToGonumWeighted(t *testing.T) {
	g := mustWeighted(t, 3)
	require.NoError(t, g.AddEdge(0, 1, 16.0))
	require.NoError(t, g.AddEdge(1, 2, 0.0))

	dst, err := dense.ToGonumWeighted(g)
	require.NoError(t, err)

	require.Equal(t, 3, dst.Nodes().Len())

	w, ok := dst.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 16.0, w)

	w, ok = dst.Weight(1, 2)
	require.True(t, ok)
	require.Zero(t, w)

	_, ok = dst.Weight(2, 0)
	require.False(t, ok)
}

// TestToGonumWeightedRejectsLoops mirrors the unweighted loop policy.
func TestToGonumWeightedRejectsLoops(t *testing.T) {
	g := mustWeighted(t, 2)
	require.NoError(t, g.AddEdge(0, 0, 1.0))

	_, err := dense.ToGonumWeighted(g)
	require.ErrorIs(t, err, dense.ErrLoopExport)
}
