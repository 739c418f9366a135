package dense_test

import (
	"fmt"

	"github.com/katalvlaran/fixedgraph/dense"
)

// ExampleGraph demonstrates the basic edge lifecycle.
func ExampleGraph() {
	g, _ := dense.New(3)

	_ = g.AddEdgeUndirected(0, 1)
	_ = g.AddEdge(1, 2)

	ok, _ := g.HasEdge(0, 1)
	fmt.Println("0→1:", ok)
	ok, _ = g.HasEdge(2, 1)
	fmt.Println("2→1:", ok)
	fmt.Printf("density: %.2f\n", g.Density())

	// Output:
	// 0→1: true
	// 2→1: false
	// density: 0.50
}

// ExampleWeightedGraph shows optional weights, including a present zero.
func ExampleWeightedGraph() {
	g, _ := dense.NewWeighted(4)

	_ = g.AddEdge(0, 1, 16.0)
	_ = g.AddEdge(1, 2, 0.0) // zero weight, still a real edge

	if w, ok, _ := g.GetEdge(0, 1); ok {
		fmt.Println("0→1 weight:", w)
	}
	ok, _ := g.HasEdge(1, 2)
	fmt.Println("1→2 present:", ok)
	_, ok, _ = g.GetEdge(2, 1)
	fmt.Println("2→1 present:", ok)

	// Output:
	// 0→1 weight: 16
	// 1→2 present: true
	// 2→1 present: false
}

// ExampleGraph_edges shows a breadth-first search written entirely as a
// consumer of the query primitives. Traversals are deliberately not part
// of the library; the row view returned by Edges is all an algorithm needs.
func ExampleGraph_edges() {
	g, _ := dense.New(6)
	_ = g.AddEdgeUndirected(0, 1)
	_ = g.AddEdgeUndirected(1, 2)
	_ = g.AddEdgeUndirected(2, 5)
	_ = g.AddEdgeUndirected(0, 3)

	// BFS from 0 to 5 over the row views.
	const unseen = -1
	prev := make([]int, g.VertexCount())
	for i := range prev {
		prev[i] = unseen
	}
	prev[0] = 0
	queue := []int{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		row, _ := g.Edges(cur)
		for next, edge := range row {
			if edge && prev[next] == unseen {
				prev[next] = cur
				queue = append(queue, next)
			}
		}
	}

	// Reconstruct the path 0 … 5.
	path := []int{5}
	for v := 5; v != 0; v = prev[v] {
		path = append([]int{prev[v]}, path...)
	}
	fmt.Println("path:", path)

	// Output:
	// path: [0 1 2 5]
}
