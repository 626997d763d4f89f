package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/tutte/bfs"
	"github.com/katalvlaran/tutte/core"
)

// ExampleComponents splits a forest of two paths and an isolated vertex.
func ExampleComponents() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("x", "y")
	_, _ = g.AddEdge("y", "z")
	_ = g.AddVertex("solo")

	comps, _ := bfs.Components(g)
	fmt.Println(comps)
	// Output:
	// [[a b] [solo] [x y z]]
}

// ExampleCountComponents counts the pieces of a dipole plus a bouquet.
func ExampleCountComponents() {
	g := core.NewMultigraph()
	_, _ = g.AddEdge("u", "v")
	_, _ = g.AddEdge("u", "v")
	_, _ = g.AddEdge("w", "w")

	k, _ := bfs.CountComponents(g)
	fmt.Println(k)
	// Output:
	// 2
}
