package core_test

import (
	"fmt"

	"github.com/katalvlaran/tutte/core"
)

// ExampleContractEdge merges the endpoints of one of two parallel edges;
// the other parallel edge turns into a loop.
func ExampleContractEdge() {
	g := core.NewMultigraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	c, _ := core.ContractEdge(g, "e1")
	fmt.Println("vertices:", c.Vertices())
	for _, e := range c.Edges() {
		fmt.Println(e.ID, "loop:", e.IsLoop())
	}

	// Output:
	// vertices: [C w1]
	// e2 loop: true
	// e3 loop: false
}
