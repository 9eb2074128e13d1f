package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilemaze/core"
)

// ExampleGraph demonstrates creation, insertion and the partial-insertion rules.
func ExampleGraph() {
	g, _ := core.NewGraph(3)

	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 1) // already present

	err := g.AddEdge(1, 1)
	fmt.Println("self-loop rejected:", errors.Is(err, core.ErrLoopNotAllowed))
	err = g.AddEdge(0, 9)
	fmt.Println("bad label rejected:", errors.Is(err, core.ErrVertexNotFound))

	fmt.Println("edges:", g.EdgeCount())
	ids, _ := g.NeighborIDs(1)
	fmt.Println("neighbors of 1:", ids)

	// Output:
	// self-loop rejected: true
	// bad label rejected: true
	// edges: 2
	// neighbors of 1: [0 2]
}
