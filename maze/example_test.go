package maze_test

import (
	"fmt"

	"github.com/katalvlaran/tilemaze/maze"
)

// ExampleNew generates a 3×3 maze and lists each tile's passages:
//
//	0 1 2
//	3 4 5
//	6 7 8
func ExampleNew() {
	m, err := maze.New(3, 3, 42)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for id := 0; id < m.VertexCount(); id++ {
		ids, _ := m.NeighborIDs(id)
		fmt.Println(id, ids)
	}

	// Output:
	// 0 [3]
	// 1 [2 4]
	// 2 [1 5]
	// 3 [0 6]
	// 4 [1 7]
	// 5 [2 8]
	// 6 [3 7]
	// 7 [4 6]
	// 8 [5]
}

// ExampleMaze_Equal compares two independently built mazes.
func ExampleMaze_Equal() {
	a, _ := maze.New(3, 3, 42)
	b, _ := maze.New(3, 3, 42)
	c, _ := maze.New(3, 3, 2)

	fmt.Println(a.Equal(b), a.Equal(c))

	// Output:
	// true false
}
