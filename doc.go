// Package tilemaze generates deterministic, seedable rectangular mazes as
// graphs over grid tiles and compares them structurally.
//
// What is inside:
//
//	core/       — undirected, unweighted graph with integer labels and symmetric neighbor sets
//	gridgraph/  — row-major tile geometry and the neighbor topology generation draws from
//	rng/        — seeded random sources, including the reference 48-bit LCG
//	maze/       — the generator (randomized backtracking walk + sweep) and the comparator
//	cmd/mazegen — command-line front end (generate, compare)
//
// Same height, width and seed ⇒ same maze, on every platform:
//
//	a, _ := maze.New(3, 3, 42)
//	b, _ := maze.New(3, 3, 42)
//	a.Equal(b) // true
//
// A 3×3 maze numbers its tiles as
//
//	0 1 2
//	3 4 5
//	6 7 8
//
//	go get github.com/katalvlaran/tilemaze
package tilemaze
