// Package maze generates deterministic, seedable rectangular mazes and
// compares them structurally.
//
// A Maze is a core.Graph over the tiles of a height×width grid, numbered in
// row-major order:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Generation happens once, inside New:
//
//  1. Carve: a randomized depth-first walk starts at tile 0 and runs until it
//     reaches the bottom-right tile. Each step draws one neighbor index from
//     the maze's seeded source; if that neighbor was already visited the first
//     unvisited neighbor in topology order is taken instead. Dead ends pop the
//     backtrack stack.
//  2. Sweep: tiles the walk never reached are joined, in id order, to a
//     visited neighbor (the drawn one if visited, else the first visited one
//     in topology order).
//
// Every draw depends on the neighbor order of gridgraph, so two mazes built
// with the same height, width, seed and Order are identical. With the default
// LCG source and OrderReference the output matches reference mazes seed for
// seed.
//
// Comparison works on a Canonical form (tile id → set of neighbor ids) and is
// independent of pointer identity. Equal is symmetric; SubsetOf keeps the
// one-directional containment check reference mazes were compared with.
//
// Errors:
//
//   - ErrInvalidDimensions  height or width ≤ 0.
//   - ErrStalled            the backtrack stack ran dry before the last tile was reached.
//
// A tile the sweep cannot attach is left isolated and reported through
// Stats().Disconnected rather than as an error. Processing tiles in id order
// guarantees every tile has an already visited up or left neighbor, so on a
// rectangular grid the list stays empty.
package maze
