// Package gridgraph describes the geometry of a rectangular tile grid and
// the orthogonal neighbor topology used by the maze generator.
//
// What:
//
//   - Tiles are numbered in row-major order: id = row*Width + col.
//   - Neighbors(id, height, width) lists the up/down/left/right tiles of id.
//   - Grid bundles dimensions with a neighbor Order and converts the full
//     4-connected lattice into a *core.Graph.
//
// Neighbor order:
//
// The generator draws a random index into the neighbor list, so the order in
// which neighbors are listed decides which tile a given draw selects.
//
//   - OrderReference (default) reproduces the listing mazes were originally
//     generated with, row by row:
//     top row      [right, down] | [left, right, down] | [left, down]
//     middle rows  [up, down, right] | [up, down, left, right] | [up, down, left]
//     bottom row   [right, up] | [left, right, up] | [left, up]
//   - OrderCompass lists N, E, S, W. Mazes built with it are valid but do not
//     match reference seeds.
//
// On grids with a single row or column the reference branch is chosen as
// usual and candidates that fall outside the grid are dropped.
//
// Complexity:
//
//   - Neighbors: O(1).
//   - ToCoreGraph: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: height or width ≤ 0, or height*width overflows int.
//   - ErrIndexOutOfRange: id outside [0, height*width).
package gridgraph
