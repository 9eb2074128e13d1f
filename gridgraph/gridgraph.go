package gridgraph

import (
	"math"

	"github.com/katalvlaran/tilemaze/core"
)

// NewGrid validates the dimensions and returns a Grid.
// Returns ErrInvalidDimensions if height or width is not positive or if the
// tile count does not fit in an int.
func NewGrid(height, width int, order Order) (Grid, error) {
	if err := validate(height, width); err != nil {
		return Grid{}, err
	}

	return Grid{Height: height, Width: width, Order: order}, nil
}

func validate(height, width int) error {
	if height <= 0 || width <= 0 {
		return ErrInvalidDimensions
	}
	if height > math.MaxInt/width {
		return ErrInvalidDimensions
	}

	return nil
}

// Size returns the number of tiles.
func (g Grid) Size() int {
	return g.Height * g.Width
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Index maps (row, col) to its row-major id.
func (g Grid) Index(row, col int) int {
	return row*g.Width + col
}

// Coordinate converts a row-major id back to (row, col).
func (g Grid) Coordinate(id int) (row, col int) {
	return id / g.Width, id % g.Width
}

// Kind reports whether id is a corner, border or interior tile.
// On a single row or column every tile touches two borders and is a Corner.
func (g Grid) Kind(id int) (TileKind, error) {
	if id < 0 || id >= g.Size() {
		return Interior, ErrIndexOutOfRange
	}
	row, col := g.Coordinate(id)
	vertical := row == 0 || row == g.Height-1
	horizontal := col == 0 || col == g.Width-1
	switch {
	case vertical && horizontal:
		return Corner, nil
	case vertical || horizontal:
		return Border, nil
	default:
		return Interior, nil
	}
}

// ToCoreGraph builds the full 4-connected lattice: every tile is a vertex
// labeled by its id and every pair of orthogonally adjacent tiles is an edge.
// Any maze carved on this grid is a subgraph of the result.
// Complexity: O(W×H).
func (g Grid) ToCoreGraph() *core.Graph {
	cg, _ := core.NewGraph(g.Size())
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			id := g.Index(row, col)
			if col+1 < g.Width {
				_ = cg.AddEdge(id, g.Index(row, col+1))
			}
			if row+1 < g.Height {
				_ = cg.AddEdge(id, g.Index(row+1, col))
			}
		}
	}

	return cg
}
