package gridgraph

var (
	topLeft     = []step{right, down}
	topRight    = []step{left, down}
	topMiddle   = []step{left, right, down}
	bottomLeft  = []step{right, up}
	bottomRight = []step{left, up}
	bottomMid   = []step{left, right, up}
	leftColumn  = []step{up, down, right}
	rightColumn = []step{up, down, left}
	inner       = []step{up, down, left, right}

	compass = []step{up, right, down, left}
)

// Neighbors lists the orthogonal neighbors of tile id on a height×width grid
// in reference order. It is equivalent to
// Grid{Height: height, Width: width}.Neighbors(id).
func Neighbors(id, height, width int) ([]int, error) {
	if err := validate(height, width); err != nil {
		return nil, err
	}

	return Grid{Height: height, Width: width, Order: OrderReference}.Neighbors(id)
}

// Neighbors lists the orthogonal neighbors of id in g.Order.
// Corners yield 2 ids, other border tiles 3 and interior tiles 4 whenever
// both dimensions are at least 2.
//
// Errors:
//   - ErrIndexOutOfRange if id is outside [0, g.Size()).
//
// Complexity: O(1).
func (g Grid) Neighbors(id int) ([]int, error) {
	if id < 0 || id >= g.Size() {
		return nil, ErrIndexOutOfRange
	}

	var steps []step
	if g.Order == OrderCompass {
		steps = compass
	} else {
		steps = g.referenceSteps(id)
	}

	row, col := g.Coordinate(id)
	out := make([]int, 0, len(steps))
	for _, s := range steps {
		r, c := row+s.dr, col+s.dc
		if g.InBounds(r, c) {
			out = append(out, g.Index(r, c))
		}
	}

	return out, nil
}

// referenceSteps picks the step list by testing the top row first, then the
// bottom row, then the side columns.
func (g Grid) referenceSteps(id int) []step {
	w, n := g.Width, g.Size()
	switch {
	case id < w:
		switch id {
		case 0:
			return topLeft
		case w - 1:
			return topRight
		default:
			return topMiddle
		}
	case id >= n-w:
		switch id {
		case n - w:
			return bottomLeft
		case n - 1:
			return bottomRight
		default:
			return bottomMid
		}
	case id%w == 0:
		return leftColumn
	case (id+1)%w == 0:
		return rightColumn
	default:
		return inner
	}
}
