package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidDimensions indicates a non-positive height or width.
	ErrInvalidDimensions = errors.New("gridgraph: height and width must be positive")
	// ErrIndexOutOfRange indicates a tile id outside the grid.
	ErrIndexOutOfRange = errors.New("gridgraph: tile index out of range")
	// ErrUnknownOrder indicates an unrecognized neighbor order name.
	ErrUnknownOrder = errors.New("gridgraph: unknown neighbor order")
)

// Order selects how a tile's neighbors are listed.
type Order int

const (
	// OrderReference lists neighbors the way reference mazes were generated.
	OrderReference Order = iota
	// OrderCompass lists neighbors as N, E, S, W.
	OrderCompass
)

// String returns the lowercase name used in configuration files and flags.
func (o Order) String() string {
	switch o {
	case OrderReference:
		return "reference"
	case OrderCompass:
		return "compass"
	default:
		return "unknown"
	}
}

// ParseOrder maps "reference" or "compass" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "reference":
		return OrderReference, nil
	case "compass":
		return OrderCompass, nil
	default:
		return OrderReference, fmt.Errorf("%w %q", ErrUnknownOrder, s)
	}
}

// TileKind classifies a tile by its position on the grid.
type TileKind int

const (
	// Interior tiles touch no border.
	Interior TileKind = iota
	// Border tiles touch exactly one border.
	Border
	// Corner tiles touch two borders.
	Corner
)

// step is a unit move in (row, col) space.
type step struct{ dr, dc int }

var (
	up    = step{-1, 0}
	down  = step{1, 0}
	left  = step{0, -1}
	right = step{0, 1}
)

// Grid is an immutable height×width tile rectangle.
type Grid struct {
	Height, Width int
	Order         Order
}
