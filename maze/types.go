package maze

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tilemaze/core"
	"github.com/katalvlaran/tilemaze/gridgraph"
	"github.com/katalvlaran/tilemaze/rng"
)

// Sentinel errors for maze construction.
var (
	// ErrInvalidDimensions indicates a non-positive height or width.
	ErrInvalidDimensions = gridgraph.ErrInvalidDimensions

	// ErrStalled indicates the carving walk exhausted its backtrack stack
	// before reaching the last tile.
	ErrStalled = errors.New("maze: backtrack stack exhausted before reaching the last tile")
)

// Maze is a generated maze. The embedded Graph holds the carved passages;
// it is fully built by New and should be treated as read-only afterwards.
type Maze struct {
	*core.Graph

	grid  gridgraph.Grid
	seed  int64
	stats Stats
}

// Stats summarizes one generation run.
type Stats struct {
	// Draws is the number of IntN calls made on the random source.
	Draws int
	// Backtracks counts pops of the backtrack stack.
	Backtracks int
	// SweepJoins counts tiles attached during the sweep pass.
	SweepJoins int
	// Disconnected lists tiles the sweep could not attach, in id order.
	Disconnected []int
}

// Option configures maze generation.
type Option func(*options)

type options struct {
	logger    *log.Logger
	order     gridgraph.Order
	newSource func(seed int64) rng.Source
}

func defaultOptions() options {
	return options{
		order:     gridgraph.OrderReference,
		newSource: rng.NewLCGSource,
	}
}

// WithLogger traces every carved passage at debug level and reports
// disconnected tiles at warn level. Generation is silent without it.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithNeighborOrder selects the neighbor listing the walk draws from.
// Anything other than gridgraph.OrderReference produces mazes that differ
// from reference mazes with the same seed.
func WithNeighborOrder(order gridgraph.Order) Option {
	return func(o *options) { o.order = order }
}

// WithSource replaces the random source constructor. The constructor is
// called once per maze with the maze seed. A nil constructor is ignored.
func WithSource(newSource func(seed int64) rng.Source) Option {
	return func(o *options) {
		if newSource != nil {
			o.newSource = newSource
		}
	}
}
