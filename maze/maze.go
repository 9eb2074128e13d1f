package maze

import (
	"github.com/katalvlaran/tilemaze/core"
	"github.com/katalvlaran/tilemaze/gridgraph"
	"github.com/katalvlaran/tilemaze/rng"
)

// New builds and generates a height×width maze from seed.
//
// Errors:
//   - ErrInvalidDimensions if height or width is not positive.
//   - ErrStalled if the carving walk cannot reach the last tile.
//
// Complexity: O(H×W) time and memory.
func New(height, width int, seed int64, opts ...Option) (*Maze, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	grid, err := gridgraph.NewGrid(height, width, o.order)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(grid.Size())
	if err != nil {
		return nil, err
	}

	m := &Maze{Graph: g, grid: grid, seed: seed}
	c := newCarver(g, grid, o.newSource(seed), o.logger)
	if err = c.run(); err != nil {
		return nil, err
	}
	m.stats = c.stats
	if o.logger != nil {
		o.logger.Debug("maze generated",
			"height", height, "width", width, "seed", seed,
			"edges", g.EdgeCount(), "draws", c.stats.Draws, "backtracks", c.stats.Backtracks)
	}

	return m, nil
}

// NewRandom builds a maze with a seed drawn from [0, rng.MaxSeed). The seed
// is available through Seed so the maze can be rebuilt later.
func NewRandom(height, width int, opts ...Option) (*Maze, error) {
	return New(height, width, rng.RandomSeed(), opts...)
}

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.Height }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.Width }

// Seed returns the seed the maze was generated from.
func (m *Maze) Seed() int64 { return m.seed }

// Grid returns the tile geometry of the maze.
func (m *Maze) Grid() gridgraph.Grid { return m.grid }

// Stats returns a copy of the generation statistics.
func (m *Maze) Stats() Stats {
	s := m.stats
	s.Disconnected = append([]int(nil), m.stats.Disconnected...)

	return s
}
