package maze

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tilemaze/core"
	"github.com/katalvlaran/tilemaze/gridgraph"
	"github.com/katalvlaran/tilemaze/rng"
)

// carver holds the transient state of a single generation run.
type carver struct {
	graph   *core.Graph
	grid    gridgraph.Grid
	src     rng.Source
	logger  *log.Logger
	visited []bool
	stack   []int
	stats   Stats
}

func newCarver(g *core.Graph, grid gridgraph.Grid, src rng.Source, logger *log.Logger) *carver {
	return &carver{
		graph:   g,
		grid:    grid,
		src:     src,
		logger:  logger,
		visited: make([]bool, grid.Size()),
		stack:   make([]int, 0, grid.Size()),
	}
}

// run carves from tile 0 to the last tile, then sweeps unreached tiles.
//
// A tile is pushed when the walk arrives at it and pushed again before the
// walk continues from it, so a dead end is retried once from the stack before
// the walk falls back to the previous tile. Every retry consumes a draw; the
// draw sequence is part of the seed contract.
func (c *carver) run() error {
	last := c.grid.Size() - 1
	cur := 0
	c.visited[cur] = true

	for cur != last {
		c.push(cur)
		for {
			next, ok := c.extend(cur)
			if ok {
				cur = next
				break
			}
			if len(c.stack) == 0 {
				return ErrStalled
			}
			cur = c.pop()
			c.stats.Backtracks++
		}
		c.push(cur)
	}

	c.sweep()

	return nil
}

func (c *carver) push(id int) {
	c.stack = append(c.stack, id)
	c.visited[id] = true
}

func (c *carver) pop() int {
	id := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	return id
}

// extend draws a neighbor of cur and carves a passage to it when unvisited,
// otherwise to the first unvisited neighbor in topology order.
// It reports false at a dead end.
func (c *carver) extend(cur int) (int, bool) {
	nb := c.neighbors(cur)
	if len(nb) == 0 {
		return 0, false
	}
	next := c.draw(nb)
	if c.visited[next] {
		next = -1
		for _, id := range nb {
			if !c.visited[id] {
				next = id
				break
			}
		}
		if next < 0 {
			return 0, false
		}
	}
	c.visited[next] = true
	c.connect(cur, next)

	return next, true
}

// sweep attaches every unvisited tile, in id order, to a visited neighbor.
func (c *carver) sweep() {
	for id, seen := range c.visited {
		if seen {
			continue
		}
		nb := c.neighbors(id)
		if len(nb) == 0 {
			c.disconnected(id)
			continue
		}
		to := c.draw(nb)
		if !c.visited[to] {
			to = -1
			for _, n := range nb {
				if c.visited[n] {
					to = n
					break
				}
			}
		}
		if to < 0 {
			c.disconnected(id)
			continue
		}
		c.connect(id, to)
		c.visited[id] = true
		c.stats.SweepJoins++
	}
}

func (c *carver) neighbors(id int) []int {
	nb, err := c.grid.Neighbors(id)
	if err != nil {
		return nil
	}

	return nb
}

func (c *carver) draw(nb []int) int {
	c.stats.Draws++

	return nb[c.src.IntN(len(nb))]
}

func (c *carver) connect(u, v int) {
	_ = c.graph.AddEdge(u, v)
	if c.logger != nil {
		c.logger.Debug("carved", "from", u, "to", v)
	}
}

func (c *carver) disconnected(id int) {
	c.stats.Disconnected = append(c.stats.Disconnected, id)
	if c.logger != nil {
		c.logger.Warn("tile left disconnected", "tile", id)
	}
}
