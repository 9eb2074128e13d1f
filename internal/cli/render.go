package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tilemaze/maze"
)

// renderText draws m with walls wherever two adjacent tiles have no passage.
func renderText(m *maze.Maze) string {
	grid := m.Grid()
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", grid.Width) + "\n")
	for row := 0; row < grid.Height; row++ {
		b.WriteString("|")
		for col := 0; col < grid.Width; col++ {
			id := grid.Index(row, col)
			b.WriteString("   ")
			if col+1 < grid.Width && m.HasEdge(id, id+1) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n+")
		for col := 0; col < grid.Width; col++ {
			id := grid.Index(row, col)
			if row+1 < grid.Height && m.HasEdge(id, id+grid.Width) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// writeEdges prints one "id: neighbors..." line per tile.
func writeEdges(w io.Writer, m *maze.Maze) error {
	for id := 0; id < m.VertexCount(); id++ {
		ids, err := m.NeighborIDs(id)
		if err != nil {
			return err
		}
		parts := make([]string, len(ids))
		for i, n := range ids {
			parts[i] = fmt.Sprint(n)
		}
		if _, err = fmt.Fprintf(w, "%d: %s\n", id, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}
