package gridgraph_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/tilemaze/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and geometry
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive or overflowing dimensions.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name          string
		height, width int
	}{
		{"ZeroHeight", 0, 3},
		{"ZeroWidth", 3, 0},
		{"NegativeHeight", -2, 3},
		{"NegativeWidth", 3, -1},
		{"Overflow", math.MaxInt / 2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.height, tc.width, gridgraph.OrderReference)
			if !errors.Is(err, gridgraph.ErrInvalidDimensions) {
				t.Errorf("NewGrid(%d,%d) error = %v; want %v", tc.height, tc.width, err, gridgraph.ErrInvalidDimensions)
			}
		})
	}
}

func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 4, gridgraph.OrderReference)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	for id := 0; id < g.Size(); id++ {
		row, col := g.Coordinate(id)
		if !g.InBounds(row, col) {
			t.Fatalf("Coordinate(%d)=(%d,%d) out of bounds", id, row, col)
		}
		if got := g.Index(row, col); got != id {
			t.Errorf("Index(Coordinate(%d)) = %d", id, got)
		}
	}
	if g.InBounds(3, 0) || g.InBounds(0, 4) || g.InBounds(-1, 0) {
		t.Error("InBounds accepted a coordinate outside 3×4")
	}
}

func TestKind(t *testing.T) {
	g, _ := gridgraph.NewGrid(3, 4, gridgraph.OrderReference)
	want := map[int]gridgraph.TileKind{
		0: gridgraph.Corner, 3: gridgraph.Corner, 8: gridgraph.Corner, 11: gridgraph.Corner,
		1: gridgraph.Border, 4: gridgraph.Border, 7: gridgraph.Border, 10: gridgraph.Border,
		5: gridgraph.Interior, 6: gridgraph.Interior,
	}
	for id, k := range want {
		got, err := g.Kind(id)
		if err != nil {
			t.Fatalf("Kind(%d) error: %v", id, err)
		}
		if got != k {
			t.Errorf("Kind(%d) = %v; want %v", id, got, k)
		}
	}
	if _, err := g.Kind(12); !errors.Is(err, gridgraph.ErrIndexOutOfRange) {
		t.Errorf("Kind(12) error = %v; want %v", err, gridgraph.ErrIndexOutOfRange)
	}
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]gridgraph.Order{
		"":          gridgraph.OrderReference,
		"reference": gridgraph.OrderReference,
		"compass":   gridgraph.OrderCompass,
	} {
		got, err := gridgraph.ParseOrder(in)
		if err != nil || got != want {
			t.Errorf("ParseOrder(%q) = %v, %v; want %v", in, got, err, want)
		}
		if in != "" && got.String() != in {
			t.Errorf("%v.String() = %q; want %q", got, got.String(), in)
		}
	}
	if _, err := gridgraph.ParseOrder("spiral"); !errors.Is(err, gridgraph.ErrUnknownOrder) {
		t.Errorf("ParseOrder(spiral) error = %v; want %v", err, gridgraph.ErrUnknownOrder)
	}
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbors_Reference3x3 pins the exact reference order on every tile of a 3×3 grid:
//
//	0 1 2
//	3 4 5
//	6 7 8
func TestNeighbors_Reference3x3(t *testing.T) {
	want := [][]int{
		0: {1, 3},
		1: {0, 2, 4},
		2: {1, 5},
		3: {0, 6, 4},
		4: {1, 7, 3, 5},
		5: {2, 8, 4},
		6: {7, 3},
		7: {6, 8, 4},
		8: {7, 5},
	}
	for id, w := range want {
		got, err := gridgraph.Neighbors(id, 3, 3)
		if err != nil {
			t.Fatalf("Neighbors(%d,3,3) error: %v", id, err)
		}
		if !slices.Equal(got, w) {
			t.Errorf("Neighbors(%d,3,3) = %v; want %v", id, got, w)
		}
	}
}

func TestNeighbors_Compass(t *testing.T) {
	g, _ := gridgraph.NewGrid(3, 3, gridgraph.OrderCompass)
	cases := map[int][]int{
		4: {1, 5, 7, 3},
		0: {1, 3},
		6: {3, 7},
		8: {5, 7},
	}
	for id, w := range cases {
		got, _ := g.Neighbors(id)
		if !slices.Equal(got, w) {
			t.Errorf("compass Neighbors(%d) = %v; want %v", id, got, w)
		}
	}
}

// TestNeighbors_CountBounds checks 2/3/4 neighbors for corners/borders/interior
// across a range of grid shapes with both dimensions ≥ 2.
func TestNeighbors_CountBounds(t *testing.T) {
	for h := 2; h <= 6; h++ {
		for w := 2; w <= 6; w++ {
			g, _ := gridgraph.NewGrid(h, w, gridgraph.OrderReference)
			lattice := g.ToCoreGraph()
			for id := 0; id < g.Size(); id++ {
				nb, err := g.Neighbors(id)
				if err != nil {
					t.Fatalf("%dx%d Neighbors(%d) error: %v", h, w, id, err)
				}
				kind, _ := g.Kind(id)
				want := map[gridgraph.TileKind]int{gridgraph.Corner: 2, gridgraph.Border: 3, gridgraph.Interior: 4}[kind]
				if len(nb) != want {
					t.Errorf("%dx%d Neighbors(%d) = %v; want %d ids", h, w, id, nb, want)
				}
				for _, n := range nb {
					if !lattice.HasEdge(id, n) {
						t.Errorf("%dx%d: %d→%d is not a lattice edge", h, w, id, n)
					}
				}
			}
		}
	}
}

func TestNeighbors_Degenerate(t *testing.T) {
	cases := []struct {
		name          string
		id            int
		height, width int
		want          []int
	}{
		{"Single", 0, 1, 1, []int{}},
		{"RowStart", 0, 1, 4, []int{1}},
		{"RowMiddle", 2, 1, 4, []int{1, 3}},
		{"RowEnd", 3, 1, 4, []int{2}},
		{"ColumnTop", 0, 4, 1, []int{1}},
		{"ColumnMiddle", 2, 4, 1, []int{1, 3}},
		{"ColumnBottom", 3, 4, 1, []int{2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gridgraph.Neighbors(tc.id, tc.height, tc.width)
			if err != nil {
				t.Fatalf("Neighbors error: %v", err)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("Neighbors(%d,%d,%d) = %v; want %v", tc.id, tc.height, tc.width, got, tc.want)
			}
		})
	}
}

func TestNeighbors_Errors(t *testing.T) {
	if _, err := gridgraph.Neighbors(9, 3, 3); !errors.Is(err, gridgraph.ErrIndexOutOfRange) {
		t.Errorf("Neighbors(9,3,3) error = %v; want %v", err, gridgraph.ErrIndexOutOfRange)
	}
	if _, err := gridgraph.Neighbors(-1, 3, 3); !errors.Is(err, gridgraph.ErrIndexOutOfRange) {
		t.Errorf("Neighbors(-1,3,3) error = %v; want %v", err, gridgraph.ErrIndexOutOfRange)
	}
	if _, err := gridgraph.Neighbors(0, 0, 3); !errors.Is(err, gridgraph.ErrInvalidDimensions) {
		t.Errorf("Neighbors(0,0,3) error = %v; want %v", err, gridgraph.ErrInvalidDimensions)
	}
}

//----------------------------------------------------------------------------//
// ToCoreGraph
//----------------------------------------------------------------------------//

// TestToCoreGraph verifies vertex and edge counts of the 4-connected lattice:
// a h×w grid has h(w-1) horizontal and (h-1)w vertical edges.
func TestToCoreGraph(t *testing.T) {
	g, _ := gridgraph.NewGrid(3, 4, gridgraph.OrderReference)
	cg := g.ToCoreGraph()

	if cg.VertexCount() != 12 {
		t.Errorf("VertexCount = %d; want 12", cg.VertexCount())
	}
	if want := 3*3 + 2*4; cg.EdgeCount() != want {
		t.Errorf("EdgeCount = %d; want %d", cg.EdgeCount(), want)
	}
	if cg.HasEdge(0, 5) {
		t.Error("unexpected diagonal edge 0↔5")
	}
	if cg.HasEdge(3, 4) {
		t.Error("unexpected wrap-around edge 3↔4")
	}
}
