// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex and Graph types, sentinel errors and the NewGraph constructor.
// Invariants:
//   - vertices[i].ID == i for every i.
//   - u ∈ v.edges ⇔ v ∈ u.edges; v ∉ v.edges.
//   - edgeCount equals the number of unordered adjacent pairs.

package core

import (
	"errors"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexNotFound indicates a label outside [0, VertexCount()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an attempt to connect a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is a single labeled node together with its neighbor set.
//
// The neighbor set holds references to other vertices of the same Graph and
// is only mutated through Graph.AddEdge, which keeps both sides in sync.
type Vertex struct {
	// ID is the vertex label; for mazes it is the row-major tile index.
	ID int

	edges map[*Vertex]struct{}
}

func newVertex(id int) *Vertex {
	return &Vertex{ID: id, edges: make(map[*Vertex]struct{})}
}

// Degree returns the number of distinct neighbors.
func (v *Vertex) Degree() int {
	return len(v.edges)
}

// HasNeighbor reports whether a vertex labeled id is adjacent to v.
// Complexity: O(d).
func (v *Vertex) HasNeighbor(id int) bool {
	for u := range v.edges {
		if u.ID == id {
			return true
		}
	}

	return false
}

// Neighbors returns the adjacent vertices ordered by ID.
// The returned slice is freshly allocated; the vertices are live.
// Complexity: O(d·log d).
func (v *Vertex) Neighbors() []*Vertex {
	out := make([]*Vertex, 0, len(v.edges))
	for u := range v.edges {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NeighborIDs returns the labels of adjacent vertices in ascending order.
// Complexity: O(d·log d).
func (v *Vertex) NeighborIDs() []int {
	ids := make([]int, 0, len(v.edges))
	for u := range v.edges {
		ids = append(ids, u.ID)
	}
	sort.Ints(ids)

	return ids
}

// Graph is an undirected, unweighted simple graph over a fixed set of
// integer-labeled vertices.
type Graph struct {
	vertices  []*Vertex // indexed by label
	edgeCount int       // unordered pairs
}

// NewGraph creates a Graph with n vertices labeled 0..n-1 and no edges.
//
// Errors:
//   - ErrNegativeVertexCount if n < 0.
//
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	g := &Graph{vertices: make([]*Vertex, n)}
	for i := 0; i < n; i++ {
		g.vertices[i] = newVertex(i)
	}

	return g, nil
}
