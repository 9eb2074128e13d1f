// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge insertion and read-only queries over a Graph.
// Determinism:
//   - Vertices() is ordered by label.
//   - NeighborIDs() and AdjacencyList() buckets are sorted ascending.

package core

// AddEdge connects the vertices labeled u and v.
//
// Insertion is defined only for valid, distinct label pairs. In every other
// case the graph is left exactly as it was and the reason is reported:
//   - u == v                 → ErrLoopNotAllowed
//   - u or v out of range    → ErrVertexNotFound
//
// Re-adding an existing edge is a no-op and returns nil.
//
// Steps:
//  1. Reject self-loops before any lookup.
//  2. Resolve both endpoints.
//  3. Insert each endpoint into the other's neighbor set.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrLoopNotAllowed
	}
	a, err := g.Vertex(u)
	if err != nil {
		return err
	}
	b, err := g.Vertex(v)
	if err != nil {
		return err
	}

	if _, ok := a.edges[b]; ok {
		return nil
	}
	a.edges[b] = struct{}{}
	b.edges[a] = struct{}{}
	g.edgeCount++

	return nil
}

// Vertex returns the vertex labeled id, or ErrVertexNotFound when id is
// outside [0, VertexCount()).
// Complexity: O(1).
func (g *Graph) Vertex(id int) (*Vertex, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	return g.vertices[id], nil
}

// HasVertex reports whether id is a valid label.
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < len(g.vertices)
}

// HasEdge reports whether u and v are adjacent. Invalid labels yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	_, ok := g.vertices[u].edges[g.vertices[v]]

	return ok
}

// VertexCount returns the number of vertices fixed at construction.
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Vertices returns all vertices ordered by label.
// The slice is a copy; the vertices are live.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// NeighborIDs returns the sorted labels adjacent to id.
//
// Errors:
//   - ErrVertexNotFound if id is not a valid label.
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return nil, err
	}

	return v.NeighborIDs(), nil
}

// AdjacencyList returns a plain id → sorted neighbor ids mapping that shares
// no storage with the graph. Every label has an entry, isolated vertices map
// to an empty slice.
//
// Complexity: O(V + E·log d).
func (g *Graph) AdjacencyList() map[int][]int {
	out := make(map[int][]int, len(g.vertices))
	for _, v := range g.vertices {
		out[v.ID] = v.NeighborIDs()
	}

	return out
}
