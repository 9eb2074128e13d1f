// Package core provides the undirected, unweighted graph that backs every
// generated maze.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are labeled 0..N-1 at construction time; the count never changes.
//   - Each Vertex owns a set of neighbor references, so undirected edges are
//     stored as mutual back-references (u ∈ v.edges and v ∈ u.edges).
//   - Simple graph only: self-loops are rejected and parallel edges collapse
//     into one because neighbor storage has set semantics.
//
// Insertion is a partial operation. AddEdge reports why an edge was not added
// (ErrLoopNotAllowed, ErrVertexNotFound) but leaves the graph untouched, so
// callers that only care about valid pairs may ignore the error.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)      // O(n)
//	AddEdge(u, v int) error              // O(1)
//	Vertex(id int) (*Vertex, error)      // O(1)
//	HasVertex(id int) bool               // O(1)
//	HasEdge(u, v int) bool               // O(1)
//	NeighborIDs(id int) ([]int, error)   // O(d·log d), sorted
//	AdjacencyList() map[int][]int        // O(V + E·log d)
//	Vertices() []*Vertex                 // O(V), ordered by label
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1)
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 0
//	ErrVertexNotFound      - label outside [0, n)
//	ErrLoopNotAllowed      - AddEdge(v, v)
//
// Concurrency: a Graph is not safe for concurrent mutation. Mazes are built in
// a single synchronous step and only read afterwards.
package core
