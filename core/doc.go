// Package core provides the thread-safe in-memory route graph shared by all
// trains of a reservation system.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are station names (plain strings); no station object exists.
//   - Every edge is undirected and carries a positive integer distance.
//   - Parallel edges are kept; shortest-path relaxation makes them harmless.
//   - Self-loops are rejected unless WithLoops() is given.
//   - The graph only grows: there is no removal API.
//   - A single sync.RWMutex guards all state.
//
// Storage:
//
//	adjacency[station] = []Adjacent{{To, Weight, EdgeID}, ...}   // insertion order
//	edges              = []*Edge                                 // insertion order
//
// Every AddEdge(a, b, w) appends a→b to adjacency[a] and b→a to adjacency[b]
// with the same weight w. Stations are created lazily by the first edge that
// mentions them, or explicitly by AddVertex.
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	AddEdge(from, to string, weight int64) (edgeID string, err) // O(1)†
//	HasEdge(from, to string) bool                               // O(deg)
//	Neighbors(id string) ([]Adjacent, error)                    // O(deg), insertion order
//	NeighborIDs(id string) ([]string, error)                    // O(deg·log deg), unique, sorted
//	Vertices() []string                                         // O(V·log V), sorted
//	Edges() []Edge                                              // O(E), insertion order
//	Routes() iter.Seq[Route]                                    // lazy, restartable
//	Degree(id string) (int, error)                              // O(1)
//	VertexCount(), EdgeCount() int                              // O(1)
//	Stats() GraphStats                                          // O(V)
//
// † amortized: slice append.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length station name
//	ErrVertexNotFound – missing station
//	ErrBadWeight      – distance ≤ 0
//	ErrLoopNotAllowed – self-loop when loops disabled
package core
