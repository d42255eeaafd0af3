// File: methods_vertices.go
// Role: Station lifecycle & queries.
//
// Determinism:
//   - Vertices() returns station names sorted lexicographically ascending.
//
// Concurrency:
//   - All access under mu (write lock for AddVertex, read lock for queries).
package core

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AddVertex registers a station if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under write lock, create an empty adjacency list if the station is new.
//
// Behavior highlights:
//   - Idempotent: adding an existing station is a no-op and keeps its routes.
//   - Stations referenced only through AddEdge never need this call.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	ensureVertex(g, id)

	return nil
}

// HasVertex reports whether the station exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all station names sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := maps.Keys(g.adjacency)
	g.mu.RUnlock()
	slices.Sort(ids)

	return ids
}

// VertexCount returns the number of stations.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of adjacency entries of a station.
// Parallel routes count once each; a self-loop counts once.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(adj), nil
}

// ensureVertex creates an empty adjacency list for id. Caller holds mu.
func ensureVertex(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}
