// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Routes).
// Determinism:
//   - Neighbors() keeps insertion order of the adjacency list.
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - Routes() walks stations sorted lex asc, each adjacency list in insertion order.
// Concurrency:
//   - Read operations hold mu read lock and return copies.

package core

import (
	"iter"

	"golang.org/x/exp/slices"
)

// Neighbors returns a copy of the adjacency list of the given station.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire read lock and validate existence (ErrVertexNotFound).
//   - Stage 3: Copy the adjacency slice so callers never alias graph storage.
//
// Behavior highlights:
//   - Parallel routes appear once per inserted edge.
//   - A station registered via AddVertex without routes yields an empty, non-nil slice.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the station degree.
func (g *Graph) Neighbors(id string) ([]Adjacent, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Adjacent, len(adj))
	copy(out, adj)

	return out, nil
}

// NeighborIDs returns the unique set of stations adjacent to id, sorted
// lexicographically ascending.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
//
// Complexity:
//   - Time O(d + k log k), Space O(k), where k is unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	adj, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(adj))
	out := make([]string, 0, len(adj))
	for _, a := range adj {
		if _, dup := seen[a.To]; dup {
			continue
		}
		seen[a.To] = struct{}{}
		out = append(out, a.To)
	}
	slices.Sort(out)

	return out, nil
}

// Routes enumerates every adjacency entry of the graph as (from, to, weight).
//
// The sequence is lazy: stations are listed when iteration starts, and each
// station's adjacency list is copied only when the iteration reaches it.
// It is finite and may be ranged over any number of times. Every undirected
// edge therefore appears twice, once from each endpoint.
func (g *Graph) Routes() iter.Seq[Route] {
	return func(yield func(Route) bool) {
		for _, from := range g.Vertices() {
			adj, err := g.Neighbors(from)
			if err != nil {
				// The graph only grows, so a listed station never disappears.
				continue
			}
			for _, a := range adj {
				if !yield(Route{From: from, To: a.To, Weight: a.Weight}) {
					return
				}
			}
		}
	}
}
