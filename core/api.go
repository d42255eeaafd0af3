// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, read-only public facade: policy getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a read-only summary of a Graph at one point in time.
type GraphStats struct {
	AllowsLoops      bool // construction-time loop policy
	VertexCount      int  // number of stations
	EdgeCount        int  // number of inserted routes
	AdjacencyEntries int  // directed entries; 2*EdgeCount minus self-loops
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Stats produces a consistent snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire read lock.
//   - Stage 2: Count stations, edges, and sum adjacency lengths in one pass.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.adjacency),
		EdgeCount:   len(g.edges),
	}
	for _, adj := range g.adjacency {
		stats.AdjacencyEntries += len(adj)
	}

	return stats
}
