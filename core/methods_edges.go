// File: methods_edges.go
// Role: Route insertion & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge inserts an undirected route of the given distance between two stations.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Lock mu, create missing endpoints.
//  3. Generate eid and store the Edge.
//  4. Append from→to to from's adjacency list.
//  5. If from != to, append to→from to to's adjacency list (mirror).
//
// Parallel edges between the same pair are kept as-is; shortest-path queries
// consider all of them.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight <= 0 {
		return "", fmt.Errorf("%w: %s-%s weight=%d", ErrBadWeight, from, to, weight)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Insert under lock; endpoints are created lazily.
	g.mu.Lock()
	defer g.mu.Unlock()
	ensureVertex(g, from)
	ensureVertex(g, to)

	// 3) Catalog the edge.
	eid := nextEdgeID(g)
	g.edges = append(g.edges, &Edge{ID: eid, From: from, To: to, Weight: weight})

	// 4) Link adjacency, 5) mirror.
	g.adjacency[from] = append(g.adjacency[from], Adjacent{To: to, Weight: weight, EdgeID: eid})
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], Adjacent{To: from, Weight: weight, EdgeID: eid})
	}

	return eid, nil
}

// HasEdge reports whether at least one route from–to exists.
// Works in both directions as AddEdge mirrors adjacency.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, a := range g.adjacency[from] {
		if a.To == to {
			return true
		}
	}

	return false
}

// Edges returns a copy of every inserted edge in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}

	return out
}

// EdgeCount returns total number of inserted edges (mirrors not counted).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID. Caller holds mu.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
