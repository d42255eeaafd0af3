// Package dijkstra provides Dijkstra's shortest-path algorithm over the
// station route graph in package core.
//
// Overview:
//
//   - Dijkstra computes the minimum total distance from one source station to
//     every reachable station in O((V + E) log V) time.
//   - It keeps a min-heap frontier ordered by best-known distance, starting with
//     the source at 0 and every other known station at Infinity.
//   - Relaxation only accepts strictly shorter distances and records the
//     predecessor, so parallel routes between two stations need no deduplication.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, source, dest string) (Path, error)
//	func Reconstruct(prev map[string]string, source, dest string) []string
//
//	  - Source(string):         required for Dijkstra, the starting station.
//	  - WithReturnPath():       return the predecessor map; otherwise prev == nil.
//	  - WithMaxDistance(int64): explore only stations with distance ≤ given value.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Source is empty.
//   - ErrNilGraph:       graph is nil.
//   - ErrVertexNotFound: Dijkstra source is not a station of the graph.
//   - ErrBadMaxDistance: panic value of WithMaxDistance for negative caps.
//   - ErrNoRoute:        ShortestPath found dest unreachable or unknown.
//
// Thread safety:
//
//   - core.Graph is internally locked, so queries may run alongside inserts;
//     a query sees each station's adjacency list as it was when it was relaxed.
package dijkstra
