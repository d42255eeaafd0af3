// Package bfs counts legs between stations of a core.Graph.
//
// BFS returns the whole tree rooted at a start station: the visit order,
// legs from the start for every reached station, and parent links from which
// Result.PathTo rebuilds a fewest-legs itinerary. Stations one leg further
// away are only visited after every closer station.
//
// Complexity is O(V + E log E) time, because NeighborIDs sorts, and O(V)
// memory.
package bfs
