package dijkstra

import (
	"fmt"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/core"
)

// ShortestPath returns the minimum-distance path from source to dest.
//
// A station that was never inserted into any route cannot be reached, so an
// unknown source or dest yields ErrNoRoute rather than ErrVertexNotFound.
// When source == dest and the station exists, the path is [source] with
// distance 0.
//
// Errors: ErrEmptySource, ErrNilGraph, ErrNoRoute.
func ShortestPath(g *core.Graph, source, dest string) (Path, error) {
	if source == "" {
		return Path{}, ErrEmptySource
	}
	if g == nil {
		return Path{}, ErrNilGraph
	}
	if !g.HasVertex(source) || !g.HasVertex(dest) {
		return Path{}, fmt.Errorf("%w from %s to %s", ErrNoRoute, source, dest)
	}

	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return Path{}, err
	}
	d, ok := dist[dest]
	if !ok || d == Infinity {
		return Path{}, fmt.Errorf("%w from %s to %s", ErrNoRoute, source, dest)
	}

	return Path{Distance: d, Stations: Reconstruct(prev, source, dest)}, nil
}

// Reconstruct walks predecessor links from dest back to source and returns
// the stations in source→dest order. It returns nil if the chain breaks
// before reaching source.
func Reconstruct(prev map[string]string, source, dest string) []string {
	var rev []string
	for at := dest; ; at = prev[at] {
		rev = append(rev, at)
		if at == source {
			break
		}
		if prev[at] == "" || len(rev) > len(prev) {
			return nil
		}
	}

	// Reverse in place.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
