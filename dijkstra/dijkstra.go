// File: dijkstra.go
// Role: single-source search: Dijkstra, the search state and its frontier heap.
// Complexity:
//   - Time O((V + E) log E); the heap holds up to E entries under lazy decrease-key.
//   - Space O(V + E).
// Concurrency:
//   - Reads the graph through its locked accessors; no state is shared between runs.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/core"
)

// Dijkstra computes the minimum distance from Options.Source to every
// station of g.
//
// dist holds an entry for each station known when the search started;
// unreachable ones, and those beyond MaxDistance, report Infinity. prev is
// returned only with WithReturnPath: prev[v] is the station before v on its
// shortest path, and "" for the source and unreached stations.
//
// Inputs are checked in this order: ErrEmptySource, ErrNilGraph,
// ErrVertexNotFound.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	o := DefaultOptions("")
	for _, opt := range opts {
		opt(&o)
	}
	if o.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(o.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, o.Source)
	}

	s := newSearch(g, o)
	if err := s.run(); err != nil {
		return nil, nil, err
	}
	if !o.ReturnPath {
		return s.dist, nil, nil
	}

	return s.dist, s.prev, nil
}

// search is the state of one Dijkstra run.
type search struct {
	g     *core.Graph
	limit int64

	dist    map[string]int64
	prev    map[string]string
	settled map[string]bool
	queue   frontier
}

func newSearch(g *core.Graph, o Options) *search {
	stations := g.Vertices()
	s := &search{
		g:       g,
		limit:   o.MaxDistance,
		dist:    make(map[string]int64, len(stations)),
		prev:    make(map[string]string, len(stations)),
		settled: make(map[string]bool, len(stations)),
	}
	for _, v := range stations {
		s.dist[v] = Infinity
		s.prev[v] = ""
	}
	s.dist[o.Source] = 0
	heap.Push(&s.queue, candidate{station: o.Source})

	return s
}

// run settles stations closest first. A station may sit in the queue more
// than once; only its first pop counts.
func (s *search) run() error {
	for s.queue.Len() > 0 {
		c := heap.Pop(&s.queue).(candidate)
		if s.settled[c.station] {
			continue
		}
		if c.dist > s.limit {
			return nil
		}
		s.settled[c.station] = true

		if err := s.relax(c.station, c.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax offers d(u)+w to each neighbor of u. Ties keep the existing
// predecessor.
func (s *search) relax(u string, du int64) error {
	adj, err := s.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, a := range adj {
		if a.Weight > Infinity-du {
			continue
		}
		nd := du + a.Weight
		if nd > s.limit {
			continue
		}
		// Stations inserted after newSearch have no entry yet.
		if cur, ok := s.dist[a.To]; ok && nd >= cur {
			continue
		}
		s.dist[a.To] = nd
		s.prev[a.To] = u
		heap.Push(&s.queue, candidate{station: a.To, dist: nd})
	}

	return nil
}

type candidate struct {
	station string
	dist    int64
}

// frontier is a min-heap of candidates by distance.
type frontier []candidate

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(candidate)) }

func (f *frontier) Pop() any {
	old := *f
	c := old[len(old)-1]
	*f = old[:len(old)-1]
	return c
}
