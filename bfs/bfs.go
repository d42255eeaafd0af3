package bfs

import (
	"context"
	"fmt"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/core"
)

// BFS explores g from start one leg at a time. Route distances are ignored.
//
// Neighbors are expanded in the sorted order of core.Graph.NeighborIDs, so
// Order is deterministic for a given graph.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	c := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.err != nil {
		return nil, c.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStation, start)
	}

	res := &Result{
		Start:  start,
		Legs:   map[string]int{start: 0},
		Parent: map[string]string{},
	}
	frontier := []string{start}
	for legs := 0; len(frontier) > 0; legs++ {
		var next []string
		for _, u := range frontier {
			if err := c.ctx.Err(); err != nil {
				return res, err
			}
			res.Order = append(res.Order, u)
			if c.visit != nil {
				if err := c.visit(u, legs); err != nil {
					return res, fmt.Errorf("bfs: visit %q: %w", u, err)
				}
			}
			if c.maxLegs > 0 && legs == c.maxLegs {
				continue
			}

			ids, err := g.NeighborIDs(u)
			if err != nil {
				return res, fmt.Errorf("bfs: neighbors of %q: %w", u, err)
			}
			for _, v := range ids {
				if _, seen := res.Legs[v]; seen {
					continue
				}
				res.Legs[v] = legs + 1
				res.Parent[v] = u
				next = append(next, v)
			}
		}
		frontier = next
	}

	return res, nil
}
