package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrUnknownStation is returned when the start station is absent.
	ErrUnknownStation = errors.New("bfs: start station not found")

	// ErrBadOption is returned when an invalid Option is supplied.
	ErrBadOption = errors.New("bfs: invalid option")

	// ErrNoPath is returned by Result.PathTo for stations that were not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tunes a search. Invalid values surface as ErrBadOption from BFS.
type Option func(*config)

type config struct {
	ctx     context.Context
	visit   func(station string, legs int) error
	maxLegs int // 0 means unlimited
	err     error
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithVisit calls fn for every station as it is dequeued. A non-nil error
// aborts the search and is returned wrapped.
func WithVisit(fn func(station string, legs int) error) Option {
	return func(c *config) { c.visit = fn }
}

// WithMaxLegs leaves stations more than n legs away unexplored. n == 0
// removes the limit; n < 0 is rejected.
func WithMaxLegs(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.err = fmt.Errorf("%w: max legs %d", ErrBadOption, n)
			return
		}
		c.maxLegs = n
	}
}

// Result is the BFS tree rooted at the start station.
type Result struct {
	Start  string
	Order  []string          // visit sequence
	Legs   map[string]int    // legs from Start, for every reached station
	Parent map[string]string // predecessor in the tree; Start has none
}

// Reached reports whether station was visited.
func (r *Result) Reached(station string) bool {
	_, ok := r.Legs[station]
	return ok
}

// PathTo returns a fewest-legs path from Start to dest, both inclusive.
func (r *Result) PathTo(dest string) ([]string, error) {
	n, ok := r.Legs[dest]
	if !ok {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, r.Start, dest)
	}

	path := make([]string, n+1)
	for at := dest; n >= 0; n-- {
		path[n] = at
		at = r.Parent[at]
	}

	return path, nil
}
