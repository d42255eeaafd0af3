// Package dijkstra defines the options, result and error types of the
// shortest-path search over the route graph.
//
// Options:
//
//	- Source:      starting station; required, must exist in the graph.
//	- ReturnPath:  also return the predecessor map.
//	- MaxDistance: stations farther than this are left at Infinity.
//
// Errors:
//
//	- ErrEmptySource     Source is "".
//	- ErrNilGraph        the graph pointer is nil.
//	- ErrVertexNotFound  Source is not a station of the graph.
//	- ErrBadMaxDistance  panic value of WithMaxDistance for negative caps.
//	- ErrNoRoute         ShortestPath found no path between the stations.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra and ShortestPath.
var (
	// ErrEmptySource indicates that no source station was given.
	ErrEmptySource = errors.New("dijkstra: source station is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source station is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source station not in graph")

	// ErrBadMaxDistance is the panic value of WithMaxDistance for negative caps.
	ErrBadMaxDistance = errors.New("dijkstra: max distance must be non-negative")

	// ErrNoRoute means dest cannot be reached from source. Stations that
	// were never inserted are unreachable too.
	ErrNoRoute = errors.New("dijkstra: no route")
)

// Infinity is the distance reported for unreachable stations.
const Infinity int64 = math.MaxInt64

// Options configures one Dijkstra run.
type Options struct {
	Source      string // required
	ReturnPath  bool   // also return the predecessor map
	MaxDistance int64  // stations farther than this stay at Infinity
}

// Option sets a field of Options.
type Option func(*Options)

// Source sets the starting station.
func Source(station string) Option {
	return func(o *Options) {
		o.Source = station
	}
}

// WithReturnPath asks Dijkstra for the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the search radius. It panics with ErrBadMaxDistance
// for negative values.
func WithMaxDistance(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadMaxDistance)
		}
		o.MaxDistance = limit
	}
}

// DefaultOptions returns uncapped options for source.
func DefaultOptions(source string) Options {
	return Options{Source: source, MaxDistance: Infinity}
}

// Path is the result of a point-to-point shortest-path query.
type Path struct {
	// Distance is the sum of route weights along Stations.
	Distance int64

	// Stations lists the stations from source to destination, inclusive.
	Stations []string
}
