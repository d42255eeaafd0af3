// Package core defines the station route graph: an undirected, weighted
// multigraph whose vertices are station names and whose edges are routes.
//
// This file declares Edge, Adjacent, Route, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - station name is the empty string.
//	ErrVertexNotFound - requested station does not exist.
//	ErrBadWeight      - route distance is zero or negative.
//	ErrLoopNotAllowed - route from a station to itself when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided station name is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent station.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a route distance that is not a positive integer.
	ErrBadWeight = errors.New("core: weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is one inserted route between two stations.
//
// The graph stores each Edge once, and mirrors it into the adjacency
// lists of both endpoints.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the station passed first to AddEdge.
	From string

	// To is the station passed second to AddEdge.
	To string

	// Weight is the route distance; always > 0.
	Weight int64
}

// Adjacent is a single entry in a station's adjacency list.
type Adjacent struct {
	To     string // neighbouring station
	Weight int64  // distance to To
	EdgeID string // edge that produced this entry
}

// Route is one directed adjacency entry as produced by Graph.Routes.
type Route struct {
	From   string
	To     string
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (routes from a station to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory route graph.
//
// Parallel edges are always allowed and kept; the graph only grows.
// mu protects every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool

	// Storage
	nextEdgeID uint64                // edge ID generator
	edges      []*Edge               // insertion order
	adjacency  map[string][]Adjacent // station → ordered adjacency list
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]Adjacent),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
