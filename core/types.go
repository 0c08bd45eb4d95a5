package core

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyID indicates that a Location has an empty ID.
	ErrEmptyID = errors.New("core: location ID is empty")

	// ErrDuplicateLocation indicates that two locations share the same ID.
	ErrDuplicateLocation = errors.New("core: duplicate location")

	// ErrNegativeRate indicates a reward rate below zero.
	ErrNegativeRate = errors.New("core: negative reward rate")

	// ErrUnknownNeighbor indicates an edge to an ID that is not a location.
	ErrUnknownNeighbor = errors.New("core: unknown neighbor")

	// ErrSelfLoop indicates a location listing itself as a neighbor.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrAsymmetricEdge indicates an edge A→B without the matching B→A.
	ErrAsymmetricEdge = errors.New("core: asymmetric edge")

	// ErrLocationNotFound indicates a lookup of a location that does not exist.
	ErrLocationNotFound = errors.New("core: location not found")
)

// Location is a node of the network.
type Location struct {
	// ID uniquely identifies the location within its Graph.
	ID string

	// Rate is the reward gained per remaining minute once the location is activated.
	// Zero means the location is only a waypoint.
	Rate int

	// Neighbors lists the IDs directly reachable in one minute.
	Neighbors []string
}

// Option configures Graph construction.
type Option func(*graphConfig)

type graphConfig struct {
	symmetrize bool
}

// WithSymmetrize mirrors every listed edge so that partial listings
// (A lists B, B does not list A) still produce an undirected graph.
func WithSymmetrize() Option {
	return func(c *graphConfig) { c.symmetrize = true }
}

// Graph is an immutable, undirected location network.
//
// ids is sorted ascending and defines the canonical dense order used by
// the matrix and reward packages.
type Graph struct {
	ids   []string
	rates map[string]int
	adj   map[string][]string // sorted, de-duplicated neighbor IDs
	edges int                 // undirected edge count
}
