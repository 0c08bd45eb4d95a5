// Package core defines the Location and Graph types that every other
// valveplan package reads from.
//
// A Graph G = (V,E) is a static network of locations:
//
//   - Each Location has a unique ID, a non-negative reward Rate
//     (reward per remaining minute once activated) and a set of neighbors.
//   - Edges are undirected and have an implicit traversal cost of one minute.
//   - The Graph is built once by NewGraph and is read-only afterwards, so it
//     can be shared between goroutines without locking.
//
// Options:
//
//	– WithSymmetrize()
//	    Mirrors every listed edge. Without it, an edge A→B with no B→A
//	    is rejected with ErrAsymmetricEdge.
//
// Determinism:
//
//	IDs() and Neighbors() return sorted copies, so every consumer that
//	enumerates a Graph sees the same order on every run.
//
// Errors:
//
//	ErrEmptyID           - a location has an empty ID.
//	ErrDuplicateLocation - two locations share an ID.
//	ErrNegativeRate      - a location has a negative reward rate.
//	ErrUnknownNeighbor   - an edge references an ID that is not a location.
//	ErrSelfLoop          - a location lists itself as a neighbor.
//	ErrAsymmetricEdge    - an edge is listed in one direction only.
//	ErrLocationNotFound  - a lookup referenced a missing location.
package core
