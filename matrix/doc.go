// Package matrix resolves a location network into a dense all-pairs
// shortest-path table.
//
// Distances is a row-major n×n table of hop counts. Pairs with no path hold
// the Unreachable sentinel, which is capped at math.MaxInt/4 so that the sum
// of two sentinels (or a sentinel plus any real distance) never overflows and
// always compares greater than any real distance.
//
// Resolve builds the table from a *core.Graph in three stages:
//
//  1. Dense index: location i is g.IDs()[i].
//  2. Init: diagonal 0, direct edges 1, everything else Unreachable.
//  3. Closure: FloydWarshall relaxes in place with fixed k → i → j order.
//
// Complexity: Time O(n³), Space O(n²). Location counts are in the tens, so a
// dense closure is simpler and faster than n BFS runs with map adjacency.
//
// Errors:
//
//	ErrGraphNil    - Resolve received a nil graph.
//	ErrBadShape    - order ≤ 0.
//	ErrOutOfRange  - At/Set index outside [0,n).
//	ErrNegative    - Set with a negative distance.
package matrix
