// Package reward indexes the reward-bearing locations of a network and
// encodes activation subsets as bitmasks.
//
// NewIndex assigns every location a dense index (the same g.IDs() order used
// by matrix.Resolve) and every location with a positive rate a bit position
// 0..K-1 in ascending ID order. A Mask is a uint64 where bit b set means the
// scored location with Bit == b has been activated.
//
// The index supports at most MaxScored (63) scored locations; larger inputs
// are rejected with ErrTooManyScored rather than producing aliased masks.
package reward
