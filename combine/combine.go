// Package combine finds the best pair of disjoint activation sets in a
// search.StateTable, modelling two agents that work in parallel under the
// same reduced budget and never activate the same location.
//
// Best sorts the table by reward (descending, mask ascending on ties) and
// scans pairs i ≤ j, stopping a row as soon as no later partner can beat the
// incumbent. The result equals the exhaustive O(M²) maximum returned by
// Exhaustive; only the amount of work differs.
//
// Complexity: O(M log M + P) where P ≤ M² is the number of pairs examined.
package combine

import (
	"sort"

	"github.com/katalvlaran/valveplan/reward"
	"github.com/katalvlaran/valveplan/search"
)

// Pair is a combination of two disjoint activation sets.
// First & Second == 0 always holds.
type Pair struct {
	First  reward.Mask
	Second reward.Mask
	Reward int
}

type entry struct {
	mask   reward.Mask
	reward int
}

// sorted returns the table entries by reward descending, mask ascending.
func sorted(t search.StateTable) []entry {
	out := make([]entry, 0, len(t))
	for m, r := range t {
		out = append(out, entry{mask: m, reward: r})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].reward != out[j].reward {
			return out[i].reward > out[j].reward
		}

		return out[i].mask < out[j].mask
	})

	return out
}

// Best returns the disjoint pair with the largest combined reward.
// An empty table, or one holding only the empty mask, yields Pair{}.
func Best(t search.StateTable) Pair {
	es := sorted(t)

	var best Pair
	found := false
	for i := 0; i < len(es); i++ {
		// Partners before i were tried in their own rows; the best partner
		// left for row i is es[i] itself.
		if found && 2*es[i].reward <= best.Reward {
			break
		}
		for j := i; j < len(es); j++ {
			sum := es[i].reward + es[j].reward
			if found && sum <= best.Reward {
				break // partners only get smaller
			}
			if !es[i].mask.Disjoint(es[j].mask) {
				continue
			}
			best = Pair{First: es[i].mask, Second: es[j].mask, Reward: sum}
			found = true
			break // first disjoint partner in row i is its best
		}
	}

	return best
}

// Exhaustive is the plain O(M²) scan over every ordered pair.
// It is kept as the reference Best is checked against.
func Exhaustive(t search.StateTable) Pair {
	var best Pair
	for m1, r1 := range t {
		for m2, r2 := range t {
			if m1&m2 == 0 && r1+r2 > best.Reward {
				best = Pair{First: m1, Second: m2, Reward: r1 + r2}
			}
		}
	}

	return best
}
