package search

import (
	"sort"

	"github.com/katalvlaran/valveplan/reward"
)

// StateTable maps an activation mask to the best reward seen for exactly that set.
// Values only ever grow: Record never replaces a value with a smaller one.
type StateTable map[reward.Mask]int

// Record stores r for m unless a value at least as large is already present.
func (t StateTable) Record(m reward.Mask, r int) {
	if v, ok := t[m]; !ok || r > v {
		t[m] = r
	}
}

// Get returns the value for m and whether it is present.
func (t StateTable) Get(m reward.Mask) (int, bool) {
	v, ok := t[m]

	return v, ok
}

// Len returns the number of recorded masks.
func (t StateTable) Len() int { return len(t) }

// Masks returns the recorded masks in ascending order.
func (t StateTable) Masks() []reward.Mask {
	out := make([]reward.Mask, 0, len(t))
	for m := range t {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Max returns the largest recorded value (0 for an empty table).
func (t StateTable) Max() int {
	best := 0
	for _, v := range t {
		if v > best {
			best = v
		}
	}

	return best
}

// Clone returns an independent copy.
func (t StateTable) Clone() StateTable {
	out := make(StateTable, len(t))
	for m, v := range t {
		out[m] = v
	}

	return out
}

// Equal reports whether t and o hold the same entries.
func (t StateTable) Equal(o StateTable) bool {
	if len(t) != len(o) {
		return false
	}
	for m, v := range t {
		if w, ok := o[m]; !ok || w != v {
			return false
		}
	}

	return true
}
