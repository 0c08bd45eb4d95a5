package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Unreachable marks a pair with no path. Two Unreachable values still sum
// below math.MaxInt, so relaxations never overflow.
const Unreachable = math.MaxInt / 4

// Distances is a square, row-major table of shortest hop counts.
type Distances struct {
	n    int
	data []int
}

// NewDistances returns an n×n table with 0 on the diagonal and Unreachable elsewhere.
// Complexity: O(n²).
func NewDistances(n int) (*Distances, error) {
	if n <= 0 {
		return nil, matrixErrorf("NewDistances", ErrBadShape)
	}
	d := &Distances{n: n, data: make([]int, n*n)}
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			if i != j {
				d.data[base+j] = Unreachable
			}
		}
	}

	return d, nil
}

// Order returns n.
func (d *Distances) Order() int { return d.n }

func (d *Distances) index(i, j int) (int, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, d.n, d.n, ErrOutOfRange)
	}

	return i*d.n + j, nil
}

// At returns the distance from i to j.
func (d *Distances) At(i, j int) (int, error) {
	k, err := d.index(i, j)
	if err != nil {
		return 0, matrixErrorf("At", err)
	}

	return d.data[k], nil
}

// Set stores v at (i,j). Values above Unreachable are clamped to it.
func (d *Distances) Set(i, j, v int) error {
	k, err := d.index(i, j)
	if err != nil {
		return matrixErrorf("Set", err)
	}
	if v < 0 {
		return matrixErrorf("Set", ErrNegative)
	}
	if v > Unreachable {
		v = Unreachable
	}
	d.data[k] = v

	return nil
}

// Hop returns the distance from i to j without bounds checks.
// It is the hot-path accessor for callers that validated indices up front.
func (d *Distances) Hop(i, j int) int { return d.data[i*d.n+j] }

// Reachable reports whether j can be reached from i.
func (d *Distances) Reachable(i, j int) bool {
	v, err := d.At(i, j)

	return err == nil && v < Unreachable
}

// Clone returns a deep copy.
func (d *Distances) Clone() *Distances {
	out := &Distances{n: d.n, data: make([]int, len(d.data))}
	copy(out.data, d.data)

	return out
}

// String renders the table row by row, "∞" for Unreachable.
func (d *Distances) String() string {
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v := d.data[i*d.n+j]; v >= Unreachable {
				sb.WriteString("∞")
			} else {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
