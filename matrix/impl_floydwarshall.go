// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) on integer hop counts, deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Unreachable means “no path”; diagonal is 0 (NewDistances guarantees both).

package matrix

const opFloydWarshall = "FloydWarshall"

// FloydWarshall closes d in place so that every entry is the shortest hop
// count between its endpoints, or Unreachable.
//
// Loop order is fixed (k → i → j). Legs through an unreachable intermediate
// are skipped before any addition, so the sentinel is never summed.
func FloydWarshall(d *Distances) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrBadShape)
	}

	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik >= Unreachable {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj >= Unreachable {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
