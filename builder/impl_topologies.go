// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// impl_topologies.go - Path, Cycle, Star and RandomSparse constructors.
//
// Contract:
//   - Locations are created in ascending index order.
//   - Edges are emitted in ascending (i, j) order.
//   - Only RandomSparse consumes the RNG for topology.

package builder

import "fmt"

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodRandomSparse = "RandomSparse"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path builds 0 - 1 - ... - (n-1).
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewLocations)
		}
		for i := 1; i < n; i++ {
			if err := d.link(i-1, i, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}

// Cycle builds Path(n) closed by (n-1) - 0.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewLocations)
		}
		if err := Path(n)(d, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		if err := d.link(n-1, 0, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return nil
	}
}

// Star joins the hub (index 0) to leaves 1..n-1.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewLocations)
		}
		for i := 1; i < n; i++ {
			if err := d.link(0, i, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}

// RandomSparse creates n locations and joins each unordered pair with probability p.
// It requires WithSeed or WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewLocations)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			if _, err := d.location(i, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodRandomSparse, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					if err := d.link(i, j, cfg); err != nil {
						return fmt.Errorf("%s: %w", methodRandomSparse, err)
					}
				}
			}
		}

		return nil
	}
}
