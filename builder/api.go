// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// api.go - Build orchestrator and the draft shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveplan/core"
)

// Constructor adds locations and edges to the draft.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(d *draft, cfg builderConfig) error

// draft accumulates locations in insertion order.
type draft struct {
	order []string
	locs  map[string]*core.Location
}

// location returns the draft entry for index i, creating it on first use.
func (d *draft) location(i int, cfg builderConfig) (*core.Location, error) {
	id := cfg.idFn(i)
	if loc, ok := d.locs[id]; ok {
		return loc, nil
	}
	rate := cfg.rateFn(i, cfg.rng)
	if rate < 0 {
		return nil, fmt.Errorf("location %q rate=%d: %w", id, rate, ErrNegativeRate)
	}
	loc := &core.Location{ID: id, Rate: rate}
	d.locs[id] = loc
	d.order = append(d.order, id)

	return loc, nil
}

// link joins indices i and j. The graph is symmetrised on freeze.
func (d *draft) link(i, j int, cfg builderConfig) error {
	a, err := d.location(i, cfg)
	if err != nil {
		return err
	}
	b, err := d.location(j, cfg)
	if err != nil {
		return err
	}
	a.Neighbors = append(a.Neighbors, b.ID)

	return nil
}

// Build runs cons in order on a fresh draft and returns the frozen graph.
// Any constructor error is wrapped as "Build: %w".
func Build(opts []Option, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	d := &draft{locs: make(map[string]*core.Location)}

	for _, con := range cons {
		if err := con(d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	locs := make([]core.Location, 0, len(d.order))
	for _, id := range d.order {
		locs = append(locs, *d.locs[id])
	}
	g, err := core.NewGraph(locs, core.WithSymmetrize())
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}
