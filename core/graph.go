// SPDX-License-Identifier: MIT
// Package: valveplan/core
//
// graph.go - construction and read-only accessors of Graph.
//
// Contract:
//   - NewGraph validates every location before building anything.
//   - After construction nothing mutates the Graph; accessors return copies.
//
// Complexity:
//   - NewGraph: O(V log V + E log E) for sorting IDs and neighbor lists.
//   - Has/Rate: O(1). Neighbors: O(deg). IDs: O(V).

package core

import (
	"fmt"
	"sort"
)

// NewGraph builds a Graph from locs.
//
// Stages:
//  1. Index locations, rejecting empty IDs, duplicates and negative rates.
//  2. Collect edges into per-location sets (duplicate listings collapse),
//     rejecting self-loops and unknown endpoints; mirror them if WithSymmetrize.
//  3. Without WithSymmetrize, verify every edge is listed in both directions.
//  4. Freeze: sort IDs and neighbor lists.
func NewGraph(locs []Location, opts ...Option) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rates := make(map[string]int, len(locs))
	for _, loc := range locs {
		if loc.ID == "" {
			return nil, ErrEmptyID
		}
		if _, dup := rates[loc.ID]; dup {
			return nil, fmt.Errorf("NewGraph: %q: %w", loc.ID, ErrDuplicateLocation)
		}
		if loc.Rate < 0 {
			return nil, fmt.Errorf("NewGraph: %q rate=%d: %w", loc.ID, loc.Rate, ErrNegativeRate)
		}
		rates[loc.ID] = loc.Rate
	}

	sets := make(map[string]map[string]struct{}, len(locs))
	for id := range rates {
		sets[id] = make(map[string]struct{})
	}
	for _, loc := range locs {
		for _, nb := range loc.Neighbors {
			if nb == loc.ID {
				return nil, fmt.Errorf("NewGraph: %q: %w", loc.ID, ErrSelfLoop)
			}
			if _, ok := rates[nb]; !ok {
				return nil, fmt.Errorf("NewGraph: %q→%q: %w", loc.ID, nb, ErrUnknownNeighbor)
			}
			sets[loc.ID][nb] = struct{}{}
			if cfg.symmetrize {
				sets[nb][loc.ID] = struct{}{}
			}
		}
	}

	if !cfg.symmetrize {
		for from, set := range sets {
			for to := range set {
				if _, ok := sets[to][from]; !ok {
					return nil, fmt.Errorf("NewGraph: %q→%q: %w", from, to, ErrAsymmetricEdge)
				}
			}
		}
	}

	g := &Graph{
		ids:   make([]string, 0, len(rates)),
		rates: rates,
		adj:   make(map[string][]string, len(rates)),
	}
	half := 0
	for id, set := range sets {
		g.ids = append(g.ids, id)
		nbs := make([]string, 0, len(set))
		for nb := range set {
			nbs = append(nbs, nb)
		}
		sort.Strings(nbs)
		g.adj[id] = nbs
		half += len(nbs)
	}
	sort.Strings(g.ids)
	g.edges = half / 2

	return g, nil
}

// Len returns the number of locations.
func (g *Graph) Len() int { return len(g.ids) }

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int { return g.edges }

// IDs returns all location IDs in ascending order.
// The order is the canonical dense index used by matrix.Resolve and reward.NewIndex.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Has reports whether id is a location of g.
func (g *Graph) Has(id string) bool {
	_, ok := g.rates[id]

	return ok
}

// Rate returns the reward rate of id, or ErrLocationNotFound.
func (g *Graph) Rate(id string) (int, error) {
	r, ok := g.rates[id]
	if !ok {
		return 0, fmt.Errorf("Rate(%q): %w", id, ErrLocationNotFound)
	}

	return r, nil
}

// Neighbors returns a sorted copy of the neighbors of id, or ErrLocationNotFound.
func (g *Graph) Neighbors(id string) ([]string, error) {
	nbs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrLocationNotFound)
	}
	out := make([]string, len(nbs))
	copy(out, nbs)

	return out, nil
}

// Location returns a snapshot of id as a Location value.
func (g *Graph) Location(id string) (Location, error) {
	r, ok := g.rates[id]
	if !ok {
		return Location{}, fmt.Errorf("Location(%q): %w", id, ErrLocationNotFound)
	}
	nbs, _ := g.Neighbors(id)

	return Location{ID: id, Rate: r, Neighbors: nbs}, nil
}

// Locations returns every location in IDs() order.
func (g *Graph) Locations() []Location {
	out := make([]Location, 0, len(g.ids))
	for _, id := range g.ids {
		loc, _ := g.Location(id)
		out = append(out, loc)
	}

	return out
}

// ScoredCount returns how many locations have a positive rate.
func (g *Graph) ScoredCount() int {
	n := 0
	for _, r := range g.rates {
		if r > 0 {
			n++
		}
	}

	return n
}
