// Package testnet holds the network fixtures shared by package tests.
package testnet

import (
	"github.com/katalvlaran/valveplan/core"
)

// Listing is the canonical ten-location network in listing form.
// With a 30 minute budget one agent earns 1651; two agents with 26 minutes earn 1707.
const Listing = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// Expected optima of the canonical network.
const (
	SingleBudget = 30
	SingleBest   = 1651
	DualBudget   = 26
	DualBest     = 1707
)

// Locations returns the canonical network as Location records.
func Locations() []core.Location {
	return []core.Location{
		{ID: "AA", Rate: 0, Neighbors: []string{"DD", "II", "BB"}},
		{ID: "BB", Rate: 13, Neighbors: []string{"CC", "AA"}},
		{ID: "CC", Rate: 2, Neighbors: []string{"DD", "BB"}},
		{ID: "DD", Rate: 20, Neighbors: []string{"CC", "AA", "EE"}},
		{ID: "EE", Rate: 3, Neighbors: []string{"FF", "DD"}},
		{ID: "FF", Rate: 0, Neighbors: []string{"EE", "GG"}},
		{ID: "GG", Rate: 0, Neighbors: []string{"FF", "HH"}},
		{ID: "HH", Rate: 22, Neighbors: []string{"GG"}},
		{ID: "II", Rate: 0, Neighbors: []string{"AA", "JJ"}},
		{ID: "JJ", Rate: 21, Neighbors: []string{"II"}},
	}
}

// Sample builds the canonical network. It panics on error; the fixture is static.
func Sample() *core.Graph {
	g, err := core.NewGraph(Locations(), core.WithSymmetrize())
	if err != nil {
		panic(err)
	}

	return g
}

// Build is a test helper constructing a symmetrised graph, panicking on error.
func Build(locs ...core.Location) *core.Graph {
	g, err := core.NewGraph(locs, core.WithSymmetrize())
	if err != nil {
		panic(err)
	}

	return g
}
