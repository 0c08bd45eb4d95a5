package core_test

import (
	"testing"

	"github.com/katalvlaran/valveplan/core"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_SortedAndSymmetric(t *testing.T) {
	g, err := core.NewGraph([]core.Location{
		{ID: "CC", Rate: 2, Neighbors: []string{"BB"}},
		{ID: "AA", Rate: 0, Neighbors: []string{"BB"}},
		{ID: "BB", Rate: 13, Neighbors: []string{"CC", "AA", "AA"}},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	require.Equal(t, 2, g.Edges())
	require.Equal(t, []string{"AA", "BB", "CC"}, g.IDs())

	nbs, err := g.Neighbors("BB")
	require.NoError(t, err)
	require.Equal(t, []string{"AA", "CC"}, nbs)

	r, err := g.Rate("BB")
	require.NoError(t, err)
	require.Equal(t, 13, r)
	require.Equal(t, 2, g.ScoredCount())
}

func TestNewGraph_Symmetrize(t *testing.T) {
	locs := []core.Location{
		{ID: "AA", Neighbors: []string{"BB"}},
		{ID: "BB", Rate: 5},
	}

	_, err := core.NewGraph(locs)
	require.ErrorIs(t, err, core.ErrAsymmetricEdge)

	g, err := core.NewGraph(locs, core.WithSymmetrize())
	require.NoError(t, err)
	nbs, err := g.Neighbors("BB")
	require.NoError(t, err)
	require.Equal(t, []string{"AA"}, nbs)
}

func TestNewGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		locs []core.Location
		want error
	}{
		{"empty id", []core.Location{{ID: ""}}, core.ErrEmptyID},
		{"duplicate", []core.Location{{ID: "AA"}, {ID: "AA"}}, core.ErrDuplicateLocation},
		{"negative rate", []core.Location{{ID: "AA", Rate: -1}}, core.ErrNegativeRate},
		{"unknown neighbor", []core.Location{{ID: "AA", Neighbors: []string{"ZZ"}}}, core.ErrUnknownNeighbor},
		{"self loop", []core.Location{{ID: "AA", Neighbors: []string{"AA"}}}, core.ErrSelfLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewGraph(tc.locs, core.WithSymmetrize())
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGraph_LookupMissing(t *testing.T) {
	g, err := core.NewGraph([]core.Location{{ID: "AA"}})
	require.NoError(t, err)

	require.False(t, g.Has("BB"))
	_, err = g.Rate("BB")
	require.ErrorIs(t, err, core.ErrLocationNotFound)
	_, err = g.Neighbors("BB")
	require.ErrorIs(t, err, core.ErrLocationNotFound)
	_, err = g.Location("BB")
	require.ErrorIs(t, err, core.ErrLocationNotFound)
}

func TestGraph_AccessorsReturnCopies(t *testing.T) {
	g, err := core.NewGraph([]core.Location{
		{ID: "AA", Neighbors: []string{"BB"}},
		{ID: "BB", Rate: 1, Neighbors: []string{"AA"}},
	})
	require.NoError(t, err)

	ids := g.IDs()
	ids[0] = "mutated"
	require.Equal(t, []string{"AA", "BB"}, g.IDs())

	locs := g.Locations()
	locs[0].Neighbors[0] = "mutated"
	nbs, _ := g.Neighbors("AA")
	require.Equal(t, []string{"BB"}, nbs)
}
