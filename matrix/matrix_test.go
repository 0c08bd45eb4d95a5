package matrix_test

import (
	"testing"

	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/internal/testnet"
	"github.com/katalvlaran/valveplan/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDistances_Init(t *testing.T) {
	d, err := matrix.NewDistances(3)
	require.NoError(t, err)
	require.Equal(t, 3, d.Order())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 0, v)
			} else {
				require.Equal(t, matrix.Unreachable, v)
			}
		}
	}

	_, err = matrix.NewDistances(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDistances_Bounds(t *testing.T) {
	d, err := matrix.NewDistances(2)
	require.NoError(t, err)

	_, err = d.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 1, -1), matrix.ErrNegative)

	require.NoError(t, d.Set(0, 1, matrix.Unreachable*3))
	v, _ := d.At(0, 1)
	require.Equal(t, matrix.Unreachable, v)
	require.False(t, d.Reachable(0, 1))
}

func TestFloydWarshall_Chain(t *testing.T) {
	// 0 - 1 - 2 - 3, and an isolated 4
	d, err := matrix.NewDistances(5)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		require.NoError(t, d.Set(e[0], e[1], 1))
		require.NoError(t, d.Set(e[1], e[0], 1))
	}
	require.NoError(t, matrix.FloydWarshall(d))

	require.Equal(t, 3, d.Hop(0, 3))
	require.Equal(t, 2, d.Hop(3, 1))
	require.Equal(t, matrix.Unreachable, d.Hop(0, 4))
	require.Equal(t, matrix.Unreachable, d.Hop(4, 2))
	require.Equal(t, 0, d.Hop(4, 4))

	require.Error(t, matrix.FloydWarshall(nil))
}

func TestResolve_Sample(t *testing.T) {
	g := testnet.Sample()
	d, index, err := matrix.Resolve(g)
	require.NoError(t, err)
	require.Equal(t, g.Len(), d.Order())

	aa := index["AA"]
	want := map[string]int{
		"AA": 0, "BB": 1, "CC": 2, "DD": 1, "EE": 2,
		"FF": 3, "GG": 4, "HH": 5, "II": 1, "JJ": 2,
	}
	for id, dist := range want {
		require.Equal(t, dist, d.Hop(aa, index[id]), "AA→%s", id)
	}
	require.Equal(t, 7, d.Hop(index["JJ"], index["HH"]))
}

func TestResolve_MetricInvariants(t *testing.T) {
	d, _, err := matrix.Resolve(testnet.Sample())
	require.NoError(t, err)

	n := d.Order()
	for i := 0; i < n; i++ {
		require.Equal(t, 0, d.Hop(i, i))
		for j := 0; j < n; j++ {
			require.Equal(t, d.Hop(i, j), d.Hop(j, i))
			for k := 0; k < n; k++ {
				require.LessOrEqual(t, d.Hop(i, j), d.Hop(i, k)+d.Hop(k, j))
			}
		}
	}
}

func TestResolve_Disconnected(t *testing.T) {
	g := testnet.Build(
		core.Location{ID: "AA", Neighbors: []string{"BB"}},
		core.Location{ID: "BB", Rate: 4},
		core.Location{ID: "CC", Rate: 9},
	)
	d, index, err := matrix.Resolve(g)
	require.NoError(t, err)
	require.True(t, d.Reachable(index["AA"], index["BB"]))
	require.False(t, d.Reachable(index["AA"], index["CC"]))

	clone := d.Clone()
	require.NoError(t, clone.Set(0, 2, 1))
	require.False(t, d.Reachable(0, 2))
	require.Contains(t, d.String(), "∞")
}

func TestResolve_Nil(t *testing.T) {
	_, _, err := matrix.Resolve(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	empty, err := core.NewGraph(nil)
	require.NoError(t, err)
	_, _, err = matrix.Resolve(empty)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
