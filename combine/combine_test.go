package combine_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/valveplan/combine"
	"github.com/katalvlaran/valveplan/internal/testnet"
	"github.com/katalvlaran/valveplan/matrix"
	"github.com/katalvlaran/valveplan/reward"
	"github.com/katalvlaran/valveplan/search"
	"github.com/stretchr/testify/require"
)

func TestBest_Sample26(t *testing.T) {
	g := testnet.Sample()
	d, _, err := matrix.Resolve(g)
	require.NoError(t, err)
	idx, err := reward.NewIndex(g)
	require.NoError(t, err)

	res, err := search.Run(d, idx, "AA", testnet.DualBudget)
	require.NoError(t, err)

	p := combine.Best(res.Table)
	require.Equal(t, testnet.DualBest, p.Reward)
	require.True(t, p.First.Disjoint(p.Second))
	require.Equal(t, combine.Exhaustive(res.Table).Reward, p.Reward)

	r1, ok := res.Table.Get(p.First)
	require.True(t, ok)
	r2, ok := res.Table.Get(p.Second)
	require.True(t, ok)
	require.Equal(t, p.Reward, r1+r2)
}

func TestBest_EmptyTables(t *testing.T) {
	require.Equal(t, combine.Pair{}, combine.Best(nil))
	require.Equal(t, combine.Pair{}, combine.Best(search.StateTable{0: 0}))
}

func TestBest_SingleEntry(t *testing.T) {
	// A lone non-empty mask pairs with the empty one.
	p := combine.Best(search.StateTable{0: 0, 0b1: 9})
	require.Equal(t, combine.Pair{First: 0b1, Second: 0, Reward: 9}, p)
}

func TestBest_PrefersDisjointOverLargest(t *testing.T) {
	tab := search.StateTable{
		0:      0,
		0b0011: 100, // overlaps with both others
		0b0110: 60,
		0b1001: 55,
		0b0100: 40,
		0b1000: 30,
	}
	p := combine.Best(tab)
	// 0b0011+0b0100 = 140 and 0b0011+0b1000 = 130 share no bit; 0b0110+0b1001 = 115.
	require.Equal(t, 140, p.Reward)
	require.True(t, p.First.Disjoint(p.Second))
}

func TestBest_MatchesExhaustiveRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		tab := search.StateTable{0: 0}
		n := 1 + rng.Intn(40)
		for i := 0; i < n; i++ {
			tab.Record(reward.Mask(rng.Intn(1<<8)), rng.Intn(500))
		}
		p := combine.Best(tab)
		require.Equal(t, combine.Exhaustive(tab).Reward, p.Reward, "round %d", round)
		require.True(t, p.First.Disjoint(p.Second))
	}
}
