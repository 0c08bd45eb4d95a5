package search_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/internal/testnet"
	"github.com/katalvlaran/valveplan/matrix"
	"github.com/katalvlaran/valveplan/reward"
	"github.com/katalvlaran/valveplan/search"
	"github.com/stretchr/testify/require"
)

func prepare(t *testing.T, g *core.Graph) (*matrix.Distances, *reward.Index) {
	t.Helper()
	d, _, err := matrix.Resolve(g)
	require.NoError(t, err)
	idx, err := reward.NewIndex(g)
	require.NoError(t, err)

	return d, idx
}

func TestRun_Sample30(t *testing.T) {
	d, idx := prepare(t, testnet.Sample())
	res, err := search.Run(d, idx, "AA", testnet.SingleBudget)
	require.NoError(t, err)
	require.Equal(t, testnet.SingleBest, res.Best)
	require.Equal(t, res.Best, res.Table.Max())

	// The plan replays to Best with strictly increasing minutes.
	sum, last := 0, 0
	for _, s := range res.Plan {
		require.Greater(t, s.Minute, last)
		require.LessOrEqual(t, s.Minute, testnet.SingleBudget)
		last = s.Minute
		sum += s.Gain
	}
	require.Equal(t, res.Best, sum)
	require.Positive(t, res.States)
}

func TestRun_ZeroAndNegativeBudget(t *testing.T) {
	d, idx := prepare(t, testnet.Sample())
	for _, budget := range []int{0, -5} {
		res, err := search.Run(d, idx, "AA", budget)
		require.NoError(t, err)
		require.Zero(t, res.Best)
		require.Empty(t, res.Plan)
		require.Equal(t, search.StateTable{0: 0}, res.Table)
	}
}

func TestRun_MonotoneInBudget(t *testing.T) {
	d, idx := prepare(t, testnet.Sample())
	prev := 0
	for budget := 0; budget <= testnet.SingleBudget; budget++ {
		res, err := search.Run(d, idx, "AA", budget)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Best, prev, "budget %d", budget)
		v, ok := res.Table.Get(0)
		require.True(t, ok)
		require.Zero(t, v)
		prev = res.Best
	}
}

func TestRun_Deterministic(t *testing.T) {
	d, idx := prepare(t, testnet.Sample())
	a, err := search.Run(d, idx, "AA", testnet.DualBudget)
	require.NoError(t, err)
	b, err := search.Run(d, idx, "AA", testnet.DualBudget)
	require.NoError(t, err)

	require.Equal(t, a.Best, b.Best)
	require.True(t, a.Table.Equal(b.Table))
	require.Equal(t, a.Plan, b.Plan)
	require.Equal(t, a.States, b.States)
}

func TestRun_SingleAdjacent(t *testing.T) {
	const rate = 7
	g := testnet.Build(
		core.Location{ID: "AA", Neighbors: []string{"BB"}},
		core.Location{ID: "BB", Rate: rate},
	)
	d, idx := prepare(t, g)
	for budget := 2; budget <= 12; budget++ {
		res, err := search.Run(d, idx, "AA", budget)
		require.NoError(t, err)
		require.Equal(t, (budget-2)*rate, res.Best, "budget %d", budget)
	}
}

func TestRun_NoScored(t *testing.T) {
	g := testnet.Build(
		core.Location{ID: "AA", Neighbors: []string{"BB"}},
		core.Location{ID: "BB"},
	)
	d, idx := prepare(t, g)
	res, err := search.Run(d, idx, "AA", 30)
	require.NoError(t, err)
	require.Zero(t, res.Best)
	require.Equal(t, search.StateTable{0: 0}, res.Table)
}

func TestRun_UnreachableTargetIgnored(t *testing.T) {
	g := testnet.Build(
		core.Location{ID: "AA", Neighbors: []string{"BB"}},
		core.Location{ID: "BB", Rate: 3},
		core.Location{ID: "ZZ", Rate: 1000},
	)
	d, idx := prepare(t, g)
	res, err := search.Run(d, idx, "AA", 10)
	require.NoError(t, err)
	require.Equal(t, 8*3, res.Best)
	require.Equal(t, 2, res.Table.Len())
}

// Every visited state is recorded, including non-terminal ones, and the
// best value per mask survives whichever order reaches it first.
func TestRun_TableCompleteness(t *testing.T) {
	g := testnet.Build(
		core.Location{ID: "AA", Neighbors: []string{"BB", "CC"}},
		core.Location{ID: "BB", Rate: 1},
		core.Location{ID: "CC", Rate: 2},
	)
	d, idx := prepare(t, g)
	res, err := search.Run(d, idx, "AA", 10)
	require.NoError(t, err)

	bb, _ := idx.Lookup("BB")
	cc, _ := idx.Lookup("CC")
	onlyBB := reward.Mask(0).With(bb.Bit)
	onlyCC := reward.Mask(0).With(cc.Bit)
	both := onlyBB | onlyCC
	require.Equal(t, search.StateTable{
		0:      0,
		onlyBB: 8,
		onlyCC: 16,
		both:   21, // CC first (16) then BB (5) beats BB first (8+10)
	}, res.Table)
	require.Equal(t, 21, res.Best)
	require.Equal(t, []string{"CC", "BB"}, []string{res.Plan[0].ID, res.Plan[1].ID})
}

func TestRun_Errors(t *testing.T) {
	d, idx := prepare(t, testnet.Sample())

	_, err := search.Run(nil, idx, "AA", 5)
	require.ErrorIs(t, err, search.ErrNilInput)
	_, err = search.Run(d, nil, "AA", 5)
	require.ErrorIs(t, err, search.ErrNilInput)
	_, err = search.Run(d, idx, "ZZ", 5)
	require.ErrorIs(t, err, search.ErrStartNotFound)

	small, err := matrix.NewDistances(2)
	require.NoError(t, err)
	_, err = search.Run(small, idx, "AA", 5)
	require.ErrorIs(t, err, search.ErrIndexMismatch)
}

func TestRun_Cancelled(t *testing.T) {
	d, idx := prepare(t, testnet.Sample())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Run(d, idx, "AA", 30, search.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

type recorder struct {
	mu    sync.Mutex
	stats []search.Stats
	errs  []error
}

func (r *recorder) RecordSearch(s search.Stats, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = append(r.stats, s)
	r.errs = append(r.errs, err)
}

func TestRun_Collector(t *testing.T) {
	d, idx := prepare(t, testnet.Sample())
	rec := &recorder{}

	res, err := search.Run(d, idx, "AA", 30, search.WithCollector(rec))
	require.NoError(t, err)
	_, err = search.Run(d, idx, "ZZ", 30, search.WithCollector(rec))
	require.Error(t, err)

	require.Len(t, rec.stats, 2)
	require.Equal(t, search.Stats{
		Budget:    30,
		Best:      res.Best,
		States:    res.States,
		Pruned:    res.Pruned,
		TableSize: res.Table.Len(),
	}, rec.stats[0])
	require.NoError(t, rec.errs[0])
	require.ErrorIs(t, rec.errs[1], search.ErrStartNotFound)
}

func TestStateTable_RecordKeepsMax(t *testing.T) {
	tab := make(search.StateTable)
	tab.Record(3, 10)
	tab.Record(3, 4)
	v, ok := tab.Get(3)
	require.True(t, ok)
	require.Equal(t, 10, v)

	tab.Record(3, 12)
	tab.Record(1, 0)
	require.Equal(t, []reward.Mask{1, 3}, tab.Masks())
	require.Equal(t, 12, tab.Max())

	c := tab.Clone()
	c.Record(1, 5)
	require.False(t, tab.Equal(c))
	require.Equal(t, 0, tab[1])
}
