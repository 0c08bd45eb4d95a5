package planner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valveplan/combine"
	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/internal/logging"
	"github.com/katalvlaran/valveplan/matrix"
	"github.com/katalvlaran/valveplan/reward"
	"github.com/katalvlaran/valveplan/search"
)

// Defaults for the canonical scenario.
const (
	DefaultStart      = "AA"
	DefaultBudget     = 30
	DefaultDualBudget = 26
)

var (
	// ErrNilGraph is returned by New for a nil network.
	ErrNilGraph = errors.New("planner: nil graph")

	// ErrStartNotFound is returned when the start location is not in the network.
	ErrStartNotFound = search.ErrStartNotFound
)

// Report is the outcome of a single-agent query.
type Report struct {
	Start  string
	Budget int

	// Best is the maximum reward one agent collects.
	Best int

	// Plan is one activation order achieving Best.
	Plan []search.Step

	// Table maps every reachable activation set to its best reward.
	Table search.StateTable

	States  int64
	Pruned  int64
	Elapsed time.Duration
}

// DualReport is the outcome of a dual-agent query.
type DualReport struct {
	Start  string
	Budget int

	// Best is the combined reward of the two agents.
	Best int

	// Pair holds the two disjoint activation sets.
	Pair combine.Pair

	// First and Second name the locations in Pair.First and Pair.Second.
	First  []string
	Second []string

	// FirstReward and SecondReward split Best between the agents.
	FirstReward  int
	SecondReward int

	TableSize int
	States    int64
	Elapsed   time.Duration
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger installs l; nil is ignored.
func WithLogger(l logging.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithCollector forwards search statistics to c; nil is ignored.
func WithCollector(c search.Collector) Option {
	return func(p *Planner) {
		if c != nil {
			p.collector = c
		}
	}
}

// Planner answers activation queries over one resolved network.
type Planner struct {
	dist  *matrix.Distances
	index *reward.Index

	log       logging.Logger
	collector search.Collector
}

// New resolves g once and returns a Planner over it.
//
// Complexity: O(V³) for the distance table.
func New(g *core.Graph, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	p := &Planner{
		log:       logging.NewNop(),
		collector: search.NoopCollector{},
	}
	for _, fn := range opts {
		fn(p)
	}

	dist, _, err := matrix.Resolve(g)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	idx, err := reward.NewIndex(g)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	p.dist, p.index = dist, idx

	p.log.Debug("network resolved",
		logging.Int("locations", g.Len()),
		logging.Int("edges", g.Edges()),
		logging.Int("scored", idx.Len()),
	)

	return p, nil
}

// Index exposes the reward index, e.g. to name the masks of a table.
func (p *Planner) Index() *reward.Index { return p.index }

// Distances exposes the resolved travel-time table. It must not be modified.
func (p *Planner) Distances() *matrix.Distances { return p.dist }

func (p *Planner) search(ctx context.Context, start string, budget int) (*search.Result, error) {
	return search.Run(p.dist, p.index, start, budget,
		search.WithContext(ctx),
		search.WithCollector(p.collector),
	)
}

// Single returns the best plan of one agent starting at start with budget minutes.
func (p *Planner) Single(ctx context.Context, start string, budget int) (*Report, error) {
	began := time.Now()
	res, err := p.search(ctx, start, budget)
	if err != nil {
		p.log.Warn("single search failed", logging.String("start", start), logging.Err(err))
		return nil, err
	}

	r := &Report{
		Start:   start,
		Budget:  budget,
		Best:    res.Best,
		Plan:    res.Plan,
		Table:   res.Table,
		States:  res.States,
		Pruned:  res.Pruned,
		Elapsed: time.Since(began),
	}
	p.log.Info("single search done",
		logging.String("start", start),
		logging.Int("budget", budget),
		logging.Int("best", r.Best),
		logging.Int64("states", r.States),
		logging.Int("masks", r.Table.Len()),
		logging.Duration("elapsed", r.Elapsed),
	)

	return r, nil
}

// Dual returns the best combined reward of two agents that both start at
// start with budget minutes each and never activate the same location.
//
// One search fills the state table; the combiner then pairs disjoint entries.
func (p *Planner) Dual(ctx context.Context, start string, budget int) (*DualReport, error) {
	began := time.Now()
	res, err := p.search(ctx, start, budget)
	if err != nil {
		p.log.Warn("dual search failed", logging.String("start", start), logging.Err(err))
		return nil, err
	}

	pair := combine.Best(res.Table)
	first, _ := res.Table.Get(pair.First)
	second, _ := res.Table.Get(pair.Second)
	r := &DualReport{
		Start:        start,
		Budget:       budget,
		Best:         pair.Reward,
		Pair:         pair,
		First:        p.index.Names(pair.First),
		Second:       p.index.Names(pair.Second),
		FirstReward:  first,
		SecondReward: second,
		TableSize:    res.Table.Len(),
		States:       res.States,
		Elapsed:      time.Since(began),
	}
	p.log.Info("dual search done",
		logging.String("start", start),
		logging.Int("budget", budget),
		logging.Int("best", r.Best),
		logging.Strings("first", r.First),
		logging.Strings("second", r.Second),
		logging.Int("masks", r.TableSize),
		logging.Duration("elapsed", r.Elapsed),
	)

	return r, nil
}

// EachStart runs a single-agent query from every start in parallel, at most
// workers at a time (workers < 1 means GOMAXPROCS). Reports are returned in
// the order of starts. The first failure cancels the remaining queries.
func (p *Planner) EachStart(ctx context.Context, starts []string, budget, workers int) ([]*Report, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]*Report, len(starts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, start := range starts {
		i, start := i, start
		g.Go(func() error {
			r, err := p.Single(gctx, start, budget)
			if err != nil {
				return err
			}
			out[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// SingleAgentBest returns the maximum reward one agent collects from start
// within budget minutes. A budget ≤ 0 yields 0.
func SingleAgentBest(g *core.Graph, start string, budget int) (int, error) {
	p, err := New(g)
	if err != nil {
		return 0, err
	}
	r, err := p.Single(context.Background(), start, budget)
	if err != nil {
		return 0, err
	}

	return r.Best, nil
}

// DualAgentBest returns the maximum combined reward of two agents starting
// at start, each with reducedBudget minutes, activating disjoint locations.
func DualAgentBest(g *core.Graph, start string, reducedBudget int) (int, error) {
	p, err := New(g)
	if err != nil {
		return 0, err
	}
	r, err := p.Dual(context.Background(), start, reducedBudget)
	if err != nil {
		return 0, err
	}

	return r.Best, nil
}
