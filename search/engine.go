// SPDX-License-Identifier: MIT
// Package search — bounded depth-first activation engine.
//
// Rationale (succinct):
//  1. Inputs are validated once in Run; the recursion then uses the
//     unchecked Distances.Hop accessor.
//  2. Each call receives its full state (node, minutes left, reward, mask)
//     by value, so backtracking needs no undo step.
//  3. The table is written on entry to every state, before branching.
//  4. The current path is kept in a depth-indexed slice and copied out only
//     when a strictly better reward is found.

package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/valveplan/matrix"
	"github.com/katalvlaran/valveplan/reward"
)

// engine holds the read-only inputs and the mutable search state of one Run.
type engine struct {
	dist   *matrix.Distances
	scored []reward.Scored
	budget int
	opts   Options

	table StateTable
	path  []Step // path[0:depth] is the current activation sequence
	plan  []Step
	best  int

	states int64
	pruned int64
	err    error
}

// cancelled performs a rare context check (first state, then every 4096).
func (e *engine) cancelled() bool {
	if e.err != nil {
		return true
	}
	if (e.states-1)&4095 != 0 {
		return false
	}
	if err := e.opts.Ctx.Err(); err != nil {
		e.err = err

		return true
	}

	return false
}

// visit records the state and explores every feasible next activation.
// It returns the best cumulative reward reachable from this state.
func (e *engine) visit(cur, left, gained int, mask reward.Mask, depth int) int {
	e.states++
	if e.cancelled() {
		return gained
	}

	e.table.Record(mask, gained)
	if gained > e.best {
		e.best = gained
		e.plan = append(e.plan[:0], e.path[:depth]...)
	}

	best := gained
	var (
		s         reward.Scored
		hop, cost int
		rest      int
		sub       int
	)
	for _, s = range e.scored {
		if mask.Has(s.Bit) {
			continue
		}
		hop = e.dist.Hop(cur, s.Node)
		if hop >= matrix.Unreachable {
			e.pruned++
			continue
		}
		cost = hop + 1 // travel, then one minute to activate
		if left < cost {
			e.pruned++
			continue
		}
		rest = left - cost
		e.path[depth] = Step{ID: s.ID, Minute: e.budget - rest, Gain: rest * s.Rate}
		sub = e.visit(s.Node, rest, gained+rest*s.Rate, mask.With(s.Bit), depth+1)
		if sub > best {
			best = sub
		}
		if e.err != nil {
			break
		}
	}

	return best
}

// Run explores activation sequences from start within budget minutes.
//
// A budget ≤ 0, or a start with no reachable scored location, yields
// Best 0 and a table holding only the empty mask.
func Run(dist *matrix.Distances, idx *reward.Index, start string, budget int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	began := time.Now()
	res, err := run(dist, idx, start, budget, o)

	stats := Stats{Budget: budget}
	if res != nil {
		stats.Best = res.Best
		stats.States = res.States
		stats.Pruned = res.Pruned
		stats.TableSize = res.Table.Len()
	}
	o.Collector.RecordSearch(stats, time.Since(began), err)

	return res, err
}

func run(dist *matrix.Distances, idx *reward.Index, start string, budget int, o Options) (*Result, error) {
	if dist == nil || idx == nil {
		return nil, ErrNilInput
	}
	if dist.Order() != len(idx.IDs) {
		return nil, fmt.Errorf("Run: order %d, index %d: %w", dist.Order(), len(idx.IDs), ErrIndexMismatch)
	}
	node, ok := idx.Node[start]
	if !ok {
		return nil, fmt.Errorf("Run(%q): %w", start, ErrStartNotFound)
	}

	e := &engine{
		dist:   dist,
		scored: idx.Scored,
		budget: budget,
		opts:   o,
		table:  make(StateTable),
		path:   make([]Step, len(idx.Scored)),
	}
	best := e.visit(node, budget, 0, 0, 0)
	if e.err != nil {
		return nil, fmt.Errorf("Run(%q): %w", start, e.err)
	}

	plan := make([]Step, len(e.plan))
	copy(plan, e.plan)

	return &Result{
		Best:   best,
		Plan:   plan,
		Table:  e.table,
		States: e.states,
		Pruned: e.pruned,
	}, nil
}
