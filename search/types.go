package search

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNilInput is returned when the distance table or index is nil.
	ErrNilInput = errors.New("search: nil distances or index")

	// ErrIndexMismatch is returned when the distance table and index disagree on size.
	ErrIndexMismatch = errors.New("search: distance table does not match index")

	// ErrStartNotFound is returned when the start location is unknown.
	ErrStartNotFound = errors.New("search: start location not found")
)

// Step is one activation of a plan.
type Step struct {
	// ID of the activated location.
	ID string

	// Minute at which the activation completes, counted from the start of the budget.
	Minute int

	// Gain is the reward contributed: minutes left after activation times rate.
	Gain int
}

// Result is the outcome of Run.
type Result struct {
	// Best is the maximum cumulative reward of a single agent.
	Best int

	// Plan is an activation order achieving Best (empty when Best is 0).
	Plan []Step

	// Table holds the best reward for every reachable activation set.
	Table StateTable

	// States counts visited search states; Pruned counts targets skipped
	// because they were unreachable or out of time.
	States int64
	Pruned int64
}

// Stats summarises one Run for a Collector.
type Stats struct {
	Budget    int
	Best      int
	States    int64
	Pruned    int64
	TableSize int
}

// Collector receives statistics after each Run.
// Implement it to integrate with a monitoring system.
type Collector interface {
	RecordSearch(s Stats, d time.Duration, err error)
}

// NoopCollector discards everything.
type NoopCollector struct{}

// RecordSearch implements Collector.
func (NoopCollector) RecordSearch(Stats, time.Duration, error) {}

// Option configures Run.
type Option func(*Options)

// Options holds the configurable parameters of Run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Collector receives run statistics; defaults to NoopCollector.
	Collector Collector
}

// DefaultOptions returns Options with a background context and no collector.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Collector: NoopCollector{},
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCollector installs c. A nil collector is ignored.
func WithCollector(c Collector) Option {
	return func(o *Options) {
		if c != nil {
			o.Collector = c
		}
	}
}
