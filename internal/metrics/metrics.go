// Package metrics exports search statistics to Prometheus.
//
// Collector implements search.Collector; register it on any
// prometheus.Registerer and gather or dump it as usual.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/valveplan/search"
)

const namespace = "valveplan"

// Collector records search runs as Prometheus metrics.
type Collector struct {
	runs      *prometheus.CounterVec
	states    prometheus.Counter
	pruned    prometheus.Counter
	tableSize prometheus.Histogram
	best      prometheus.Gauge
	duration  prometheus.Histogram
}

// New creates a Collector and registers its metrics on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Search runs by outcome.",
		}, []string{"outcome"}),
		states: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "states_total",
			Help:      "Search states visited.",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "pruned_total",
			Help:      "Targets pruned as unreachable or out of time.",
		}),
		tableSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "table_masks",
			Help:      "Distinct activation masks recorded per run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		best: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "best_reward",
			Help:      "Best reward of the most recent successful run.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time per search run.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}

	var err error
	if c.runs, err = register(reg, c.runs); err != nil {
		return nil, err
	}
	if c.states, err = register(reg, c.states); err != nil {
		return nil, err
	}
	if c.pruned, err = register(reg, c.pruned); err != nil {
		return nil, err
	}
	if c.tableSize, err = register(reg, c.tableSize); err != nil {
		return nil, err
	}
	if c.best, err = register(reg, c.best); err != nil {
		return nil, err
	}
	if c.duration, err = register(reg, c.duration); err != nil {
		return nil, err
	}

	return c, nil
}

// register adds m to reg, reusing an identical metric that is already registered.
func register[T prometheus.Collector](reg prometheus.Registerer, m T) (T, error) {
	if err := reg.Register(m); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return m, err
	}

	return m, nil
}

// RecordSearch implements search.Collector.
func (c *Collector) RecordSearch(s search.Stats, d time.Duration, err error) {
	c.duration.Observe(d.Seconds())
	if err != nil {
		c.runs.WithLabelValues("error").Inc()
		return
	}
	c.runs.WithLabelValues("ok").Inc()
	c.states.Add(float64(s.States))
	c.pruned.Add(float64(s.Pruned))
	c.tableSize.Observe(float64(s.TableSize))
	c.best.Set(float64(s.Best))
}

var _ search.Collector = (*Collector)(nil)
