// Package search implements the bounded activation search: a depth-first
// exploration of every order in which reward-bearing locations can be
// reached and activated within a time budget.
//
// What:
//
//   - Run(dist, idx, start, budget, opts...) explores from start. Moving to a
//     target and activating it costs dist(cur,target)+1 minutes; activation
//     with r minutes left earns r*rate. Targets that cannot be activated in
//     the remaining time are pruned.
//   - Every visited state (not only leaves) is recorded into a StateTable
//     keyed by activation mask, keeping the best reward seen for that exact
//     set. The dual-agent combiner depends on this completeness.
//   - Result.Best is the single-agent optimum; Result.Plan is one activation
//     order that achieves it.
//
// Determinism:
//
//	Targets are tried in reward.Index.Scored order, so Plan, Table and the
//	counters are identical across runs on identical input. Best is the
//	maximum over all orders and does not depend on that order.
//
// Complexity:
//
//   - Time: bounded by the number of feasible activation sequences, at most
//     Σ_{k≤K} K!/(K−k)! but in practice pruned hard by the budget.
//   - Memory: O(K) recursion depth plus O(M) table entries (M ≤ 2^K).
//
// Options:
//
//   - WithContext(ctx)     sparse cancellation checks (every 4096 states).
//   - WithCollector(c)     receives run statistics after each Run.
//
// Errors:
//
//   - ErrNilInput          dist or idx is nil.
//   - ErrIndexMismatch     dist order differs from the index size.
//   - ErrStartNotFound     start is not a location of the index.
//   - context errors       when the context is cancelled mid-search.
package search
