// Package planner - entry points for single- and dual-agent activation planning.
//
// This package ties the pipeline together:
//
//   - matrix.Resolve turns the network into all-pairs travel times.
//   - reward.NewIndex assigns a bit to every reward-bearing location.
//   - search.Run explores activation orders and fills the state table.
//   - combine.Best picks the best disjoint pair of table entries.
//
// Use SingleAgentBest and DualAgentBest for one-shot answers. Construct a
// Planner with New when the same network is queried repeatedly: distances and
// the index are resolved once and shared, read-only, by every query.
//
// Concurrency:
//
//	A Planner is safe for concurrent use. Each query owns its state table.
//	EachStart fans independent searches out over a bounded worker group.
//
// Defaults:
//
//	DefaultStart "AA", DefaultBudget 30, DefaultDualBudget 26 (the budget
//	left to each agent after the four minutes spent training the second one).
package planner
