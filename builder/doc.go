// Package builder generates deterministic synthetic location networks for
// tests, benchmarks and examples.
//
// Build(opts, cons...) resolves the options into an immutable config, runs
// every Constructor against a shared draft in order, and freezes the draft
// into a *core.Graph (edges are symmetrised). Constructors that name the
// same location ID extend it instead of duplicating it, so topologies can be
// layered: Path(n) followed by RandomSparse(n, p) yields a connected random
// network.
//
// Topologies:
//
//	Path(n)            0 - 1 - ... - (n-1)
//	Cycle(n)           Path(n) plus (n-1) - 0
//	Star(n)            hub idFn(0) joined to every leaf 1..n-1
//	RandomSparse(n,p)  each unordered pair joined with probability p
//
// Options:
//
//	WithIDScheme(fn)   index → location ID (default decimal "0","1",...).
//	WithRateFn(fn)     index → reward rate (default 1 for every location but index 0).
//	WithSeed(seed)     seeded RNG for RandomSparse and rate functions.
//	WithRand(r)        caller-owned RNG.
//
// Determinism: the same options, seed and constructor order produce the
// same graph.
package builder
