// Package valveplan plans the time-boxed activation of reward-bearing
// locations in a network, for one agent or for two agents working side by side.
//
// 🚀 What is valveplan?
//
//	A small pipeline of focused packages:
//		• core     – immutable network of locations, rates and neighbours
//		• matrix   – all-pairs travel times (Floyd–Warshall)
//		• reward   – bit index of the locations worth activating
//		• search   – bounded depth-first search filling a best-reward-per-set table
//		• combine  – best pair of disjoint sets for two agents
//		• planner  – SingleAgentBest / DualAgentBest and the reusable Planner
//		• ingest   – text and JSON listings, optionally gz / zst / lz4 compressed
//		• builder  – synthetic networks for tests and benchmarks
//
// ✨ How the answer is computed
//
//   - Moving costs one minute per hop; activating costs one more minute.
//   - A location activated with r minutes left earns r × rate.
//   - The search records the best reward of every activation set it visits,
//     so the dual-agent answer is a single scan for the best disjoint pair.
//
// Quick ASCII example:
//
//	    AA───BB(13)
//	    │
//	    DD(20)
//
//	From AA with 5 minutes: DD at minute 2 earns 3×20 = 60; BB is then
//	two hops away and would finish at minute 5, earning nothing more.
//
// The valveplan command (cmd/valveplan) exposes the same operations on the
// command line:
//
//	valveplan single -i network.txt --budget 30
//	valveplan dual   -i network.txt.gz --budget 26
package valveplan
