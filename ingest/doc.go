// Package ingest turns location listings into a *core.Graph.
//
// Two formats are understood:
//
//	Text, one location per line:
//	    Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	    Valve HH has flow rate=22; tunnel leads to valve GG
//
//	JSON:
//	    {"locations":[{"id":"AA","rate":0,"neighbors":["DD","II","BB"]}]}
//	  (a bare top-level array of location objects is accepted as well).
//
// Edges are symmetrised: a listing only needs to mention each tunnel once.
//
// Open reads a file, undoing .gz, .zst or .lz4 compression by extension and
// choosing the JSON parser for *.json names.
//
// Errors:
//
//	ErrSyntax     - a line or JSON document does not match the format (wrapped with position).
//	ErrEmpty      - the listing contains no locations.
//	core.Err*     - structural problems found while building the graph.
package ingest
