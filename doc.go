// Package growdag grows a directed acyclic subgraph ("pathway") out of
// a weighted gene interactome, one best-scoring path at a time.
//
// Everything is organized under a handful of focused packages:
//
//	node/        — the tagged node identifier shared by every graph type
//	network/     — the directed multigraph and its line-oriented parser
//	interactome/ — super-source/super-target attachment over a network
//	partialdag/  — an interactome known, at construction, to be acyclic
//	weightxform/ — raw and log-transformed edge-weight parsing
//	pathengine/  — the shared multi-source Dijkstra variant growth dispatches
//	cost/        — pluggable scoring functions over a candidate path
//	growth/      — the per-iteration search-and-graft loop
//	telemetry/   — in-process Prometheus counters, logged (never served)
//	fixtures/    — synthetic interactomes for property-based tests
//	cmd/growdag/ — the cobra-based CLI entry point
//
// See cmd/growdag for the `files` and `folder` subcommands.
package growdag
