// Package partialdag wraps an interactome.Interactome in a guarantee,
// checked once at construction time, that its node-induced subgraph is
// acyclic. Growth never adds an edge that would violate this guarantee
// (see growth.Grow), so the check only ever needs to run once.
package partialdag

import (
	"errors"

	"github.com/katalvlaran/growdag/interactome"
	"github.com/katalvlaran/growdag/network"
	"github.com/katalvlaran/growdag/node"
)

// ErrCyclic is returned by New when the supplied seed DAG is not
// actually acyclic.
var ErrCyclic = errors.New("partialdag: seed graph has cycles")

// PartialDag is an Interactome known to be acyclic. Only a subgraph of
// the interactome is guaranteed acyclic — the subgraph reachable via
// the currently-attached DAG edges — and that subgraph may be empty.
type PartialDag[E any] struct {
	*interactome.Interactome[E]
}

// New attaches sources and targets to net (tolerating unknown
// source/target names, unlike interactome.Attach's strict mode — a seed
// DAG's declared endpoints may legitimately fall outside the parsed
// network) and verifies the result has no cycles.
func New[E any](net *network.Network[E], sources, targets []string) (*PartialDag[E], error) {
	it, err := interactome.Attach(net, sources, targets, false)
	if err != nil {
		return nil, err
	}

	if isCyclic(it.Network) {
		return nil, ErrCyclic
	}

	return &PartialDag[E]{Interactome: it}, nil
}

// color marks a node's three-state DFS visitation status.
type color uint8

const (
	white color = iota
	gray
	black
)

// isCyclic runs a standard three-color DFS cycle check over every node
// in net (adapted from dfs/cycle.go's state-map pattern, generalized to
// node.ID and simplified to a boolean verdict — PartialDag only needs to
// know whether a cycle exists, not reconstruct it).
func isCyclic[E any](net *network.Network[E]) bool {
	state := make(map[node.ID]color)

	var visit func(id node.ID) bool
	visit = func(id node.ID) bool {
		state[id] = gray
		for _, edge := range net.NeighborsOut(id) {
			switch state[edge.To] {
			case white:
				if visit(edge.To) {
					return true
				}
			case gray:
				return true
			}
		}
		state[id] = black

		return false
	}

	for _, id := range net.Nodes() {
		if state[id] == white {
			if visit(id) {
				return true
			}
		}
	}

	return false
}
