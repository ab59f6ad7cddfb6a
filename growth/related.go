package growth

import (
	"errors"

	"github.com/katalvlaran/growdag/network"
	"github.com/katalvlaran/growdag/node"
)

// color marks a node's three-state DFS visitation status, mirroring
// dfs/topological.go's White/Gray/Black state map.
type color uint8

const (
	white color = iota
	gray
	black
)

// ErrCycleDetected mirrors dfs/topological.go's sentinel: a PartialDag
// is guaranteed acyclic at construction, so this should be unreachable
// in practice; it exists to fail loudly instead of silently mis-sorting
// if that invariant is ever violated by a future caller.
var ErrCycleDetected = errors.New("growth: cycle detected computing topological order")

// topologicalOrder returns dag's nodes ordered so that every edge u->v
// has u appear before v, via the same three-color DFS pattern as
// dfs/topological.go, generalized to node.ID.
func topologicalOrder[E any](dag *network.Network[E]) ([]node.ID, error) {
	state := make(map[node.ID]color)
	order := make([]node.ID, 0, dag.NodeCount())

	var visit func(id node.ID) error
	visit = func(id node.ID) error {
		switch state[id] {
		case gray:
			return ErrCycleDetected
		case black:
			return nil
		}

		state[id] = gray
		for _, edge := range dag.NeighborsOut(id) {
			if err := visit(edge.To); err != nil {
				return err
			}
		}
		state[id] = black
		order = append(order, id)

		return nil
	}

	for _, id := range dag.Nodes() {
		if state[id] == white {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order into topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// ancestorsOf returns every node from which target is reachable via
// directed edges in dag, excluding target itself, in no particular
// order. Grounded on original_source/src/util.rs's get_ancestors;
// reimplemented as a direct predecessor-direction DFS rather than
// replicating get_related's Dfs-over-Reversed-view call (Go's
// network.Network has no equivalent reversed-view adapter to wrap).
func ancestorsOf[E any](dag *network.Network[E], target node.ID) []node.ID {
	visited := make(map[node.ID]struct{})
	var out []node.ID

	// predecessorsOf has no direct Network method; scan all edges once
	// to build a reverse-adjacency view, since DAGs here are small
	// (one per growth call, rebuilt each iteration).
	predecessors := make(map[node.ID][]node.ID)
	for _, edge := range dag.Edges() {
		predecessors[edge.To] = append(predecessors[edge.To], edge.From)
	}

	var walk func(id node.ID)
	walk = func(id node.ID) {
		for _, p := range predecessors[id] {
			if _, seen := visited[p]; seen {
				continue
			}
			visited[p] = struct{}{}
			out = append(out, p)
			walk(p)
		}
	}
	walk(target)

	return out
}

// descendantsOf returns every node reachable from source via directed
// edges in dag, excluding source itself. Unlike ancestorsOf, it is not
// exercised by the growth loop (only ancestorsOf is — see
// original_source/src/alg/grow.rs), but is kept as a supporting utility
// since original_source ships its mirror image (get_descendents).
func descendantsOf[E any](dag *network.Network[E], source node.ID) []node.ID {
	visited := make(map[node.ID]struct{})
	var out []node.ID

	var walk func(id node.ID)
	walk = func(id node.ID) {
		for _, edge := range dag.NeighborsOut(id) {
			if _, seen := visited[edge.To]; seen {
				continue
			}
			visited[edge.To] = struct{}{}
			out = append(out, edge.To)
			walk(edge.To)
		}
	}
	walk(source)

	return out
}
