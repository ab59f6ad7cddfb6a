// Package growth implements the per-iteration DAG growth loop: prepare
// a mutable candidate graph from the current DAG and interactome, run
// the multi-source path engine from every DAG node in topological
// order (destructively narrowing the candidate as ancestors are
// consumed), pick the cheapest resulting path under a cost.Function,
// and graft it into the DAG.
//
// Grounded on original_source/src/alg/grow.rs's produce_dag/grow pair.
package growth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/growdag/cost"
	"github.com/katalvlaran/growdag/interactome"
	"github.com/katalvlaran/growdag/network"
	"github.com/katalvlaran/growdag/node"
	"github.com/katalvlaran/growdag/partialdag"
	"github.com/katalvlaran/growdag/pathengine"
)

// Cache wraps the mutable candidate graph a single growth iteration
// destructively edits. A fresh Cache must be built from a clean
// interactome clone at the start of every iteration — edits from one
// iteration's Grow call must never leak into the next.
type Cache struct {
	candidate *network.Network[float64]
}

// NewCache seeds the candidate graph from a full clone of main's
// network, so edits here never touch main.
func NewCache(main *interactome.Interactome[float64]) *Cache {
	return &Cache{candidate: main.Network.Clone()}
}

// Result is a winning path and its relative cost under the active
// cost.Function.
type Result struct {
	Cost float64
	Path []node.ID
}

// ProduceDag runs one growth pass: it narrows cache's candidate graph by
// removing the current DAG's edges (and any node left isolated by that
// removal), then for every DAG node in topological order, removes that
// node's DAG-ancestors from the candidate and dispatches a path-engine
// search from it to every non-ancestor DAG node. Every resulting
// DAG-node-to-DAG-node path is scored by fn, and the cheapest is
// returned. A nil Result means no path could be found at all.
func ProduceDag(main *interactome.Interactome[float64], dag *partialdag.PartialDag[float64], cache *Cache, fn cost.Function) (*Result, error) {
	for _, edge := range dag.Network.Edges() {
		cache.candidate.RemoveEdge(edge.From, edge.To)
		if cache.candidate.IsNodeEmpty(edge.From) {
			cache.candidate.RemoveNode(edge.From)
		}
		if cache.candidate.IsNodeEmpty(edge.To) {
			cache.candidate.RemoveNode(edge.To)
		}
	}

	paths := make(pathengine.Paths)
	allTargets := make(map[node.ID][]node.ID)

	order, err := topologicalOrder(dag.Network)
	if err != nil {
		return nil, fmt.Errorf("growth: ProduceDag: %w", err)
	}

	dagNodes := dag.Network.Nodes()

	for _, current := range order {
		if dag.Network.HasEdge(current, node.SuperTarget) {
			paths[pathengine.Key{Source: current, Dest: node.SuperTarget}] = pathengine.Entry{Score: math.Inf(1), HasPredecessor: false}

			continue
		}

		if !cache.candidate.ContainsNode(current) {
			continue
		}

		ancestors := ancestorsOf(dag.Network, current)
		for _, ancestor := range ancestors {
			cache.candidate.RemoveNode(ancestor)
		}

		ancestorSet := make(map[node.ID]struct{}, len(ancestors))
		for _, a := range ancestors {
			ancestorSet[a] = struct{}{}
		}

		targets := make([]node.ID, 0, len(dagNodes))
		for _, n := range dagNodes {
			if n == current {
				continue
			}
			if _, excluded := ancestorSet[n]; excluded {
				continue
			}
			targets = append(targets, n)
		}

		pathengine.CalculatePaths(paths, cache.candidate, current, targets, setOf(targets))

		allTargets[current] = targets
	}

	var candidates [][]node.ID
	for source, targets := range allTargets {
		for _, target := range targets {
			path, ok := pathengine.ReconstructPath(paths, source, target)
			if !ok || len(path) < 2 {
				continue
			}
			candidates = append(candidates, path)
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	var best []node.ID
	var bestCost float64
	for i, candidate := range candidates {
		c, err := fn.RelativeCostOf(main, dag, candidate)
		if err != nil {
			return nil, fmt.Errorf("growth: ProduceDag: scoring candidate: %w", err)
		}
		if i == 0 || c < bestCost {
			best, bestCost = candidate, c
		}
	}

	return &Result{Cost: bestCost, Path: best}, nil
}

// Grow runs ProduceDag and, if a path was found, grafts it into dag by
// adding every consecutive edge with a zero payload (the DAG's payload
// type carries no weight of its own — see spec.md §3).
func Grow(main *interactome.Interactome[float64], dag *partialdag.PartialDag[float64], cache *Cache, fn cost.Function) (*Result, error) {
	result, err := ProduceDag(main, dag, cache, fn)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	for i := 0; i+1 < len(result.Path); i++ {
		dag.Network.AddEdge(result.Path[i], result.Path[i+1], 0)
	}

	return result, nil
}

func setOf(ids []node.ID) map[node.ID]struct{} {
	set := make(map[node.ID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
