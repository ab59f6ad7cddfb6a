// Package cost implements the pluggable scoring functions the growth
// engine uses to rank candidate paths: EdgeCost (sum of new edge
// weights) and PathCost (sum of every simple super-source->super-target
// path's weight once the candidate edges are grafted in).
//
// Grounded on original_source/src/alg/cost.rs's Cost trait and its two
// implementors.
package cost

import (
	"fmt"

	"github.com/katalvlaran/growdag/interactome"
	"github.com/katalvlaran/growdag/node"
	"github.com/katalvlaran/growdag/partialdag"
)

// Function scores a candidate path (a sequence of node.IDs to be added
// to dag) using main's edge weights. It is called "relative cost"
// because only the cost of the new material is returned, not the DAG's
// total cost — the Rust doc comment on Cost notes implementors are
// usually backed by a cache so repeated calls across an iteration can
// reuse partial work; Function implementations here are structs for the
// same reason, even though neither ships a cache field yet.
type Function interface {
	RelativeCostOf(main *interactome.Interactome[float64], dag *partialdag.PartialDag[float64], nodes []node.ID) (float64, error)
}

// EdgeCost sums the weight of every edge in nodes (consecutive pairs)
// that the DAG does not already contain.
type EdgeCost struct{}

func (EdgeCost) RelativeCostOf(main *interactome.Interactome[float64], dag *partialdag.PartialDag[float64], nodes []node.ID) (float64, error) {
	var added float64
	for i := 0; i+1 < len(nodes); i++ {
		source, target := nodes[i], nodes[i+1]
		if dag.Network.HasEdge(source, target) {
			continue
		}

		weight, ok := main.Network.EdgePayload(source, target)
		if !ok {
			return 0, fmt.Errorf("cost: EdgeCost: dag is not a subgraph of the main interactome: missing edge %s->%s", source, target)
		}
		added += weight
	}

	return added, nil
}

// PathCost clones dag, grafts every (nodes[i], nodes[i+1]) edge into the
// clone, then enumerates every simple super-source->super-target path in
// the result (no length cap, matching original_source's documented
// scalability caveat) and sums the main interactome's edge weight along
// each one.
type PathCost struct{}

func (PathCost) RelativeCostOf(main *interactome.Interactome[float64], dag *partialdag.PartialDag[float64], nodes []node.ID) (float64, error) {
	grafted := dag.Network.Clone()
	for i := 0; i+1 < len(nodes); i++ {
		grafted.AddEdge(nodes[i], nodes[i+1], 0)
	}

	var total float64
	err := allSimplePaths(grafted, node.SuperSource, node.SuperTarget, func(path []node.ID) error {
		for i := 0; i+1 < len(path); i++ {
			weight, ok := main.Network.EdgePayload(path[i], path[i+1])
			if !ok {
				return fmt.Errorf("cost: PathCost: missing main-interactome edge %s->%s along enumerated path", path[i], path[i+1])
			}
			total += weight
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}
