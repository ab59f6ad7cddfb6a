package cost

import (
	"github.com/katalvlaran/growdag/network"
	"github.com/katalvlaran/growdag/node"
)

// allSimplePaths enumerates every simple (no repeated node) path from
// source to target in graph via an explicit DFS over a path stack,
// invoking visit once per discovered path. No length cap is applied,
// matching original_source's all_simple_paths(..., 0, None) call and its
// documented scalability caveat — a densely connected interactome can
// make this enumeration expensive.
//
// Grounded on dfs/cycle.go's path-stack-plus-visited-set DFS style,
// adapted here to enumerate paths to a fixed target instead of cycles
// back to the start.
func allSimplePaths(graph *network.Network[float64], source, target node.ID, visit func([]node.ID) error) error {
	onStack := make(map[node.ID]struct{})
	path := make([]node.ID, 0, 8)

	var walk func(current node.ID) error
	walk = func(current node.ID) error {
		path = append(path, current)
		onStack[current] = struct{}{}

		if current == target {
			if err := visit(append([]node.ID(nil), path...)); err != nil {
				return err
			}
		} else {
			for _, edge := range graph.NeighborsOut(current) {
				if _, visiting := onStack[edge.To]; visiting {
					continue
				}
				if err := walk(edge.To); err != nil {
					return err
				}
			}
		}

		path = path[:len(path)-1]
		delete(onStack, current)

		return nil
	}

	return walk(source)
}
