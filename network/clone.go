// File: clone.go
// Role: cloning, matching core/methods_clone.go's CloneEmpty/Clone split
// so the growth engine can cheaply snapshot a candidate graph once per
// iteration without re-parsing.
package network

import "github.com/katalvlaran/growdag/node"

// CloneEmpty returns a new Network with the same member nodes and the
// same id map (independent copy), but no edges.
//
// Complexity: O(V).
func (n *Network[E]) CloneEmpty() *Network[E] {
	n.mu.RLock()
	defer n.mu.RUnlock()

	clone := New[E]()
	clone.idMap = n.idMap.Clone()
	clone.maxID = n.maxID
	for id := range n.present {
		clone.present[id] = struct{}{}
		clone.adjacency[id] = make(map[node.ID]E)
	}

	return clone
}

// Clone returns a deep copy of n: id map, member nodes, and every edge.
//
// Complexity: O(V + E).
func (n *Network[E]) Clone() *Network[E] {
	clone := n.CloneEmpty()

	n.mu.RLock()
	defer n.mu.RUnlock()

	for a, targets := range n.adjacency {
		for b, payload := range targets {
			clone.adjacency[a][b] = payload
		}
	}

	return clone
}
