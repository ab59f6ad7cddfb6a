// Package network implements the directed multigraph at the bottom of
// growdag: nodes keyed by the tagged node.ID, at most one edge per
// ordered pair, a shared string<->int id map, and a max_id watermark.
//
// Algorithms here aren't generally optimized for huge networks; they are
// tuned for growdag's specific access pattern (construct once from a
// file, clone cheaply once per growth iteration, prune/remove nodes a
// handful of times per iteration).
//
// Concurrency: like core.Graph, Network guards its adjacency and id map
// with a sync.RWMutex, even though the growth driver is single-threaded
// (see SPEC_FULL.md §5) — this keeps Clone safe to call from any future
// concurrent tooling without a data-model change.
package network

import (
	"sort"
	"sync"

	"github.com/katalvlaran/growdag/node"
)

// Direction selects which side of a node's incident edges an operation
// targets.
type Direction int

const (
	// Incoming selects edges terminating at a node.
	Incoming Direction = iota
	// Outgoing selects edges originating at a node.
	Outgoing
)

// Edge is a materialized (source, target, payload) triple, returned by
// Network.Edges for deterministic iteration.
type Edge[E any] struct {
	From    node.ID
	To      node.ID
	Payload E
}

// Network is a directed multigraph keyed by node.ID with edge payload E.
type Network[E any] struct {
	mu sync.RWMutex

	// adjacency[a][b] is the payload of the single edge a->b, if any.
	adjacency map[node.ID]map[node.ID]E
	// present tracks node membership independent of incidence, so an
	// isolated node (e.g. freshly added via AddNode, or the two super
	// endpoints before they gain edges) is still a member of the graph.
	present map[node.ID]struct{}

	idMap *IDMap
	maxID int
}

// New returns an empty Network sharing no state with any other graph.
func New[E any]() *Network[E] {
	return &Network[E]{
		adjacency: make(map[node.ID]map[node.ID]E),
		present:   make(map[node.ID]struct{}),
		idMap:     NewIDMap(),
	}
}

// IDMap exposes the network's read-only id map (callers must not mutate
// it directly after the network has been shared).
func (n *Network[E]) IDMap() *IDMap {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.idMap
}

// MaxID returns the largest integer id ever assigned in this network.
func (n *Network[E]) MaxID() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.maxID
}

// ensureNode records membership for id without touching adjacency.
func (n *Network[E]) ensureNode(id node.ID) {
	if _, ok := n.present[id]; !ok {
		n.present[id] = struct{}{}
	}
	if _, ok := n.adjacency[id]; !ok {
		n.adjacency[id] = make(map[node.ID]E)
	}
}

// RegisterNode registers id as a member of the graph with no incident
// edges, if it isn't already. Unlike AddNode, the caller supplies id
// directly rather than receiving a freshly minted integer id — used to
// guarantee a specific node (e.g. node.SuperSource/node.SuperTarget)
// is present even when nothing has added an edge to or from it yet.
//
// Complexity: O(1).
func (n *Network[E]) RegisterNode(id node.ID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.ensureNode(id)
}

// AddNode allocates a fresh integer id (max_id + 1), registers it as a
// member of the graph, and bumps the watermark.
//
// Complexity: O(1).
func (n *Network[E]) AddNode() node.ID {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.maxID++
	id := node.Integer(n.maxID)
	n.ensureNode(id)

	return id
}

// AddNamedNode allocates a fresh integer id for name and registers the
// name<->id pair. Callers must ensure name is not already present.
func (n *Network[E]) AddNamedNode(name string) node.ID {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.maxID++
	id := n.maxID
	n.idMap.Insert(name, id)
	nid := node.Integer(id)
	n.ensureNode(nid)

	return nid
}

// AddEdge inserts or replaces the single edge a->b with payload. Both
// endpoints are registered as members if they were not already.
//
// Complexity: O(1) amortized.
func (n *Network[E]) AddEdge(a, b node.ID, payload E) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.ensureNode(a)
	n.ensureNode(b)
	n.adjacency[a][b] = payload
}

// HasEdge reports whether a->b exists.
func (n *Network[E]) HasEdge(a, b node.ID) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	targets, ok := n.adjacency[a]
	if !ok {
		return false
	}
	_, ok = targets[b]

	return ok
}

// EdgePayload returns the payload of a->b, if present.
func (n *Network[E]) EdgePayload(a, b node.ID) (E, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	targets, ok := n.adjacency[a]
	if !ok {
		var zero E

		return zero, false
	}
	payload, ok := targets[b]

	return payload, ok
}

// RemoveEdge deletes a->b, if present. It is a no-op otherwise.
func (n *Network[E]) RemoveEdge(a, b node.ID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if targets, ok := n.adjacency[a]; ok {
		delete(targets, b)
	}
}

// ContainsNode reports whether id is a member of the graph.
func (n *Network[E]) ContainsNode(id node.ID) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.present[id]

	return ok
}

// RemoveNode deletes id and every edge incident to it.
func (n *Network[E]) RemoveNode(id node.ID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.present, id)
	delete(n.adjacency, id)
	for _, targets := range n.adjacency {
		delete(targets, id)
	}
}

// IsNodeEmpty reports whether id has neither incoming nor outgoing
// edges. A node not present in the graph at all is considered empty.
func (n *Network[E]) IsNodeEmpty(id node.ID) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if targets, ok := n.adjacency[id]; ok && len(targets) > 0 {
		return false
	}
	for _, targets := range n.adjacency {
		if _, ok := targets[id]; ok {
			return false
		}
	}

	return true
}

// Nodes returns every node currently a member of the graph, sorted by
// node.ID.Less for deterministic iteration.
func (n *Network[E]) Nodes() []node.ID {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]node.ID, 0, len(n.present))
	for id := range n.present {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Edges returns every edge in the graph, sorted by (From, To) for
// deterministic iteration (mirrors core.Graph.Edges' stable-order
// guarantee, relied on by golden-style tests).
func (n *Network[E]) Edges() []Edge[E] {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Edge[E], 0)
	for a, targets := range n.adjacency {
		for b, payload := range targets {
			out = append(out, Edge[E]{From: a, To: b, Payload: payload})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From.Less(out[j].From)
		}

		return out[i].To.Less(out[j].To)
	})

	return out
}

// EdgeCount returns the total number of edges.
func (n *Network[E]) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 0
	for _, targets := range n.adjacency {
		count += len(targets)
	}

	return count
}

// NodeCount returns the total number of member nodes.
func (n *Network[E]) NodeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.present)
}

// NeighborsOut returns the outgoing edges of id as (target, payload)
// pairs, sorted by target for deterministic iteration.
func (n *Network[E]) NeighborsOut(id node.ID) []Edge[E] {
	n.mu.RLock()
	defer n.mu.RUnlock()

	targets := n.adjacency[id]
	out := make([]Edge[E], 0, len(targets))
	for to, payload := range targets {
		out = append(out, Edge[E]{From: id, To: to, Payload: payload})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To.Less(out[j].To) })

	return out
}

// GetNode resolves a gene name to its integer node.ID.
func (n *Network[E]) GetNode(name string) (node.ID, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	id, ok := n.idMap.ByName(name)
	if !ok {
		return node.ID{}, &FactoryDeclinedError{Name: name}
	}

	return node.Integer(id), nil
}

// NameOf resolves an integer node.ID back to its gene name. It returns
// false for any non-integer (sentinel) id.
func (n *Network[E]) NameOf(id node.ID) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !id.IsReal() {
		return "", false
	}

	return n.idMap.ByID(id.Int)
}

// AsNodes resolves a batch of names to node.IDs, failing on the first
// unknown name.
func (n *Network[E]) AsNodes(names []string) ([]node.ID, error) {
	out := make([]node.ID, 0, len(names))
	for _, name := range names {
		id, err := n.GetNode(name)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return out, nil
}

// Prune removes every edge incident to the named nodes in the given
// direction. If requireNodes is true, a name absent from the id map is
// an error; otherwise it is silently skipped.
func (n *Network[E]) Prune(names []string, direction Direction, requireNodes bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	type pair struct{ a, b node.ID }
	var toRemove []pair

	for _, name := range names {
		rawID, ok := n.idMap.ByName(name)
		if !ok {
			if !requireNodes {
				continue
			}

			return &FactoryDeclinedError{Name: name}
		}
		id := node.Integer(rawID)

		switch direction {
		case Outgoing:
			for to := range n.adjacency[id] {
				toRemove = append(toRemove, pair{id, to})
			}
		case Incoming:
			for from, targets := range n.adjacency {
				if _, ok := targets[id]; ok {
					toRemove = append(toRemove, pair{from, id})
				}
			}
		}
	}

	for _, p := range toRemove {
		if targets, ok := n.adjacency[p.a]; ok {
			delete(targets, p.b)
		}
	}

	return nil
}
