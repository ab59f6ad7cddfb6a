// Package pathengine implements the multi-source Dijkstra variant the
// growth engine dispatches once per DAG node each iteration: unlike a
// textbook Dijkstra, every call shares one (source, node) -> (score,
// predecessor) result map across the whole growth iteration, and a node
// can simultaneously be an early-termination target and a
// relaxation-blocking "ignore" entry.
//
// Grounded on dijkstra/dijkstra.go's container/heap runner pattern
// (nodePQ min-heap, lazy decrease-key via duplicate heap pushes, a
// visited set marking finalized nodes) and on the semantics of
// original_source/src/alg/path.rs's calculate_paths.
package pathengine

import (
	"container/heap"

	"github.com/katalvlaran/growdag/network"
	"github.com/katalvlaran/growdag/node"
)

// Key identifies a (source, destination) pair in the shared result map.
type Key struct {
	Source node.ID
	Dest   node.ID
}

// Entry is the best known score and predecessor for a Key.
type Entry struct {
	Score float64
	// HasPredecessor is false for the (source, source) entry
	// CalculatePaths seeds, and for any entry a caller records without a
	// route (growth records one per DAG node already linked to
	// node.SuperTarget).
	HasPredecessor bool
	Predecessor    node.ID
}

// Paths is the shared cross-call result map: CalculatePaths both reads
// and writes into it, so successive calls from different sources can
// build a single growth iteration's combined reachability picture.
type Paths map[Key]Entry

// CalculatePaths runs a single-source Dijkstra search from source over
// graph, writing every improved (source, node) distance into paths.
//
// targets is consumed as a mutable pending list: as soon as a popped
// node matches an entry, that entry is removed, and the search returns
// immediately once the list empties — the caller doesn't need every
// node reachable from source, only the named targets.
//
// ignore nodes still get their (source, ignore) entry recorded (and are
// removed from targets if named there), but the search never relaxes
// ignore's outgoing edges — no path is allowed to pass through it.
// The growth engine uses this to keep a Dijkstra call from routing
// through any other node already in the DAG: each one ends a path.
func CalculatePaths(paths Paths, graph *network.Network[float64], source node.ID, targets []node.ID, ignore map[node.ID]struct{}) {
	pending := make([]node.ID, len(targets))
	copy(pending, targets)

	visited := make(map[node.ID]struct{})
	pq := make(scorePQ, 0, 1)
	heap.Init(&pq)

	paths[Key{Source: source, Dest: source}] = Entry{Score: 0, HasPredecessor: false}
	heap.Push(&pq, &scoreItem{id: source, score: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*scoreItem)
		current, score := item.id, item.score

		if _, done := visited[current]; done {
			continue
		}

		if idx := indexOf(pending, current); idx >= 0 {
			pending = append(pending[:idx], pending[idx+1:]...)
			if len(pending) == 0 {
				return
			}
		}

		if _, blocked := ignore[current]; blocked {
			continue
		}

		for _, edge := range graph.NeighborsOut(current) {
			next := edge.To
			if _, done := visited[next]; done {
				continue
			}

			nextScore := score + edge.Payload
			key := Key{Source: source, Dest: next}
			existing, ok := paths[key]
			if !ok || nextScore < existing.Score {
				paths[key] = Entry{Score: nextScore, HasPredecessor: true, Predecessor: current}
				heap.Push(&pq, &scoreItem{id: next, score: nextScore})
			}
		}

		visited[current] = struct{}{}
	}
}

func indexOf(ids []node.ID, target node.ID) int {
	for i, id := range ids {
		if id == target {
			return i
		}
	}

	return -1
}

// ReconstructPath walks paths backward from dest to source via
// recorded predecessors, returning the node sequence source..dest
// inclusive. It returns false if no entry for (source, dest) exists.
func ReconstructPath(paths Paths, source, dest node.ID) ([]node.ID, bool) {
	if _, ok := paths[Key{Source: source, Dest: dest}]; !ok {
		return nil, false
	}

	var reversed []node.ID
	current := dest
	for {
		reversed = append(reversed, current)
		if current == source {
			break
		}
		e, ok := paths[Key{Source: source, Dest: current}]
		if !ok || !e.HasPredecessor {
			break
		}
		current = e.Predecessor
	}

	out := make([]node.ID, len(reversed))
	for i, id := range reversed {
		out[len(reversed)-1-i] = id
	}

	return out, true
}

// scoreItem is a (node, score) pair stored in the min-heap, mirroring
// dijkstra/dijkstra.go's nodeItem.
type scoreItem struct {
	id    node.ID
	score float64
}

// scorePQ is a min-heap of *scoreItem ordered by score ascending, using
// the same lazy-decrease-key approach as dijkstra/dijkstra.go's nodePQ:
// a shorter path to an already-queued node pushes a new entry rather
// than mutating the old one, and stale entries are dropped on pop via
// the visited set.
type scorePQ []*scoreItem

func (pq scorePQ) Len() int            { return len(pq) }
func (pq scorePQ) Less(i, j int) bool  { return pq[i].score < pq[j].score }
func (pq scorePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *scorePQ) Push(x interface{}) { *pq = append(*pq, x.(*scoreItem)) }
func (pq *scorePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
