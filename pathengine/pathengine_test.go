package pathengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/growdag/network"
	"github.com/katalvlaran/growdag/node"
	"github.com/katalvlaran/growdag/pathengine"
)

func idOf(t *testing.T, net *network.Network[float64], name string) node.ID {
	t.Helper()
	id, err := net.GetNode(name)
	assert.NoError(t, err)

	return id
}

// TestCalculatePaths_FindsShortestPath checks the basic two-hop case:
// A->B->C costs less than the direct A->C edge.
func TestCalculatePaths_FindsShortestPath(t *testing.T) {
	net := network.New[float64]()
	a := net.AddNamedNode("A")
	b := net.AddNamedNode("B")
	c := net.AddNamedNode("C")
	net.AddEdge(a, b, 1)
	net.AddEdge(b, c, 1)
	net.AddEdge(a, c, 5)

	paths := make(pathengine.Paths)
	pathengine.CalculatePaths(paths, net, a, []node.ID{c}, nil)

	entry, ok := paths[pathengine.Key{Source: a, Dest: c}]
	assert.True(t, ok)
	assert.Equal(t, float64(2), entry.Score)

	route, ok := pathengine.ReconstructPath(paths, a, c)
	assert.True(t, ok)
	assert.Equal(t, []node.ID{a, b, c}, route)
}

// TestCalculatePaths_IgnoreBlocksRelaxationButStillRecorded checks that
// an ignored node still receives a recorded entry (so it can be removed
// from a pending-targets list) but never relays a path onward through
// it.
func TestCalculatePaths_IgnoreBlocksRelaxationButStillRecorded(t *testing.T) {
	net := network.New[float64]()
	a := net.AddNamedNode("A")
	b := net.AddNamedNode("B")
	c := net.AddNamedNode("C")
	net.AddEdge(a, b, 1)
	net.AddEdge(b, c, 1)

	paths := make(pathengine.Paths)
	ignore := map[node.ID]struct{}{b: {}}
	pathengine.CalculatePaths(paths, net, a, []node.ID{b, c}, ignore)

	_, bKnown := paths[pathengine.Key{Source: a, Dest: b}]
	assert.True(t, bKnown)

	_, cKnown := paths[pathengine.Key{Source: a, Dest: c}]
	assert.False(t, cKnown)
}

// TestCalculatePaths_StopsOnceTargetsExhausted checks the early
// termination: once every pending target is popped, unrelated parts of
// the graph are left unexplored.
func TestCalculatePaths_StopsOnceTargetsExhausted(t *testing.T) {
	net := network.New[float64]()
	a := net.AddNamedNode("A")
	b := net.AddNamedNode("B")
	unrelated := net.AddNamedNode("Z")
	net.AddEdge(a, b, 1)
	net.AddEdge(b, unrelated, 1)

	paths := make(pathengine.Paths)
	pathengine.CalculatePaths(paths, net, a, []node.ID{b}, nil)

	_, unrelatedKnown := paths[pathengine.Key{Source: a, Dest: unrelated}]
	assert.False(t, unrelatedKnown)
}

// TestReconstructPath_UnknownDestReturnsFalse checks the absent-entry
// case returns ok=false rather than a partial route.
func TestReconstructPath_UnknownDestReturnsFalse(t *testing.T) {
	net := network.New[float64]()
	a := net.AddNamedNode("A")
	b := net.AddNamedNode("B")

	paths := make(pathengine.Paths)
	_, ok := pathengine.ReconstructPath(paths, a, b)
	assert.False(t, ok)
}
