package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/growdag/network"
	"github.com/katalvlaran/growdag/node"
	"github.com/katalvlaran/growdag/weightxform"
)

// TestFromLines_BasicCounts mirrors original_source's
// from_lines_len_check_cycle test: four edges over four distinct genes.
func TestFromLines_BasicCounts(t *testing.T) {
	lines := []string{
		"A\tB\t0.5",
		"B\tC\t0.5",
		"B\tD\t0.5",
		"D\tC\t0.5",
	}

	net, err := network.NewFromLines[float64](lines, weightxform.Raw{})
	assert.NoError(t, err)
	assert.Len(t, net.Nodes(), 4)
	assert.Equal(t, 4, net.EdgeCount())
	assert.Equal(t, 4, net.IDMap().Len())
}

// TestFromLines_SkipsBlankAndCommentLines ensures parsing tolerates the
// same blank-line/#-comment conventions as original_source's line filter.
func TestFromLines_SkipsBlankAndCommentLines(t *testing.T) {
	lines := []string{
		"# a comment",
		"",
		"A\tB\t1.0",
		"",
	}

	net, err := network.NewFromLines[float64](lines, weightxform.Raw{})
	assert.NoError(t, err)
	assert.Equal(t, 1, net.EdgeCount())
}

// TestFromLines_InvalidSize checks the field-count validation error.
func TestFromLines_InvalidSize(t *testing.T) {
	lines := []string{"A\tB\t1.0\textra"}

	_, err := network.NewFromLines[float64](lines, weightxform.Raw{})
	assert.Error(t, err)

	var sizeErr *network.InvalidSizeError
	assert.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 1, sizeErr.Line)
	assert.Equal(t, 4, sizeErr.Observed)
	assert.Equal(t, 3, sizeErr.Required)
}

// TestFromLinesUsingIDMap_DeclinesUnknownNames checks that a secondary
// parse resolving against an existing id map rejects unseen names
// instead of minting new ids for them.
func TestFromLinesUsingIDMap_DeclinesUnknownNames(t *testing.T) {
	main, err := network.NewFromLines[float64]([]string{"A\tB\t1.0"}, weightxform.Raw{})
	assert.NoError(t, err)

	_, err = network.NewFromLinesUsingIDMap[float64]([]string{"A\tZ"}, weightxform.EmptyDataFactory{}, main.IDMap())
	assert.Error(t, err)

	var declined *network.FactoryDeclinedError
	assert.ErrorAs(t, err, &declined)
	assert.Equal(t, "Z", declined.Name)
}

// TestFromLinesUsingIDMap_SharesIDMapEvenWithNoLines guards against a
// regression where the returned network was seeded with a fresh, empty
// id map instead of sharing the one it was given: a DAG file with no
// lines at all must still resolve every name the shared map already
// knows, not just names that happen to appear as an edge endpoint.
func TestFromLinesUsingIDMap_SharesIDMapEvenWithNoLines(t *testing.T) {
	main, err := network.NewFromLines[float64]([]string{"A\tB\t1.0"}, weightxform.Raw{})
	assert.NoError(t, err)

	empty, err := network.NewFromLinesUsingIDMap[float64](nil, weightxform.EmptyDataFactory{}, main.IDMap())
	assert.NoError(t, err)

	_, err = empty.GetNode("A")
	assert.NoError(t, err)
	assert.Equal(t, main.IDMap(), empty.IDMap())
}

// TestRegisterNode_AddsNodeWithNoEdges checks RegisterNode makes id a
// graph member without requiring an incident edge.
func TestRegisterNode_AddsNodeWithNoEdges(t *testing.T) {
	net := network.New[float64]()
	net.RegisterNode(node.SuperSource)

	assert.True(t, net.ContainsNode(node.SuperSource))
	assert.True(t, net.IsNodeEmpty(node.SuperSource))
}

// TestCloneIsIndependent ensures mutating a clone never affects the
// original, matching core/methods_clone.go's deep-copy contract.
func TestCloneIsIndependent(t *testing.T) {
	net, err := network.NewFromLines[float64]([]string{"A\tB\t1.0"}, weightxform.Raw{})
	assert.NoError(t, err)

	clone := net.Clone()
	a, _ := clone.GetNode("A")
	b, _ := clone.GetNode("B")
	clone.RemoveEdge(a, b)

	assert.False(t, clone.HasEdge(a, b))
	assert.True(t, net.HasEdge(a, b))
}

// TestPrune_IncomingRemovesEdgesIntoSources mirrors the source-pruning
// half of original_source's attach_sources_and_targets.
func TestPrune_IncomingRemovesEdgesIntoSources(t *testing.T) {
	net, err := network.NewFromLines[float64]([]string{"A\tB\t1.0", "C\tA\t1.0"}, weightxform.Raw{})
	assert.NoError(t, err)

	assert.NoError(t, net.Prune([]string{"A"}, network.Incoming, true))

	a, _ := net.GetNode("A")
	b, _ := net.GetNode("B")
	c, _ := net.GetNode("C")
	assert.True(t, net.HasEdge(a, b))
	assert.False(t, net.HasEdge(c, a))
}

// TestNameOf_RejectsSentinelIDs confirms NameOf only resolves real,
// integer-identified nodes.
func TestNameOf_RejectsSentinelIDs(t *testing.T) {
	net := network.New[float64]()
	_, ok := net.NameOf(node.SuperSource)
	assert.False(t, ok)
}
