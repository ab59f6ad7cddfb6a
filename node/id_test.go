package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/growdag/node"
)

// TestLess_OrdersIntegerBeforeSuperSourceBeforeSuperTarget checks the
// stable ordering used for deterministic iteration across the graph
// packages: integer nodes < SuperSource < SuperTarget, by Kind value.
func TestLess_OrdersIntegerBeforeSuperSourceBeforeSuperTarget(t *testing.T) {
	assert.True(t, node.Integer(0).Less(node.SuperSource))
	assert.True(t, node.Integer(0).Less(node.SuperTarget))
	assert.False(t, node.SuperTarget.Less(node.SuperSource))
}

// TestLess_OrdersIntegersByValue checks plain numeric ordering within
// the KindInteger case.
func TestLess_OrdersIntegersByValue(t *testing.T) {
	assert.True(t, node.Integer(1).Less(node.Integer(2)))
	assert.False(t, node.Integer(2).Less(node.Integer(1)))
}

// TestIsReal distinguishes real genes from the two synthetic endpoints.
func TestIsReal(t *testing.T) {
	assert.True(t, node.Integer(7).IsReal())
	assert.False(t, node.SuperSource.IsReal())
	assert.False(t, node.SuperTarget.IsReal())
}

// TestID_UsableAsMapKey confirms equality is on the full (Kind, Int)
// pair, the property every adjacency map in network.Network relies on.
func TestID_UsableAsMapKey(t *testing.T) {
	m := map[node.ID]string{
		node.Integer(1):  "gene-1",
		node.SuperSource: "source",
	}
	assert.Equal(t, "gene-1", m[node.Integer(1)])
	assert.Equal(t, "source", m[node.SuperSource])
	_, ok := m[node.Integer(2)]
	assert.False(t, ok)
}
