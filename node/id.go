// Package node defines the tagged node identifier shared by every graph
// type in growdag: a real gene is an Integer id, and the two synthetic
// endpoints used to reduce multi-source/multi-target search to a single
// pair are first-class Kind values rather than reserved integers.
//
// Equality and hashing are on the full (Kind, Int) pair, so ID is safe to
// use directly as a Go map key. Ordering places SuperSource before
// SuperTarget and otherwise defers to the integer order, matching the
// Ord impl the algorithm relies on for deterministic iteration.
package node

import "fmt"

// Kind discriminates between a real, integer-identified node and the two
// synthetic endpoints.
type Kind uint8

const (
	// KindInteger marks a real node; Int carries its assigned id.
	KindInteger Kind = iota
	// KindSuperSource marks the synthetic super-source endpoint.
	KindSuperSource
	// KindSuperTarget marks the synthetic super-target endpoint.
	KindSuperTarget
)

// ID is the tagged node identifier used as the vertex key across network,
// interactome, partialdag, pathengine, cost and growth.
type ID struct {
	Kind Kind
	Int  int
}

// Integer constructs a real-node ID.
func Integer(i int) ID { return ID{Kind: KindInteger, Int: i} }

// SuperSource is the singleton synthetic source endpoint.
var SuperSource = ID{Kind: KindSuperSource}

// SuperTarget is the singleton synthetic target endpoint.
var SuperTarget = ID{Kind: KindSuperTarget}

// IsReal reports whether id names a real, integer-identified node.
func (id ID) IsReal() bool { return id.Kind == KindInteger }

// Less orders by Kind value first, so every integer node sorts before
// SuperSource, and SuperSource before SuperTarget; integer nodes order by
// their Int value. This is used only for deterministic iteration, never
// for correctness of the algorithm.
func (id ID) Less(other ID) bool {
	if id.Kind != other.Kind {
		return id.Kind < other.Kind
	}

	return id.Int < other.Int
}

// String renders a debug-friendly representation; it is not the display
// name used in CLI output (that requires the id map — see network.Network.NameOf).
func (id ID) String() string {
	switch id.Kind {
	case KindSuperSource:
		return "[[Super Source]]"
	case KindSuperTarget:
		return "[[Super Target]]"
	default:
		return fmt.Sprintf("#%d", id.Int)
	}
}
