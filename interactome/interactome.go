// Package interactome wraps a network.Network with two synthetic
// endpoints, node.SuperSource and node.SuperTarget, wired to a chosen
// set of source and target genes. Searches then run super-source ->
// super-target instead of juggling a multi-source/multi-target search,
// mirroring original_source/src/parsing/interactome.rs's
// attach_sources_and_targets.
package interactome

import (
	"fmt"

	"github.com/katalvlaran/growdag/network"
	"github.com/katalvlaran/growdag/node"
)

// AttachError names a source or target gene absent from the underlying
// network when attachment was required to succeed.
type AttachError struct {
	// Which is either "source" or "target".
	Which string
	Name  string
}

func (e *AttachError) Error() string {
	return fmt.Sprintf("%s %q does not exist in the interactome", e.Which, e.Name)
}

// Interactome pairs a network.Network[E] with the resolved node.IDs of
// its attached sources and targets.
type Interactome[E any] struct {
	Network *network.Network[E]
	Sources []node.ID
	Targets []node.ID
}

// Attach builds an Interactome from net by:
//  1. pruning incoming edges from every source (a source should never be
//     reached mid-path; only left from),
//  2. pruning outgoing edges from every target (symmetric reasoning),
//  3. adding node.SuperSource -> source and target -> node.SuperTarget
//     edges carrying zero (the E zero value) for every resolved gene.
//
// If requireSourcesAndTargets is false, unknown source/target names are
// silently dropped instead of erroring — used by PartialDag.New, which
// tolerates seed DAGs whose declared sources/targets fell outside the
// parsed network.
func Attach[E any](net *network.Network[E], sources, targets []string, requireSourcesAndTargets bool) (*Interactome[E], error) {
	if err := net.Prune(sources, network.Incoming, requireSourcesAndTargets); err != nil {
		return nil, &AttachError{Which: "source", Name: declinedName(err)}
	}
	if err := net.Prune(targets, network.Outgoing, requireSourcesAndTargets); err != nil {
		return nil, &AttachError{Which: "target", Name: declinedName(err)}
	}

	sourceIDs, err := resolveOptional(net, sources, requireSourcesAndTargets, "source")
	if err != nil {
		return nil, err
	}
	targetIDs, err := resolveOptional(net, targets, requireSourcesAndTargets, "target")
	if err != nil {
		return nil, err
	}

	// The two sentinels are always members of the graph, even if the
	// corresponding real-node list ends up empty (e.g. a from-scratch
	// seed DAG with no sources/targets among its edge endpoints yet) —
	// AddEdge below only registers them when at least one edge exists.
	net.RegisterNode(node.SuperSource)
	net.RegisterNode(node.SuperTarget)

	var zero E
	for _, s := range sourceIDs {
		net.AddEdge(node.SuperSource, s, zero)
	}
	for _, t := range targetIDs {
		net.AddEdge(t, node.SuperTarget, zero)
	}

	return &Interactome[E]{Network: net, Sources: sourceIDs, Targets: targetIDs}, nil
}

func resolveOptional[E any](net *network.Network[E], names []string, require bool, which string) ([]node.ID, error) {
	out := make([]node.ID, 0, len(names))
	for _, name := range names {
		id, err := net.GetNode(name)
		if err != nil {
			if !require {
				continue
			}

			return nil, &AttachError{Which: which, Name: name}
		}
		out = append(out, id)
	}

	return out, nil
}

func declinedName(err error) string {
	if fe, ok := err.(*network.FactoryDeclinedError); ok {
		return fe.Name
	}

	return err.Error()
}

// NameOf renders id for display: the gene name for a real node, or the
// fixed sentinel literal for a super endpoint. It must stay consistent
// with node.ID.String, since both are sources of truth for the two
// sentinel literals.
func (it *Interactome[E]) NameOf(id node.ID) string {
	switch id.Kind {
	case node.KindSuperSource, node.KindSuperTarget:
		return id.String()
	default:
		if name, ok := it.Network.NameOf(id); ok {
			return name
		}

		return id.String()
	}
}
