// Package fixtures builds synthetic gene interactomes for property-based
// tests of the growth engine, adapting builder/impl_random_sparse.go's
// Erdős–Rényi edge-sampling model (ordered-pair Bernoulli trials with an
// injected math/rand.Source, deterministic vertex naming) to growdag's
// weighted, gene-named domain in place of builder's other geometric
// graph generators (cycle/grid/star/wheel/platonic/... have no role
// here).
package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/growdag/network"
)

// RandomInteractome samples a directed Erdős–Rényi-style network over n
// genes named "G0".."G{n-1}", including each ordered pair (i, j), i != j,
// independently with probability p, weighted uniformly in [minWeight,
// maxWeight). rng must be non-nil; callers own determinism via the seed
// they construct it with.
func RandomInteractome(n int, p, minWeight, maxWeight float64, rng *rand.Rand) *network.Network[float64] {
	if n < 1 {
		panic(fmt.Sprintf("fixtures: RandomInteractome: n=%d must be >= 1", n))
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("fixtures: RandomInteractome: p=%.6f not in [0,1]", p))
	}

	net := network.New[float64]()
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("G%d", i)
		net.AddNamedNode(names[i])
	}

	for i := 0; i < n; i++ {
		source, _ := net.GetNode(names[i])
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() > p {
				continue
			}

			target, _ := net.GetNode(names[j])
			weight := minWeight + rng.Float64()*(maxWeight-minWeight)
			net.AddEdge(source, target, weight)
		}
	}

	return net
}

// Names returns the gene names "G0".."G{n-1}" RandomInteractome assigns,
// so test callers can pick sources/targets/seed-DAG endpoints without
// re-deriving the naming scheme.
func Names(n int) []string {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("G%d", i)
	}

	return names
}
