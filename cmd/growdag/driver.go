package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/growdag/cost"
	"github.com/katalvlaran/growdag/growth"
	"github.com/katalvlaran/growdag/interactome"
	"github.com/katalvlaran/growdag/network"
	"github.com/katalvlaran/growdag/node"
	"github.com/katalvlaran/growdag/partialdag"
	"github.com/katalvlaran/growdag/telemetry"
	"github.com/katalvlaran/growdag/weightxform"
)

// handleFiles is the shared entry point for both the `files` and
// `folder` subcommands, mirroring original_source/src/main.rs's
// handle_files.
func handleFiles(interactomePath, dagPath, sourcesPath, targetsPath string) error {
	logger.Info("reading sources and targets", "run_id", runID)
	sources, err := readLines(sourcesPath)
	if err != nil {
		return fmt.Errorf("reading sources: %w", err)
	}
	targets, err := readLines(targetsPath)
	if err != nil {
		return fmt.Errorf("reading targets: %w", err)
	}

	logger.Info("caching interactome", "run_id", runID, "apply_log_transform", !noLogTransform)
	interactomeLines, err := readRawLines(interactomePath)
	if err != nil {
		return fmt.Errorf("reading interactome: %w", err)
	}

	var net *network.Network[float64]
	if noLogTransform {
		net, err = network.NewFromLines[float64](interactomeLines, weightxform.Raw{})
	} else {
		net, err = network.NewFromLines[float64](interactomeLines, weightxform.LogTransformed{})
	}
	if err != nil {
		return fmt.Errorf("parsing interactome: %w", err)
	}

	logger.Info("preprocessing interactome", "run_id", runID)
	mainInteractome, err := interactome.Attach(net, sources, targets, true)
	if err != nil {
		return fmt.Errorf("attaching sources/targets: %w", err)
	}

	dagLines, err := readRawLines(dagPath)
	if err != nil {
		return fmt.Errorf("reading seed dag: %w", err)
	}
	dagNet, err := network.NewFromLinesUsingIDMap[float64](dagLines, weightxform.EmptyDataFactory{}, net.IDMap())
	if err != nil {
		return fmt.Errorf("parsing seed dag: %w", err)
	}

	dag, err := partialdag.New(dagNet, sources, targets)
	if err != nil {
		return fmt.Errorf("constructing seed dag: %w", err)
	}

	logger.Info("preparing growth cache", "run_id", runID)
	collector := telemetry.NewCollector()
	costFn := cost.EdgeCost{}

	for i := 1; i <= iterations; i++ {
		logger.Info("growing DAG", "run_id", runID, "iteration", i)
		collector.Iterations.Inc()

		cache := growth.NewCache(mainInteractome)
		result, err := growth.Grow(mainInteractome, dag, cache, costFn)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}
		if result == nil {
			collector.NoPathFound.Inc()
			logger.Info("no more paths could be constructed", "run_id", runID, "iteration", i)

			break
		}

		collector.PathFound.Inc()
		collector.PathCost.Observe(result.Cost)
		collector.PathLength.Observe(float64(len(result.Path)))

		names := make([]string, len(result.Path))
		for j, id := range result.Path {
			names[j] = nameOf(mainInteractome, id)
		}
		fmt.Printf("%d\t%g\t%s\n", i, result.Cost, strings.Join(names, "|"))
	}

	collector.LogSummary(logger, runID)

	return nil
}

func nameOf(main *interactome.Interactome[float64], id node.ID) string {
	return main.NameOf(id)
}

func readLines(path string) ([]string, error) {
	raw, err := readRawLines(path)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	return out, nil
}

func readRawLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return network.ReadLines(f)
}
