// Package telemetry collects per-run growth metrics using a private
// prometheus.Registry. Unlike the server examples in the retrieved
// pack (which expose a registry over promhttp.Handler), growdag never
// listens on a socket — metrics are gathered once at the end of a run
// and logged through log/slog instead, honoring the "no networked I/O"
// restriction on the CLI while still exercising the dependency the way
// a service in this codebase's style would.
package telemetry

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Collector holds every counter/histogram a single driver invocation
// updates.
type Collector struct {
	registry *prometheus.Registry

	Iterations  prometheus.Counter
	PathFound   prometheus.Counter
	NoPathFound prometheus.Counter
	PathCost    prometheus.Histogram
	PathLength  prometheus.Histogram
}

// NewCollector registers a fresh set of metrics against a private
// registry (never the global default, so concurrent test runs in the
// same process never collide on metric registration).
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		Iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "growdag_iterations_total",
			Help: "Total number of growth iterations attempted.",
		}),
		PathFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "growdag_path_found_total",
			Help: "Iterations that found and grafted a path.",
		}),
		NoPathFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "growdag_no_path_total",
			Help: "Iterations that found no viable path.",
		}),
		PathCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "growdag_path_cost",
			Help:    "Relative cost of each winning path.",
			Buckets: prometheus.DefBuckets,
		}),
		PathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "growdag_path_length",
			Help:    "Node count of each winning path.",
			Buckets: prometheus.LinearBuckets(2, 2, 10),
		}),
	}

	registry.MustRegister(c.Iterations, c.PathFound, c.NoPathFound, c.PathCost, c.PathLength)

	return c
}

// LogSummary gathers every registered metric family and logs it at Info
// level through logger, tagged with runID. It is meant to be called once
// at the end of a driver invocation.
func (c *Collector) LogSummary(logger *slog.Logger, runID string) {
	families, err := c.registry.Gather()
	if err != nil {
		logger.Error("telemetry: failed to gather metrics", "run_id", runID, "error", err)

		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			logger.Info("telemetry summary",
				"run_id", runID,
				"metric", family.GetName(),
				"value", metricValue(metric),
			)
		}
	}
}

func metricValue(m *dto.Metric) float64 {
	switch {
	case m.Counter != nil:
		return m.Counter.GetValue()
	case m.Histogram != nil:
		return m.Histogram.GetSampleSum()
	default:
		return 0
	}
}
