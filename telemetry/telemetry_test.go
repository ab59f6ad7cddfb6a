package telemetry_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/growdag/telemetry"
)

// TestLogSummary_EmitsEveryRegisteredMetric checks a collector with a
// few counters bumped logs one line per metric family without error.
func TestLogSummary_EmitsEveryRegisteredMetric(t *testing.T) {
	c := telemetry.NewCollector()
	c.Iterations.Add(3)
	c.PathFound.Inc()
	c.PathCost.Observe(1.5)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	c.LogSummary(logger, "run-123")

	out := buf.String()
	assert.Contains(t, out, "growdag_iterations_total")
	assert.Contains(t, out, "growdag_path_found_total")
	assert.Contains(t, out, "run-123")
}
