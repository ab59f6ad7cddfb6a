package weightxform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/growdag/weightxform"
)

// TestRaw_Parse checks the trivial passthrough parse.
func TestRaw_Parse(t *testing.T) {
	w, err := weightxform.Raw{}.Parse(0, []string{"1.25"})
	assert.NoError(t, err)
	assert.Equal(t, 1.25, w)
}

// TestRaw_Parse_InvalidWeight checks that a non-numeric field errors
// with the line number included.
func TestRaw_Parse_InvalidWeight(t *testing.T) {
	_, err := weightxform.Raw{}.Parse(3, []string{"not-a-number"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

// TestLogTransformed_Parse reproduces the exact formula, including its
// inherited divide-before-outer-log quirk, rather than a corrected
// base-10 logarithm.
func TestLogTransformed_Parse(t *testing.T) {
	w, err := weightxform.LogTransformed{}.Parse(0, []string{"0.5"})
	assert.NoError(t, err)

	want := -math.Log(math.Max(0.000000001, 0.5) / math.Log(10))
	assert.InDelta(t, want, w, 1e-12)
}

// TestLogTransformed_Parse_FloorsNonPositiveWeights checks the log
// floor guards against -Inf/NaN for zero or negative input weights.
func TestLogTransformed_Parse_FloorsNonPositiveWeights(t *testing.T) {
	w, err := weightxform.LogTransformed{}.Parse(0, []string{"0"})
	assert.NoError(t, err)
	assert.False(t, math.IsInf(w, 0))
	assert.False(t, math.IsNaN(w))
}

// TestEmptyDataFactory_Parse checks the seed-DAG factory always yields
// a zero payload regardless of trailing fields.
func TestEmptyDataFactory_Parse(t *testing.T) {
	w, err := weightxform.EmptyDataFactory{}.Parse(0, nil)
	assert.NoError(t, err)
	assert.Equal(t, float64(0), w)
	assert.Equal(t, 0, weightxform.EmptyDataFactory{}.Arity())
}
