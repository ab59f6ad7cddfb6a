// Package weightxform implements the two edge-payload factories
// growdag's interactome parser chooses between: raw float weights, and
// a log-transformed variant, both satisfying network.DataFactory[float64].
//
// Grounded on original_source/src/parsing/weight.rs.
package weightxform

import (
	"fmt"
	"math"
	"strconv"
)

// logFloor is the minimum weight value fed into the log transform,
// guarding against -Inf at (or below) zero.
const logFloor = 0.000_000_001

// Raw parses a single trailing field as a float64, unmodified.
type Raw struct{}

func (Raw) Arity() int        { return 1 }
func (Raw) Describe() string  { return "weight" }
func (Raw) Parse(line int, fields []string) (float64, error) {
	w, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("line %d has an invalid weight %q", line+1, fields[0])
	}

	return w, nil
}

// EmptyDataFactory parses no trailing fields at all, always producing a
// zero payload. Used for the seed DAG file, whose edges carry no weight
// of their own (see spec.md §3) — mirrors
// original_source/src/parsing/data.rs's EmptyTupleDataFactory, adapted
// from unit payloads to a zero float64 so the DAG can share
// network.Network[float64] with the weighted main interactome instead
// of needing its own payload type.
type EmptyDataFactory struct{}

func (EmptyDataFactory) Arity() int       { return 0 }
func (EmptyDataFactory) Describe() string { return "nothing following" }
func (EmptyDataFactory) Parse(line int, fields []string) (float64, error) {
	return 0, nil
}

// LogTransformed parses the same single trailing field as Raw, then
// applies -ln(max(logFloor, w) / ln(10)).
//
// This is reproduced exactly as original_source computes it, including
// its inherited quirk: dividing by ln(10) before the outer ln, rather
// than dividing the outer ln(w) by ln(10) (which is what a base-10
// logarithm would actually compute). Correcting it would change the
// numeric output of every fixture and integration test built against
// the original tool, so the quirk is kept intentionally rather than
// "fixed".
type LogTransformed struct{}

func (LogTransformed) Arity() int       { return Raw{}.Arity() }
func (LogTransformed) Describe() string { return Raw{}.Describe() }
func (LogTransformed) Parse(line int, fields []string) (float64, error) {
	w, err := Raw{}.Parse(line, fields)
	if err != nil {
		return 0, err
	}

	return -math.Log(math.Max(logFloor, w) / math.Log(10)), nil
}
