// File: parse.go
// Role: tab-separated-line parsing into a Network, generalizing
// original_source/src/parsing/network.rs's from_lines family and
// original_source/src/parsing/data.rs's DataFactory trait.
package network

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/growdag/node"
)

// DataFactory parses the trailing fields of a tab-separated interactome
// line into an edge payload of type E. Arity must be constant across a
// single parse; a factory that returns different lengths from call to
// call can produce confusing InvalidSizeError line numbers.
type DataFactory[E any] interface {
	// Arity is the number of trailing fields (beyond the two endpoint
	// names) this factory consumes.
	Arity() int
	// Describe names the trailing fields, used in InvalidSizeError's
	// message.
	Describe() string
	// Parse converts the Arity trailing fields into a payload. line is
	// the 0-based line index, for error attribution.
	Parse(line int, fields []string) (E, error)
}

// IDFactory mints or resolves an integer id for a name encountered
// during parsing. known is the number of names already in the id map at
// the time of the call. Returning false declines to mint an id for an
// unrecognized name (used by NewFromLinesUsingIDMap to only ever resolve
// against a pre-existing map, never grow it).
type IDFactory func(name string, known int) (int, bool)

// MintingIDFactory always mints a fresh id (len(map) at call time),
// matching original_source's `from_lines`.
func MintingIDFactory(name string, known int) (int, bool) { return known, true }

// NewFromLinesOverIDMap is the shared parsing engine behind
// NewFromLines and NewFromLinesUsingIDMap: it reads tab-separated lines,
// skipping blank lines and `#`-prefixed comments, resolving each
// endpoint name against idMap via idFactory (minting a new id and graph
// node when idFactory agrees to), and adds one edge per line with a
// payload produced by factory.
func NewFromLinesOverIDMap[E any](lines []string, factory DataFactory[E], idMap *IDMap, idFactory IDFactory) (*Network[E], error) {
	n := New[E]()
	n.idMap = idMap

	required := 2 + factory.Arity()

	resolve := func(lineIdx int, name string) (int, error) {
		if id, ok := n.idMap.ByName(name); ok {
			return id, nil
		}
		id, ok := idFactory(name, n.idMap.Len())
		if !ok {
			return 0, &FactoryDeclinedError{Line: lineIdx + 1, Name: name}
		}
		n.idMap.Insert(name, id)
		if id > n.maxID {
			n.maxID = id
		}
		n.ensureNode(node.Integer(id))

		return id, nil
	}

	for idx, line := range lines {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != required {
			return nil, &InvalidSizeError{
				Line:        idx + 1,
				Observed:    len(fields),
				Required:    required,
				Description: factory.Describe(),
			}
		}

		sourceName, targetName := fields[0], fields[1]

		sourceID, err := resolve(idx, sourceName)
		if err != nil {
			return nil, err
		}
		targetID, err := resolve(idx, targetName)
		if err != nil {
			return nil, err
		}

		payload, err := factory.Parse(idx, fields[2:])
		if err != nil {
			return nil, &ParseDataError{Line: idx + 1, Err: err}
		}

		n.AddEdge(node.Integer(sourceID), node.Integer(targetID), payload)
	}

	return n, nil
}

// NewFromLines parses lines into a fresh Network with a fresh id map,
// minting a new integer id for every previously-unseen name.
func NewFromLines[E any](lines []string, factory DataFactory[E]) (*Network[E], error) {
	return NewFromLinesOverIDMap(lines, factory, NewIDMap(), MintingIDFactory)
}

// NewFromLinesUsingIDMap parses lines into a fresh Network sharing
// idMap directly with whatever other network it came from: a name
// idMap doesn't know produces a FactoryDeclinedError rather than
// minting a new id. This is how the DAG file is parsed against the
// interactome's id map, so DAG node ids line up with interactome node
// ids, and the returned network's own IDMap() already knows every name
// idMap does — not just the ones that happen to appear in lines.
func NewFromLinesUsingIDMap[E any](lines []string, factory DataFactory[E], idMap *IDMap) (*Network[E], error) {
	declineUnknown := func(name string, _ int) (int, bool) {
		return idMap.ByName(name)
	}

	return NewFromLinesOverIDMap(lines, factory, idMap, declineUnknown)
}

// ReadLines reads r into a slice of lines without trailing newlines,
// mirroring the line-oriented iterator original_source builds from
// BufReader::lines().
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
