// File: csvloader.go
// Role: Load[N] and its Option set.
// AI-HINT (file):
//   - HeaderLabels/HeaderNone derive N via a runtime type assertion
//     (any(s).(N) / any(i).(N)); if N isn't the string/int the mode actually
//     produces, Load returns ErrHeaderTypeMismatch rather than panicking.
//     A WithHeaderParser parser returns []N directly.
//   - Symmetric mode reads only the upper-right triangle (j > i) and mirrors
//     it; the diagonal is always skipped as a self-edge regardless of mode.
package csvloader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MaineKuehn/dengraph/graph"
)

// ErrHeaderTypeMismatch is returned when a header-derived label cannot be
// converted to the requested node type N.
var ErrHeaderTypeMismatch = errors.New("csvloader: header label does not match node type N")

// ErrEmptyInput is returned when the reader yields no rows at all.
var ErrEmptyInput = errors.New("csvloader: empty input")

// HeaderMode selects how node identifiers are derived from the first row.
type HeaderMode int

const (
	// HeaderNone means there is no header row or column; nodes are
	// identified by their zero-based column index, requiring N to be (or
	// be assignable from) int.
	HeaderNone HeaderMode = iota
	// HeaderLabels means the first row (minus its corner cell) and first
	// column hold string labels used directly as node identifiers,
	// requiring N to be (or be assignable from) string.
	HeaderLabels
	// HeaderCustom means a caller-supplied parser derives node identifiers
	// from the raw header row; see WithHeaderParser.
	HeaderCustom
)

// Option configures a Load call.
type Option[N comparable] func(*loadConfig[N])

type loadConfig[N comparable] struct {
	headerMode   HeaderMode
	headerParser func([]string) ([]N, error)
	cellParser   func(string) (any, bool)
	validity     func(any) bool
	maxDistance  graph.Bound
	symmetric    bool
}

// WithHeader selects the header mode. Use WithHeaderParser instead for
// HeaderCustom, since it carries the parser function itself.
func WithHeader[N comparable](mode HeaderMode) Option[N] {
	return func(c *loadConfig[N]) { c.headerMode = mode }
}

// WithHeaderParser installs a custom header-row parser and implies
// HeaderCustom.
func WithHeaderParser[N comparable](fn func([]string) ([]N, error)) Option[N] {
	return func(c *loadConfig[N]) {
		c.headerMode = HeaderCustom
		c.headerParser = fn
	}
}

// WithCellParser overrides the default cell parser. The default accepts
// decimal integers, floats, the literals "none"/"null" (parsed as an
// invalid/absent cell), and booleans "true"/"false".
func WithCellParser[N comparable](fn func(string) (any, bool)) Option[N] {
	return func(c *loadConfig[N]) { c.cellParser = fn }
}

// WithValidity overrides the default validity predicate, the Go analogue of
// the source's truthiness test: nonzero numeric, true boolean, non-empty
// string.
func WithValidity[N comparable](fn func(any) bool) Option[N] {
	return func(c *loadConfig[N]) { c.validity = fn }
}

// WithMaxDistance drops any cell whose parsed weight exceeds max.
func WithMaxDistance[N comparable](max float64) Option[N] {
	return func(c *loadConfig[N]) { c.maxDistance = graph.WithMax(max) }
}

// WithSymmetric, when true (the default), reads only the upper-right
// triangle of the matrix and mirrors it onto the lower-left, matching a
// symmetric distance matrix's usual CSV representation.
func WithSymmetric[N comparable](symmetric bool) Option[N] {
	return func(c *loadConfig[N]) { c.symmetric = symmetric }
}

func defaultCellParser(s string) (any, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "none", "null", "":
		return nil, true
	case "true":
		return true, true
	case "false":
		return false, true
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return nil, false
}

func defaultValidity(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// Load reads a CSV distance matrix from r and builds an *graph.AdjacencyGraph[N].
func Load[N comparable](r io.Reader, opts ...Option[N]) (graph.Graph[N], error) {
	cfg := loadConfig[N]{
		cellParser:  defaultCellParser,
		validity:    defaultValidity,
		maxDistance: graph.Any,
		symmetric:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvloader: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	nodes, dataRows, rowOffset, err := deriveNodes(records, cfg)
	if err != nil {
		return nil, err
	}

	g := graph.NewAdjacencyGraph[N]()
	for _, n := range nodes {
		g.InsertNode(n)
	}

	for i, row := range dataRows {
		cells := row[rowOffset:]
		for j, raw := range cells {
			if i >= len(nodes) || j >= len(nodes) {
				continue
			}
			if i == j {
				continue // diagonal is always a self-edge, always dropped
			}
			if cfg.symmetric && j < i {
				continue // mirrored below instead
			}

			value, ok := cfg.cellParser(raw)
			if !ok || !cfg.validity(value) {
				continue
			}
			w, ok := toFloat(value)
			if !ok {
				continue
			}
			if !cfg.maxDistance.Covers(w) {
				continue
			}
			if err := g.SetEdge(nodes[i], nodes[j], w); err != nil {
				return nil, fmt.Errorf("csvloader: %w", err)
			}
		}
	}

	return g, nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// deriveNodes returns the node identifiers, the data rows to iterate, and
// the number of leading columns in each data row to skip (the row label, if
// any).
func deriveNodes[N comparable](records [][]string, cfg loadConfig[N]) ([]N, [][]string, int, error) {
	switch cfg.headerMode {
	case HeaderLabels:
		header := records[0]
		if len(header) < 2 {
			return nil, nil, 0, fmt.Errorf("csvloader: header row too short")
		}
		labels := header[1:]
		nodes := make([]N, len(labels))
		for i, l := range labels {
			n, ok := any(strings.TrimSpace(l)).(N)
			if !ok {
				return nil, nil, 0, ErrHeaderTypeMismatch
			}
			nodes[i] = n
		}
		return nodes, records[1:], 1, nil

	case HeaderCustom:
		if cfg.headerParser == nil {
			return nil, nil, 0, fmt.Errorf("csvloader: HeaderCustom requires WithHeaderParser")
		}
		nodes, err := cfg.headerParser(records[0])
		if err != nil {
			return nil, nil, 0, fmt.Errorf("csvloader: %w", err)
		}
		return nodes, records[1:], 1, nil

	default: // HeaderNone
		width := len(records[0])
		nodes := make([]N, width)
		for i := 0; i < width; i++ {
			n, ok := any(i).(N)
			if !ok {
				return nil, nil, 0, ErrHeaderTypeMismatch
			}
			nodes[i] = n
		}
		return nodes, records, 0, nil
	}
}
