// File: errors.go
// Role: sentinel errors for the engine package, following the teacher's
//       builder/errors.go convention: only sentinel variables are exposed,
//       callers branch with errors.Is, and wrapping adds method context via
//       %w rather than stringifying into the sentinel itself.
package engine

import (
	"errors"
	"fmt"

	"github.com/MaineKuehn/dengraph/cluster"
	"github.com/MaineKuehn/dengraph/graph"
)

var (
	// ErrNoSuchNode is returned when an edit references a node absent from
	// the underlying graph. It is graph.ErrNoSuchNode, so substrate errors
	// and engine errors match the same sentinel.
	ErrNoSuchNode = graph.ErrNoSuchNode

	// ErrNoSuchEdge is returned when an edit references an edge absent from
	// the underlying graph. It is graph.ErrNoSuchEdge.
	ErrNoSuchEdge = graph.ErrNoSuchEdge

	// ErrCrossGraph is returned when an internal merge is attempted between
	// clusters over different substrates. It is cluster.ErrCrossGraph. This
	// should never be observable to callers; it indicates an implementation
	// bug if it surfaces.
	ErrCrossGraph = cluster.ErrCrossGraph

	// ErrInvalidArgument is returned for malformed arguments: inserting a
	// node that already exists, or Params outside their valid range.
	ErrInvalidArgument = errors.New("engine: invalid argument")
)

// wrapf prefixes an error with the operation that produced it, preserving
// the sentinel for errors.Is while adding context, the same discipline as
// the teacher's builderErrorf.
func wrapf(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("engine: %s: %w", op, err)
}
