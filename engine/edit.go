// File: edit.go
// Role: the engine's public mutating surface (spec.md §4.4.1). Every
//       exported mutator validates its precondition, touches the substrate,
//       then hands off to the matching internal procedure in transitions.go.
//       This is the only file outside transitions.go that is allowed to
//       call those procedures.
package engine

// InsertNode adds v to the substrate with empty adjacency and runs the
// node-added procedure. Returns ErrInvalidArgument if v already exists.
func (e *Engine[N]) InsertNode(v N) error {
	if e.g.Contains(v) {
		return wrapf("InsertNode", ErrInvalidArgument)
	}
	return wrapf("InsertNode", e.nodeAdded(v))
}

// SetEdge stores or updates the weight between a and b. If the new weight
// falls within eps, runs the edge-added procedure. If the edge was
// previously within eps and the new weight has crossed beyond it, runs the
// edge-removed procedure instead, per spec.md §4.4.6's "previously <= eps
// that is now > eps or absent" trigger. A weight beyond eps that was never
// within eps stores the edge in the substrate (for substrates that track
// it) but triggers no role transition, matching spec.md §4.2's distinction
// between "present" and "within cluster_distance".
func (e *Engine[N]) SetEdge(a, b N, w float64) error {
	if !e.g.Contains(a) || !e.g.Contains(b) {
		return wrapf("SetEdge", ErrNoSuchNode)
	}
	wasWithinEps := false
	if prev, err := e.g.Edge(a, b); err == nil && prev <= e.eps {
		wasWithinEps = true
	}
	if err := e.g.SetEdge(a, b, w); err != nil {
		return wrapf("SetEdge", err)
	}
	if w <= e.eps {
		return wrapf("SetEdge", e.edgeAdded(a, b))
	}
	if wasWithinEps {
		return wrapf("SetEdge", e.edgeRemoved(a, b))
	}
	return nil
}

// DeleteEdge removes the edge between a and b, then runs the edge-removed
// procedure on both endpoints.
func (e *Engine[N]) DeleteEdge(a, b N) error {
	if err := e.g.DeleteEdge(a, b); err != nil {
		return wrapf("DeleteEdge", err)
	}
	return wrapf("DeleteEdge", e.edgeRemoved(a, b))
}

// DeleteNode runs the node-removed procedure, which itself deletes v from
// the substrate and then reclassifies v's former neighbours and clusters.
func (e *Engine[N]) DeleteNode(v N) error {
	if !e.g.Contains(v) {
		return wrapf("DeleteNode", ErrNoSuchNode)
	}
	return wrapf("DeleteNode", e.nodeRemoved(v))
}
