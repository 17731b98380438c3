// Package probe implements the virtual-probe facet (spec.md component C5):
// measuring a transient "virtual node" against the live clusters of an
// engine.Engine without admitting that node to the graph.
//
// A virtual node never appears in engine.Engine.Contains or any
// cluster.Cluster; it exists only in the Facet's own bookkeeping until
// Persist promotes it into a real node via engine.InsertNode.
package probe
