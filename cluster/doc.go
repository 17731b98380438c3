// Package cluster defines the Cluster[N] value: a pair of disjoint node
// sets (core, border) over a fixed graph substrate.
//
// A Cluster never owns its substrate; it borrows a graph.Graph[N] reference
// supplied at construction, the Go rendering of the teacher's "borrows its
// substrate" ownership split between engine and cluster.
package cluster
