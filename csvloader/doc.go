// Package csvloader builds a graph.Graph[N] from a CSV distance matrix:
// rows and columns both index the same node set, and a cell holds the edge
// weight between the row node and the column node.
//
// Deliberately built on encoding/csv alone: none of the retrieval pack's
// example repos pull in a third-party CSV parser, and encoding/csv already
// covers the quoted-field, variable-delimiter parsing this loader needs.
package csvloader
