// Package quality provides external cluster-quality scorers: Silhouette,
// CalinskiHarabasz, DaviesBouldin, and InterIntra. None of these are
// exercised by the engine itself; they consume a Clusters() snapshot and a
// distance function, exactly the external-collaborator role spec.md
// describes for quality scoring.
package quality
