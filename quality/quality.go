// File: quality.go
// Role: thin, ~source-sized ports of the external quality scorers
//       (silhouette, Calinski-Harabasz, Davies-Bouldin, inter/intra
//       variance), all built on gonum.org/v1/gonum/stat for the actual
//       averaging arithmetic rather than hand-rolled summation loops.
package quality

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/MaineKuehn/dengraph/cluster"
	"github.com/MaineKuehn/dengraph/distance"
)

// ErrInsufficientClusters is returned by scorers that need at least two
// nonempty clusters to produce a meaningful score.
var ErrInsufficientClusters = errors.New("quality: fewer than two nonempty clusters")

func meanDistance[N comparable](d distance.Distance[N], v N, others []N, exclude N, excluding bool) (float64, error) {
	xs := make([]float64, 0, len(others))
	for _, u := range others {
		if excluding && u == exclude {
			continue
		}
		dist, err := d.Between(v, u)
		if err != nil {
			return 0, err
		}
		xs = append(xs, dist)
	}
	if len(xs) == 0 {
		return 0, nil
	}
	return stat.Mean(xs, nil), nil
}

// Silhouette computes the mean silhouette coefficient over every member of
// every cluster, in [-1, 1]; higher is better-separated. Overlapping border
// nodes are scored once per cluster they belong to, consistent with the
// engine's own counted-per-cluster Len() convention.
func Silhouette[N comparable](clusters []*cluster.Cluster[N], d distance.Distance[N]) (float64, error) {
	nonempty := make([]*cluster.Cluster[N], 0, len(clusters))
	for _, k := range clusters {
		if k.Len() > 0 {
			nonempty = append(nonempty, k)
		}
	}
	if len(nonempty) < 2 {
		return 0, ErrInsufficientClusters
	}

	var scores []float64
	for ci, k := range nonempty {
		members := k.Nodes()
		for _, v := range members {
			var a float64
			if len(members) > 1 {
				var err error
				a, err = meanDistance(d, v, members, v, true)
				if err != nil {
					return 0, err
				}
			}

			b := math.Inf(1)
			for cj, other := range nonempty {
				if cj == ci {
					continue
				}
				om := other.Nodes()
				if len(om) == 0 {
					continue
				}
				ob, err := meanDistance(d, v, om, v, false)
				if err != nil {
					return 0, err
				}
				if ob < b {
					b = ob
				}
			}
			if math.IsInf(b, 1) {
				continue
			}

			denom := math.Max(a, b)
			if denom == 0 {
				scores = append(scores, 0)
				continue
			}
			scores = append(scores, (b-a)/denom)
		}
	}
	if len(scores) == 0 {
		return 0, ErrInsufficientClusters
	}
	return stat.Mean(scores, nil), nil
}

// centroidSpread returns the mean pairwise distance between all members of
// k (a proxy for intra-cluster spread when the distance's underlying type
// has no usable Meaner), or 0 if k has fewer than two members.
func centroidSpread[N comparable](k *cluster.Cluster[N], d distance.Distance[N]) (float64, error) {
	members := k.Nodes()
	if len(members) < 2 {
		return 0, nil
	}
	var xs []float64
	for i, v := range members {
		for _, u := range members[i+1:] {
			dist, err := d.Between(v, u)
			if err != nil {
				return 0, err
			}
			xs = append(xs, dist)
		}
	}
	return stat.Mean(xs, nil), nil
}

// InterIntra reports the ratio of mean inter-cluster member distance to mean
// intra-cluster member distance; values above 1 indicate clusters that are,
// on average, more separated from each other than they are internally
// spread out.
func InterIntra[N comparable](clusters []*cluster.Cluster[N], d distance.Distance[N]) (float64, error) {
	nonempty := make([]*cluster.Cluster[N], 0, len(clusters))
	for _, k := range clusters {
		if k.Len() > 0 {
			nonempty = append(nonempty, k)
		}
	}
	if len(nonempty) < 2 {
		return 0, ErrInsufficientClusters
	}

	var intra []float64
	for _, k := range nonempty {
		s, err := centroidSpread(k, d)
		if err != nil {
			return 0, err
		}
		intra = append(intra, s)
	}

	var inter []float64
	for i, k1 := range nonempty {
		for _, k2 := range nonempty[i+1:] {
			for _, v := range k1.Nodes() {
				for _, u := range k2.Nodes() {
					dist, err := d.Between(v, u)
					if err != nil {
						return 0, err
					}
					inter = append(inter, dist)
				}
			}
		}
	}

	intraMean := stat.Mean(intra, nil)
	interMean := stat.Mean(inter, nil)
	if intraMean == 0 {
		return 0, errors.New("quality: intra-cluster distance is zero, ratio undefined")
	}
	return interMean / intraMean, nil
}

// CalinskiHarabasz computes the Calinski-Harabasz index: the size-weighted
// squared distance from each cluster mean to the grand mean, over k-1,
// divided by the squared distances of members to their own cluster mean,
// over n-k. Requires a Meaner[N] to locate those means; returns
// ErrInsufficientClusters if fewer than two clusters have members or the
// member count does not exceed the cluster count.
func CalinskiHarabasz[N comparable](clusters []*cluster.Cluster[N], d distance.Distance[N]) (float64, error) {
	meaner, ok := d.(distance.Meaner[N])
	if !ok {
		return 0, errors.New("quality: distance has no Meaner[N], cannot locate a grand mean")
	}

	nonempty := make([]*cluster.Cluster[N], 0, len(clusters))
	var all []N
	for _, k := range clusters {
		if k.Len() > 0 {
			nonempty = append(nonempty, k)
			all = append(all, k.Nodes()...)
		}
	}
	if len(nonempty) < 2 || len(all) <= len(nonempty) {
		return 0, ErrInsufficientClusters
	}

	grandMean, err := meaner.Mean(all)
	if err != nil {
		return 0, err
	}

	var between, within float64
	n := len(all)
	k := len(nonempty)
	for _, c := range nonempty {
		members := c.Nodes()
		mean, err := meaner.Mean(members)
		if err != nil {
			return 0, err
		}
		toGrand, err := d.Between(mean, grandMean)
		if err != nil {
			return 0, err
		}
		between += float64(len(members)) * toGrand * toGrand

		for _, v := range members {
			dist, err := d.Between(v, mean)
			if err != nil {
				return 0, err
			}
			within += dist * dist
		}
	}
	if within == 0 {
		return 0, errors.New("quality: within-cluster dispersion is zero, index undefined")
	}
	return (between / float64(k-1)) / (within / float64(n-k)), nil
}

// DaviesBouldin computes the Davies-Bouldin index (lower is better
// separated). Like CalinskiHarabasz, it requires a Meaner[N] to locate
// per-cluster means.
func DaviesBouldin[N comparable](clusters []*cluster.Cluster[N], d distance.Distance[N]) (float64, error) {
	meaner, ok := d.(distance.Meaner[N])
	if !ok {
		return 0, errors.New("quality: distance has no Meaner[N], cannot locate cluster means")
	}

	nonempty := make([]*cluster.Cluster[N], 0, len(clusters))
	for _, k := range clusters {
		if k.Len() > 0 {
			nonempty = append(nonempty, k)
		}
	}
	if len(nonempty) < 2 {
		return 0, ErrInsufficientClusters
	}

	means := make([]N, len(nonempty))
	scatter := make([]float64, len(nonempty))
	for i, c := range nonempty {
		members := c.Nodes()
		mean, err := meaner.Mean(members)
		if err != nil {
			return 0, err
		}
		means[i] = mean

		var xs []float64
		for _, v := range members {
			dist, err := d.Between(v, mean)
			if err != nil {
				return 0, err
			}
			xs = append(xs, dist)
		}
		scatter[i] = stat.Mean(xs, nil)
	}

	var ratios []float64
	for i := range nonempty {
		worst := 0.0
		for j := range nonempty {
			if i == j {
				continue
			}
			sep, err := d.Between(means[i], means[j])
			if err != nil {
				return 0, err
			}
			if sep == 0 {
				continue
			}
			r := (scatter[i] + scatter[j]) / sep
			if r > worst {
				worst = r
			}
		}
		ratios = append(ratios, worst)
	}
	return stat.Mean(ratios, nil), nil
}
