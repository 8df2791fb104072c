package kmeans2d

import "slices"

// Unassigned marks a point that has not yet been labeled by an assignment
// pass.
const Unassigned = -1

// Point is a 2-D sample with its current cluster label.
//
// Cluster is Unassigned until the first assignment pass; afterwards it is a
// valid index into the CentroidSet used for clustering.
type Point struct {
	X       float64
	Y       float64
	Cluster int
}

// PointSet is an ordered sequence of points. Order never affects the
// algorithm but is preserved for reproducibility.
type PointSet []Point

// NewPoint returns a point with its cluster label unset.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, Cluster: Unassigned}
}

// ResetLabels sets every point's cluster label back to Unassigned.
func (ps PointSet) ResetLabels() {
	for i := range ps {
		ps[i].Cluster = Unassigned
	}
}

// CountByCluster returns the number of points labeled with each cluster index
// in [0, k). Points with labels outside that range are ignored.
func (ps PointSet) CountByCluster(k int) []int {
	counts := make([]int, k)
	for i := range ps {
		if c := ps[i].Cluster; c >= 0 && c < k {
			counts[c]++
		}
	}

	return counts
}

// Centroid is a 2-D cluster center. Its identity is its index in the
// CentroidSet; only its coordinates move during clustering.
type Centroid struct {
	X float64
	Y float64
}

// CentroidSet is an ordered sequence of centroids. Its length is k and stays
// fixed for the lifetime of a clustering run.
type CentroidSet []Centroid

// Clone returns an independent copy of the centroid set.
func (cs CentroidSet) Clone() CentroidSet {
	return slices.Clone(cs)
}
