package kmeans2d

import "github.com/hupe1980/kmeans2d/distance"

// Converged reports whether current has stabilized relative to previous:
// every centroid's squared displacement must be at most epsilon. Sets of
// different lengths are never converged, which lets a caller treat "no
// history yet" as not converged rather than an error.
//
// This is a fixed-point detector, not an optimality check: it only observes
// that the last step did not move centroids measurably.
func Converged(previous, current CentroidSet, epsilon float64) bool {
	if len(previous) != len(current) {
		return false
	}

	for i := range current {
		if distance.SquaredEuclidean(previous[i].X, previous[i].Y, current[i].X, current[i].Y) > epsilon {
			return false
		}
	}

	return true
}

// Converged reports whether current has stabilized relative to previous using
// the clusterer's configured epsilon.
func (c *Clusterer) Converged(previous, current CentroidSet) bool {
	return Converged(previous, current, c.epsilon)
}

// Inertia returns the sum of squared distances from every assigned point to
// its labeled centroid. Points labeled Unassigned or outside [0, k)
// contribute nothing. Each assign+update pass leaves this value no larger
// than before, which makes it a useful progress diagnostic.
func Inertia(centroids CentroidSet, points PointSet) float64 {
	var total float64

	for i := range points {
		label := points[i].Cluster
		if label < 0 || label >= len(centroids) {
			continue
		}

		total += distance.SquaredEuclidean(points[i].X, points[i].Y, centroids[label].X, centroids[label].Y)
	}

	return total
}
