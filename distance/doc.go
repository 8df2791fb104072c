// Package distance provides 2-D distance calculations for clustering.
//
// # Supported Metrics
//
//   - MetricEuclidean: Standard Euclidean distance
//   - MetricSquaredEuclidean: Squared Euclidean distance (default; same
//     ranking, no square root)
//
// # Usage
//
//	dist := distance.Euclidean(ax, ay, bx, by)
//	fn, _ := distance.Provider(distance.MetricSquaredEuclidean)
package distance
