// Package kmeans2d provides k-means clustering for 2-D point sets.
//
// The package implements Lloyd's algorithm: each pass assigns every point to
// its nearest centroid and then moves every centroid to the mean of its
// assigned points, repeating until the centroids stop moving measurably or an
// iteration cap is reached.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	points := kmeans2d.PointSet{
//		kmeans2d.NewPoint(0, 0), kmeans2d.NewPoint(0, 1),
//		kmeans2d.NewPoint(10, 0), kmeans2d.NewPoint(10, 1),
//	}
//	centroids := kmeans2d.CentroidSet{{X: 0, Y: 0}, {X: 10, Y: 0}}
//
//	c, _ := kmeans2d.New()
//	iterations, _ := c.Run(ctx, centroids, points)
//
// After Run, every point's Cluster field indexes its centroid and the
// centroids sit at their converged positions.
//
// # Step-Wise Convergence
//
// For animated or interactive convergence, drive the loop yourself:
//
//	for {
//		converged, err := c.Step(ctx, centroids, points)
//		if err != nil || converged {
//			break
//		}
//		// render, sleep, wait for a frame...
//	}
//
// The core has no dependency on timing, rendering, or sample generation; the
// sample and render subpackages provide those as optional collaborators.
//
// # Guarantees
//
//   - Ties in the assignment pass favor the lowest-indexed centroid.
//   - A centroid with no assigned points keeps its coordinates instead of
//     producing NaN.
//   - The sum of squared point-to-centroid distances (Inertia) never
//     increases from one pass to the next.
//   - The centroid set is never resized: index i means the same cluster slot
//     for the whole run.
package kmeans2d
