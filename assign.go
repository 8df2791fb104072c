package kmeans2d

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kmeans2d/distance"
)

// minParallelPoints is the smallest point count for which the parallel
// assignment and update paths are worth the goroutine overhead.
const minParallelPoints = 256

// Assign labels every point in points with the index of its nearest centroid,
// mutating only the Cluster field. Ties are broken in favor of the
// lowest-indexed centroid: a candidate replaces the current best only on a
// strictly smaller distance.
//
// Returns ErrNoCentroids if centroids is empty.
func (c *Clusterer) Assign(ctx context.Context, centroids CentroidSet, points PointSet) error {
	if len(centroids) == 0 {
		return ErrNoCentroids
	}

	if c.parallelism > 1 && len(points) >= minParallelPoints {
		return c.assignParallel(ctx, centroids, points)
	}

	assignRange(c.distFunc, centroids, points)

	return nil
}

// assignRange runs the assignment pass over a contiguous slice of points.
// Safe to call concurrently on disjoint slices.
func assignRange(distFunc distance.Func, centroids CentroidSet, points PointSet) {
	for i := range points {
		p := &points[i]

		best := Unassigned
		bestDist := math.MaxFloat64

		for k := range centroids {
			d := distFunc(p.X, p.Y, centroids[k].X, centroids[k].Y)
			if d < bestDist {
				bestDist = d
				best = k
			}
		}

		p.Cluster = best
	}
}

func (c *Clusterer) assignParallel(ctx context.Context, centroids CentroidSet, points PointSet) error {
	g, ctx := errgroup.WithContext(ctx)

	chunk := (len(points) + c.parallelism - 1) / c.parallelism

	for start := 0; start < len(points); start += chunk {
		part := points[start:min(start+chunk, len(points))]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			assignRange(c.distFunc, centroids, part)

			return nil
		})
	}

	return g.Wait()
}
