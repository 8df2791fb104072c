package kmeans2d

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// accumulator collects the running mean of one cluster during an update pass.
type accumulator struct {
	sumX  float64
	sumY  float64
	count int
}

// Update recomputes every centroid as the arithmetic mean of the points
// currently labeled with its index, mutating only the coordinates. A centroid
// with no assigned points keeps its previous coordinates so it can re-attract
// points in a later assignment pass instead of collapsing to the origin.
//
// Points labeled Unassigned are skipped. A label outside [0, k) returns
// *ErrClusterOutOfRange; assignment never writes one, so it signals external
// corruption. Returns ErrNoCentroids if centroids is empty.
func (c *Clusterer) Update(ctx context.Context, centroids CentroidSet, points PointSet) error {
	if len(centroids) == 0 {
		return ErrNoCentroids
	}

	var (
		accs []accumulator
		err  error
	)

	if c.parallelism > 1 && len(points) >= minParallelPoints {
		accs, err = c.accumulateParallel(ctx, len(centroids), points)
	} else {
		accs, err = accumulate(len(centroids), points)
	}

	if err != nil {
		return err
	}

	for k := range centroids {
		if accs[k].count == 0 {
			continue
		}

		centroids[k].X = accs[k].sumX / float64(accs[k].count)
		centroids[k].Y = accs[k].sumY / float64(accs[k].count)
	}

	return nil
}

// accumulate sums coordinates and counts per cluster over a slice of points.
func accumulate(k int, points PointSet) ([]accumulator, error) {
	accs := make([]accumulator, k)

	for i := range points {
		label := points[i].Cluster
		if label == Unassigned {
			continue
		}

		if label < 0 || label >= k {
			return nil, &ErrClusterOutOfRange{Cluster: label, K: k}
		}

		accs[label].sumX += points[i].X
		accs[label].sumY += points[i].Y
		accs[label].count++
	}

	return accs, nil
}

// accumulateParallel shards the accumulation across workers with partitioned
// accumulators, merging them only after every worker has finished.
func (c *Clusterer) accumulateParallel(ctx context.Context, k int, points PointSet) ([]accumulator, error) {
	chunk := (len(points) + c.parallelism - 1) / c.parallelism
	numChunks := (len(points) + chunk - 1) / chunk

	parts := make([][]accumulator, numChunks)

	g, ctx := errgroup.WithContext(ctx)

	for idx := 0; idx < numChunks; idx++ {
		idx := idx
		start := idx * chunk
		part := points[start:min(start+chunk, len(points))]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			accs, err := accumulate(k, part)
			if err != nil {
				return err
			}

			parts[idx] = accs

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]accumulator, k)
	for _, accs := range parts {
		for j := range merged {
			merged[j].sumX += accs[j].sumX
			merged[j].sumY += accs[j].sumY
			merged[j].count += accs[j].count
		}
	}

	return merged, nil
}
