package kmeans2d

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans2d/distance"
)

func TestAssign(t *testing.T) {
	ctx := context.Background()

	c, err := New()
	require.NoError(t, err)

	centroids := CentroidSet{{X: 0, Y: 0}, {X: 10, Y: 0}}
	points := PointSet{
		NewPoint(1, 1),
		NewPoint(9, 1),
		NewPoint(4, 0),  // closer to centroid 0
		NewPoint(6, -2), // closer to centroid 1
	}

	require.NoError(t, c.Assign(ctx, centroids, points))

	assert.Equal(t, 0, points[0].Cluster)
	assert.Equal(t, 1, points[1].Cluster)
	assert.Equal(t, 0, points[2].Cluster)
	assert.Equal(t, 1, points[3].Cluster)
}

func TestAssign_TieBreakLowestIndex(t *testing.T) {
	ctx := context.Background()

	c, err := New()
	require.NoError(t, err)

	t.Run("EquidistantPoint", func(t *testing.T) {
		centroids := CentroidSet{{X: 0, Y: 0}, {X: 10, Y: 0}}
		points := PointSet{NewPoint(5, 0)} // exactly between both

		require.NoError(t, c.Assign(ctx, centroids, points))
		assert.Equal(t, 0, points[0].Cluster)
	})

	t.Run("IdenticalCentroids", func(t *testing.T) {
		centroids := CentroidSet{{X: 3, Y: 3}, {X: 3, Y: 3}}
		points := PointSet{NewPoint(0, 0), NewPoint(10, 10)}

		require.NoError(t, c.Assign(ctx, centroids, points))
		// Every point ties; the lower-indexed centroid wins all of them.
		assert.Equal(t, 0, points[0].Cluster)
		assert.Equal(t, 0, points[1].Cluster)
	})
}

func TestAssign_EmptyCentroids(t *testing.T) {
	ctx := context.Background()

	c, err := New()
	require.NoError(t, err)

	points := PointSet{NewPoint(1, 1)}

	err = c.Assign(ctx, CentroidSet{}, points)
	assert.ErrorIs(t, err, ErrNoCentroids)
	assert.Equal(t, Unassigned, points[0].Cluster)
}

func TestAssign_MetricsAgree(t *testing.T) {
	ctx := context.Background()

	euclidean, err := New(WithMetric(distance.MetricEuclidean))
	require.NoError(t, err)

	squared, err := New(WithMetric(distance.MetricSquaredEuclidean))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))

	centroids := CentroidSet{{X: 10, Y: 10}, {X: 50, Y: 20}, {X: 30, Y: 70}}

	a := make(PointSet, 200)
	for i := range a {
		a[i] = NewPoint(rng.Float64()*100, rng.Float64()*100)
	}
	b := append(PointSet(nil), a...)

	require.NoError(t, euclidean.Assign(ctx, centroids, a))
	require.NoError(t, squared.Assign(ctx, centroids, b))

	assert.Equal(t, a, b)
}

func TestAssign_ParallelMatchesSerial(t *testing.T) {
	ctx := context.Background()

	serial, err := New()
	require.NoError(t, err)

	parallel, err := New(WithParallelism(4))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))

	centroids := CentroidSet{{X: 100, Y: 100}, {X: 500, Y: 200}, {X: 300, Y: 700}}

	a := make(PointSet, 2000)
	for i := range a {
		a[i] = NewPoint(rng.Float64()*800, rng.Float64()*600)
	}
	b := append(PointSet(nil), a...)

	require.NoError(t, serial.Assign(ctx, centroids, a))
	require.NoError(t, parallel.Assign(ctx, centroids, b))

	assert.Equal(t, a, b)
}

func TestAssign_AllLabelsInRange(t *testing.T) {
	ctx := context.Background()

	c, err := New()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))

	centroids := CentroidSet{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}}

	points := make(PointSet, 500)
	for i := range points {
		points[i] = NewPoint(rng.Float64()*10, rng.Float64()*10)
	}

	require.NoError(t, c.Assign(ctx, centroids, points))

	for _, p := range points {
		assert.GreaterOrEqual(t, p.Cluster, 0)
		assert.Less(t, p.Cluster, len(centroids))
	}
}
