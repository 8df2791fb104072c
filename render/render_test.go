package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans2d"
)

func TestClusterColor(t *testing.T) {
	assert.Equal(t, "#ffc0cb", ClusterColor(kmeans2d.Unassigned))
	assert.Equal(t, palette[0], ClusterColor(0))
	assert.Equal(t, palette[1], ClusterColor(1))
	// Wraps around for large cluster ids.
	assert.Equal(t, palette[0], ClusterColor(len(palette)))
}

func TestWriteHTML(t *testing.T) {
	points := kmeans2d.PointSet{
		{X: 0, Y: 0, Cluster: 0},
		{X: 1, Y: 1, Cluster: 1},
		kmeans2d.NewPoint(5, 5),
	}
	centroids := kmeans2d.CentroidSet{{X: 0, Y: 0}, {X: 1, Y: 1}}

	var buf bytes.Buffer
	err := WriteHTML(&buf, "clusters", points, centroids)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "cluster 0")
	assert.Contains(t, html, "cluster 1")
	assert.Contains(t, html, "unassigned")
	assert.Contains(t, html, "centroids")
}

func TestWriteHTML_NoUnassignedSeries(t *testing.T) {
	points := kmeans2d.PointSet{{X: 0, Y: 0, Cluster: 0}}
	centroids := kmeans2d.CentroidSet{{X: 0, Y: 0}}

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, "clusters", points, centroids))

	assert.NotContains(t, buf.String(), "unassigned")
}
