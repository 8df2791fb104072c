// Package sample generates synthetic point sets and initial centroid
// positions for clustering demos and tests. The core clustering package has
// no dependency on it.
package sample

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hupe1980/kmeans2d"
)

// Generator produces reproducible synthetic samples from a seeded source.
type Generator struct {
	src rand.Source
}

// NewGenerator creates a Generator seeded for reproducibility.
func NewGenerator(seed uint64) *Generator {
	return &Generator{src: rand.NewSource(seed)}
}

// Blob appends n points drawn uniformly from the square of the given radius
// around (cx, cy) to dst and returns the extended set. Every generated point
// starts with its cluster label unset.
func (g *Generator) Blob(dst kmeans2d.PointSet, cx, cy, radius float64, n int) kmeans2d.PointSet {
	dx := distuv.Uniform{Min: -radius, Max: radius, Src: g.src}
	dy := distuv.Uniform{Min: -radius, Max: radius, Src: g.src}

	for i := 0; i < n; i++ {
		dst = append(dst, kmeans2d.NewPoint(cx+dx.Rand(), cy+dy.Rand()))
	}

	return dst
}

// Gaussian appends n points drawn from an isotropic normal distribution with
// the given standard deviation around (cx, cy) to dst and returns the
// extended set.
func (g *Generator) Gaussian(dst kmeans2d.PointSet, cx, cy, sigma float64, n int) kmeans2d.PointSet {
	dx := distuv.Normal{Mu: cx, Sigma: sigma, Src: g.src}
	dy := distuv.Normal{Mu: cy, Sigma: sigma, Src: g.src}

	for i := 0; i < n; i++ {
		dst = append(dst, kmeans2d.NewPoint(dx.Rand(), dy.Rand()))
	}

	return dst
}

// Centroids draws k initial centroid positions inside the width x height
// region. Centroid i is placed uniformly within the i-th diagonal band of the
// region, which spreads the initial positions without any knowledge of the
// data.
func (g *Generator) Centroids(width, height float64, k int) kmeans2d.CentroidSet {
	centroids := make(kmeans2d.CentroidSet, 0, k)

	if k <= 0 {
		return centroids
	}

	xSep := width / float64(k)
	ySep := height / float64(k)

	for i := 0; i < k; i++ {
		dx := distuv.Uniform{Min: xSep * float64(i), Max: xSep * float64(i+1), Src: g.src}
		dy := distuv.Uniform{Min: ySep * float64(i), Max: ySep * float64(i+1), Src: g.src}

		centroids = append(centroids, kmeans2d.Centroid{X: dx.Rand(), Y: dy.Rand()})
	}

	return centroids
}
