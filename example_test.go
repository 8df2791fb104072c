package kmeans2d_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/kmeans2d"
)

func Example() {
	ctx := context.Background()

	points := kmeans2d.PointSet{
		kmeans2d.NewPoint(0, 0),
		kmeans2d.NewPoint(0, 1),
		kmeans2d.NewPoint(10, 0),
		kmeans2d.NewPoint(10, 1),
	}
	centroids := kmeans2d.CentroidSet{{X: 0, Y: 0}, {X: 10, Y: 0}}

	c, err := kmeans2d.New()
	if err != nil {
		log.Fatal(err)
	}

	if _, err := c.Run(ctx, centroids, points); err != nil {
		log.Fatal(err)
	}

	for i, centroid := range centroids {
		fmt.Printf("centroid %d: (%.1f, %.1f)\n", i, centroid.X, centroid.Y)
	}
	// Output:
	// centroid 0: (0.0, 0.5)
	// centroid 1: (10.0, 0.5)
}

func ExampleClusterer_Step() {
	ctx := context.Background()

	points := kmeans2d.PointSet{
		kmeans2d.NewPoint(0, 0),
		kmeans2d.NewPoint(4, 0),
	}
	centroids := kmeans2d.CentroidSet{{X: 1, Y: 0}, {X: 3, Y: 0}}

	c, err := kmeans2d.New()
	if err != nil {
		log.Fatal(err)
	}

	steps := 0
	for {
		converged, err := c.Step(ctx, centroids, points)
		if err != nil {
			log.Fatal(err)
		}
		steps++
		if converged {
			break
		}
	}

	fmt.Printf("converged after %d steps\n", steps)
	// Output:
	// converged after 2 steps
}
