// Package distance provides the distance metrics used for centroid assignment.
package distance

import (
	"fmt"
	"math"
)

// Euclidean calculates the standard 2-D Euclidean distance between (ax, ay)
// and (bx, by).
func Euclidean(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by

	return math.Sqrt(dx*dx + dy*dy)
}

// SquaredEuclidean calculates the squared 2-D Euclidean distance between
// (ax, ay) and (bx, by). It ranks candidates identically to Euclidean while
// avoiding the square root.
func SquaredEuclidean(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by

	return dx*dx + dy*dy
}

// Metric represents the distance metric used for nearest-centroid comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Func is a function type for distance calculation between two 2-D points.
type Func func(ax, ay, bx, by float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
