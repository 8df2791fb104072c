package kmeans2d

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCentroids is returned when a clustering operation is invoked with
	// an empty centroid set.
	ErrNoCentroids = errors.New("centroid set is empty")
)

// ErrClusterOutOfRange indicates a point carries a cluster label outside
// [0, k). Assignment never writes such a label; it signals external
// corruption of the point set.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrClusterOutOfRange struct {
	Cluster int
	K       int
	cause   error
}

func (e *ErrClusterOutOfRange) Error() string {
	return fmt.Sprintf("cluster label out of range: %d not in [0, %d)", e.Cluster, e.K)
}

func (e *ErrClusterOutOfRange) Unwrap() error { return e.cause }
