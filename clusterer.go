package kmeans2d

import (
	"context"
	"runtime"
	"time"

	"github.com/hupe1980/kmeans2d/distance"
)

// Clusterer runs Lloyd's algorithm over a point set and a fixed set of k
// centroids. It mutates both in place: point cluster labels during the
// assignment pass, centroid coordinates during the update pass. The centroid
// set is never resized, so index i refers to the same cluster slot for the
// whole run.
//
// A Clusterer is not safe for concurrent use; give each concurrent run its
// own instance.
type Clusterer struct {
	epsilon       float64
	maxIterations int
	parallelism   int
	distFunc      distance.Func
	logger        *Logger
	metrics       MetricsCollector

	prev CentroidSet // snapshot scratch, reused across steps
}

// New creates a new Clusterer.
func New(optFns ...Option) (*Clusterer, error) {
	opts := options{
		epsilon:          DefaultEpsilon,
		maxIterations:    DefaultMaxIterations,
		metric:           distance.MetricSquaredEuclidean,
		parallelism:      1,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.parallelism <= 0 {
		opts.parallelism = runtime.GOMAXPROCS(0)
	}

	distFunc, err := distance.Provider(opts.metric)
	if err != nil {
		return nil, err
	}

	return &Clusterer{
		epsilon:       opts.epsilon,
		maxIterations: opts.maxIterations,
		parallelism:   opts.parallelism,
		distFunc:      distFunc,
		logger:        opts.logger,
		metrics:       opts.metricsCollector,
	}, nil
}

// Step executes one assign+update pass and reports whether the centroids are
// stationary compared to their positions before the pass. Invoking Step
// repeatedly on any external cadence (timer, animation frame, button press)
// converges exactly like Run; the core carries no notion of timing.
//
// Returns ErrNoCentroids if centroids is empty.
func (c *Clusterer) Step(ctx context.Context, centroids CentroidSet, points PointSet) (bool, error) {
	start := time.Now()

	converged, err := c.step(ctx, centroids, points)

	c.metrics.RecordStep(time.Since(start), err)
	c.logger.LogStep(ctx, converged, err)

	return converged, err
}

func (c *Clusterer) step(ctx context.Context, centroids CentroidSet, points PointSet) (bool, error) {
	if len(centroids) == 0 {
		return false, ErrNoCentroids
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	c.prev = append(c.prev[:0], centroids...)

	if err := c.Assign(ctx, centroids, points); err != nil {
		return false, err
	}

	if err := c.Update(ctx, centroids, points); err != nil {
		return false, err
	}

	return Converged(c.prev, centroids, c.epsilon), nil
}

// Run executes assign+update passes until the centroids stop moving or the
// iteration cap is reached, and returns the number of passes executed. The
// first pass always executes: convergence is only ever measured against the
// snapshot taken at the top of the same pass.
//
// The context is checked at the top of every pass, so cancellation takes
// effect between iterations. Returns ErrNoCentroids if centroids is empty.
func (c *Clusterer) Run(ctx context.Context, centroids CentroidSet, points PointSet) (int, error) {
	start := time.Now()

	iterations, converged, err := c.run(ctx, centroids, points)

	c.metrics.RecordRun(iterations, time.Since(start), err)
	c.logger.WithK(len(centroids)).WithPoints(len(points)).LogRun(ctx, iterations, converged, err)

	return iterations, err
}

func (c *Clusterer) run(ctx context.Context, centroids CentroidSet, points PointSet) (int, bool, error) {
	if len(centroids) == 0 {
		return 0, false, ErrNoCentroids
	}

	for i := 1; i <= c.maxIterations; i++ {
		converged, err := c.step(ctx, centroids, points)
		if err != nil {
			return i - 1, false, err
		}

		if converged {
			return i, true, nil
		}
	}

	return c.maxIterations, false, nil
}
