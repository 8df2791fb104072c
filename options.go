package kmeans2d

import "github.com/hupe1980/kmeans2d/distance"

const (
	// DefaultEpsilon is the default convergence tolerance: a centroid that
	// moved by a squared displacement of at most DefaultEpsilon is considered
	// stationary.
	DefaultEpsilon = 0.0001

	// DefaultMaxIterations bounds the convergence loop. Lloyd's algorithm
	// reaches a fixed point in finite steps for finite inputs, but the cap
	// guards against oscillation near the epsilon threshold.
	DefaultMaxIterations = 1000
)

type options struct {
	epsilon          float64
	maxIterations    int
	metric           distance.Metric
	parallelism      int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Clusterer construction.
type Option func(*options)

// WithEpsilon configures the convergence tolerance. The clusterer treats a
// step as converged when every centroid's squared displacement is at most
// epsilon.
//
// If epsilon is not positive, DefaultEpsilon is used.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		if epsilon <= 0 {
			epsilon = DefaultEpsilon
		}
		o.epsilon = epsilon
	}
}

// WithMaxIterations configures the iteration cap for Run.
//
// If maxIterations is not positive, DefaultMaxIterations is used.
func WithMaxIterations(maxIterations int) Option {
	return func(o *options) {
		if maxIterations <= 0 {
			maxIterations = DefaultMaxIterations
		}
		o.maxIterations = maxIterations
	}
}

// WithMetric configures the distance metric used for nearest-centroid
// assignment. Both supported metrics rank candidates identically; the squared
// variant skips the square root and is the default.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithParallelism configures the number of workers used for the assignment
// and update passes. Values above 1 shard points across goroutines; the
// default of 1 keeps both passes single-threaded.
//
// If parallelism is not positive, runtime.GOMAXPROCS(0) workers are used.
func WithParallelism(parallelism int) Option {
	return func(o *options) {
		o.parallelism = parallelism
	}
}

// WithLogger configures a logger for clustering operations.
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// clustering operations. Pass nil to disable metrics collection.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metricsCollector = collector
	}
}
