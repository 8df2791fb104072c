package kmeans2d

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordStep is called after each assign+update step.
	// duration is the time taken, err is nil if successful.
	RecordStep(duration time.Duration, err error)

	// RecordRun is called after each full run to convergence.
	// iterations is the number of steps executed, duration is the total time
	// taken, err is nil if successful.
	RecordRun(iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(time.Duration, error)     {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StepCount      atomic.Int64
	StepErrors     atomic.Int64
	StepTotalNanos atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunIterations  atomic.Int64
	RunTotalNanos  atomic.Int64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(duration time.Duration, err error) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StepErrors.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunIterations.Add(int64(iterations))
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}
