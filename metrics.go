package jsd

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    distanceHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordDistance(duration time.Duration, err error) {
//	    p.distanceHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordDistance is called after each pair evaluation.
	// err is nil if successful.
	RecordDistance(duration time.Duration, err error)

	// RecordBatch is called after each OneToMany or Pairwise call.
	// pairs is the number of pairs evaluated, failed is the number that
	// produced no distance, duration is the total time taken.
	RecordBatch(pairs, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDistance(time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DistanceCount      atomic.Int64
	DistanceErrors     atomic.Int64
	DistanceTotalNanos atomic.Int64
	BatchCount         atomic.Int64
	BatchPairs         atomic.Int64
	BatchFailed        atomic.Int64
	BatchTotalNanos    atomic.Int64
}

// RecordDistance implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDistance(duration time.Duration, err error) {
	b.DistanceCount.Add(1)
	b.DistanceTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DistanceErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(pairs, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchPairs.Add(int64(pairs))
	b.BatchFailed.Add(int64(failed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DistanceCount:    b.DistanceCount.Load(),
		DistanceErrors:   b.DistanceErrors.Load(),
		DistanceAvgNanos: avg(b.DistanceTotalNanos.Load(), b.DistanceCount.Load()),
		BatchCount:       b.BatchCount.Load(),
		BatchPairs:       b.BatchPairs.Load(),
		BatchFailed:      b.BatchFailed.Load(),
		BatchAvgNanos:    avg(b.BatchTotalNanos.Load(), b.BatchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DistanceCount    int64
	DistanceErrors   int64
	DistanceAvgNanos int64
	BatchCount       int64
	BatchPairs       int64
	BatchFailed      int64
	BatchAvgNanos    int64
}
