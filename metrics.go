package hifgo

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
//	    insertCounter prometheus.Counter
//	    queryHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordInsert(duration time.Duration) {
//	    p.insertCounter.Inc()
//	    // ... record duration, etc.
//	}
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	RecordInsert(duration time.Duration)

	// RecordQuery is called after each query operation.
	// results is the number of hyperedges returned.
	RecordQuery(results int, duration time.Duration)

	// RecordMaintenance is called after each maintenance pass.
	// affected is the number of nodes merged, pruned or reinserted.
	RecordMaintenance(affected int, duration time.Duration)

	// RecordSnapshot is called after each snapshot save or load.
	// bytes is the encoded size, err is nil if successful.
	RecordSnapshot(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration)               {}
func (NoopMetricsCollector) RecordQuery(int, time.Duration)           {}
func (NoopMetricsCollector) RecordMaintenance(int, time.Duration)     {}
func (NoopMetricsCollector) RecordSnapshot(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount         atomic.Int64
	InsertTotalNanos    atomic.Int64
	QueryCount          atomic.Int64
	QueryResults        atomic.Int64
	QueryTotalNanos     atomic.Int64
	MaintenanceCount    atomic.Int64
	MaintenanceAffected atomic.Int64
	SnapshotCount       atomic.Int64
	SnapshotErrors      atomic.Int64
	SnapshotBytes       atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// RecordMaintenance implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMaintenance(affected int, duration time.Duration) {
	b.MaintenanceCount.Add(1)
	b.MaintenanceAffected.Add(int64(affected))
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(bytes int, duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	b.SnapshotBytes.Add(int64(bytes))
	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:         b.InsertCount.Load(),
		InsertAvgNanos:      b.getAvgInsertNanos(),
		QueryCount:          b.QueryCount.Load(),
		QueryResults:        b.QueryResults.Load(),
		QueryAvgNanos:       b.getAvgQueryNanos(),
		MaintenanceCount:    b.MaintenanceCount.Load(),
		MaintenanceAffected: b.MaintenanceAffected.Load(),
		SnapshotCount:       b.SnapshotCount.Load(),
		SnapshotErrors:      b.SnapshotErrors.Load(),
		SnapshotBytes:       b.SnapshotBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount         int64
	InsertAvgNanos      int64
	QueryCount          int64
	QueryResults        int64
	QueryAvgNanos       int64
	MaintenanceCount    int64
	MaintenanceAffected int64
	SnapshotCount       int64
	SnapshotErrors      int64
	SnapshotBytes       int64
}
