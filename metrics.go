package rowindex

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after an index is constructed.
	// rows is the length of the input sequence, err is nil if successful.
	RecordBuild(rows int, duration time.Duration, err error)

	// RecordAdd is called after each Add.
	RecordAdd(duration time.Duration, err error)

	// RecordLookup is called after each Lookup.
	// queries is the number of query rows, hits the number of positions returned.
	RecordLookup(queries, hits int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordAdd(time.Duration, error)        {}
func (NoopMetricsCollector) RecordLookup(int, int, time.Duration)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildRows        atomic.Int64
	AddCount         atomic.Int64
	AddErrors        atomic.Int64
	AddTotalNanos    atomic.Int64
	LookupCount      atomic.Int64
	LookupQueries    atomic.Int64
	LookupHits       atomic.Int64
	LookupTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(rows int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildRows.Add(int64(rows))
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(queries, hits int, duration time.Duration) {
	b.LookupCount.Add(1)
	b.LookupQueries.Add(int64(queries))
	b.LookupHits.Add(int64(hits))
	b.LookupTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		BuildRows:      b.BuildRows.Load(),
		AddCount:       b.AddCount.Load(),
		AddErrors:      b.AddErrors.Load(),
		AddAvgNanos:    avg(b.AddTotalNanos.Load(), b.AddCount.Load()),
		LookupCount:    b.LookupCount.Load(),
		LookupQueries:  b.LookupQueries.Load(),
		LookupHits:     b.LookupHits.Load(),
		LookupAvgNanos: avg(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
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
	BuildCount     int64
	BuildErrors    int64
	BuildRows      int64
	AddCount       int64
	AddErrors      int64
	AddAvgNanos    int64
	LookupCount    int64
	LookupQueries  int64
	LookupHits     int64
	LookupAvgNanos int64
}
