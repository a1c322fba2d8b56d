package sumgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSummarize is called after each summarization request.
	// k is the requested summary size, duration the total time taken,
	// err is nil if successful.
	RecordSummarize(k int, duration time.Duration, err error)

	// RecordSelection is called after the selection stage with the
	// candidate count and the number of accepted sentences.
	RecordSelection(candidates, accepted int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSummarize(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSelection(int, int)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SummarizeCount      atomic.Int64
	SummarizeErrors     atomic.Int64
	SummarizeTotalNanos atomic.Int64
	CandidateCount      atomic.Int64
	AcceptedCount       atomic.Int64
}

// RecordSummarize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSummarize(k int, duration time.Duration, err error) {
	b.SummarizeCount.Add(1)
	b.SummarizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SummarizeErrors.Add(1)
	}
}

// RecordSelection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelection(candidates, accepted int) {
	b.CandidateCount.Add(int64(candidates))
	b.AcceptedCount.Add(int64(accepted))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SummarizeCount:    b.SummarizeCount.Load(),
		SummarizeErrors:   b.SummarizeErrors.Load(),
		SummarizeAvgNanos: b.getAvgSummarizeNanos(),
		CandidateCount:    b.CandidateCount.Load(),
		AcceptedCount:     b.AcceptedCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSummarizeNanos() int64 {
	count := b.SummarizeCount.Load()
	if count == 0 {
		return 0
	}
	return b.SummarizeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SummarizeCount    int64
	SummarizeErrors   int64
	SummarizeAvgNanos int64
	CandidateCount    int64
	AcceptedCount     int64
}
