package monitoring

import (
	"context"

	"github.com/pic32/Priority-Queue/metrics"
	"github.com/pic32/Priority-Queue/priority"
)

const (
	MetricInserts        = "queue_inserts_total"
	MetricRemoves        = "queue_removes_total"
	MetricClears         = "queue_clears_total"
	MetricClearedEntries = "queue_cleared_entries_total"
	MetricErrors         = "queue_errors_total"
	MetricLength         = "queue_length"
	MetricInsertPosition = "queue_insert_position"
)

// Stats collects queue statistics. It implements priority.Observer.
type Stats struct {
	registry *metrics.Registry
	logger   Logger
	labels   map[string]string
}

var _ priority.Observer = (*Stats)(nil)

// NewStats registers the queue metrics on registry and returns an observer
// that records into it. queue labels every sample.
func NewStats(registry *metrics.Registry, logger Logger, queue string) *Stats {
	registry.Register(metrics.Metric{
		Name:        MetricInserts,
		Type:        metrics.Counter,
		Description: "Total number of values inserted",
	})

	registry.Register(metrics.Metric{
		Name:        MetricRemoves,
		Type:        metrics.Counter,
		Description: "Total number of values removed from the head",
	})

	registry.Register(metrics.Metric{
		Name:        MetricClears,
		Type:        metrics.Counter,
		Description: "Total number of clear operations",
	})

	registry.Register(metrics.Metric{
		Name:        MetricClearedEntries,
		Type:        metrics.Counter,
		Description: "Total number of values discarded by clear",
	})

	registry.Register(metrics.Metric{
		Name:        MetricErrors,
		Type:        metrics.Counter,
		Description: "Total number of failed operations by operation and error",
	})

	registry.Register(metrics.Metric{
		Name:        MetricLength,
		Type:        metrics.Gauge,
		Description: "Number of values in the queue",
	})

	registry.Register(metrics.Metric{
		Name:        MetricInsertPosition,
		Type:        metrics.Histogram,
		Description: "Index at which inserted values landed",
	})

	if logger == nil {
		logger = NopLogger{}
	}

	return &Stats{
		registry: registry,
		logger:   logger,
		labels:   map[string]string{"queue": queue},
	}
}

func (s *Stats) Inserted(position, length int) {
	s.registry.RecordCounter(MetricInserts, 1, s.labels)
	s.registry.RecordHistogram(MetricInsertPosition, float64(position), s.labels)
	s.registry.RecordGauge(MetricLength, float64(length), s.labels)
}

func (s *Stats) Removed(length int) {
	s.registry.RecordCounter(MetricRemoves, 1, s.labels)
	s.registry.RecordGauge(MetricLength, float64(length), s.labels)
}

func (s *Stats) Cleared(n int) {
	s.registry.RecordCounter(MetricClears, 1, s.labels)
	s.registry.RecordCounter(MetricClearedEntries, float64(n), s.labels)
	s.registry.RecordGauge(MetricLength, 0, s.labels)

	s.logger.Log(context.Background(), DEBUG, "queue_cleared", "queue cleared", map[string]interface{}{
		"queue":     s.labels["queue"],
		"discarded": n,
	})
}

func (s *Stats) Failed(op string, err error) {
	s.registry.RecordCounter(MetricErrors, 1, map[string]string{
		"queue": s.labels["queue"],
		"op":    op,
		"error": err.Error(),
	})

	s.logger.Log(context.Background(), WARN, "queue_error", "queue operation failed", map[string]interface{}{
		"queue": s.labels["queue"],
		"op":    op,
		"error": err.Error(),
	})
}
