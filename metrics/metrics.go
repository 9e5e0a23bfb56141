package metrics

import (
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
	Histogram
)

func (t MetricType) String() string {
	switch t {
	case Counter:
		return "counter"
	case Gauge:
		return "gauge"
	case Histogram:
		return "histogram"
	default:
		return "unknown"
	}
}

// Metric represents a single metric
type Metric struct {
	Name        string
	Type        MetricType
	Description string
	Labels      map[string]string
}

// MetricValue represents the value of a metric
type MetricValue struct {
	Value     float64
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics
type Registry struct {
	metrics map[string]Metric
	values  map[string][]MetricValue
	mu      sync.RWMutex
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string][]MetricValue),
		now:     time.Now,
	}
}

func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
}

// Describe returns the registered metric with the given name.
func (r *Registry) Describe(name string) (Metric, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.metrics[name]
	return m, ok
}

func (r *Registry) RecordCounter(name string, value float64, labels map[string]string) {
	r.record(name, Counter, value, labels)
}

func (r *Registry) RecordHistogram(name string, value float64, labels map[string]string) {
	r.record(name, Histogram, value, labels)
}

func (r *Registry) RecordGauge(name string, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Gauge {
		r.values[name] = []MetricValue{{
			Value:     value,
			Timestamp: r.now(),
			Labels:    labels,
		}}
	}
}

// record appends a sample when name is registered with type t.
func (r *Registry) record(name string, t MetricType, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == t {
		r.values[name] = append(r.values[name], MetricValue{
			Value:     value,
			Timestamp: r.now(),
			Labels:    labels,
		})
	}
}

// Sum returns the total of all samples recorded for name.
func (r *Registry) Sum(name string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, v := range r.values[name] {
		total += v.Value
	}
	return total
}

// Last returns the most recent sample recorded for name.
func (r *Registry) Last(name string) (MetricValue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := r.values[name]
	if len(values) == 0 {
		return MetricValue{}, false
	}
	return values[len(values)-1], true
}

func (r *Registry) GetMetrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue)
	for name, values := range r.values {
		result[name] = append([]MetricValue{}, values...)
	}
	return result
}
