package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StatusOK labels commands that completed without error
const StatusOK = "ok"

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	BytesProcessed  *prometheus.CounterVec

	startTime time.Time

	// Snapshot for quick reads without gathering
	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds running totals
type Snapshot struct {
	Commands      int64
	Failures      int64
	Bytes         int64
	TotalDuration time.Duration
}

// NewMetrics creates a new metrics collector on its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry:  reg,
		startTime: time.Now(),

		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileshell_commands_total",
				Help: "Total number of dispatched commands",
			},
			[]string{"verb", "status"},
		),
		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fileshell_command_duration_seconds",
				Help:    "Command duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 30},
			},
			[]string{"verb"},
		),
		BytesProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileshell_bytes_processed_total",
				Help: "Bytes read from source files by stream operations",
			},
			[]string{"op"},
		),
	}
}

// Registry returns the private registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordCommand records one dispatched command
func (m *Metrics) RecordCommand(verb, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(verb, status).Inc()
	m.CommandDuration.WithLabelValues(verb).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.Commands++
	if status != StatusOK {
		m.snapshot.Failures++
	}
	m.snapshot.TotalDuration += duration
	m.mu.Unlock()
}

// AddBytes records bytes processed by a stream operation
func (m *Metrics) AddBytes(op string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.BytesProcessed.WithLabelValues(op).Add(float64(n))

	m.mu.Lock()
	m.snapshot.Bytes += n
	m.mu.Unlock()
}

// Snapshot returns the running totals
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// Uptime returns the time since the collector was created
func (m *Metrics) Uptime() time.Duration {
	if m == nil {
		return 0
	}
	return time.Since(m.startTime)
}
