package vm

import (
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/VictoriaMetrics/metrics"

	"github.com/cassette-db/cassette/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "cassette"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector will register metrics with this set instead of
// creating a new one. The caller is responsible for exposing this set
// (e.g., via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// Connection metrics are pre-created at initialization time; per-operation
// metrics are created on first use of each operation name. Thread-safe for
// concurrent use.
type Collector struct {
	set    *metrics.Set
	prefix string

	// Connection metrics
	connectTotal    *metrics.Counter
	connectErrors   *metrics.Counter
	connectDuration *metrics.Histogram
	connState       atomic.Int64
}

// New creates a new VictoriaMetrics-based metrics collector.
//
// The collector creates its own metrics.Set and registers it globally.
//
// Parameters:
//   - opts: Configuration options (e.g., WithPrefix)
//
// Returns:
//   - *Collector: A new metrics collector ready for use
//
// Example:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	client, _ := cassette.NewClient(
//	    cassette.WithMetrics(collector),
//	)
func New(opts ...Option) *Collector {
	c := &Collector{
		prefix: "cassette",
	}

	for _, opt := range opts {
		opt(c)
	}

	// If no set is provided, create a new one and register it globally.
	// If a set is provided, we assume the caller manages it.
	if c.set == nil {
		c.set = metrics.NewSet()
		metrics.RegisterSet(c.set)
	}

	c.initMetrics()

	return c
}

// initMetrics pre-creates the connection metrics with the configured prefix.
func (c *Collector) initMetrics() {
	p := c.prefix

	c.connectTotal = c.set.NewCounter(fmt.Sprintf(`%s_connect_total`, p))
	c.connectErrors = c.set.NewCounter(fmt.Sprintf(`%s_connect_errors_total`, p))
	c.connectDuration = c.set.NewHistogram(fmt.Sprintf(`%s_connect_duration_seconds`, p))

	// Connection state as a gauge with a callback.
	c.set.NewGauge(fmt.Sprintf(`%s_conn_state`, p), func() float64 {
		return float64(c.connState.Load())
	})
}

func (c *Collector) Set() *metrics.Set {
	return c.set
}

// Handler returns an HTTP handler that exposes metrics in Prometheus format.
//
// Example:
//
//	http.HandleFunc("/metrics", collector.Handler)
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// WritePrometheus writes all metrics in Prometheus format to the given writer.
//
// Parameters:
//   - w: The writer to write metrics to
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// ----------------------
// Connection
// ----------------------

// IncConnectTotal increments the total connect attempts counter.
func (c *Collector) IncConnectTotal() {
	c.connectTotal.Inc()
}

// IncConnectError increments the failed connect attempts counter.
func (c *Collector) IncConnectError() {
	c.connectErrors.Inc()
}

// ObserveConnectDuration records the duration of a connect attempt.
func (c *Collector) ObserveConnectDuration(seconds float64) {
	c.connectDuration.Update(seconds)
}

// SetConnState records the current connection state as a numeric gauge
// (the ConnState enum value).
func (c *Collector) SetConnState(state types.ConnState) {
	c.connState.Store(int64(state))
}

// ----------------------
// Requests
// ----------------------

// IncRequestTotal increments the total requests counter for an operation.
func (c *Collector) IncRequestTotal(op string) {
	c.set.GetOrCreateCounter(fmt.Sprintf(`%s_request_total{op=%q}`, c.prefix, op)).Inc()
}

// IncRequestError increments the failed requests counter for an operation.
func (c *Collector) IncRequestError(op string) {
	c.set.GetOrCreateCounter(fmt.Sprintf(`%s_request_errors_total{op=%q}`, c.prefix, op)).Inc()
}

// ObserveRequestDuration records the duration of one operation round trip.
func (c *Collector) ObserveRequestDuration(op string, seconds float64) {
	c.set.GetOrCreateHistogram(fmt.Sprintf(`%s_request_duration_seconds{op=%q}`, c.prefix, op)).Update(seconds)
}

// IncRetryTotal increments the retry counter for an operation.
func (c *Collector) IncRetryTotal(op string) {
	c.set.GetOrCreateCounter(fmt.Sprintf(`%s_retry_total{op=%q}`, c.prefix, op)).Inc()
}

// Compile-time interface check
var _ types.MetricsCollector = (*Collector)(nil)
