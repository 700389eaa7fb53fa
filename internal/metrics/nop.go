// Package metrics provides internal metrics utilities for cassette.
package metrics

import "github.com/cassette-db/cassette/types"

// NopMetrics is a no-op metrics collector that discards all metrics.
//
// This is used as the default metrics collector when no collector is configured,
// avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// ----------------------
// Connection lifecycle
// ----------------------

// IncConnectTotal discards the metric.
func (m *NopMetrics) IncConnectTotal() {}

// IncConnectError discards the metric.
func (m *NopMetrics) IncConnectError() {}

// ObserveConnectDuration discards the metric.
func (m *NopMetrics) ObserveConnectDuration(_ float64) {}

// SetConnState discards the metric.
func (m *NopMetrics) SetConnState(_ types.ConnState) {}

// ----------------------
// Requests
// ----------------------

// IncRequestTotal discards the metric.
func (m *NopMetrics) IncRequestTotal(_ string) {}

// IncRequestError discards the metric.
func (m *NopMetrics) IncRequestError(_ string) {}

// ObserveRequestDuration discards the metric.
func (m *NopMetrics) ObserveRequestDuration(_ string, _ float64) {}

// IncRetryTotal discards the metric.
func (m *NopMetrics) IncRetryTotal(_ string) {}
