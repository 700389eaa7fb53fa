package types

// MetricsCollector defines methods for collecting operational metrics.
//
// Request-scoped methods accept the RPC method name (e.g. "get_slice",
// "insert", "batch_mutate") for labeling. Implementations should be
// thread-safe as methods may be called concurrently.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	import vmmetrics "github.com/cassette-db/cassette/contrib/metrics/vm"
//
//	collector := vmmetrics.New(vmmetrics.WithPrefix("myapp"))
//	client, _ := cassette.NewClient(
//	    cassette.WithMetrics(collector),
//	)
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// ----------------------
	// Connection lifecycle
	// ----------------------

	// IncConnectTotal increments the connect attempt counter.
	IncConnectTotal()

	// IncConnectError increments the failed connect counter.
	IncConnectError()

	// ObserveConnectDuration records a connect duration in seconds.
	ObserveConnectDuration(seconds float64)

	// SetConnState records the current connection state.
	SetConnState(state ConnState)

	// ----------------------
	// Requests
	// ----------------------

	// IncRequestTotal increments the request counter for an RPC method.
	IncRequestTotal(op string)

	// IncRequestError increments the request error counter for an RPC method.
	IncRequestError(op string)

	// ObserveRequestDuration records a request duration in seconds.
	ObserveRequestDuration(op string, seconds float64)

	// IncRetryTotal increments the retry counter for an RPC method.
	// Only ever incremented when a RetryPolicy is configured.
	IncRetryTotal(op string)
}
