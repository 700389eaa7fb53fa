package cassette

import "time"

// RetryPolicy decides whether a failed operation is tried again.
//
// The façade has no retry behavior of its own: errors from the RPC boundary
// surface to the caller unchanged. A policy is an explicitly injected
// collaborator (see WithRetryPolicy); implementations live in the policy
// package.
//
// Implementations MUST be safe for concurrent use when the owning client is
// shared.
type RetryPolicy interface {
	// ShouldRetry reports whether the operation should be tried again.
	//
	// Parameters:
	//   - op: The RPC method that failed, e.g. "insert"
	//   - attempt: Zero-based index of the attempt that just failed
	//   - err: The failure
	//
	// Returns:
	//   - bool: true to retry
	ShouldRetry(op string, attempt int, err error) bool

	// Backoff returns the delay to wait before the given retry.
	//
	// Parameters:
	//   - attempt: Zero-based index of the attempt that just failed
	//
	// Returns:
	//   - time.Duration: Delay before the next attempt
	Backoff(attempt int) time.Duration
}
