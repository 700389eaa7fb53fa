package policy

import (
	"errors"
	"time"

	"github.com/cassette-db/cassette/types"
)

// SimpleRetry retries failed operations a bounded number of times with
// exponential backoff.
//
// Only faults where a retry can plausibly succeed are retried: replica
// unavailability, server-side timeouts, and transport failures. Invalid
// requests, authentication faults, and not-found results are never retried.
type SimpleRetry struct {
	numRetries int
	minBackoff time.Duration
	maxBackoff time.Duration
}

// SimpleRetryOption configures a SimpleRetry policy.
type SimpleRetryOption func(*SimpleRetry)

// WithNumRetries sets how many retries follow the initial attempt.
//
// Parameters:
//   - n: Number of retries (0 disables retrying)
//
// Returns:
//   - SimpleRetryOption: Configuration option
func WithNumRetries(n int) SimpleRetryOption {
	return func(s *SimpleRetry) {
		s.numRetries = n
	}
}

// WithBackoff sets the backoff window.
//
// The delay before retry n is min*2^n, capped at max.
//
// Parameters:
//   - min: Delay before the first retry
//   - max: Upper bound on any delay
//
// Returns:
//   - SimpleRetryOption: Configuration option
func WithBackoff(min, max time.Duration) SimpleRetryOption {
	return func(s *SimpleRetry) {
		s.minBackoff = min
		s.maxBackoff = max
	}
}

// NewSimpleRetry creates a SimpleRetry policy.
//
// Defaults: 2 retries, backoff window 50ms..1s.
//
// Parameters:
//   - opts: Optional configuration options
//
// Returns:
//   - *SimpleRetry: A new retry policy
func NewSimpleRetry(opts ...SimpleRetryOption) *SimpleRetry {
	s := &SimpleRetry{
		numRetries: 2,
		minBackoff: 50 * time.Millisecond,
		maxBackoff: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ShouldRetry reports whether the attempt should be retried.
//
// Parameters:
//   - op: The RPC method that failed
//   - attempt: Zero-based index of the attempt that just failed
//   - err: The failure
//
// Returns:
//   - bool: true if the operation should be tried again
func (s *SimpleRetry) ShouldRetry(_ string, attempt int, err error) bool {
	if attempt >= s.numRetries {
		return false
	}

	if errors.Is(err, types.ErrUnavailable) || errors.Is(err, types.ErrTimedOut) {
		return true
	}

	var connErr *types.ConnectionError
	return errors.As(err, &connErr)
}

// Backoff returns the delay to wait before the given retry.
//
// Parameters:
//   - attempt: Zero-based index of the attempt that just failed
//
// Returns:
//   - time.Duration: Delay before the next attempt
func (s *SimpleRetry) Backoff(attempt int) time.Duration {
	backoff := s.minBackoff << uint(attempt)
	if backoff > s.maxBackoff || backoff < s.minBackoff {
		return s.maxBackoff
	}

	return backoff
}
