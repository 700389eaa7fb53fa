// Package policy provides retry policies for the cassette client façade.
//
// The façade performs no retries by default: every error from the RPC
// boundary is surfaced unchanged to the caller. A retry policy is an
// explicitly injected collaborator that changes that behavior for the
// faults where a retry can help.
//
// All policies implement the cassette.RetryPolicy interface:
//
//	type RetryPolicy interface {
//	    ShouldRetry(op string, attempt int, err error) bool
//	    Backoff(attempt int) time.Duration
//	}
//
// Available policies:
//
//   - [SimpleRetry]: Bounded attempts with exponential backoff, retrying
//     only unavailable/timed-out faults and transport-level failures
//
// Example:
//
//	client, _ := cassette.NewClient(
//	    cassette.WithRetryPolicy(policy.NewSimpleRetry(
//	        policy.WithNumRetries(3),
//	        policy.WithBackoff(50*time.Millisecond, time.Second),
//	    )),
//	)
//
// Retries change observable behavior (an operation may execute more than
// once server-side); only inject a policy for idempotent workloads.
package policy
