// Package cassette provides a keyspace client for column stores speaking the
// legacy binary RPC protocol.
//
// Cassette wraps the low-level RPC surface in a small façade: string keys
// and column names, per-call consistency overrides, and an explicit
// connection state machine instead of hidden reconnect loops.
//
// # Key Features
//
//   - Lazy Single Connection: One connection per client, dialed on first use
//   - Explicit State Machine: Unconnected → Connecting → Ready / Failed
//   - Named Consistency Levels: Levels resolved by name, never silently defaulted
//   - Selector Dispatch: One key uses the singular RPC, several use multiget
//   - Single-RPC Batches: Batch mutations apply in exactly one round trip
//
// # Basic Usage
//
//	client, err := cassette.NewClient(
//	    cassette.WithHost("db1.example.com"),
//	    cassette.WithKeyspace("metrics"),
//	    cassette.WithWriteConsistency("quorum"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.Insert(ctx, "users", "u42", map[string][]byte{
//	    "name":  []byte("ada"),
//	    "email": []byte("ada@example.com"),
//	})
//
//	col, err := client.Get(ctx, "users", "u42", "name")
//
// # Error Handling
//
// Cassette uses standard Go errors with typed wrappers in the types package:
//
//   - types.ErrNotConnected: A previous lazy connect failed; call Connect to retry
//   - types.ErrClientClosed: Operation attempted after Close
//   - types.ErrNotFound: Get on a column that does not exist
//   - types.ErrUnavailable, types.ErrTimedOut: Server-side fault conditions
//
// Server faults arrive as *types.ProtocolError, which unwraps to the
// matching sentinel:
//
//	_, err := client.Get(ctx, "users", "u42", "name")
//	if errors.Is(err, types.ErrNotFound) {
//	    // no such column
//	}
//
// An unknown consistency-level name, whether from configuration or a
// per-call WithConsistencyName, fails with
// *types.InvalidConsistencyLevelError; there is no fallback level.
//
// # Retries
//
// By default every error surfaces to the caller untouched. Injecting a
// policy changes that:
//
//	client, err := cassette.NewClient(
//	    cassette.WithRetryPolicy(policy.NewSimpleRetry(policy.WithNumRetries(3))),
//	)
//
// Only unavailable, timed-out, and connection errors are retried.
package cassette
