package cassette

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cassette-db/cassette/adapter/thrift"
	v1 "github.com/cassette-db/cassette/adapter/thrift/v1"
	"github.com/cassette-db/cassette/internal/logging"
	"github.com/cassette-db/cassette/internal/metrics"
	"github.com/cassette-db/cassette/types"
)

// Client is a keyspace client façade over the legacy RPC surface.
//
// A Client owns at most one live connection, created lazily on first use and
// kept for the client's lifetime. Connection state follows an explicit
// machine driven only by Connect and Close:
//
//	Unconnected → Connecting → Ready
//	                        ↘ Failed → Connecting (explicit Connect retry)
//
// Once a lazy connect has failed, operations return ErrNotConnected (wrapping
// the cause) instead of silently re-dialing; call Connect to retry.
//
// # Concurrency
//
// All calls are blocking synchronous round trips, serialized on the single
// connection: there is no pipelining and exactly one in-flight RPC at a time.
// The intended shape is one Client (hence one connection) per logical caller;
// a shared Client is safe but callers will queue on each other.
//
// # Error handling
//
// Errors from the RPC boundary surface to the caller unchanged: no retries,
// no suppression, no logging of operation failures. Injecting a RetryPolicy
// (WithRetryPolicy) is the only way to change that.
type Client struct {
	config *ClientConfig

	// Per-kind consistency defaults, parsed at construction.
	readConsistency  Consistency
	writeConsistency Consistency

	// mu serializes connect transitions, keyspace changes, and RPC dispatch.
	mu         sync.Mutex
	state      atomic.Int32
	stub       thrift.Stub
	connectErr error
	keyspace   string
	closed     atomic.Bool
}

// NewClient creates a keyspace client.
//
// No connection is opened here; the first operation (or an explicit Connect)
// dials. Construction fails only on invalid configuration, such as an
// unknown consistency-level name.
//
// Parameters:
//   - opts: Optional configuration options
//
// Returns:
//   - *Client: A new client in the Unconnected state
//   - error: *types.InvalidConsistencyLevelError on a bad default level name
func NewClient(opts ...Option) (*Client, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	// Ensure logger and metrics are never nil
	if config.Logger == nil {
		config.Logger = logging.NewNopLogger()
	}
	if config.Metrics == nil {
		config.Metrics = metrics.NewNopMetrics()
	}
	if config.TimestampProvider == nil {
		config.TimestampProvider = DefaultTimestampProvider
	}
	if config.Dialer == nil {
		config.Dialer = v1.NewDialer()
	}

	client := &Client{
		config:           config,
		readConsistency:  types.One,
		writeConsistency: types.One,
		keyspace:         config.Keyspace,
	}

	if config.ReadConsistencyName != "" {
		level, err := types.ParseConsistency(config.ReadConsistencyName)
		if err != nil {
			return nil, err
		}
		client.readConsistency = level
	}
	if config.WriteConsistencyName != "" {
		level, err := types.ParseConsistency(config.WriteConsistencyName)
		if err != nil {
			return nil, err
		}
		client.writeConsistency = level
	}

	client.setState(types.Unconnected)

	return client, nil
}

// setState records a connection state transition.
func (c *Client) setState(state ConnState) {
	c.state.Store(int32(state))
	c.config.Metrics.SetConnState(state)
	c.config.Logger.Debug("connection state changed", "state", state.String())
}

// State returns the current connection state.
func (c *Client) State() ConnState {
	return ConnState(c.state.Load())
}

// Keyspace returns the currently selected keyspace name.
func (c *Client) Keyspace() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.keyspace
}

// Connect opens the connection if it is not already open.
//
// Connect is idempotent: a Ready client returns nil without touching the
// transport. After a failed attempt the client is in the Failed state and
// Connect may be called again to retry; operations never retry implicitly.
//
// Parameters:
//   - ctx: Context bounding the connect attempt
//
// Returns:
//   - error: *types.ConnectionError on transport or auth failure,
//     ErrClientClosed on a closed client
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.State() {
	case types.Ready:
		return nil
	case types.Closed:
		return types.ErrClientClosed
	default:
		_, err := c.connectLocked(ctx)

		return err
	}
}

// connectLocked performs one connect attempt. Caller holds mu.
func (c *Client) connectLocked(ctx context.Context) (thrift.Stub, error) {
	c.setState(types.Connecting)
	c.config.Metrics.IncConnectTotal()
	c.config.Logger.Debug("connecting", "host", c.config.Host, "port", c.config.Port)

	start := time.Now()
	stub, err := c.config.Dialer.Dial(ctx, thrift.Endpoint{
		Host:           c.config.Host,
		Port:           c.config.Port,
		Username:       c.config.Username,
		Password:       c.config.Password,
		ConnectTimeout: c.config.ConnectTimeout,
		SocketTimeout:  c.config.SocketTimeout,
	})
	if err == nil && c.keyspace != "" {
		if ksErr := stub.SetKeyspace(ctx, c.keyspace); ksErr != nil {
			_ = stub.Close()
			err = ksErr
		}
	}
	c.config.Metrics.ObserveConnectDuration(time.Since(start).Seconds())

	if err != nil {
		c.config.Metrics.IncConnectError()
		c.connectErr = err
		c.setState(types.Failed)
		c.config.Logger.Warn("connect failed", "host", c.config.Host, "port", c.config.Port, "error", err)

		return nil, err
	}

	c.stub = stub
	c.connectErr = nil
	c.setState(types.Ready)
	c.config.Logger.Info("connected", "host", c.config.Host, "port", c.config.Port, "keyspace", c.keyspace)

	return stub, nil
}

// ensureLocked returns the live stub, lazily connecting on first use.
// Caller holds mu.
func (c *Client) ensureLocked(ctx context.Context) (thrift.Stub, error) {
	switch c.State() {
	case types.Ready:
		return c.stub, nil
	case types.Closed:
		return nil, types.ErrClientClosed
	case types.Failed:
		return nil, &types.NotConnectedError{Cause: c.connectErr}
	default:
		return c.connectLocked(ctx)
	}
}

// do dispatches one façade operation: lazy connect, the RPC itself, and the
// optional retry loop. Request metrics are recorded here.
func (c *Client) do(ctx context.Context, op string, fn func(ctx context.Context, stub thrift.Stub) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stub, err := c.ensureLocked(ctx)
	if err != nil {
		return err
	}

	c.config.Metrics.IncRequestTotal(op)
	start := time.Now()

	err = fn(ctx, stub)
	for attempt := 0; err != nil && c.config.RetryPolicy != nil; attempt++ {
		if !c.config.RetryPolicy.ShouldRetry(op, attempt, err) {
			break
		}
		delay := c.config.RetryPolicy.Backoff(attempt)
		c.config.Metrics.IncRetryTotal(op)
		c.config.Logger.Warn("retrying operation", "op", op, "attempt", attempt+1, "delay", delay, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			c.config.Metrics.ObserveRequestDuration(op, time.Since(start).Seconds())
			c.config.Metrics.IncRequestError(op)

			return ctx.Err()
		case <-timer.C:
		}

		err = fn(ctx, stub)
	}

	c.config.Metrics.ObserveRequestDuration(op, time.Since(start).Seconds())
	if err != nil {
		c.config.Metrics.IncRequestError(op)
	}

	return err
}

// UseKeyspace selects a keyspace on the existing connection.
//
// The change is issued as a single set_keyspace call; the transport is never
// re-dialed. On success the new name becomes the client's active keyspace
// (used again if Connect is ever retried after a failure).
//
// Parameters:
//   - ctx: Context for the call
//   - keyspace: The keyspace to select
//
// Returns:
//   - error: nil on success, stub error otherwise
func (c *Client) UseKeyspace(ctx context.Context, keyspace string) error {
	err := c.do(ctx, "set_keyspace", func(ctx context.Context, stub thrift.Stub) error {
		return stub.SetKeyspace(ctx, keyspace)
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.keyspace = keyspace
	c.mu.Unlock()

	return nil
}

// Truncate removes all rows from a column family.
func (c *Client) Truncate(ctx context.Context, family string) error {
	return c.do(ctx, "truncate", func(ctx context.Context, stub thrift.Stub) error {
		return stub.Truncate(ctx, family)
	})
}

// DescribeKeyspaces lists the keyspace definitions known to the node.
func (c *Client) DescribeKeyspaces(ctx context.Context) ([]KsDef, error) {
	var keyspaces []KsDef
	err := c.do(ctx, "describe_keyspaces", func(ctx context.Context, stub thrift.Stub) (err error) {
		keyspaces, err = stub.DescribeKeyspaces(ctx)

		return err
	})

	return keyspaces, err
}

// DescribeKeyspace fetches one keyspace definition.
func (c *Client) DescribeKeyspace(ctx context.Context, keyspace string) (KsDef, error) {
	var ks KsDef
	err := c.do(ctx, "describe_keyspace", func(ctx context.Context, stub thrift.Stub) (err error) {
		ks, err = stub.DescribeKeyspace(ctx, keyspace)

		return err
	})

	return ks, err
}

// DescribeClusterName returns the cluster name.
func (c *Client) DescribeClusterName(ctx context.Context) (string, error) {
	var name string
	err := c.do(ctx, "describe_cluster_name", func(ctx context.Context, stub thrift.Stub) (err error) {
		name, err = stub.DescribeClusterName(ctx)

		return err
	})

	return name, err
}

// DescribeVersion returns the RPC API version string.
func (c *Client) DescribeVersion(ctx context.Context) (string, error) {
	var version string
	err := c.do(ctx, "describe_version", func(ctx context.Context, stub thrift.Stub) (err error) {
		version, err = stub.DescribeVersion(ctx)

		return err
	})

	return version, err
}

// DescribePartitioner returns the partitioner class name.
func (c *Client) DescribePartitioner(ctx context.Context) (string, error) {
	var partitioner string
	err := c.do(ctx, "describe_partitioner", func(ctx context.Context, stub thrift.Stub) (err error) {
		partitioner, err = stub.DescribePartitioner(ctx)

		return err
	})

	return partitioner, err
}

// DescribeRing returns the token ring for a keyspace.
func (c *Client) DescribeRing(ctx context.Context, keyspace string) ([]TokenRange, error) {
	var ring []TokenRange
	err := c.do(ctx, "describe_ring", func(ctx context.Context, stub thrift.Stub) (err error) {
		ring, err = stub.DescribeRing(ctx, keyspace)

		return err
	})

	return ring, err
}

// Close tears down the connection, if any, and marks the client unusable.
//
// Close is idempotent. After Close every operation returns ErrClientClosed.
//
// Returns:
//   - error: Transport close error, if any
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.stub != nil {
		err = c.stub.Close()
		c.stub = nil
	}
	c.setState(types.Closed)

	return err
}
