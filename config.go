package cassette

import (
	"time"

	"github.com/cassette-db/cassette/internal/logging"
	"github.com/cassette-db/cassette/internal/metrics"
	"github.com/cassette-db/cassette/types"
)

// Default connection target: the conventional legacy RPC port on loopback.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 9160
)

// TimestampProvider generates timestamps for write operations.
//
// The default provider uses time.Now().UnixMicro(), the write-time
// convention of the legacy protocol. The provider is invoked once per façade
// call, so all columns written by a single Insert share one timestamp.
type TimestampProvider func() int64

// DefaultTimestampProvider returns the current time in microseconds.
func DefaultTimestampProvider() int64 {
	return time.Now().UnixMicro()
}

// ClientConfig holds configuration for cassette clients.
type ClientConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	// Keyspace is selected right after connecting, when non-empty.
	Keyspace string

	// ReadConsistencyName and WriteConsistencyName are the per-kind default
	// levels, by name. Empty means the protocol default (ONE). Parsed and
	// validated in NewClient.
	ReadConsistencyName  string
	WriteConsistencyName string

	ConnectTimeout time.Duration
	SocketTimeout  time.Duration

	Dialer            Dialer
	RetryPolicy       RetryPolicy
	TimestampProvider TimestampProvider
	Logger            types.Logger
	Metrics           types.MetricsCollector
}

// DefaultConfig returns a ClientConfig with sensible defaults.
//
// Defaults: loopback host, conventional port, empty credentials, no initial
// keyspace, ONE for both consistency kinds, no retry policy (errors pass
// through unchanged), UnixMicro timestamps, nop logger and metrics.
//
// Returns:
//   - *ClientConfig: Configuration with default settings
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Host:              DefaultHost,
		Port:              DefaultPort,
		TimestampProvider: DefaultTimestampProvider,
		Logger:            logging.NewNopLogger(),
		Metrics:           metrics.NewNopMetrics(),
	}
}

// Option configures a ClientConfig.
type Option func(*ClientConfig)

// WithHost sets the server host.
//
// Parameters:
//   - host: Server host name or address
//
// Returns:
//   - Option: Configuration option
func WithHost(host string) Option {
	return func(c *ClientConfig) {
		c.Host = host
	}
}

// WithPort sets the server RPC port.
//
// Parameters:
//   - port: Server port
//
// Returns:
//   - Option: Configuration option
func WithPort(port int) Option {
	return func(c *ClientConfig) {
		c.Port = port
	}
}

// WithCredentials sets the login credentials.
//
// When both are empty (the default), no login call is issued at connect time.
//
// Parameters:
//   - username: Login user
//   - password: Login password
//
// Returns:
//   - Option: Configuration option
func WithCredentials(username, password string) Option {
	return func(c *ClientConfig) {
		c.Username = username
		c.Password = password
	}
}

// WithKeyspace sets the keyspace selected right after connecting.
//
// Parameters:
//   - keyspace: The initial keyspace name
//
// Returns:
//   - Option: Configuration option
func WithKeyspace(keyspace string) Option {
	return func(c *ClientConfig) {
		c.Keyspace = keyspace
	}
}

// WithReadConsistency sets the default consistency level for reads, by name.
//
// The name is validated in NewClient; an unknown name fails construction
// with *types.InvalidConsistencyLevelError.
//
// Parameters:
//   - name: Level name, e.g. "one", "quorum"
//
// Returns:
//   - Option: Configuration option
func WithReadConsistency(name string) Option {
	return func(c *ClientConfig) {
		c.ReadConsistencyName = name
	}
}

// WithWriteConsistency sets the default consistency level for writes, by name.
//
// Parameters:
//   - name: Level name, e.g. "one", "quorum"
//
// Returns:
//   - Option: Configuration option
func WithWriteConsistency(name string) Option {
	return func(c *ClientConfig) {
		c.WriteConsistencyName = name
	}
}

// WithConnectTimeout bounds the transport open at connect time.
//
// Parameters:
//   - d: Connect timeout; zero means the driver default
//
// Returns:
//   - Option: Configuration option
func WithConnectTimeout(d time.Duration) Option {
	return func(c *ClientConfig) {
		c.ConnectTimeout = d
	}
}

// WithSocketTimeout bounds individual socket reads and writes.
//
// Parameters:
//   - d: Socket timeout; zero means the driver default
//
// Returns:
//   - Option: Configuration option
func WithSocketTimeout(d time.Duration) Option {
	return func(c *ClientConfig) {
		c.SocketTimeout = d
	}
}

// WithDialer sets the dialer used to open the connection.
//
// The default is the framed binary-protocol dialer from adapter/thrift/v1.
// Tests inject fake dialers through this option.
//
// Parameters:
//   - dialer: The dialer implementation
//
// Returns:
//   - Option: Configuration option
func WithDialer(dialer Dialer) Option {
	return func(c *ClientConfig) {
		c.Dialer = dialer
	}
}

// WithRetryPolicy sets the retry policy collaborator.
//
// Without a policy (the default) every operation is a single attempt and
// errors pass through unchanged. Injecting a policy changes observable
// behavior: an operation may execute more than once server-side.
//
// Parameters:
//   - policy: The retry policy (e.g. policy.NewSimpleRetry())
//
// Returns:
//   - Option: Configuration option
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *ClientConfig) {
		c.RetryPolicy = policy
	}
}

// WithTimestampProvider sets the write-timestamp source.
//
// Parameters:
//   - fn: Function returning the timestamp for a write invocation
//
// Returns:
//   - Option: Configuration option
func WithTimestampProvider(fn TimestampProvider) Option {
	return func(c *ClientConfig) {
		c.TimestampProvider = fn
	}
}

// WithLogger sets the logger.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(c *ClientConfig) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics collector.
//
// Parameters:
//   - collector: The metrics collector implementation
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(c *ClientConfig) {
		c.Metrics = collector
	}
}
