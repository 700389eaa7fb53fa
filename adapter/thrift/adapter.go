package thrift

import (
	"context"
	"time"

	"github.com/cassette-db/cassette/types"
)

// Consistency is a convenience alias - re-export from the types package.
type Consistency = types.Consistency

// Re-export consistency level constants for convenience.
const (
	One         = types.One
	Quorum      = types.Quorum
	LocalQuorum = types.LocalQuorum
	EachQuorum  = types.EachQuorum
	All         = types.All
	Any         = types.Any
	Two         = types.Two
	Three       = types.Three
	Serial      = types.Serial
	LocalSerial = types.LocalSerial
	LocalOne    = types.LocalOne
)

// Endpoint describes a connection target and its credentials.
//
// An Endpoint is immutable once handed to a Dialer; the façade builds it at
// construction time and never mutates it afterwards.
type Endpoint struct {
	// Host is the server host.
	Host string

	// Port is the server RPC port.
	Port int

	// Username and Password are the login credentials. Both may be empty,
	// in which case no login call is issued.
	Username string
	Password string

	// ConnectTimeout bounds the transport open. Zero means the driver default.
	ConnectTimeout time.Duration

	// SocketTimeout bounds individual socket reads and writes. Zero means
	// the driver default.
	SocketTimeout time.Duration
}

// Dialer opens a transport to an endpoint, authenticates, and returns the
// ready-to-use RPC stub.
type Dialer interface {
	// Dial connects and authenticates.
	//
	// Parameters:
	//   - ctx: Context bounding the connect attempt
	//   - endpoint: Connection target and credentials
	//
	// Returns:
	//   - Stub: An authenticated RPC stub
	//   - error: *types.ConnectionError on transport or auth failure
	Dial(ctx context.Context, endpoint Endpoint) (Stub, error)
}

// Stub is the narrow RPC surface the façade drives.
//
// Implementations perform one blocking synchronous round trip per call and
// surface server faults as *types.ProtocolError. A Stub is bound to a single
// connection and is not safe for concurrent use; the façade serializes calls.
type Stub interface {
	// SetKeyspace selects the keyspace for all subsequent operations on
	// this connection.
	SetKeyspace(ctx context.Context, keyspace string) error

	// Get fetches a single column or super-column by path.
	Get(ctx context.Context, key []byte, path ColumnPath, cl Consistency) (ColumnOrSuperColumn, error)

	// GetSlice fetches the columns of one row selected by a predicate.
	GetSlice(ctx context.Context, key []byte, parent ColumnParent, pred SlicePredicate, cl Consistency) ([]ColumnOrSuperColumn, error)

	// MultigetSlice fetches the columns of several rows in one round trip.
	MultigetSlice(ctx context.Context, keys [][]byte, parent ColumnParent, pred SlicePredicate, cl Consistency) (map[string][]ColumnOrSuperColumn, error)

	// GetCount counts the columns of one row selected by a predicate.
	GetCount(ctx context.Context, key []byte, parent ColumnParent, pred SlicePredicate, cl Consistency) (int32, error)

	// MultigetCount counts the columns of several rows in one round trip.
	MultigetCount(ctx context.Context, keys [][]byte, parent ColumnParent, pred SlicePredicate, cl Consistency) (map[string]int32, error)

	// GetRangeSlices fetches a contiguous range of rows.
	GetRangeSlices(ctx context.Context, parent ColumnParent, pred SlicePredicate, keyRange KeyRange, cl Consistency) ([]KeySlice, error)

	// GetIndexedSlices fetches rows matching a secondary-index clause.
	GetIndexedSlices(ctx context.Context, parent ColumnParent, clause IndexClause, pred SlicePredicate, cl Consistency) ([]KeySlice, error)

	// Insert writes a single column.
	Insert(ctx context.Context, key []byte, parent ColumnParent, column Column, cl Consistency) error

	// Remove deletes the column or row identified by path.
	Remove(ctx context.Context, key []byte, path ColumnPath, timestamp int64, cl Consistency) error

	// BatchMutate applies a mutation map (key → family → mutations) in a
	// single round trip.
	BatchMutate(ctx context.Context, mutations map[string]map[string][]Mutation, cl Consistency) error

	// Truncate removes all rows from a column family.
	Truncate(ctx context.Context, family string) error

	// DescribeKeyspaces lists the keyspace definitions known to the node.
	DescribeKeyspaces(ctx context.Context) ([]KsDef, error)

	// DescribeKeyspace fetches one keyspace definition.
	DescribeKeyspace(ctx context.Context, keyspace string) (KsDef, error)

	// DescribeClusterName returns the cluster name.
	DescribeClusterName(ctx context.Context) (string, error)

	// DescribeVersion returns the RPC API version string.
	DescribeVersion(ctx context.Context) (string, error)

	// DescribePartitioner returns the partitioner class name.
	DescribePartitioner(ctx context.Context) (string, error)

	// DescribeRing returns the token ring for a keyspace.
	DescribeRing(ctx context.Context, keyspace string) ([]TokenRange, error)

	// Close tears down the transport. The stub cannot be reused afterwards.
	Close() error
}
