package v1

import (
	"context"
	"net"
	"strconv"

	"github.com/apache/thrift/lib/go/thrift"

	adapter "github.com/cassette-db/cassette/adapter/thrift"
	"github.com/cassette-db/cassette/types"
)

// Dialer opens framed binary-protocol connections to the legacy RPC port.
type Dialer struct{}

// Compile-time assertion that Dialer implements adapter.Dialer.
var _ adapter.Dialer = (*Dialer)(nil)

// NewDialer creates a new Dialer.
//
// Returns:
//   - *Dialer: A dialer producing framed binary-protocol stubs
func NewDialer() *Dialer {
	return &Dialer{}
}

// Dial opens the socket, wraps it in the framed transport and binary
// protocol, and performs the login call when credentials are present.
//
// Parameters:
//   - ctx: Context bounding the connect attempt
//   - endpoint: Connection target and credentials
//
// Returns:
//   - adapter.Stub: An authenticated stub bound to the new connection
//   - error: *types.ConnectionError on transport or auth failure
func (d *Dialer) Dial(ctx context.Context, endpoint adapter.Endpoint) (adapter.Stub, error) {
	conf := &thrift.TConfiguration{
		ConnectTimeout: endpoint.ConnectTimeout,
		SocketTimeout:  endpoint.SocketTimeout,
	}

	addr := net.JoinHostPort(endpoint.Host, strconv.Itoa(endpoint.Port))
	socket := thrift.NewTSocketConf(addr, conf)
	transport := thrift.NewTFramedTransportConf(socket, conf)
	if err := transport.Open(); err != nil {
		return nil, &types.ConnectionError{Host: endpoint.Host, Port: endpoint.Port, Err: err}
	}

	proto := thrift.NewTBinaryProtocolConf(transport, conf)
	client := &Client{
		transport: transport,
		client:    thrift.NewTStandardClient(proto, proto),
	}

	if endpoint.Username != "" || endpoint.Password != "" {
		if err := client.login(ctx, endpoint.Username, endpoint.Password); err != nil {
			_ = transport.Close()

			return nil, &types.ConnectionError{Host: endpoint.Host, Port: endpoint.Port, Err: err}
		}
	}

	return client, nil
}

// Client is an RPC stub bound to a single framed binary-protocol connection.
//
// Not safe for concurrent use; the façade serializes calls.
type Client struct {
	transport thrift.TTransport
	client    *thrift.TStandardClient
}

// Compile-time assertion that Client implements adapter.Stub.
var _ adapter.Stub = (*Client)(nil)

// login authenticates the connection with the given credentials.
func (c *Client) login(ctx context.Context, username, password string) error {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		return writeStructField(ctx, p, 1, func() error {
			return writeAuthenticationRequest(ctx, p, username, password)
		})
	}
	result := &callResult{op: "login", faults: map[int16]types.ErrorKind{
		1: types.KindAuthentication,
		2: types.KindAuthorization,
	}}

	return c.invoke(ctx, "login", fields, result)
}

// SetKeyspace selects the keyspace for all subsequent operations on this
// connection.
func (c *Client) SetKeyspace(ctx context.Context, keyspace string) error {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		return writeStringField(ctx, p, 1, keyspace)
	}
	result := &callResult{op: "set_keyspace", faults: map[int16]types.ErrorKind{
		1: types.KindInvalidRequest,
	}}

	return c.invoke(ctx, "set_keyspace", fields, result)
}

// Get fetches a single column or super-column by path.
func (c *Client) Get(ctx context.Context, key []byte, path adapter.ColumnPath, cl adapter.Consistency) (adapter.ColumnOrSuperColumn, error) {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		if err := writeBinaryField(ctx, p, 1, key); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 2, func() error { return writeColumnPath(ctx, p, path) }); err != nil {
			return err
		}

		return writeI32Field(ctx, p, 3, int32(cl))
	}

	var cosc adapter.ColumnOrSuperColumn
	result := &callResult{
		op:          "get",
		successType: thrift.STRUCT,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) (err error) {
			cosc, err = readColumnOrSuperColumn(ctx, p)

			return err
		},
		faults: map[int16]types.ErrorKind{
			1: types.KindInvalidRequest,
			2: types.KindNotFound,
			3: types.KindUnavailable,
			4: types.KindTimedOut,
		},
	}

	return cosc, c.invoke(ctx, "get", fields, result)
}

// GetSlice fetches the columns of one row selected by a predicate.
func (c *Client) GetSlice(ctx context.Context, key []byte, parent adapter.ColumnParent, pred adapter.SlicePredicate, cl adapter.Consistency) ([]adapter.ColumnOrSuperColumn, error) {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		if err := writeBinaryField(ctx, p, 1, key); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 2, func() error { return writeColumnParent(ctx, p, parent) }); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 3, func() error { return writeSlicePredicate(ctx, p, pred) }); err != nil {
			return err
		}

		return writeI32Field(ctx, p, 4, int32(cl))
	}

	var coscs []adapter.ColumnOrSuperColumn
	result := &callResult{
		op:          "get_slice",
		successType: thrift.LIST,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) (err error) {
			coscs, err = readCoscList(ctx, p)

			return err
		},
		faults: writeFaults(),
	}

	return coscs, c.invoke(ctx, "get_slice", fields, result)
}

// MultigetSlice fetches the columns of several rows in one round trip.
func (c *Client) MultigetSlice(ctx context.Context, keys [][]byte, parent adapter.ColumnParent, pred adapter.SlicePredicate, cl adapter.Consistency) (map[string][]adapter.ColumnOrSuperColumn, error) {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		if err := writeKeyListField(ctx, p, 1, keys); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 2, func() error { return writeColumnParent(ctx, p, parent) }); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 3, func() error { return writeSlicePredicate(ctx, p, pred) }); err != nil {
			return err
		}

		return writeI32Field(ctx, p, 4, int32(cl))
	}

	var rows map[string][]adapter.ColumnOrSuperColumn
	result := &callResult{
		op:          "multiget_slice",
		successType: thrift.MAP,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) error {
			_, _, size, err := p.ReadMapBegin(ctx)
			if err != nil {
				return err
			}
			rows = make(map[string][]adapter.ColumnOrSuperColumn, size)
			for i := 0; i < size; i++ {
				key, err := p.ReadBinary(ctx)
				if err != nil {
					return err
				}
				coscs, err := readCoscList(ctx, p)
				if err != nil {
					return err
				}
				rows[string(key)] = coscs
			}

			return p.ReadMapEnd(ctx)
		},
		faults: writeFaults(),
	}

	return rows, c.invoke(ctx, "multiget_slice", fields, result)
}

// GetCount counts the columns of one row selected by a predicate.
func (c *Client) GetCount(ctx context.Context, key []byte, parent adapter.ColumnParent, pred adapter.SlicePredicate, cl adapter.Consistency) (int32, error) {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		if err := writeBinaryField(ctx, p, 1, key); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 2, func() error { return writeColumnParent(ctx, p, parent) }); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 3, func() error { return writeSlicePredicate(ctx, p, pred) }); err != nil {
			return err
		}

		return writeI32Field(ctx, p, 4, int32(cl))
	}

	var count int32
	result := &callResult{
		op:          "get_count",
		successType: thrift.I32,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) (err error) {
			count, err = p.ReadI32(ctx)

			return err
		},
		faults: writeFaults(),
	}

	return count, c.invoke(ctx, "get_count", fields, result)
}

// MultigetCount counts the columns of several rows in one round trip.
func (c *Client) MultigetCount(ctx context.Context, keys [][]byte, parent adapter.ColumnParent, pred adapter.SlicePredicate, cl adapter.Consistency) (map[string]int32, error) {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		if err := writeKeyListField(ctx, p, 1, keys); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 2, func() error { return writeColumnParent(ctx, p, parent) }); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 3, func() error { return writeSlicePredicate(ctx, p, pred) }); err != nil {
			return err
		}

		return writeI32Field(ctx, p, 4, int32(cl))
	}

	var counts map[string]int32
	result := &callResult{
		op:          "multiget_count",
		successType: thrift.MAP,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) error {
			_, _, size, err := p.ReadMapBegin(ctx)
			if err != nil {
				return err
			}
			counts = make(map[string]int32, size)
			for i := 0; i < size; i++ {
				key, err := p.ReadBinary(ctx)
				if err != nil {
					return err
				}
				n, err := p.ReadI32(ctx)
				if err != nil {
					return err
				}
				counts[string(key)] = n
			}

			return p.ReadMapEnd(ctx)
		},
		faults: writeFaults(),
	}

	return counts, c.invoke(ctx, "multiget_count", fields, result)
}

// GetRangeSlices fetches a contiguous range of rows.
func (c *Client) GetRangeSlices(ctx context.Context, parent adapter.ColumnParent, pred adapter.SlicePredicate, keyRange adapter.KeyRange, cl adapter.Consistency) ([]adapter.KeySlice, error) {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		if err := writeStructField(ctx, p, 1, func() error { return writeColumnParent(ctx, p, parent) }); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 2, func() error { return writeSlicePredicate(ctx, p, pred) }); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 3, func() error { return writeKeyRange(ctx, p, keyRange) }); err != nil {
			return err
		}

		return writeI32Field(ctx, p, 4, int32(cl))
	}

	var slices []adapter.KeySlice
	result := &callResult{
		op:          "get_range_slices",
		successType: thrift.LIST,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) (err error) {
			slices, err = readKeySliceList(ctx, p)

			return err
		},
		faults: writeFaults(),
	}

	return slices, c.invoke(ctx, "get_range_slices", fields, result)
}

// GetIndexedSlices fetches rows matching a secondary-index clause.
func (c *Client) GetIndexedSlices(ctx context.Context, parent adapter.ColumnParent, clause adapter.IndexClause, pred adapter.SlicePredicate, cl adapter.Consistency) ([]adapter.KeySlice, error) {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		if err := writeStructField(ctx, p, 1, func() error { return writeColumnParent(ctx, p, parent) }); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 2, func() error { return writeIndexClause(ctx, p, clause) }); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 3, func() error { return writeSlicePredicate(ctx, p, pred) }); err != nil {
			return err
		}

		return writeI32Field(ctx, p, 4, int32(cl))
	}

	var slices []adapter.KeySlice
	result := &callResult{
		op:          "get_indexed_slices",
		successType: thrift.LIST,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) (err error) {
			slices, err = readKeySliceList(ctx, p)

			return err
		},
		faults: writeFaults(),
	}

	return slices, c.invoke(ctx, "get_indexed_slices", fields, result)
}

// Insert writes a single column.
func (c *Client) Insert(ctx context.Context, key []byte, parent adapter.ColumnParent, column adapter.Column, cl adapter.Consistency) error {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		if err := writeBinaryField(ctx, p, 1, key); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 2, func() error { return writeColumnParent(ctx, p, parent) }); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 3, func() error { return writeColumn(ctx, p, column) }); err != nil {
			return err
		}

		return writeI32Field(ctx, p, 4, int32(cl))
	}

	return c.invoke(ctx, "insert", fields, voidResult("insert"))
}

// Remove deletes the column or row identified by path.
func (c *Client) Remove(ctx context.Context, key []byte, path adapter.ColumnPath, timestamp int64, cl adapter.Consistency) error {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		if err := writeBinaryField(ctx, p, 1, key); err != nil {
			return err
		}
		if err := writeStructField(ctx, p, 2, func() error { return writeColumnPath(ctx, p, path) }); err != nil {
			return err
		}
		if err := writeI64Field(ctx, p, 3, timestamp); err != nil {
			return err
		}

		return writeI32Field(ctx, p, 4, int32(cl))
	}

	return c.invoke(ctx, "remove", fields, voidResult("remove"))
}

// BatchMutate applies a mutation map in a single round trip.
func (c *Client) BatchMutate(ctx context.Context, mutations map[string]map[string][]adapter.Mutation, cl adapter.Consistency) error {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		if err := writeMutationMap(ctx, p, 1, mutations); err != nil {
			return err
		}

		return writeI32Field(ctx, p, 2, int32(cl))
	}

	return c.invoke(ctx, "batch_mutate", fields, voidResult("batch_mutate"))
}

// Truncate removes all rows from a column family.
func (c *Client) Truncate(ctx context.Context, family string) error {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		return writeStringField(ctx, p, 1, family)
	}

	return c.invoke(ctx, "truncate", fields, voidResult("truncate"))
}

// DescribeKeyspaces lists the keyspace definitions known to the node.
func (c *Client) DescribeKeyspaces(ctx context.Context) ([]adapter.KsDef, error) {
	var keyspaces []adapter.KsDef
	result := &callResult{
		op:          "describe_keyspaces",
		successType: thrift.LIST,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) error {
			_, size, err := p.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			keyspaces = make([]adapter.KsDef, 0, size)
			for i := 0; i < size; i++ {
				ks, err := readKsDef(ctx, p)
				if err != nil {
					return err
				}
				keyspaces = append(keyspaces, ks)
			}

			return p.ReadListEnd(ctx)
		},
		faults: map[int16]types.ErrorKind{1: types.KindInvalidRequest},
	}

	return keyspaces, c.invoke(ctx, "describe_keyspaces", nil, result)
}

// DescribeKeyspace fetches one keyspace definition.
func (c *Client) DescribeKeyspace(ctx context.Context, keyspace string) (adapter.KsDef, error) {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		return writeStringField(ctx, p, 1, keyspace)
	}

	var ks adapter.KsDef
	result := &callResult{
		op:          "describe_keyspace",
		successType: thrift.STRUCT,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) (err error) {
			ks, err = readKsDef(ctx, p)

			return err
		},
		faults: map[int16]types.ErrorKind{
			1: types.KindNotFound,
			2: types.KindInvalidRequest,
		},
	}

	return ks, c.invoke(ctx, "describe_keyspace", fields, result)
}

// DescribeClusterName returns the cluster name.
func (c *Client) DescribeClusterName(ctx context.Context) (string, error) {
	return c.describeString(ctx, "describe_cluster_name")
}

// DescribeVersion returns the RPC API version string.
func (c *Client) DescribeVersion(ctx context.Context) (string, error) {
	return c.describeString(ctx, "describe_version")
}

// DescribePartitioner returns the partitioner class name.
func (c *Client) DescribePartitioner(ctx context.Context) (string, error) {
	return c.describeString(ctx, "describe_partitioner")
}

// describeString handles the zero-argument string-returning describe calls.
func (c *Client) describeString(ctx context.Context, op string) (string, error) {
	var value string
	result := &callResult{
		op:          op,
		successType: thrift.STRING,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) (err error) {
			value, err = p.ReadString(ctx)

			return err
		},
	}

	return value, c.invoke(ctx, op, nil, result)
}

// DescribeRing returns the token ring for a keyspace.
func (c *Client) DescribeRing(ctx context.Context, keyspace string) ([]adapter.TokenRange, error) {
	fields := func(ctx context.Context, p thrift.TProtocol) error {
		return writeStringField(ctx, p, 1, keyspace)
	}

	var ring []adapter.TokenRange
	result := &callResult{
		op:          "describe_ring",
		successType: thrift.LIST,
		readSuccess: func(ctx context.Context, p thrift.TProtocol) error {
			_, size, err := p.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			ring = make([]adapter.TokenRange, 0, size)
			for i := 0; i < size; i++ {
				tr, err := readTokenRange(ctx, p)
				if err != nil {
					return err
				}
				ring = append(ring, tr)
			}

			return p.ReadListEnd(ctx)
		},
		faults: map[int16]types.ErrorKind{1: types.KindInvalidRequest},
	}

	return ring, c.invoke(ctx, "describe_ring", fields, result)
}

// Close tears down the transport.
func (c *Client) Close() error {
	return c.transport.Close()
}
