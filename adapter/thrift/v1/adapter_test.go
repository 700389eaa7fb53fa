package v1

import (
	"context"
	"testing"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/cassette-db/cassette/adapter/thrift"
	"github.com/cassette-db/cassette/types"
)

// TestClientImplementsStub verifies that Client implements adapter.Stub.
func TestClientImplementsStub(t *testing.T) {
	// This is a compile-time check
	var _ adapter.Stub = (*Client)(nil)
}

// TestDialerImplementsDialer verifies that Dialer implements adapter.Dialer.
func TestDialerImplementsDialer(t *testing.T) {
	// This is a compile-time check
	var _ adapter.Dialer = (*Dialer)(nil)
}

func newTestProtocol() (*thrift.TMemoryBuffer, thrift.TProtocol) {
	buf := thrift.NewTMemoryBuffer()

	return buf, thrift.NewTBinaryProtocolConf(buf, nil)
}

func TestColumnRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, proto := newTestProtocol()

	in := adapter.Column{
		Name:      []byte("name"),
		Value:     []byte("value"),
		Timestamp: 1234567890,
		TTL:       60,
	}
	require.NoError(t, writeColumn(ctx, proto, in))

	out, err := readColumn(ctx, proto)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestColumnZeroTTLNotWritten(t *testing.T) {
	ctx := context.Background()
	_, proto := newTestProtocol()

	in := adapter.Column{Name: []byte("n"), Value: []byte("v"), Timestamp: 1}
	require.NoError(t, writeColumn(ctx, proto, in))

	out, err := readColumn(ctx, proto)
	require.NoError(t, err)
	assert.Zero(t, out.TTL)
	assert.Equal(t, in, out)
}

func TestSuperColumnRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, proto := newTestProtocol()

	in := adapter.ColumnOrSuperColumn{
		SuperColumn: &adapter.SuperColumn{
			Name: []byte("sc"),
			Columns: []adapter.Column{
				{Name: []byte("a"), Value: []byte("1"), Timestamp: 10},
				{Name: []byte("b"), Value: []byte("2"), Timestamp: 10},
			},
		},
	}
	require.NoError(t, writeColumnOrSuperColumn(ctx, proto, in))

	out, err := readColumnOrSuperColumn(ctx, proto)
	require.NoError(t, err)
	require.Nil(t, out.Column)
	require.NotNil(t, out.SuperColumn)
	assert.Equal(t, *in.SuperColumn, *out.SuperColumn)
}

func TestReadFaultExtractsWhy(t *testing.T) {
	ctx := context.Background()
	_, proto := newTestProtocol()

	// InvalidRequestException shape: field 1 is the "why" string. Add an
	// unknown trailing field to verify it is skipped.
	require.NoError(t, proto.WriteStructBegin(ctx, "InvalidRequestException"))
	require.NoError(t, writeStringField(ctx, proto, 1, "no such column family"))
	require.NoError(t, writeI32Field(ctx, proto, 7, 42))
	require.NoError(t, proto.WriteFieldStop(ctx))
	require.NoError(t, proto.WriteStructEnd(ctx))

	why, err := readFault(ctx, proto)
	require.NoError(t, err)
	assert.Equal(t, "no such column family", why)
}

func TestCallResultDecodesDeclaredFault(t *testing.T) {
	ctx := context.Background()
	_, proto := newTestProtocol()

	// A get_slice result carrying an UnavailableException in field 2.
	require.NoError(t, proto.WriteStructBegin(ctx, "get_slice_result"))
	require.NoError(t, proto.WriteFieldBegin(ctx, "", thrift.STRUCT, 2))
	require.NoError(t, proto.WriteStructBegin(ctx, "UnavailableException"))
	require.NoError(t, proto.WriteFieldStop(ctx))
	require.NoError(t, proto.WriteStructEnd(ctx))
	require.NoError(t, proto.WriteFieldEnd(ctx))
	require.NoError(t, proto.WriteFieldStop(ctx))
	require.NoError(t, proto.WriteStructEnd(ctx))

	result := &callResult{op: "get_slice", faults: writeFaults()}
	require.NoError(t, result.Read(ctx, proto))
	require.NotNil(t, result.fault)
	assert.Equal(t, "get_slice", result.fault.Op)
	assert.Equal(t, types.KindUnavailable, result.fault.Kind)
	assert.ErrorIs(t, result.fault, types.ErrUnavailable)
}

func TestCallResultReadsSuccessValue(t *testing.T) {
	ctx := context.Background()
	_, proto := newTestProtocol()

	require.NoError(t, proto.WriteStructBegin(ctx, "get_count_result"))
	require.NoError(t, writeI32Field(ctx, proto, 0, 17))
	require.NoError(t, proto.WriteFieldStop(ctx))
	require.NoError(t, proto.WriteStructEnd(ctx))

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
	require.NoError(t, result.Read(ctx, proto))
	require.Nil(t, result.fault)
	assert.Equal(t, int32(17), count)
}

func TestMutationMapRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, proto := newTestProtocol()

	mutations := map[string]map[string][]adapter.Mutation{
		"key1": {
			"Standard1": {
				{ColumnOrSuperColumn: &adapter.ColumnOrSuperColumn{
					SuperColumn: &adapter.SuperColumn{
						Name:    []byte("placeholder"),
						Columns: []adapter.Column{{Name: []byte("c"), Value: []byte("v"), Timestamp: 5}},
					},
				}},
			},
		},
	}
	require.NoError(t, writeMutationMap(ctx, proto, 1, mutations))

	// Walk the encoding back: field header, outer map, inner map, list, mutation.
	_, ftype, fid, err := proto.ReadFieldBegin(ctx)
	require.NoError(t, err)
	assert.Equal(t, thrift.TType(thrift.MAP), ftype)
	assert.Equal(t, int16(1), fid)

	_, _, outerSize, err := proto.ReadMapBegin(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, outerSize)

	key, err := proto.ReadBinary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("key1"), key)

	_, _, innerSize, err := proto.ReadMapBegin(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, innerSize)

	family, err := proto.ReadString(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Standard1", family)

	_, listSize, err := proto.ReadListBegin(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, listSize)

	// The mutation payload is a struct holding the super-column insert.
	require.NoError(t, thrift.SkipDefaultDepth(ctx, proto, thrift.STRUCT))
	require.NoError(t, proto.ReadListEnd(ctx))
	require.NoError(t, proto.ReadMapEnd(ctx))
	require.NoError(t, proto.ReadMapEnd(ctx))
	require.NoError(t, proto.ReadFieldEnd(ctx))
}

func TestKsDefReadSkipsUnknownFields(t *testing.T) {
	ctx := context.Background()
	_, proto := newTestProtocol()

	require.NoError(t, proto.WriteStructBegin(ctx, "KsDef"))
	require.NoError(t, writeStringField(ctx, proto, 1, "Keyspace1"))
	require.NoError(t, writeStringField(ctx, proto, 2, "SimpleStrategy"))
	// Deprecated replication_factor field, not modeled.
	require.NoError(t, writeI32Field(ctx, proto, 4, 3))
	require.NoError(t, proto.WriteFieldStop(ctx))
	require.NoError(t, proto.WriteStructEnd(ctx))

	ks, err := readKsDef(ctx, proto)
	require.NoError(t, err)
	assert.Equal(t, "Keyspace1", ks.Name)
	assert.Equal(t, "SimpleStrategy", ks.StrategyClass)
	assert.True(t, ks.DurableWrites)
}
