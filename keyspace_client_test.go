package cassette

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassette-db/cassette/adapter/thrift"
	"github.com/cassette-db/cassette/types"
)

// stubCall records one RPC issued against the mock stub.
type stubCall struct {
	op          string
	key         string
	keys        []string
	path        thrift.ColumnPath
	parent      thrift.ColumnParent
	pred        thrift.SlicePredicate
	column      thrift.Column
	timestamp   int64
	mutations   map[string]map[string][]thrift.Mutation
	consistency Consistency
	keyspace    string
	family      string
}

// mockStub implements thrift.Stub for testing.
type mockStub struct {
	calls []stubCall

	errByOp map[string]error
	// failures limits how many times errByOp fires; zero means always.
	failures int

	getResult      thrift.ColumnOrSuperColumn
	sliceResult    []thrift.ColumnOrSuperColumn
	multigetResult map[string][]thrift.ColumnOrSuperColumn
	countResult    int32
	closed         bool
}

func newMockStub() *mockStub {
	return &mockStub{errByOp: make(map[string]error)}
}

func (m *mockStub) record(call stubCall) error {
	m.calls = append(m.calls, call)
	err := m.errByOp[call.op]
	if err != nil && m.failures > 0 {
		m.failures--
		if m.failures == 0 {
			delete(m.errByOp, call.op)
		}
	}

	return err
}

func (m *mockStub) callsFor(op string) []stubCall {
	var out []stubCall
	for _, call := range m.calls {
		if call.op == op {
			out = append(out, call)
		}
	}

	return out
}

func (m *mockStub) SetKeyspace(ctx context.Context, keyspace string) error {
	return m.record(stubCall{op: "set_keyspace", keyspace: keyspace})
}

func (m *mockStub) Get(ctx context.Context, key []byte, path thrift.ColumnPath, cl Consistency) (thrift.ColumnOrSuperColumn, error) {
	err := m.record(stubCall{op: "get", key: string(key), path: path, consistency: cl})

	return m.getResult, err
}

func (m *mockStub) GetSlice(ctx context.Context, key []byte, parent thrift.ColumnParent, pred thrift.SlicePredicate, cl Consistency) ([]thrift.ColumnOrSuperColumn, error) {
	err := m.record(stubCall{op: "get_slice", key: string(key), parent: parent, pred: pred, consistency: cl})

	return m.sliceResult, err
}

func (m *mockStub) MultigetSlice(ctx context.Context, keys [][]byte, parent thrift.ColumnParent, pred thrift.SlicePredicate, cl Consistency) (map[string][]thrift.ColumnOrSuperColumn, error) {
	err := m.record(stubCall{op: "multiget_slice", keys: fromByteKeys(keys), parent: parent, pred: pred, consistency: cl})

	return m.multigetResult, err
}

func (m *mockStub) GetCount(ctx context.Context, key []byte, parent thrift.ColumnParent, pred thrift.SlicePredicate, cl Consistency) (int32, error) {
	err := m.record(stubCall{op: "get_count", key: string(key), parent: parent, pred: pred, consistency: cl})

	return m.countResult, err
}

func (m *mockStub) MultigetCount(ctx context.Context, keys [][]byte, parent thrift.ColumnParent, pred thrift.SlicePredicate, cl Consistency) (map[string]int32, error) {
	err := m.record(stubCall{op: "multiget_count", keys: fromByteKeys(keys), parent: parent, pred: pred, consistency: cl})

	return map[string]int32{}, err
}

func (m *mockStub) GetRangeSlices(ctx context.Context, parent thrift.ColumnParent, pred thrift.SlicePredicate, keyRange thrift.KeyRange, cl Consistency) ([]thrift.KeySlice, error) {
	err := m.record(stubCall{op: "get_range_slices", parent: parent, pred: pred, consistency: cl})

	return nil, err
}

func (m *mockStub) GetIndexedSlices(ctx context.Context, parent thrift.ColumnParent, clause thrift.IndexClause, pred thrift.SlicePredicate, cl Consistency) ([]thrift.KeySlice, error) {
	err := m.record(stubCall{op: "get_indexed_slices", parent: parent, pred: pred, consistency: cl})

	return nil, err
}

func (m *mockStub) Insert(ctx context.Context, key []byte, parent thrift.ColumnParent, column thrift.Column, cl Consistency) error {
	return m.record(stubCall{op: "insert", key: string(key), parent: parent, column: column, consistency: cl})
}

func (m *mockStub) Remove(ctx context.Context, key []byte, path thrift.ColumnPath, timestamp int64, cl Consistency) error {
	return m.record(stubCall{op: "remove", key: string(key), path: path, timestamp: timestamp, consistency: cl})
}

func (m *mockStub) BatchMutate(ctx context.Context, mutations map[string]map[string][]thrift.Mutation, cl Consistency) error {
	return m.record(stubCall{op: "batch_mutate", mutations: mutations, consistency: cl})
}

func (m *mockStub) Truncate(ctx context.Context, family string) error {
	return m.record(stubCall{op: "truncate", family: family})
}

func (m *mockStub) DescribeKeyspaces(ctx context.Context) ([]thrift.KsDef, error) {
	return nil, m.record(stubCall{op: "describe_keyspaces"})
}

func (m *mockStub) DescribeKeyspace(ctx context.Context, keyspace string) (thrift.KsDef, error) {
	err := m.record(stubCall{op: "describe_keyspace", keyspace: keyspace})

	return thrift.KsDef{Name: keyspace}, err
}

func (m *mockStub) DescribeClusterName(ctx context.Context) (string, error) {
	return "Test Cluster", m.record(stubCall{op: "describe_cluster_name"})
}

func (m *mockStub) DescribeVersion(ctx context.Context) (string, error) {
	return "19.30.0", m.record(stubCall{op: "describe_version"})
}

func (m *mockStub) DescribePartitioner(ctx context.Context) (string, error) {
	return "RandomPartitioner", m.record(stubCall{op: "describe_partitioner"})
}

func (m *mockStub) DescribeRing(ctx context.Context, keyspace string) ([]thrift.TokenRange, error) {
	return nil, m.record(stubCall{op: "describe_ring", keyspace: keyspace})
}

func (m *mockStub) Close() error {
	m.closed = true

	return nil
}

func fromByteKeys(keys [][]byte) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, string(key))
	}

	return out
}

// mockDialer implements thrift.Dialer for testing.
type mockDialer struct {
	stub      *mockStub
	dialCount int
	dialErr   error
	// dialFailures limits how many dials fail; zero means dialErr always fires.
	dialFailures int
	lastTarget   thrift.Endpoint
}

func newMockDialer(stub *mockStub) *mockDialer {
	return &mockDialer{stub: stub}
}

func (d *mockDialer) Dial(ctx context.Context, endpoint thrift.Endpoint) (thrift.Stub, error) {
	d.dialCount++
	d.lastTarget = endpoint
	if d.dialErr != nil {
		err := d.dialErr
		if d.dialFailures > 0 {
			d.dialFailures--
			if d.dialFailures == 0 {
				d.dialErr = nil
			}
		}

		return nil, err
	}

	return d.stub, nil
}

// newTestClient builds a client wired to a fresh mock stub and dialer.
func newTestClient(t *testing.T, opts ...Option) (*Client, *mockStub, *mockDialer) {
	t.Helper()

	stub := newMockStub()
	dialer := newMockDialer(stub)
	opts = append([]Option{WithDialer(dialer)}, opts...)

	client, err := NewClient(opts...)
	require.NoError(t, err)

	return client, stub, dialer
}

func TestNewClientInvalidConsistencyName(t *testing.T) {
	_, err := NewClient(WithReadConsistency("bogus"))
	require.Error(t, err)

	var invalidErr *types.InvalidConsistencyLevelError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "bogus", invalidErr.Name)
}

func TestConnectIsLazyAndIdempotent(t *testing.T) {
	client, _, dialer := newTestClient(t)
	defer client.Close()

	assert.Equal(t, types.Unconnected, client.State())
	assert.Equal(t, 0, dialer.dialCount)

	ctx := context.Background()
	require.NoError(t, client.Connect(ctx))
	require.NoError(t, client.Connect(ctx))

	assert.Equal(t, types.Ready, client.State())
	assert.Equal(t, 1, dialer.dialCount)
}

func TestFirstOperationDialsOnce(t *testing.T) {
	client, stub, dialer := newTestClient(t, WithKeyspace("metrics"))
	defer client.Close()

	ctx := context.Background()
	_, err := client.GetSlice(ctx, "users", "u1", Predicate{})
	require.NoError(t, err)
	_, err = client.GetSlice(ctx, "users", "u2", Predicate{})
	require.NoError(t, err)

	assert.Equal(t, 1, dialer.dialCount)
	// The configured keyspace is selected during the dial.
	require.Len(t, stub.callsFor("set_keyspace"), 1)
	assert.Equal(t, "metrics", stub.callsFor("set_keyspace")[0].keyspace)
}

func TestFailedConnectBlocksOperations(t *testing.T) {
	client, _, dialer := newTestClient(t)
	defer client.Close()

	dialer.dialErr = &types.ConnectionError{Host: "127.0.0.1", Port: 9160, Err: errors.New("refused")}

	ctx := context.Background()
	_, err := client.Get(ctx, "users", "u1", "name")
	require.Error(t, err)
	assert.Equal(t, types.Failed, client.State())

	// Subsequent operations fail fast with the sentinel, no implicit re-dial.
	_, err = client.Get(ctx, "users", "u1", "name")
	require.ErrorIs(t, err, types.ErrNotConnected)

	var connErr *types.ConnectionError
	assert.ErrorAs(t, err, &connErr)
	assert.Equal(t, 1, dialer.dialCount)

	// An explicit Connect retries the dial.
	dialer.dialErr = nil
	require.NoError(t, client.Connect(ctx))
	assert.Equal(t, types.Ready, client.State())
	assert.Equal(t, 2, dialer.dialCount)
}

func TestCloseIsIdempotentAndFinal(t *testing.T) {
	client, stub, _ := newTestClient(t)

	ctx := context.Background()
	require.NoError(t, client.Connect(ctx))
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	assert.True(t, stub.closed)
	assert.Equal(t, types.Closed, client.State())

	_, err := client.Get(ctx, "users", "u1", "name")
	require.ErrorIs(t, err, types.ErrClientClosed)
	require.ErrorIs(t, client.Connect(ctx), types.ErrClientClosed)
}

func TestUseKeyspaceDoesNotRedial(t *testing.T) {
	client, stub, dialer := newTestClient(t, WithKeyspace("metrics"))
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.Connect(ctx))
	require.NoError(t, client.UseKeyspace(ctx, "events"))

	assert.Equal(t, 1, dialer.dialCount)
	calls := stub.callsFor("set_keyspace")
	require.Len(t, calls, 2) // one from the dial, one from UseKeyspace
	assert.Equal(t, "events", calls[1].keyspace)
	assert.Equal(t, "events", client.Keyspace())
}

func TestGetBuildsColumnPath(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	stub.getResult = thrift.ColumnOrSuperColumn{Column: &thrift.Column{
		Name:      []byte("name"),
		Value:     []byte("ada"),
		Timestamp: 42,
	}}

	col, err := client.Get(context.Background(), "users", "u1", "name")
	require.NoError(t, err)
	assert.Equal(t, Column{Name: "name", Value: []byte("ada"), Timestamp: 42}, col)

	calls := stub.callsFor("get")
	require.Len(t, calls, 1)
	assert.Equal(t, "u1", calls[0].key)
	assert.Equal(t, "users", calls[0].path.ColumnFamily)
	assert.Equal(t, []byte("name"), calls[0].path.Column)
	assert.Empty(t, calls[0].path.SuperColumn)
}

func TestGetNotFoundUnwraps(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	stub.errByOp["get"] = &types.ProtocolError{Op: "get", Kind: types.KindNotFound}

	_, err := client.Get(context.Background(), "users", "missing", "name")
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestEmptyPredicateMeansUnboundedRange(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	_, err := client.GetSlice(context.Background(), "users", "u1", Predicate{})
	require.NoError(t, err)

	pred := stub.callsFor("get_slice")[0].pred
	require.NotNil(t, pred.SliceRange)
	assert.Empty(t, pred.SliceRange.Start)
	assert.Empty(t, pred.SliceRange.Finish)
	assert.False(t, pred.SliceRange.Reversed)
	assert.Equal(t, int32(100), pred.SliceRange.Count)
}

func TestPredicateRangeBounds(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	ctx := context.Background()
	_, err := client.GetSlice(ctx, "users", "u1", Predicate{Start: "a", Finish: "b", Count: 5})
	require.NoError(t, err)
	_, err = client.GetSlice(ctx, "users", "u1", Predicate{Finish: "b"})
	require.NoError(t, err)

	calls := stub.callsFor("get_slice")
	require.Len(t, calls, 2)

	bounded := calls[0].pred.SliceRange
	assert.Equal(t, []byte("a"), bounded.Start)
	assert.Equal(t, []byte("b"), bounded.Finish)
	assert.Equal(t, int32(5), bounded.Count)

	halfOpen := calls[1].pred.SliceRange
	assert.Empty(t, halfOpen.Start)
	assert.Equal(t, []byte("b"), halfOpen.Finish)
}

func TestPredicateColumnNamesWinOverRange(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	_, err := client.GetSlice(context.Background(), "users", "u1", Predicate{
		ColumnNames: []string{"name", "email"},
		Start:       "ignored",
	})
	require.NoError(t, err)

	pred := stub.callsFor("get_slice")[0].pred
	assert.Nil(t, pred.SliceRange)
	assert.Equal(t, [][]byte{[]byte("name"), []byte("email")}, pred.ColumnNames)
}

func TestSliceDispatchesOnKeyCount(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	ctx := context.Background()
	stub.sliceResult = []thrift.ColumnOrSuperColumn{
		{Column: &thrift.Column{Name: []byte("name"), Value: []byte("ada")}},
	}
	stub.multigetResult = map[string][]thrift.ColumnOrSuperColumn{
		"u1": {{Column: &thrift.Column{Name: []byte("name")}}},
		"u2": {{Column: &thrift.Column{Name: []byte("name")}}},
	}

	single, err := client.Slice(ctx, Selector{ColumnFamily: "users", Keys: []string{"u1"}})
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "ada", string(single["u1"][0].Value))

	multi, err := client.Slice(ctx, Selector{ColumnFamily: "users", Keys: []string{"u1", "u2"}})
	require.NoError(t, err)
	assert.Len(t, multi, 2)

	assert.Len(t, stub.callsFor("get_slice"), 1)
	require.Len(t, stub.callsFor("multiget_slice"), 1)
	assert.Equal(t, []string{"u1", "u2"}, stub.callsFor("multiget_slice")[0].keys)

	_, err = client.Slice(ctx, Selector{ColumnFamily: "users"})
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestCountDispatchesOnKeyCount(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	ctx := context.Background()
	stub.countResult = 3

	counts, err := client.Count(ctx, Selector{ColumnFamily: "users", Keys: []string{"u1"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]int32{"u1": 3}, counts)
	assert.Len(t, stub.callsFor("get_count"), 1)

	_, err = client.Count(ctx, Selector{ColumnFamily: "users", Keys: []string{"u1", "u2", "u3"}})
	require.NoError(t, err)
	assert.Len(t, stub.callsFor("multiget_count"), 1)
}

func TestSuperColumnResultsFlatten(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	stub.sliceResult = []thrift.ColumnOrSuperColumn{
		{SuperColumn: &thrift.SuperColumn{
			Name: []byte("sc1"),
			Columns: []thrift.Column{
				{Name: []byte("a"), Value: []byte("1")},
				{Name: []byte("b"), Value: []byte("2")},
			},
		}},
	}

	columns, err := client.GetSlice(context.Background(), "users", "u1", Predicate{})
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "a", columns[0].Name)
	assert.Equal(t, "b", columns[1].Name)
}

func TestInsertIssuesOneRPCPerColumn(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	err := client.Insert(context.Background(), "users", "u1", map[string][]byte{
		"name":  []byte("ada"),
		"email": []byte("ada@example.com"),
	})
	require.NoError(t, err)

	calls := stub.callsFor("insert")
	require.Len(t, calls, 2)

	// Every column of one call carries the same timestamp.
	assert.Equal(t, calls[0].column.Timestamp, calls[1].column.Timestamp)
	assert.NotZero(t, calls[0].column.Timestamp)
	for _, call := range calls {
		assert.Equal(t, "u1", call.key)
		assert.Equal(t, "users", call.parent.ColumnFamily)
	}
}

func TestInsertExplicitTimestampAndTTL(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	err := client.Insert(context.Background(), "users", "u1",
		map[string][]byte{"name": []byte("ada")},
		WithTimestamp(1234), WithTTL(60),
	)
	require.NoError(t, err)

	call := stub.callsFor("insert")[0]
	assert.Equal(t, int64(1234), call.column.Timestamp)
	assert.Equal(t, int32(60), call.column.TTL)
}

func TestRemoveRowAndColumn(t *testing.T) {
	client, stub, _ := newTestClient(t, WithTimestampProvider(func() int64 { return 777 }))
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.Remove(ctx, "users", "u1"))
	require.NoError(t, client.Remove(ctx, "users", "u1", WithColumn("email"), WithTimestamp(555)))

	calls := stub.callsFor("remove")
	require.Len(t, calls, 2)

	row := calls[0]
	assert.Empty(t, row.path.Column)
	assert.Equal(t, int64(777), row.timestamp)

	col := calls[1]
	assert.Equal(t, []byte("email"), col.path.Column)
	assert.Equal(t, int64(555), col.timestamp)
}

func TestBatchMutateSingleRPC(t *testing.T) {
	client, stub, _ := newTestClient(t, WithTimestampProvider(func() int64 { return 900 }))
	defer client.Close()

	batch := MutationBatch{
		"u1": {
			"users":  {{Name: "a", Value: []byte("1")}, {Name: "b", Value: []byte("2")}},
			"events": {{Name: "c", Value: []byte("3")}, {Name: "d", Value: []byte("4"), Timestamp: 11}},
		},
		"u2": {
			"users":  {{Name: "a", Value: []byte("5")}, {Name: "b", Value: []byte("6")}},
			"events": {{Name: "c", Value: []byte("7")}, {Name: "d", Value: []byte("8")}},
		},
	}
	require.NoError(t, client.BatchMutate(context.Background(), batch))

	calls := stub.callsFor("batch_mutate")
	require.Len(t, calls, 1)

	// 2 keys × 2 families × 2 columns: each family holds exactly one
	// super-column with its 2 columns.
	mutations := calls[0].mutations
	require.Len(t, mutations, 2)
	for _, key := range []string{"u1", "u2"} {
		require.Len(t, mutations[key], 2)
		for _, fam := range []string{"users", "events"} {
			require.Len(t, mutations[key][fam], 1)
			sc := mutations[key][fam][0].ColumnOrSuperColumn.SuperColumn
			require.NotNil(t, sc)
			assert.Len(t, sc.Columns, 2)
		}
	}

	// Each family carries one mutation: a single super-column holding the
	// family's columns.
	family := mutations["u1"]["events"]
	require.Len(t, family, 1)
	sc := family[0].ColumnOrSuperColumn.SuperColumn
	require.NotNil(t, sc)
	assert.Equal(t, []byte("placeholder"), sc.Name)
	require.Len(t, sc.Columns, 2)

	// Zero timestamps get the batch timestamp; explicit ones are kept.
	assert.Equal(t, int64(900), sc.Columns[0].Timestamp)
	assert.Equal(t, int64(11), sc.Columns[1].Timestamp)
}

func TestPerCallConsistencyOverrides(t *testing.T) {
	client, stub, _ := newTestClient(t,
		WithReadConsistency("quorum"),
		WithWriteConsistency("all"),
	)
	defer client.Close()

	ctx := context.Background()
	_, err := client.GetSlice(ctx, "users", "u1", Predicate{})
	require.NoError(t, err)
	_, err = client.GetSlice(ctx, "users", "u1", Predicate{}, WithConsistency(types.LocalQuorum))
	require.NoError(t, err)
	_, err = client.GetSlice(ctx, "users", "u1", Predicate{}, WithConsistencyName("one"))
	require.NoError(t, err)

	require.NoError(t, client.Insert(ctx, "users", "u1", map[string][]byte{"a": nil}))

	reads := stub.callsFor("get_slice")
	assert.Equal(t, types.Quorum, reads[0].consistency)
	assert.Equal(t, types.LocalQuorum, reads[1].consistency)
	assert.Equal(t, types.One, reads[2].consistency)
	assert.Equal(t, types.All, stub.callsFor("insert")[0].consistency)
}

func TestUnknownConsistencyNameFailsWithoutRPC(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	_, err := client.GetSlice(context.Background(), "users", "u1", Predicate{},
		WithConsistencyName("eventual"))
	require.Error(t, err)

	var invalidErr *types.InvalidConsistencyLevelError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "eventual", invalidErr.Name)
	assert.Empty(t, stub.calls)
}

func TestGetRangeSlicesDefaultsCount(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	_, err := client.GetRangeSlices(context.Background(), "users",
		KeyRange{StartKey: "a", EndKey: "m"}, Predicate{})
	require.NoError(t, err)

	require.Len(t, stub.callsFor("get_range_slices"), 1)
}

func TestRetryPolicyRetriesTransientFaults(t *testing.T) {
	client, stub, _ := newTestClient(t, WithRetryPolicy(&countingRetry{max: 2}))
	defer client.Close()

	stub.errByOp["get_slice"] = &types.ProtocolError{Op: "get_slice", Kind: types.KindTimedOut}
	stub.failures = 1

	_, err := client.GetSlice(context.Background(), "users", "u1", Predicate{})
	require.NoError(t, err)
	assert.Len(t, stub.callsFor("get_slice"), 2)
}

func TestRetryPolicyGivesUp(t *testing.T) {
	client, stub, _ := newTestClient(t, WithRetryPolicy(&countingRetry{max: 2}))
	defer client.Close()

	stub.errByOp["get_slice"] = &types.ProtocolError{Op: "get_slice", Kind: types.KindUnavailable}

	_, err := client.GetSlice(context.Background(), "users", "u1", Predicate{})
	require.ErrorIs(t, err, types.ErrUnavailable)
	assert.Len(t, stub.callsFor("get_slice"), 3) // initial attempt + 2 retries
}

// countingRetry retries transient faults up to max times with no backoff.
type countingRetry struct {
	max int
}

func (r *countingRetry) ShouldRetry(op string, attempt int, err error) bool {
	if attempt >= r.max {
		return false
	}

	return errors.Is(err, types.ErrUnavailable) || errors.Is(err, types.ErrTimedOut)
}

func (r *countingRetry) Backoff(attempt int) time.Duration { return 0 }

func TestDescribeOperations(t *testing.T) {
	client, stub, _ := newTestClient(t)
	defer client.Close()

	ctx := context.Background()

	name, err := client.DescribeClusterName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test Cluster", name)

	version, err := client.DescribeVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "19.30.0", version)

	partitioner, err := client.DescribePartitioner(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RandomPartitioner", partitioner)

	ks, err := client.DescribeKeyspace(ctx, "metrics")
	require.NoError(t, err)
	assert.Equal(t, "metrics", ks.Name)

	require.NoError(t, client.Truncate(ctx, "users"))
	assert.Equal(t, "users", stub.callsFor("truncate")[0].family)
}

func TestEndpointCarriesCredentials(t *testing.T) {
	client, _, dialer := newTestClient(t,
		WithHost("db1.example.com"),
		WithPort(9161),
		WithCredentials("reader", "s3cret"),
	)
	defer client.Close()

	require.NoError(t, client.Connect(context.Background()))

	assert.Equal(t, "db1.example.com", dialer.lastTarget.Host)
	assert.Equal(t, 9161, dialer.lastTarget.Port)
	assert.Equal(t, "reader", dialer.lastTarget.Username)
	assert.Equal(t, "s3cret", dialer.lastTarget.Password)
}

func TestMetricsCollectorObservesRequests(t *testing.T) {
	collector := &recordingMetrics{ops: make(map[string]int)}
	client, _, _ := newTestClient(t, WithMetrics(collector))
	defer client.Close()

	ctx := context.Background()
	_, err := client.GetSlice(ctx, "users", "u1", Predicate{})
	require.NoError(t, err)
	require.NoError(t, client.Insert(ctx, "users", "u1", map[string][]byte{"a": nil}))

	assert.Equal(t, 1, collector.connects)
	assert.Equal(t, 1, collector.ops["get_slice"])
	assert.Equal(t, 1, collector.ops["insert"])
	assert.Equal(t, types.Ready, collector.lastState)
}

// recordingMetrics implements types.MetricsCollector for testing.
type recordingMetrics struct {
	connects  int
	ops       map[string]int
	lastState types.ConnState
}

func (m *recordingMetrics) IncConnectTotal()                          { m.connects++ }
func (m *recordingMetrics) IncConnectError()                          {}
func (m *recordingMetrics) ObserveConnectDuration(seconds float64)    {}
func (m *recordingMetrics) SetConnState(state types.ConnState)        { m.lastState = state }
func (m *recordingMetrics) IncRequestTotal(op string)                 { m.ops[op]++ }
func (m *recordingMetrics) IncRequestError(op string)                 {}
func (m *recordingMetrics) ObserveRequestDuration(op string, _ float64) {}
func (m *recordingMetrics) IncRetryTotal(op string)                   {}

func TestClientStateString(t *testing.T) {
	client, _, _ := newTestClient(t)
	defer client.Close()

	assert.Equal(t, "unconnected", fmt.Sprint(client.State()))
}
