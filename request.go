package cassette

import (
	"fmt"

	"github.com/cassette-db/cassette/adapter/thrift"
	"github.com/cassette-db/cassette/types"
)

// defaultSliceCount is the protocol's conventional column count limit when
// the caller does not set one.
const defaultSliceCount = 100

// batchSuperColumn is the literal placeholder name grouping the columns of
// each family inside a batch mutation.
const batchSuperColumn = "placeholder"

// Column is a single cell as the façade exposes it.
type Column struct {
	Name      string
	Value     []byte
	Timestamp int64
	TTL       int32
}

// Row is one row of a range or indexed slice result.
type Row struct {
	Key     string
	Columns []Column
}

// Predicate selects which columns of a row to return: an explicit name list,
// or a contiguous name range. When both are zero-valued the predicate is the
// unbounded range (start="" finish=""), i.e. every column.
type Predicate struct {
	// ColumnNames is an explicit column list. Takes precedence over the
	// range fields when non-empty.
	ColumnNames []string

	// Start and Finish bound the name range. Empty means unbounded at that
	// end.
	Start  string
	Finish string

	// Reversed returns the range in reverse comparator order.
	Reversed bool

	// Count limits the number of columns returned. Zero means the protocol
	// default of 100.
	Count int32
}

// Selector identifies what to read: a family, one or more keys, and a
// column predicate. Selector-driven calls dispatch to the singular RPC for
// one key and the multi-key RPC for several.
type Selector struct {
	ColumnFamily string
	Keys         []string

	// SuperColumn optionally scopes the read to one super-column.
	SuperColumn string

	Predicate Predicate
}

// KeyRange selects a contiguous range of rows for GetRangeSlices, by key or
// by token. Key bounds and token bounds are mutually exclusive; zero-valued
// bounds mean the full ring.
type KeyRange struct {
	StartKey   string
	EndKey     string
	StartToken string
	EndToken   string

	// Count limits the number of rows returned. Zero means 100.
	Count int32
}

// IndexQuery describes a secondary-index read: a set of equality
// expressions (ANDed together; only equality is supported by the indexed
// RPC path), a scan start key, and a row count limit.
type IndexQuery struct {
	// Equalities maps indexed column names to the exact value each must have.
	Equalities map[string][]byte

	StartKey string

	// Count limits the number of rows returned. Zero means 100.
	Count int32
}

// BatchColumn is one column of a batch mutation.
type BatchColumn struct {
	Name  string
	Value []byte

	// Timestamp for this column. Zero means the batch-wide timestamp
	// assigned at call time.
	Timestamp int64
}

// MutationBatch maps key → column family → ordered columns to write. The
// whole batch is applied in a single RPC.
type MutationBatch map[string]map[string][]BatchColumn

// consistencyKind distinguishes the read and write default levels.
type consistencyKind int

const (
	kindRead consistencyKind = iota
	kindWrite
)

// callOptions carries per-call overrides.
type callOptions struct {
	consistency     Consistency
	hasConsistency  bool
	consistencyName string
	timestamp       int64
	hasTimestamp    bool
	column          string
	hasColumn       bool
	superColumn     string
	ttl             int32
}

// CallOption overrides a setting for a single façade call.
type CallOption func(*callOptions)

// WithConsistency overrides the consistency level for this call.
func WithConsistency(level Consistency) CallOption {
	return func(o *callOptions) {
		o.consistency = level
		o.hasConsistency = true
	}
}

// WithConsistencyName overrides the consistency level for this call, by
// name. An unknown name fails the call with
// *types.InvalidConsistencyLevelError.
func WithConsistencyName(name string) CallOption {
	return func(o *callOptions) {
		o.consistencyName = name
	}
}

// WithTimestamp sets an explicit write timestamp, instead of the call-time
// value from the timestamp provider.
func WithTimestamp(ts int64) CallOption {
	return func(o *callOptions) {
		o.timestamp = ts
		o.hasTimestamp = true
	}
}

// WithColumn scopes a Remove to a single column instead of the whole row.
func WithColumn(name string) CallOption {
	return func(o *callOptions) {
		o.column = name
		o.hasColumn = true
	}
}

// WithSuperColumn scopes the call to a super-column.
func WithSuperColumn(name string) CallOption {
	return func(o *callOptions) {
		o.superColumn = name
	}
}

// WithTTL sets a column lifetime in seconds for Insert.
func WithTTL(seconds int32) CallOption {
	return func(o *callOptions) {
		o.ttl = seconds
	}
}

func applyCallOptions(opts []CallOption) *callOptions {
	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// resolve computes the effective consistency level for a call.
//
// Precedence: per-call override (name, then typed level) > per-kind client
// default > protocol default (ONE). Unknown names fail typed; there is no
// silent fallback.
func (c *Client) resolve(kind consistencyKind, o *callOptions) (Consistency, error) {
	if o.consistencyName != "" {
		return types.ParseConsistency(o.consistencyName)
	}
	if o.hasConsistency {
		return o.consistency, nil
	}
	if kind == kindRead {
		return c.readConsistency, nil
	}

	return c.writeConsistency, nil
}

// timestamp returns the explicit per-call timestamp or one from the
// provider. Called once per façade invocation so that multi-column writes
// share a single value.
func (c *Client) timestamp(o *callOptions) int64 {
	if o.hasTimestamp {
		return o.timestamp
	}

	return c.config.TimestampProvider()
}

// buildPredicate assembles the wire predicate. With no explicit column list
// the result is a slice range, both bounds defaulting to unbounded (empty).
func buildPredicate(p Predicate) thrift.SlicePredicate {
	if len(p.ColumnNames) > 0 {
		names := make([][]byte, 0, len(p.ColumnNames))
		for _, name := range p.ColumnNames {
			names = append(names, []byte(name))
		}

		return thrift.SlicePredicate{ColumnNames: names}
	}

	count := p.Count
	if count == 0 {
		count = defaultSliceCount
	}

	return thrift.SlicePredicate{SliceRange: &thrift.SliceRange{
		Start:    []byte(p.Start),
		Finish:   []byte(p.Finish),
		Reversed: p.Reversed,
		Count:    count,
	}}
}

// buildParent assembles a column parent, optionally scoped to a super-column.
func buildParent(family, superColumn string) thrift.ColumnParent {
	parent := thrift.ColumnParent{ColumnFamily: family}
	if superColumn != "" {
		parent.SuperColumn = []byte(superColumn)
	}

	return parent
}

// buildKeyRange assembles the wire key range, defaulting the row count.
func buildKeyRange(kr KeyRange) thrift.KeyRange {
	count := kr.Count
	if count == 0 {
		count = defaultSliceCount
	}

	return thrift.KeyRange{
		StartKey:   []byte(kr.StartKey),
		EndKey:     []byte(kr.EndKey),
		StartToken: kr.StartToken,
		EndToken:   kr.EndToken,
		Count:      count,
	}
}

// buildIndexClause assembles an index clause of equality expressions.
func buildIndexClause(q IndexQuery) thrift.IndexClause {
	exprs := make([]thrift.IndexExpression, 0, len(q.Equalities))
	for name, value := range q.Equalities {
		exprs = append(exprs, thrift.IndexExpression{
			ColumnName: []byte(name),
			Op:         thrift.IndexOpEQ,
			Value:      value,
		})
	}

	count := q.Count
	if count == 0 {
		count = defaultSliceCount
	}

	return thrift.IndexClause{
		Expressions: exprs,
		StartKey:    []byte(q.StartKey),
		Count:       count,
	}
}

// buildBatchMutations assembles the wire mutation map: one mutation per
// column, the columns of each family grouped under a single placeholder
// super-column.
func buildBatchMutations(batch MutationBatch, batchTimestamp int64) map[string]map[string][]thrift.Mutation {
	mutations := make(map[string]map[string][]thrift.Mutation, len(batch))
	for key, families := range batch {
		byFamily := make(map[string][]thrift.Mutation, len(families))
		for family, columns := range families {
			cols := make([]thrift.Column, 0, len(columns))
			for _, col := range columns {
				ts := col.Timestamp
				if ts == 0 {
					ts = batchTimestamp
				}
				cols = append(cols, thrift.Column{
					Name:      []byte(col.Name),
					Value:     col.Value,
					Timestamp: ts,
				})
			}
			byFamily[family] = []thrift.Mutation{{
				ColumnOrSuperColumn: &thrift.ColumnOrSuperColumn{
					SuperColumn: &thrift.SuperColumn{
						Name:    []byte(batchSuperColumn),
						Columns: cols,
					},
				},
			}}
		}
		mutations[key] = byFamily
	}

	return mutations
}

// fromWireColumns flattens a column-or-super-column list into façade
// columns. Super-columns contribute their sub-columns.
func fromWireColumns(coscs []thrift.ColumnOrSuperColumn) []Column {
	columns := make([]Column, 0, len(coscs))
	for _, cosc := range coscs {
		switch {
		case cosc.Column != nil:
			columns = append(columns, fromWireColumn(*cosc.Column))
		case cosc.SuperColumn != nil:
			for _, col := range cosc.SuperColumn.Columns {
				columns = append(columns, fromWireColumn(col))
			}
		}
	}

	return columns
}

func fromWireColumn(col thrift.Column) Column {
	return Column{
		Name:      string(col.Name),
		Value:     col.Value,
		Timestamp: col.Timestamp,
		TTL:       col.TTL,
	}
}

// errNoKeys reports a selector-driven call with an empty key list.
func errNoKeys(op string) error {
	return fmt.Errorf("cassette: %s: %w: selector has no keys", op, types.ErrInvalidRequest)
}

// errUnexpectedResult reports a response whose shape does not match the
// request, such as a super-column where a column was asked for.
func errUnexpectedResult(op string) error {
	return &types.ProtocolError{
		Op:      op,
		Kind:    types.KindApplication,
		Message: "unexpected result shape",
	}
}

func toWireKeys(keys []string) [][]byte {
	wire := make([][]byte, 0, len(keys))
	for _, key := range keys {
		wire = append(wire, []byte(key))
	}

	return wire
}
