package thrift

// Wire parameter types mirroring the Thrift structs of the legacy RPC
// surface. Field numbering and optionality live in the protocol adapters;
// these are plain Go values the façade assembles.

// Column is a single (name, value, timestamp) cell.
type Column struct {
	Name  []byte
	Value []byte

	// Timestamp is the write time in microseconds. Writes always carry one;
	// the façade never leaves it unset.
	Timestamp int64

	// TTL is the column lifetime in seconds. Zero means no expiry.
	TTL int32
}

// SuperColumn is a named group of sub-columns.
type SuperColumn struct {
	Name    []byte
	Columns []Column
}

// ColumnOrSuperColumn is the tagged union the read RPCs return. Exactly one
// field is non-nil.
type ColumnOrSuperColumn struct {
	Column      *Column
	SuperColumn *SuperColumn
}

// ColumnParent identifies a column container: a family, optionally scoped to
// a super-column.
type ColumnParent struct {
	ColumnFamily string
	SuperColumn  []byte
}

// ColumnPath identifies a single column, a super-column, or a whole row
// depending on which optional fields are set.
type ColumnPath struct {
	ColumnFamily string
	SuperColumn  []byte
	Column       []byte
}

// SliceRange selects a contiguous range of column names.
//
// Empty Start and Finish mean unbounded at that end.
type SliceRange struct {
	Start    []byte
	Finish   []byte
	Reversed bool
	Count    int32
}

// SlicePredicate specifies which columns of a row to return: either an
// explicit name list or a contiguous range. Exactly one of ColumnNames and
// SliceRange is set.
type SlicePredicate struct {
	ColumnNames [][]byte
	SliceRange  *SliceRange
}

// KeyRange selects a contiguous range of rows, by key or by token.
type KeyRange struct {
	StartKey   []byte
	EndKey     []byte
	StartToken string
	EndToken   string
	Count      int32
}

// KeySlice is one row of a range or indexed slice result.
type KeySlice struct {
	Key     []byte
	Columns []ColumnOrSuperColumn
}

// IndexOperator is the comparison operator of an index expression.
type IndexOperator int32

// Index operators matching the Thrift IndexOperator enum. The façade only
// ever emits EQ.
const (
	IndexOpEQ  IndexOperator = 0
	IndexOpGTE IndexOperator = 1
	IndexOpGT  IndexOperator = 2
	IndexOpLTE IndexOperator = 3
	IndexOpLT  IndexOperator = 4
)

// IndexExpression is a single comparison against an indexed column.
type IndexExpression struct {
	ColumnName []byte
	Op         IndexOperator
	Value      []byte
}

// IndexClause combines index expressions (ANDed) with a scan start key and
// row count limit.
type IndexClause struct {
	Expressions []IndexExpression
	StartKey    []byte
	Count       int32
}

// Deletion describes columns to remove inside a batch mutation.
type Deletion struct {
	Timestamp   int64
	SuperColumn []byte
	Predicate   *SlicePredicate
}

// Mutation is one entry of a batch mutation: either an insert (via
// ColumnOrSuperColumn) or a Deletion. Exactly one field is non-nil.
type Mutation struct {
	ColumnOrSuperColumn *ColumnOrSuperColumn
	Deletion            *Deletion
}

// CfDef is the subset of a column-family definition the façade exposes.
// Unknown server-side fields are skipped by the protocol adapters.
type CfDef struct {
	Keyspace       string
	Name           string
	ColumnType     string
	ComparatorType string
	Comment        string
}

// KsDef is a keyspace definition.
type KsDef struct {
	Name            string
	StrategyClass   string
	StrategyOptions map[string]string
	CfDefs          []CfDef
	DurableWrites   bool
}

// TokenRange is one arc of the token ring and the endpoints replicating it.
type TokenRange struct {
	StartToken string
	EndToken   string
	Endpoints  []string
}
