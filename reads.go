package cassette

import (
	"context"

	"github.com/cassette-db/cassette/adapter/thrift"
)

// Get fetches a single column of a row.
//
// Parameters:
//   - ctx: Context for the operation
//   - family: Column family name
//   - key: Row key
//   - column: Column name
//   - opts: Optional per-call overrides (WithSuperColumn, WithConsistency, ...)
//
// Returns:
//   - Column: The fetched column
//   - error: types.ErrNotFound (via *types.ProtocolError) when the column
//     does not exist
func (c *Client) Get(ctx context.Context, family, key, column string, opts ...CallOption) (Column, error) {
	o := applyCallOptions(opts)
	cl, err := c.resolve(kindRead, o)
	if err != nil {
		return Column{}, err
	}

	path := thrift.ColumnPath{
		ColumnFamily: family,
		Column:       []byte(column),
	}
	if o.superColumn != "" {
		path.SuperColumn = []byte(o.superColumn)
	}

	var result Column
	err = c.do(ctx, "get", func(ctx context.Context, stub thrift.Stub) error {
		cosc, err := stub.Get(ctx, []byte(key), path, cl)
		if err != nil {
			return err
		}
		if cosc.Column == nil {
			return errUnexpectedResult("get")
		}
		result = fromWireColumn(*cosc.Column)

		return nil
	})
	if err != nil {
		return Column{}, err
	}

	return result, nil
}

// GetSlice fetches the columns of one row selected by a predicate. A
// zero-valued predicate selects every column, up to the default count.
func (c *Client) GetSlice(ctx context.Context, family, key string, pred Predicate, opts ...CallOption) ([]Column, error) {
	o := applyCallOptions(opts)
	cl, err := c.resolve(kindRead, o)
	if err != nil {
		return nil, err
	}

	parent := buildParent(family, o.superColumn)
	wirePred := buildPredicate(pred)

	var result []Column
	err = c.do(ctx, "get_slice", func(ctx context.Context, stub thrift.Stub) error {
		coscs, err := stub.GetSlice(ctx, []byte(key), parent, wirePred, cl)
		if err != nil {
			return err
		}
		result = fromWireColumns(coscs)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// MultigetSlice fetches the columns of several rows in one round trip.
// Keys absent from the result map had no matching columns.
func (c *Client) MultigetSlice(ctx context.Context, family string, keys []string, pred Predicate, opts ...CallOption) (map[string][]Column, error) {
	o := applyCallOptions(opts)
	cl, err := c.resolve(kindRead, o)
	if err != nil {
		return nil, err
	}

	parent := buildParent(family, o.superColumn)
	wirePred := buildPredicate(pred)

	var result map[string][]Column
	err = c.do(ctx, "multiget_slice", func(ctx context.Context, stub thrift.Stub) error {
		rows, err := stub.MultigetSlice(ctx, toWireKeys(keys), parent, wirePred, cl)
		if err != nil {
			return err
		}
		result = make(map[string][]Column, len(rows))
		for key, coscs := range rows {
			result[key] = fromWireColumns(coscs)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetCount counts the columns of one row selected by a predicate.
func (c *Client) GetCount(ctx context.Context, family, key string, pred Predicate, opts ...CallOption) (int32, error) {
	o := applyCallOptions(opts)
	cl, err := c.resolve(kindRead, o)
	if err != nil {
		return 0, err
	}

	parent := buildParent(family, o.superColumn)
	wirePred := buildPredicate(pred)

	var count int32
	err = c.do(ctx, "get_count", func(ctx context.Context, stub thrift.Stub) error {
		count, err = stub.GetCount(ctx, []byte(key), parent, wirePred, cl)

		return err
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// MultigetCount counts the columns of several rows in one round trip.
func (c *Client) MultigetCount(ctx context.Context, family string, keys []string, pred Predicate, opts ...CallOption) (map[string]int32, error) {
	o := applyCallOptions(opts)
	cl, err := c.resolve(kindRead, o)
	if err != nil {
		return nil, err
	}

	parent := buildParent(family, o.superColumn)
	wirePred := buildPredicate(pred)

	var counts map[string]int32
	err = c.do(ctx, "multiget_count", func(ctx context.Context, stub thrift.Stub) error {
		counts, err = stub.MultigetCount(ctx, toWireKeys(keys), parent, wirePred, cl)

		return err
	})
	if err != nil {
		return nil, err
	}

	return counts, nil
}

// Slice fetches columns for the selector's keys, dispatching on key count:
// one key issues the singular slice RPC, several issue one multi-key RPC.
// The result map is keyed by row key in both cases.
//
// Returns:
//   - map[string][]Column: Columns per row key
//   - error: types.ErrInvalidRequest when the selector has no keys
func (c *Client) Slice(ctx context.Context, sel Selector, opts ...CallOption) (map[string][]Column, error) {
	switch len(sel.Keys) {
	case 0:
		return nil, errNoKeys("slice")
	case 1:
		if sel.SuperColumn != "" {
			opts = append(opts, WithSuperColumn(sel.SuperColumn))
		}
		columns, err := c.GetSlice(ctx, sel.ColumnFamily, sel.Keys[0], sel.Predicate, opts...)
		if err != nil {
			return nil, err
		}

		return map[string][]Column{sel.Keys[0]: columns}, nil
	default:
		if sel.SuperColumn != "" {
			opts = append(opts, WithSuperColumn(sel.SuperColumn))
		}

		return c.MultigetSlice(ctx, sel.ColumnFamily, sel.Keys, sel.Predicate, opts...)
	}
}

// Count counts columns for the selector's keys, dispatching on key count the
// same way Slice does.
func (c *Client) Count(ctx context.Context, sel Selector, opts ...CallOption) (map[string]int32, error) {
	switch len(sel.Keys) {
	case 0:
		return nil, errNoKeys("count")
	case 1:
		if sel.SuperColumn != "" {
			opts = append(opts, WithSuperColumn(sel.SuperColumn))
		}
		count, err := c.GetCount(ctx, sel.ColumnFamily, sel.Keys[0], sel.Predicate, opts...)
		if err != nil {
			return nil, err
		}

		return map[string]int32{sel.Keys[0]: count}, nil
	default:
		if sel.SuperColumn != "" {
			opts = append(opts, WithSuperColumn(sel.SuperColumn))
		}

		return c.MultigetCount(ctx, sel.ColumnFamily, sel.Keys, sel.Predicate, opts...)
	}
}

// GetRangeSlices fetches a contiguous range of rows. A zero-valued KeyRange
// scans the full ring, up to the default row count.
func (c *Client) GetRangeSlices(ctx context.Context, family string, keyRange KeyRange, pred Predicate, opts ...CallOption) ([]Row, error) {
	o := applyCallOptions(opts)
	cl, err := c.resolve(kindRead, o)
	if err != nil {
		return nil, err
	}

	parent := buildParent(family, o.superColumn)
	wirePred := buildPredicate(pred)
	wireRange := buildKeyRange(keyRange)

	var rows []Row
	err = c.do(ctx, "get_range_slices", func(ctx context.Context, stub thrift.Stub) error {
		slices, err := stub.GetRangeSlices(ctx, parent, wirePred, wireRange, cl)
		if err != nil {
			return err
		}
		rows = fromKeySlices(slices)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// GetIndexedSlices fetches rows matching a secondary-index query. Only
// equality expressions are supported on this path.
func (c *Client) GetIndexedSlices(ctx context.Context, family string, query IndexQuery, pred Predicate, opts ...CallOption) ([]Row, error) {
	o := applyCallOptions(opts)
	cl, err := c.resolve(kindRead, o)
	if err != nil {
		return nil, err
	}

	parent := buildParent(family, o.superColumn)
	wirePred := buildPredicate(pred)
	clause := buildIndexClause(query)

	var rows []Row
	err = c.do(ctx, "get_indexed_slices", func(ctx context.Context, stub thrift.Stub) error {
		slices, err := stub.GetIndexedSlices(ctx, parent, clause, wirePred, cl)
		if err != nil {
			return err
		}
		rows = fromKeySlices(slices)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func fromKeySlices(slices []thrift.KeySlice) []Row {
	rows := make([]Row, 0, len(slices))
	for _, slice := range slices {
		rows = append(rows, Row{
			Key:     string(slice.Key),
			Columns: fromWireColumns(slice.Columns),
		})
	}

	return rows
}
