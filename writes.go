package cassette

import (
	"context"

	"github.com/cassette-db/cassette/adapter/thrift"
)

// Insert writes the given columns to one row, issuing one insert RPC per
// column. All columns of the call share a single timestamp, taken from the
// timestamp provider once (or from WithTimestamp).
//
// Parameters:
//   - ctx: Context for the operation
//   - family: Column family name
//   - key: Row key
//   - columns: Column name → value pairs to write
//   - opts: Optional per-call overrides (WithTimestamp, WithTTL, ...)
//
// Returns:
//   - error: The first failing RPC's error; later columns are not attempted
func (c *Client) Insert(ctx context.Context, family, key string, columns map[string][]byte, opts ...CallOption) error {
	o := applyCallOptions(opts)
	cl, err := c.resolve(kindWrite, o)
	if err != nil {
		return err
	}

	parent := buildParent(family, o.superColumn)
	ts := c.timestamp(o)

	return c.do(ctx, "insert", func(ctx context.Context, stub thrift.Stub) error {
		for name, value := range columns {
			column := thrift.Column{
				Name:      []byte(name),
				Value:     value,
				Timestamp: ts,
				TTL:       o.ttl,
			}
			if err := stub.Insert(ctx, []byte(key), parent, column, cl); err != nil {
				return err
			}
		}

		return nil
	})
}

// Remove deletes a whole row, or a single column when WithColumn is given.
// The deletion timestamp comes from the timestamp provider unless
// WithTimestamp sets it explicitly.
func (c *Client) Remove(ctx context.Context, family, key string, opts ...CallOption) error {
	o := applyCallOptions(opts)
	cl, err := c.resolve(kindWrite, o)
	if err != nil {
		return err
	}

	path := thrift.ColumnPath{ColumnFamily: family}
	if o.superColumn != "" {
		path.SuperColumn = []byte(o.superColumn)
	}
	if o.hasColumn {
		path.Column = []byte(o.column)
	}
	ts := c.timestamp(o)

	return c.do(ctx, "remove", func(ctx context.Context, stub thrift.Stub) error {
		return stub.Remove(ctx, []byte(key), path, ts, cl)
	})
}

// BatchMutate applies a whole mutation batch in a single RPC. Within each
// key and family the columns are grouped under one placeholder-named
// super-column, so a batch of K keys and F families per key always produces
// exactly one round trip regardless of column count.
//
// Columns with a zero Timestamp share a batch-wide timestamp taken from the
// timestamp provider once (or from WithTimestamp); non-zero per-column
// timestamps are kept as given.
func (c *Client) BatchMutate(ctx context.Context, batch MutationBatch, opts ...CallOption) error {
	o := applyCallOptions(opts)
	cl, err := c.resolve(kindWrite, o)
	if err != nil {
		return err
	}

	mutations := buildBatchMutations(batch, c.timestamp(o))

	return c.do(ctx, "batch_mutate", func(ctx context.Context, stub thrift.Stub) error {
		return stub.BatchMutate(ctx, mutations, cl)
	})
}
