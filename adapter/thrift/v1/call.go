package v1

import (
	"context"

	"github.com/apache/thrift/lib/go/thrift"

	"github.com/cassette-db/cassette/types"
)

// fieldWriter writes the numbered fields of an args struct. Struct begin/end
// and the field stop are handled by callArgs.
type fieldWriter func(ctx context.Context, p thrift.TProtocol) error

// callArgs adapts a fieldWriter to thrift.TStruct so it can be passed to
// thrift.TStandardClient.
type callArgs struct {
	op     string
	fields fieldWriter
}

var _ thrift.TStruct = (*callArgs)(nil)

func (a *callArgs) Write(ctx context.Context, p thrift.TProtocol) error {
	if err := p.WriteStructBegin(ctx, a.op+"_args"); err != nil {
		return err
	}
	if a.fields != nil {
		if err := a.fields(ctx, p); err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

// Read is never called on the client side.
func (a *callArgs) Read(ctx context.Context, p thrift.TProtocol) error {
	return thrift.SkipDefaultDepth(ctx, p, thrift.STRUCT)
}

// callResult reads a method result struct: field 0 is the success value,
// declared server faults arrive in the remaining fields.
type callResult struct {
	op string

	// successType and readSuccess consume field 0. Both are nil for void
	// methods.
	successType thrift.TType
	readSuccess func(ctx context.Context, p thrift.TProtocol) error

	// faults maps declared exception field ids to their classification.
	faults map[int16]types.ErrorKind

	// fault holds the decoded server fault, if any.
	fault *types.ProtocolError
}

var _ thrift.TStruct = (*callResult)(nil)

func (r *callResult) Read(ctx context.Context, p thrift.TProtocol) error {
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, ftype, fid, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if ftype == thrift.STOP {
			break
		}

		switch {
		case fid == 0 && r.readSuccess != nil && ftype == r.successType:
			if err := r.readSuccess(ctx, p); err != nil {
				return err
			}
		case ftype == thrift.STRUCT && r.faults[fid] != 0:
			why, err := readFault(ctx, p)
			if err != nil {
				return err
			}
			r.fault = &types.ProtocolError{Op: r.op, Kind: r.faults[fid], Message: why}
		default:
			if err := thrift.SkipDefaultDepth(ctx, p, ftype); err != nil {
				return err
			}
		}

		if err := p.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}

	return p.ReadStructEnd(ctx)
}

// Write is never called on the client side.
func (r *callResult) Write(ctx context.Context, p thrift.TProtocol) error {
	if err := p.WriteStructBegin(ctx, r.op+"_result"); err != nil {
		return err
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

// readFault reads a declared exception struct. All of the legacy exceptions
// carry at most a single string detail in field 1; everything else is skipped.
func readFault(ctx context.Context, p thrift.TProtocol) (string, error) {
	var why string
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return "", err
	}
	for {
		_, ftype, fid, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return "", err
		}
		if ftype == thrift.STOP {
			break
		}
		if fid == 1 && ftype == thrift.STRING {
			if why, err = p.ReadString(ctx); err != nil {
				return "", err
			}
		} else if err := thrift.SkipDefaultDepth(ctx, p, ftype); err != nil {
			return "", err
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return "", err
		}
	}
	if err := p.ReadStructEnd(ctx); err != nil {
		return "", err
	}

	return why, nil
}

// invoke performs one RPC round trip and surfaces any declared fault.
func (c *Client) invoke(ctx context.Context, op string, fields fieldWriter, result *callResult) error {
	if _, err := c.client.Call(ctx, op, &callArgs{op: op, fields: fields}, result); err != nil {
		return &types.ProtocolError{Op: op, Kind: types.KindApplication, Message: err.Error()}
	}
	if result.fault != nil {
		return result.fault
	}

	return nil
}

// voidResult builds a result reader for a void method with the standard
// (invalid request, unavailable, timed out) fault block.
func voidResult(op string) *callResult {
	return &callResult{op: op, faults: writeFaults()}
}

// writeFaults is the fault block shared by every data-path method.
func writeFaults() map[int16]types.ErrorKind {
	return map[int16]types.ErrorKind{
		1: types.KindInvalidRequest,
		2: types.KindUnavailable,
		3: types.KindTimedOut,
	}
}
