// Package thrift provides adapter interfaces and wire parameter types for the
// legacy Thrift RPC surface of the column store.
//
// This package defines the narrow Stub interface the façade drives, plus the
// plain-Go parameter objects that mirror the Thrift structs (Column,
// SlicePredicate, KeyRange, Mutation, ...). It imports no driver code, so the
// façade stays transport-free.
//
// # Interfaces
//
//   - Stub: The authenticated RPC client the façade performs operations on
//   - Dialer: Opens the transport, authenticates, and returns a Stub
//
// # Adapters
//
// Protocol-specific adapters are provided in subpackages:
//
//   - [github.com/cassette-db/cassette/adapter/thrift/v1]: Framed binary
//     protocol adapter built on github.com/apache/thrift
//
// # Usage
//
// Applications normally never touch this package directly; the façade dials
// through it. Tests inject fake stubs:
//
//	type fakeStub struct{ thrift.Stub }
//
//	client, _ := cassette.NewClient(
//	    cassette.WithDialer(fakeDialer{stub: &fakeStub{}}),
//	)
package thrift
