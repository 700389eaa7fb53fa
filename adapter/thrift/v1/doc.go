// Package v1 implements the stub adapter over github.com/apache/thrift using
// the framed transport and binary protocol, the stack the legacy RPC port
// speaks.
//
// The adapter mirrors what thrift-generated client code does: one TSocket
// wrapped in a framed transport and binary protocol, with every RPC dispatched
// through thrift.TStandardClient. Argument and result structs are written and
// read with hand-maintained codecs in codec.go; unknown server-side fields are
// skipped so newer servers stay readable.
//
// # Usage
//
// The façade dials through this package by default. To dial manually:
//
//	dialer := v1.NewDialer()
//	stub, err := dialer.Dial(ctx, thrift.Endpoint{
//	    Host: "127.0.0.1",
//	    Port: 9160,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer stub.Close()
//
// A stub is bound to one connection and is not safe for concurrent use.
package v1
