// Package types provides shared types and error definitions for the cassette library.
//
// This is a leaf package with zero cassette imports to prevent import cycles.
// All packages in cassette can safely import this package.
//
// # Types
//
// Consistency levels mirror the wire values of the legacy Thrift
// ConsistencyLevel enumeration:
//
//	const (
//	    One         Consistency = 1
//	    Quorum      Consistency = 2
//	    LocalQuorum Consistency = 3
//	    EachQuorum  Consistency = 4
//	    All         Consistency = 5
//	    Any         Consistency = 6
//	    Two         Consistency = 7
//	    Three       Consistency = 8
//	    Serial      Consistency = 9
//	    LocalSerial Consistency = 10
//	    LocalOne    Consistency = 11
//	)
//
// ConnState describes the connection state machine of a client:
//
//	Unconnected → Connecting → Ready
//	                        ↘ Failed
//
// plus a terminal Closed state entered from any state via Close().
//
// # Errors
//
// Sentinel errors are provided for common failure scenarios:
//
//   - ErrNotConnected: An operation was attempted after a failed connect
//   - ErrClientClosed: An operation was attempted on a closed client
//   - ErrNotFound: A point read matched no column
//   - ErrUnavailable: Not enough replicas were alive to satisfy the consistency level
//   - ErrTimedOut: The server timed out waiting for replica acknowledgments
//
// Check for sentinel errors using errors.Is. Structured errors
// (ConnectionError, ProtocolError, InvalidConsistencyLevelError) support
// errors.As and unwrap to the matching sentinel where one exists.
package types
