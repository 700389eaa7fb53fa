package cassette

import (
	"github.com/cassette-db/cassette/adapter/thrift"
	"github.com/cassette-db/cassette/types"
)

// Type aliases for convenience - re-export from types and adapter packages.
type (
	Consistency      = types.Consistency
	ConnState        = types.ConnState
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Dialer           = thrift.Dialer
	Stub             = thrift.Stub
	Endpoint         = thrift.Endpoint
	KsDef            = thrift.KsDef
	CfDef            = thrift.CfDef
	TokenRange       = thrift.TokenRange
)

// Re-export consistency level constants for convenience.
const (
	One         = types.One
	Quorum      = types.Quorum
	LocalQuorum = types.LocalQuorum
	EachQuorum  = types.EachQuorum
	All         = types.All
	Any         = types.Any
	Two         = types.Two
	Three       = types.Three
	Serial      = types.Serial
	LocalSerial = types.LocalSerial
	LocalOne    = types.LocalOne
)

// Re-export connection state constants for convenience.
const (
	Unconnected = types.Unconnected
	Connecting  = types.Connecting
	Ready       = types.Ready
	Failed      = types.Failed
	Closed      = types.Closed
)
