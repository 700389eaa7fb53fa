// Package types provides shared types and errors for the cassette library.
//
// This is a "leaf" package with no imports from other cassette packages,
// allowing it to be imported by any package without causing import cycles.
package types

import "strings"

// Consistency represents how many replica acknowledgments a read or write
// must gather before the operation is considered complete.
//
// The numeric values match the legacy Thrift ConsistencyLevel enumeration,
// so a Consistency can be written to the wire unchanged.
type Consistency int32

// Consistency levels matching the Thrift ConsistencyLevel enum.
const (
	One         Consistency = 1
	Quorum      Consistency = 2
	LocalQuorum Consistency = 3
	EachQuorum  Consistency = 4
	All         Consistency = 5
	Any         Consistency = 6
	Two         Consistency = 7
	Three       Consistency = 8
	Serial      Consistency = 9
	LocalSerial Consistency = 10
	LocalOne    Consistency = 11
)

// consistencyNames is the closed set of recognized level names.
// Lookup is case-insensitive; there is no fallback for unknown names.
var consistencyNames = map[string]Consistency{
	"one":          One,
	"quorum":       Quorum,
	"local_quorum": LocalQuorum,
	"localquorum":  LocalQuorum,
	"each_quorum":  EachQuorum,
	"eachquorum":   EachQuorum,
	"all":          All,
	"any":          Any,
	"two":          Two,
	"three":        Three,
	"serial":       Serial,
	"local_serial": LocalSerial,
	"localserial":  LocalSerial,
	"local_one":    LocalOne,
	"localone":     LocalOne,
}

// ParseConsistency maps a consistency-level name to its enumerated level.
//
// Matching is case-insensitive and accepts both "local_quorum" and
// "localquorum" spellings. Unknown names fail with an
// *InvalidConsistencyLevelError; the function never silently defaults.
//
// Parameters:
//   - name: The level name, e.g. "one", "quorum", "all"
//
// Returns:
//   - Consistency: The matching level
//   - error: *InvalidConsistencyLevelError if the name is not recognized
func ParseConsistency(name string) (Consistency, error) {
	if level, ok := consistencyNames[strings.ToLower(name)]; ok {
		return level, nil
	}

	return 0, &InvalidConsistencyLevelError{Name: name}
}

// String returns the canonical upper-case name of the level.
func (c Consistency) String() string {
	switch c {
	case One:
		return "ONE"
	case Quorum:
		return "QUORUM"
	case LocalQuorum:
		return "LOCAL_QUORUM"
	case EachQuorum:
		return "EACH_QUORUM"
	case All:
		return "ALL"
	case Any:
		return "ANY"
	case Two:
		return "TWO"
	case Three:
		return "THREE"
	case Serial:
		return "SERIAL"
	case LocalSerial:
		return "LOCAL_SERIAL"
	case LocalOne:
		return "LOCAL_ONE"
	default:
		return "UNKNOWN"
	}
}

// ConnState describes where a client is in its connection lifecycle.
//
// State transitions are driven exclusively by Connect() and Close():
//
//	Unconnected → Connecting → Ready
//	                        ↘ Failed → Connecting (explicit Connect retry)
//
// Closed is terminal and reachable from every state.
type ConnState int32

const (
	// Unconnected means no connect attempt has been made yet.
	Unconnected ConnState = iota
	// Connecting means a connect attempt is in flight.
	Connecting
	// Ready means the client holds a live, authenticated connection.
	Ready
	// Failed means the last connect attempt failed. Operations return
	// ErrNotConnected until an explicit Connect() retry succeeds.
	Failed
	// Closed means the client has been closed and cannot be reused.
	Closed
)

// String returns a human-readable state name.
func (s ConnState) String() string {
	switch s {
	case Unconnected:
		return "unconnected"
	case Connecting:
		return "connecting"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
