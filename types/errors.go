package types

import "errors"

// Sentinel errors for common failure scenarios.
var (
	// ErrNotConnected indicates an operation was attempted while the client
	// is in the Failed state. The client never retries a failed lazy connect
	// implicitly; call Connect() to retry explicitly.
	ErrNotConnected = errors.New("cassette: client is not connected")

	// ErrClientClosed indicates an operation was attempted on a closed client.
	ErrClientClosed = errors.New("cassette: client is closed")

	// ErrNotFound indicates a point read matched no column.
	ErrNotFound = errors.New("cassette: column not found")

	// ErrInvalidRequest indicates the server rejected the request as malformed.
	ErrInvalidRequest = errors.New("cassette: invalid request")

	// ErrUnavailable indicates not enough replicas were alive to satisfy
	// the requested consistency level.
	ErrUnavailable = errors.New("cassette: not enough replicas available")

	// ErrTimedOut indicates the server timed out waiting for replica
	// acknowledgments.
	ErrTimedOut = errors.New("cassette: operation timed out server-side")

	// ErrSchemaDisagreement indicates the cluster has not reached schema
	// agreement for a schema-changing call.
	ErrSchemaDisagreement = errors.New("cassette: cluster schema disagreement")
)

// ErrorKind classifies a server-side fault reported through the RPC layer.
type ErrorKind int

const (
	// KindApplication is a generic application-level RPC fault.
	KindApplication ErrorKind = iota
	// KindInvalidRequest is a malformed or inconsistent request.
	KindInvalidRequest
	// KindNotFound is a point read that matched no column.
	KindNotFound
	// KindUnavailable means insufficient live replicas.
	KindUnavailable
	// KindTimedOut means the coordinator timed out waiting on replicas.
	KindTimedOut
	// KindAuthentication means the credentials were rejected.
	KindAuthentication
	// KindAuthorization means the credentials lack permission.
	KindAuthorization
	// KindSchemaDisagreement means the cluster disagrees on schema versions.
	KindSchemaDisagreement
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid request"
	case KindNotFound:
		return "not found"
	case KindUnavailable:
		return "unavailable"
	case KindTimedOut:
		return "timed out"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindSchemaDisagreement:
		return "schema disagreement"
	default:
		return "application"
	}
}

// ConnectionError represents a transport or authentication failure while
// establishing a connection.
type ConnectionError struct {
	// Host is the server host the connect was aimed at.
	Host string

	// Port is the server port.
	Port int

	// Err is the underlying transport or authentication error.
	Err error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return "cassette: connect to " + e.Host + " failed: " + e.Err.Error()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ProtocolError represents a server-side fault reported by the RPC layer.
//
// Every fault from the RPC boundary is surfaced to the caller unchanged in
// meaning; the façade performs no retries and no suppression.
type ProtocolError struct {
	// Op is the RPC method that failed, e.g. "get_slice".
	Op string

	// Kind classifies the fault.
	Kind ErrorKind

	// Message is the server-supplied detail, if any.
	Message string
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	msg := "cassette: " + e.Op + ": " + e.Kind.String()
	if e.Message != "" {
		msg += ": " + e.Message
	}

	return msg
}

// Unwrap maps the kind to its sentinel so callers can use errors.Is.
func (e *ProtocolError) Unwrap() error {
	switch e.Kind {
	case KindInvalidRequest:
		return ErrInvalidRequest
	case KindNotFound:
		return ErrNotFound
	case KindUnavailable:
		return ErrUnavailable
	case KindTimedOut:
		return ErrTimedOut
	case KindSchemaDisagreement:
		return ErrSchemaDisagreement
	default:
		return nil
	}
}

// InvalidConsistencyLevelError indicates a consistency-level name that does
// not match the closed enumerated set.
type InvalidConsistencyLevelError struct {
	// Name is the unrecognized level name as supplied by the caller.
	Name string
}

// Error implements the error interface.
func (e *InvalidConsistencyLevelError) Error() string {
	return "cassette: invalid consistency level " + `"` + e.Name + `"`
}

// NotConnectedError wraps the connect failure that put the client into the
// Failed state. It unwraps to both ErrNotConnected and the original cause.
type NotConnectedError struct {
	// Cause is the error from the failed connect attempt.
	Cause error
}

// Error implements the error interface.
func (e *NotConnectedError) Error() string {
	return ErrNotConnected.Error() + ": " + e.Cause.Error()
}

// Unwrap returns the wrapped errors for errors.Is/As compatibility.
func (e *NotConnectedError) Unwrap() []error {
	return []error{ErrNotConnected, e.Cause}
}
