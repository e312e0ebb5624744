package transmission

import (
	"errors"
	"fmt"
	"strings"

	"transmission-mcp/internal/services"
)

// ErrStaleSessionExhausted reports that the daemon rejected the session token
// twice in a row, once before and once after a refresh.
var ErrStaleSessionExhausted = errors.New("transmission: session id rejected after refresh")

// ConnectionError reports that the daemon could not be reached or did not answer
// before the attempt deadline.
type ConnectionError struct {
	Method  string
	Timeout bool
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("transmission %s: connection failed: %v", e.Method, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Is lets callers classify connection failures with the services markers.
func (e *ConnectionError) Is(target error) bool {
	if target == services.ErrTimeout {
		return e.Timeout
	}
	return target == services.ErrTransient
}

// ProtocolError reports an unexpected HTTP status or an undecodable response.
// StatusCode is the status of the offending response.
type ProtocolError struct {
	Method     string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProtocolError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "transmission %s: protocol error", e.Method)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": http %d", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if body := strings.TrimSpace(e.Body); body != "" {
		fmt.Fprintf(&b, ": %s", body)
	}
	return b.String()
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func (e *ProtocolError) Is(target error) bool {
	return target == services.ErrExternalTool
}

// RPCError carries the result string of a well-formed but unsuccessful
// response.
type RPCError struct {
	Method string
	Result string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("transmission %s: %s", e.Method, e.Result)
}

func (e *RPCError) Is(target error) bool {
	return target == services.ErrExternalTool
}

type staleSessionError struct {
	method string
}

func (e *staleSessionError) Error() string {
	return fmt.Sprintf("transmission %s: %v", e.method, ErrStaleSessionExhausted)
}

func (e *staleSessionError) Is(target error) bool {
	return target == ErrStaleSessionExhausted || target == services.ErrExternalTool
}

// Kind names the failure class of err for user-facing rendering.
func Kind(err error) string {
	var connErr *ConnectionError
	var protoErr *ProtocolError
	var rpcErr *RPCError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrStaleSessionExhausted):
		return "StaleSessionExhausted"
	case errors.As(err, &connErr):
		return "ConnectionError"
	case errors.As(err, &protoErr):
		return "ProtocolError"
	case errors.As(err, &rpcErr):
		return "RpcError"
	default:
		return ""
	}
}
