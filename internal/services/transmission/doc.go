// Package transmission provides the session-aware JSON-RPC client used to talk
// to a Transmission daemon.
//
// # Session Handshake
//
// The daemon guards its RPC endpoint with an X-Transmission-Session-Id token.
// A request carrying a missing or outdated token is rejected with HTTP 409 and
// the response header carries the replacement. Client stores that token and
// repeats the request exactly once; a second consecutive 409 is reported as
// ErrStaleSessionExhausted rather than looping.
//
// # Concurrency
//
// The token is owned by the Client and guarded by a RWMutex, so one Client may
// be shared by any number of goroutines. A call always retries with the token
// it was handed by the daemon, and calls started after a refresh read the new
// token.
//
// # Errors
//
// Failures are typed: *ConnectionError (dial failures, timeouts, cancellation),
// *ProtocolError (unexpected status or undecodable body), *RPCError (the daemon
// answered with a non-success result) and ErrStaleSessionExhausted. Each also
// matches a services marker via errors.Is.
//
// # Entry Points
//
// NewClient: construct a client from Config.
// Client.Call: issue one logical RPC and return the raw response.
// Client.CallInto: issue one logical RPC and decode its arguments.
package transmission
