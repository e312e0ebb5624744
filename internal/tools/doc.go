// Package tools maps MCP tool invocations onto Transmission RPC calls.
//
// Each tool validates its free-form argument bag, shapes the RPC arguments,
// issues exactly one call through a Caller, and renders the daemon's answer
// as a short human-readable summary. Tool-specific semantics (torrent ids,
// priorities, limits) stop here; the RPC client only sees method names and
// argument maps.
package tools
