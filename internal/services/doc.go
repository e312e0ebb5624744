// Package services defines shared utilities consumed by the Transmission RPC
// client, the tool dispatcher, and the resource catalog.
//
// Key responsibilities:
//   - Context helpers that stamp tool names and correlation identifiers for
//     logging and tracing.
//   - Structured error markers plus the Wrap helper that keep failures
//     classifiable (validation vs transient vs external) no matter which layer
//     produced them.
//
// Use these helpers when wiring new tools so operational behaviour (error
// handling, observability) stays uniform across the server.
package services
