// Package config loads, normalizes, and validates transmission-mcp
// configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the TRANSMISSION_* environment
// variables so the server can be configured entirely from an MCP client's
// launch environment. Always obtain settings through this package so
// downstream code receives a validated RPC endpoint and canonical log options.
package config
