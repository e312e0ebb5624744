// Package logging assembles structured slog loggers and formatting helpers used
// across transmission-mcp.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so tool handlers automatically
// tag log lines with the tool name and a correlation ID. Output defaults to
// stderr: stdout belongs to the MCP stdio stream and must never carry logs.
package logging
