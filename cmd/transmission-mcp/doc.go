// Command transmission-mcp serves Transmission daemon controls to MCP clients
// over stdio and offers the same tools from the shell for diagnostics.
package main
