// Package resources exposes read-only Transmission documents as MCP resources.
package resources
