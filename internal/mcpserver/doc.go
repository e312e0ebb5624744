// Package mcpserver publishes the Transmission tools and resources over the
// Model Context Protocol stdio transport.
//
// Tool failures never escape as protocol errors: they are rendered into an
// error tool result naming the tool and the failure kind so the client model
// can read and react to them. Resource failures surface as JSON-RPC errors.
package mcpserver
