package services

import "context"

type contextKey string

const (
	toolKey      contextKey = "tool"
	requestIDKey contextKey = "request_id"
)

// WithTool annotates context with the MCP tool name being executed.
func WithTool(ctx context.Context, tool string) context.Context {
	if tool == "" {
		return ctx
	}
	return context.WithValue(ctx, toolKey, tool)
}

// ToolFromContext returns the tool name if present.
func ToolFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(toolKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
