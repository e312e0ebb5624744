package services_test

import (
	"context"
	"testing"

	"transmission-mcp/internal/services"
)

func TestContextHelpersRoundTrip(t *testing.T) {
	ctx := services.WithTool(context.Background(), "add_torrent")
	ctx = services.WithRequestID(ctx, "req-1")

	if tool, ok := services.ToolFromContext(ctx); !ok || tool != "add_torrent" {
		t.Fatalf("unexpected tool: %q ok=%v", tool, ok)
	}
	if id, ok := services.RequestIDFromContext(ctx); !ok || id != "req-1" {
		t.Fatalf("unexpected request id: %q ok=%v", id, ok)
	}
}

func TestContextHelpersIgnoreEmptyValues(t *testing.T) {
	ctx := services.WithTool(context.Background(), "")
	ctx = services.WithRequestID(ctx, "")
	if _, ok := services.ToolFromContext(ctx); ok {
		t.Fatal("expected no tool")
	}
	if _, ok := services.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id")
	}
}
