package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"transmission-mcp/internal/logging"
	"transmission-mcp/internal/resources"
	"transmission-mcp/internal/services"
	"transmission-mcp/internal/tools"
)

// DefaultName is the server name announced during initialization.
const DefaultName = "transmission-mcp"

// ToolRunner executes named tools.
type ToolRunner interface {
	Definitions() []tools.Definition
	Call(ctx context.Context, name string, args map[string]any) (string, error)
}

// ResourceReader lists and reads resource documents.
type ResourceReader interface {
	List() []resources.Descriptor
	Read(ctx context.Context, uri string) (string, error)
}

// Option customizes the server.
type Option func(*Server)

// WithName overrides the announced server name.
func WithName(name string) Option {
	return func(s *Server) {
		if name = strings.TrimSpace(name); name != "" {
			s.name = name
		}
	}
}

// Server wraps an MCP server wired to the tool dispatcher and resource catalog.
type Server struct {
	name      string
	version   string
	tools     ToolRunner
	resources ResourceReader
	logger    *slog.Logger
	mcp       *server.MCPServer
}

// New registers every tool definition and resource with a new MCP server.
func New(runner ToolRunner, catalog ResourceReader, logger *slog.Logger, version string, opts ...Option) *Server {
	s := &Server{
		name:      DefaultName,
		version:   version,
		tools:     runner,
		resources: catalog,
		logger:    logging.NewComponentLogger(logger, "mcp"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.version == "" {
		s.version = "dev"
	}

	s.mcp = server.NewMCPServer(s.name, s.version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)
	if runner != nil {
		for _, def := range runner.Definitions() {
			s.mcp.AddTool(toolFromDefinition(def), s.toolHandler(def.Name))
		}
	}
	if catalog != nil {
		for _, desc := range catalog.List() {
			s.mcp.AddResource(
				mcp.NewResource(desc.URI, desc.Name,
					mcp.WithResourceDescription(desc.Description),
					mcp.WithMIMEType(desc.MIMEType),
				),
				s.resourceHandler(desc),
			)
		}
	}
	return s
}

// MCP exposes the underlying protocol server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// Serve runs the stdio transport until ctx is cancelled or in is exhausted.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(log.New(&slogWriter{logger: s.logger}, "", 0))

	s.logger.Info("mcp server listening on stdio",
		logging.String("name", s.name),
		logging.String("version", s.version),
	)
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve stdio: %w", err)
	}
	s.logger.Info("mcp server stopped")
	return nil
}

func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = services.WithRequestID(ctx, uuid.NewString())
		ctx = services.WithTool(ctx, name)
		logger := logging.WithContext(ctx, s.logger)

		start := time.Now()
		text, err := s.tools.Call(ctx, name, req.GetArguments())
		if err != nil {
			logger.Warn("tool call failed",
				logging.Duration("duration", time.Since(start)),
				logging.String("kind", tools.ErrorKind(err)),
				logging.Error(err),
				logging.String(logging.FieldEventType, "tool_call_failed"),
				logging.String(logging.FieldErrorHint, "Check that the Transmission daemon is reachable and the arguments are valid"),
			)
			return mcp.NewToolResultError(RenderError(name, err)), nil
		}
		logger.Info("tool call completed", logging.Duration("duration", time.Since(start)))
		return mcp.NewToolResultText(text), nil
	}
}

func (s *Server) resourceHandler(desc resources.Descriptor) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ctx = services.WithRequestID(ctx, uuid.NewString())
		uri := req.Params.URI
		if uri == "" {
			uri = desc.URI
		}
		text, err := s.resources.Read(ctx, uri)
		if err != nil {
			logging.WithContext(ctx, s.logger).Warn("resource read failed",
				logging.String("uri", uri),
				logging.Error(err),
				logging.String(logging.FieldEventType, "resource_read_failed"),
			)
			return nil, fmt.Errorf("read resource %s: %w", uri, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: uri, MIMEType: desc.MIMEType, Text: text},
		}, nil
	}
}

// RenderError formats a tool failure for the client.
func RenderError(tool string, err error) string {
	return fmt.Sprintf("Error executing %s: %s: %v", tool, tools.ErrorKind(err), err)
}

// slogWriter adapts the transport's *log.Logger output onto slog.
type slogWriter struct {
	logger *slog.Logger
}

func (w *slogWriter) Write(p []byte) (int, error) {
	w.logger.Error(strings.TrimSpace(string(p)), logging.String(logging.FieldEventType, "mcp_transport_error"))
	return len(p), nil
}
