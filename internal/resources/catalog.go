package resources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"transmission-mcp/internal/logging"
	"transmission-mcp/internal/services"
	"transmission-mcp/internal/services/transmission"
)

// MIMEType is the content type of every resource document.
const MIMEType = "application/json"

// Resource URIs served by the catalog.
const (
	SessionURI  = "transmission://session"
	TorrentsURI = "transmission://torrents"
	StatsURI    = "transmission://stats"
)

// ErrUnknownResource is returned by Read for URIs the catalog does not serve.
var ErrUnknownResource = fmt.Errorf("%w: unknown resource", services.ErrNotFound)

// Caller is the RPC surface the catalog needs.
type Caller interface {
	Call(ctx context.Context, method string, arguments map[string]any) (*transmission.Response, error)
}

// Descriptor describes one listed resource.
type Descriptor struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
}

type entry struct {
	Descriptor
	method    string
	arguments func() map[string]any
}

// Catalog resolves resource URIs into daemon documents.
type Catalog struct {
	client  Caller
	logger  *slog.Logger
	entries []entry
}

// NewCatalog builds the catalog backed by client.
func NewCatalog(client Caller, logger *slog.Logger) *Catalog {
	return &Catalog{
		client: client,
		logger: logging.NewComponentLogger(logger, "resources"),
		entries: []entry{
			{
				Descriptor: Descriptor{
					URI:         SessionURI,
					Name:        "Transmission Session Info",
					Description: "Current Transmission session information",
					MIMEType:    MIMEType,
				},
				method: "session-get",
			},
			{
				Descriptor: Descriptor{
					URI:         TorrentsURI,
					Name:        "All Torrents",
					Description: "List of all torrents",
					MIMEType:    MIMEType,
				},
				method: "torrent-get",
				arguments: func() map[string]any {
					return map[string]any{"fields": transmission.TorrentListFields}
				},
			},
			{
				Descriptor: Descriptor{
					URI:         StatsURI,
					Name:        "Transmission Statistics",
					Description: "Session statistics",
					MIMEType:    MIMEType,
				},
				method: "session-stats",
			},
		},
	}
}

// List returns the resource descriptors in a stable order.
func (c *Catalog) List() []Descriptor {
	out := make([]Descriptor, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.Descriptor)
	}
	return out
}

// Read fetches the document behind uri and renders the daemon's arguments as
// indented JSON.
func (c *Catalog) Read(ctx context.Context, uri string) (string, error) {
	e, ok := c.lookup(uri)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownResource, uri)
	}
	var args map[string]any
	if e.arguments != nil {
		args = e.arguments()
	}
	resp, err := c.client.Call(ctx, e.method, args)
	if err != nil {
		logging.WithContext(ctx, c.logger).Debug("resource read returned error",
			logging.String("uri", uri),
			logging.String("kind", transmission.Kind(err)),
			logging.Error(err),
		)
		return "", err
	}
	raw := resp.Arguments
	if len(bytes.TrimSpace(raw)) == 0 || string(raw) == "null" {
		raw = json.RawMessage("{}")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", &transmission.ProtocolError{Method: e.method, Err: fmt.Errorf("indent arguments: %w", err)}
	}
	return buf.String(), nil
}

func (c *Catalog) lookup(uri string) (entry, bool) {
	for _, e := range c.entries {
		if e.URI == uri {
			return e, true
		}
	}
	return entry{}, false
}
