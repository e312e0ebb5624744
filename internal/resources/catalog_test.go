package resources_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"transmission-mcp/internal/logging"
	"transmission-mcp/internal/resources"
	"transmission-mcp/internal/services"
	"transmission-mcp/internal/services/transmission"
)

// newDaemon serves canned arguments per method and performs the session
// handshake once.
func newDaemon(t *testing.T, replies map[string]string) (*transmission.Client, *[]string) {
	t.Helper()
	var methods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(transmission.SessionHeader) != "sess-1" {
			w.Header().Set(transmission.SessionHeader, "sess-1")
			w.WriteHeader(http.StatusConflict)
			return
		}
		var req transmission.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		methods = append(methods, req.Method)
		if req.Method == "torrent-get" {
			fields, _ := req.Arguments["fields"].([]any)
			if len(fields) != len(transmission.TorrentListFields) {
				t.Errorf("torrent-get fields = %v", req.Arguments["fields"])
			}
		}
		args, ok := replies[req.Method]
		if !ok {
			_, _ = w.Write([]byte(`{"result":"method name not recognized"}`))
			return
		}
		_, _ = w.Write([]byte(`{"result":"success","arguments":` + args + `}`))
	}))
	t.Cleanup(server.Close)

	client, err := transmission.NewClient(transmission.Config{URL: server.URL + "/transmission/rpc"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, &methods
}

func TestListDescribesThreeResources(t *testing.T) {
	catalog := resources.NewCatalog(nil, logging.NewNop())
	list := catalog.List()
	want := []string{resources.SessionURI, resources.TorrentsURI, resources.StatsURI}
	if len(list) != len(want) {
		t.Fatalf("expected %d resources, got %d", len(want), len(list))
	}
	for i, desc := range list {
		if desc.URI != want[i] {
			t.Fatalf("resource %d uri = %q, want %q", i, desc.URI, want[i])
		}
		if desc.MIMEType != resources.MIMEType || desc.Name == "" {
			t.Fatalf("incomplete descriptor %+v", desc)
		}
	}
}

func TestReadRendersIndentedArguments(t *testing.T) {
	client, methods := newDaemon(t, map[string]string{
		"session-get":   `{"version":"4.0.5","rpc-version":17}`,
		"torrent-get":   `{"torrents":[{"id":1,"name":"a"}]}`,
		"session-stats": `{"torrentCount":1}`,
	})
	catalog := resources.NewCatalog(client, logging.NewNop())

	doc, err := catalog.Read(context.Background(), resources.SessionURI)
	if err != nil {
		t.Fatalf("Read session: %v", err)
	}
	if doc != "{\n  \"version\": \"4.0.5\",\n  \"rpc-version\": 17\n}" {
		t.Fatalf("unexpected session document %q", doc)
	}

	doc, err = catalog.Read(context.Background(), resources.TorrentsURI)
	if err != nil {
		t.Fatalf("Read torrents: %v", err)
	}
	if !strings.Contains(doc, "\"torrents\": [") {
		t.Fatalf("unexpected torrents document %q", doc)
	}

	if _, err := catalog.Read(context.Background(), resources.StatsURI); err != nil {
		t.Fatalf("Read stats: %v", err)
	}

	want := []string{"session-get", "torrent-get", "session-stats"}
	if strings.Join(*methods, ",") != strings.Join(want, ",") {
		t.Fatalf("methods = %v, want %v", *methods, want)
	}
}

func TestReadUnknownURI(t *testing.T) {
	catalog := resources.NewCatalog(nil, logging.NewNop())
	_, err := catalog.Read(context.Background(), "transmission://peers")
	if !errors.Is(err, resources.ErrUnknownResource) {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got %v", err)
	}
}

func TestReadPropagatesRPCError(t *testing.T) {
	client, _ := newDaemon(t, map[string]string{})
	catalog := resources.NewCatalog(client, logging.NewNop())
	_, err := catalog.Read(context.Background(), resources.StatsURI)
	var rpcErr *transmission.RPCError
	if !errors.As(err, &rpcErr) || rpcErr.Result != "method name not recognized" {
		t.Fatalf("expected rpc error, got %v", err)
	}
}

func TestReadFailureLogsRequestID(t *testing.T) {
	client, _ := newDaemon(t, map[string]string{})
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	catalog := resources.NewCatalog(client, logger)

	ctx := services.WithRequestID(context.Background(), "req-42")
	if _, err := catalog.Read(ctx, resources.StatsURI); err == nil {
		t.Fatal("expected read to fail")
	}
	out := buf.String()
	if !strings.Contains(out, `"msg":"resource read returned error"`) {
		t.Fatalf("expected failure log line, got %q", out)
	}
	if !strings.Contains(out, `"`+logging.FieldCorrelationID+`":"req-42"`) {
		t.Fatalf("expected request id on failure log line, got %q", out)
	}
	if strings.Contains(out, `"level":"WARN"`) {
		t.Fatalf("catalog should leave the warning to the transport, got %q", out)
	}
}
