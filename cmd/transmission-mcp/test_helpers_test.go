package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"transmission-mcp/internal/services/transmission"
)

// fakeDaemon answers RPC calls with canned arguments after the 409 session
// handshake.
type fakeDaemon struct {
	mu      sync.Mutex
	replies map[string]string
	methods []string
	args    []map[string]any
}

func (d *fakeDaemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(transmission.SessionHeader) != "cli-session" {
		w.Header().Set(transmission.SessionHeader, "cli-session")
		w.WriteHeader(http.StatusConflict)
		return
	}
	var req transmission.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d.mu.Lock()
	d.methods = append(d.methods, req.Method)
	d.args = append(d.args, req.Arguments)
	reply, ok := d.replies[req.Method]
	d.mu.Unlock()
	if !ok {
		fmt.Fprint(w, `{"result":"method name not recognized"}`)
		return
	}
	fmt.Fprintf(w, `{"result":"success","arguments":%s}`, reply)
}

func (d *fakeDaemon) calledMethods() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.methods...)
}

type cliTestEnv struct {
	daemon     *fakeDaemon
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, replies map[string]string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	for _, key := range []string{
		"TRANSMISSION_HOST", "TRANSMISSION_PORT", "TRANSMISSION_RPC_PATH",
		"TRANSMISSION_USERNAME", "TRANSMISSION_PASSWORD", "TRANSMISSION_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	daemon := &fakeDaemon{replies: replies}
	server := httptest.NewServer(daemon)
	t.Cleanup(server.Close)

	host, port, err := net.SplitHostPort(strings.TrimPrefix(server.URL, "http://"))
	if err != nil {
		t.Fatalf("split server address: %v", err)
	}
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[transmission]
host = %q
port = %s
timeout_seconds = 5
username = "admin"
password = "hunter2"

[logging]
level = "error"
`, host, port)
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{daemon: daemon, configPath: configPath, baseDir: base}
}

func runCLI(t *testing.T, args []string, configPath string, stdin io.Reader) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
