package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"transmission-mcp/internal/config"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"TRANSMISSION_HOST", "TRANSMISSION_PORT", "TRANSMISSION_RPC_PATH",
		"TRANSMISSION_USERNAME", "TRANSMISSION_PASSWORD", "TRANSMISSION_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(home); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := isolateEnv(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(home, ".config", "transmission-mcp", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if got := cfg.RPCURL(); got != "http://localhost:9091/transmission/rpc" {
		t.Fatalf("unexpected rpc url %q", got)
	}
	if cfg.Timeout().Seconds() != 30 {
		t.Fatalf("unexpected timeout %s", cfg.Timeout())
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.Server.Name != "transmission-mcp" {
		t.Fatalf("unexpected server name %q", cfg.Server.Name)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[transmission]
host = "nas.local"
port = 9000
username = "file-user"
password = "file-pass"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TRANSMISSION_HOST", "seedbox")
	t.Setenv("TRANSMISSION_PORT", "19091")
	t.Setenv("TRANSMISSION_TIMEOUT", "5")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if got := cfg.RPCURL(); got != "http://seedbox:19091/transmission/rpc" {
		t.Fatalf("unexpected rpc url %q", got)
	}
	if cfg.Transmission.Username != "file-user" || cfg.Transmission.Password != "file-pass" {
		t.Fatalf("expected credentials from file, got %+v", cfg.Transmission)
	}
	if cfg.Transmission.TimeoutSeconds != 5 {
		t.Fatalf("expected timeout from env, got %d", cfg.Transmission.TimeoutSeconds)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"port":        "[transmission]\nport = 70000\n",
		"rpc path":    "[transmission]\nrpc_path = \"transmission/rpc\"\n",
		"timeout":     "[transmission]\ntimeout_seconds = -1\n",
		"duration":    "[transmission]\ntimeout = \"soon\"\n",
		"negative":    "[transmission]\ntimeout = \"-2s\"\n",
		"credentials": "[transmission]\nusername = \"admin\"\n",
		"log format":  "[logging]\nformat = \"xml\"\n",
		"unknown key": "[transmission]\nhostname = \"x\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			isolateEnv(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestLoadRejectsInvalidPortEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TRANSMISSION_PORT", "not-a-port")
	if _, _, _, err := config.Load(""); err == nil || !strings.Contains(err.Error(), "TRANSMISSION_PORT") {
		t.Fatalf("expected TRANSMISSION_PORT error, got %v", err)
	}
}

func TestRPCURLUsesTLSAndIPv6(t *testing.T) {
	cfg := config.Default()
	cfg.Transmission.Host = "::1"
	cfg.Transmission.UseTLS = true
	if got := cfg.RPCURL(); got != "https://[::1]:9091/transmission/rpc" {
		t.Fatalf("unexpected rpc url %q", got)
	}
}

func TestSampleConfigParsesAndValidates(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var parsed config.Config
	if err := toml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("sample config is not valid TOML: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to be found")
	}
	if cfg.Transmission.Port != 9091 {
		t.Fatalf("unexpected port %d", cfg.Transmission.Port)
	}
}

func TestEncodeMasksPassword(t *testing.T) {
	cfg := config.Default()
	cfg.Transmission.Username = "admin"
	cfg.Transmission.Password = "hunter2"
	out, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.Contains(out, "hunter2") {
		t.Fatalf("expected password to be masked, got %q", out)
	}
	if !strings.Contains(out, "admin") {
		t.Fatalf("expected username in output, got %q", out)
	}
}

func TestLoadAcceptsSubSecondTimeout(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[transmission]\ntimeout_seconds = 10\ntimeout = \"50ms\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := cfg.Timeout(); got != 50*time.Millisecond {
		t.Fatalf("expected 50ms timeout, got %s", got)
	}
}

func TestTimeoutEnvironmentAcceptsSecondsOrDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"5":     5 * time.Second,
		"750ms": 750 * time.Millisecond,
		"2m":    2 * time.Minute,
	}
	for value, want := range cases {
		t.Run(value, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv("TRANSMISSION_TIMEOUT", value)
			cfg, _, _, err := config.Load("")
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if got := cfg.Timeout(); got != want {
				t.Fatalf("TRANSMISSION_TIMEOUT=%s: got %s, want %s", value, got, want)
			}
		})
	}

	isolateEnv(t)
	t.Setenv("TRANSMISSION_TIMEOUT", "eventually")
	if _, _, _, err := config.Load(""); err == nil {
		t.Fatal("expected invalid TRANSMISSION_TIMEOUT to fail")
	}
}
