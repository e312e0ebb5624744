package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

func (c *Config) normalize() error {
	if err := c.normalizeTransmission(); err != nil {
		return err
	}
	c.Server.Name = strings.TrimSpace(c.Server.Name)
	if c.Server.Name == "" {
		c.Server.Name = defaultServerName
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeTransmission() error {
	t := &c.Transmission
	if value, ok := lookupEnv("TRANSMISSION_HOST"); ok {
		t.Host = value
	}
	if value, ok := lookupEnv("TRANSMISSION_PORT"); ok {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("TRANSMISSION_PORT: invalid port %q", value)
		}
		t.Port = port
	}
	if value, ok := lookupEnv("TRANSMISSION_RPC_PATH"); ok {
		t.RPCPath = value
	}
	if value, ok := lookupEnv("TRANSMISSION_USERNAME"); ok {
		t.Username = value
	}
	if value, ok := lookupEnv("TRANSMISSION_PASSWORD"); ok {
		t.Password = value
	}
	if value, ok := lookupEnv("TRANSMISSION_TIMEOUT"); ok {
		if seconds, err := strconv.Atoi(value); err == nil {
			t.TimeoutSeconds = seconds
			t.Timeout = ""
		} else if _, err := time.ParseDuration(value); err == nil {
			t.Timeout = value
		} else {
			return fmt.Errorf("TRANSMISSION_TIMEOUT: expected seconds or a duration such as 500ms, got %q", value)
		}
	}
	t.Timeout = strings.TrimSpace(t.Timeout)

	t.Host = strings.TrimSpace(t.Host)
	if t.Host == "" {
		t.Host = defaultHost
	}
	if t.Port == 0 {
		t.Port = defaultPort
	}
	t.RPCPath = strings.TrimSpace(t.RPCPath)
	if t.RPCPath == "" {
		t.RPCPath = defaultRPCPath
	}
	t.Username = strings.TrimSpace(t.Username)
	if t.TimeoutSeconds == 0 {
		t.TimeoutSeconds = defaultTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
