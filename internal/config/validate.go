package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTransmission(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTransmission() error {
	t := c.Transmission
	if t.Port < 1 || t.Port > 65535 {
		return fmt.Errorf("transmission.port must be between 1 and 65535, got %d", t.Port)
	}
	if !strings.HasPrefix(t.RPCPath, "/") {
		return fmt.Errorf("transmission.rpc_path must start with '/', got %q", t.RPCPath)
	}
	if t.Timeout != "" {
		timeout, err := t.timeout()
		if err != nil {
			return fmt.Errorf("transmission.timeout: %w", err)
		}
		if timeout <= 0 {
			return fmt.Errorf("transmission.timeout must be positive, got %q", t.Timeout)
		}
	} else if t.TimeoutSeconds <= 0 {
		return errors.New("transmission.timeout_seconds must be positive")
	}
	if (t.Username == "") != (t.Password == "") {
		return errors.New("transmission.username and transmission.password must be set together")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
