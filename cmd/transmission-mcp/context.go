package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"transmission-mcp/internal/config"
	"transmission-mcp/internal/logging"
	"transmission-mcp/internal/resources"
	"transmission-mcp/internal/services"
	"transmission-mcp/internal/services/transmission"
	"transmission-mcp/internal/tools"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
				cfg.Logging.Level = strings.ToLower(level)
				if err := cfg.Validate(); err != nil {
					c.configErr = fmt.Errorf("--log-level: %w", err)
					return
				}
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) newClient() (*transmission.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return transmission.NewClient(transmission.Config{
		URL:      cfg.RPCURL(),
		Username: cfg.Transmission.Username,
		Password: cfg.Transmission.Password,
		Timeout:  cfg.Timeout(),
	}, transmission.WithLogger(logger))
}

func (c *commandContext) newDispatcher(client tools.Caller) (*tools.Dispatcher, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return tools.NewDispatcher(client, logger), nil
}

func (c *commandContext) newCatalog(client resources.Caller) (*resources.Catalog, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return resources.NewCatalog(client, logger), nil
}

// parseArgsJSON decodes a JSON object flag value; an empty value yields nil.
func parseArgsJSON(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, services.Wrap(services.ErrValidation, "cli", "parse args", "--args must be a JSON object", err)
	}
	if args == nil {
		return nil, errors.New("--args must be a JSON object, not null")
	}
	return args, nil
}

// describeFailure prefixes err with its failure kind for terminal output.
func describeFailure(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", tools.ErrorKind(err), err)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
