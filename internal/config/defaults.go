package config

const (
	defaultConfigPath     = "~/.config/transmission-mcp/config.toml"
	projectConfigName     = "transmission-mcp.toml"
	defaultHost           = "localhost"
	defaultPort           = 9091
	defaultRPCPath        = "/transmission/rpc"
	defaultTimeoutSeconds = 30
	defaultServerName     = "transmission-mcp"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Transmission: Transmission{
			Host:           defaultHost,
			Port:           defaultPort,
			RPCPath:        defaultRPCPath,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Server: Server{
			Name: defaultServerName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
