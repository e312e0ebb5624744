package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"transmission-mcp/internal/logging"
	"transmission-mcp/internal/mcpserver"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve Transmission tools and resources to an MCP client over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			catalog, err := ctx.newCatalog(client)
			if err != nil {
				return err
			}
			dispatcher, err := ctx.newDispatcher(client)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if isTerminal(in) {
				logger.Warn("stdin is a terminal; serve expects an MCP client on stdin/stdout",
					logging.String(logging.FieldEventType, "serve_interactive_stdin"),
					logging.String(logging.FieldErrorHint, "Launch transmission-mcp serve from an MCP client configuration"),
				)
			}
			logger.Info("using transmission endpoint", logging.String("url", client.Endpoint()))

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			srv := mcpserver.New(dispatcher, catalog, logger, version, mcpserver.WithName(cfg.Server.Name))
			return srv.Serve(signalCtx, in, cmd.OutOrStdout())
		},
	}
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
