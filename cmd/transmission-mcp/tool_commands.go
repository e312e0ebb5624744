package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"transmission-mcp/internal/tools"
)

func newToolCommand(ctx *commandContext) *cobra.Command {
	var argsFlag string

	cmd := &cobra.Command{
		Use:   "tool <name>",
		Short: "Run one MCP tool against the daemon and print its summary",
		Example: `  transmission-mcp tool search_torrents --args '{"query":"ubuntu","status_filter":"seeding"}'
  transmission-mcp tool get_torrent_info --args '{"torrent_id":3}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs, err := parseArgsJSON(argsFlag)
			if err != nil {
				return err
			}
			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			dispatcher, err := ctx.newDispatcher(client)
			if err != nil {
				return err
			}
			text, err := dispatcher.Call(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return describeFailure(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(text, "\n"))
			return nil
		},
	}
	cmd.Flags().StringVar(&argsFlag, "args", "", "Tool arguments as a JSON object")
	return cmd
}

func newToolsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "tools",
		Short:       "List the tools exposed to MCP clients",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := tools.NewDispatcher(nil, nil).Definitions()
			if jsonOutput {
				return writeJSON(cmd, defs)
			}
			rows := make([][]string, 0, len(defs))
			for _, def := range defs {
				rows = append(rows, []string{def.Name, formatParameters(def.Parameters), yesNo(def.ReadOnly), def.Description})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Arguments", "Read-only", "Description"},
				rows,
				nil,
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// formatParameters renders "name:type" pairs, marking required ones with *.
func formatParameters(params []tools.Parameter) string {
	if len(params) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		label := p.Name + ":" + p.Type
		if p.Required {
			label += "*"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, ", ")
}
