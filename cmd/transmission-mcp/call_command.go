package main

import (
	"github.com/spf13/cobra"
)

func newCallCommand(ctx *commandContext) *cobra.Command {
	var argsFlag string

	cmd := &cobra.Command{
		Use:   "call <method>",
		Short: "Issue a raw Transmission RPC call and print the returned arguments",
		Example: `  transmission-mcp call session-get
  transmission-mcp call torrent-get --args '{"fields":["id","name"]}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rpcArgs, err := parseArgsJSON(argsFlag)
			if err != nil {
				return err
			}
			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			resp, err := client.Call(cmd.Context(), args[0], rpcArgs)
			if err != nil {
				return describeFailure(err)
			}
			return writeJSON(cmd, resp.Arguments)
		},
	}
	cmd.Flags().StringVar(&argsFlag, "args", "", "RPC arguments as a JSON object")
	return cmd
}
