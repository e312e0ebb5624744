package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"transmission-mcp/internal/services/transmission"
	"transmission-mcp/internal/tools"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var statusFilter string
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show torrents known to the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := tools.StatusMatcher(statusFilter)
			if err != nil {
				return err
			}
			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			var list transmission.TorrentList
			if err := client.CallInto(cmd.Context(), "torrent-get", map[string]any{"fields": transmission.TorrentListFields}, &list); err != nil {
				return describeFailure(err)
			}
			torrents := tools.FilterTorrents(list.Torrents, query, match)
			sort.Slice(torrents, func(i, j int) bool { return torrents[i].ID < torrents[j].ID })

			if jsonOutput {
				return writeJSON(cmd, torrents)
			}
			out := cmd.OutOrStdout()
			if len(torrents) == 0 {
				fmt.Fprintln(out, "No torrents")
				return nil
			}
			fmt.Fprintln(out, renderTorrentTable(torrents))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&statusFilter, "status", "all", "Filter by status (all, downloading, seeding, paused, completed)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show torrents whose name contains this text")
	return cmd
}

func renderTorrentTable(torrents []transmission.Torrent) string {
	rows := make([][]string, 0, len(torrents))
	for _, t := range torrents {
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			truncate(t.Name, 48),
			transmission.StatusName(t.Status),
			tools.FormatProgress(t.PercentDone),
			tools.FormatBytes(t.TotalSize),
			tools.FormatRate(t.RateDownload),
			tools.FormatRate(t.RateUpload),
			fmt.Sprintf("%.2f", t.UploadRatio),
			tools.FormatETA(t.ETA),
		})
	}
	return renderTable(
		[]string{"ID", "Name", "Status", "Done", "Size", "Down", "Up", "Ratio", "ETA"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
	)
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-1]) + "…"
}
