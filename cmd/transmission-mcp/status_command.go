package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"transmission-mcp/internal/services/transmission"
	"transmission-mcp/internal/tools"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connectivity and summarize the daemon session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			var session transmission.Session
			var stats transmission.SessionStats
			g, gctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return client.CallInto(gctx, "session-get", nil, &session)
			})
			g.Go(func() error {
				return client.CallInto(gctx, "session-stats", nil, &stats)
			})
			err = g.Wait()

			lines := renderSectionHeader("Transmission", colorize)
			lines = append(lines, renderStatusLine("Endpoint", statusInfo, client.Endpoint(), colorize))
			if err != nil {
				lines = append(lines, renderStatusLine("Daemon", statusError, tools.ErrorKind(err), colorize))
				fmt.Fprintln(out, strings.Join(lines, "\n"))
				return describeFailure(err)
			}
			lines = append(lines,
				renderStatusLine("Daemon", statusOK, fmt.Sprintf("Transmission %s (rpc %d)", session.Version, session.RPCVersion), colorize),
				renderStatusLine("Session id", statusInfo, shortToken(client.SessionID()), colorize),
				renderStatusLine("Download dir", statusInfo, session.DownloadDir, colorize),
				renderStatusLine("Download limit", limitKind(session.SpeedLimitDownEnabled), formatLimit(session.SpeedLimitDownEnabled, session.SpeedLimitDown), colorize),
				renderStatusLine("Upload limit", limitKind(session.SpeedLimitUpEnabled), formatLimit(session.SpeedLimitUpEnabled, session.SpeedLimitUp), colorize),
				renderStatusLine("Alt speed", statusInfo, yesNo(session.AltSpeedEnabled), colorize),
				"",
			)
			lines = append(lines, renderSectionHeader("Torrents", colorize)...)
			lines = append(lines,
				renderStatusLine("Torrents", statusInfo, fmt.Sprintf("%d total, %d active, %d paused", stats.TorrentCount, stats.ActiveTorrentCount, stats.PausedTorrentCount), colorize),
				renderStatusLine("Transfer", statusInfo, fmt.Sprintf("down %s, up %s", tools.FormatRate(stats.DownloadSpeed), tools.FormatRate(stats.UploadSpeed)), colorize),
				renderStatusLine("This session", statusInfo, fmt.Sprintf("downloaded %s, uploaded %s", tools.FormatBytes(stats.Current.DownloadedBytes), tools.FormatBytes(stats.Current.UploadedBytes)), colorize),
				renderStatusLine("All time", statusInfo, fmt.Sprintf("downloaded %s, uploaded %s over %d sessions", tools.FormatBytes(stats.Cumulative.DownloadedBytes), tools.FormatBytes(stats.Cumulative.UploadedBytes), stats.Cumulative.SessionCount), colorize),
			)
			fmt.Fprintln(out, strings.Join(lines, "\n"))
			return nil
		},
	}
}

// shortToken shows enough of the session token to correlate with daemon logs.
func shortToken(token string) string {
	if len(token) > 8 {
		return token[:8] + "..."
	}
	return token
}

func limitKind(enabled bool) statusKind {
	if enabled {
		return statusWarn
	}
	return statusInfo
}

// formatLimit renders a session speed limit, which the daemon reports in kB/s.
func formatLimit(enabled bool, kbps int64) string {
	if !enabled {
		return "unlimited"
	}
	return tools.FormatRate(kbps * 1000)
}
