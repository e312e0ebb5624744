package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"transmission-mcp/internal/services/transmission"
)

// FormatBytes renders a byte count with binary units.
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// FormatRate renders a bytes-per-second rate.
func FormatRate(n int64) string {
	return FormatBytes(n) + "/s"
}

// FormatProgress renders a 0..1 completion fraction as a percentage.
func FormatProgress(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// FormatETA renders an eta in seconds; negative values mean unknown.
func FormatETA(seconds int64) string {
	if seconds < 0 {
		return "Unknown"
	}
	return (time.Duration(seconds) * time.Second).String()
}

func formatTorrentInfo(t transmission.Torrent) string {
	var b strings.Builder
	b.WriteString("Torrent Information:\n")
	fmt.Fprintf(&b, "Name: %s\n", t.Name)
	fmt.Fprintf(&b, "ID: %d\n", t.ID)
	fmt.Fprintf(&b, "Status: %s\n", transmission.StatusName(t.Status))
	fmt.Fprintf(&b, "Size: %s\n", FormatBytes(t.TotalSize))
	fmt.Fprintf(&b, "Progress: %s\n", FormatProgress(t.PercentDone))
	fmt.Fprintf(&b, "Download Rate: %s\n", FormatRate(t.RateDownload))
	fmt.Fprintf(&b, "Upload Rate: %s\n", FormatRate(t.RateUpload))
	fmt.Fprintf(&b, "Ratio: %.2f\n", t.UploadRatio)
	fmt.Fprintf(&b, "ETA: %s\n", FormatETA(t.ETA))
	fmt.Fprintf(&b, "Peers: %d\n", t.PeersConnected)
	fmt.Fprintf(&b, "Download Dir: %s\n", t.DownloadDir)
	if t.AddedDate > 0 {
		fmt.Fprintf(&b, "Added: %s\n", humanize.Time(time.Unix(t.AddedDate, 0)))
	}
	if t.DoneDate > 0 {
		fmt.Fprintf(&b, "Completed: %s\n", humanize.Time(time.Unix(t.DoneDate, 0)))
	}
	if t.Error != 0 {
		fmt.Fprintf(&b, "Error: %s\n", t.ErrorString)
	}
	return b.String()
}

func formatSearchLine(t transmission.Torrent) string {
	return fmt.Sprintf("ID: %d | %s | Status: %s | Progress: %s",
		t.ID, t.Name, transmission.StatusName(t.Status), FormatProgress(t.PercentDone))
}

func formatSessionStats(s transmission.SessionStats) string {
	var b strings.Builder
	b.WriteString("Transmission Session Statistics:\n\n")
	b.WriteString("Current Session:\n")
	fmt.Fprintf(&b, "- Download Speed: %s\n", FormatRate(s.DownloadSpeed))
	fmt.Fprintf(&b, "- Upload Speed: %s\n", FormatRate(s.UploadSpeed))
	fmt.Fprintf(&b, "- Downloaded: %s\n", FormatBytes(s.Current.DownloadedBytes))
	fmt.Fprintf(&b, "- Uploaded: %s\n", FormatBytes(s.Current.UploadedBytes))
	fmt.Fprintf(&b, "- Files Added: %d\n", s.Current.FilesAdded)
	fmt.Fprintf(&b, "- Active Torrents: %d\n", s.ActiveTorrentCount)
	fmt.Fprintf(&b, "- Paused Torrents: %d\n", s.PausedTorrentCount)
	fmt.Fprintf(&b, "- Total Torrents: %d\n", s.TorrentCount)
	b.WriteString("\nCumulative:\n")
	fmt.Fprintf(&b, "- Downloaded: %s\n", FormatBytes(s.Cumulative.DownloadedBytes))
	fmt.Fprintf(&b, "- Uploaded: %s\n", FormatBytes(s.Cumulative.UploadedBytes))
	fmt.Fprintf(&b, "- Files Added: %d\n", s.Cumulative.FilesAdded)
	fmt.Fprintf(&b, "- Sessions: %d\n", s.Cumulative.SessionCount)
	fmt.Fprintf(&b, "- Uptime: %s\n", FormatETA(s.Cumulative.SecondsActive))
	return b.String()
}
