package tools

import (
	"context"
	"fmt"
	"strings"

	"transmission-mcp/internal/services/transmission"
)

var statusFilterNames = []string{"all", "downloading", "seeding", "paused", "completed"}

// statusFilters match torrents for each status_filter value other than "all".
var statusFilters = map[string]func(transmission.Torrent) bool{
	"downloading": func(t transmission.Torrent) bool { return t.Status == transmission.StatusDownloading },
	"seeding":     func(t transmission.Torrent) bool { return t.Status == transmission.StatusSeeding },
	"paused":      func(t transmission.Torrent) bool { return t.Status == transmission.StatusStopped },
	"completed":   func(t transmission.Torrent) bool { return t.PercentDone >= 1 },
}

func (d *Dispatcher) searchTorrents(ctx context.Context, args Args) (string, error) {
	const name = "search_torrents"
	query, err := args.RequireString(name, "query")
	if err != nil {
		return "", err
	}
	filter, _, err := args.String(name, "status_filter")
	if err != nil {
		return "", err
	}
	match, err := StatusMatcher(filter)
	if err != nil {
		return "", argError(name, err.Error())
	}

	var list transmission.TorrentList
	if err := d.client.CallInto(ctx, "torrent-get", map[string]any{"fields": transmission.TorrentSummaryFields}, &list); err != nil {
		return "", err
	}

	matches := FilterTorrents(list.Torrents, query, match)
	if len(matches) == 0 {
		return "No torrents found matching the search criteria", nil
	}
	lines := make([]string, 0, len(matches)+1)
	lines = append(lines, fmt.Sprintf("Found %d matching torrents:", len(matches)))
	for _, t := range matches {
		lines = append(lines, formatSearchLine(t))
	}
	return strings.Join(lines, "\n"), nil
}

// StatusMatcher returns the predicate for a status filter name. "all" and the
// empty string match everything and yield a nil predicate.
func StatusMatcher(filter string) (func(transmission.Torrent) bool, error) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" || filter == "all" {
		return nil, nil
	}
	match, ok := statusFilters[filter]
	if !ok {
		return nil, fmt.Errorf("status_filter must be one of %s, got %q", strings.Join(statusFilterNames, ", "), filter)
	}
	return match, nil
}

// FilterTorrents keeps torrents whose name contains query (case-insensitive)
// and that satisfy match when it is non-nil.
func FilterTorrents(torrents []transmission.Torrent, query string, match func(transmission.Torrent) bool) []transmission.Torrent {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]transmission.Torrent, 0, len(torrents))
	for _, t := range torrents {
		if !strings.Contains(strings.ToLower(t.Name), needle) {
			continue
		}
		if match != nil && !match(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
