package tools

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"transmission-mcp/internal/services/transmission"
)

var priorityValues = map[string]int{
	"high":   transmission.PriorityHigh,
	"normal": transmission.PriorityNormal,
	"low":    transmission.PriorityLow,
}

var titleCaser = cases.Title(language.English)

func (d *Dispatcher) addTorrent(ctx context.Context, args Args) (string, error) {
	const name = "add_torrent"
	source, err := args.RequireString(name, "url")
	if err != nil {
		return "", err
	}
	downloadDir, _, err := args.String(name, "download_dir")
	if err != nil {
		return "", err
	}
	paused, err := args.Bool(name, "paused", false)
	if err != nil {
		return "", err
	}

	rpcArgs := map[string]any{"paused": paused}
	if isTorrentLocator(source) {
		rpcArgs["filename"] = source
	} else {
		rpcArgs["metainfo"] = source
	}
	if downloadDir != "" {
		rpcArgs["download-dir"] = downloadDir
	}

	var added transmission.AddedTorrent
	if err := d.client.CallInto(ctx, "torrent-add", rpcArgs, &added); err != nil {
		return "", err
	}
	switch {
	case added.Added != nil:
		return fmt.Sprintf("Successfully added torrent '%s' (ID: %d)", added.Added.Name, added.Added.ID), nil
	case added.Duplicate != nil:
		return fmt.Sprintf("Torrent already exists: '%s' (ID: %d)", added.Duplicate.Name, added.Duplicate.ID), nil
	default:
		return "Torrent added successfully", nil
	}
}

// isTorrentLocator reports whether source is a magnet link or URL the daemon
// fetches itself, as opposed to base64 metainfo.
func isTorrentLocator(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "magnet:") || strings.HasPrefix(lower, "http")
}

func (d *Dispatcher) removeTorrent(ctx context.Context, args Args) (string, error) {
	const name = "remove_torrent"
	id, err := args.torrentID(name)
	if err != nil {
		return "", err
	}
	deleteData, err := args.Bool(name, "delete_local_data", false)
	if err != nil {
		return "", err
	}
	if err := d.client.CallInto(ctx, "torrent-remove", map[string]any{
		"ids":               []int64{id},
		"delete-local-data": deleteData,
	}, nil); err != nil {
		return "", err
	}
	action := "removed"
	if deleteData {
		action = "removed and local data deleted"
	}
	return fmt.Sprintf("Torrent %d successfully %s", id, action), nil
}

func (d *Dispatcher) startTorrent(ctx context.Context, args Args) (string, error) {
	id, err := args.torrentID("start_torrent")
	if err != nil {
		return "", err
	}
	if err := d.client.CallInto(ctx, "torrent-start", map[string]any{"ids": []int64{id}}, nil); err != nil {
		return "", err
	}
	return fmt.Sprintf("Torrent %d started successfully", id), nil
}

func (d *Dispatcher) stopTorrent(ctx context.Context, args Args) (string, error) {
	id, err := args.torrentID("stop_torrent")
	if err != nil {
		return "", err
	}
	if err := d.client.CallInto(ctx, "torrent-stop", map[string]any{"ids": []int64{id}}, nil); err != nil {
		return "", err
	}
	return fmt.Sprintf("Torrent %d stopped successfully", id), nil
}

func (d *Dispatcher) getTorrentInfo(ctx context.Context, args Args) (string, error) {
	id, err := args.torrentID("get_torrent_info")
	if err != nil {
		return "", err
	}
	var list transmission.TorrentList
	if err := d.client.CallInto(ctx, "torrent-get", map[string]any{
		"ids":    []int64{id},
		"fields": transmission.TorrentDetailFields,
	}, &list); err != nil {
		return "", err
	}
	if len(list.Torrents) == 0 {
		return fmt.Sprintf("Torrent %d not found", id), nil
	}
	return formatTorrentInfo(list.Torrents[0]), nil
}

func (d *Dispatcher) setTorrentPriority(ctx context.Context, args Args) (string, error) {
	const name = "set_torrent_priority"
	id, err := args.torrentID(name)
	if err != nil {
		return "", err
	}
	priority, err := args.RequireString(name, "priority")
	if err != nil {
		return "", err
	}
	priority = strings.ToLower(priority)
	value, ok := priorityValues[priority]
	if !ok {
		return "", argError(name, fmt.Sprintf("priority must be high, normal, or low, got %q", priority))
	}
	if err := d.client.CallInto(ctx, "torrent-set", map[string]any{
		"ids":               []int64{id},
		"bandwidthPriority": value,
	}, nil); err != nil {
		return "", err
	}
	return fmt.Sprintf("Torrent %d priority set to %s", id, titleCaser.String(priority)), nil
}
