package tools

import (
	"context"
	"fmt"

	"transmission-mcp/internal/services/transmission"
)

func (d *Dispatcher) setSpeedLimits(ctx context.Context, args Args) (string, error) {
	const name = "set_speed_limits"
	rpcArgs := map[string]any{}
	for _, limit := range []struct {
		key       string
		direction string
	}{
		{key: "download_limit", direction: "down"},
		{key: "upload_limit", direction: "up"},
	} {
		value, ok, err := args.Int(name, limit.key)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		if value < 0 {
			return "", argError(name, fmt.Sprintf("%s must not be negative", limit.key))
		}
		rpcArgs["speed-limit-"+limit.direction+"-enabled"] = value > 0
		rpcArgs["speed-limit-"+limit.direction] = value
	}
	if len(rpcArgs) == 0 {
		return "", argError(name, "download_limit or upload_limit is required")
	}
	if err := d.client.CallInto(ctx, "session-set", rpcArgs, nil); err != nil {
		return "", err
	}
	return "Speed limits updated successfully", nil
}

func (d *Dispatcher) getSessionStats(ctx context.Context, _ Args) (string, error) {
	var stats transmission.SessionStats
	if err := d.client.CallInto(ctx, "session-stats", nil, &stats); err != nil {
		return "", err
	}
	return formatSessionStats(stats), nil
}
