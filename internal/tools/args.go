package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"transmission-mcp/internal/services"
)

// Args is the argument bag supplied with a tool invocation.
type Args map[string]any

func argError(tool, message string) error {
	return services.Wrap(services.ErrValidation, "tools", tool, message, nil)
}

// RequireString returns a non-empty string argument.
func (a Args) RequireString(tool, key string) (string, error) {
	value, ok, err := a.String(tool, key)
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(value) == "" {
		return "", argError(tool, fmt.Sprintf("%s is required", key))
	}
	return value, nil
}

// String returns an optional string argument.
func (a Args) String(tool, key string) (string, bool, error) {
	raw, ok := a[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", false, argError(tool, fmt.Sprintf("%s must be a string", key))
	}
	return strings.TrimSpace(value), true, nil
}

// RequireInt returns an integer argument that must be present.
func (a Args) RequireInt(tool, key string) (int64, error) {
	value, ok, err := a.Int(tool, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, argError(tool, fmt.Sprintf("%s is required", key))
	}
	return value, nil
}

// Int returns an optional integer argument. JSON numbers arrive as float64 and
// are accepted when they carry no fractional part; numeric strings are
// accepted too since some MCP clients stringify arguments.
func (a Args) Int(tool, key string) (int64, bool, error) {
	raw, ok := a[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	invalid := argError(tool, fmt.Sprintf("%s must be an integer", key))
	switch v := raw.(type) {
	case int:
		return int64(v), true, nil
	case int32:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false, invalid
		}
		return int64(v), true, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false, invalid
		}
		return n, true, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false, invalid
		}
		return n, true, nil
	default:
		return 0, false, invalid
	}
}

// Bool returns an optional boolean argument, falling back to def.
func (a Args) Bool(tool, key string, def bool) (bool, error) {
	raw, ok := a[key]
	if !ok || raw == nil {
		return def, nil
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, argError(tool, fmt.Sprintf("%s must be a boolean", key))
		}
		return parsed, nil
	default:
		return false, argError(tool, fmt.Sprintf("%s must be a boolean", key))
	}
}

// torrentID reads the torrent_id argument shared by most tools.
func (a Args) torrentID(tool string) (int64, error) {
	id, err := a.RequireInt(tool, "torrent_id")
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, argError(tool, "torrent_id must be positive")
	}
	return id, nil
}
