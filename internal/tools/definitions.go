package tools

// Parameter types understood by MCP clients.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

// Parameter describes one tool argument.
type Parameter struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Default     any      `json:"default,omitempty"`
}

// Definition describes a tool for listing and schema generation.
type Definition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters,omitempty"`
	ReadOnly    bool        `json:"read_only,omitempty"`
	Destructive bool        `json:"destructive,omitempty"`
}

func torrentIDParam(description string) Parameter {
	return Parameter{Name: "torrent_id", Type: TypeInteger, Description: description, Required: true}
}

var (
	addTorrentDef = Definition{
		Name:        "add_torrent",
		Description: "Add a new torrent by URL or magnet link",
		Parameters: []Parameter{
			{Name: "url", Type: TypeString, Description: "Torrent URL, magnet link, or base64-encoded .torrent file", Required: true},
			{Name: "download_dir", Type: TypeString, Description: "Download directory (optional)"},
			{Name: "paused", Type: TypeBoolean, Description: "Start paused (optional, default false)", Default: false},
		},
	}
	removeTorrentDef = Definition{
		Name:        "remove_torrent",
		Description: "Remove a torrent by ID",
		Destructive: true,
		Parameters: []Parameter{
			torrentIDParam("Torrent ID to remove"),
			{Name: "delete_local_data", Type: TypeBoolean, Description: "Also delete local data (default false)", Default: false},
		},
	}
	startTorrentDef = Definition{
		Name:        "start_torrent",
		Description: "Start/resume a torrent by ID",
		Parameters:  []Parameter{torrentIDParam("Torrent ID to start")},
	}
	stopTorrentDef = Definition{
		Name:        "stop_torrent",
		Description: "Stop/pause a torrent by ID",
		Parameters:  []Parameter{torrentIDParam("Torrent ID to stop")},
	}
	getTorrentInfoDef = Definition{
		Name:        "get_torrent_info",
		Description: "Get detailed information about a specific torrent",
		ReadOnly:    true,
		Parameters:  []Parameter{torrentIDParam("Torrent ID to get info for")},
	}
	setTorrentPriorityDef = Definition{
		Name:        "set_torrent_priority",
		Description: "Set download priority for a torrent",
		Parameters: []Parameter{
			torrentIDParam("Torrent ID"),
			{Name: "priority", Type: TypeString, Description: "Priority level", Required: true, Enum: []string{"high", "normal", "low"}},
		},
	}
	setSpeedLimitsDef = Definition{
		Name:        "set_speed_limits",
		Description: "Set global download/upload speed limits",
		Parameters: []Parameter{
			{Name: "download_limit", Type: TypeInteger, Description: "Download speed limit in KB/s (0 = unlimited)"},
			{Name: "upload_limit", Type: TypeInteger, Description: "Upload speed limit in KB/s (0 = unlimited)"},
		},
	}
	searchTorrentsDef = Definition{
		Name:        "search_torrents",
		Description: "Search torrents by name",
		ReadOnly:    true,
		Parameters: []Parameter{
			{Name: "query", Type: TypeString, Description: "Search query (torrent name)", Required: true},
			{Name: "status_filter", Type: TypeString, Description: "Filter by status (optional)", Enum: statusFilterNames, Default: "all"},
		},
	}
	getSessionStatsDef = Definition{
		Name:        "get_session_stats",
		Description: "Get Transmission session statistics",
		ReadOnly:    true,
	}
)
