package transmission

// Session is the subset of session-get arguments shown by the status view.
type Session struct {
	Version               string `json:"version"`
	RPCVersion            int    `json:"rpc-version"`
	DownloadDir           string `json:"download-dir"`
	PeerPort              int    `json:"peer-port"`
	SpeedLimitDown        int64  `json:"speed-limit-down"`
	SpeedLimitDownEnabled bool   `json:"speed-limit-down-enabled"`
	SpeedLimitUp          int64  `json:"speed-limit-up"`
	SpeedLimitUpEnabled   bool   `json:"speed-limit-up-enabled"`
	AltSpeedEnabled       bool   `json:"alt-speed-enabled"`
	DownloadQueueEnabled  bool   `json:"download-queue-enabled"`
	DownloadQueueSize     int    `json:"download-queue-size"`
}
