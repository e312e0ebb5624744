package transmission

// Torrent status codes reported in the "status" field.
const (
	StatusStopped      = 0
	StatusCheckWait    = 1
	StatusChecking     = 2
	StatusDownloadWait = 3
	StatusDownloading  = 4
	StatusSeedWait     = 5
	StatusSeeding      = 6
)

// Bandwidth priorities accepted by torrent-set.
const (
	PriorityLow    = -1
	PriorityNormal = 0
	PriorityHigh   = 1
)

// NoETA is the eta value the daemon reports when no estimate is available.
const NoETA int64 = -1

// Field sets requested from torrent-get.
var (
	TorrentSummaryFields = []string{
		"id", "name", "status", "totalSize", "percentDone", "rateDownload", "rateUpload",
	}
	TorrentListFields = []string{
		"id", "name", "status", "totalSize", "percentDone", "rateDownload",
		"rateUpload", "uploadRatio", "eta", "peersConnected", "downloadDir",
		"error", "errorString", "addedDate", "doneDate", "trackerStats",
	}
	TorrentDetailFields = append(append([]string{}, TorrentListFields...),
		"files", "fileStats", "pieces", "pieceCount", "pieceSize",
	)
)

// Torrent is the subset of torrent-get fields the server renders.
type Torrent struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	HashString     string  `json:"hashString,omitempty"`
	Status         int     `json:"status"`
	TotalSize      int64   `json:"totalSize"`
	PercentDone    float64 `json:"percentDone"`
	RateDownload   int64   `json:"rateDownload"`
	RateUpload     int64   `json:"rateUpload"`
	UploadRatio    float64 `json:"uploadRatio"`
	ETA            int64   `json:"eta"`
	PeersConnected int     `json:"peersConnected"`
	DownloadDir    string  `json:"downloadDir"`
	Error          int     `json:"error"`
	ErrorString    string  `json:"errorString"`
	AddedDate      int64   `json:"addedDate"`
	DoneDate       int64   `json:"doneDate"`
}

// TorrentList is the arguments object of a torrent-get response.
type TorrentList struct {
	Torrents []Torrent `json:"torrents"`
}

// AddedTorrent is the arguments object of a torrent-add response.
type AddedTorrent struct {
	Added     *Torrent `json:"torrent-added,omitempty"`
	Duplicate *Torrent `json:"torrent-duplicate,omitempty"`
}

// StatsBlock is one of the current/cumulative blocks in session-stats.
type StatsBlock struct {
	UploadedBytes   int64 `json:"uploadedBytes"`
	DownloadedBytes int64 `json:"downloadedBytes"`
	FilesAdded      int64 `json:"filesAdded"`
	SessionCount    int64 `json:"sessionCount"`
	SecondsActive   int64 `json:"secondsActive"`
}

// SessionStats is the arguments object of a session-stats response.
type SessionStats struct {
	ActiveTorrentCount int64      `json:"activeTorrentCount"`
	PausedTorrentCount int64      `json:"pausedTorrentCount"`
	TorrentCount       int64      `json:"torrentCount"`
	DownloadSpeed      int64      `json:"downloadSpeed"`
	UploadSpeed        int64      `json:"uploadSpeed"`
	Current            StatsBlock `json:"current-stats"`
	Cumulative         StatsBlock `json:"cumulative-stats"`
}

// StatusName renders a torrent status code.
func StatusName(status int) string {
	switch status {
	case StatusStopped:
		return "Stopped"
	case StatusCheckWait:
		return "Check queued"
	case StatusChecking:
		return "Checking"
	case StatusDownloadWait:
		return "Download queued"
	case StatusDownloading:
		return "Downloading"
	case StatusSeedWait:
		return "Seed queued"
	case StatusSeeding:
		return "Seeding"
	default:
		return "Unknown"
	}
}
