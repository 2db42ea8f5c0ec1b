// Package constants defines application-wide constants and default values.
package constants

// Upstream catalog API configuration
const (
	// DefaultBaseURL is the public media.ccc.de API endpoint.
	DefaultBaseURL = "https://media.ccc.de/public"

	// ConferencesEndpoint lists all conferences.
	ConferencesEndpoint = "/conferences"

	// EventsEndpoint serves per-event detail including recordings.
	EventsEndpoint = "/events"

	// ConferencePageSize is the page size sent with every conference query.
	ConferencePageSize = "50"

	// DefaultSort is the sort order sent unless a sorter filter overrides it.
	DefaultSort = "seeds"

	// SortPopularity is the sorter sentinel that keeps the default sort.
	SortPopularity = "popularity"
)

// Upstream rate limiting
const (
	CCCRateLimit = 10 // requests per second
	CCCRateBurst = 20 // bucket capacity
)

// Output schema constants
const (
	// NetworkName is the network reported for every detailed show.
	NetworkName = "CCC Media"

	// ShowStatus is the status reported for every detailed show. Conference
	// recordings are only published after the event, so shows are always
	// finished.
	ShowStatus = "finished"

	// EpisodeRuntime is the nominal talk runtime in minutes.
	EpisodeRuntime = 30

	// ItemTypeShow is the catalog item type for conferences.
	ItemTypeShow = "tvshow"

	// TorrentExtension is appended to recording URLs to form torrent URLs.
	TorrentExtension = ".torrent"

	// TorrentSizeMultiplier converts the upstream recording size to bytes.
	TorrentSizeMultiplier = 1_000_000
)

// QualityLevel is one rung of the output quality ladder.
type QualityLevel struct {
	Label  string
	Height int // pixel height the label represents
}

// QualityLadder is the fixed quality ladder recordings are bucketed into.
// Order matters: nearest-match ties resolve to the earlier entry.
var QualityLadder = []QualityLevel{
	{Label: "480p", Height: 480},
	{Label: "720p", Height: 720},
	{Label: "1080p", Height: 1080},
}

// Configuration defaults
const (
	DefaultTimeoutSeconds = 40
	DefaultLimit          = 10
	DefaultCacheSize      = 1000
	DefaultCacheTTLHours  = 24
)

// DefaultFormats is the ordered mime-type preference for recordings.
var DefaultFormats = []string{"video/webm", "video/mp4"}

// DefaultGenres is the genre list attached to every show summary.
var DefaultGenres = []string{"Event", "Conference"}
