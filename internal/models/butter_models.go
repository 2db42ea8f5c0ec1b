package models

// The types below form the output schema consumed by the media-browsing
// host. Field names and nesting are a compatibility contract and must not
// change.

// NormalizedEvent is a RawEvent with derived day and timestamp fields.
// Season is assigned later, during detail expansion.
type NormalizedEvent struct {
	RawEvent
	Day        string `json:"day"`         // YYYY-MM-DD season grouping key
	FirstAired int64  `json:"first_aired"` // unix seconds, 0 when no date
	Season     int    `json:"season,omitempty"`
}

// TorrentEntry is one downloadable variant of an episode, keyed by quality.
// Peers and seeds are always zero, no liveness data exists upstream.
type TorrentEntry struct {
	Size  int64  `json:"size"`
	URL   string `json:"url"`
	Peers int    `json:"peers"`
	Seeds int    `json:"seeds"`
}

// Rating is the zeroed rating block expected by the host.
type Rating struct {
	Hated      int `json:"hated"`
	Loved      int `json:"loved"`
	Votes      int `json:"votes"`
	Percentage int `json:"percentage"`
	Watching   int `json:"watching"`
}

// Watched is the per-episode watched state expected by the host.
type Watched struct {
	Watched bool `json:"watched"`
}

// ShowSummary aggregates one conference into a show listing entry.
// RawEvents are retained for later detail expansion and dropped once
// consumed.
type ShowSummary struct {
	Type        string            `json:"type"`
	ID          string            `json:"_id"`
	ImdbID      string            `json:"imdb_id"`
	TvdbID      string            `json:"tvdb_id"`
	Title       string            `json:"title"`
	Genres      []string          `json:"genres"`
	Year        int               `json:"year"`
	Poster      string            `json:"poster"`
	Backdrop    string            `json:"backdrop"`
	Slug        string            `json:"slug"`
	Rating      Rating            `json:"rating"`
	NumSeasons  int               `json:"num_seasons"`
	Days        []string          `json:"days"` // sorted distinct day strings, the season axis
	RawEvents   []NormalizedEvent `json:"raw_events,omitempty"`
	LastUpdated int64             `json:"last_updated"`
}

// Episode is the final per-event record of a detailed show.
type Episode struct {
	Torrents   map[string]TorrentEntry `json:"torrents"`
	Watched    Watched                 `json:"watched"`
	DateBased  bool                    `json:"date_based"`
	FirstAired int64                   `json:"first_aired"`
	Overview   string                  `json:"overview"`
	Synopsis   string                  `json:"synopsis"`
	Title      string                  `json:"title"`
	Episode    int                     `json:"episode"` // 0-based within its day
	Season     int                     `json:"season"`  // 1-based day index
	TvdbID     string                  `json:"tvdb_id"` // event slug, repurposed field
}

// DetailedShow is a ShowSummary merged with the expanded episode list.
type DetailedShow struct {
	ShowSummary
	Synopsis string    `json:"synopsis"`
	Country  string    `json:"country"`
	Network  string    `json:"network"`
	Status   string    `json:"status"`
	Runtime  int       `json:"runtime"`
	V        int       `json:"__v"`
	Episodes []Episode `json:"episodes"`
}

// ResultPage is the response unit of a catalog fetch.
type ResultPage struct {
	Results []*ShowSummary `json:"results"`
	HasMore bool           `json:"hasMore"`
}
