package models

// Conference is one entry of the upstream conference listing.
type Conference struct {
	Acronym   string `json:"acronym"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updated_at"`
	LogoURL   string `json:"logo_url"`
	URL       string `json:"url"` // detail document URL, last segment is the show id
}

// ConferencesResponse is the upstream response for the conference listing.
// A missing conferences key decodes to nil, an empty list to a non-nil
// empty slice. Callers rely on that distinction.
type ConferencesResponse struct {
	Conferences []Conference `json:"conferences"`
}

// ConferenceDetail is the per-conference detail document with its events.
type ConferenceDetail struct {
	Conference
	Events []RawEvent `json:"events"`
}

// RawEvent is an event record as received from upstream. Immutable.
type RawEvent struct {
	GUID             string `json:"guid"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	Description      string `json:"description"`
	OriginalLanguage string `json:"original_language"`
	Date             string `json:"date"`         // ISO timestamp, may be empty
	ReleaseDate      string `json:"release_date"` // date-only fallback
}

// EventDetail is the per-event detail document with its recordings.
type EventDetail struct {
	RawEvent
	Recordings []Recording `json:"recordings"`
}

// Recording is one encoded media variant of an event.
type Recording struct {
	MimeType     string `json:"mime_type"`
	Height       int    `json:"height"` // pixels
	Size         int64  `json:"size"`   // upstream unit, scaled to bytes in output
	RecordingURL string `json:"recording_url"`
}

// ConferenceQuery holds the parameters sent with a conference listing request.
type ConferenceQuery struct {
	Sort     string
	Limit    string
	Keywords string
	Genre    string
	Order    string
}
