package models

// Manifest describes the addon to the media-browsing host.
type Manifest struct {
	ID          string    `json:"id"`
	Version     string    `json:"version"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Types       []string  `json:"types"`
	Resources   []string  `json:"resources"`
	Catalogs    []Catalog `json:"catalogs"`
}

// Catalog describes one catalog offered by the addon.
type Catalog struct {
	Type  string       `json:"type"`
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Extra []ExtraField `json:"extra,omitempty"`
}

// ExtraField describes an optional catalog query parameter.
type ExtraField struct {
	Name       string `json:"name"`
	IsRequired bool   `json:"isRequired,omitempty"`
}
