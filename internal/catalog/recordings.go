package catalog

import (
	"github.com/amaumene/gostremioccc/internal/constants"
	"github.com/amaumene/gostremioccc/internal/models"
)

// SelectTorrents buckets an event's recordings by quality, using only the
// first preferred format that matches any recording. Formats are never
// mixed: recordings of later formats are ignored once a format matches.
// When two recordings land in the same quality bucket the later one wins.
// No matching format yields an empty map, not an error.
func SelectTorrents(recordings []models.Recording, formats []string) map[string]models.TorrentEntry {
	selected := selectByFormat(recordings, formats)

	torrents := make(map[string]models.TorrentEntry, len(selected))
	for _, recording := range selected {
		quality := NearestQuality(recording.Height, constants.QualityLadder)
		torrents[quality] = models.TorrentEntry{
			Size:  recording.Size * constants.TorrentSizeMultiplier,
			URL:   recording.RecordingURL + constants.TorrentExtension,
			Peers: 0,
			Seeds: 0,
		}
	}

	return torrents
}

// selectByFormat returns the recordings matching the first format in
// preference order that matches at least one recording.
func selectByFormat(recordings []models.Recording, formats []string) []models.Recording {
	for _, format := range formats {
		var matched []models.Recording
		for _, recording := range recordings {
			if recording.MimeType == format {
				matched = append(matched, recording)
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}

	return nil
}
