package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/gostremioccc/internal/models"
)

func TestSelectTorrentsFirstMatchingFormatWins(t *testing.T) {
	recordings := []models.Recording{
		{MimeType: "video/mp4", Height: 1080, Size: 700, RecordingURL: "http://cdn/talk-hd.mp4"},
		{MimeType: "video/webm", Height: 720, Size: 500, RecordingURL: "http://cdn/talk.webm"},
		{MimeType: "video/mp4", Height: 480, Size: 300, RecordingURL: "http://cdn/talk-sd.mp4"},
	}

	torrents := SelectTorrents(recordings, []string{"video/webm", "video/mp4"})

	// Only the webm recording populates the result, mp4 is never mixed in.
	require.Len(t, torrents, 1)
	entry, ok := torrents["720p"]
	require.True(t, ok)
	assert.Equal(t, int64(500_000_000), entry.Size)
	assert.Equal(t, "http://cdn/talk.webm.torrent", entry.URL)
	assert.Equal(t, 0, entry.Peers)
	assert.Equal(t, 0, entry.Seeds)
}

func TestSelectTorrentsFallsBackToLaterFormat(t *testing.T) {
	recordings := []models.Recording{
		{MimeType: "video/mp4", Height: 1080, Size: 700, RecordingURL: "http://cdn/talk-hd.mp4"},
		{MimeType: "video/mp4", Height: 480, Size: 300, RecordingURL: "http://cdn/talk-sd.mp4"},
	}

	torrents := SelectTorrents(recordings, []string{"video/webm", "video/mp4"})

	require.Len(t, torrents, 2)
	assert.Equal(t, "http://cdn/talk-hd.mp4.torrent", torrents["1080p"].URL)
	assert.Equal(t, "http://cdn/talk-sd.mp4.torrent", torrents["480p"].URL)
}

func TestSelectTorrentsNoFormatMatches(t *testing.T) {
	recordings := []models.Recording{
		{MimeType: "video/mp4", Height: 1080, Size: 700, RecordingURL: "http://cdn/talk.mp4"},
	}

	torrents := SelectTorrents(recordings, []string{"video/ogg"})

	assert.Empty(t, torrents)
}

func TestSelectTorrentsQualityCollisionLastWins(t *testing.T) {
	recordings := []models.Recording{
		{MimeType: "video/webm", Height: 1080, Size: 700, RecordingURL: "http://cdn/first.webm"},
		{MimeType: "video/webm", Height: 1070, Size: 690, RecordingURL: "http://cdn/second.webm"},
	}

	torrents := SelectTorrents(recordings, []string{"video/webm"})

	require.Len(t, torrents, 1)
	assert.Equal(t, "http://cdn/second.webm.torrent", torrents["1080p"].URL)
}
