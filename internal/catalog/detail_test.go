package catalog

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/gostremioccc/internal/models"
)

// fakeClient implements Client for tests.
type fakeClient struct {
	mu          sync.Mutex
	conferences []models.Conference
	details     map[string]*models.ConferenceDetail
	events      map[string]*models.EventDetail

	listErr  error
	eventErr map[string]error

	lastQuery models.ConferenceQuery
}

func (f *fakeClient) ListConferences(ctx context.Context, query models.ConferenceQuery) ([]models.Conference, error) {
	f.mu.Lock()
	f.lastQuery = query
	f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.conferences, nil
}

func (f *fakeClient) FetchConference(ctx context.Context, url string) (*models.ConferenceDetail, error) {
	detail, ok := f.details[url]
	if !ok {
		return nil, fmt.Errorf("unknown conference %s", url)
	}
	return detail, nil
}

func (f *fakeClient) FetchEvent(ctx context.Context, guid string) (*models.EventDetail, error) {
	if err, ok := f.eventErr[guid]; ok {
		return nil, err
	}

	detail, ok := f.events[guid]
	if !ok {
		return nil, fmt.Errorf("unknown event %s", guid)
	}
	return detail, nil
}

func webmRecording(height int) []models.Recording {
	return []models.Recording{
		{MimeType: "video/webm", Height: height, Size: 100, RecordingURL: fmt.Sprintf("http://cdn/%d", height)},
	}
}

func expandableShow() *models.ShowSummary {
	return &models.ShowSummary{
		ID:   "123",
		Days: []string{"2019-05-01", "2019-05-02"},
		RawEvents: []models.NormalizedEvent{
			{RawEvent: models.RawEvent{GUID: "late", Title: "Late talk", Slug: "late-talk"}, Day: "2019-05-01", FirstAired: 100},
			{RawEvent: models.RawEvent{GUID: "early", Title: "Early talk", Slug: "early-talk"}, Day: "2019-05-01", FirstAired: 50},
			{RawEvent: models.RawEvent{GUID: "other", Title: "Other day", Slug: "other-day"}, Day: "2019-05-02", FirstAired: 10},
		},
		NumSeasons: 2,
	}
}

func TestExpandEpisodesOrdering(t *testing.T) {
	client := &fakeClient{
		events: map[string]*models.EventDetail{
			"late":  {Recordings: webmRecording(1080)},
			"early": {Recordings: webmRecording(720)},
			"other": {Recordings: webmRecording(480)},
		},
	}

	episodes, err := ExpandEpisodes(context.Background(), client, []string{"video/webm"}, expandableShow())
	require.NoError(t, err)
	require.Len(t, episodes, 3)

	// Day 1 chronological, then day 2; fetch completion order is irrelevant.
	assert.Equal(t, int64(50), episodes[0].FirstAired)
	assert.Equal(t, 1, episodes[0].Season)
	assert.Equal(t, 0, episodes[0].Episode)

	assert.Equal(t, int64(100), episodes[1].FirstAired)
	assert.Equal(t, 1, episodes[1].Season)
	assert.Equal(t, 1, episodes[1].Episode)

	assert.Equal(t, int64(10), episodes[2].FirstAired)
	assert.Equal(t, 2, episodes[2].Season)
	assert.Equal(t, 0, episodes[2].Episode)
}

func TestExpandEpisodesSeasonMatchesDayIndex(t *testing.T) {
	show := expandableShow()
	client := &fakeClient{
		events: map[string]*models.EventDetail{
			"late":  {Recordings: webmRecording(1080)},
			"early": {Recordings: webmRecording(720)},
			"other": {Recordings: webmRecording(480)},
		},
	}

	episodes, err := ExpandEpisodes(context.Background(), client, []string{"video/webm"}, show)
	require.NoError(t, err)

	byGUID := make(map[string]models.NormalizedEvent)
	for _, event := range show.RawEvents {
		byGUID[event.GUID] = event
	}

	guids := []string{"early", "late", "other"}
	for i, episode := range episodes {
		event := byGUID[guids[i]]
		expectedSeason := 0
		for idx, day := range show.Days {
			if day == event.Day {
				expectedSeason = idx + 1
			}
		}
		assert.Equal(t, expectedSeason, episode.Season)
	}
}

func TestExpandEpisodesFieldMapping(t *testing.T) {
	show := &models.ShowSummary{
		ID:   "123",
		Days: []string{"2019-05-01"},
		RawEvents: []models.NormalizedEvent{
			{
				RawEvent: models.RawEvent{
					GUID:        "talk",
					Title:       "A talk",
					Slug:        "a-talk",
					Description: "About things",
				},
				Day:        "2019-05-01",
				FirstAired: 42,
			},
		},
	}
	client := &fakeClient{
		events: map[string]*models.EventDetail{
			"talk": {Recordings: webmRecording(720)},
		},
	}

	episodes, err := ExpandEpisodes(context.Background(), client, []string{"video/webm"}, show)
	require.NoError(t, err)
	require.Len(t, episodes, 1)

	episode := episodes[0]
	assert.Equal(t, "A talk", episode.Title)
	assert.Equal(t, "About things", episode.Overview)
	assert.Equal(t, episode.Overview, episode.Synopsis)
	assert.Equal(t, "a-talk", episode.TvdbID)
	assert.False(t, episode.Watched.Watched)
	assert.False(t, episode.DateBased)
	assert.Contains(t, episode.Torrents, "720p")
}

func TestExpandEpisodesNoFormatMatch(t *testing.T) {
	show := expandableShow()
	client := &fakeClient{
		events: map[string]*models.EventDetail{
			"late":  {Recordings: webmRecording(1080)},
			"early": {Recordings: webmRecording(720)},
			"other": {Recordings: webmRecording(480)},
		},
	}

	episodes, err := ExpandEpisodes(context.Background(), client, []string{"video/ogg"}, show)
	require.NoError(t, err)

	// No matching format is not an error, torrent maps are just empty.
	for _, episode := range episodes {
		assert.Empty(t, episode.Torrents)
	}
}

func TestExpandEpisodesFetchFailureAborts(t *testing.T) {
	show := expandableShow()
	client := &fakeClient{
		events: map[string]*models.EventDetail{
			"late":  {Recordings: webmRecording(1080)},
			"other": {Recordings: webmRecording(480)},
		},
		eventErr: map[string]error{
			"early": fmt.Errorf("connection reset"),
		},
	}

	episodes, err := ExpandEpisodes(context.Background(), client, []string{"video/webm"}, show)

	require.Error(t, err)
	assert.Nil(t, episodes)
	assert.Contains(t, err.Error(), "early")
}
