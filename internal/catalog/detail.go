package catalog

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/amaumene/gostremioccc/internal/errors"
	"github.com/amaumene/gostremioccc/internal/models"
)

// episodeTask pins one event to its season and episode slot before any
// detail fetch is dispatched, so fetch latency can never reorder episodes.
type episodeTask struct {
	event   models.NormalizedEvent
	season  int // 1-based day index
	episode int // 0-based index within the day
}

// ExpandEpisodes fetches the recordings for every retained event of a show
// and assembles the flat episode list, in day order and within-day
// chronological order. Fetches run concurrently; results are placed by the
// pre-computed index. A single failed fetch aborts the whole expansion.
func ExpandEpisodes(ctx context.Context, client Client, formats []string, show *models.ShowSummary) ([]models.Episode, error) {
	tasks := planEpisodes(show)

	episodes := make([]models.Episode, len(tasks))
	g, gctx := errgroup.WithContext(ctx)

	for i, task := range tasks {
		g.Go(func() error {
			detail, err := client.FetchEvent(gctx, task.event.GUID)
			if err != nil {
				return errors.NewUpstreamFetchError(
					fmt.Sprintf("event %s detail fetch failed", task.event.GUID), err)
			}

			episodes[i] = buildEpisode(task, SelectTorrents(detail.Recordings, formats))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return episodes, nil
}

// planEpisodes groups the retained events by day, orders each day
// chronologically, and assigns the season and episode indices. The day
// order was fixed when the summary was built.
func planEpisodes(show *models.ShowSummary) []episodeTask {
	var tasks []episodeTask

	for dayIdx, day := range show.Days {
		var dayEvents []models.NormalizedEvent
		for _, event := range show.RawEvents {
			if event.Day == day {
				dayEvents = append(dayEvents, event)
			}
		}

		// Stable sort: equal timestamps keep their original relative order.
		sort.SliceStable(dayEvents, func(i, j int) bool {
			return dayEvents[i].FirstAired < dayEvents[j].FirstAired
		})

		for i, event := range dayEvents {
			event.Season = dayIdx + 1
			tasks = append(tasks, episodeTask{
				event:   event,
				season:  dayIdx + 1,
				episode: i,
			})
		}
	}

	return tasks
}

// buildEpisode assembles the final episode record from a planned task and
// its selected torrent map.
func buildEpisode(task episodeTask, torrents map[string]models.TorrentEntry) models.Episode {
	return models.Episode{
		Torrents:   torrents,
		Watched:    models.Watched{Watched: false},
		DateBased:  false,
		FirstAired: task.event.FirstAired,
		Overview:   task.event.Description,
		Synopsis:   task.event.Description,
		Title:      task.event.Title,
		Episode:    task.episode,
		Season:     task.season,
		TvdbID:     task.event.Slug,
	}
}
