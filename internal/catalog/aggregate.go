package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/amaumene/gostremioccc/internal/constants"
	"github.com/amaumene/gostremioccc/internal/models"
)

// BuildShowSummary aggregates one conference and its normalized events into
// a show summary. The distinct days become the season axis, sorted
// ascending (ISO dates sort correctly as strings). Returns nil when no
// events survived filtering, such conferences are dropped from results.
func BuildShowSummary(conf models.Conference, events []models.NormalizedEvent, days []string) *models.ShowSummary {
	if len(events) == 0 {
		return nil
	}

	sortedDays := sortedDistinct(days)
	id := showID(conf.URL)
	year, updated := parseUpdatedAt(conf.UpdatedAt)

	return &models.ShowSummary{
		Type:        constants.ItemTypeShow,
		ID:          id,
		ImdbID:      "ccc" + id,
		TvdbID:      "ccc-" + conf.Acronym,
		Title:       conf.Title,
		Genres:      append([]string{}, constants.DefaultGenres...),
		Year:        year,
		Poster:      conf.LogoURL,
		Backdrop:    conf.LogoURL,
		Slug:        conf.Slug,
		Rating:      models.Rating{},
		NumSeasons:  len(sortedDays),
		Days:        sortedDays,
		RawEvents:   events,
		LastUpdated: updated,
	}
}

// sortedDistinct returns the day list sorted ascending with duplicates
// removed. This ordering is fixed here and reused during detail expansion.
func sortedDistinct(days []string) []string {
	sorted := append([]string{}, days...)
	sort.Strings(sorted)

	result := sorted[:0]
	for i, day := range sorted {
		if i == 0 || day != sorted[i-1] {
			result = append(result, day)
		}
	}

	return result
}

// showID derives the stable show id from the final path segment of the
// conference detail URL.
func showID(confURL string) string {
	parts := strings.Split(confURL, "/")
	return parts[len(parts)-1]
}

// parseUpdatedAt extracts the calendar year and unix timestamp from the
// conference's updated_at field. Unparseable values yield zeros.
func parseUpdatedAt(updatedAt string) (int, int64) {
	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return 0, 0
	}
	return t.Year(), t.Unix()
}
