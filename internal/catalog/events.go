package catalog

import (
	"strings"
	"time"

	"github.com/amaumene/gostremioccc/internal/models"
)

// NormalizeEvents derives the day grouping key and first-aired timestamp for
// each raw event and applies the optional language allow-list. An empty
// allow-list keeps every event. The returned day list holds the distinct
// day values of the surviving events, in first-seen order.
func NormalizeEvents(events []models.RawEvent, langs []string) ([]models.NormalizedEvent, []string) {
	var allowed map[string]bool
	if len(langs) > 0 {
		allowed = make(map[string]bool, len(langs))
		for _, lang := range langs {
			allowed[lang] = true
		}
	}

	normalized := make([]models.NormalizedEvent, 0, len(events))
	seen := make(map[string]bool)
	var days []string

	for _, event := range events {
		if allowed != nil && !allowed[event.OriginalLanguage] {
			continue
		}

		day := eventDay(event)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}

		normalized = append(normalized, models.NormalizedEvent{
			RawEvent:   event,
			Day:        day,
			FirstAired: firstAired(event),
		})
	}

	return normalized, days
}

// eventDay derives the calendar-day key for an event. The date is truncated
// to its date portion; events without a date fall back to the release date
// verbatim, matching upstream behavior even when that field is empty too.
func eventDay(event models.RawEvent) string {
	if event.Date != "" {
		return strings.SplitN(event.Date, "T", 2)[0]
	}
	return event.ReleaseDate
}

// firstAired returns the event timestamp in unix seconds, or 0 when the
// event carries no parseable date.
func firstAired(event models.RawEvent) int64 {
	if event.Date == "" {
		return 0
	}

	t, err := time.Parse(time.RFC3339, event.Date)
	if err != nil {
		return 0
	}
	return t.Unix()
}
