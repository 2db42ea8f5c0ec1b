// Package catalog implements the normalization pipeline that reshapes the
// upstream conference catalog into the fixed show/seasons/episodes schema
// consumed by the media-browsing host.
package catalog

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/amaumene/gostremioccc/internal/config"
	"github.com/amaumene/gostremioccc/internal/constants"
	"github.com/amaumene/gostremioccc/internal/errors"
	"github.com/amaumene/gostremioccc/internal/models"
	"github.com/amaumene/gostremioccc/pkg/logger"
)

// Client is the upstream catalog collaborator. The pipeline assumes a
// reliable request/response implementation; retries and transport concerns
// live behind this boundary.
type Client interface {
	ListConferences(ctx context.Context, query models.ConferenceQuery) ([]models.Conference, error)
	FetchConference(ctx context.Context, url string) (*models.ConferenceDetail, error)
	FetchEvent(ctx context.Context, guid string) (*models.EventDetail, error)
}

// Filters narrows a catalog fetch.
type Filters struct {
	Keywords string
	Genres   []string
	Order    string
	Sorter   string
}

// Provider implements the two catalog operations, Fetch and Detail.
type Provider struct {
	client Client
	config *config.Config
	logger logger.Logger
}

// NewProvider creates a Provider backed by the given upstream client.
func NewProvider(client Client, cfg *config.Config) *Provider {
	return &Provider{
		client: client,
		config: cfg,
		logger: logger.New(),
	}
}

var whitespacePattern = regexp.MustCompile(`\s`)

// buildConferenceQuery translates catalog filters into the upstream query.
// Whitespace in keywords is escaped as the literal token "% ", only the
// first requested genre is kept, and the sorter overrides the default sort
// unless it is the "popularity" sentinel.
func buildConferenceQuery(filters Filters) models.ConferenceQuery {
	query := models.ConferenceQuery{
		Sort:  constants.DefaultSort,
		Limit: constants.ConferencePageSize,
		Order: filters.Order,
	}

	if filters.Keywords != "" {
		query.Keywords = whitespacePattern.ReplaceAllString(filters.Keywords, "% ")
	}

	if len(filters.Genres) > 0 {
		query.Genre = filters.Genres[0]
	}

	if filters.Sorter != "" && filters.Sorter != constants.SortPopularity {
		query.Sort = filters.Sorter
	}

	return query
}

// Fetch queries the conference list and builds one show summary per
// conference. Per-conference detail fetches run concurrently; the result
// order follows the upstream conference order, not completion order.
// An absent upstream list is a NO_DATA error; a present-but-empty list,
// like zero summaries after language filtering, is a valid empty result.
func (p *Provider) Fetch(ctx context.Context, filters Filters) (*models.ResultPage, error) {
	query := buildConferenceQuery(filters)
	p.logger.Debugf("[Provider] listing conferences - sort: %s, keywords: %q", query.Sort, query.Keywords)

	conferences, err := p.client.ListConferences(ctx, query)
	if err != nil {
		return nil, errors.NewUpstreamFetchError("conference list query failed", err)
	}

	if conferences == nil {
		return nil, errors.NewNoDataError()
	}

	if limit := p.config.Limit; limit > 0 && len(conferences) > limit {
		conferences = conferences[:limit]
	}

	// Fan out one detail fetch per conference, joined by index so the
	// upstream order survives.
	summaries := make([]*models.ShowSummary, len(conferences))
	g, gctx := errgroup.WithContext(ctx)

	for i, conf := range conferences {
		g.Go(func() error {
			summary, err := p.buildSummary(gctx, conf)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]*models.ShowSummary, 0, len(summaries))
	for _, summary := range summaries {
		if summary != nil {
			results = append(results, summary)
		}
	}

	p.logger.Infof("[Provider] processed %d conferences, %d shows after filtering", len(conferences), len(results))

	return &models.ResultPage{Results: results, HasMore: true}, nil
}

// buildSummary fetches one conference's detail document, normalizes its
// events, and aggregates the summary. Returns nil without error when no
// events survive filtering.
func (p *Provider) buildSummary(ctx context.Context, conf models.Conference) (*models.ShowSummary, error) {
	detail, err := p.client.FetchConference(ctx, conf.URL)
	if err != nil {
		return nil, errors.NewUpstreamFetchError(
			fmt.Sprintf("conference %s detail fetch failed", conf.Acronym), err)
	}

	events, days := NormalizeEvents(detail.Events, p.config.Langs)
	return BuildShowSummary(conf, events, days), nil
}

// Detail expands a previously fetched summary into a detailed show. The
// summary's retained events are consumed by the expansion and dropped from
// the merged result.
func (p *Provider) Detail(ctx context.Context, id string, summary *models.ShowSummary) (*models.DetailedShow, error) {
	episodes, err := ExpandEpisodes(ctx, p.client, p.config.Formats, summary)
	if err != nil {
		p.logger.Errorf("[Provider] failed to expand show %s: %v", id, err)
		return nil, err
	}

	detailed := &models.DetailedShow{
		ShowSummary: *summary,
		Synopsis:    summary.Title,
		Country:     "",
		Network:     constants.NetworkName,
		Status:      constants.ShowStatus,
		Runtime:     constants.EpisodeRuntime,
		Episodes:    episodes,
	}
	detailed.RawEvents = nil

	p.logger.Infof("[Provider] expanded show %s into %d episodes over %d seasons", id, len(episodes), summary.NumSeasons)

	return detailed, nil
}
