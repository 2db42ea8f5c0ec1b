// Package ccc implements the media.ccc.de public API client.
package ccc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amaumene/gostremioccc/internal/constants"
	"github.com/amaumene/gostremioccc/internal/models"
	"github.com/amaumene/gostremioccc/pkg/httputil"
	"github.com/amaumene/gostremioccc/pkg/logger"
	"github.com/amaumene/gostremioccc/pkg/ratelimiter"
)

// HTTPClient talks to the public catalog API. It implements the
// catalog.Client collaborator interface.
type HTTPClient struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *ratelimiter.TokenBucket
	logger      logger.Logger
}

// NewHTTPClient creates a client for the catalog API at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  httputil.NewHTTPClient(timeout),
		rateLimiter: ratelimiter.NewTokenBucket(constants.CCCRateBurst, constants.CCCRateLimit),
		logger:      logger.New(),
	}
}

// ListConferences queries the conference listing with the given parameters.
func (c *HTTPClient) ListConferences(ctx context.Context, query models.ConferenceQuery) ([]models.Conference, error) {
	params := url.Values{}
	params.Set("sort", query.Sort)
	params.Set("limit", query.Limit)
	if query.Keywords != "" {
		params.Set("keywords", query.Keywords)
	}
	if query.Genre != "" {
		params.Set("genre", query.Genre)
	}
	if query.Order != "" {
		params.Set("order", query.Order)
	}

	requestURL := c.baseURL + constants.ConferencesEndpoint + "?" + params.Encode()
	c.logger.Debugf("[CCC] listing conferences - URL: %s", requestURL)

	var response models.ConferencesResponse
	if err := c.getJSON(ctx, requestURL, &response); err != nil {
		return nil, fmt.Errorf("failed to list conferences: %w", err)
	}

	c.logger.Infof("[CCC] conference listing returned %d conferences", len(response.Conferences))

	return response.Conferences, nil
}

// FetchConference fetches a conference detail document by its absolute URL.
func (c *HTTPClient) FetchConference(ctx context.Context, confURL string) (*models.ConferenceDetail, error) {
	var detail models.ConferenceDetail
	if err := c.getJSON(ctx, confURL, &detail); err != nil {
		return nil, fmt.Errorf("failed to fetch conference: %w", err)
	}

	return &detail, nil
}

// FetchEvent fetches an event detail document, including its recordings,
// by event GUID.
func (c *HTTPClient) FetchEvent(ctx context.Context, guid string) (*models.EventDetail, error) {
	requestURL := c.baseURL + constants.EventsEndpoint + "/" + guid

	var detail models.EventDetail
	if err := c.getJSON(ctx, requestURL, &detail); err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", guid, err)
	}

	return &detail, nil
}

// getJSON performs a rate-limited GET request and decodes the JSON response.
func (c *HTTPClient) getJSON(ctx context.Context, requestURL string, out interface{}) error {
	c.rateLimiter.Wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
