// Package panoramax looks up picture metadata on a Panoramax instance so
// features can embed a thumbnail with proper attribution.
package panoramax

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

var (
	// ErrUnexpectedStatus is returned for any non-200 search response.
	ErrUnexpectedStatus = errors.New("unexpected panoramax status")
	// ErrNoMatch is returned when the search succeeds but finds no picture.
	ErrNoMatch = errors.New("no panoramax picture found")
	// ErrMalformed is returned when the match has no thumbnail asset.
	ErrMalformed = errors.New("malformed panoramax picture")
)

type Client struct {
	httpClient *http.Client
	searchURL  string
	userAgent  string
	logger     *zap.Logger
}

func NewClient(searchURL, userAgent string, logger *zap.Logger) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		searchURL:  searchURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Lookup fetches the single best match for a picture id. It makes exactly one
// request and never retries.
func (c *Client) Lookup(ctx context.Context, id string) (*Image, error) {
	if id == "" {
		return nil, fmt.Errorf("empty picture id: %w", ErrNoMatch)
	}

	params := url.Values{}
	params.Set("limit", "1")
	params.Set("ids", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", c.searchURL, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("build panoramax request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("panoramax request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var search SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("decode panoramax response: %w", err)
	}
	if len(search.Features) < 1 {
		return nil, ErrNoMatch
	}

	feature := search.Features[0]
	if feature.Assets.Thumb.Href == "" {
		return nil, fmt.Errorf("%w: %s has no thumbnail", ErrMalformed, id)
	}

	attributions := make([]string, 0, len(feature.Providers))
	for i := len(feature.Providers) - 1; i >= 0; i-- {
		attributions = append(attributions, feature.Providers[i].Name)
	}

	c.logger.Debug("Resolved panoramax picture", zap.String("id", id), zap.String("license", feature.Properties.License))
	return &Image{
		ThumbnailHref: feature.Assets.Thumb.Href,
		License:       feature.Properties.License,
		Attributions:  attributions,
	}, nil
}
