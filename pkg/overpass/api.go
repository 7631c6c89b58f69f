package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// ErrUnexpectedStatus is returned for any non-200 interpreter response.
var ErrUnexpectedStatus = errors.New("unexpected overpass status")

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

func NewClient(baseURL, userAgent string, logger *zap.Logger) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Interpret posts an Overpass QL query and decodes the JSON response. Any
// transport error, non-200 status or undecodable body is returned as an error.
func (c *Client) Interpret(ctx context.Context, query string) (*Response, error) {
	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("Querying overpass", zap.String("url", c.baseURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(body)))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}
	if out.Elements == nil {
		return nil, fmt.Errorf("decode overpass response: missing elements")
	}

	c.logger.Info("Fetched overpass elements",
		zap.Int("count", len(out.Elements)),
		zap.String("timestamp_osm_base", out.OSM3S.TimestampOSMBase))
	return &out, nil
}

// BicycleParking fetches every bicycle parking element in the area.
func (c *Client) BicycleParking(ctx context.Context, areaID int64) (*Response, error) {
	return c.Interpret(ctx, BicycleParkingQuery(areaID))
}
