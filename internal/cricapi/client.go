// Package cricapi is the client for the Cricbuzz RapidAPI endpoints the
// dashboard reads from.
//
// The contract with callers is blunt: any transport failure
// or non-2xx status degrades to an empty document. Callers treat "no
// data" and "fetch failed" identically, so no method returns an error.
package cricapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

type Config struct {
	BaseURL           string
	APIKey            string
	Host              string
	RequestsPerMinute int
	Timeout           time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	host       string
	limiter    *rate.Limiter
}

// NewClient builds a rate-limited client. Credentials and base URL are
// injected here, never read from ambient state.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		host:       cfg.Host,
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}
}

// LiveMatches fetches the current live-match feed. Empty feed on any
// failure.
func (c *Client) LiveMatches(ctx context.Context) models.MatchFeed {
	var feed models.MatchFeed
	if err := c.get(ctx, "/matches/v1/live", nil, &feed); err != nil {
		log.Printf("[cricapi] live matches: %v", err)
		return models.MatchFeed{}
	}
	return feed
}

// StatsCatalog fetches the available stat categories and types.
func (c *Client) StatsCatalog(ctx context.Context) models.StatsCatalog {
	var catalog models.StatsCatalog
	if err := c.get(ctx, "/stats/v1/topstats", nil, &catalog); err != nil {
		log.Printf("[cricapi] stats catalog: %v", err)
		return models.StatsCatalog{}
	}
	return catalog
}

// TopStats fetches one leaderboard block for a stat type. formatType may
// be empty.
func (c *Client) TopStats(ctx context.Context, statsType, formatType string) models.StatBlock {
	params := url.Values{}
	params.Set("statsType", statsType)
	if formatType != "" {
		params.Set("formatType", formatType)
	}

	var block models.StatBlock
	if err := c.get(ctx, "/stats/v1/topstats/0", params, &block); err != nil {
		log.Printf("[cricapi] top stats %s: %v", statsType, err)
		return models.StatBlock{}
	}
	return block
}

// AllVenues fetches the venue catalog.
func (c *Client) AllVenues(ctx context.Context) []models.VenueEntry {
	var list models.VenueList
	if err := c.get(ctx, "/venues/v1/all", nil, &list); err != nil {
		log.Printf("[cricapi] all venues: %v", err)
		return nil
	}
	return list.VenueList
}

// VenueInfo fetches details for a single venue.
func (c *Client) VenueInfo(ctx context.Context, venueID int64) models.VenueEntry {
	var venue models.VenueEntry
	if err := c.get(ctx, fmt.Sprintf("/venues/v1/%d", venueID), nil, &venue); err != nil {
		log.Printf("[cricapi] venue %d: %v", venueID, err)
		return models.VenueEntry{}
	}
	return venue
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
