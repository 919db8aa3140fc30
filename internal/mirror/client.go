// Package mirror loads a catalog from another atlas server's public API so a
// replica can serve the same dataset without its own database.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/neexbeast/travel-atlas/internal/travel"
)

const httpTimeout = 10 * time.Second

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// doGet performs a GET request and decodes the JSON response into dst.
func doGet(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", rawURL, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}

	return nil
}

// Client reads destinations and journeys from an upstream atlas server.
// It satisfies travel.Source.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ travel.Source = (*Client)(nil)

// NewClient constructs a Client for the server at baseURL, e.g.
// "https://atlas.example.com".
func NewClient(baseURL string) *Client {
	return NewClientWithHTTP(baseURL, newHTTPClient())
}

// NewClientWithHTTP constructs a Client with a custom http.Client (for tests).
func NewClientWithHTTP(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

// visibleResponse is the upstream body of GET /api/v1/destinations.
type visibleResponse struct {
	Destinations []travel.Destination `json:"destinations"`
}

// ListDestinations fetches the unfiltered visible set, which is every
// destination in upstream source order. Records are validated while
// decoding, so an unknown category fails the load.
func (c *Client) ListDestinations(ctx context.Context) ([]travel.Destination, error) {
	var body visibleResponse
	if err := doGet(ctx, c.http, c.baseURL+"/api/v1/destinations", &body); err != nil {
		return nil, fmt.Errorf("mirror destinations: %w", err)
	}

	slog.Debug("mirror destinations fetched", "count", len(body.Destinations), "upstream", c.baseURL)
	return body.Destinations, nil
}

// ListJourneys fetches the upstream journeys. The resolved stops, route
// and bounds in the response are dropped and recomputed locally.
func (c *Client) ListJourneys(ctx context.Context) ([]travel.Journey, error) {
	var journeys []travel.Journey
	if err := doGet(ctx, c.http, c.baseURL+"/api/v1/journeys", &journeys); err != nil {
		return nil, fmt.Errorf("mirror journeys: %w", err)
	}

	slog.Debug("mirror journeys fetched", "count", len(journeys), "upstream", c.baseURL)
	return journeys, nil
}
