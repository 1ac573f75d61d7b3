// Package geocode is a thin client for the Photon geocoding API, used
// only to back the address autocomplete in the form UI. Suggestions
// are never validation truth.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public Photon instance.
const DefaultBaseURL = "https://photon.komoot.io"

// Suggestion is one place returned for a free-text fragment.
type Suggestion struct {
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Client queries a Photon endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client. An empty baseURL selects the
// public Photon instance.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// photonResponse mirrors the GeoJSON subset we read.
type photonResponse struct {
	Features []struct {
		Properties struct {
			Name    string `json:"name"`
			City    string `json:"city"`
			Country string `json:"country"`
		} `json:"properties"`
	} `json:"features"`
}

// Search returns up to limit place suggestions for a free-text query.
func (c *Client) Search(ctx context.Context, query, lang string, limit int) ([]Suggestion, error) {
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{}
	params.Set("q", query)
	if lang != "" {
		params.Set("lang", lang)
	}
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building geocode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying geocode service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode service returned status %d", resp.StatusCode)
	}

	var decoded photonResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding geocode response: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(decoded.Features))
	for _, feature := range decoded.Features {
		p := feature.Properties
		if p.Name == "" && p.City == "" && p.Country == "" {
			continue
		}
		suggestions = append(suggestions, Suggestion{Name: p.Name, City: p.City, Country: p.Country})
	}
	return suggestions, nil
}
