// Package geocode resolves coordinates to display names, best-effort. A
// failed lookup degrades to the DMS coordinate string; it never fails a run.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
)

// Geocoder queries a Nominatim-style reverse geocoding endpoint through an
// injected cache.
type Geocoder struct {
	BaseURL string
	Client  *http.Client
	Cache   *Cache
}

// NewGeocoder builds a geocoder with a 10s request timeout.
func NewGeocoder(baseURL string, cache *Cache) *Geocoder {
	return &Geocoder{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Cache:   cache,
	}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Village string `json:"village"`
		Town    string `json:"town"`
		City    string `json:"city"`
		County  string `json:"county"`
		State   string `json:"state"`
	} `json:"address"`
}

// ReverseGeocode returns a human-readable name for a coordinate pair,
// falling back to its DMS string when the lookup fails or no endpoint is
// configured.
func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lng float64) string {
	key := fmt.Sprintf("%.5f,%.5f", lat, lng)
	if g.Cache != nil {
		if name, ok := g.Cache.Get(key); ok {
			return name
		}
	}

	name, err := g.lookup(ctx, lat, lng)
	if err != nil {
		log.Printf("[Geocode] lookup failed for %s: %v", key, err)
		return spatial.ToDMS(lat, lng)
	}

	if g.Cache != nil {
		g.Cache.Put(key, name)
	}
	return name
}

func (g *Geocoder) lookup(ctx context.Context, lat, lng float64) (string, error) {
	if g.BaseURL == "" {
		return "", fmt.Errorf("no geocoding endpoint configured")
	}

	url := fmt.Sprintf("%s/reverse?lat=%f&lon=%f&format=jsonv2", g.BaseURL, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned %d", resp.StatusCode)
	}

	var payload nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	for _, candidate := range []string{
		payload.Address.Village, payload.Address.Town, payload.Address.City,
		payload.Address.County, payload.Address.State, payload.DisplayName,
	} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("empty geocoder response")
}
