// Package imagery fetches before/after satellite imagery for an analysis
// window. Every provider failure degrades to a synthetic placeholder so the
// pipeline never stalls on a slow or broken imagery account; fallbacks are
// logged, not surfaced.
package imagery

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/minewatch-gh/minewatch-backend-go/internal/models"
	"github.com/minewatch-gh/minewatch-backend-go/internal/spatial"
)

// Provider returns PNG bytes for a bounding box and date. Implementations
// never return an error: recovery is internal.
type Provider interface {
	Fetch(ctx context.Context, bounds spatial.Bounds, date time.Time, analysisType models.AnalysisType) []byte
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Payloads below this size are treated as error pages, not imagery.
const minImageBytes = 1024

// HTTPProvider requests imagery from an external tile service.
type HTTPProvider struct {
	BaseURL string
	APIKey  string
	Width   int
	Height  int
	Client  *http.Client
}

// NewHTTPProvider builds a provider with a 30s request timeout.
func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Width:   512,
		Height:  512,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch requests one scene and validates the payload; any failure mode
// (missing credentials, transport error, non-200, bad PNG signature,
// undersized body) falls back to a deterministic synthetic scene.
func (p *HTTPProvider) Fetch(ctx context.Context, bounds spatial.Bounds, date time.Time, analysisType models.AnalysisType) []byte {
	data, err := p.fetch(ctx, bounds, date, analysisType)
	if err != nil {
		log.Printf("[Imagery] falling back to synthetic scene: %v", err)
		return Synthetic(p.Width, p.Height, SceneSeed(bounds, date, analysisType))
	}
	return data
}

func (p *HTTPProvider) fetch(ctx context.Context, bounds spatial.Bounds, date time.Time, analysisType models.AnalysisType) ([]byte, error) {
	if p.BaseURL == "" || p.APIKey == "" {
		return nil, &ProviderError{Reason: "imagery credentials not configured"}
	}

	url := fmt.Sprintf("%s/scene?bbox=%f,%f,%f,%f&date=%s&layer=%s&w=%d&h=%d",
		p.BaseURL,
		bounds.MinLng, bounds.MinLat, bounds.MaxLng, bounds.MaxLat,
		date.Format("2006-01-02"), analysisType, p.Width, p.Height)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ProviderError{Reason: "building request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, &ProviderError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{Reason: fmt.Sprintf("provider returned %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Reason: "reading body", Err: err}
	}
	if len(data) < minImageBytes {
		return nil, &ProviderError{Reason: fmt.Sprintf("payload too small (%d bytes)", len(data))}
	}
	if !hasPNGSignature(data) {
		return nil, &ProviderError{Reason: "payload is not a PNG"}
	}

	return data, nil
}

func hasPNGSignature(data []byte) bool {
	if len(data) < len(pngSignature) {
		return false
	}
	for i, b := range pngSignature {
		if data[i] != b {
			return false
		}
	}
	return true
}

// ProviderError describes a recoverable imagery failure. It never escapes
// the package through Fetch.
type ProviderError struct {
	Reason string
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("imagery provider: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("imagery provider: %s", e.Reason)
}

func (e *ProviderError) Unwrap() error { return e.Err }
