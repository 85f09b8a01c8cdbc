package odin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

const defaultRateURL = "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd"

// RateClient fetches and caches the BTC/USD exchange rate used for display
// conversion. The cached rate is stale-tolerant: consumers fall back to
// "unavailable" display when no rate has been fetched yet.
type RateClient struct {
	httpClient *http.Client
	rateURL    string

	mu       sync.RWMutex
	satToUSD float64
	known    bool
}

// NewRateClient creates a RateClient against the public coingecko endpoint.
func NewRateClient() *RateClient {
	return &RateClient{
		httpClient: &http.Client{},
		rateURL:    defaultRateURL,
	}
}

// NewRateClientWithURL creates a RateClient against a custom endpoint.
// Used by tests to point at a local server.
func NewRateClientWithURL(rateURL string) *RateClient {
	return &RateClient{
		httpClient: &http.Client{},
		rateURL:    rateURL,
	}
}

// Refresh fetches the current BTC/USD rate and updates the cached
// sat-to-USD conversion factor. On failure the previous value is kept.
func (c *RateClient) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rateURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rate request failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var response rateResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return fmt.Errorf("failed to decode rate response: %w", err)
	}

	if response.Bitcoin.USD <= 0 {
		return fmt.Errorf("rate response contained no usable price")
	}

	c.mu.Lock()
	c.satToUSD = response.Bitcoin.USD / SatsPerBTC
	c.known = true
	c.mu.Unlock()

	return nil
}

// SatToUSD returns the cached sat-to-USD conversion factor. The second return
// value is false until the first successful Refresh.
func (c *RateClient) SatToUSD() (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.satToUSD, c.known
}
