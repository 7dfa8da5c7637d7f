// Package weather is the client for the current-conditions provider.
// Failures degrade to "no weather shown": Current returns nil instead of an
// error so a broken provider never blocks the calling flow.
package weather

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/avoronov/newshub/internal/logging"
)

// Report is the reduced weather view shown alongside the feed.
type Report struct {
	Temp        int    `json:"temp"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	City        string `json:"city"`
}

// providerPayload mirrors the fields we read from the provider response.
type providerPayload struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Name string `json:"name"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  logging.Logger
}

func NewClient(baseURL, apiKey string, logger logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// Current fetches conditions for cityName. Any failure yields nil.
func (c *Client) Current(ctx context.Context, cityName string) *Report {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		c.logger.Warn(ctx, "bad weather provider URL", "error", err)
		return nil
	}

	params := u.Query()
	params.Set("q", cityName)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		c.logger.Warn(ctx, "weather request build failed", "error", err)
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "weather request failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn(ctx, "weather provider returned non-OK status", "status", resp.StatusCode)
		return nil
	}

	var payload providerPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn(ctx, "weather response decode failed", "error", err)
		return nil
	}

	if len(payload.Weather) == 0 {
		c.logger.Warn(ctx, "weather response missing conditions")
		return nil
	}

	return &Report{
		Temp:        int(math.Round(payload.Main.Temp)),
		Description: payload.Weather[0].Description,
		Icon:        payload.Weather[0].Icon,
		City:        payload.Name,
	}
}
