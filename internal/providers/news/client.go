// Package news is the client for the newsdata-compatible feed provider.
// Provider failures never propagate: every failure path degrades to a fixed
// fallback article list so callers always have something to show.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avoronov/newshub/internal/articles"
	"github.com/avoronov/newshub/internal/logging"
)

// Response mirrors the provider's search payload.
type Response struct {
	Status       string             `json:"status"`
	TotalResults int                `json:"totalResults"`
	Results      []articles.Article `json:"results"`
	NextPage     string             `json:"nextPage,omitempty"`
}

// Headline is the reduced article form used by the breaking-news ticker.
type Headline struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Query carries the optional search parameters. Page is an opaque cursor
// passed through to the provider unvalidated.
type Query struct {
	Q        string
	Country  string
	Language string
	Page     string
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

// Search queries the provider. On any transport, status, or decode failure
// it returns the fallback response instead of an error.
func (c *Client) Search(ctx context.Context, q Query) *Response {
	reqURL, err := c.buildURL(q)
	if err != nil {
		c.logger.Warn(ctx, "bad news provider URL, serving fallback", "error", err)
		return FallbackResponse()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Warn(ctx, "news request build failed, serving fallback", "error", err)
		return FallbackResponse()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "news request failed, serving fallback", "error", err)
		return FallbackResponse()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn(ctx, "news provider returned non-OK status, serving fallback",
			"status", resp.StatusCode)
		return FallbackResponse()
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Warn(ctx, "news response decode failed, serving fallback", "error", err)
		return FallbackResponse()
	}

	return &result
}

// Breaking returns headline triples for the ticker, derived from a plain
// search and reduced to id/title/link. Degrades to its own fallback set.
func (c *Client) Breaking(ctx context.Context) []Headline {
	resp := c.Search(ctx, Query{})
	if len(resp.Results) == 0 {
		return FallbackHeadlines()
	}

	limit := len(resp.Results)
	if limit > 5 {
		limit = 5
	}

	headlines := make([]Headline, 0, limit)
	for _, a := range resp.Results[:limit] {
		headlines = append(headlines, Headline{ID: a.ArticleID, Title: a.Title, Link: a.Link})
	}
	return headlines
}

func (c *Client) buildURL(q Query) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}

	params := u.Query()
	params.Set("apikey", c.apiKey)
	if q.Q != "" {
		params.Set("q", q.Q)
	}
	if q.Country != "" {
		params.Set("country", q.Country)
	}
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.Page != "" {
		params.Set("page", q.Page)
	}
	u.RawQuery = params.Encode()

	return u.String(), nil
}
