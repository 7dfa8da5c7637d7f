package news

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/newshub/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", logging.NewJSONLogger(io.Discard))
}

func TestSearch_Success(t *testing.T) {
	var gotQuery map[string]string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"apikey":   r.URL.Query().Get("apikey"),
			"q":        r.URL.Query().Get("q"),
			"country":  r.URL.Query().Get("country"),
			"language": r.URL.Query().Get("language"),
			"page":     r.URL.Query().Get("page"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"totalResults": 1,
			"results": [{"article_id": "a1", "title": "Hello", "link": "https://example.com/a1"}],
			"nextPage": "cursor-2"
		}`))
	})

	resp := c.Search(context.Background(), Query{Q: "go", Country: "us", Language: "en", Page: "cursor-1"})

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "a1", resp.Results[0].ArticleID)
	assert.Equal(t, "cursor-2", resp.NextPage)

	assert.Equal(t, "test-key", gotQuery["apikey"])
	assert.Equal(t, "go", gotQuery["q"])
	assert.Equal(t, "us", gotQuery["country"])
	assert.Equal(t, "en", gotQuery["language"])
	assert.Equal(t, "cursor-1", gotQuery["page"], "page cursor is passed through opaquely")
}

func TestSearch_NonOKStatusDegradesToFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	resp := c.Search(context.Background(), Query{})

	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "fallback_article_1", resp.Results[0].ArticleID)
}

func TestSearch_BadBodyDegradesToFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	resp := c.Search(context.Background(), Query{})
	assert.Equal(t, len(FallbackResponse().Results), len(resp.Results))
}

func TestSearch_UnreachableProviderDegradesToFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, "k", logging.NewJSONLogger(io.Discard))
	resp := c.Search(context.Background(), Query{})
	require.Len(t, resp.Results, 3)
}

func TestBreaking_MapsResultsToHeadlines(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": "success",
			"totalResults": 2,
			"results": [
				{"article_id": "a1", "title": "One", "link": "https://example.com/1"},
				{"article_id": "a2", "title": "Two", "link": "https://example.com/2"}
			]
		}`))
	})

	headlines := c.Breaking(context.Background())
	require.Len(t, headlines, 2)
	assert.Equal(t, Headline{ID: "a1", Title: "One", Link: "https://example.com/1"}, headlines[0])
}

func TestBreaking_FallsBackWhenProviderFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	headlines := c.Breaking(context.Background())
	// fallback search results still produce headlines from the canned list
	require.NotEmpty(t, headlines)
	assert.Equal(t, "fallback_article_1", headlines[0].ID)
}
