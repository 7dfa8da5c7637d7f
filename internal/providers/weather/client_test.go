package weather

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

func TestCurrent_Success(t *testing.T) {
	gotQuery := map[string]string{}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery["q"] = r.URL.Query().Get("q")
		gotQuery["appid"] = r.URL.Query().Get("appid")
		gotQuery["units"] = r.URL.Query().Get("units")
		_, _ = w.Write([]byte(`{
			"main": {"temp": 27.6},
			"weather": [{"description": "scattered clouds", "icon": "03d"}],
			"name": "Vijayawada"
		}`))
	})

	report := c.Current(context.Background(), "Vijayawada")
	require.NotNil(t, report)
	assert.Equal(t, 28, report.Temp, "temperature is rounded")
	assert.Equal(t, "scattered clouds", report.Description)
	assert.Equal(t, "03d", report.Icon)
	assert.Equal(t, "Vijayawada", report.City)

	assert.Equal(t, "Vijayawada", gotQuery["q"])
	assert.Equal(t, "test-key", gotQuery["appid"])
	assert.Equal(t, "metric", gotQuery["units"])
}

func TestCurrent_NonOKStatusYieldsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	assert.Nil(t, c.Current(context.Background(), "Atlantis"))
}

func TestCurrent_BadBodyYieldsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	assert.Nil(t, c.Current(context.Background(), "Vijayawada"))
}

func TestCurrent_EmptyConditionsYieldsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"main": {"temp": 20}, "weather": [], "name": "X"}`))
	})

	assert.Nil(t, c.Current(context.Background(), "X"))
}

func TestCurrent_UnreachableProviderYieldsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, "k", logging.NewJSONLogger(io.Discard))
	assert.Nil(t, c.Current(context.Background(), "Vijayawada"))
}
