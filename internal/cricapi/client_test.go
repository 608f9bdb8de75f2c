package cricapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient(Config{
		BaseURL:           srv.URL,
		APIKey:            "test-key",
		Host:              "test-host",
		RequestsPerMinute: 6000,
	})
	return client, srv
}

func TestLiveMatchesParsesFeed(t *testing.T) {
	var gotKey, gotHost string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		w.Write([]byte(`{"typeMatches": [{"matchType": "League", "seriesMatches": []}]}`))
	})
	defer srv.Close()

	feed := client.LiveMatches(context.Background())
	require.Len(t, feed.TypeMatches, 1)
	assert.Equal(t, "League", feed.TypeMatches[0].MatchType)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "test-host", gotHost)
}

func TestNonSuccessStatusDegradesToEmpty(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})
	defer srv.Close()

	feed := client.LiveMatches(context.Background())
	assert.Empty(t, feed.TypeMatches)

	catalog := client.StatsCatalog(context.Background())
	assert.Empty(t, catalog.StatsTypesList)

	block := client.TopStats(context.Background(), "mostRuns", "1")
	assert.Empty(t, block.Values)

	assert.Nil(t, client.AllVenues(context.Background()))
}

func TestTopStatsSendsQueryParams(t *testing.T) {
	var query string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"headers": ["Player"], "values": []}`))
	})
	defer srv.Close()

	client.TopStats(context.Background(), "mostRuns", "2")
	assert.Contains(t, query, "statsType=mostRuns")
	assert.Contains(t, query, "formatType=2")
}
