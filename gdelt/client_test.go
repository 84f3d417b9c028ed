package gdelt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	t.Run("baseline phrases only", func(t *testing.T) {
		query := BuildQuery("", "")
		assert.True(t, len(query) > 2 && query[0] == '(')
		assert.Contains(t, query, `"clean energy"`)
		assert.NotContains(t, query, "sourcecountry:")
	})

	t.Run("country filter is uppercased", func(t *testing.T) {
		assert.Contains(t, BuildQuery("kz", ""), "sourcecountry:KZ")
	})

	t.Run("multi word user query gets quoted", func(t *testing.T) {
		assert.Contains(t, BuildQuery("", "solar auction"), `"solar auction"`)
	})

	t.Run("already quoted query stays as is", func(t *testing.T) {
		query := BuildQuery("", `"solar auction"`)
		assert.Contains(t, query, `"solar auction"`)
		assert.NotContains(t, query, `""solar auction""`)
	})

	t.Run("single word query stays bare", func(t *testing.T) {
		assert.Contains(t, BuildQuery("", "hydrogen"), " hydrogen")
	})
}

func stubServer(t *testing.T, status int, body string) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "artlist", r.URL.Query().Get("mode"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return NewClientWithBaseURL(server.URL)
}

func TestClientFetch(t *testing.T) {
	opts := FetchOptions{CountryISO2: "TR", MaxRecords: 10, Timespan: "7d"}

	t.Run("articles envelope", func(t *testing.T) {
		client := stubServer(t, http.StatusOK, `{"articles":[{"title":"Solar plant opens","url":"https://example.com/1"}]}`)
		articles := client.Fetch(context.Background(), opts)
		require.Len(t, articles, 1)
		assert.Equal(t, "Solar plant opens", articles[0].Title)
	})

	t.Run("results envelope", func(t *testing.T) {
		client := stubServer(t, http.StatusOK, `{"results":[{"title":"a"},{"title":"b"}]}`)
		assert.Len(t, client.Fetch(context.Background(), opts), 2)
	})

	t.Run("bare array", func(t *testing.T) {
		client := stubServer(t, http.StatusOK, `[{"title":"bare"}]`)
		articles := client.Fetch(context.Background(), opts)
		require.Len(t, articles, 1)
		assert.Equal(t, "bare", articles[0].Title)
	})

	t.Run("malformed json degrades to empty", func(t *testing.T) {
		client := stubServer(t, http.StatusOK, `<html>rate limited</html>`)
		assert.Empty(t, client.Fetch(context.Background(), opts))
	})

	t.Run("non-ok status degrades to empty", func(t *testing.T) {
		client := stubServer(t, http.StatusTooManyRequests, `{}`)
		assert.Empty(t, client.Fetch(context.Background(), opts))
	})

	t.Run("unreachable server degrades to empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()
		client := NewClientWithBaseURL(server.URL)
		assert.Empty(t, client.Fetch(context.Background(), opts))
	})

	t.Run("maxrecords is capped at the api limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "250", r.URL.Query().Get("maxrecords"))
			_, _ = w.Write([]byte(`[]`))
		}))
		t.Cleanup(server.Close)
		client := NewClientWithBaseURL(server.URL)
		client.Fetch(context.Background(), FetchOptions{MaxRecords: 5000, Timespan: "7d"})
	})
}
