package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestYouTubeClient(t *testing.T, handler http.HandlerFunc) *YouTubeClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewYouTubeClient(YouTubeConfig{APIKey: "yt-key", BaseURL: srv.URL}, nil)
}

func TestLookupURL_FirstHit(t *testing.T) {
	var gotQuery, gotKey string
	client := newTestYouTubeClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		assert.Equal(t, "1", r.URL.Query().Get("maxResults"))
		_, _ = w.Write([]byte(`{"items":[{"id":{"videoId":"dQw4w9WgXcQ"}},{"id":{"videoId":"second"}}]}`))
	})

	url, err := client.LookupURL(context.Background(), "bowline knot tutorial")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", url)
	assert.Equal(t, "bowline knot tutorial", gotQuery)
	assert.Equal(t, "yt-key", gotKey)
}

func TestLookupURL_NoResults(t *testing.T) {
	client := newTestYouTubeClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	url, err := client.LookupURL(context.Background(), "nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestLookupURL_UpstreamError(t *testing.T) {
	client := newTestYouTubeClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.LookupURL(context.Background(), "quota exceeded")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestLookupURL_DisabledWithoutKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	client := NewYouTubeClient(YouTubeConfig{BaseURL: srv.URL}, nil)
	assert.False(t, client.Enabled())

	url, err := client.LookupURL(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, url)
	assert.False(t, called, "disabled client never calls the API")
}
