package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amara-obi/course-gen/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
	}, nil)
}

func TestGenerateCourse_OK(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "/chat/completions", r.URL.Path)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"course\":{\"title\":\"T\"}}"}}]}`))
	})

	out, err := client.GenerateCourse(context.Background(), "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, `{"course":{"title":"T"}}`, out)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])

	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
}

func TestGenerateCourse_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached for gpt-4o-mini"}}`))
	})

	_, err := client.GenerateCourse(context.Background(), "s", "u")
	require.Error(t, err)

	var gerr *llm.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusTooManyRequests, gerr.StatusCode)
	assert.Contains(t, gerr.Message, "Rate limit reached")
}

func TestGenerateCourse_NoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.GenerateCourse(context.Background(), "s", "u")
	var gerr *llm.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Contains(t, gerr.Message, "no choices")
}

func TestGenerateCourse_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	client := NewClient(Config{BaseURL: "http://localhost:0"}, nil)

	_, err := client.GenerateCourse(context.Background(), "s", "u")
	var gerr *llm.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Contains(t, gerr.Message, "OPENAI_API_KEY")
}
