package music

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_NoAPIKey_UsesFallbackWithoutNetworkCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := NewClient("", 50, nil, time.Minute).WithAPIURL(srv.URL)
	defer c.Close()

	song := c.Fetch(context.Background(), "anime")

	assert.Equal(t, "Tank!", song.Title)
	assert.Equal(t, "Seatbelts", song.Artist)
	assert.Equal(t, "fallback", song.Source)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "fallback must not hit the network")
}

func TestFetch_UnknownCategoryFallsBackToRussian(t *testing.T) {
	c := NewClient("", 50, nil, time.Minute)
	defer c.Close()

	song := c.Fetch(context.Background(), "polka")
	assert.Equal(t, "Kalinka", song.Title)
}

func TestFetch_APISuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))
		assert.Equal(t, "video", r.URL.Query().Get("type"))
		assert.Equal(t, "10", r.URL.Query().Get("videoCategoryId"))
		assert.Equal(t, "50", r.URL.Query().Get("maxResults"))
		assert.NotEmpty(t, r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":{"videoId":"abc123"},"snippet":{"title":"Test Song","channelTitle":"Test Channel","publishedAt":"2024-01-02T03:04:05Z"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", 50, nil, time.Minute).
		WithAPIURL(srv.URL).
		WithRand(rand.New(rand.NewSource(1)))
	defer c.Close()

	song := c.Fetch(context.Background(), "anime")

	assert.Equal(t, "Test Song", song.Title)
	assert.Equal(t, "Test Channel", song.Artist)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", song.URL)
	assert.Equal(t, "2024-01-02", song.Published)
	assert.Equal(t, "youtube_api", song.Source)
}

func TestFetch_APIErrorSwallowedAndFallbackReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("test-key", 50, nil, time.Minute).WithAPIURL(srv.URL)
	defer c.Close()

	song := c.Fetch(context.Background(), "japanese")

	assert.Equal(t, "Plastic Love", song.Title)
	assert.Equal(t, "fallback", song.Source)
}

func TestFetch_EmptyResultSetFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", 50, nil, time.Minute).WithAPIURL(srv.URL)
	defer c.Close()

	song := c.Fetch(context.Background(), "global")
	require.Equal(t, "fallback", song.Source)
	assert.Equal(t, "Bohemian Rhapsody", song.Title)
}
