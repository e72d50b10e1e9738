// Package music picks a random song for a category, via the YouTube Data
// API when a key is configured. Provider failures never reach the caller:
// every path without a usable result lands on the curated fallback song.
package music

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"resty.dev/v3"

	"decisionbot/pkg/cache"
	"decisionbot/pkg/random"
)

const defaultAPIURL = "https://www.googleapis.com/youtube/v3/search"

type Song struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	VideoID   string `json:"video_id"`
	URL       string `json:"url"`
	Published string `json:"published"`
	Source    string `json:"source"` // "youtube_api" or "fallback"
}

// SearchTerms are the category-keyed query phrases, one picked at random
// per fetch.
var SearchTerms = map[string][]string{
	"russian":  {"русская музыка", "russian folk music", "russian pop music", "balalaika music", "bayan music"},
	"japanese": {"j-pop music", "japanese music", "city pop japan", "shamisen music", "enka music"},
	"anime":    {"anime opening", "anime ending", "anime ost", "vocaloid music", "anime soundtrack"},
	"global":   {"pop music", "rock music", "jazz music", "electronic music", "indie music"},
	"random":   {"music", "song", "musical", "melody", "banda", "chanson"},
}

var fallbackSongs = map[string]Song{
	"russian":  {Title: "Kalinka", Artist: "Traditional", VideoID: "lNYcviXK4rg"},
	"japanese": {Title: "Plastic Love", Artist: "Mariya Takeuchi", VideoID: "3bNITQR4Uso"},
	"anime":    {Title: "Tank!", Artist: "Seatbelts", VideoID: "NRI_8PUXx2A"},
	"global":   {Title: "Bohemian Rhapsody", Artist: "Queen", VideoID: "fJ9rUzIMcZQ"},
}

// FallbackSong returns the curated item for a category; unknown categories
// get the russian default.
func FallbackSong(category string) Song {
	song, ok := fallbackSongs[category]
	if !ok {
		song = fallbackSongs["russian"]
	}
	song.URL = "https://www.youtube.com/watch?v=" + song.VideoID
	song.Source = "fallback"
	return song
}

type Client struct {
	apiKey     string
	apiURL     string
	maxResults int
	http       *resty.Client
	cache      *cache.Cache
	cacheTTL   time.Duration
	rng        *rand.Rand
}

func NewClient(apiKey string, maxResults int, c *cache.Cache, cacheTTL time.Duration) *Client {
	if maxResults <= 0 {
		maxResults = 50
	}
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		maxResults: maxResults,
		http:       resty.New(),
		cache:      c,
		cacheTTL:   cacheTTL,
		rng:        random.NewTime(),
	}
}

// WithAPIURL points the client at a different endpoint; tests use it.
func (c *Client) WithAPIURL(url string) *Client {
	c.apiURL = url
	return c
}

func (c *Client) WithRand(r *rand.Rand) *Client {
	c.rng = r
	return c
}

func (c *Client) Close() error {
	return c.http.Close()
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		ChannelTitle string `json:"channelTitle"`
		PublishedAt  string `json:"publishedAt"`
	} `json:"snippet"`
}

// Fetch returns one random song for the category. Without an API key, on
// transport errors, non-success statuses, or empty result sets it logs and
// returns the curated fallback instead; it never fails.
func (c *Client) Fetch(ctx context.Context, category string) Song {
	if c.apiKey == "" {
		log.Info().Str("category", category).Msg("no YouTube API key, using fallback songs")
		return FallbackSong(category)
	}

	terms, ok := SearchTerms[category]
	if !ok {
		terms = SearchTerms["random"]
	}
	query := terms[c.rng.Intn(len(terms))]

	items, err := c.search(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("YouTube API error")
		return FallbackSong(category)
	}
	if len(items) == 0 {
		log.Warn().Str("query", query).Msg("YouTube search returned no items")
		return FallbackSong(category)
	}

	video := items[c.rng.Intn(len(items))]
	published := video.Snippet.PublishedAt
	if len(published) > 10 {
		published = published[:10]
	}
	return Song{
		Title:     video.Snippet.Title,
		Artist:    video.Snippet.ChannelTitle,
		VideoID:   video.ID.VideoID,
		URL:       "https://www.youtube.com/watch?v=" + video.ID.VideoID,
		Published: published,
		Source:    "youtube_api",
	}
}

func (c *Client) search(ctx context.Context, query string) ([]searchItem, error) {
	cacheKey := c.cache.Key("music", query)

	var cached []searchItem
	if c.cache.GetJSON(ctx, cacheKey, &cached) && len(cached) > 0 {
		return cached, nil
	}

	orders := []string{"relevance", "viewCount", "rating"}

	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":            "snippet",
			"q":               query,
			"type":            "video",
			"videoCategoryId": "10",
			"maxResults":      strconv.Itoa(c.maxResults),
			"order":           orders[c.rng.Intn(len(orders))],
			"key":             c.apiKey,
		}).
		SetResult(&out).
		Get(c.apiURL)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode())
	}

	if err := c.cache.SetJSON(ctx, cacheKey, out.Items, c.cacheTTL); err != nil {
		log.Debug().Err(err).Msg("music cache write failed")
	}
	return out.Items, nil
}
