// Package memes fetches a random image post from a fixed set of Russian
// meme subreddits. Unlike music there is no curated fallback: when nothing
// usable turns up the caller gets an explicit no-result and renders a retry
// prompt.
package memes

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"resty.dev/v3"

	"decisionbot/pkg/cache"
	"decisionbot/pkg/random"
)

const defaultBaseURL = "https://www.reddit.com"

// Sources is the fixed subreddit pool, one picked at random per attempt.
var Sources = []string{"pikabu", "ANormalDayInRussia", "russia", "russianmemes"}

type Meme struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Permalink string `json:"permalink"`
	Subreddit string `json:"subreddit"`
	Upvotes   int    `json:"upvotes"`
}

func (m Meme) RedditURL() string {
	return defaultBaseURL + m.Permalink
}

type Client struct {
	baseURL  string
	attempts int
	limit    int
	http     *resty.Client
	cache    *cache.Cache
	cacheTTL time.Duration
	rng      *rand.Rand
}

func NewClient(attempts, limit int, timeout time.Duration, c *cache.Cache, cacheTTL time.Duration) *Client {
	if attempts <= 0 {
		attempts = 3
	}
	if limit <= 0 {
		limit = 25
	}
	return &Client{
		baseURL:  defaultBaseURL,
		attempts: attempts,
		limit:    limit,
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", "DecisionBot/1.0"),
		cache:    c,
		cacheTTL: cacheTTL,
		rng:      random.NewTime(),
	}
}

func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = url
	return c
}

func (c *Client) WithRand(r *rand.Rand) *Client {
	c.rng = r
	return c
}

func (c *Client) Close() error {
	return c.http.Close()
}

type listing struct {
	Data struct {
		Children []struct {
			Data post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type post struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Score     int    `json:"score"`
	Over18    bool   `json:"over_18"`
	Permalink string `json:"permalink"`
	Subreddit string `json:"subreddit"`
}

// Fetch tries up to the configured number of attempts, each against a random
// source's hot listing. It returns false when no usable post is found or a
// transport error occurs; that is a normal outcome, not an error.
func (c *Client) Fetch(ctx context.Context) (Meme, bool) {
	for attempt := 0; attempt < c.attempts; attempt++ {
		source := Sources[c.rng.Intn(len(Sources))]
		log.Debug().Str("subreddit", source).Int("attempt", attempt+1).Msg("trying meme source")

		posts, err := c.hot(ctx, source)
		if err != nil {
			log.Error().Err(err).Str("subreddit", source).Msg("meme fetch error")
			return Meme{}, false
		}
		if posts == nil {
			continue
		}

		good := filterUsable(posts)
		if len(good) == 0 {
			log.Debug().Str("subreddit", source).Msg("no usable posts")
			continue
		}

		chosen := good[c.rng.Intn(len(good))]
		sub := chosen.Subreddit
		if sub == "" {
			sub = source
		}
		return Meme{
			Title:     chosen.Title,
			URL:       chosen.URL,
			Permalink: chosen.Permalink,
			Subreddit: sub,
			Upvotes:   chosen.Score,
		}, true
	}
	log.Warn().Msg("all meme attempts failed")
	return Meme{}, false
}

// hot returns the source's hot posts, or nil on a non-success status (a
// failed attempt, not a hard error).
func (c *Client) hot(ctx context.Context, source string) ([]post, error) {
	cacheKey := c.cache.Key("memes", source)

	var cached []post
	if c.cache.GetJSON(ctx, cacheKey, &cached) && len(cached) > 0 {
		return cached, nil
	}

	var out listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(c.limit)).
		SetResult(&out).
		Get(fmt.Sprintf("%s/r/%s/hot.json", c.baseURL, source))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		log.Debug().Int("status", resp.StatusCode()).Str("subreddit", source).Msg("listing request rejected")
		return nil, nil
	}

	posts := make([]post, 0, len(out.Data.Children))
	for _, child := range out.Data.Children {
		posts = append(posts, child.Data)
	}

	if err := c.cache.SetJSON(ctx, cacheKey, posts, c.cacheTTL); err != nil {
		log.Debug().Err(err).Msg("meme cache write failed")
	}
	return posts, nil
}

func filterUsable(posts []post) []post {
	var good []post
	for _, p := range posts {
		// title length is in characters, Cyrillic titles are mostly 2-byte runes
		if p.URL == "" || p.Score <= 0 || p.Over18 || utf8.RuneCountInString(p.Title) <= 5 {
			continue
		}
		if !looksLikeImage(p.URL) {
			continue
		}
		good = append(good, p)
	}
	return good
}

func looksLikeImage(url string) bool {
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp"} {
		if strings.HasSuffix(url, ext) {
			return true
		}
	}
	return strings.Contains(url, "i.redd.it") || strings.Contains(url, "imgur.com")
}
