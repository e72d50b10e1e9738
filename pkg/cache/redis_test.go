package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title string `json:"title"`
	Score int    `json:"score"`
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisCache("redis://"+mr.Addr(), "test")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_JSONRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	in := payload{Title: "hello", Score: 42}
	require.NoError(t, c.SetJSON(ctx, c.Key("memes", "pikabu"), in, time.Minute))

	var out payload
	require.True(t, c.GetJSON(ctx, c.Key("memes", "pikabu"), &out))
	assert.Equal(t, in, out)
}

func TestCache_MissReportsFalse(t *testing.T) {
	c := newTestCache(t)

	var out payload
	assert.False(t, c.GetJSON(context.Background(), c.Key("nope"), &out))
}

func TestCache_NilCacheIsDisabled(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	assert.NoError(t, c.SetJSON(ctx, "k", payload{}, time.Minute))
	var out payload
	assert.False(t, c.GetJSON(ctx, "k", &out))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestCache_KeyPrefix(t *testing.T) {
	c := newTestCache(t)
	assert.Equal(t, "test:music:anime", c.Key("music", "anime"))

	var nilCache *Cache
	assert.Equal(t, "music:anime", nilCache.Key("music", "anime"))
}
