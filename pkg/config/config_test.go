package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Provide a path that definitely doesn't exist
	config, err := LoadConfig("non_existent_config.yml")
	require.NoError(t, err)

	assert.Equal(t, 0.6, config.Delays.SuspenseStep)
	assert.Equal(t, 0.8, config.Delays.SuspenseFinal)
	assert.Equal(t, 50, config.Music.MaxResults)
	assert.Equal(t, 3, config.Memes.Attempts)
	assert.Equal(t, 25, config.Memes.ListingLimit)
	assert.Equal(t, 10.0, config.Memes.TimeoutSeconds)
	assert.Equal(t, 0.3, config.Adventure.DareSkipChance)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	content := []byte(`
delays:
  suspense_step: 0.2
  suspense_final: 0.4
music:
  max_results: 10
memes:
  attempts: 5
  listing_limit: 50
  timeout_seconds: 3
adventure:
  dare_skip_chance: 0.5
`)
	tmpfile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write(content); err != nil {
		tmpfile.Close()
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, 0.2, config.Delays.SuspenseStep)
	assert.Equal(t, 0.4, config.Delays.SuspenseFinal)
	assert.Equal(t, 10, config.Music.MaxResults)
	assert.Equal(t, 5, config.Memes.Attempts)
	assert.Equal(t, 50, config.Memes.ListingLimit)
	assert.Equal(t, 3.0, config.Memes.TimeoutSeconds)
	assert.Equal(t, 0.5, config.Adventure.DareSkipChance)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	content := []byte(`
memes:
  attempts: 2
`)
	tmpfile, err := os.CreateTemp("", "config_partial_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	config, err := LoadConfig(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, 2, config.Memes.Attempts)
	assert.Equal(t, 25, config.Memes.ListingLimit)
	assert.Equal(t, 0.3, config.Adventure.DareSkipChance)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	content := []byte(`
delays:
  suspense_step: [ unclosed bracket
`)
	tmpfile, err := os.CreateTemp("", "config_invalid_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	_, err = LoadConfig(tmpfile.Name())
	assert.Error(t, err)
}

func TestLoadEnv_RequiresBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	os.Unsetenv("BOT_TOKEN")

	_, err := LoadEnv()
	assert.Error(t, err)

	t.Setenv("BOT_TOKEN", "abc123")
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.BotToken)
	assert.Equal(t, "yt-key", cfg.YouTubeAPIKey)
}
