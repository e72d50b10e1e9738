package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Env holds secrets and deployment settings read from the environment.
// BOT_TOKEN is the only hard requirement; everything else degrades
// gracefully (no YouTube key = curated songs, no Redis = no cache).
type Env struct {
	BotToken      string `env:"BOT_TOKEN,required"`
	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`
	RedisURL      string `env:"REDIS_URL"`
	GuildID       string `env:"GUILD_ID"`
	Port          string `env:"PORT"`
	Debug         bool   `env:"DEBUG"`
}

func LoadEnv() (*Env, error) {
	cfg := &Env{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Config holds tuning knobs loaded from config.yml.
type Config struct {
	Delays struct {
		SuspenseStep  float64 `yaml:"suspense_step"`
		SuspenseFinal float64 `yaml:"suspense_final"`
	} `yaml:"delays"`
	Music struct {
		MaxResults      int     `yaml:"max_results"`
		CacheTTLMinutes float64 `yaml:"cache_ttl_minutes"`
	} `yaml:"music"`
	Memes struct {
		Attempts        int     `yaml:"attempts"`
		ListingLimit    int     `yaml:"listing_limit"`
		TimeoutSeconds  float64 `yaml:"timeout_seconds"`
		CacheTTLMinutes float64 `yaml:"cache_ttl_minutes"`
	} `yaml:"memes"`
	Adventure struct {
		DareSkipChance float64 `yaml:"dare_skip_chance"`
	} `yaml:"adventure"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		fillDefaults(config)
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	// A partial file keeps defaults for the keys it leaves out.
	fillDefaults(config)
	return config, nil
}

func fillDefaults(c *Config) {
	if c.Delays.SuspenseStep == 0 {
		c.Delays.SuspenseStep = 0.6
	}
	if c.Delays.SuspenseFinal == 0 {
		c.Delays.SuspenseFinal = 0.8
	}
	if c.Music.MaxResults == 0 {
		c.Music.MaxResults = 50
	}
	if c.Music.CacheTTLMinutes == 0 {
		c.Music.CacheTTLMinutes = 60
	}
	if c.Memes.Attempts == 0 {
		c.Memes.Attempts = 3
	}
	if c.Memes.ListingLimit == 0 {
		c.Memes.ListingLimit = 25
	}
	if c.Memes.TimeoutSeconds == 0 {
		c.Memes.TimeoutSeconds = 10
	}
	if c.Memes.CacheTTLMinutes == 0 {
		c.Memes.CacheTTLMinutes = 10
	}
	if c.Adventure.DareSkipChance == 0 {
		c.Adventure.DareSkipChance = 0.3
	}
}
