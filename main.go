package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"decisionbot/pkg/adventure"
	"decisionbot/pkg/bot"
	"decisionbot/pkg/cache"
	"decisionbot/pkg/config"
	"decisionbot/pkg/content"
	"decisionbot/pkg/memes"
	"decisionbot/pkg/music"
	"decisionbot/pkg/state"
)

func main() {
	// Load .env for secrets
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on environment variables")
	}

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Missing required environment variables")
	}

	if env.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	}

	// Load config.yml; defaults apply when the file is absent
	cfg, err := config.LoadConfig("config.yml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Optional redis cache for fetched media; the bot runs fine without it
	var mediaCache *cache.Cache
	if env.RedisURL != "" {
		mediaCache, err = cache.NewRedisCache(env.RedisURL, "decisionbot")
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, media caching disabled")
			mediaCache = nil
		} else {
			defer mediaCache.Close()
			log.Info().Msg("Redis media cache connected")
		}
	}

	if env.YouTubeAPIKey == "" {
		log.Info().Msg("YOUTUBE_API_KEY not set, music discovery serves the fallback classics")
	}

	musicClient := music.NewClient(
		env.YouTubeAPIKey,
		cfg.Music.MaxResults,
		mediaCache,
		time.Duration(cfg.Music.CacheTTLMinutes*float64(time.Minute)),
	)
	memeClient := memes.NewClient(
		cfg.Memes.Attempts,
		cfg.Memes.ListingLimit,
		time.Duration(cfg.Memes.TimeoutSeconds*float64(time.Second)),
		mediaCache,
		time.Duration(cfg.Memes.CacheTTLMinutes*float64(time.Minute)),
	)

	store := state.NewStore()
	engine := adventure.New(content.Episodes, cfg.Adventure.DareSkipChance)
	handler := bot.NewHandler(store, engine, musicClient, memeClient, cfg)

	dg, err := discordgo.New("Bot " + env.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating Discord session")
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	dg.AddHandler(handler.MessageCreate)
	dg.AddHandler(handler.InteractionCreate)

	if err := dg.Open(); err != nil {
		log.Fatal().Err(err).Msg("Error opening connection")
	}
	defer dg.Close()

	// Set Bot ID in handler (so it can ignore itself)
	handler.SetBotID(dg.State.User.ID)

	// guildID = "" registers commands globally; set GUILD_ID for instant
	// updates during development
	registeredCommands, err := bot.RegisterSlashCommands(dg, env.GuildID)
	if err != nil {
		log.Fatal().Err(err).Msg("Error registering slash commands")
	}
	defer func() {
		if err := bot.UnregisterSlashCommands(dg, env.GuildID, registeredCommands); err != nil {
			log.Error().Err(err).Msg("Error unregistering slash commands")
		}
	}()

	err = dg.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{
			{
				Name:  "Custom Status",
				Type:  discordgo.ActivityTypeCustom,
				State: "settling arguments since forever 🎲",
			},
		},
		Status: "online",
	})
	if err != nil {
		log.Error().Err(err).Msg("Error setting custom status")
	}

	// Hosting platforms that probe an HTTP port get a health endpoint
	if env.Port != "" {
		go func() {
			http.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("ok"))
			})
			log.Info().Str("port", env.Port).Msg("Health endpoint listening")
			if err := http.ListenAndServe(":"+env.Port, nil); err != nil {
				log.Error().Err(err).Msg("Health endpoint stopped")
			}
		}()
	}

	log.Info().Msg("Decision Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
