package bot

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"decisionbot/pkg/adventure"
	"decisionbot/pkg/config"
	"decisionbot/pkg/content"
	"decisionbot/pkg/memes"
	"decisionbot/pkg/music"
	"decisionbot/pkg/random"
	"decisionbot/pkg/state"
)

type Handler struct {
	store  *state.Store
	engine *adventure.Engine
	music  *music.Client
	memes  *memes.Client
	botID  string
	rng    *rand.Rand

	suspenseStep  time.Duration
	suspenseFinal time.Duration
}

func NewHandler(store *state.Store, engine *adventure.Engine, musicClient *music.Client, memeClient *memes.Client, cfg *config.Config) *Handler {
	return &Handler{
		store:         store,
		engine:        engine,
		music:         musicClient,
		memes:         memeClient,
		rng:           random.NewTime(),
		suspenseStep:  time.Duration(cfg.Delays.SuspenseStep * float64(time.Second)),
		suspenseFinal: time.Duration(cfg.Delays.SuspenseFinal * float64(time.Second)),
	}
}

func (h *Handler) SetBotID(id string) {
	h.botID = id
}

// WithRand swaps the randomness source; tests use a fixed seed.
func (h *Handler) WithRand(r *rand.Rand) *Handler {
	h.rng = r
	return h
}

// interactionUser builds the Participant for an interaction from locally
// available fields; guild interactions carry a Member, DMs a User.
func interactionUser(i *discordgo.InteractionCreate) state.Participant {
	var u *discordgo.User
	var nick string
	if i.Member != nil {
		u = i.Member.User
		nick = i.Member.Nick
	} else if i.User != nil {
		u = i.User
	}
	if u == nil {
		return state.Participant{}
	}
	name := nick
	if name == "" {
		name = u.GlobalName
	}
	if name == "" {
		name = u.Username
	}
	return state.Participant{ID: u.ID, DisplayName: name}
}

func (h *Handler) InteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.HandleInteraction(&DiscordSession{s}, i)
}

// HandleInteraction is the single entry point for slash commands and button
// presses. A panic anywhere below is caught here and rendered as a generic
// apology; the process stays alive.
func (h *Handler) HandleInteraction(s Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("handler panic recovered")
			summary := fmt.Sprintf("%v", r)
			if len(summary) > 100 {
				summary = summary[:100]
			}
			h.update(s, i, "😵 Oops! Something went wrong.\n\n`"+summary+"`\n\nTry again!", backRow("main_menu"))
		}
	}()

	chatID := i.ChannelID
	user := interactionUser(i)
	h.store.MutateUnder(chatID, func(g *state.GroupState) {
		g.Touch(user)
	})

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "help":
			h.showHelp(s, i)
		default:
			h.showMainMenu(s, i)
		}

	case discordgo.InteractionMessageComponent:
		id := i.MessageComponentData().CustomID
		action, ok := ParseAction(id)
		if !ok {
			// Stale or future button: log and drop, no user-facing error.
			log.Warn().Str("custom_id", id).Msg("unhandled interaction")
			return
		}
		h.dispatch(s, i, action)
	}
}

func (h *Handler) dispatch(s Session, i *discordgo.InteractionCreate, act Action) {
	switch act.Kind {
	case KindMainMenu:
		h.showMainMenu(s, i)
	case KindWhoPays:
		h.whoPays(s, i)
	case KindCoinFlip:
		h.coinFlip(s, i)
	case KindRollDice:
		h.rollDice(s, i)
	case KindChooseMenu:
		h.chooseMenu(s, i)
	case KindChoosePick:
		h.choosePick(s, i, act.Option)
	case KindVoteMenu:
		h.voteMenu(s, i)
	case KindVoteStart:
		h.voteStart(s, i, act.PollKind)
	case KindVoteOption:
		h.voteOption(s, i, act.PollKind, act.Option)
	case KindVoteResults:
		h.voteResults(s, i)
	case KindVoteClear:
		h.voteClear(s, i)
	case KindTriviaMenu:
		h.triviaMenu(s, i)
	case KindTriviaStart:
		h.triviaStart(s, i, act.Category)
	case KindTriviaAnswer:
		h.triviaAnswer(s, i, act.QuestionID, act.Option)
	case KindDrinkingMenu:
		h.drinkingMenu(s, i)
	case KindDrinkNever:
		h.drinkNever(s, i)
	case KindDrinkGuilty:
		h.drinkGuilty(s, i)
	case KindDrinkInnocent:
		h.drinkInnocent(s, i)
	case KindDrinkFlip:
		h.drinkFlip(s, i)
	case KindDrinkStats:
		h.drinkStats(s, i)
	case KindRoastMenu:
		h.roastMenu(s, i)
	case KindRoastMe:
		h.roast(s, i, false, true)
	case KindRoastRandom:
		h.roast(s, i, false, false)
	case KindComplimentMe:
		h.roast(s, i, true, true)
	case KindComplimentRandom:
		h.roast(s, i, true, false)
	case KindMusicMenu:
		h.musicMenu(s, i)
	case KindMusicFetch:
		h.musicFetch(s, i, act.Category)
	case KindMusicStats:
		h.musicStats(s, i)
	case KindMemeMenu:
		h.memeMenu(s, i)
	case KindMemeFetch:
		h.memeFetch(s, i)
	case KindMemeStats:
		h.memeStats(s, i)
	case KindMoodMenu:
		h.moodMenu(s, i)
	case KindSetMood:
		h.setMood(s, i, act.Mood)
	case KindToggleAutoRotate:
		h.toggleAutoRotate(s, i)
	case KindGamesMenu:
		h.gamesMenu(s, i)
	case KindAdvStart:
		h.advStart(s, i)
	case KindAdvContinue:
		h.advContinue(s, i)
	case KindAdvChoice:
		h.advChoice(s, i, act.Option)
	case KindAdvAnswer:
		h.advAnswer(s, i, act.Option)
	case KindAdvDareComplete:
		h.advDare(s, i, false)
	case KindAdvDareSkip:
		h.advDare(s, i, true)
	case KindAdvRestart:
		h.advRestart(s, i)
	case KindAdvStats:
		h.advStats(s, i)
	case KindStatsMenu:
		h.statsMenu(s, i)
	}
}

// update edits the message the pressed button lives on; for slash commands
// it falls back to a fresh response.
func (h *Handler) update(s Session, i *discordgo.InteractionCreate, text string, components []discordgo.MessageComponent) {
	respType := discordgo.InteractionResponseUpdateMessage
	if i.Type == discordgo.InteractionApplicationCommand {
		respType = discordgo.InteractionResponseChannelMessageWithSource
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: respType,
		Data: &discordgo.InteractionResponseData{
			Content:    text,
			Components: components,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("error responding to interaction")
	}
}

func (h *Handler) edit(s Session, i *discordgo.InteractionCreate, text string, components []discordgo.MessageComponent) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &text,
		Components: &components,
	})
	if err != nil {
		log.Error().Err(err).Msg("error editing interaction response")
	}
}

func (h *Handler) editEmbed(s Session, i *discordgo.InteractionCreate, text string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	embeds := []*discordgo.MessageEmbed{embed}
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &text,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		log.Error().Err(err).Msg("error editing interaction response")
	}
}

// suspenseReveal plays the dot animation before showing the result. It runs
// to completion once started; there is no cancellation.
func (h *Handler) suspenseReveal(s Session, i *discordgo.InteractionCreate, finalText string, components []discordgo.MessageComponent) {
	h.update(s, i, "🎲 Making decision...", nil)

	for n := 1; n <= 3; n++ {
		time.Sleep(h.suspenseStep)
		h.edit(s, i, "🎲 Making decision"+strings.Repeat(".", n), nil)
	}

	time.Sleep(h.suspenseFinal)
	h.edit(s, i, finalText, components)
}

func (h *Handler) moodOf(chatID string) content.Mood {
	var mood content.Mood
	h.store.MutateUnder(chatID, func(g *state.GroupState) {
		mood = content.MoodOrDefault(g.Mood)
	})
	return mood
}
