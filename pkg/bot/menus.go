package bot

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"decisionbot/pkg/content"
	"decisionbot/pkg/state"
)

func button(label, customID string) discordgo.Button {
	return discordgo.Button{
		Label:    label,
		Style:    discordgo.SecondaryButton,
		CustomID: customID,
	}
}

// rows packs buttons into action rows of up to five, the component limit.
func rows(buttons ...discordgo.Button) []discordgo.MessageComponent {
	var out []discordgo.MessageComponent
	for len(buttons) > 0 {
		n := len(buttons)
		if n > 5 {
			n = 5
		}
		row := discordgo.ActionsRow{}
		for _, b := range buttons[:n] {
			row.Components = append(row.Components, b)
		}
		out = append(out, row)
		buttons = buttons[n:]
	}
	return out
}

func backRow(target string) []discordgo.MessageComponent {
	return rows(button("🔙 Back", target))
}

// mainMenuView builds the menu text and buttons, applying the day-of-week
// mood rotation when it is enabled for the chat.
func (h *Handler) mainMenuView(chatID string) (string, []discordgo.MessageComponent) {
	var mood content.Mood
	h.store.MutateUnder(chatID, func(g *state.GroupState) {
		if g.AutoRotateMood {
			rotated := content.DayMoods[int(time.Now().Weekday())%len(content.DayMoods)]
			if rotated != g.Mood {
				g.Mood = rotated
				log.Debug().Str("chat", chatID).Str("mood", rotated).Msg("mood auto-rotated")
			}
		}
		mood = content.MoodOrDefault(g.Mood)
	})

	var b strings.Builder
	b.WriteString(mood.Emoji + " **Decision Bot** " + mood.Emoji + "\n\n")
	b.WriteString(mood.Pick(h.rng) + "\n\nWhat shall we do?")

	// occasional nudge towards the hidden triggers
	if h.rng.Float64() < 0.1 {
		hint := content.TriggerHints[h.rng.Intn(len(content.TriggerHints))]
		b.WriteString("\n\n_" + hint + "_")
	}

	components := rows(
		button("💸 Who pays?", "who_pays"),
		button("🪙 Coin flip", "coin_flip"),
		button("🎲 Roll dice", "roll_dice"),
		button("🤔 Choose for us", "choose_menu"),
		button("🗳️ Vote", "vote_menu"),
		button("🧠 Trivia", "trivia_menu"),
		button("🍻 Drinking game", "drinking_menu"),
		button("🔥 Roast corner", "roast_menu"),
		button("🎵 Music", "music_menu"),
		button("😂 Memes", "meme_menu"),
		button("🎮 Adventure", "games_menu"),
		button("🎭 Mood", "mood_menu"),
		button("📊 Stats", "stats_menu"),
	)
	return b.String(), components
}

func (h *Handler) showMainMenu(s Session, i *discordgo.InteractionCreate) {
	text, components := h.mainMenuView(i.ChannelID)
	h.update(s, i, text, components)
}

func (h *Handler) showHelp(s Session, i *discordgo.InteractionCreate) {
	text := "🤖 **Decision Bot**\n\n" +
		"I settle arguments, run games, and keep score. Everything happens through buttons:\n\n" +
		"💸 Who pays, coin flips, dice, dilemma picks\n" +
		"🗳️ Group polls with one vote per person\n" +
		"🧠 Trivia with a leaderboard\n" +
		"🍻 Never-have-I-ever with sip tracking\n" +
		"🔥 Roasts and compliments (karma applies)\n" +
		"🎵 Music discovery and 😂 fresh memes\n" +
		"🎮 A group adventure where not everyone survives\n" +
		"🎭 Ten selectable moods that change my voice\n\n" +
		"There are also a few hidden phrases. Type the right thing in chat and see.\n\n" +
		"Use `/menu` to get started."
	h.update(s, i, text, backRow("main_menu"))
}

func (h *Handler) moodMenu(s Session, i *discordgo.InteractionCreate) {
	chatID := i.ChannelID
	var current string
	var auto bool
	h.store.MutateUnder(chatID, func(g *state.GroupState) {
		current = g.Mood
		auto = g.AutoRotateMood
	})

	var buttons []discordgo.Button
	for _, name := range content.MoodNames {
		m := content.Moods[name]
		label := m.Emoji + " " + name
		if name == current {
			label += " ✓"
		}
		buttons = append(buttons, button(label, "set_mood_"+name))
	}
	autoLabel := "🔄 Auto-rotate: off"
	if auto {
		autoLabel = "🔄 Auto-rotate: on"
	}
	buttons = append(buttons, button(autoLabel, "toggle_auto_rotate"), button("🔙 Back", "main_menu"))

	h.update(s, i, "🎭 **Pick a mood**\n\nThe bot's personality for this chat.", rows(buttons...))
}

func (h *Handler) setMood(s Session, i *discordgo.InteractionCreate, name string) {
	mood := content.MoodOrDefault(name)
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		g.Mood = name
		g.AutoRotateMood = false
	})
	h.update(s, i, mood.Emoji+" Mood set! "+mood.Pick(h.rng), backRow("main_menu"))
}

func (h *Handler) toggleAutoRotate(s Session, i *discordgo.InteractionCreate) {
	var auto bool
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		g.AutoRotateMood = !g.AutoRotateMood
		auto = g.AutoRotateMood
	})
	text := "🔄 Auto-rotate is now off. The mood stays put."
	if auto {
		text = "🔄 Auto-rotate is now on. A fresh mood every day!"
	}
	h.update(s, i, text, backRow("mood_menu"))
}

// MessageCreate watches plain chat messages for hidden trigger phrases.
// The bot's own messages are ignored.
func (h *Handler) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.HandleMessage(&DiscordSession{s}, m)
}

func (h *Handler) HandleMessage(s Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == h.botID || m.Author.Bot {
		return
	}

	name := m.Author.GlobalName
	if name == "" {
		name = m.Author.Username
	}
	h.store.MutateUnder(m.ChannelID, func(g *state.GroupState) {
		g.Touch(state.Participant{ID: m.Author.ID, DisplayName: name})
	})

	lower := strings.ToLower(strings.TrimSpace(m.Content))
	for phrase, announcement := range content.HiddenTriggers {
		if !strings.Contains(lower, phrase) {
			continue
		}
		first := false
		h.store.MutateUnder(m.ChannelID, func(g *state.GroupState) {
			if !g.DiscoveredTriggers[phrase] {
				g.DiscoveredTriggers[phrase] = true
				first = true
			}
		})
		text := announcement
		if first {
			text = "🎉 **Secret discovered!**\n\n" + announcement
		}
		_, menuComponents := h.mainMenuView(m.ChannelID)
		if _, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
			Content:    text,
			Components: menuComponents,
		}); err != nil {
			log.Error().Err(err).Msg("error sending trigger announcement")
		}
		return
	}

	switch lower {
	case "menu", "start", "help":
		text, components := h.mainMenuView(m.ChannelID)
		if _, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
			Content:    text,
			Components: components,
		}); err != nil {
			log.Error().Err(err).Msg("error sending menu")
		}
	}
}
