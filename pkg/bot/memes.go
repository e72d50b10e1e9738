package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"decisionbot/pkg/state"
)

// All meme buttons feed the same random fetcher; the variants exist so the
// menu feels bigger than it is.
func (h *Handler) memeMenu(s Session, i *discordgo.InteractionCreate) {
	var total int
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		total = g.MemeStats.Total
	})
	text := "😂 **Meme machine**\n\nFresh memes from Russian Reddit communities!"
	if total > 0 {
		text += fmt.Sprintf("\n\n🎭 Memes shared: %d", total)
	}
	components := rows(
		button("🎲 Random", "meme_random"),
		button("🔥 Hot", "meme_hot"),
		button("👑 Top", "meme_top"),
		button("🇷🇺 Russia", "meme_russia"),
		button("😂 Pikabu", "meme_pikabu"),
		button("📊 Stats", "meme_stats"),
		button("🔙 Back", "main_menu"),
	)
	h.update(s, i, text, components)
}

var memeLoadingMessages = []string{
	"🇷🇺 Searching Russian internet for memes... 🔍",
	"🤖 Consulting babushka's meme collection... 👵",
	"⚡ Downloading from Siberian servers... 🌨️",
	"🎭 Asking Russian Reddit for their finest... 🎪",
}

func (h *Handler) memeFetch(s Session, i *discordgo.InteractionCreate) {
	h.update(s, i, memeLoadingMessages[h.rng.Intn(len(memeLoadingMessages))], nil)

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()
	meme, ok := h.memes.Fetch(ctx)

	if !ok {
		h.edit(s, i, "😅 **No memes found right now!**\n\nReddit might be busy or the recent posts had no images. Try again!", rows(
			button("🔄 Try Again", "meme_random"),
			button("🔙 Back", "meme_menu"),
		))
		return
	}

	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		g.MemeStats.Record(meme.Subreddit, meme.Title)
	})

	embed := &discordgo.MessageEmbed{
		Title: meme.Title,
		URL:   meme.RedditURL(),
		Image: &discordgo.MessageEmbedImage{URL: meme.URL},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("r/%s • ⬆️ %d", meme.Subreddit, meme.Upvotes),
		},
	}
	h.editEmbed(s, i, "", embed, rows(
		button("🔁 Another one", "meme_random"),
		button("🔙 Back", "meme_menu"),
	))
}

func (h *Handler) memeStats(s Session, i *discordgo.InteractionCreate) {
	var body string
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		body = mediaStatsText(&g.MemeStats, "memes", "No memes fetched yet. Fix that!")
	})
	h.update(s, i, "📊 **Meme stats**\n\n"+body, backRow("meme_menu"))
}
