package bot

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"decisionbot/pkg/state"
)

func (h *Handler) musicMenu(s Session, i *discordgo.InteractionCreate) {
	components := rows(
		button("🇷🇺 Russian", "ytmusic_russian"),
		button("🇯🇵 Japanese", "ytmusic_japanese"),
		button("🎌 Anime", "ytmusic_anime"),
		button("🌍 Global hits", "ytmusic_global"),
		button("🎲 Surprise me", "ytmusic_random"),
		button("📊 Music stats", "music_stats"),
		button("🔙 Back", "main_menu"),
	)
	h.update(s, i, "🎵 **Music discovery**\n\nPick a vibe and I'll dig something up.", components)
}

func (h *Handler) musicFetch(s Session, i *discordgo.InteractionCreate, category string) {
	h.update(s, i, "🎶 Digging through the crates...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	song := h.music.Fetch(ctx, category)

	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		g.MusicStats.Record(category, song.Title)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "🎵 **%s**\nby **%s**\n", song.Title, song.Artist)
	if song.Published != "" {
		fmt.Fprintf(&b, "📅 %s\n", song.Published)
	}
	if song.URL != "" {
		fmt.Fprintf(&b, "\n▶️ %s", song.URL)
	}
	if song.Source == "fallback" {
		b.WriteString("\n\n_A certified classic from the vault._")
	}

	h.edit(s, i, b.String(), rows(
		button("🔁 Another one", "ytmusic_"+category),
		button("🔙 Back", "music_menu"),
	))
}

func (h *Handler) musicStats(s Session, i *discordgo.InteractionCreate) {
	var body string
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		body = mediaStatsText(&g.MusicStats, "tracks", "No music fetched yet. Press a button!")
	})
	h.update(s, i, "📊 **Music stats**\n\n"+body, backRow("music_menu"))
}

func mediaStatsText(m *state.MediaStats, noun, empty string) string {
	if m.Total == 0 {
		return "_" + empty + "_"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Total %s: **%d**\n\n", noun, m.Total)
	keys := make([]string, 0, len(m.ByKey))
	for key := range m.ByKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, "▫️ %s — %d\n", key, m.ByKey[key])
	}
	if len(m.Recent) > 0 {
		b.WriteString("\n**Recent:**\n")
		for _, title := range m.Recent {
			b.WriteString("• " + title + "\n")
		}
	}
	return b.String()
}
