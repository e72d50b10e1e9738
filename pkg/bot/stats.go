package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"decisionbot/pkg/content"
	"decisionbot/pkg/state"
)

func (h *Handler) statsMenu(s Session, i *discordgo.InteractionCreate) {
	var b strings.Builder
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		mood := content.MoodOrDefault(g.Mood)
		fmt.Fprintf(&b, "📊 **Group stats** %s\n\n", mood.Emoji)
		fmt.Fprintf(&b, "👥 Known members: **%d**\n", len(g.Members))
		fmt.Fprintf(&b, "🗝️ Secrets found: **%d** of %d\n", len(g.DiscoveredTriggers), len(content.HiddenTriggers))
		fmt.Fprintf(&b, "🎵 Tracks fetched: **%d**\n", g.MusicStats.Total)
		fmt.Fprintf(&b, "😂 Memes fetched: **%d**\n\n", g.MemeStats.Total)

		b.WriteString("**🧠 Trivia leaderboard**\n")
		b.WriteString(triviaLeaderboard(g))

		b.WriteString("\n**⚖️ Karma**\n")
		b.WriteString(karmaBoard(g))
	})

	h.update(s, i, b.String(), backRow("main_menu"))
}

// karmaBoard lists karma high to low; paying the bill and compliments lift
// it, roasts drag it down.
func karmaBoard(g *state.GroupState) string {
	type row struct {
		name  string
		karma int
	}
	var entries []row
	for id, k := range g.Karma {
		entries = append(entries, row{g.DisplayName(id), k})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].karma != entries[b].karma {
			return entries[a].karma > entries[b].karma
		}
		return entries[a].name < entries[b].name
	})
	if len(entries) == 0 {
		return "_Everyone starts at zero._"
	}
	var b strings.Builder
	for _, e := range entries {
		sign := "👍"
		if e.karma < 0 {
			sign = "👎"
		}
		fmt.Fprintf(&b, "%s %s — %+d\n", sign, e.name, e.karma)
	}
	return b.String()
}
