package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"decisionbot/pkg/content"
	"decisionbot/pkg/state"
)

// drinkSpeak rewrites drinking vocabulary for moods with a strong voice.
func drinkSpeak(moodName, text string) string {
	if moodName != "pirate" {
		return text
	}
	text = strings.ReplaceAll(text, "sip", "swig o' rum")
	return strings.ReplaceAll(text, "drink", "down some grog")
}

func drinkingRows() []discordgo.MessageComponent {
	return rows(
		button("😳 Guilty", "drink_guilty"),
		button("😇 Innocent", "drink_innocent"),
		button("➡️ Next one", "drink_never"),
		button("🪙 Flip for it", "drink_flip"),
		button("📊 Sip counts", "drink_stats"),
	)
}

func (h *Handler) drinkingMenu(s Session, i *discordgo.InteractionCreate) {
	components := rows(
		button("🍻 Never have I ever", "drink_never"),
		button("🪙 Flip for it", "drink_flip"),
		button("📊 Sip counts", "drink_stats"),
		button("🔙 Back", "main_menu"),
	)
	h.update(s, i, "🍻 **Drinking games**\n\nPlay responsibly. Or at least memorably.", components)
}

func (h *Handler) drinkNever(s Session, i *discordgo.InteractionCreate) {
	var moodName string
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		moodName = g.Mood
	})
	prompt := content.NeverHaveIEver[h.rng.Intn(len(content.NeverHaveIEver))]
	text := drinkSpeak(moodName, fmt.Sprintf("🍻 **Never have I ever...**\n\n%s\n\nGuilty parties take a sip!", prompt))
	h.update(s, i, text, drinkingRows())
}

func (h *Handler) drinkGuilty(s Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	var moodName string
	var sips int
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		moodName = g.Mood
		g.SipCounts[user.ID]++
		sips = g.SipCounts[user.ID]
	})
	text := drinkSpeak(moodName, fmt.Sprintf("😳 **%s** admits it and takes a sip! That's **%d** total. No judgment. Some judgment.", user.DisplayName, sips))
	h.update(s, i, text, drinkingRows())
}

func (h *Handler) drinkInnocent(s Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	h.update(s, i, fmt.Sprintf("😇 **%s** claims innocence. Sure, sure... we believe you.", user.DisplayName), drinkingRows())
}

func (h *Handler) drinkFlip(s Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	// heads wins, tails drinks
	face := "Heads"
	loses := false
	if h.rng.Intn(2) == 1 {
		face = "Tails"
		loses = true
	}

	var moodName string
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		moodName = g.Mood
		if loses {
			g.SipCounts[user.ID] += 2
		}
	})
	var text string
	if loses {
		text = drinkSpeak(moodName, fmt.Sprintf("🪙 Coin: **%s**\n❌ **%s** loses! Take 2 sips! 🍻", face, user.DisplayName))
	} else {
		text = fmt.Sprintf("🪙 Coin: **%s**\n✅ **%s** wins! No sips! 🎉", face, user.DisplayName)
	}
	h.update(s, i, text, drinkingRows())
}

func (h *Handler) drinkStats(s Session, i *discordgo.InteractionCreate) {
	var body string
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		body = sipLeaderboard(g)
	})
	h.update(s, i, "📊 **Sip counts**\n\n"+body, backRow("drinking_menu"))
}

func sipLeaderboard(g *state.GroupState) string {
	type row struct {
		name string
		sips int
	}
	var entries []row
	for id, n := range g.SipCounts {
		entries = append(entries, row{g.DisplayName(id), n})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].sips != entries[b].sips {
			return entries[a].sips > entries[b].sips
		}
		return entries[a].name < entries[b].name
	})
	if len(entries) == 0 {
		return "_Everyone's sober. Suspicious._"
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "🍺 %s — %d sips\n", e.name, e.sips)
	}
	return b.String()
}
