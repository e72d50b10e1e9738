package bot

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"decisionbot/pkg/content"
	"decisionbot/pkg/state"
)

func (h *Handler) whoPays(s Session, i *discordgo.InteractionCreate) {
	chatID := i.ChannelID
	mood := h.moodOf(chatID)

	var memberCount int
	var chosen string
	h.store.MutateUnder(chatID, func(g *state.GroupState) {
		members := g.MemberList()
		memberCount = len(members)
		if memberCount < 2 {
			return
		}
		p := members[h.rng.Intn(len(members))]
		chosen = p.DisplayName
		// paying the bill earns karma
		g.Karma[p.ID]++
	})

	if memberCount < 2 {
		h.update(s, i, "💸 I need at least two people in here before I point fingers. Get someone to press a button!", backRow("main_menu"))
		return
	}

	text := fmt.Sprintf("%s %s\n\n💸 **%s** pays today! %s",
		mood.Prefix(h.rng), mood.Pick(h.rng), chosen, mood.Emoji)
	h.suspenseReveal(s, i, text, backRow("main_menu"))
}

func (h *Handler) coinFlip(s Session, i *discordgo.InteractionCreate) {
	mood := h.moodOf(i.ChannelID)
	face := "🪙 **Heads!**"
	if h.rng.Intn(2) == 1 {
		face = "🪙 **Tails!**"
	}
	text := fmt.Sprintf("%s %s\n\n%s", mood.Prefix(h.rng), mood.Pick(h.rng), face)
	h.suspenseReveal(s, i, text, backRow("main_menu"))
}

func (h *Handler) rollDice(s Session, i *discordgo.InteractionCreate) {
	mood := h.moodOf(i.ChannelID)
	roll := h.rng.Intn(6) + 1
	text := fmt.Sprintf("%s %s\n\n🎲 You rolled a **%d**!", mood.Prefix(h.rng), mood.Pick(h.rng), roll)
	h.suspenseReveal(s, i, text, backRow("main_menu"))
}

func (h *Handler) chooseMenu(s Session, i *discordgo.InteractionCreate) {
	var buttons []discordgo.Button
	for idx, d := range content.Dilemmas {
		buttons = append(buttons, button(d.Title, "choose_"+strconv.Itoa(idx)))
	}
	buttons = append(buttons, button("🔙 Back", "main_menu"))
	h.update(s, i, "🤔 **Can't decide?**\n\nPick a dilemma and I'll settle it.", rows(buttons...))
}

func (h *Handler) choosePick(s Session, i *discordgo.InteractionCreate, idx int) {
	if idx < 0 || idx >= len(content.Dilemmas) {
		h.chooseMenu(s, i)
		return
	}
	mood := h.moodOf(i.ChannelID)
	d := content.Dilemmas[idx]
	pick := d.Options[h.rng.Intn(len(d.Options))]
	text := fmt.Sprintf("%s %s\n\n%s → **%s**", mood.Prefix(h.rng), mood.Pick(h.rng), d.Title, pick)
	h.suspenseReveal(s, i, text, backRow("choose_menu"))
}
