package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"decisionbot/pkg/content"
	"decisionbot/pkg/state"
)

func (h *Handler) roastMenu(s Session, i *discordgo.InteractionCreate) {
	components := rows(
		button("🔥 Roast me", "roast_me"),
		button("🎯 Roast someone", "roast_random"),
		button("💝 Compliment me", "compliment_me"),
		button("🌟 Compliment someone", "compliment_random"),
		button("🔙 Back", "main_menu"),
	)
	h.update(s, i, "🔥 **Roast corner**\n\nAll in good fun. Probably.", components)
}

// roast handles both roasts and compliments, self-targeted or at a random
// member. Karma moves down for a roast, up for a compliment.
func (h *Handler) roast(s Session, i *discordgo.InteractionCreate, compliment, self bool) {
	chatID := i.ChannelID
	user := interactionUser(i)

	var (
		moodName string
		target   state.Participant
		enough   = true
	)
	h.store.MutateUnder(chatID, func(g *state.GroupState) {
		moodName = g.Mood
		if self {
			target = user
		} else {
			members := g.MemberList()
			if len(members) < 2 {
				enough = false
				return
			}
			target = members[h.rng.Intn(len(members))]
		}
		if compliment {
			g.Karma[target.ID]++
		} else {
			g.Karma[target.ID]--
		}
	})

	if !enough {
		h.update(s, i, "🎯 Nobody else here to target! Invite a victim first.", backRow("roast_menu"))
		return
	}

	var pool []string
	if compliment {
		pool = content.ComplimentsFor(moodName)
	} else {
		pool = content.RoastsFor(moodName)
	}
	line := pool[h.rng.Intn(len(pool))]
	line = strings.ReplaceAll(line, "@{name}", "**"+target.DisplayName+"**")

	emoji := "🔥"
	if compliment {
		emoji = "💝"
	}
	h.update(s, i, emoji+" "+line, backRow("roast_menu"))
}
