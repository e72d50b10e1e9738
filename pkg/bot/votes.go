package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"decisionbot/pkg/state"
)

// pollTemplates are the canned vote topics. The "random" kind shuffles in
// whatever the group most argues about.
var pollTemplates = map[string]struct {
	Question string
	Options  []string
}{
	"food":     {"🍽️ Where do we eat?", []string{"🍕 Pizza place", "🍜 Ramen bar", "🥟 Dumpling house", "🍔 Burger joint"}},
	"bar":      {"🍻 Which bar tonight?", []string{"🍺 The usual dive", "🍸 Fancy cocktails", "🎤 Karaoke bar", "🏠 Someone's kitchen"}},
	"activity": {"🎯 What's the plan?", []string{"🎳 Bowling", "🎬 Cinema", "🎮 Arcade", "🚶 Aimless wandering"}},
	"random":   {"🎲 Settle the argument!", []string{"✅ Yes", "❌ No", "🤷 Maybe", "🔁 Ask again later"}},
}

func (h *Handler) voteMenu(s Session, i *discordgo.InteractionCreate) {
	components := rows(
		button("🍽️ Food", "vote_food"),
		button("🍻 Bar", "vote_bar"),
		button("🎯 Activity", "vote_activity"),
		button("🎲 Random", "vote_random"),
		button("📊 Results", "vote_results"),
		button("🗑️ Clear polls", "vote_clear"),
		button("🔙 Back", "main_menu"),
	)
	h.update(s, i, "🗳️ **Group votes**\n\nStart a poll or check the tallies. One vote per person, no take-backs.", components)
}

func (h *Handler) voteStart(s Session, i *discordgo.InteractionCreate, kind string) {
	tpl, ok := pollTemplates[kind]
	if !ok {
		h.voteMenu(s, i)
		return
	}

	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		g.StartPoll(kind, tpl.Question, tpl.Options)
	})

	var buttons []discordgo.Button
	for idx, opt := range tpl.Options {
		buttons = append(buttons, button(opt, fmt.Sprintf("vote_option_%s_%d", kind, idx)))
	}
	buttons = append(buttons, button("📊 Results", "vote_results"), button("🔙 Back", "vote_menu"))

	h.update(s, i, tpl.Question+"\n\nCast your vote!", rows(buttons...))
}

func (h *Handler) voteOption(s Session, i *discordgo.InteractionCreate, kind string, option int) {
	user := interactionUser(i)

	// The rendered text and rows are built while the chat lock is held;
	// nothing reads the poll after the closure returns.
	var (
		voteErr error
		missing bool
		body    string
		comps   []discordgo.MessageComponent
	)
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		p, ok := g.ActivePolls[kind]
		if !ok {
			missing = true
			return
		}
		voteErr = p.Vote(user.ID, option)
		if voteErr == nil || errors.Is(voteErr, state.ErrAlreadyVoted) {
			body = renderPoll(p)
			comps = votingRows(kind, p)
		}
	})

	switch {
	case missing:
		h.update(s, i, "🗳️ That poll is gone. Start a new one!", backRow("vote_menu"))
	case errors.Is(voteErr, state.ErrAlreadyVoted):
		h.update(s, i, fmt.Sprintf("✋ Easy there, **%s** — one vote each!\n\n%s", user.DisplayName, body), comps)
	case errors.Is(voteErr, state.ErrBadOption):
		h.update(s, i, "🗳️ That option no longer exists. The poll must have changed.", backRow("vote_menu"))
	default:
		h.update(s, i, fmt.Sprintf("✅ **%s** voted!\n\n%s", user.DisplayName, body), comps)
	}
}

func votingRows(kind string, p *state.Poll) []discordgo.MessageComponent {
	var buttons []discordgo.Button
	for idx, opt := range p.Options {
		buttons = append(buttons, button(opt, fmt.Sprintf("vote_option_%s_%d", kind, idx)))
	}
	buttons = append(buttons, button("🔙 Back", "vote_menu"))
	return rows(buttons...)
}

func renderPoll(p *state.Poll) string {
	var b strings.Builder
	b.WriteString("**" + p.Question + "**\n")
	total := p.TotalVotes()
	for idx, opt := range p.Options {
		bar := strings.Repeat("▰", p.Votes[idx])
		fmt.Fprintf(&b, "%s — %d %s\n", opt, p.Votes[idx], bar)
	}
	fmt.Fprintf(&b, "_%d vote(s) total_", total)
	return b.String()
}

func (h *Handler) voteResults(s Session, i *discordgo.InteractionCreate) {
	var sections []string
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		for _, kind := range []string{"food", "bar", "activity", "random"} {
			if p, ok := g.ActivePolls[kind]; ok {
				sections = append(sections, renderPoll(p))
			}
		}
	})
	if len(sections) == 0 {
		h.update(s, i, "📊 No active polls. Start one!", backRow("vote_menu"))
		return
	}
	h.update(s, i, "📊 **Current results**\n\n"+strings.Join(sections, "\n\n"), backRow("vote_menu"))
}

func (h *Handler) voteClear(s Session, i *discordgo.InteractionCreate) {
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		g.ClearPolls()
	})
	h.update(s, i, "🗑️ All polls cleared. Fresh start!", backRow("vote_menu"))
}
