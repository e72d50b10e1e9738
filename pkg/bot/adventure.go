package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"decisionbot/pkg/adventure"
	"decisionbot/pkg/content"
	"decisionbot/pkg/state"
)

func (h *Handler) gamesMenu(s Session, i *discordgo.InteractionCreate) {
	components := rows(
		button("🚀 New adventure", "adv_start"),
		button("▶️ Continue", "adv_continue"),
		button("🔄 Restart episode", "adv_restart"),
		button("📊 Campaign stats", "adv_stats"),
		button("🔙 Back", "main_menu"),
	)
	h.update(s, i, "🎮 **Group adventure**\n\nA story where your friends are the crew and the crew doesn't always make it.", components)
}

// sceneView renders the current scene with its input buttons.
func sceneView(title string, sc *content.Scene, p *state.Progress, g *state.GroupState) (string, []discordgo.MessageComponent) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s", title, sc.Text)

	var buttons []discordgo.Button
	switch sc.Kind {
	case content.SceneNarrative:
		buttons = append(buttons, button("▶️ Continue", "adv_continue"))
	case content.SceneChoice:
		b.WriteString("\n\nWhat does the crew do?")
		for idx, opt := range sc.Options {
			buttons = append(buttons, button(opt.Label, "adv_choice_"+strconv.Itoa(idx)))
		}
	case content.SceneTrivia:
		fmt.Fprintf(&b, "\n\n❓ %s", sc.Question)
		for idx, ans := range sc.Answers {
			buttons = append(buttons, button(ans, "adv_answer_"+strconv.Itoa(idx)))
		}
	case content.SceneDare:
		fmt.Fprintf(&b, "\n\n🎯 **Dare:** %s", sc.Dare)
		buttons = append(buttons,
			button("💪 Done it", "adv_dare_complete"),
			button("🙈 Skip (risky!)", "adv_dare_skip"),
		)
	}

	active := p.ActiveCrew()
	names := make([]string, 0, len(active))
	for _, id := range active {
		names = append(names, g.DisplayName(id))
	}
	fmt.Fprintf(&b, "\n\n👥 Crew: %s", strings.Join(names, ", "))

	buttons = append(buttons, button("🔙 Menu", "games_menu"))
	return b.String(), rows(buttons...)
}

func (h *Handler) advStart(s Session, i *discordgo.InteractionCreate) {
	var (
		startErr error
		text     string
		comps    []discordgo.MessageComponent
	)
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		startErr = h.engine.Start(g)
		if startErr != nil {
			return
		}
		sc, err := h.engine.Current(g)
		if err != nil {
			startErr = err
			return
		}
		text, comps = sceneView(h.engine.EpisodeTitle(g), sc, &g.Adventure, g)
	})

	if errors.Is(startErr, adventure.ErrNotEnoughPlayers) {
		h.update(s, i, "🚀 An adventure needs a crew of at least two! Get someone else to press a button here first.", backRow("games_menu"))
		return
	}
	if startErr != nil {
		h.update(s, i, "🚀 Couldn't start the adventure. Try again!", backRow("games_menu"))
		return
	}
	h.update(s, i, "🚀 **The adventure begins!**\n\n"+text, comps)
}

// resultView renders the outcome of a scene submission: eliminations, episode
// rollovers, the next scene or the final summary.
func (h *Handler) resultView(g *state.GroupState, res adventure.Result, prelude string) (string, []discordgo.MessageComponent) {
	var b strings.Builder
	if prelude != "" {
		b.WriteString(prelude + "\n\n")
	}
	if res.EliminatedID != "" {
		fmt.Fprintf(&b, "💀 **%s** has been lost along the way!\n\n", g.DisplayName(res.EliminatedID))
	}
	if res.EpisodeCleared != "" {
		fmt.Fprintf(&b, "🏁 Episode cleared: %s\n\n", res.EpisodeCleared)
	}

	if res.Completed != nil {
		sum := res.Completed
		b.WriteString("🎉 **The adventure is over!**\n\n")
		if len(sum.Survivors) > 0 {
			names := make([]string, 0, len(sum.Survivors))
			for _, id := range sum.Survivors {
				names = append(names, g.DisplayName(id))
			}
			fmt.Fprintf(&b, "🏆 Survivors: %s\n", strings.Join(names, ", "))
		} else {
			b.WriteString("🪦 Nobody made it. Impressive, honestly.\n")
		}
		if len(sum.Eliminated) > 0 {
			names := make([]string, 0, len(sum.Eliminated))
			for _, id := range sum.Eliminated {
				names = append(names, g.DisplayName(id))
			}
			fmt.Fprintf(&b, "💀 Fallen: %s\n", strings.Join(names, ", "))
		}
		return b.String(), rows(button("🚀 Play again", "adv_start"), button("🔙 Menu", "games_menu"))
	}

	text, comps := sceneView(h.engine.EpisodeTitle(g), res.Scene, &g.Adventure, g)
	b.WriteString(text)
	return b.String(), comps
}

// submit runs one engine transition under the chat lock and renders whatever
// came out of it.
func (h *Handler) submit(s Session, i *discordgo.InteractionCreate, fn func(g *state.GroupState) (adventure.Result, string, error)) {
	var (
		text  string
		comps []discordgo.MessageComponent
		opErr error
	)
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		res, prelude, err := fn(g)
		if err != nil {
			opErr = err
			return
		}
		text, comps = h.resultView(g, res, prelude)
	})

	switch {
	case errors.Is(opErr, adventure.ErrNoAdventure):
		h.update(s, i, "🤷 No adventure in progress. Start one!", backRow("games_menu"))
	case errors.Is(opErr, adventure.ErrWrongScene):
		// stale button from an earlier scene; show where the story actually is
		h.advContinueCurrent(s, i)
	case opErr != nil:
		h.update(s, i, "🎮 That didn't work. Back to the menu!", backRow("games_menu"))
	default:
		h.update(s, i, text, comps)
	}
}

// advContinueCurrent re-renders the current scene without advancing.
func (h *Handler) advContinueCurrent(s Session, i *discordgo.InteractionCreate) {
	var (
		text  string
		comps []discordgo.MessageComponent
		opErr error
	)
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		sc, err := h.engine.Current(g)
		if err != nil {
			opErr = err
			return
		}
		text, comps = sceneView(h.engine.EpisodeTitle(g), sc, &g.Adventure, g)
	})
	if opErr != nil {
		h.update(s, i, "🤷 No adventure in progress. Start one!", backRow("games_menu"))
		return
	}
	h.update(s, i, text, comps)
}

func (h *Handler) advContinue(s Session, i *discordgo.InteractionCreate) {
	h.submit(s, i, func(g *state.GroupState) (adventure.Result, string, error) {
		sc, err := h.engine.Current(g)
		if err != nil {
			return adventure.Result{}, "", err
		}
		if sc.Kind != content.SceneNarrative {
			// Continue on a non-narrative scene just re-renders it.
			return adventure.Result{Scene: sc}, "", nil
		}
		res, err := h.engine.Advance(g)
		return res, "", err
	})
}

func (h *Handler) advChoice(s Session, i *discordgo.InteractionCreate, option int) {
	h.submit(s, i, func(g *state.GroupState) (adventure.Result, string, error) {
		res, err := h.engine.Choose(g, option)
		return res, "", err
	})
}

func (h *Handler) advAnswer(s Session, i *discordgo.InteractionCreate, option int) {
	h.submit(s, i, func(g *state.GroupState) (adventure.Result, string, error) {
		res, err := h.engine.AnswerTrivia(g, option)
		if err != nil {
			return res, "", err
		}
		prelude := "✅ Correct! The crew presses on."
		if !res.Correct {
			prelude = fmt.Sprintf("❌ Wrong! The answer was **%s**.", res.CorrectAnswer)
		} else if res.CorrectAnswer == content.WildcardAnswer {
			prelude = "🃏 Trick question! Every answer counts here."
		}
		return res, prelude, nil
	})
}

func (h *Handler) advDare(s Session, i *discordgo.InteractionCreate, skipped bool) {
	user := interactionUser(i)
	h.submit(s, i, func(g *state.GroupState) (adventure.Result, string, error) {
		res, err := h.engine.ResolveDare(g, user.ID, skipped)
		if err != nil {
			return res, "", err
		}
		prelude := fmt.Sprintf("💪 **%s** faced the dare head on!", user.DisplayName)
		if skipped {
			if res.EliminatedID != "" {
				prelude = fmt.Sprintf("🙈 **%s** chickened out... and fate collected its toll!", user.DisplayName)
			} else {
				prelude = fmt.Sprintf("🙈 **%s** chickened out but got away with it. This time.", user.DisplayName)
			}
		}
		return res, prelude, nil
	})
}

func (h *Handler) advRestart(s Session, i *discordgo.InteractionCreate) {
	var (
		text  string
		comps []discordgo.MessageComponent
		opErr error
	)
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		if err := h.engine.Restart(g); err != nil {
			opErr = err
			return
		}
		sc, err := h.engine.Current(g)
		if err != nil {
			opErr = err
			return
		}
		text, comps = sceneView(h.engine.EpisodeTitle(g), sc, &g.Adventure, g)
	})
	if opErr != nil {
		h.update(s, i, "🤷 No adventure to restart. Start one!", backRow("games_menu"))
		return
	}
	h.update(s, i, "🔄 **Episode restarted!** Eliminations undone, story rewound.\n\n"+text, comps)
}

func (h *Handler) advStats(s Session, i *discordgo.InteractionCreate) {
	var st state.AdventureStats
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		st = g.Adventure.Stats
	})
	text := fmt.Sprintf(
		"📊 **Campaign stats**\n\n"+
			"🚀 Adventures completed: **%d**\n"+
			"🏁 Episodes cleared: **%d**\n"+
			"🎯 Challenges faced: **%d**\n"+
			"💀 Eliminations: **%d**\n"+
			"🏆 Survivors: **%d** of **%d** players\n"+
			"✨ Successful missions: **%d**",
		st.AdventuresCompleted, st.EpisodesCleared, st.ChallengesCompleted,
		st.Eliminations, st.Survivors, st.TotalPlayers, st.SuccessfulMissions,
	)
	h.update(s, i, text, backRow("games_menu"))
}
