package bot

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"decisionbot/pkg/content"
	"decisionbot/pkg/state"
)

// questionTTL is how long a trivia question stays answerable.
const questionTTL = 2 * time.Minute

func (h *Handler) triviaMenu(s Session, i *discordgo.InteractionCreate) {
	components := rows(
		button("🇷🇺 Russian culture", "trivia_start_russian"),
		button("🇯🇵 Japanese culture", "trivia_start_japanese"),
		button("🎬 Pop culture", "trivia_start_pop"),
		button("🎲 Anything goes", "trivia_start_all"),
		button("🔙 Back", "main_menu"),
	)
	h.update(s, i, "🧠 **Trivia time!**\n\nPick a category. Right answers earn points, wrong ones earn shame.", components)
}

func (h *Handler) triviaStart(s Session, i *discordgo.InteractionCreate, category string) {
	user := interactionUser(i)
	pool := content.QuestionsFor(category)
	q := pool[h.rng.Intn(len(pool))]
	qid := uuid.NewString()

	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		g.ActiveQuestions[user.ID] = &state.ActiveQuestion{
			ID:       qid,
			Question: q,
			AskedAt:  time.Now(),
		}
	})

	var buttons []discordgo.Button
	for idx, opt := range q.Options {
		buttons = append(buttons, button(opt, fmt.Sprintf("trivia_answer_%s_%d", qid, idx)))
	}
	buttons = append(buttons, button("🔙 Back", "trivia_menu"))

	h.update(s, i, fmt.Sprintf("🧠 **%s**\n\n%s", user.DisplayName, q.Text), rows(buttons...))
}

func (h *Handler) triviaAnswer(s Session, i *discordgo.InteractionCreate, questionID string, option int) {
	user := interactionUser(i)
	mood := h.moodOf(i.ChannelID)

	var (
		found   bool
		expired bool
		correct bool
		answer  string
		score   int
	)
	h.store.MutateUnder(i.ChannelID, func(g *state.GroupState) {
		aq, ok := g.ActiveQuestions[user.ID]
		if !ok || aq.ID != questionID {
			return
		}
		found = true
		delete(g.ActiveQuestions, user.ID)
		if time.Since(aq.AskedAt) > questionTTL {
			expired = true
			return
		}
		q := aq.Question
		answer = q.Answer
		if q.Answer == content.WildcardAnswer {
			correct = true
		} else if option >= 0 && option < len(q.Options) && q.Options[option] == q.Answer {
			correct = true
		}
		if correct {
			g.TriviaScores[user.ID]++
		}
		score = g.TriviaScores[user.ID]
	})

	switch {
	case !found:
		// someone pressed a button on another player's question, or a
		// question already answered
		h.update(s, i, "🧐 That question isn't yours to answer. Grab your own!", backRow("trivia_menu"))
	case expired:
		h.update(s, i, "⏰ Question expired! Faster next time.", backRow("trivia_menu"))
	case correct && answer == content.WildcardAnswer:
		h.update(s, i, fmt.Sprintf("%s 🃏 Trick question — every answer counts! **%s** gets the point anyway. Score: **%d**",
			mood.Emoji, user.DisplayName, score), backRow("trivia_menu"))
	case correct:
		h.update(s, i, fmt.Sprintf("%s ✅ Correct, **%s**! Score: **%d**", mood.Emoji, user.DisplayName, score), backRow("trivia_menu"))
	default:
		h.update(s, i, fmt.Sprintf("%s ❌ Nope! The answer was **%s**. Score stays at **%d**.", mood.Emoji, answer, score), backRow("trivia_menu"))
	}
}

// triviaLeaderboard renders scores high to low, ties broken by name.
func triviaLeaderboard(g *state.GroupState) string {
	type row struct {
		name  string
		score int
	}
	var entries []row
	for id, sc := range g.TriviaScores {
		entries = append(entries, row{g.DisplayName(id), sc})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].score != entries[b].score {
			return entries[a].score > entries[b].score
		}
		return entries[a].name < entries[b].name
	})

	if len(entries) == 0 {
		return "_No trivia played yet._"
	}
	var b strings.Builder
	medals := []string{"🥇", "🥈", "🥉"}
	for idx, e := range entries {
		medal := "▫️"
		if idx < len(medals) {
			medal = medals[idx]
		}
		fmt.Fprintf(&b, "%s %s — %d\n", medal, e.name, e.score)
	}
	return b.String()
}
