package bot

import (
	"strconv"
	"strings"
)

// Kind enumerates every interaction the bot understands. Custom IDs follow
// the <feature>_<action>[_<qualifier>...] convention; qualifiers are parsed
// into typed Action fields here, never split by position at call sites.
type Kind int

const (
	KindUnknown Kind = iota

	KindMainMenu
	KindWhoPays
	KindCoinFlip
	KindRollDice
	KindVoteMenu
	KindChooseMenu
	KindTriviaMenu
	KindMusicMenu
	KindMemeMenu
	KindDrinkingMenu
	KindRoastMenu
	KindGamesMenu
	KindMoodMenu
	KindStatsMenu

	KindMusicFetch
	KindMusicStats
	KindMemeFetch
	KindMemeStats

	KindDrinkNever
	KindDrinkGuilty
	KindDrinkInnocent
	KindDrinkFlip
	KindDrinkStats

	KindTriviaStart
	KindTriviaAnswer

	KindVoteStart
	KindVoteOption
	KindVoteResults
	KindVoteClear

	KindRoastMe
	KindRoastRandom
	KindComplimentMe
	KindComplimentRandom

	KindSetMood
	KindToggleAutoRotate

	KindChoosePick

	KindAdvStart
	KindAdvContinue
	KindAdvChoice
	KindAdvAnswer
	KindAdvDareComplete
	KindAdvDareSkip
	KindAdvRestart
	KindAdvStats
)

// Action is one parsed interaction.
type Action struct {
	Kind       Kind
	Category   string // music/trivia category
	PollKind   string
	Mood       string
	QuestionID string
	Option     int
}

var exactActions = map[string]Kind{
	"main_menu":          KindMainMenu,
	"who_pays":           KindWhoPays,
	"coin_flip":          KindCoinFlip,
	"roll_dice":          KindRollDice,
	"vote_menu":          KindVoteMenu,
	"choose_menu":        KindChooseMenu,
	"trivia_menu":        KindTriviaMenu,
	"music_menu":         KindMusicMenu,
	"meme_menu":          KindMemeMenu,
	"drinking_menu":      KindDrinkingMenu,
	"roast_menu":         KindRoastMenu,
	"games_menu":         KindGamesMenu,
	"mood_menu":          KindMoodMenu,
	"stats_menu":         KindStatsMenu,
	"music_stats":        KindMusicStats,
	"meme_random":        KindMemeFetch,
	"meme_hot":           KindMemeFetch,
	"meme_top":           KindMemeFetch,
	"meme_russia":        KindMemeFetch,
	"meme_pikabu":        KindMemeFetch,
	"meme_stats":         KindMemeStats,
	"drink_never":        KindDrinkNever,
	"drink_guilty":       KindDrinkGuilty,
	"drink_innocent":     KindDrinkInnocent,
	"drink_flip":         KindDrinkFlip,
	"drink_stats":        KindDrinkStats,
	"vote_results":       KindVoteResults,
	"vote_clear":         KindVoteClear,
	"roast_me":           KindRoastMe,
	"roast_random":       KindRoastRandom,
	"compliment_me":      KindComplimentMe,
	"compliment_random":  KindComplimentRandom,
	"toggle_auto_rotate": KindToggleAutoRotate,
	"adv_start":          KindAdvStart,
	"adv_continue":       KindAdvContinue,
	"adv_dare_complete":  KindAdvDareComplete,
	"adv_dare_skip":      KindAdvDareSkip,
	"adv_restart":        KindAdvRestart,
	"adv_stats":          KindAdvStats,
}

var pollKinds = map[string]bool{"food": true, "bar": true, "activity": true, "random": true}

// ParseAction maps a custom ID to a typed action. Unknown IDs report false;
// the caller logs and drops them, which is the intended forward-compat
// behavior for stale buttons.
func ParseAction(id string) (Action, bool) {
	if kind, ok := exactActions[id]; ok {
		return Action{Kind: kind}, true
	}

	if rest, ok := strings.CutPrefix(id, "ytmusic_"); ok && rest != "" {
		return Action{Kind: KindMusicFetch, Category: rest}, true
	}
	if rest, ok := strings.CutPrefix(id, "trivia_start_"); ok && rest != "" {
		return Action{Kind: KindTriviaStart, Category: rest}, true
	}
	if rest, ok := strings.CutPrefix(id, "trivia_answer_"); ok {
		// trivia_answer_<uuid>_<option>
		qid, opt, found := strings.Cut(rest, "_")
		if !found {
			return Action{}, false
		}
		n, err := strconv.Atoi(opt)
		if err != nil {
			return Action{}, false
		}
		return Action{Kind: KindTriviaAnswer, QuestionID: qid, Option: n}, true
	}
	if rest, ok := strings.CutPrefix(id, "vote_option_"); ok {
		// vote_option_<kind>_<option>
		kind, opt, found := strings.Cut(rest, "_")
		if !found || !pollKinds[kind] {
			return Action{}, false
		}
		n, err := strconv.Atoi(opt)
		if err != nil {
			return Action{}, false
		}
		return Action{Kind: KindVoteOption, PollKind: kind, Option: n}, true
	}
	if rest, ok := strings.CutPrefix(id, "vote_"); ok && pollKinds[rest] {
		return Action{Kind: KindVoteStart, PollKind: rest}, true
	}
	if rest, ok := strings.CutPrefix(id, "set_mood_"); ok && rest != "" {
		return Action{Kind: KindSetMood, Mood: rest}, true
	}
	if rest, ok := strings.CutPrefix(id, "choose_"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Action{}, false
		}
		return Action{Kind: KindChoosePick, Option: n}, true
	}
	if rest, ok := strings.CutPrefix(id, "adv_choice_"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Action{}, false
		}
		return Action{Kind: KindAdvChoice, Option: n}, true
	}
	if rest, ok := strings.CutPrefix(id, "adv_answer_"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Action{}, false
		}
		return Action{Kind: KindAdvAnswer, Option: n}, true
	}

	return Action{}, false
}
