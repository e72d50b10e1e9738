package content

import "math/rand"

// Mood is one of the bot's selectable personalities. The prefix emojis and
// reveal messages flavor every random-pick announcement.
type Mood struct {
	Emoji    string
	Prefixes []string
	Messages []string
}

// Pick returns a random reveal message in this mood's voice.
func (m Mood) Pick(r *rand.Rand) string {
	return m.Messages[r.Intn(len(m.Messages))]
}

// Prefix returns a random prefix emoji.
func (m Mood) Prefix(r *rand.Rand) string {
	return m.Prefixes[r.Intn(len(m.Prefixes))]
}

const DefaultMood = "normal"

var Moods = map[string]Mood{
	"normal": {
		Emoji:    "🎲",
		Prefixes: []string{"🎯", "✨", "🎲"},
		Messages: []string{"The universe has chosen...", "After careful consideration...", "The decision is made!", "And the chosen one is..."},
	},
	"dramatic": {
		Emoji:    "🎭",
		Prefixes: []string{"🎭", "⚡", "🌟"},
		Messages: []string{"In a twist of EPIC proportions...", "The DRAMATIC tension builds... and it's...", "By the power of FATE itself...", "The LEGENDARY choice falls upon..."},
	},
	"sarcastic": {
		Emoji:    "😏",
		Prefixes: []string{"😏", "🙄", "😎"},
		Messages: []string{"Oh what a surprise...", "Well, well, well... look who it is:", "Could it be anyone else? It's...", "Shocking absolutely no one..."},
	},
	"pirate": {
		Emoji:    "🏴‍☠️",
		Prefixes: []string{"🏴‍☠️", "⚓", "💰"},
		Messages: []string{"By Blackbeard's beard, it be...", "The treasure map points to...", "Shiver me timbers! The chosen sailor is...", "Arrr! The crew has decided on..."},
	},
	"space": {
		Emoji:    "🚀",
		Prefixes: []string{"🚀", "🛸", "🌌"},
		Messages: []string{"Ground control to...", "The cosmic algorithm selects...", "Houston, we have a decision! It's...", "From across the galaxy, the choice is..."},
	},
	"cyberpunk": {
		Emoji:    "🌃",
		Prefixes: []string{"⚡", "🔮", "💾"},
		Messages: []string{"Neural network computed...", "Cybernetic algorithms selected...", "Data streams converge on...", "The matrix has chosen..."},
	},
	"pokemon": {
		Emoji:    "⚡",
		Prefixes: []string{"⚡", "🔥", "💧"},
		Messages: []string{"Professor Oak announces...", "Wild decision appeared! It chose...", "Pokédex entry confirmed...", "The very best choice is..."},
	},
	"starwars": {
		Emoji:    "⭐",
		Prefixes: []string{"⭐", "⚔️", "🌌"},
		Messages: []string{"The Force has spoken...", "A disturbance in the Force... it's...", "Young Padawan, the choice is...", "From a galaxy far, far away..."},
	},
	"anime": {
		Emoji:    "🎌",
		Prefixes: []string{"⚡", "🌸", "🗾"},
		Messages: []string{"Senpai has chosen...", "Anime protagonist power selected...", "The power of friendship decided...", "Kawaii desu! The choice is..."},
	},
	"gaming": {
		Emoji:    "🎮",
		Prefixes: []string{"🎮", "🏆", "👾"},
		Messages: []string{"Achievement unlocked...", "Boss battle result...", "Critical hit on...", "Game over for everyone except..."},
	},
}

// MoodNames is the stable menu ordering; map iteration order won't do for
// rendering buttons.
var MoodNames = []string{
	"normal", "dramatic", "sarcastic", "pirate", "space",
	"cyberpunk", "pokemon", "starwars", "anime", "gaming",
}

// DayMoods drives the optional day-of-week rotation.
var DayMoods = []string{"cyberpunk", "pokemon", "starwars", "anime", "gaming", "dramatic", "pirate"}

// MoodOrDefault resolves unknown persona ids to the normal mood.
func MoodOrDefault(name string) Mood {
	if m, ok := Moods[name]; ok {
		return m
	}
	return Moods[DefaultMood]
}
