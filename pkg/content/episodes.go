package content

// Scene kinds. A narrative scene only continues; a choice scene branches into
// consequences; a challenge scene is either a trivia sub-question or a dare.
type SceneKind string

const (
	SceneNarrative SceneKind = "narrative"
	SceneChoice    SceneKind = "choice"
	SceneTrivia    SceneKind = "trivia"
	SceneDare      SceneKind = "dare"
)

// Consequence tags a choice option's mechanical effect.
type Consequence string

const (
	ConsequenceNone      Consequence = ""
	ConsequenceSacrifice Consequence = "sacrifice" // one random active crew member is lost
	ConsequenceBonding   Consequence = "bonding"
	ConsequenceShortcut  Consequence = "shortcut"
	ConsequenceDetour    Consequence = "detour"
)

type ChoiceOption struct {
	Label       string
	Consequence Consequence
}

type Scene struct {
	Kind SceneKind
	Text string

	// choice scenes
	Options []ChoiceOption

	// trivia scenes
	Question string
	Answers  []string
	Correct  string // may be WildcardAnswer

	// dare scenes
	Dare string
}

type Episode struct {
	Title  string
	Scenes []Scene
}

// Episodes is the fixed adventure campaign. Crew members get eliminated along
// the way; whoever is left at the end of the last episode survives.
var Episodes = []Episode{
	{
		Title: "🚂 The Trans-Siberian Express",
		Scenes: []Scene{
			{
				Kind: SceneNarrative,
				Text: "Your crew boards the midnight Trans-Siberian Express. Somewhere between the samovar car and the endless birch forest, the conductor whispers: 'This train does not stop until someone wins.'",
			},
			{
				Kind: SceneChoice,
				Text: "The dining car has one last portion of borscht, and the whole crew is starving. The babushka guarding the pot demands a decision.",
				Options: []ChoiceOption{
					{Label: "🥣 Share it in tiny spoonfuls", Consequence: ConsequenceBonding},
					{Label: "🃏 Play cards for it", Consequence: ConsequenceDetour},
					{Label: "😈 Offer her a crew member as kitchen help", Consequence: ConsequenceSacrifice},
				},
			},
			{
				Kind:     SceneTrivia,
				Text:     "A suspicious man in a fur hat blocks the corridor. 'Answer, or the train stops for no one.'",
				Question: "Which lake does the railway skirt on its way east?",
				Answers:  []string{"Lake Baikal", "Lake Ladoga", "Lake Onega", "The Caspian Sea"},
				Correct:  "Lake Baikal",
			},
			{
				Kind: SceneDare,
				Text: "The restaurant car erupts into song and the accordion player points straight at your crew.",
				Dare: "Someone must send a voice message singing one line of any song. Right now.",
			},
			{
				Kind: SceneNarrative,
				Text: "Dawn over the steppe. The train slows at a station with no name, and a paper crane rests on the windowsill. Next stop: Tokyo, somehow.",
			},
		},
	},
	{
		Title: "🌃 Neon Tokyo Night",
		Scenes: []Scene{
			{
				Kind: SceneNarrative,
				Text: "The crew steps off into Shinjuku at 2 AM. Vending machines hum, neon drips down the wet streets, and a capsule hotel has exactly enough pods... minus one.",
			},
			{
				Kind: SceneChoice,
				Text: "A yakuza-looking gentleman offers to guide you to the legendary ramen shop that 'does not exist on maps'. His price is negotiable.",
				Options: []ChoiceOption{
					{Label: "💴 Pay him in arcade tokens", Consequence: ConsequenceDetour},
					{Label: "🍜 Trust him and follow", Consequence: ConsequenceShortcut},
					{Label: "🙇 Leave someone behind as collateral", Consequence: ConsequenceSacrifice},
					{Label: "🏃 Run into the nearest karaoke box", Consequence: ConsequenceBonding},
				},
			},
			{
				Kind:     SceneTrivia,
				Text:     "The ramen master will only serve those who prove their worth.",
				Question: "What do you shout before digging in?",
				Answers:  []string{"Itadakimasu!", "Kanpai!", "Banzai!", "Omakase!"},
				Correct:  "Itadakimasu!",
			},
			{
				Kind:     SceneTrivia,
				Text:     "The karaoke machine asks a question with no wrong answer. It just wants to feel included.",
				Question: "What's the best song to close the night with?",
				Answers:  []string{"Anime opening", "80s city pop", "Power ballad", "Whatever's already playing"},
				Correct:  WildcardAnswer,
			},
			{
				Kind: SceneDare,
				Text: "Golden Gai's tiniest bar has a house rule: new guests perform or leave.",
				Dare: "Someone must post their most recent photo in the chat. No retakes.",
			},
		},
	},
	{
		Title: "🏔️ The Final Summit",
		Scenes: []Scene{
			{
				Kind: SceneNarrative,
				Text: "A helicopter drops what's left of the crew on a snow ridge between two worlds. The summit shrine holds one question and one prize: eternal bragging rights in this chat.",
			},
			{
				Kind: SceneChoice,
				Text: "The rope bridge ahead is rated for 'fewer people than you currently have'. The wind picks up.",
				Options: []ChoiceOption{
					{Label: "🪢 Cross one by one, slowly", Consequence: ConsequenceBonding},
					{Label: "⚖️ Lighten the load", Consequence: ConsequenceSacrifice},
					{Label: "🏔️ Take the long ice path", Consequence: ConsequenceDetour},
				},
			},
			{
				Kind:     SceneTrivia,
				Text:     "The shrine guardian speaks: 'One question stands between you and glory.'",
				Question: "What is the traditional Russian drink toast?",
				Answers:  []string{"Za zdorovye!", "Kanpai!", "Prost!", "Cheers!"},
				Correct:  "Za zdorovye!",
			},
			{
				Kind: SceneDare,
				Text: "The shrine demands a final offering of humility before it opens.",
				Dare: "Someone must change their nickname to 'Summit Snack' for one hour.",
			},
			{
				Kind: SceneNarrative,
				Text: "The shrine doors open onto a sunrise that looks suspiciously like a desktop wallpaper. The survivors carve their names into the ice. The mountain approves.",
			},
		},
	},
}
