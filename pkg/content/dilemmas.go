package content

// Dilemma is a canned either-or the bot settles with a random pick.
type Dilemma struct {
	Title   string
	Options []string
}

var Dilemmas = []Dilemma{
	{Title: "Tonight's dinner?", Options: []string{"🍕 Pizza", "🍜 Ramen", "🥟 Pelmeni", "🍱 Sushi"}},
	{Title: "Weekend plan?", Options: []string{"🎮 Gaming marathon", "🎬 Movie binge", "🏞️ Touch grass", "😴 Sleep all day"}},
	{Title: "Next drink?", Options: []string{"🍺 Beer", "🍶 Sake", "🥃 Vodka", "🧃 Juice (coward)"}},
	{Title: "Karaoke opener?", Options: []string{"🎤 Anime opening", "🎸 Classic rock", "🪗 Russian folk", "🎹 City pop"}},
	{Title: "Who's right in the argument?", Options: []string{"👈 The loud one", "👉 The quiet one", "🤷 Nobody", "🤖 The bot, obviously"}},
}
