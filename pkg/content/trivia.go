package content

import "strings"

// WildcardAnswer marks a question where every submitted option counts as
// correct.
const WildcardAnswer = "any answer works"

type Question struct {
	Text     string
	Options  []string
	Answer   string
	Category string
}

const (
	CategoryRussian  = "Russian"
	CategoryJapanese = "Japanese"
	CategoryPop      = "Pop Culture"
)

// categoryAliases map the short menu ids to the display categories.
var categoryAliases = map[string]string{
	"russian":  CategoryRussian,
	"japanese": CategoryJapanese,
	"pop":      CategoryPop,
}

// QuestionsFor filters by the short category id; an empty or unknown
// category returns the full set.
func QuestionsFor(category string) []Question {
	canonical, ok := categoryAliases[strings.ToLower(category)]
	if !ok {
		return Questions
	}
	var out []Question
	for _, q := range Questions {
		if q.Category == canonical {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return Questions
	}
	return out
}

var Questions = []Question{
	// Russian culture
	{Text: "What's the traditional Russian soup made with beets?", Options: []string{"Borscht", "Solyanka", "Shchi", "Okroshka"}, Answer: "Borscht", Category: CategoryRussian},
	{Text: "Which Russian author wrote 'War and Peace'?", Options: []string{"Dostoevsky", "Tolstoy", "Pushkin", "Chekhov"}, Answer: "Tolstoy", Category: CategoryRussian},
	{Text: "What does 'Спасибо' mean in English?", Options: []string{"Hello", "Goodbye", "Thank you", "Please"}, Answer: "Thank you", Category: CategoryRussian},
	{Text: "Which Russian dance is famous worldwide?", Options: []string{"Waltz", "Kazachok", "Tango", "Flamenco"}, Answer: "Kazachok", Category: CategoryRussian},
	{Text: "What's Russia's national animal?", Options: []string{"Wolf", "Eagle", "Bear", "Tiger"}, Answer: "Bear", Category: CategoryRussian},
	{Text: "What is the name of the Russian parliament?", Options: []string{"Duma", "Rada", "Sejm", "Senate"}, Answer: "Duma", Category: CategoryRussian},
	{Text: "Which city is known as the 'Venice of the North'?", Options: []string{"Moscow", "St. Petersburg", "Novgorod", "Kazan"}, Answer: "St. Petersburg", Category: CategoryRussian},
	{Text: "What does 'Da' mean in Russian?", Options: []string{"No", "Maybe", "Yes", "Hello"}, Answer: "Yes", Category: CategoryRussian},
	{Text: "Which Russian composer wrote 'Swan Lake'?", Options: []string{"Tchaikovsky", "Stravinsky", "Rachmaninoff", "Rimsky-Korsakov"}, Answer: "Tchaikovsky", Category: CategoryRussian},
	{Text: "What is the Russian currency?", Options: []string{"Ruble", "Hryvnia", "Kopeck", "Mark"}, Answer: "Ruble", Category: CategoryRussian},
	{Text: "Which Russian writer created detective Erast Fandorin?", Options: []string{"Boris Akunin", "Victor Pelevin", "Vladimir Sorokin", "Tatyana Tolstaya"}, Answer: "Boris Akunin", Category: CategoryRussian},
	{Text: "What is the name of the famous Russian theater in Moscow?", Options: []string{"Bolshoi", "Mariinsky", "Moscow Art", "Vakhtangov"}, Answer: "Bolshoi", Category: CategoryRussian},
	{Text: "Which Russian city was formerly called Leningrad?", Options: []string{"Moscow", "St. Petersburg", "Volgograd", "Kaliningrad"}, Answer: "St. Petersburg", Category: CategoryRussian},
	{Text: "What is the traditional Russian alcoholic drink?", Options: []string{"Vodka", "Beer", "Wine", "Whiskey"}, Answer: "Vodka", Category: CategoryRussian},
	{Text: "Which Russian author wrote 'The Brothers Karamazov'?", Options: []string{"Tolstoy", "Dostoevsky", "Pushkin", "Gogol"}, Answer: "Dostoevsky", Category: CategoryRussian},
	{Text: "What is the name of the Russian space program?", Options: []string{"Roscosmos", "Soyuz", "Mir", "Salyut"}, Answer: "Roscosmos", Category: CategoryRussian},
	{Text: "Which Russian leader introduced Perestroika?", Options: []string{"Lenin", "Stalin", "Gorbachev", "Yeltsin"}, Answer: "Gorbachev", Category: CategoryRussian},
	{Text: "What is the longest river in Russia?", Options: []string{"Volga", "Yenisei", "Lena", "Ob"}, Answer: "Lena", Category: CategoryRussian},
	{Text: "Which Russian scientist created the periodic table?", Options: []string{"Mendeleev", "Pavlov", "Lomonosov", "Sakharov"}, Answer: "Mendeleev", Category: CategoryRussian},
	{Text: "What is the name of the Russian equivalent of FBI?", Options: []string{"KGB", "FSB", "GRU", "SVR"}, Answer: "FSB", Category: CategoryRussian},

	// Japanese culture
	{Text: "What's the traditional Japanese garment called?", Options: []string{"Hanbok", "Kimono", "Cheongsam", "Sari"}, Answer: "Kimono", Category: CategoryJapanese},
	{Text: "Which Japanese city was the ancient capital?", Options: []string{"Tokyo", "Osaka", "Kyoto", "Hiroshima"}, Answer: "Kyoto", Category: CategoryJapanese},
	{Text: "What does 'Arigatou' mean?", Options: []string{"Hello", "Thank you", "Goodbye", "Sorry"}, Answer: "Thank you", Category: CategoryJapanese},
	{Text: "What's the Japanese art of paper folding?", Options: []string{"Ikebana", "Origami", "Bonsai", "Kendo"}, Answer: "Origami", Category: CategoryJapanese},
	{Text: "Which mountain is sacred in Japan?", Options: []string{"Mount Fuji", "Mount Aso", "Mount Tateyama", "Mount Hotaka"}, Answer: "Mount Fuji", Category: CategoryJapanese},
	{Text: "What is the Japanese word for 'cat'?", Options: []string{"Neko", "Inu", "Tori", "Sakana"}, Answer: "Neko", Category: CategoryJapanese},
	{Text: "What is the traditional Japanese tea ceremony called?", Options: []string{"Chado", "Sado", "Chanoyu", "All of these"}, Answer: "All of these", Category: CategoryJapanese},
	{Text: "Which Japanese martial art uses wooden swords?", Options: []string{"Kendo", "Judo", "Karate", "Aikido"}, Answer: "Kendo", Category: CategoryJapanese},
	{Text: "What does 'Sayonara' mean?", Options: []string{"Hello", "Thank you", "Goodbye", "Excuse me"}, Answer: "Goodbye", Category: CategoryJapanese},
	{Text: "What is the Japanese art of flower arranging?", Options: []string{"Origami", "Ikebana", "Bonsai", "Calligraphy"}, Answer: "Ikebana", Category: CategoryJapanese},
	{Text: "Which Japanese company makes the Prius?", Options: []string{"Honda", "Toyota", "Nissan", "Mazda"}, Answer: "Toyota", Category: CategoryJapanese},
	{Text: "What is the Japanese currency?", Options: []string{"Yen", "Won", "Yuan", "Ringgit"}, Answer: "Yen", Category: CategoryJapanese},
	{Text: "What does 'Kawaii' mean?", Options: []string{"Cool", "Cute", "Amazing", "Scary"}, Answer: "Cute", Category: CategoryJapanese},
	{Text: "Which Japanese city hosted the 2020 Olympics?", Options: []string{"Tokyo", "Osaka", "Kyoto", "Hiroshima"}, Answer: "Tokyo", Category: CategoryJapanese},
	{Text: "What is the traditional Japanese writing with Chinese characters?", Options: []string{"Hiragana", "Katakana", "Kanji", "Romaji"}, Answer: "Kanji", Category: CategoryJapanese},
	{Text: "What is the Japanese word for 'cherry blossom'?", Options: []string{"Sakura", "Momiji", "Tsubaki", "Ajisai"}, Answer: "Sakura", Category: CategoryJapanese},
	{Text: "Which Japanese martial art means 'gentle way'?", Options: []string{"Karate", "Judo", "Kendo", "Aikido"}, Answer: "Judo", Category: CategoryJapanese},
	{Text: "What is the traditional Japanese religion?", Options: []string{"Buddhism", "Shinto", "Christianity", "Islam"}, Answer: "Shinto", Category: CategoryJapanese},
	{Text: "What does 'Otaku' refer to?", Options: []string{"Student", "Fan/Enthusiast", "Worker", "Teacher"}, Answer: "Fan/Enthusiast", Category: CategoryJapanese},
	{Text: "Which Japanese island is the largest?", Options: []string{"Hokkaido", "Honshu", "Kyushu", "Shikoku"}, Answer: "Honshu", Category: CategoryJapanese},

	// Pop culture
	{Text: "Who directed the movie 'Spirited Away'?", Options: []string{"Hayao Miyazaki", "Makoto Shinkai", "Satoshi Kon", "Mamoru Hosoda"}, Answer: "Hayao Miyazaki", Category: CategoryPop},
	{Text: "What's the highest grossing anime movie?", Options: []string{"Your Name", "Demon Slayer", "Spirited Away", "Princess Mononoke"}, Answer: "Demon Slayer", Category: CategoryPop},
	{Text: "In what game do you 'catch 'em all'?", Options: []string{"Digimon", "Pokemon", "Yu-Gi-Oh", "Monster Hunter"}, Answer: "Pokemon", Category: CategoryPop},
	{Text: "Which studio made 'Attack on Titan'?", Options: []string{"Mappa", "Pierrot", "Madhouse", "Bones"}, Answer: "Mappa", Category: CategoryPop},
	{Text: "Which anime character is known for saying 'Believe it!'?", Options: []string{"Goku", "Naruto", "Luffy", "Ichigo"}, Answer: "Naruto", Category: CategoryPop},
	{Text: "What is the name of Pikachu's trainer?", Options: []string{"Ash", "Gary", "Brock", "Misty"}, Answer: "Ash", Category: CategoryPop},
	{Text: "Which manga is about a boy who can turn into a chainsaw?", Options: []string{"Chainsaw Man", "Demon Slayer", "Jujutsu Kaisen", "Tokyo Ghoul"}, Answer: "Chainsaw Man", Category: CategoryPop},
	{Text: "What is the name of the Death God in Death Note?", Options: []string{"Ryuk", "Light", "L", "Misa"}, Answer: "Ryuk", Category: CategoryPop},
	{Text: "Which anime features a boy who wants to be the Hokage?", Options: []string{"One Piece", "Naruto", "Bleach", "Dragon Ball"}, Answer: "Naruto", Category: CategoryPop},
	{Text: "What is the name of the main character in One Punch Man?", Options: []string{"Saitama", "Genos", "King", "Mumen"}, Answer: "Saitama", Category: CategoryPop},
	{Text: "Which video game features Mario?", Options: []string{"Sonic", "Super Mario", "Zelda", "Metroid"}, Answer: "Super Mario", Category: CategoryPop},
	{Text: "What console is made by Sony?", Options: []string{"Xbox", "Nintendo", "PlayStation", "Steam"}, Answer: "PlayStation", Category: CategoryPop},
	{Text: "Which movie features the character Neo?", Options: []string{"The Matrix", "Inception", "Blade Runner", "Minority Report"}, Answer: "The Matrix", Category: CategoryPop},
	{Text: "Who created the Marvel character Spider-Man?", Options: []string{"Stan Lee", "Jack Kirby", "Steve Ditko", "Both A and C"}, Answer: "Both A and C", Category: CategoryPop},
	{Text: "What is the highest grossing movie of all time?", Options: []string{"Avatar", "Avengers Endgame", "Titanic", "Star Wars"}, Answer: "Avatar", Category: CategoryPop},
	{Text: "Which social media platform uses hashtags?", Options: []string{"Facebook", "Twitter", "Instagram", "All of these"}, Answer: "All of these", Category: CategoryPop},
	{Text: "What does 'lol' stand for?", Options: []string{"Lots of love", "Laugh out loud", "Life of luxury", "Lord of lords"}, Answer: "Laugh out loud", Category: CategoryPop},
	{Text: "Which streaming service created Stranger Things?", Options: []string{"Netflix", "Hulu", "Disney+", "Amazon Prime"}, Answer: "Netflix", Category: CategoryPop},
	{Text: "What is the name of Harry Potter's owl?", Options: []string{"Hedwig", "Crookshanks", "Scabbers", "Fawkes"}, Answer: "Hedwig", Category: CategoryPop},
}
