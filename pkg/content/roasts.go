package content

// Roast and compliment templates keyed by mood. Templates use @{name} as the
// display-name placeholder; moods without a dedicated set fall back to
// normal.

var Roasts = map[string][]string{
	"normal": {
		"@{name}, you avoid paying bills like Neo dodges bullets in The Matrix!",
		"@{name}, your wallet has more cobwebs than an abandoned house!",
		"@{name}, you're so cheap, you'd haggle with a vending machine!",
		"@{name}, your generosity is rarer than a unicorn!",
		"@{name}, you dodge bills like you're playing Dark Souls on expert mode!",
	},
	"sarcastic": {
		"@{name}, wow, another *shocking* display of generosity from you!",
		"@{name}, your wallet must be allergic to leaving your pocket!",
		"@{name}, oh look, it's Mr. 'I forgot my wallet' again!",
		"@{name}, you're so generous, Scrooge McDuck takes notes!",
		"@{name}, your contribution to group expenses is *absolutely legendary*!",
	},
	"pirate": {
		"@{name}, ye be tighter with yer doubloons than a sailor's knot!",
		"@{name}, yer wallet be more buried than Blackbeard's treasure!",
		"@{name}, ye avoid paying like a kraken avoids dry land!",
		"@{name}, yer generosity be as rare as a mermaid in Moscow!",
		"@{name}, ye'd argue with Davy Jones over the price of fish!",
	},
	"dramatic": {
		"@{name}, your wallet remains SEALED by the ancient curse of cheapness!",
		"@{name}, the EPIC battle between you and your money continues!",
		"@{name}, BEHOLD! The legendary master of bill avoidance!",
		"@{name}, your generosity is the stuff of MYTHS and LEGENDS!",
		"@{name}, even Greek gods would be AMAZED by your frugality!",
	},
	"cyberpunk": {
		"@{name}, your credit chip is more encrypted than government data!",
		"@{name}, you hack your way out of payments better than any netrunner!",
		"@{name}, your wallet.exe has stopped working permanently!",
		"@{name}, even AI can't calculate your level of cheapness!",
		"@{name}, you dodge bills like bullets in bullet-time!",
	},
	"anime": {
		"@{name}, your tsundere relationship with money is showing!",
		"@{name}, you protect your wallet like it's the last Dragon Ball!",
		"@{name}, your generosity power level is... it's under 9000!",
		"@{name}, even Saitama couldn't punch sense into your spending!",
		"@{name}, you're the main character of 'My Wallet Can't Be This Empty!'",
	},
}

var Compliments = map[string][]string{
	"normal": {
		"@{name}, you're more reliable than a Swiss watch!",
		"@{name}, your kindness could melt the coldest Russian winter!",
		"@{name}, you're as awesome as finding the perfect ramen spot!",
		"@{name}, your vibe is more refreshing than cherry blossoms!",
		"@{name}, you're smoother than sake on a Saturday night!",
	},
	"sarcastic": {
		"@{name}, you're actually... *surprisingly* not terrible today!",
		"@{name}, congratulations, you've achieved basic human decency!",
		"@{name}, well look at you being *almost* impressive!",
		"@{name}, your existence isn't completely pointless! Amazing!",
		"@{name}, you've managed to not disappoint me for once!",
	},
	"pirate": {
		"@{name}, ye be as valuable as Spanish gold, matey!",
		"@{name}, yer heart be as big as the seven seas!",
		"@{name}, ye be a true treasure, worth more than all of Tortuga!",
		"@{name}, yer spirit shines brighter than the North Star!",
		"@{name}, ye be the finest sailor in all the Caribbean!",
	},
	"pokemon": {
		"@{name}, you're rarer than a shiny Pokémon!",
		"@{name}, your friendship power is super effective!",
		"@{name}, you're the very best, like no one ever was!",
		"@{name}, you've got the heart of a Pokémon master!",
		"@{name}, your kindness is legendary type!",
	},
}

func RoastsFor(mood string) []string {
	if r, ok := Roasts[mood]; ok {
		return r
	}
	return Roasts["normal"]
}

func ComplimentsFor(mood string) []string {
	if c, ok := Compliments[mood]; ok {
		return c
	}
	return Compliments["normal"]
}
