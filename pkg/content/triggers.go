package content

// HiddenTriggers maps free-text phrases to their unlock announcements. A
// message containing a trigger anywhere in it fires.
var HiddenTriggers = map[string]string{
	"konami":          "🕹️ **KONAMI CODE ACTIVATED!** 🕹️\nExtra karma for everyone!",
	"ninja":           "🥷 **NINJA MODE UNLOCKED!** 🥷\nStealth payments activated!",
	"legendary":       "🌟 **LEGENDARY STATUS!** 🌟\nYou're now a decision master!",
	"up up down down": "🎮 **CHEAT CODE ACCEPTED!** 🎮\nInfinite lives granted!",
	"sakura":          "🌸 **SAKURA POWER!** 🌸\nCherry blossom energy activated!",
}

// TriggerHints show up on roughly one menu open in ten.
var TriggerHints = []string{
	"🕵️ Try typing 'konami' for a classic surprise...",
	"🥷 There's a secret ninja command hiding in plain sight...",
	"🌟 Legend says typing 'legendary' might unlock something special...",
	"🎮 Gamers might want to try 'up up down down'...",
	"🌸 Something beautiful happens when you say the magic sakura word...",
}
