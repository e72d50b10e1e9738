package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// SlashCommands are the two entry points; everything else happens through
// message components.
var SlashCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "menu",
		Description: "Open the decision menu",
	},
	{
		Name:        "help",
		Description: "What can this bot do?",
	},
}

// RegisterSlashCommands registers all slash commands with Discord.
func RegisterSlashCommands(s *discordgo.Session, guildID string) ([]*discordgo.ApplicationCommand, error) {
	registered := make([]*discordgo.ApplicationCommand, len(SlashCommands))
	for i, cmd := range SlashCommands {
		// guildID = "" registers globally
		created, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			log.Error().Err(err).Str("command", cmd.Name).Msg("cannot create slash command")
			return nil, err
		}
		registered[i] = created
		log.Info().Str("command", cmd.Name).Msg("registered slash command")
	}
	return registered, nil
}

// UnregisterSlashCommands removes all registered slash commands.
func UnregisterSlashCommands(s *discordgo.Session, guildID string, commands []*discordgo.ApplicationCommand) error {
	for _, cmd := range commands {
		if err := s.ApplicationCommandDelete(s.State.User.ID, guildID, cmd.ID); err != nil {
			log.Error().Err(err).Str("command", cmd.Name).Msg("cannot delete slash command")
			return err
		}
		log.Info().Str("command", cmd.Name).Msg("unregistered slash command")
	}
	return nil
}
