package commands

import (
	"log"
	"strings"

	"poring/internal/i18n"

	"github.com/bwmarrin/discordgo"
)

var minTimeSep = 0.0

// SettingsCommands defines per-server configuration commands.
var SettingsCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "settings",
		Description: "View or change server settings",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "language",
				Description: "Set the bot language for this server",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "code",
						Description: "Language code (e.g. en, ko)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "timesep",
				Description: "Set the transcript gap threshold in seconds",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "seconds",
						Description: "Gap in seconds before a paragraph break",
						Required:    true,
						MinValue:    &minTimeSep,
						MaxValue:    60,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "show",
				Description: "Show the current server settings",
			},
		},
	},
}

// HandleSettingsCommand routes settings subcommands to their handlers.
func HandleSettingsCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	sub := data.Options[0]

	switch sub.Name {
	case "language":
		handleSetLanguage(s, i, sub.Options[0].StringValue())
	case "timesep":
		handleSetTimeSep(s, i, int(sub.Options[0].IntValue()))
	case "show":
		handleShowSettings(s, i)
	}
}

func handleSetLanguage(s *discordgo.Session, i *discordgo.InteractionCreate, code string) {
	code = strings.ToLower(strings.TrimSpace(code))

	if !i18n.Supported(code) {
		respond(s, i, Translator.T(i.GuildID, "settings.language_invalid",
			code, strings.Join(i18n.Languages(), ", ")))
		return
	}

	if err := DB.SetGuildLanguage(i.GuildID, code); err != nil {
		log.Printf("[SETTINGS ERROR] Setting language for %s: %v", i.GuildID, err)
		respond(s, i, "❌ Failed to save settings.")
		return
	}

	// Drop the cached language so the change takes effect immediately
	Translator.Invalidate(i.GuildID)

	respond(s, i, Translator.T(i.GuildID, "settings.language_set", code))
}

func handleSetTimeSep(s *discordgo.Session, i *discordgo.InteractionCreate, seconds int) {
	if err := DB.SetGuildTimeSep(i.GuildID, seconds); err != nil {
		log.Printf("[SETTINGS ERROR] Setting timesep for %s: %v", i.GuildID, err)
		respond(s, i, "❌ Failed to save settings.")
		return
	}

	respond(s, i, Translator.T(i.GuildID, "settings.timesep_set", seconds))
}

func handleShowSettings(s *discordgo.Session, i *discordgo.InteractionCreate) {
	settings, err := DB.GetGuildSettings(i.GuildID)
	if err != nil {
		log.Printf("[SETTINGS ERROR] Loading settings for %s: %v", i.GuildID, err)
		respond(s, i, "❌ Failed to load settings.")
		return
	}

	respond(s, i, Translator.T(i.GuildID, "settings.show", settings.Language, settings.TimeSep))
}
