package commands

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// ROCommands defines the Ragnarok Online database lookup command.
var ROCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "ro",
		Description: "Look up Ragnarok Online database entries",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "item",
				Description: "Look up an item by ID",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "id",
						Description: "Item ID",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "monster",
				Description: "Look up a monster by ID",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "id",
						Description: "Monster ID",
						Required:    true,
					},
				},
			},
		},
	},
}

// HandleROCommand routes ro subcommands to their handlers.
func HandleROCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if ROClient == nil {
		respond(s, i, Translator.T(i.GuildID, "ro.not_configured"))
		return
	}

	sub := data.Options[0]
	id := int(sub.Options[0].IntValue())

	switch sub.Name {
	case "item":
		handleROItem(s, i, id)
	case "monster":
		handleROMonster(s, i, id)
	}
}

func handleROItem(s *discordgo.Session, i *discordgo.InteractionCreate, id int) {
	deferResponse(s, i)

	item, err := ROClient.GetItem(id)
	if err != nil {
		log.Printf("[RO ERROR] Item lookup %d: %v", id, err)
		editResponse(s, i, Translator.T(i.GuildID, "ro.lookup_failed", err))
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       Translator.T(i.GuildID, "ro.item_title", item.ID, item.Name),
		Description: item.Description,
		Color:       0xE0A343,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Slots", Value: fmt.Sprintf("%d", item.Slots), Inline: true},
			{Name: "Attack", Value: fmt.Sprintf("%d", item.Attack), Inline: true},
			{Name: "Defense", Value: fmt.Sprintf("%d", item.Defense), Inline: true},
			{Name: "Weight", Value: fmt.Sprintf("%d", item.Weight), Inline: true},
			{Name: "Required Level", Value: fmt.Sprintf("%d", item.RequiredLevel), Inline: true},
			{Name: "Price", Value: fmt.Sprintf("%dz", item.Price), Inline: true},
		},
	}

	s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
}

func handleROMonster(s *discordgo.Session, i *discordgo.InteractionCreate, id int) {
	deferResponse(s, i)

	monster, err := ROClient.GetMonster(id)
	if err != nil {
		log.Printf("[RO ERROR] Monster lookup %d: %v", id, err)
		editResponse(s, i, Translator.T(i.GuildID, "ro.lookup_failed", err))
		return
	}

	stats := monster.Stats
	embed := &discordgo.MessageEmbed{
		Title: Translator.T(i.GuildID, "ro.monster_title", monster.ID, monster.Name),
		Color: 0x9B59B6,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("%d", stats.Level), Inline: true},
			{Name: "HP", Value: fmt.Sprintf("%d", stats.Health), Inline: true},
			{Name: "Attack", Value: fmt.Sprintf("%d - %d", stats.Attack.Minimum, stats.Attack.Maximum), Inline: true},
			{Name: "Defense", Value: fmt.Sprintf("%d", stats.Defense), Inline: true},
			{Name: "Magic Defense", Value: fmt.Sprintf("%d", stats.MagicDefense), Inline: true},
			{Name: "Base / Job EXP", Value: fmt.Sprintf("%d / %d", stats.BaseExperience, stats.JobExperience), Inline: true},
		},
	}

	s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
}
