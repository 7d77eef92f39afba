package commands

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// PermissionCommands defines the permission management command.
var PermissionCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "perm",
		Description: "Manage bot permissions",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "add",
				Description: "Grant a permission node or category to a user",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "The user to grant permission to",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "node",
						Description: "Permission node (e.g. music.play) or category (e.g. music)",
						Required:    true,
					},
				},
			},
			{
				Name:        "remove",
				Description: "Revoke a permission node or category from a user",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "The user to revoke permission from",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "node",
						Description: "Permission node or category",
						Required:    true,
					},
				},
			},
			{
				Name:        "list",
				Description: "List a user's permissions",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "The user to list permissions for",
						Required:    true,
					},
				},
			},
		},
	},
}

// HandlePermissionCommand routes perm subcommands to their handlers.
func HandlePermissionCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if len(data.Options) == 0 {
		return
	}
	if DB == nil {
		respondEphemeral(s, i, Translator.T(i.GuildID, "perm.db_unavailable"))
		return
	}

	subcmd := data.Options[0]
	switch subcmd.Name {
	case "add":
		handlePermChange(s, i, subcmd.Options, true)
	case "remove":
		handlePermChange(s, i, subcmd.Options, false)
	case "list":
		handlePermList(s, i, subcmd.Options)
	}
}

// handlePermChange grants or revokes the resolved nodes, covering both the
// add and remove subcommands.
func handlePermChange(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption, grant bool) {
	user := options[0].UserValue(s)
	input := options[1].StringValue()

	nodes := resolveNodes(input)
	if len(nodes) == 0 {
		respondEphemeral(s, i, Translator.T(i.GuildID, "perm.invalid_node", input))
		return
	}

	count := 0
	for _, node := range nodes {
		var err error
		if grant {
			err = DB.AddPermission(user.ID, node)
		} else {
			err = DB.RemovePermission(user.ID, node)
		}
		if err != nil {
			log.Printf("[PERM ERROR] Changing node %s for %s (grant=%v): %v", node, user.ID, grant, err)
			continue
		}
		count++
	}

	if grant && count == 0 {
		respondEphemeral(s, i, Translator.T(i.GuildID, "perm.add_failed"))
		return
	}

	key := "perm.granted_many"
	if grant && count == 1 {
		key = "perm.granted_one"
	} else if !grant && count == 1 {
		key = "perm.revoked_one"
	} else if !grant {
		key = "perm.revoked_many"
	}

	if count == 1 {
		respond(s, i, Translator.T(i.GuildID, key, nodes[0], user.Username))
	} else {
		respond(s, i, Translator.T(i.GuildID, key, count, user.Username))
	}
}

func handlePermList(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	user := options[0].UserValue(s)

	nodes, err := DB.ListPermissions(user.ID)
	if err != nil {
		log.Printf("[PERM ERROR] Listing permissions for %s: %v", user.ID, err)
		respondEphemeral(s, i, Translator.T(i.GuildID, "perm.db_unavailable"))
		return
	}

	if len(nodes) == 0 {
		respond(s, i, Translator.T(i.GuildID, "perm.list_empty", user.Username))
		return
	}

	var msg strings.Builder
	msg.WriteString(Translator.T(i.GuildID, "perm.list_header", user.Username))
	for _, n := range nodes {
		msg.WriteString("\n- `" + n + "`")
	}
	respond(s, i, msg.String())
}

// resolveNodes expands user input into concrete permission nodes: either
// one exact node, or every node under a category prefix.
func resolveNodes(input string) []string {
	if IsValidPermissionNode(input) {
		return []string{input}
	}
	if nodes := GetPermissionsByCategory(input); len(nodes) > 0 {
		return nodes
	}
	return nil
}
