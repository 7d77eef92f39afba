package commands

import (
	"log"
	"strings"

	"poring/internal/database"
	"poring/internal/discord"
	"poring/internal/i18n"
	"poring/internal/ro"

	"github.com/bwmarrin/discordgo"
)

// CommandPermissionMap maps command names to their required permission node.
var CommandPermissionMap = map[string]string{
	// Music
	"play":       "music.play",
	"search":     "music.search",
	"queue":      "music.queue",
	"skip":       "music.skip",
	"stop":       "music.stop",
	"nowplaying": "music.nowplaying",
	"pause":      "music.pause",
	"resume":     "music.resume",
	"volume":     "music.volume",

	// Captions
	"caption": "caption.read",

	// Ragnarok lookups
	"ro": "ro.lookup",

	// Fun
	"8ball": "fun.8ball",
	"roll":  "fun.roll",

	// Admin
	"settings": "admin.settings",
	"perm":     "admin.perm",
}

// Shared dependencies, injected during initialization in main.go.
var (
	DB         *database.DB
	Cfg        *discord.Config
	Translator *i18n.Translator
	ROClient   *ro.Client
	OwnerID    string
)

func AllCommands() []*discordgo.ApplicationCommand {
	var all []*discordgo.ApplicationCommand
	all = append(all, MusicCommands...)
	all = append(all, CaptionCommands...)
	all = append(all, ROCommands...)
	all = append(all, FunCommands...)
	all = append(all, SettingsCommands...)
	all = append(all, PermissionCommands...)
	return all
}

// RegisterCommands registers all slash commands with Discord.
func RegisterCommands(s *discordgo.Session, guildID string) {
	log.Println("Registering commands...")
	for _, cmd := range AllCommands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			log.Printf("Cannot create command '%v': %v", cmd.Name, err)
		}
	}
	log.Println("Commands registered successfully!")
}

// HandleInteraction is the central dispatcher for all slash commands.
func HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type == discordgo.InteractionMessageComponent {
		id := i.MessageComponentData().CustomID
		if strings.HasPrefix(id, "music_") {
			HandleMusicComponent(s, i)
		}
		return
	}

	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()

	// Permission Check
	if !hasPermission(i.Member.User.ID, data.Name) {
		log.Printf("[COMMAND DENIED] User: %s (%s) | Command: %s | Reason: Low Permissions", i.Member.User.Username, i.Member.User.ID, data.Name)
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: Translator.T(i.GuildID, "error.no_permission"),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	log.Printf("[COMMAND EXEC] User: %s (%s) | Guild: %s | Command: %s", i.Member.User.Username, i.Member.User.ID, i.GuildID, data.Name)

	switch data.Name {
	// Music
	case "play", "search", "queue", "skip", "stop", "nowplaying", "pause", "resume", "volume":
		HandleMusicCommand(s, i, data)
	// Captions
	case "caption":
		HandleCaptionCommand(s, i, data)
	// Ragnarok lookups
	case "ro":
		HandleROCommand(s, i, data)
	// Fun
	case "8ball", "roll":
		HandleFunCommand(s, i, data)
	// Admin
	case "settings":
		HandleSettingsCommand(s, i, data)
	case "perm":
		HandlePermissionCommand(s, i, data)
	}
}

func hasPermission(userID string, commandName string) bool {
	// The configured owner bypasses all node checks.
	if userID == OwnerID {
		return true
	}

	node, exists := CommandPermissionMap[commandName]
	if !exists {
		// Every command is mapped; an unmapped one is a programming error,
		// so fail closed.
		return false
	}

	if DB == nil {
		return false // fail safe
	}

	has, err := DB.HasPermission(userID, node)
	if err != nil {
		log.Printf("Error checking permission for user %s node %s: %v", userID, node, err)
		return false
	}

	return has
}

// IsValidPermissionNode checks if a permission node exists in the map.
func IsValidPermissionNode(node string) bool {
	for _, n := range CommandPermissionMap {
		if n == node {
			return true
		}
	}
	return false
}

// GetPermissionsByCategory returns all permission nodes under a category
// prefix, e.g. "music" -> "music.play", "music.skip", ...
func GetPermissionsByCategory(category string) []string {
	var nodes []string
	prefix := category + "."
	for _, node := range CommandPermissionMap {
		if strings.HasPrefix(node, prefix) {
			nodes = append(nodes, node)
		}
	}
	return uniqueStrings(nodes)
}

func uniqueStrings(input []string) []string {
	u := make([]string, 0, len(input))
	m := make(map[string]bool)
	for _, val := range input {
		if !m[val] {
			m[val] = true
			u = append(u, val)
		}
	}
	return u
}
