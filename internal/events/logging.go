package events

import (
	"log"
	"time"

	"poring/internal/discord"
	"poring/internal/i18n"

	"github.com/bwmarrin/discordgo"
)

// Logger posts membership events to the configured log channel, in the
// guild's language.
type Logger struct {
	Session      *discordgo.Session
	LogChannelID string
	Translator   *i18n.Translator
}

func NewLogger(s *discordgo.Session, cfg *discord.Config, tr *i18n.Translator) *Logger {
	return &Logger{
		Session:      s,
		LogChannelID: cfg.LogChannelID,
		Translator:   tr,
	}
}

func (l *Logger) OnGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	embed := &discordgo.MessageEmbed{
		Title:       l.Translator.T(m.GuildID, "event.joined_title"),
		Description: l.Translator.T(m.GuildID, "event.member_joined", m.User.Username),
		Color:       0x00ff00, // Green
		Timestamp:   time.Now().Format(time.RFC3339),
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: m.User.AvatarURL("")},
	}
	s.ChannelMessageSendEmbed(l.LogChannelID, embed)
	log.Printf("[EVENT] User Joined: %s (%s)", m.User.Username, m.User.ID)
}

func (l *Logger) OnGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	embed := &discordgo.MessageEmbed{
		Title:       l.Translator.T(m.GuildID, "event.left_title"),
		Description: l.Translator.T(m.GuildID, "event.member_left", m.User.Username),
		Color:       0xff0000, // Red
		Timestamp:   time.Now().Format(time.RFC3339),
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: m.User.AvatarURL("")},
	}
	s.ChannelMessageSendEmbed(l.LogChannelID, embed)
	log.Printf("[EVENT] User Left: %s (%s)", m.User.Username, m.User.ID)
}
