package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"poring/internal/player"

	"github.com/bwmarrin/discordgo"
)

// PlayerManager is set during initialization in main.go.
var PlayerManager *player.Manager

// MusicCommands defines all music-related slash commands.
var MusicCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "play",
		Description: "Play a song from a URL or search query",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "Song URL or search query",
				Required:    true,
			},
		},
	},
	{
		Name:        "search",
		Description: "Search for songs",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "Search query",
				Required:    true,
			},
		},
	},
	{
		Name:        "queue",
		Description: "Show the current music queue",
	},
	{
		Name:        "skip",
		Description: "Skip the current song",
	},
	{
		Name:        "stop",
		Description: "Stop playback, clear queue, and leave voice",
	},
	{
		Name:        "nowplaying",
		Description: "Show the currently playing song",
	},
	{
		Name:        "pause",
		Description: "Pause the current song",
	},
	{
		Name:        "resume",
		Description: "Resume playback",
	},
	{
		Name:        "volume",
		Description: "Show or set playback volume",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "level",
				Description: "Volume level (0-100)",
				Required:    false,
				MinValue:    &minVolume,
				MaxValue:    100,
			},
		},
	},
}

var minVolume = 0.0

// HandleMusicCommand routes music commands to their handlers.
func HandleMusicCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	switch data.Name {
	case "play":
		handlePlay(s, i, data)
	case "search":
		handleSearch(s, i, data)
	case "queue":
		handleQueue(s, i)
	case "skip":
		handleSkip(s, i)
	case "stop":
		handleStop(s, i)
	case "nowplaying":
		handleNowPlaying(s, i)
	case "pause":
		handlePause(s, i)
	case "resume":
		handleResume(s, i)
	case "volume":
		handleVolume(s, i, data)
	}
}

// HandleMusicComponent routes button interactions.
func HandleMusicComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	switch data.CustomID {
	case "music_prev":
		handlePrev(s, i)
	case "music_pause":
		handlePauseResumeToggle(s, i)
	case "music_stop":
		handleStop(s, i)
	case "music_next":
		handleSkip(s, i)
	}
}

// --- Helpers ---

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: strPtr(content),
	})
}

// findUserVoiceChannel finds the voice channel the command invoker is in.
func findUserVoiceChannel(s *discordgo.Session, guildID, userID string) string {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		return ""
	}
	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID
		}
	}
	return ""
}

// --- Command Handlers ---

func handlePlay(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	query := data.Options[0].StringValue()

	channelID := findUserVoiceChannel(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, Translator.T(i.GuildID, "music.not_in_voice"))
		return
	}

	// Acknowledge immediately since resolving + joining may take a moment
	deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	track, err := PlayerManager.GetYTDLClient().Resolve(ctx, query)
	if err != nil {
		editResponse(s, i, Translator.T(i.GuildID, "music.search_failed", err))
		return
	}

	p := PlayerManager.GetOrCreatePlayer(i.GuildID)

	// If already playing, just enqueue
	if p.IsPlaying {
		p.Enqueue(track)
		editResponse(s, i, Translator.T(i.GuildID, "music.added_to_queue",
			track.Title, player.FormatDuration(track.Duration)))
		return
	}

	// Otherwise enqueue and start playing
	p.Enqueue(track)
	err = p.Start(channelID)
	if err != nil {
		PlayerManager.Remove(i.GuildID)
		editResponse(s, i, Translator.T(i.GuildID, "music.join_failed", err))
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       Translator.T(i.GuildID, "music.now_playing"),
		Description: fmt.Sprintf("**%s**\n%s", track.Title, track.Uploader),
		Color:       0x1DB954,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Duration", Value: player.FormatDuration(track.Duration), Inline: true},
			{Name: "Requested by", Value: i.Member.User.Mention(), Inline: true},
		},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Prev",
					Emoji:    &discordgo.ComponentEmoji{Name: "⏮️"},
					Style:    discordgo.SecondaryButton,
					CustomID: "music_prev",
				},
				discordgo.Button{
					Label:    "Pause/Play",
					Emoji:    &discordgo.ComponentEmoji{Name: "⏯️"},
					Style:    discordgo.SecondaryButton,
					CustomID: "music_pause",
				},
				discordgo.Button{
					Label:    "Stop",
					Emoji:    &discordgo.ComponentEmoji{Name: "⏹️"},
					Style:    discordgo.DangerButton,
					CustomID: "music_stop",
				},
				discordgo.Button{
					Label:    "Next",
					Emoji:    &discordgo.ComponentEmoji{Name: "⏭️"},
					Style:    discordgo.SecondaryButton,
					CustomID: "music_next",
				},
			},
		},
	}

	msg, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})

	if err == nil && msg != nil {
		p.SetLastMessage(msg.ID, msg.ChannelID)
	}
}

func handleSearch(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	query := data.Options[0].StringValue()

	deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := PlayerManager.GetYTDLClient().Search(ctx, query, 5)
	if err != nil {
		editResponse(s, i, Translator.T(i.GuildID, "music.search_failed", err))
		return
	}

	if len(results) == 0 {
		editResponse(s, i, Translator.T(i.GuildID, "music.no_results", query))
		return
	}

	var lines []string
	for idx, track := range results {
		lines = append(lines, fmt.Sprintf("`%d.` **%s**\n%s", idx+1, track.Title, track.URL))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🔎 \"%s\"", query),
		Description: strings.Join(lines, "\n"),
		Color:       0x5865F2,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Use /play <url> to play a result"},
	}

	s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
}

func handleQueue(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p := PlayerManager.GetPlayer(i.GuildID)
	if p == nil || !p.IsPlaying {
		respond(s, i, Translator.T(i.GuildID, "music.nothing_playing"))
		return
	}

	queue := p.GetQueue()

	var desc strings.Builder
	if p.NowPlaying != nil {
		desc.WriteString(fmt.Sprintf("🎵 **%s** — %s (%s)\n\n",
			p.NowPlaying.Title, p.NowPlaying.Uploader, player.FormatDuration(p.NowPlaying.Duration)))
	}

	if len(queue) == 0 {
		desc.WriteString(Translator.T(i.GuildID, "music.queue_empty"))
	} else {
		desc.WriteString(Translator.T(i.GuildID, "music.up_next") + "\n")
		for idx, track := range queue {
			if idx >= 10 {
				desc.WriteString(fmt.Sprintf("\n...and %d more", len(queue)-10))
				break
			}
			desc.WriteString(fmt.Sprintf("`%d.` **%s** (%s)\n",
				idx+1, track.Title, player.FormatDuration(track.Duration)))
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       Translator.T(i.GuildID, "music.queue_title"),
		Description: desc.String(),
		Color:       0x5865F2,
	}
	respondEmbed(s, i, embed)
}

func handleSkip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p := PlayerManager.GetPlayer(i.GuildID)
	if p == nil || !p.IsPlaying {
		respond(s, i, Translator.T(i.GuildID, "music.nothing_playing"))
		return
	}

	skipped := p.NowPlaying
	p.Skip()

	if skipped != nil {
		respond(s, i, Translator.T(i.GuildID, "music.skipped", skipped.Title))
	} else {
		respond(s, i, "⏭️")
	}
}

func handlePrev(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p := PlayerManager.GetPlayer(i.GuildID)
	if p == nil || !p.IsPlaying {
		respondEphemeral(s, i, Translator.T(i.GuildID, "music.nothing_playing"))
		return
	}

	p.PlayPrevious()

	// Respond to the interaction to prevent "Interaction failed"
	respondEphemeral(s, i, "⏮️")
}

func handleStop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p := PlayerManager.GetPlayer(i.GuildID)
	if p == nil {
		respond(s, i, Translator.T(i.GuildID, "music.nothing_playing"))
		return
	}

	PlayerManager.Remove(i.GuildID)

	if i.Type == discordgo.InteractionMessageComponent {
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Content:    Translator.T(i.GuildID, "music.stopped"),
				Components: []discordgo.MessageComponent{}, // clear buttons
			},
		})
	} else {
		respond(s, i, Translator.T(i.GuildID, "music.stopped"))
	}
}

func handleNowPlaying(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p := PlayerManager.GetPlayer(i.GuildID)
	if p == nil || !p.IsPlaying || p.NowPlaying == nil {
		respond(s, i, Translator.T(i.GuildID, "music.nothing_playing"))
		return
	}

	track := p.NowPlaying

	embed := &discordgo.MessageEmbed{
		Title:       Translator.T(i.GuildID, "music.now_playing"),
		Description: fmt.Sprintf("**%s**\n%s", track.Title, track.Uploader),
		Color:       0x1DB954,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Duration", Value: player.FormatDuration(track.Duration), Inline: true},
		},
	}
	if track.URL != "" {
		embed.URL = track.URL
	}

	respondEmbed(s, i, embed)
}

func handlePause(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p := PlayerManager.GetPlayer(i.GuildID)
	if p == nil || !p.IsPlaying {
		respond(s, i, Translator.T(i.GuildID, "music.nothing_playing"))
		return
	}
	p.Pause()
	respond(s, i, Translator.T(i.GuildID, "music.paused"))
}

func handleResume(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p := PlayerManager.GetPlayer(i.GuildID)
	if p == nil {
		respond(s, i, Translator.T(i.GuildID, "music.nothing_playing"))
		return
	}
	p.Resume()
	respond(s, i, Translator.T(i.GuildID, "music.resumed"))
}

func handlePauseResumeToggle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	p := PlayerManager.GetPlayer(i.GuildID)
	if p == nil {
		respondEphemeral(s, i, Translator.T(i.GuildID, "music.nothing_playing"))
		return
	}

	if p.IsPaused {
		p.Resume()
		respondEphemeral(s, i, Translator.T(i.GuildID, "music.resumed"))
	} else {
		p.Pause()
		respondEphemeral(s, i, Translator.T(i.GuildID, "music.paused"))
	}
}

func handleVolume(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	p := PlayerManager.GetOrCreatePlayer(i.GuildID)

	if len(data.Options) == 0 {
		currentVol := int(float64(p.Volume) / 256.0 * 100.0)
		respond(s, i, Translator.T(i.GuildID, "music.volume_current", currentVol))
		return
	}

	level := int(data.Options[0].IntValue())

	// Map 0-100 to the 0-256 scaler range
	scaled := int(float64(level) / 100.0 * 256.0)
	p.SetVolume(scaled)

	respond(s, i, Translator.T(i.GuildID, "music.volume_set", level))
}

func strPtr(s string) *string {
	return &s
}
