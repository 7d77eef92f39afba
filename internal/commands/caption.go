package commands

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"poring/internal/srt"

	"github.com/bwmarrin/discordgo"
)

// maxMessageLen leaves headroom under Discord's 2000-character limit.
const maxMessageLen = 1900

// CaptionCommands defines the caption transcript command.
var CaptionCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "caption",
		Description: "Fetch a video's captions and post a merged transcript",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "url",
				Description: "Video URL or search query",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "lang",
				Description: "Caption language code (default: server setting)",
				Required:    false,
			},
		},
	},
}

// HandleCaptionCommand routes caption commands to their handlers.
func HandleCaptionCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	query := data.Options[0].StringValue()
	lang := Cfg.CaptionLang
	if len(data.Options) > 1 {
		lang = data.Options[1].StringValue()
	}

	deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	ytdlClient := PlayerManager.GetYTDLClient()

	track, err := ytdlClient.Resolve(ctx, query)
	if err != nil {
		editResponse(s, i, Translator.T(i.GuildID, "caption.fetch_failed", err))
		return
	}

	path, err := ytdlClient.FetchCaptions(ctx, track.URL, track.ID, lang)
	if err != nil {
		log.Printf("[CAPTION ERROR] Fetching captions for %s: %v", track.ID, err)
		editResponse(s, i, Translator.T(i.GuildID, "caption.fetch_failed", err))
		return
	}

	f, err := os.Open(path)
	if err != nil {
		editResponse(s, i, Translator.T(i.GuildID, "caption.fetch_failed", err))
		return
	}
	defer f.Close()

	blocks, err := srt.Parse(f)
	if err != nil {
		log.Printf("[CAPTION ERROR] Parsing %s: %v", path, err)
		editResponse(s, i, Translator.T(i.GuildID, "caption.parse_failed", track.Title))
		return
	}

	timeSep := Cfg.TimeSep
	if settings, err := DB.GetGuildSettings(i.GuildID); err == nil {
		timeSep = settings.TimeSep
	}

	lines, err := srt.Transcript(blocks, timeSep)
	if err != nil {
		log.Printf("[CAPTION ERROR] Merging transcript for %s: %v", track.ID, err)
		editResponse(s, i, Translator.T(i.GuildID, "caption.parse_failed", track.Title))
		return
	}

	chunks := chunkTranscript(lines, maxMessageLen)
	if len(chunks) == 0 {
		editResponse(s, i, Translator.T(i.GuildID, "caption.empty", track.Title))
		return
	}

	editResponse(s, i, Translator.T(i.GuildID, "caption.fetching", track.Title))
	for _, chunk := range chunks {
		if _, err := s.ChannelMessageSend(i.ChannelID, chunk); err != nil {
			log.Printf("[CAPTION ERROR] Sending transcript chunk: %v", err)
			return
		}
	}
}

// chunkTranscript joins transcript lines into messages no longer than limit.
// Empty lines act as paragraph separators and are kept with the preceding
// text rather than starting a new chunk.
func chunkTranscript(lines []string, limit int) []string {
	var chunks []string
	var cur strings.Builder

	flush := func() {
		text := strings.TrimSpace(cur.String())
		if text != "" {
			chunks = append(chunks, text)
		}
		cur.Reset()
	}

	for _, line := range lines {
		// A single line longer than the limit gets hard-split
		for len(line) > limit {
			flush()
			chunks = append(chunks, line[:limit])
			line = line[limit:]
		}
		if cur.Len()+len(line)+1 > limit {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	flush()

	return chunks
}
