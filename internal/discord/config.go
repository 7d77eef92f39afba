package discord

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken  string
	GuildID       string
	LogChannelID  string
	ROAPIKey      string
	ROServer      string
	CaptionDir    string
	CaptionLang   string
	FFmpegBitrate int
	DefaultVolume int
	TimeSep       int
	Database      string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}

	bitrate := 96 // Default 96kbps
	if brStr := os.Getenv("FFMPEG_BITRATE"); brStr != "" {
		if idx, err := strconv.Atoi(brStr); err == nil && idx > 0 {
			bitrate = idx
		}
	}

	vol := 256 // Default 100% (256/256)
	if volStr := os.Getenv("DEFAULT_VOLUME"); volStr != "" {
		if idx, err := strconv.Atoi(volStr); err == nil && idx >= 0 && idx <= 512 {
			vol = idx
		}
	}

	timeSep := 4 // Default caption gap threshold in seconds
	if sepStr := os.Getenv("TIME_SEP"); sepStr != "" {
		if idx, err := strconv.Atoi(sepStr); err == nil && idx > 0 {
			timeSep = idx
		}
	}

	return &Config{
		DiscordToken:  token,
		GuildID:       os.Getenv("GUILD_ID"),
		LogChannelID:  os.Getenv("LOG_CHANNEL_ID"),
		ROAPIKey:      os.Getenv("RO_API_KEY"),
		ROServer:      getEnv("RO_SERVER", "iRO"),
		CaptionDir:    getEnv("CAPTION_DIR", "captions"),
		CaptionLang:   getEnv("CAPTION_LANG", "en"),
		FFmpegBitrate: bitrate,
		DefaultVolume: vol,
		TimeSep:       timeSep,
		Database:      getEnv("DATABASE", "poring.db"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
