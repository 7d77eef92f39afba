package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"poring/internal/commands"
	"poring/internal/database"
	"poring/internal/discord"
	"poring/internal/events"
	"poring/internal/i18n"
	"poring/internal/player"
	"poring/internal/ro"
	"poring/internal/ytdl"

	"github.com/bwmarrin/discordgo"
)

func main() {
	// 1. Load Configuration
	cfg, err := discord.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// 2. Initialize Bot
	bot, err := discord.New(cfg)
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	// 3. Initialize Database
	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()

	// 4. Initialize Translator
	translator := i18n.New(db)

	// 5. Initialize yt-dlp Client
	ytdlClient, err := ytdl.NewClient(cfg.CaptionDir)
	if err != nil {
		log.Fatalf("Error initializing yt-dlp client: %v", err)
	}

	// 6. Initialize Ragnarok Lookup Client
	var roClient *ro.Client
	if cfg.ROAPIKey != "" {
		roClient = ro.NewClient(cfg.ROAPIKey, cfg.ROServer)
		log.Printf("Ragnarok database lookups enabled (server: %s)", cfg.ROServer)
	} else {
		log.Println("Warning: RO_API_KEY not set. Ragnarok lookups disabled.")
	}

	// Inject shared dependencies into the commands package
	commands.DB = db
	commands.Cfg = cfg
	commands.Translator = translator
	commands.ROClient = roClient

	app, err := bot.Session.Application("@me")
	if err != nil {
		log.Printf("Warning: Could not fetch application info: %v", err)
	} else {
		if app.Owner != nil {
			commands.OwnerID = app.Owner.ID
			log.Printf("Bot Owner ID set to: %s", commands.OwnerID)
		} else if app.Team != nil {
			log.Printf("Bot is owned by a team. OwnerID logic might need adjustment.")
		}
	}

	// 7. Initialize Player Manager
	commands.PlayerManager = player.NewManager(bot.Session, ytdlClient, cfg)

	// 8. Register Event Handlers

	// Interaction Handler (Slash Commands)
	bot.Session.AddHandler(commands.HandleInteraction)

	// Logging Handlers
	if cfg.LogChannelID != "" {
		logger := events.NewLogger(bot.Session, cfg, translator)
		bot.Session.AddHandler(logger.OnGuildMemberAdd)
		bot.Session.AddHandler(logger.OnGuildMemberRemove)
	}

	// Ready Handler
	bot.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})

	// 9. Start Bot
	err = bot.Start()
	if err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}
	defer bot.Stop()

	// 10. Register Commands
	commands.RegisterCommands(bot.Session, cfg.GuildID)

	// 11. Wait for Shutdown Signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	log.Println("Bot is running. Press Ctrl+C to exit.")
	<-stop

	log.Println("Gracefully shutting down...")
	if commands.PlayerManager != nil {
		commands.PlayerManager.Shutdown()
	}
}
