package commands

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/bwmarrin/discordgo"
)

const eightBallAPI = "https://www.eightballapi.com/api"

var funHTTPClient = &http.Client{Timeout: 10 * time.Second}

// FunCommands defines miscellaneous fun commands.
var FunCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "8ball",
		Description: "Ask the magic 8-ball a question",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "question",
				Description: "Your question",
				Required:    true,
			},
		},
	},
	{
		Name:        "roll",
		Description: "Roll a die",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "sides",
				Description: "Number of sides (default 6)",
				Required:    false,
				MinValue:    &minSides,
			},
		},
	},
}

var minSides = 2.0

// HandleFunCommand routes fun commands to their handlers.
func HandleFunCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	switch data.Name {
	case "8ball":
		handleEightBall(s, i, data)
	case "roll":
		handleRoll(s, i, data)
	}
}

func handleEightBall(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	question := data.Options[0].StringValue()

	deferResponse(s, i)

	reading, err := fetchEightBallReading(question)
	if err != nil {
		log.Printf("[FUN ERROR] 8ball request: %v", err)
		editResponse(s, i, Translator.T(i.GuildID, "fun.8ball_failed"))
		return
	}

	editResponse(s, i, Translator.T(i.GuildID, "fun.8ball_answer", question, reading))
}

func fetchEightBallReading(question string) (string, error) {
	reqURL := fmt.Sprintf("%s?question=%s", eightBallAPI, url.QueryEscape(question))

	resp, err := funHTTPClient.Get(reqURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Reading string `json:"reading"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Reading, nil
}

func handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	sides := 6
	if len(data.Options) > 0 {
		sides = int(data.Options[0].IntValue())
	}

	result := rand.Intn(sides) + 1
	respond(s, i, Translator.T(i.GuildID, "fun.roll_result", result, sides))
}
