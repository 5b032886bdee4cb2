package commands

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/sskmsk/creditbot/internal/credit"
	"github.com/sskmsk/creditbot/internal/render"
)

func HandleStart(s *discordgo.Session, i *discordgo.InteractionCreate, svc *credit.Service) {
	user := interactionUser(i)
	if user == nil || i.GuildID == "" {
		respond(s, i, "This command only works inside a server.")
		return
	}

	res, err := svc.StartUser(context.Background(), i.GuildID, user.ID, interactionDisplayName(i))
	if err != nil {
		log.Printf("Failed to register user %s: %v", user.ID, err)
		respond(s, i, render.ApologyMessage)
		return
	}

	respond(s, i, render.ScoreReply(interactionDisplayName(i), res, nil))
}

func HandleScore(s *discordgo.Session, i *discordgo.InteractionCreate, svc *credit.Service) {
	user := interactionUser(i)
	if user == nil || i.GuildID == "" {
		respond(s, i, "This command only works inside a server.")
		return
	}

	res, err := svc.UserScore(context.Background(), i.GuildID, user.ID)
	if errors.Is(err, credit.ErrNotRegistered) {
		respond(s, i, render.NotRegisteredMessage)
		return
	}
	if err != nil {
		log.Printf("Failed to look up score for %s: %v", user.ID, err)
		respond(s, i, render.ApologyMessage)
		return
	}

	respond(s, i, render.ScoreReply(interactionDisplayName(i), res, nil))
}

func HandleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, svc *credit.Service) {
	if i.GuildID == "" {
		respond(s, i, "This command only works inside a server.")
		return
	}

	scores, err := svc.Leaderboard(context.Background(), i.GuildID)
	if errors.Is(err, credit.ErrEmptyLeaderboard) {
		respond(s, i, render.EmptyLeaderboardMessage)
		return
	}
	if err != nil {
		log.Printf("Failed to load leaderboard for guild %s: %v", i.GuildID, err)
		respond(s, i, render.ApologyMessage)
		return
	}

	respond(s, i, render.Leaderboard(scores))
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}
