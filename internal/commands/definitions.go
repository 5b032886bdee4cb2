package commands

import "github.com/bwmarrin/discordgo"

func GetCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         "start",
			Description:  "Register yourself in the social credit ledger",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "score",
			Description:  "Show your current credit score",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "leaderboard",
			Description:  "Show the top credit scores of this server",
			DMPermission: boolPtr(false),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
