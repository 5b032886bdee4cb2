package commands

import "github.com/bwmarrin/discordgo"

// interactionUser returns the invoking user for both guild and DM
// interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// interactionDisplayName prefers the guild nickname over the account name.
func interactionDisplayName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	if user := interactionUser(i); user != nil {
		return user.Username
	}
	return ""
}
