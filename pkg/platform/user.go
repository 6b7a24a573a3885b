package platform

import (
	"github.com/Jacobbrewer1/discordgo"
)

// InteractionUser returns the user that triggered an interaction, in a guild or a DM.
func InteractionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// DisplayName returns the name a member is shown with in the guild.
func DisplayName(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	if u := InteractionUser(i); u != nil {
		return u.Username
	}
	return ""
}

// IsAdministrator reports whether the member that triggered an interaction has the administrator permission.
func IsAdministrator(i *discordgo.Interaction) bool {
	if i.Member == nil {
		return false
	}
	return i.Member.Permissions&discordgo.PermissionAdministrator == discordgo.PermissionAdministrator
}
